package acquire

import (
	"path/filepath"

	"github.com/madellimac/hulotte/internal/branding"
	"github.com/madellimac/hulotte/internal/config"
)

// Kind distinguishes a library built on its own from one whose build also
// produces its own copy of StreamPU.
type Kind int

const (
	Standalone Kind = iota
	Bundled
)

func (k Kind) String() string {
	if k == Bundled {
		return "bundled"
	}
	return "standalone"
}

// Library describes how one native library is fetched, built and recognised.
// Paths are relative to the checkout root.
type Library struct {
	Name string
	Kind Kind

	// Dir is the install location relative to the tool root.
	Dir string

	// RepoKey is the config key that overrides DefaultURL.
	RepoKey    string
	DefaultURL string

	// Canonical is where the primary archive is expected; Glob is the
	// fallback pattern when it is not there.
	Canonical string
	Glob      string

	// BundledRoot and BundledLib locate the StreamPU copy a Bundled
	// library builds. Both are empty for Standalone libraries.
	BundledRoot string
	BundledLib  string

	CMakeFlags []string
}

// StreamPU is library A, built standalone.
var StreamPU = Library{
	Name:       "StreamPU",
	Kind:       Standalone,
	Dir:        filepath.Join("lib", "streampu"),
	RepoKey:    config.KeyStreamPURepo,
	DefaultURL: branding.StreamPURepoURL(),
	Canonical:  filepath.Join("build", "lib", "libstreampu.a"),
	Glob:       filepath.Join("build", "lib", "libstreampu*.a"),
	CMakeFlags: []string{
		"-DCMAKE_BUILD_TYPE=Release",
		"-DSPU_COMPILE_STATIC_LIB=ON",
		"-DSPU_COMPILE_SHARED_LIB=OFF",
		"-DSPU_LINK_HWLOC=OFF",
	},
}

// AFF3CT is library B. Its build compiles the StreamPU submodule too.
var AFF3CT = Library{
	Name:        "AFF3CT",
	Kind:        Bundled,
	Dir:         filepath.Join("lib", "aff3ct"),
	RepoKey:     config.KeyAFF3CTRepo,
	DefaultURL:  branding.AFF3CTRepoURL(),
	Canonical:   filepath.Join("build", "lib", "libaff3ct-4.1.0.a"),
	Glob:        filepath.Join("build", "lib", "libaff3ct-*.a"),
	BundledRoot: filepath.Join("lib", "streampu"),
	BundledLib:  filepath.Join("build", "lib", "streampu", "lib", "libstreampu.a"),
	CMakeFlags: []string{
		"-DCMAKE_BUILD_TYPE=Release",
		"-DAFF3CT_COMPILE_EXE=OFF",
		"-DAFF3CT_COMPILE_STATIC_LIB=ON",
		"-DAFF3CT_COMPILE_SHARED_LIB=OFF",
		"-DAFF3CT_LINK_HWLOC=OFF",
		"-DAFF3CT_EXT_STRINGS=ON",
		"-DSPU_COMPILE_STATIC_LIB=ON",
	},
}

// RepoURL returns the clone URL, honouring the repos.* config override.
func (l Library) RepoURL() string {
	if l.RepoKey != "" {
		if u := config.Get(l.RepoKey); u != "" {
			return u
		}
	}
	return l.DefaultURL
}

// Dest returns the checkout directory under toolRoot.
func (l Library) Dest(toolRoot string) string {
	return filepath.Join(toolRoot, l.Dir)
}
