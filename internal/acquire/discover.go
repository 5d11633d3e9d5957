package acquire

import (
	"path/filepath"

	"github.com/madellimac/hulotte/internal/platform"
	"github.com/madellimac/hulotte/internal/project"
)

// Installed lists the libraries found under a tool root. Each path is a
// checkout root holding a built archive; empty when absent.
type Installed struct {
	StreamPU        string
	StreamPULibrary string
	AFF3CT          string
	AFF3CTLibrary   string
	BundledStreamPU string // StreamPU copy built inside AFF3CT
	Surfer          string // waveform viewer binary
}

// Discover looks for previous install runs under toolRoot. It only reads
// the filesystem.
func Discover(toolRoot string) Installed {
	var in Installed
	if toolRoot == "" {
		return in
	}

	root := StreamPU.Dest(toolRoot)
	if lib, _, err := FindLibrary(root, StreamPU.Canonical, StreamPU.Glob); err == nil {
		in.StreamPU, in.StreamPULibrary = root, lib
	}

	root = AFF3CT.Dest(toolRoot)
	if lib, _, err := FindLibrary(root, AFF3CT.Canonical, AFF3CT.Glob); err == nil {
		in.AFF3CT, in.AFF3CTLibrary = root, lib
		if fileExists(filepath.Join(root, AFF3CT.BundledLib)) {
			in.BundledStreamPU = filepath.Join(root, AFF3CT.BundledRoot)
		}
	}

	if bin := filepath.Join(SurferDir(toolRoot), SurferBinary); platform.IsExecutable(bin) {
		in.Surfer = bin
	}
	return in
}

// Suggestions pre-fills the resolver's path questions.
func (in Installed) Suggestions() project.Suggestions {
	return project.Suggestions{
		StreamPURoot: in.StreamPU,
		AFF3CTRoot:   in.AFF3CT,
	}
}
