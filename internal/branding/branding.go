// Package branding provides compile-time identity values for the CLI.
//
// Names, the home directory, the env prefix and the upstream URLs used by the
// installer live in branding.yaml, which Go's //go:embed bakes into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	GoModule        string `yaml:"go_module"`
	StreamPURepoURL string `yaml:"streampu_repo_url"`
	AFF3CTRepoURL   string `yaml:"aff3ct_repo_url"`
	SurferURL       string `yaml:"surfer_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "hulotte",
			DisplayName:     "Hulotte",
			Description:     "Project generator and dependency installer for StreamPU and AFF3CT",
			HomeDir:         ".hulotte",
			EnvPrefix:       "HULOTTE",
			GoModule:        "github.com/madellimac/hulotte",
			StreamPURepoURL: "https://github.com/aff3ct/streampu.git",
			AFF3CTRepoURL:   "https://github.com/aff3ct/aff3ct.git",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "hulotte").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Hulotte").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".hulotte").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "HULOTTE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// StreamPURepoURL returns the default clone URL for StreamPU.
func StreamPURepoURL() string { load(); return defaults.StreamPURepoURL }

// AFF3CTRepoURL returns the default clone URL for AFF3CT.
func AFF3CTRepoURL() string { load(); return defaults.AFF3CTRepoURL }

// SurferURL returns the download URL of the Surfer waveform viewer archive.
// Empty when the viewer is not distributed for this build.
func SurferURL() string { load(); return defaults.SurferURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("hoot_wav") → "HULOTTE_HOOT_WAV".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
