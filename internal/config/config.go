package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/madellimac/hulotte/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known keys.
const (
	KeySoundPreset  = "sound.preset"
	KeySoundWAV     = "sound.wav"
	KeyInstallJobs  = "install.jobs"
	KeyStreamPURepo = "repos.streampu"
	KeyAFF3CTRepo   = "repos.aff3ct"
)

// Dir returns the path to the Hulotte config directory (~/.hulotte/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.hulotte/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// The sound keys also answer to the short HULOTTE_HOOT_PRESET and
// HULOTTE_HOOT_WAV variables.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	_ = viper.BindEnv(KeySoundPreset, branding.EnvVar("hoot_preset"))
	_ = viper.BindEnv(KeySoundWAV, branding.EnvVar("hoot_wav"))

	viper.SetDefault(KeySoundPreset, "classic")
	viper.SetDefault(KeyStreamPURepo, branding.StreamPURepoURL())
	viper.SetDefault(KeyAFF3CTRepo, branding.AFF3CTRepoURL())

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetInt returns a config value as an int. Returns 0 if unset or not numeric.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
