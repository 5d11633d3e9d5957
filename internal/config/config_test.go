package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestLoadDefaults(t *testing.T) {
	withHome(t)
	Load()

	if got := Get(KeySoundPreset); got != "classic" {
		t.Errorf("Get(%q) = %q, want %q", KeySoundPreset, got, "classic")
	}
	if got := Get(KeyStreamPURepo); got != "https://github.com/aff3ct/streampu.git" {
		t.Errorf("Get(%q) = %q", KeyStreamPURepo, got)
	}
	if got := GetInt(KeyInstallJobs); got != 0 {
		t.Errorf("GetInt(%q) = %d, want 0", KeyInstallJobs, got)
	}
}

func TestHootEnvOverride(t *testing.T) {
	withHome(t)
	t.Setenv("HULOTTE_HOOT_PRESET", "deep")
	t.Setenv("HULOTTE_HOOT_WAV", "/tmp/owl.wav")
	Load()

	if got := Get(KeySoundPreset); got != "deep" {
		t.Errorf("Get(%q) = %q, want %q", KeySoundPreset, got, "deep")
	}
	if got := Get(KeySoundWAV); got != "/tmp/owl.wav" {
		t.Errorf("Get(%q) = %q, want %q", KeySoundWAV, got, "/tmp/owl.wav")
	}
}

func TestSetPersists(t *testing.T) {
	home := withHome(t)
	Load()

	if err := Set(KeyInstallJobs, "6"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	path := filepath.Join(home, ".hulotte", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := GetInt(KeyInstallJobs); got != 6 {
		t.Errorf("GetInt(%q) after reload = %d, want 6", KeyInstallJobs, got)
	}
}
