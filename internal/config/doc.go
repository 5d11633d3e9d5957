// Package config manages user-level settings stored at ~/.hulotte/config.yaml.
// Settings cover the owl sound, the installer's build parallelism and clone
// URL overrides. Nothing here feeds project generation.
package config
