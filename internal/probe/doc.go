// Package probe checks that the external toolchain binaries the installer
// and generated projects rely on are on PATH.
package probe
