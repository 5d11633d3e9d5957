// Package runtime runs external programs (git, cmake, make, audio players)
// as blocking child processes. Output is streamed to the configured writers
// and captured for error reporting.
package runtime
