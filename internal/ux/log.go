package ux

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/madellimac/hulotte/internal/branding"
)

// NewLogger returns the command logger. Verbose enables debug output, which
// includes every external command line the pipelines run.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
