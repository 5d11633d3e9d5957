package project

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Configuration is the fully resolved description of a project.
type Configuration struct {
	Name         string
	OutputDir    string
	StreamPURoot string
	AFF3CTRoot   string // empty unless UseAFF3CT
	ToolRoot     string // Hulotte install root: lib/, tools/ and an optional Common/ override

	UseAFF3CT   bool
	UseCustom   bool
	UseHardware bool

	// Interactive is true when the project name was not given up front.
	Interactive bool
}

// ProjectDir is the directory the project is generated into.
func (c Configuration) ProjectDir() string {
	return filepath.Join(c.OutputDir, c.Name)
}

// Options are the explicit arguments given on the command line. A nil
// toggle means the flag was not supplied.
type Options struct {
	Name         string
	OutputDir    string
	StreamPURoot string
	AFF3CTRoot   string
	ToolRoot     string

	AFF3CT   *bool
	Custom   *bool
	Hardware *bool
}

// Non-interactive defaults for toggles the operator did not set.
const (
	DefaultCustom   = true
	DefaultAFF3CT   = false
	DefaultHardware = false
)

// DefaultName is offered when asking for a project name.
const DefaultName = "my_spu_project"

var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName checks a project name: letters, digits, '_' and '-' only.
func ValidateName(name string) error {
	if name == "" {
		return &ValidationError{Field: "project name", Value: name, Reason: "must not be empty"}
	}
	if !nameRe.MatchString(name) {
		return &ValidationError{
			Field:  "project name",
			Value:  name,
			Reason: "use letters, digits, hyphens or underscores only",
		}
	}
	return nil
}

// ValidationError reports a value that cannot be used.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
