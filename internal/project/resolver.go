package project

import (
	"context"
	"io"

	"github.com/madellimac/hulotte/internal/prompt"
	"github.com/madellimac/hulotte/internal/ux"
)

// Suggestions pre-fill path questions, typically from libraries found
// under the tool root by a previous install run.
type Suggestions struct {
	StreamPURoot string
	AFF3CTRoot   string
}

// Resolver turns Options into a Configuration.
type Resolver struct {
	Prompter    prompt.Prompter
	Out         *ux.Printer
	Suggestions Suggestions
}

// session holds the state of one Resolve call.
type session struct {
	ctx context.Context
	p   prompt.Prompter
	out *ux.Printer
}

// Resolve builds the configuration. When opts.Name is empty the run is
// interactive and every value not given by a flag is asked for. Otherwise
// nothing is asked: unset toggles take their defaults and paths given by
// flag are checked once and trusted.
func (r *Resolver) Resolve(ctx context.Context, opts Options) (Configuration, error) {
	cfg := Configuration{
		Interactive: opts.Name == "",
		ToolRoot:    opts.ToolRoot,
	}

	s := &session{ctx: ctx, p: r.Prompter, out: r.Out}
	if !cfg.Interactive || s.p == nil {
		s.p = prompt.Never{}
	}
	if s.out == nil {
		s.out = ux.NewPrinter(io.Discard)
	}

	var err error
	if cfg.Name, err = s.name(opts.Name, cfg.Interactive); err != nil {
		return Configuration{}, err
	}
	if cfg.OutputDir, err = s.outputDir(opts.OutputDir, cfg.Interactive); err != nil {
		return Configuration{}, err
	}

	cfg.StreamPURoot, err = s.root(streampuLib, opts.StreamPURoot, r.Suggestions.StreamPURoot, cfg.Interactive)
	if err != nil {
		return Configuration{}, err
	}

	if cfg.UseAFF3CT, err = s.toggle(opts.AFF3CT, "Use AFF3CT?", DefaultAFF3CT, cfg.Interactive); err != nil {
		return Configuration{}, err
	}
	if cfg.UseAFF3CT {
		cfg.AFF3CTRoot, err = s.root(aff3ctLib, opts.AFF3CTRoot, r.Suggestions.AFF3CTRoot, cfg.Interactive)
		if err != nil {
			return Configuration{}, err
		}
	}

	if cfg.UseCustom, err = s.toggle(opts.Custom, "Add custom module?", DefaultCustom, cfg.Interactive); err != nil {
		return Configuration{}, err
	}
	if cfg.UseHardware, err = s.toggle(opts.Hardware, "Add hardware simulation (Verilator)?", DefaultHardware, cfg.Interactive); err != nil {
		return Configuration{}, err
	}

	return cfg, nil
}

func (s *session) name(given string, interactive bool) (string, error) {
	if !interactive {
		if err := ValidateName(given); err != nil {
			return "", err
		}
		return given, nil
	}

	for {
		name, err := s.p.Input(s.ctx, "Project name", DefaultName)
		if err != nil {
			return "", err
		}
		if err := ValidateName(name); err != nil {
			s.out.Warning("Invalid name. Use alphanumeric characters, hyphens, or underscores.")
			continue
		}
		return name, nil
	}
}

func (s *session) outputDir(given string, interactive bool) (string, error) {
	if given != "" || !interactive {
		if given == "" {
			given = "."
		}
		dir := expandPath(given)
		if !isDir(dir) {
			return "", &ValidationError{Field: "output directory", Value: given, Reason: "directory does not exist"}
		}
		return dir, nil
	}
	return s.askPath("Output directory", ".")
}

// toggle applies flag → non-interactive default → question.
func (s *session) toggle(flag *bool, question string, def, interactive bool) (bool, error) {
	if flag != nil {
		return *flag, nil
	}
	if !interactive {
		return def, nil
	}
	return s.p.Confirm(s.ctx, question, def)
}

// root settles one library root. A path given by flag (or, non-interactively,
// the suggestion) is checked once and trusted. Otherwise the operator is
// asked until the marker artifact is found or they accept the path as is.
func (s *session) root(lib library, given, suggestion string, interactive bool) (string, error) {
	if given == "" && !interactive {
		given = suggestion
	}
	if given != "" {
		root := expandPath(given)
		if marker := lib.markerPath(root); !exists(marker) {
			s.out.Warning("%s not found at %s", lib.artifact, marker)
		}
		return root, nil
	}
	if !interactive {
		return "", &ValidationError{
			Field:  lib.field,
			Value:  "",
			Reason: "required in non-interactive mode; pass it as a flag or install " + lib.label + " first",
		}
	}

	for {
		root, err := s.askPath("Path to "+lib.label+" directory", suggestion)
		if err != nil {
			return "", err
		}
		marker := lib.markerPath(root)
		if exists(marker) {
			return root, nil
		}
		s.out.Warning("%s not found at %s", lib.artifact, marker)
		again, err := s.p.Confirm(s.ctx, "Try another "+lib.label+" path?", true)
		if err != nil {
			return "", err
		}
		if !again {
			return root, nil
		}
	}
}

// askPath asks for a path that should exist; a missing one can still be
// accepted with "Try anyway?".
func (s *session) askPath(question, def string) (string, error) {
	for {
		answer, err := s.p.Input(s.ctx, question, def)
		if err != nil {
			return "", err
		}
		if answer == "" {
			continue
		}
		path := expandPath(answer)
		if exists(path) {
			return path, nil
		}
		s.out.Warning("Path does not exist: %s", answer)
		anyway, err := s.p.Confirm(s.ctx, "Try anyway?", false)
		if err != nil {
			return "", err
		}
		if anyway {
			return path, nil
		}
	}
}
