package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte/internal/config"
	"github.com/madellimac/hulotte/internal/notify"
	"github.com/madellimac/hulotte/internal/prompt"
	"github.com/madellimac/hulotte/internal/ux"
)

// session bundles what every command needs to talk to the operator.
type session struct {
	out      *ux.Printer
	log      *log.Logger
	prompter prompt.Prompter
	toolRoot string
}

func newSession(cmd *cobra.Command) (*session, error) {
	root, err := resolveToolRoot(toolRoot)
	if err != nil {
		return nil, err
	}
	return &session{
		out:      ux.NewPrinter(cmd.OutOrStdout()),
		log:      ux.NewLogger(cmd.ErrOrStderr(), verbose),
		prompter: newPrompter(),
		toolRoot: root,
	}, nil
}

// newPrompter uses terminal forms when both ends are a terminal and plain
// line prompts otherwise, so piped answers keep working.
func newPrompter() prompt.Prompter {
	if ux.IsTerminal(os.Stdin) && ux.IsTerminal(os.Stdout) {
		return prompt.Form{}
	}
	return prompt.NewLine(os.Stdin, os.Stdout)
}

// newNotifier returns the owl, or a no-op when sound and art are off.
func newNotifier(quiet bool) notify.Notifier {
	if quiet {
		return notify.Nop{}
	}
	return notify.NewOwl(os.Stdout, config.Get(config.KeySoundPreset), config.Get(config.KeySoundWAV))
}

// commandError turns operator cancellation into a plain exit 1.
func commandError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, prompt.ErrCancelled) {
		return &ExitError{Code: 1, Err: prompt.ErrCancelled}
	}
	return err
}

// resolveToolRoot picks the Hulotte install root: the flag, then the
// executable's directory or its parent when one holds Common/, then the
// current directory.
func resolveToolRoot(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
	}
	return findToolRoot(exe, cwd), nil
}

func findToolRoot(exe, cwd string) string {
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, candidate := range []string{dir, filepath.Dir(dir)} {
			if info, err := os.Stat(filepath.Join(candidate, "Common")); err == nil && info.IsDir() {
				return candidate
			}
		}
	}
	return cwd
}
