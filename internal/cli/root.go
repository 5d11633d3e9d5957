package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte/internal/branding"
	"github.com/madellimac/hulotte/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose  bool
	toolRoot string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates C++ projects built on StreamPU, optionally with AFF3CT,
a custom processing stage and a Verilator hardware simulation, and builds
those libraries from source.

Examples:
  hulotte install              Fetch and build StreamPU and AFF3CT
  hulotte create               Answer a few questions and generate a project
  hulotte create demo --aff3ct --no-custom
  hulotte add-module ./demo Gain`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every external command")
	rootCmd.PersistentFlags().StringVar(&toolRoot, "tool-root", "", "Hulotte install root (default: next to the executable, else the current directory)")
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) (code int) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nUnexpected error: %v\n%s", r, debug.Stack())
			code = 1
		}
	}()

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(currentVersion().String()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	return 0
}
