package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte/internal/acquire"
	"github.com/madellimac/hulotte/internal/config"
	"github.com/madellimac/hulotte/internal/probe"
	"github.com/madellimac/hulotte/internal/runtime"
)

var (
	installHoot bool
	installJobs int
)

func init() {
	installCmd.Flags().BoolVar(&installHoot, "hoot", false, "Play the startup sound")
	installCmd.Flags().IntVarP(&installJobs, "jobs", "j", 0, "Parallel make jobs (default: install.jobs from config, else one per CPU)")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Fetch and build StreamPU, AFF3CT and the Surfer waveform viewer",
	Long: `Clone, configure, compile and verify the native libraries under
<tool-root>/lib, then optionally download the Surfer waveform viewer into
<tool-root>/tools. Every step asks before doing anything; a summary is
written to <tool-root>/INSTALL_INFO.txt.

Requires git, cmake and g++ on PATH.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		owl := newNotifier(false)
		owl.Art(s.out.Writer())
		if installHoot {
			owl.Hoot(ctx)
		}

		jobs := installJobs
		if jobs <= 0 {
			jobs = config.GetInt(config.KeyInstallJobs)
		}

		in := &acquire.Installer{
			Pipeline: &acquire.Pipeline{
				Runner:   &runtime.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
				Prompter: s.prompter,
				Log:      s.log,
				Out:      s.out,
				Jobs:     jobs,
			},
			Prober:   probe.Prober{},
			Surfer:   acquire.NewSurfer(),
			ToolRoot: s.toolRoot,
		}

		_, err = in.Run(ctx)
		var missing *probe.MissingError
		switch {
		case errors.As(err, &missing):
			for _, m := range missing.Missing {
				s.out.Error("%s not found. Install it with: %s", m.Name, m.Hint)
			}
			return &ExitError{Code: 1, Err: err}
		case errors.Is(err, acquire.ErrAborted):
			return &ExitError{Code: 1, Err: err}
		}
		return commandError(err)
	},
}
