package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte/internal/acquire"
	"github.com/madellimac/hulotte/internal/probe"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check build tools and installed libraries",
	Long: `Report the tools Hulotte and generated projects rely on, and the
libraries a previous "hulotte install" left under the tool root.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		s.out.Header("Tools")
		reqs := append(append([]probe.Requirement{}, probe.Installer...), probe.Extras...)
		report := probe.Prober{}.Check(reqs)
		report.Print(s.out.Writer())

		s.out.Header("Libraries")
		s.out.Info("Tool root: %s", s.toolRoot)
		in := acquire.Discover(s.toolRoot)
		printInstalled(s, "StreamPU", in.StreamPU, in.StreamPULibrary)
		printInstalled(s, "AFF3CT", in.AFF3CT, in.AFF3CTLibrary)
		if in.BundledStreamPU != "" {
			s.out.Success("StreamPU (built with AFF3CT): %s", in.BundledStreamPU)
		}
		if in.Surfer != "" {
			s.out.Success("Surfer: %s", in.Surfer)
		}

		if !report.OK() {
			return &ExitError{Code: 1, Err: &probe.MissingError{Missing: report.Missing()}}
		}
		return nil
	},
}

func printInstalled(s *session, name, root, lib string) {
	if root == "" {
		s.out.Warning("%s not installed (run 'hulotte install' or pass --%s-root to create)", name, strings.ToLower(name))
		return
	}
	s.out.Success("%s: %s", name, root)
	s.out.Muted("  %s", lib)
}

