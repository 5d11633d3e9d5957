package cli

import (
	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte/internal/acquire"
	"github.com/madellimac/hulotte/internal/project"
	"github.com/madellimac/hulotte/internal/scaffold"
	"github.com/madellimac/hulotte/internal/ux"
)

var (
	createOutputDir    string
	createStreamPURoot string
	createAFF3CTRoot   string

	createAFF3CT     bool
	createNoAFF3CT   bool
	createCustom     bool
	createNoCustom   bool
	createHardware   bool
	createNoHardware bool

	createNoHoot bool
	createQuiet  bool
)

func init() {
	f := createCmd.Flags()
	f.StringVar(&createOutputDir, "output-dir", "", "Directory the project folder is created in (default: current directory)")
	f.StringVar(&createStreamPURoot, "streampu-root", "", "Path to a StreamPU checkout with build/lib/libstreampu.a")
	f.StringVar(&createAFF3CTRoot, "aff3ct-root", "", "Path to an AFF3CT checkout")

	f.BoolVar(&createAFF3CT, "aff3ct", false, "Link against AFF3CT")
	f.BoolVar(&createNoAFF3CT, "no-aff3ct", false, "Do not use AFF3CT")
	f.BoolVar(&createCustom, "custom", false, "Add the custom processing stage")
	f.BoolVar(&createNoCustom, "no-custom", false, "Leave out the custom processing stage")
	f.BoolVar(&createHardware, "hardware", false, "Add a Verilator hardware simulation")
	f.BoolVar(&createNoHardware, "no-hardware", false, "Leave out the hardware simulation")

	f.BoolVar(&createNoHoot, "no-hoot", false, "Do not play the startup sound")
	f.BoolVarP(&createQuiet, "quiet", "q", false, "No banner and no startup sound")

	createCmd.MarkFlagsMutuallyExclusive("aff3ct", "no-aff3ct")
	createCmd.MarkFlagsMutuallyExclusive("custom", "no-custom")
	createCmd.MarkFlagsMutuallyExclusive("hardware", "no-hardware")

	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Generate a new StreamPU project",
	Long: `Generate a C++ project that builds against StreamPU.

Without a name every setting is asked for interactively. With a name nothing
is asked: unset options take their defaults (custom stage on, AFF3CT off,
hardware simulation off) and library paths come from the flags or from a
previous "hulotte install".

Examples:
  hulotte create
  hulotte create demo
  hulotte create demo --aff3ct --aff3ct-root ~/aff3ct --no-custom
  hulotte create sim --hardware --output-dir ~/projects`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return commandError(runCreate(cmd, args))
	},
}

// flagToggle maps an --x/--no-x pair to a tri-state value.
func flagToggle(on, off bool) *bool {
	switch {
	case on:
		v := true
		return &v
	case off:
		v := false
		return &v
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	owl := newNotifier(createQuiet)
	owl.Art(s.out.Writer())
	if !createNoHoot {
		owl.Hoot(ctx)
	}

	opts := project.Options{
		OutputDir:    createOutputDir,
		StreamPURoot: createStreamPURoot,
		AFF3CTRoot:   createAFF3CTRoot,
		ToolRoot:     s.toolRoot,
		AFF3CT:       flagToggle(createAFF3CT, createNoAFF3CT),
		Custom:       flagToggle(createCustom, createNoCustom),
		Hardware:     flagToggle(createHardware, createNoHardware),
	}
	if len(args) == 1 {
		opts.Name = args[0]
	}

	installed := acquire.Discover(s.toolRoot)
	s.log.Debug("discovered libraries", "streampu", installed.StreamPU, "aff3ct", installed.AFF3CT)

	s.out.Header("Hulotte Project Generator")
	resolver := &project.Resolver{
		Prompter:    s.prompter,
		Out:         s.out,
		Suggestions: installed.Suggestions(),
	}
	cfg, err := resolver.Resolve(ctx, opts)
	if err != nil {
		return err
	}

	s.out.Info("Creating project in: %s", cfg.ProjectDir())
	res, err := scaffold.Synthesize(ctx, cfg)
	if res != nil {
		printResult(s.out, res)
	}
	if err != nil {
		return err
	}

	printCreated(s.out, cfg)
	return nil
}

func printResult(out *ux.Printer, res *scaffold.Result) {
	for _, f := range res.Files {
		out.Success("Created %s", f)
	}
	if len(res.Copied) > 0 {
		out.Success("Copied %d support files", len(res.Copied))
	}
	for _, w := range res.Warnings {
		out.Warning("%s", w)
	}
}

func printCreated(out *ux.Printer, cfg project.Configuration) {
	out.Header("Project Created Successfully!")
	out.Println("Project:       " + cfg.Name)
	out.Println("Location:      " + cfg.ProjectDir())
	out.Println("StreamPU:      " + cfg.StreamPURoot)
	if cfg.UseAFF3CT {
		out.Println("AFF3CT:        " + cfg.AFF3CTRoot)
	} else {
		out.Println("AFF3CT:        disabled")
	}
	out.Println("Custom module: " + enabled(cfg.UseCustom))
	out.Println("Hardware sim:  " + enabled(cfg.UseHardware))

	out.Println()
	out.Info("Next steps:")
	out.Println("  1. cd " + cfg.ProjectDir())
	out.Println("  2. ./build.sh")
	out.Println("  3. ./build/" + cfg.Name)
	if cfg.UseHardware {
		out.Println("  4. ./view_waves.sh")
	}
}

func enabled(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
