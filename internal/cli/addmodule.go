package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte/internal/scaffold"
	"github.com/madellimac/hulotte/internal/ux"
)

func init() {
	rootCmd.AddCommand(addModuleCmd)
}

var addModuleCmd = &cobra.Command{
	Use:   "add-module <project-dir> <ModuleName>",
	Short: "Add a custom processing stage to an existing project",
	Long: `Generate src/custom/<ModuleName>.hpp and .cpp in a project created by
hulotte and add the source to the project's custom library.

Example:
  hulotte add-module ./demo DataProcessor`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := ux.NewPrinter(cmd.OutOrStdout())

		dir, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		res, err := scaffold.AddModule(cmd.Context(), dir, args[1])
		if err != nil {
			return commandError(err)
		}

		out.Header("Adding Custom Module")
		out.Println("Project:    " + res.ProjectName)
		out.Println("Location:   " + dir)
		out.Println("New module: " + res.ModuleName)
		out.Println()
		for _, f := range res.Files {
			out.Success("Created %s", f)
		}
		out.Success("Added src/custom/%s.cpp to %s", res.ModuleName, res.CMakeFile)

		hint := res.BindingHint(scaffold.SnakeCase(scaffold.DefaultModuleName))
		out.Println()
		out.Info("Next steps: wire the stage in src/main.cpp")
		out.Println("  Include at the top:")
		out.Println("      " + hint[0])
		out.Println("  Instantiate with the other modules:")
		out.Println("      " + hint[1])
		out.Println("  Bind its sockets, for example after the existing custom stage:")
		out.Println("      " + hint[2])
		out.Println("      " + hint[3])
		out.Println("  Then rebuild with ./build.sh")
		return nil
	},
}
