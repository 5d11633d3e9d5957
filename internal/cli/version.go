package cli

import (
	"encoding/json"
	"fmt"
	goruntime "runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte/internal/branding"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	rootCmd.AddCommand(versionCmd)
}

// versionInfo is what both `hulotte version` and `hulotte --version` report.
type versionInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go"`
	Platform  string `json:"platform"`
}

// currentVersion uses the ldflags values, falling back to the module
// version stamped by `go install` when the binary was not built by a release.
func currentVersion() versionInfo {
	v := versionInfo{
		Name:      branding.DisplayName(),
		Version:   buildVersion,
		Commit:    buildCommit,
		Date:      buildDate,
		GoVersion: goruntime.Version(),
		Platform:  goruntime.GOOS + "/" + goruntime.GOARCH,
	}
	if v.Version == "" || v.Version == "dev" {
		v.Version = "dev"
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v.Version = bi.Main.Version
		}
	}
	return v
}

// String is the version line, without the tool name.
func (v versionInfo) String() string {
	if v.Version == "dev" {
		return "dev (built from source)"
	}
	var meta []string
	if v.Commit != "" {
		meta = append(meta, "commit: "+v.Commit)
	}
	if v.Date != "" {
		meta = append(meta, "built: "+v.Date)
	}
	if len(meta) == 0 {
		return v.Version
	}
	return v.Version + " (" + strings.Join(meta, ", ") + ")"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		v := currentVersion()

		switch {
		case versionShort:
			fmt.Fprintln(w, v.Version)
		case versionJSON:
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(w, string(out))
		default:
			fmt.Fprintf(w, "%s %s\n", v.Name, v)
			fmt.Fprintf(w, "%s %s\n", v.GoVersion, v.Platform)
		}
		return nil
	},
}
