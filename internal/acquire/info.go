package acquire

import (
	"fmt"
	"strings"

	"github.com/madellimac/hulotte/internal/branding"
	"github.com/madellimac/hulotte/internal/platform"
)

// InfoFile is the report written at the tool root after an install run.
const InfoFile = "INSTALL_INFO.txt"

// FormatInstallInfo renders the install report. Nil and skipped results
// are left out.
func FormatInstallInfo(results []*Result, surfer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Dependencies Installation Information\n", branding.DisplayName())
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, r := range results {
		if r == nil || r.Skipped {
			continue
		}
		if r.Kind == Bundled {
			fmt.Fprintf(&b, "%s Installation:\n", r.Library)
		} else {
			fmt.Fprintf(&b, "%s Standalone Installation:\n", r.Library)
		}
		fmt.Fprintf(&b, "  Root: %s\n", r.Root)
		fmt.Fprintf(&b, "  Library: %s\n", r.PrimaryLibrary)
		fmt.Fprintf(&b, "  Version: %s\n", versionLabel(r.Version))
		if r.BundledRoot != "" {
			fmt.Fprintf(&b, "  StreamPU (submodule): %s\n", r.BundledRoot)
			fmt.Fprintf(&b, "  StreamPU Library: %s\n", r.BundledLibrary)
		}
		b.WriteString("\n")
	}

	if surfer != "" {
		fmt.Fprintf(&b, "Surfer (Waveform Viewer): %s\n", surfer)
	}

	b.WriteString("\nTo create a new project, run:\n")
	fmt.Fprintf(&b, "  %s create\n", branding.CLIName())
	return b.String()
}

// WriteInstallInfo writes FormatInstallInfo to path. The file is for the
// operator only; nothing reads it back.
func WriteInstallInfo(path string, results []*Result, surfer string) error {
	if err := platform.WriteFile(path, []byte(FormatInstallInfo(results, surfer)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func versionLabel(v string) string {
	if v == "" {
		return "default branch"
	}
	return v
}
