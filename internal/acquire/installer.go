package acquire

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/madellimac/hulotte/internal/branding"
	"github.com/madellimac/hulotte/internal/probe"
	"github.com/madellimac/hulotte/internal/prompt"
)

// Summary is the outcome of an install run.
type Summary struct {
	AFF3CT   *Result
	StreamPU *Result
	Surfer   string // path of the installed viewer
	InfoFile string // written report, empty when nothing was installed
}

// Installer runs a complete install into ToolRoot. Surfer may be nil to
// skip the viewer question.
type Installer struct {
	Pipeline *Pipeline
	Prober   probe.Prober
	Surfer   *Surfer
	ToolRoot string
}

// Run probes prerequisites, then offers AFF3CT, standalone StreamPU and the
// waveform viewer in that order. It returns a *probe.MissingError when a
// required tool is absent and ErrAborted when the operator stops after a
// failed install. Declining every install is a success.
func (in *Installer) Run(ctx context.Context) (*Summary, error) {
	p := in.Pipeline
	p.defaults()
	out := p.Out

	out.Header(branding.DisplayName() + " Dependencies Installer")
	out.Info("%s root: %s", branding.DisplayName(), in.ToolRoot)

	out.Header("Checking Prerequisites")
	report, err := in.Prober.Require(probe.Installer)
	report.Print(out.Writer())
	if err != nil {
		return nil, err
	}
	out.Success("All prerequisites satisfied")

	sum := &Summary{}

	install, err := p.Prompter.Confirm(ctx, "Install AFF3CT (with its bundled StreamPU)?", true)
	if err != nil {
		return nil, err
	}
	if install {
		if sum.AFF3CT, err = in.acquire(ctx, AFF3CT); err != nil {
			return sum, err
		}
	}

	question, def := "Install StreamPU (standalone)?", true
	if sum.AFF3CT != nil && sum.AFF3CT.BundledLibrary != "" {
		out.Info("StreamPU was already built as part of AFF3CT")
		question, def = "Install StreamPU standalone as well?", false
	}
	if install, err = p.Prompter.Confirm(ctx, question, def); err != nil {
		return sum, err
	}
	if install {
		if sum.StreamPU, err = in.acquire(ctx, StreamPU); err != nil {
			return sum, err
		}
	}

	if in.Surfer != nil {
		install, err := p.Prompter.Confirm(ctx, "Install Surfer (waveform viewer)?", true)
		if err != nil {
			return sum, err
		}
		if install {
			out.Header("Installing Surfer (Waveform Viewer)")
			path, err := in.Surfer.Install(ctx, SurferDir(in.ToolRoot))
			if err != nil {
				p.Log.Warn("surfer install failed", "err", err)
				out.Warning("Could not install Surfer: %v", err)
			} else {
				sum.Surfer = path
				out.Success("Surfer downloaded to %s", path)
			}
		}
	}

	results := []*Result{sum.AFF3CT, sum.StreamPU}
	if installed(sum.AFF3CT) || installed(sum.StreamPU) || sum.Surfer != "" {
		path := filepath.Join(in.ToolRoot, InfoFile)
		if err := WriteInstallInfo(path, results, sum.Surfer); err != nil {
			out.Warning("%v", err)
		} else {
			sum.InfoFile = path
		}
	}

	in.printSummary(sum)
	return sum, nil
}

// acquire runs one pipeline. On failure the operator decides whether the
// run goes on; a nil result with a nil error means it does.
func (in *Installer) acquire(ctx context.Context, lib Library) (*Result, error) {
	p := in.Pipeline
	res, err := p.Acquire(ctx, lib, lib.Dest(in.ToolRoot))
	if err == nil {
		return res, nil
	}
	if ctx.Err() != nil || errors.Is(err, prompt.ErrCancelled) {
		return nil, err
	}

	p.Log.Error("install failed", "library", lib.Name, "err", err)
	p.Out.Error("%s installation failed: %v", lib.Name, err)
	cont, perr := p.Prompter.Confirm(ctx, "Continue anyway?", false)
	if perr != nil {
		return nil, perr
	}
	if !cont {
		return nil, ErrAborted
	}
	return nil, nil
}

func installed(r *Result) bool { return r != nil && !r.Skipped }

func (in *Installer) printSummary(sum *Summary) {
	out := in.Pipeline.Out
	out.Header("Installation Complete")

	if installed(sum.AFF3CT) {
		out.Success("AFF3CT installed at: %s", sum.AFF3CT.Root)
		if sum.AFF3CT.BundledRoot != "" {
			out.Success("StreamPU (with AFF3CT) at: %s", sum.AFF3CT.BundledRoot)
		}
	}
	if installed(sum.StreamPU) {
		out.Success("StreamPU (standalone) installed at: %s", sum.StreamPU.Root)
	}
	if sum.Surfer != "" {
		out.Success("Surfer installed at: %s", sum.Surfer)
	}
	if sum.InfoFile != "" {
		out.Muted("Details written to %s", sum.InfoFile)
	}

	out.Println()
	out.Info("Next steps:")
	out.Println("  1. Run: " + branding.CLIName() + " create")
	out.Println("  2. Follow the prompts to create your project")
	out.Println("  3. Use the paths shown above when asked")
}
