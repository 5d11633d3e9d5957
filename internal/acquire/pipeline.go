package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/madellimac/hulotte/internal/prompt"
	"github.com/madellimac/hulotte/internal/runtime"
	"github.com/madellimac/hulotte/internal/ux"
)

// Result describes a library after a pipeline run.
type Result struct {
	Library string
	Kind    Kind
	Root    string
	Version string // empty for the default branch

	PrimaryLibrary string
	Ambiguous      bool // more than one archive matched the fallback glob

	// Set for Bundled libraries when the StreamPU copy was found.
	BundledRoot    string
	BundledLibrary string

	// Skipped is true when the operator kept an existing checkout.
	Skipped bool
}

// Pipeline acquires libraries. Jobs is the make parallelism; zero means
// one job per online CPU.
type Pipeline struct {
	Runner   runtime.Runner
	Prompter prompt.Prompter
	Log      *log.Logger
	Out      *ux.Printer
	Jobs     int
}

func (p *Pipeline) defaults() {
	if p.Log == nil {
		p.Log = ux.Discard()
	}
	if p.Out == nil {
		p.Out = ux.NewPrinter(io.Discard)
	}
	if p.Prompter == nil {
		p.Prompter = prompt.Never{}
	}
	if p.Runner == nil {
		p.Runner = &runtime.ExecRunner{}
	}
}

// Acquire clones lib into dest, builds it and verifies the archive. When
// dest already exists and the operator keeps it, the result is Skipped and
// nothing else runs.
func (p *Pipeline) Acquire(ctx context.Context, lib Library, dest string) (*Result, error) {
	p.defaults()
	p.Out.Header("Installing " + lib.Name)

	// 1. target
	if _, err := os.Stat(dest); err == nil {
		p.Out.Warning("%s directory already exists: %s", lib.Name, dest)
		reinstall, err := p.Prompter.Confirm(ctx, "Delete it and reinstall "+lib.Name+"?", false)
		if err != nil {
			return nil, err
		}
		if !reinstall {
			p.Out.Info("Skipping %s installation", lib.Name)
			return &Result{Library: lib.Name, Kind: lib.Kind, Root: dest, Skipped: true}, nil
		}
		p.Log.Info("removing existing checkout", "library", lib.Name, "dir", dest)
		if err := os.RemoveAll(dest); err != nil {
			return nil, &StageError{Library: lib.Name, Stage: StageTarget, Command: "remove " + dest, Err: err}
		}
	}

	// 2. version
	url := lib.RepoURL()
	ref, err := p.resolveVersion(ctx, lib, url)
	if err != nil {
		return nil, err
	}
	res := &Result{Library: lib.Name, Kind: lib.Kind, Root: dest, Version: ref}

	// 3. clone
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return nil, &StageError{Library: lib.Name, Stage: StageClone, Err: err}
	}
	args := []string{"clone", "--recursive"}
	if ref != "" {
		args = append(args, "--branch", ref)
	}
	args = append(args, url, dest)
	p.Out.Info("Cloning %s repository...", lib.Name)
	if err := p.run(ctx, lib, StageClone, runtime.Command{Name: "git", Args: args}); err != nil {
		return nil, err
	}
	p.Out.Success("%s cloned", lib.Name)

	// 4. configure
	buildDir := filepath.Join(dest, "build")
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return nil, &StageError{Library: lib.Name, Stage: StageConfigure, Err: err}
	}
	p.Out.Info("Configuring %s with CMake...", lib.Name)
	configure := runtime.Command{Name: "cmake", Args: append([]string{".."}, lib.CMakeFlags...), Dir: buildDir}
	if err := p.run(ctx, lib, StageConfigure, configure); err != nil {
		return nil, err
	}
	p.Out.Success("CMake configuration successful")

	// 5. compile
	jobs := Jobs(p.Jobs)
	p.Out.Info("Compiling %s (using %d cores), this may take several minutes...", lib.Name, jobs)
	compile := runtime.Command{Name: "make", Args: []string{"-j" + strconv.Itoa(jobs)}, Dir: buildDir}
	if err := p.run(ctx, lib, StageCompile, compile); err != nil {
		return nil, err
	}
	p.Out.Success("%s compiled", lib.Name)

	// 6. verify
	if err := p.verify(lib, res); err != nil {
		return nil, err
	}
	return res, nil
}

// verify fills res with the archives found under res.Root.
func (p *Pipeline) verify(lib Library, res *Result) error {
	path, ambiguous, err := FindLibrary(res.Root, lib.Canonical, lib.Glob)
	if err != nil {
		return &StageError{
			Library: lib.Name,
			Stage:   StageVerify,
			Command: filepath.Join(res.Root, lib.Glob),
			Err:     err,
		}
	}
	res.PrimaryLibrary = path
	res.Ambiguous = ambiguous
	if ambiguous {
		p.Out.Warning("Several %s archives matched %s, using %s", lib.Name, lib.Glob, filepath.Base(path))
	}
	p.Out.Success("%s library found: %s", lib.Name, filepath.Base(path))

	if lib.Kind != Bundled {
		return nil
	}
	bundled := filepath.Join(res.Root, lib.BundledLib)
	if !fileExists(bundled) {
		p.Out.Warning("StreamPU library not found in the %s build", lib.Name)
		return nil
	}
	res.BundledRoot = filepath.Join(res.Root, lib.BundledRoot)
	res.BundledLibrary = bundled
	p.Out.Success("StreamPU library found (built with %s)", lib.Name)
	return nil
}

// run executes one stage command. A non-zero exit becomes a StageError
// carrying the tail of the command's output.
func (p *Pipeline) run(ctx context.Context, lib Library, stage Stage, cmd runtime.Command) error {
	p.Log.Info("stage", "library", lib.Name, "stage", string(stage))
	p.Log.Debug("running", "cmd", cmd.String(), "dir", cmd.Dir)

	out, err := p.Runner.Run(ctx, cmd)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return &StageError{Library: lib.Name, Stage: stage, Command: cmd.String(), Err: err}
	}
	if !out.Success() {
		cause := fmt.Errorf("exit status %d", out.ExitCode)
		if tail := out.Tail(5); tail != "" {
			cause = fmt.Errorf("exit status %d\n%s", out.ExitCode, tail)
		}
		return &StageError{Library: lib.Name, Stage: stage, Command: cmd.String(), Err: cause}
	}
	return nil
}
