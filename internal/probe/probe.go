package probe

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Requirement is one external binary.
type Requirement struct {
	Name     string
	Hint     string // how to install it
	Optional bool
}

// Installer lists the binaries the dependency installer cannot run without.
var Installer = []Requirement{
	{Name: "git", Hint: "sudo apt install git"},
	{Name: "cmake", Hint: "sudo apt install cmake"},
	{Name: "g++", Hint: "sudo apt install build-essential"},
}

// Extras lists binaries used by generated projects but not by the installer.
var Extras = []Requirement{
	{Name: "make", Hint: "sudo apt install build-essential", Optional: true},
	{Name: "verilator", Hint: "sudo apt install verilator", Optional: true},
	{Name: "surfer", Hint: "hulotte install (waveform viewer step)", Optional: true},
}

// Check is the outcome for one requirement.
type Check struct {
	Requirement
	Path  string
	Found bool
}

// Report is the outcome of probing a set of requirements.
type Report struct {
	Checks []Check
}

// Missing returns the required (non-optional) binaries that were not found.
func (r Report) Missing() []Requirement {
	var missing []Requirement
	for _, c := range r.Checks {
		if !c.Found && !c.Optional {
			missing = append(missing, c.Requirement)
		}
	}
	return missing
}

// OK reports whether every required binary was found.
func (r Report) OK() bool { return len(r.Missing()) == 0 }

// Print writes one status line per check.
func (r Report) Print(w io.Writer) {
	for _, c := range r.Checks {
		switch {
		case c.Found:
			fmt.Fprintf(w, "  [ OK ] %s found at %s\n", c.Name, c.Path)
		case c.Optional:
			fmt.Fprintf(w, "  [WARN] %s not found (optional; %s)\n", c.Name, c.Hint)
		default:
			fmt.Fprintf(w, "  [MISS] %s not found (%s)\n", c.Name, c.Hint)
		}
	}
}

// MissingError names required binaries that are absent.
type MissingError struct {
	Missing []Requirement
}

func (e *MissingError) Error() string {
	names := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		names[i] = m.Name
	}
	return "missing required tools: " + strings.Join(names, ", ")
}

// Prober looks binaries up on PATH. LookPath defaults to exec.LookPath.
type Prober struct {
	LookPath func(string) (string, error)
}

// Check probes every requirement in order.
func (p Prober) Check(reqs []Requirement) Report {
	lookPath := p.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	report := Report{Checks: make([]Check, 0, len(reqs))}
	for _, req := range reqs {
		path, err := lookPath(req.Name)
		report.Checks = append(report.Checks, Check{
			Requirement: req,
			Path:        path,
			Found:       err == nil,
		})
	}
	return report
}

// Require probes reqs and returns a *MissingError if a required one is absent.
func (p Prober) Require(reqs []Requirement) (Report, error) {
	report := p.Check(reqs)
	if missing := report.Missing(); len(missing) > 0 {
		return report, &MissingError{Missing: missing}
	}
	return report, nil
}
