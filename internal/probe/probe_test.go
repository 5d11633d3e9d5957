package probe

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func fakeLookPath(present ...string) func(string) (string, error) {
	set := map[string]bool{}
	for _, p := range present {
		set[p] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
}

func TestRequireAllPresent(t *testing.T) {
	p := Prober{LookPath: fakeLookPath("git", "cmake", "g++")}
	report, err := p.Require(Installer)
	if err != nil {
		t.Fatalf("Require() error: %v", err)
	}
	if !report.OK() {
		t.Error("report should be OK")
	}
}

func TestRequireMissing(t *testing.T) {
	p := Prober{LookPath: fakeLookPath("git")}
	report, err := p.Require(Installer)

	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("Require() error = %v, want *MissingError", err)
	}
	if got := err.Error(); got != "missing required tools: cmake, g++" {
		t.Errorf("Error() = %q", got)
	}

	var buf bytes.Buffer
	report.Print(&buf)
	out := buf.String()
	if !strings.Contains(out, "[ OK ] git found at /usr/bin/git") {
		t.Errorf("missing OK line:\n%s", out)
	}
	if !strings.Contains(out, "[MISS] cmake not found") {
		t.Errorf("missing MISS line:\n%s", out)
	}
}

func TestOptionalNeverMissing(t *testing.T) {
	p := Prober{LookPath: fakeLookPath()}
	report := p.Check(Extras)
	if !report.OK() {
		t.Errorf("optional requirements should not count as missing: %v", report.Missing())
	}
}
