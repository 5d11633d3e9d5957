//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/madellimac/hulotte/internal/runtime"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // HOME, so ~/.hulotte/config.yaml is never the real one
	ToolRoot  string // Hulotte install root: Common/, lib/, tools/
	OutputDir string // where projects are generated
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:   t.TempDir(),
		ToolRoot:  t.TempDir(),
		OutputDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)

	writeFile(t, filepath.Join(env.ToolRoot, "Common", "streampu", "hw", "Verilator_sim.hpp"), "#pragma once\n")
	writeFile(t, filepath.Join(env.ToolRoot, "Common", "streampu", "sw", "Sink.hpp"), "#pragma once\n")
	return env
}

// fakeToolchain answers git, cmake and make the way a successful build of
// both libraries would, creating the archives the pipeline verifies.
func fakeToolchain(t *testing.T) *runtime.FakeRunner {
	t.Helper()
	return &runtime.FakeRunner{Handler: func(c runtime.Command) (*runtime.Output, error) {
		switch {
		case c.Name == "git" && c.Args[0] == "ls-remote":
			return &runtime.Output{Stdout: "a1\trefs/tags/v4.1.0\na2\trefs/tags/v4.0.0\n"}, nil
		case c.Name == "git" && c.Args[0] == "clone":
			dest := c.Args[len(c.Args)-1]
			writeFile(t, filepath.Join(dest, "include", "aff3ct.hpp"), "")
		case c.Name == "make":
			root := filepath.Dir(c.Dir)
			if strings.HasSuffix(root, "aff3ct") {
				writeFile(t, filepath.Join(c.Dir, "lib", "libaff3ct-4.1.0.a"), "")
				writeFile(t, filepath.Join(c.Dir, "lib", "streampu", "lib", "libstreampu.a"), "")
			} else {
				writeFile(t, filepath.Join(c.Dir, "lib", "libstreampu.a"), "")
			}
		}
		return &runtime.Output{}, nil
	}}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the contents of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
