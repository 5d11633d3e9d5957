package runtime

import (
	"context"
	"strings"
)

// Command is one child-process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string // working directory; empty means the current one
}

// String renders the command line the way an operator would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Output captures the result of a command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status 0.
func (o *Output) Success() bool { return o != nil && o.ExitCode == 0 }

// Tail returns the last n non-empty lines of stderr, falling back to stdout.
func (o *Output) Tail(n int) string {
	if o == nil {
		return ""
	}
	text := o.Stderr
	if strings.TrimSpace(text) == "" {
		text = o.Stdout
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// Runner executes commands. A non-zero exit is reported through
// Output.ExitCode, not through the error, which is reserved for failures to
// start or wait for the process.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Output, error)
}
