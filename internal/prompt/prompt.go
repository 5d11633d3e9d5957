package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrCancelled is returned when the operator aborts a prompt (Ctrl-C, EOF).
var ErrCancelled = errors.New("cancelled by user")

// ErrNonInteractive is returned by Never when anything tries to ask a question.
var ErrNonInteractive = errors.New("prompt attempted in non-interactive mode")

// Prompter asks the operator yes/no and free-text questions.
type Prompter interface {
	Confirm(ctx context.Context, question string, def bool) (bool, error)
	Input(ctx context.Context, question, def string) (string, error)
}

// Never refuses every question.
type Never struct{}

func (Never) Confirm(_ context.Context, question string, _ bool) (bool, error) {
	return false, fmt.Errorf("%w: %q", ErrNonInteractive, question)
}

func (Never) Input(_ context.Context, question, _ string) (string, error) {
	return "", fmt.Errorf("%w: %q", ErrNonInteractive, question)
}

// parseYesNo interprets a confirmation answer. ok is false when the answer
// is neither empty nor a recognised yes/no.
func parseYesNo(answer string, def bool) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def, true
	case "y", "yes", "o", "oui":
		return true, true
	case "n", "no", "non":
		return false, true
	}
	return false, false
}

func confirmSuffix(def bool) string {
	if def {
		return "[Y/n]"
	}
	return "[y/N]"
}
