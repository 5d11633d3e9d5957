package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Form asks questions with terminal form widgets. Use it only when stdin is
// a terminal.
type Form struct {
	// Accessible switches huh to its screen-reader friendly mode.
	Accessible bool
}

func (f Form) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	value := def
	field := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if err := f.run(ctx, field); err != nil {
		return false, err
	}
	return value, nil
}

func (f Form) Input(ctx context.Context, question, def string) (string, error) {
	value := def
	field := huh.NewInput().
		Title(question).
		Placeholder(def).
		Value(&value)
	if err := f.run(ctx, field); err != nil {
		return "", err
	}
	if value == "" {
		return def, nil
	}
	return value, nil
}

func (f Form) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithAccessible(f.Accessible)

	err := form.RunWithContext(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, context.Canceled):
		return ErrCancelled
	default:
		return fmt.Errorf("reading answer: %w", err)
	}
}
