package prompt

import (
	"context"
	"fmt"
)

// Scripted replays canned answers in order and records every question.
// An empty answer selects the question's default.
type Scripted struct {
	Answers []string
	Asked   []string
}

// NewScripted returns a prompter that answers with the given lines.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{Answers: answers}
}

func (s *Scripted) next(question string) (string, error) {
	s.Asked = append(s.Asked, question)
	if len(s.Answers) == 0 {
		return "", fmt.Errorf("no scripted answer for %q", question)
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a, nil
}

func (s *Scripted) Confirm(_ context.Context, question string, def bool) (bool, error) {
	a, err := s.next(question)
	if err != nil {
		return false, err
	}
	v, ok := parseYesNo(a, def)
	if !ok {
		return false, fmt.Errorf("scripted answer %q to %q is not yes/no", a, question)
	}
	return v, nil
}

func (s *Scripted) Input(_ context.Context, question, def string) (string, error) {
	a, err := s.next(question)
	if err != nil {
		return "", err
	}
	if a == "" {
		return def, nil
	}
	return a, nil
}
