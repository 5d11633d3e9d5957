package runtime

import (
	"context"
	"sync"
)

// FakeRunner records commands instead of running them. Handler decides the
// outcome of each call; a nil Handler makes every command succeed silently.
type FakeRunner struct {
	Handler func(Command) (*Output, error)

	mu       sync.Mutex
	Commands []Command
}

func (f *FakeRunner) Run(ctx context.Context, c Command) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.Commands = append(f.Commands, c)
	f.mu.Unlock()

	if f.Handler == nil {
		return &Output{}, nil
	}
	return f.Handler(c)
}

// Names returns the program name of every recorded command, in order.
func (f *FakeRunner) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, len(f.Commands))
	for i, c := range f.Commands {
		names[i] = c.Name
	}
	return names
}
