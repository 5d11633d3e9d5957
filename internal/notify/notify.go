package notify

import (
	"context"
	_ "embed"
	"fmt"
	"io"
)

//go:embed owl.txt
var owlArt string

// Notifier greets the operator.
type Notifier interface {
	Art(w io.Writer)
	Hoot(ctx context.Context)
}

// Nop does nothing. Used with --no-hoot and in tests.
type Nop struct{}

func (Nop) Art(io.Writer)        {}
func (Nop) Hoot(context.Context) {}

// printArt writes the embedded banner.
func printArt(w io.Writer) {
	fmt.Fprintln(w, owlArt)
}
