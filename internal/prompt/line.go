package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Line asks questions on w and reads one answer per line from r. It is not
// safe for concurrent use.
type Line struct {
	w io.Writer
	r *bufio.Reader

	// pending is a read started by a call whose context ended first; the
	// next call takes its answer instead of reading again.
	pending chan lineResult
}

type lineResult struct {
	text string
	err  error
}

// NewLine returns a line-based prompter.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Confirm asks a yes/no question until a recognised answer is given.
func (l *Line) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	for {
		fmt.Fprintf(l.w, "%s %s: ", question, confirmSuffix(def))
		answer, err := l.readLine(ctx)
		if err != nil {
			return false, err
		}
		if v, ok := parseYesNo(answer, def); ok {
			return v, nil
		}
		fmt.Fprintln(l.w, "Please answer y or n.")
	}
}

// Input asks a free-text question. An empty answer selects def.
func (l *Line) Input(ctx context.Context, question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(l.w, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(l.w, "%s: ", question)
	}
	answer, err := l.readLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// readLine waits for the next line or for ctx to end. A line is only read
// when asked for. Without a cancellable ctx the read is synchronous;
// otherwise it runs on a goroutine that exits as soon as the line arrives.
func (l *Line) readLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		fmt.Fprintln(l.w)
		return "", ErrCancelled
	}

	var res lineResult
	if l.pending == nil && ctx.Done() == nil {
		res = l.read()
	} else {
		ch := l.pending
		if ch == nil {
			ch = make(chan lineResult, 1)
			go func() { ch <- l.read() }()
		}
		select {
		case <-ctx.Done():
			l.pending = ch
			fmt.Fprintln(l.w)
			return "", ErrCancelled
		case res = <-ch:
			l.pending = nil
		}
	}

	if res.err != nil {
		// EOF on stdin is the terminal equivalent of an abort.
		fmt.Fprintln(l.w)
		return "", ErrCancelled
	}
	return strings.TrimSpace(res.text), nil
}

// read returns one line. A last line without a newline is still an answer;
// the following read reports EOF.
func (l *Line) read() lineResult {
	text, err := l.r.ReadString('\n')
	if err != nil && text != "" {
		err = nil
	}
	return lineResult{text: text, err: err}
}
