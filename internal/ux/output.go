package ux

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette, tuned for dark terminals.
var (
	ColorTitle   = lipgloss.Color("#C08A3E")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorInfo    = lipgloss.Color("#3B82F6")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")
	ColorMuted   = lipgloss.Color("#6B7280")
)

// Icon is a status glyph prefixed to a message line.
type Icon string

const (
	IconSuccess Icon = "✓"
	IconInfo    Icon = "→"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
)

// Printer writes styled status lines to a single writer. Color is decided by
// the writer: buffers and pipes get plain text.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	rule    lipgloss.Style
	success lipgloss.Style
	info    lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

// NewPrinter returns a Printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(ColorTitle),
		rule:    r.NewStyle().Foreground(ColorTitle),
		success: r.NewStyle().Foreground(ColorSuccess),
		info:    r.NewStyle().Foreground(ColorInfo),
		warning: r.NewStyle().Foreground(ColorWarning),
		err:     r.NewStyle().Bold(true).Foreground(ColorError),
		muted:   r.NewStyle().Foreground(ColorMuted),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Header prints a title framed by horizontal rules.
func (p *Printer) Header(title string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.rule.Render(rule))
	fmt.Fprintln(p.w, p.title.Render("  "+title))
	fmt.Fprintln(p.w, p.rule.Render(rule))
	fmt.Fprintln(p.w)
}

// Success prints a line prefixed with a check mark.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.success, IconSuccess, format, args...)
}

// Info prints an informational line.
func (p *Printer) Info(format string, args ...any) {
	p.line(p.info, IconInfo, format, args...)
}

// Warning prints a warning line.
func (p *Printer) Warning(format string, args ...any) {
	p.line(p.warning, IconWarning, format, args...)
}

// Error prints an error line.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.err, IconError, format, args...)
}

// Muted prints de-emphasized text without an icon.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.w, p.muted.Render(fmt.Sprintf(format, args...)))
}

// Println prints an unstyled line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *Printer) line(style lipgloss.Style, icon Icon, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, style.Render(string(icon)+" "+msg))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
