package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Options tune how a Renderer styles its output.
type Options struct {
	Theme       string
	NoColor     bool
	WeekStart   time.Weekday
	ClearScreen bool
}

// Renderer draws schedules, calendars and operator messages.
// Normal output goes to out, failures to errOut.
type Renderer struct {
	out, errOut io.Writer
	lr          *lipgloss.Renderer
	theme       Theme
	weekStart   time.Weekday
	clear       bool
	terminal    bool
}

// NewRenderer returns a Renderer writing to out and errOut.
func NewRenderer(out, errOut io.Writer, opt Options) *Renderer {
	lr := lipgloss.NewRenderer(out)
	if opt.NoColor {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:       out,
		errOut:    errOut,
		lr:        lr,
		theme:     NewTheme(opt.Theme, lr),
		weekStart: opt.WeekStart,
		clear:     opt.ClearScreen,
		terminal:  isTerminal(out),
	}
}

// Theme returns the active theme.
func (r *Renderer) Theme() Theme { return r.theme }

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ClearScreen wipes the terminal when output is one and clearing is enabled.
func (r *Renderer) ClearScreen() {
	if !r.clear || !r.terminal {
		return
	}
	termenv.NewOutput(r.out).ClearScreen()
}

// Divider separates one render from the next.
func (r *Renderer) Divider() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.theme.Muted.Render(strings.Repeat("=", 74)))
	fmt.Fprintln(r.out)
}

// OK reports a success.
func (r *Renderer) OK(msg string) {
	fmt.Fprintln(r.out, r.theme.Success.Render(r.theme.SymOK+" "+msg))
}

// Info prints a plain operator message.
func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.out, msg)
}

// Fail reports a user-facing error.
func (r *Renderer) Fail(msg string) {
	fmt.Fprintln(r.errOut, r.theme.Error.Render(r.theme.SymFail+" "+msg))
}

// Prompt writes s without a trailing newline.
func (r *Renderer) Prompt(s string) {
	fmt.Fprint(r.out, r.theme.Accent.Render(s))
}
