package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles every renderer pulls from.
type Theme struct {
	Name string

	Header   lipgloss.Style
	Today    lipgloss.Style
	Sunday   lipgloss.Style
	Category lipgloss.Style
	TaskID   lipgloss.Style
	Repeat   lipgloss.Style

	CalTitle lipgloss.Style
	CalHead  lipgloss.Style
	CalToday lipgloss.Style

	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Border  lipgloss.Border
	Frame   lipgloss.Style

	SymOK, SymFail string
}

// Themes lists the names NewTheme understands.
var Themes = []string{"classic", "neon", "mono"}

// NewTheme builds the named theme on r. Unknown names get classic.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	s := r.NewStyle
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:     "neon",
			Header:   s().Foreground(lipgloss.Color("213")).Bold(true),
			Today:    s().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("51")).Bold(true),
			Sunday:   s().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("201")),
			Category: s().Foreground(lipgloss.Color("51")),
			TaskID:   s().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("213")),
			Repeat:   s().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("118")),
			CalTitle: s().Foreground(lipgloss.Color("213")).Bold(true),
			CalHead:  s().Foreground(lipgloss.Color("51")),
			CalToday: s().Reverse(true).Bold(true),
			Muted:    s().Foreground(lipgloss.Color("244")),
			Accent:   s().Foreground(lipgloss.Color("51")),
			Success:  s().Foreground(lipgloss.Color("118")),
			Error:    s().Foreground(lipgloss.Color("197")).Bold(true),
			Border:   lipgloss.RoundedBorder(),
			Frame:    s().BorderForeground(lipgloss.Color("201")).Padding(0, 1),
			SymOK:    "✔",
			SymFail:  "✖",
		}
	case "mono":
		return Theme{
			Name:     "mono",
			Header:   s().Bold(true),
			Today:    s().Reverse(true),
			Sunday:   s().Underline(true),
			Category: s(),
			TaskID:   s().Bold(true),
			Repeat:   s().Italic(true),
			CalTitle: s().Bold(true),
			CalHead:  s(),
			CalToday: s().Reverse(true),
			Muted:    s(),
			Accent:   s(),
			Success:  s(),
			Error:    s().Bold(true),
			Border:   lipgloss.NormalBorder(),
			Frame:    s().Padding(0, 1),
			SymOK:    "ok:",
			SymFail:  "error:",
		}
	default:
		return Theme{
			Name:     "classic",
			Header:   s().Foreground(lipgloss.Color("11")),
			Today:    s().Foreground(lipgloss.Color("11")).Background(lipgloss.Color("5")),
			Sunday:   s().Foreground(lipgloss.Color("11")).Background(lipgloss.Color("25")),
			Category: s(),
			TaskID:   s().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("20")),
			Repeat:   s().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28")),
			CalTitle: s().Bold(true),
			CalHead:  s().Faint(true),
			CalToday: s().Foreground(lipgloss.Color("11")).Background(lipgloss.Color("5")),
			Muted:    s().Faint(true),
			Accent:   s().Foreground(lipgloss.Color("12")),
			Success:  s().Foreground(lipgloss.Color("42")),
			Error:    s().Foreground(lipgloss.Color("9")).Bold(true),
			Border:   lipgloss.RoundedBorder(),
			Frame:    s().BorderForeground(lipgloss.Color("8")).Padding(0, 1),
			SymOK:    "✔",
			SymFail:  "✖",
		}
	}
}
