package ui

import (
	"fmt"
	"strings"
)

// Panel draws lines inside a framed box using the current theme.
func (r *Renderer) Panel(lines []string) string {
	return r.theme.Frame.Border(r.theme.Border).Render(strings.Join(lines, "\n"))
}

var helpRows = [][2]string{
	{"<id>m<date>", "move a task (4m20, 4mt, 4mFri)"},
	{"n <body>; <category>; <date>", "new task"},
	{"<id>d", "delete a task"},
	{"w", "save"},
	{"q", "quit, asking to save"},
	{"wq", "save and quit"},
}

// Help lists the interactive commands.
func (r *Renderer) Help() string {
	t := r.theme
	lines := []string{t.Header.Render("Commands")}
	for _, row := range helpRows {
		lines = append(lines, t.Accent.Render(fmt.Sprintf("%-29s", row[0]))+row[1])
	}
	lines = append(lines, t.Muted.Render("dates: day of month, t for today, or part of a weekday name"))
	return r.Panel(lines)
}
