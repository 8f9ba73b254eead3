package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tasklist/internal/model"
)

const calWidth = 20

// Month renders a month grid in the style of cal(1), weeks starting on the
// renderer's week start. today is highlighted when it falls in the month.
func (r *Renderer) Month(year int, month time.Month, today time.Time) string {
	t := r.theme
	title := fmt.Sprintf("%s %d", month, year)
	pad := (calWidth - len(title)) / 2
	lines := []string{t.CalTitle.Render(strings.Repeat(" ", pad) + title)}

	var head []string
	for i := 0; i < 7; i++ {
		head = append(head, ((r.weekStart + time.Weekday(i)) % 7).String()[:2])
	}
	lines = append(lines, t.CalHead.Render(strings.Join(head, " ")))

	first := model.Date(year, month, 1)
	offset := (int(first.Weekday()) - int(r.weekStart) + 7) % 7
	week := make([]string, 0, 7)
	for i := 0; i < offset; i++ {
		week = append(week, "  ")
	}
	for day := 1; day <= model.DaysIn(year, month); day++ {
		cell := fmt.Sprintf("%2d", day)
		if model.Date(year, month, day).Equal(model.Day(today)) {
			cell = t.CalToday.Render(cell)
		}
		week = append(week, cell)
		if len(week) == 7 {
			lines = append(lines, strings.Join(week, " "))
			week = week[:0]
		}
	}
	if len(week) > 0 {
		lines = append(lines, strings.Join(week, " "))
	}
	return r.lr.NewStyle().Width(calWidth).Render(strings.Join(lines, "\n"))
}

// Calendars renders the current and the next month side by side.
func (r *Renderer) Calendars(today time.Time) string {
	next := model.FirstOfNextMonth(today)
	grid := lipgloss.JoinHorizontal(lipgloss.Top,
		r.Month(today.Year(), today.Month(), today),
		"    ",
		r.Month(next.Year(), next.Month(), today),
	)
	return "\n" + grid + "\n"
}
