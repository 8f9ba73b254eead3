package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/tasklist"
)

// Schedule is the read side of a task list the renderer needs.
type Schedule interface {
	Today() time.Time
	FirstDayEver() (time.Time, error)
	LastDayEver() (time.Time, error)
	TaskCount(d time.Time) int
	CategoriesOnDate(d time.Time) []string
	TasksByDateCategory(d time.Time, category string) []*model.Task
}

// Schedule renders every day from the first to the last task date. Past days
// without tasks are skipped; upcoming empty days keep their header.
func (r *Renderer) Schedule(s Schedule) string {
	var b strings.Builder
	first, err := s.FirstDayEver()
	if errors.Is(err, tasklist.ErrEmptyCollection) {
		b.WriteString("\n")
		b.WriteString(r.theme.Muted.Render("No tasks scheduled. Add one with: n <body>; <category>; <date>"))
		b.WriteString("\n\n")
		return b.String()
	}
	last, _ := s.LastDayEver()
	today := s.Today()

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		r.writeDay(&b, s, d, today)
	}
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) writeDay(b *strings.Builder, s Schedule, d, today time.Time) {
	count := s.TaskCount(d)
	if d.Before(today) && count == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(r.dateHeader(d, today, count))
	b.WriteString("\n")

	categories := s.CategoriesOnDate(d)
	for i, c := range categories {
		b.WriteString("  " + r.theme.Category.Render(c+":") + "\n")
		for _, t := range s.TasksByDateCategory(d, c) {
			b.WriteString(r.taskLine(t))
			b.WriteString("\n")
		}
		if i < len(categories)-1 {
			b.WriteString("\n")
		}
	}
}

// dateHeader renders "Monday, July 20:" padded to a fixed column and the task
// count. On Sundays the weekday name gets its own style.
func (r *Renderer) dateHeader(d, today time.Time, count int) string {
	style := r.theme.Header
	if d.Equal(today) {
		style = r.theme.Today
	}
	weekday := d.Format("Monday")
	rest := d.Format(", January 2:")
	if d.Weekday() == time.Sunday {
		return r.theme.Sunday.Render(weekday) + style.Render(fmt.Sprintf("%-19s (%d tasks)", rest, count))
	}
	return style.Render(fmt.Sprintf("%-25s (%d tasks)", weekday+rest, count))
}

func (r *Renderer) taskLine(t *model.Task) string {
	id := r.theme.TaskID.Render(fmt.Sprintf("[%d]", t.ID))
	if t.RepeatMode != "" {
		return fmt.Sprintf("    %s %s %s", id, r.theme.Repeat.Render("[Repeat]"), t.Body)
	}
	return fmt.Sprintf("    %s %s", id, t.Body)
}

// Screen is the full main view: schedule followed by the two-month calendar.
func (r *Renderer) Screen(s Schedule) string {
	return r.Schedule(s) + r.Calendars(s.Today()) + "\n"
}

// Render clears the terminal if configured and prints the full main view.
func (r *Renderer) Render(s Schedule) {
	r.ClearScreen()
	fmt.Fprint(r.out, r.Screen(s))
}
