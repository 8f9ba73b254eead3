package tasklist

import (
	"sort"
	"time"

	"github.com/idilsaglam/tasklist/internal/model"
)

// Views below are recomputed on every call; the list is small.

// DatesWithItems returns the distinct start dates, ascending.
func (l *TaskList) DatesWithItems() []time.Time {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, t := range l.tasks {
		if !seen[t.StartDate] {
			seen[t.StartDate] = true
			dates = append(dates, t.StartDate)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// TasksOnDate returns the tasks starting on d.
func (l *TaskList) TasksOnDate(d time.Time) []*model.Task {
	d = model.Day(d)
	var out []*model.Task
	for _, t := range l.tasks {
		if t.StartDate.Equal(d) {
			out = append(out, t)
		}
	}
	return out
}

// CategoriesOnDate returns the distinct categories used on d, ascending.
func (l *TaskList) CategoriesOnDate(d time.Time) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range l.TasksOnDate(d) {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	sort.Strings(out)
	return out
}

// TasksByDateCategory returns the tasks on d filed under category.
func (l *TaskList) TasksByDateCategory(d time.Time, category string) []*model.Task {
	var out []*model.Task
	for _, t := range l.TasksOnDate(d) {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// TaskCount returns how many tasks start on d.
func (l *TaskList) TaskCount(d time.Time) int {
	return len(l.TasksOnDate(d))
}

// FirstDayEver returns the earliest start date.
func (l *TaskList) FirstDayEver() (time.Time, error) {
	dates := l.DatesWithItems()
	if len(dates) == 0 {
		return time.Time{}, ErrEmptyCollection
	}
	return dates[0], nil
}

// LastDayEver returns the latest start date.
func (l *TaskList) LastDayEver() (time.Time, error) {
	dates := l.DatesWithItems()
	if len(dates) == 0 {
		return time.Time{}, ErrEmptyCollection
	}
	return dates[len(dates)-1], nil
}
