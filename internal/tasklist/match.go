package tasklist

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/idilsaglam/tasklist/internal/model"
)

// TodayToken is the date spec for "today".
const TodayToken = "t"

// weekdays is scanned in order; the first name containing the substring wins.
var weekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// IsValidDate reports whether day exists in the current or the next month.
func (l *TaskList) IsValidDate(day int) bool {
	today := l.Today()
	next := model.FirstOfNextMonth(today)
	if day < 1 {
		return false
	}
	return day <= model.DaysIn(today.Year(), today.Month()) ||
		day <= model.DaysIn(next.Year(), next.Month())
}

// MatchCategory returns the first source category containing substr. With no
// match, substr itself becomes a category and added is true.
func (l *TaskList) MatchCategory(substr string) (category string, added bool) {
	for _, c := range l.source {
		if strings.Contains(c, substr) {
			return c, false
		}
	}
	return substr, l.AddCategory(substr)
}

// MatchWeekday returns the first day strictly after today falling on the
// weekday whose name contains sub. Today never matches, even on that weekday.
func (l *TaskList) MatchWeekday(sub string) (time.Time, error) {
	if sub == "" {
		return time.Time{}, fmt.Errorf("weekday %q: %w", sub, ErrNoMatch)
	}
	for _, wd := range weekdays {
		if !strings.Contains(wd.String(), sub) {
			continue
		}
		d := l.Today().AddDate(0, 0, 1)
		for d.Weekday() != wd {
			d = d.AddDate(0, 0, 1)
		}
		return d, nil
	}
	return time.Time{}, fmt.Errorf("weekday %q: %w", sub, ErrNoMatch)
}

// MatchDate resolves a date spec: a day of month, "t" for today, or a weekday
// substring for the next such weekday.
func (l *TaskList) MatchDate(spec string) (time.Time, error) {
	if isAllDigits(spec) {
		day, err := strconv.Atoi(spec)
		if err != nil || !l.IsValidDate(day) {
			return time.Time{}, fmt.Errorf("date %s: %w", spec, ErrInvalidDate)
		}
		d, err := model.PlaceDay(day, l.Today())
		if err != nil {
			return time.Time{}, fmt.Errorf("date %s: %w", spec, ErrInvalidDate)
		}
		return d, nil
	}
	if spec == TodayToken {
		return l.Today(), nil
	}
	d, err := l.MatchWeekday(spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %s: %w", spec, ErrInvalidDate)
	}
	return d, nil
}

// resolveDay turns a date spec into a day of month for MoveTask.
func (l *TaskList) resolveDay(spec string) (int, error) {
	if isAllDigits(spec) {
		day, err := strconv.Atoi(spec)
		if err != nil {
			return 0, fmt.Errorf("date %s: %w", spec, ErrInvalidDate)
		}
		return day, nil
	}
	d, err := l.MatchDate(spec)
	if err != nil {
		return 0, err
	}
	return d.Day(), nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
