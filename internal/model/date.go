package model

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk form of a start date.
const DateLayout = "2006-01-02"

// Dates are naive calendar days: midnight UTC, no zone semantics.

// Day truncates t to its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar day. Out-of-range months and days normalize the way
// time.Date does, so month 13 is January of the following year.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// FirstOfNextMonth returns the first day of the month after t.
func FirstOfNextMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month()+1, 1)
}

// ParseDate accepts YYYY-MM-DD, tolerating single-digit months and days.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-1-2", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a day in DateLayout.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }
