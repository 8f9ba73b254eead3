package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidDate reports a day that cannot be placed on the calendar.
var ErrInvalidDate = errors.New("invalid date")

// NewTaskID marks a task created since the last reallocation.
const NewTaskID = 0

// Task is the domain model for a scheduled to-do.
// ID is a display position recomputed on every reallocation; Key is the
// stable identity and never leaves the process. A non-empty RepeatMode
// ("Every", with RepeatInterval "1 day") is carried and tagged in the view
// but never expanded into occurrences.
type Task struct {
	Key            uuid.UUID
	ID             int
	Body           string
	Category       string
	StartDate      time.Time
	RepeatMode     string
	RepeatInterval string
}

// NewTask returns a task with a fresh key and the given position.
func NewTask(id int, body, category string, start time.Time) *Task {
	return &Task{
		Key:       uuid.New(),
		ID:        id,
		Body:      body,
		Category:  category,
		StartDate: Day(start),
	}
}

// MoveTo reschedules the task to day of the current month, or of the next
// month when day is already behind today.
func (t *Task) MoveTo(day int, today time.Time) error {
	d, err := PlaceDay(day, today)
	if err != nil {
		return err
	}
	t.StartDate = d
	return nil
}

// PlaceDay resolves a day of month relative to today. Days at or after today
// land in the current month, earlier days in the next one. A day missing from
// the current month (31 in a 30-day month) rolls into the next month; a day
// missing from the next month is rejected. December rolls into January of the
// following year.
func PlaceDay(day int, today time.Time) (time.Time, error) {
	today = Day(today)
	if day < 1 {
		return time.Time{}, fmt.Errorf("day %d: %w", day, ErrInvalidDate)
	}
	month := Date(today.Year(), today.Month(), 1)
	if day < today.Day() {
		month = FirstOfNextMonth(month)
		if day > DaysIn(month.Year(), month.Month()) {
			return time.Time{}, fmt.Errorf("day %d not in %s: %w", day, month.Format("January 2006"), ErrInvalidDate)
		}
		return Date(month.Year(), month.Month(), day), nil
	}
	if day > DaysIn(month.Year(), month.Month()) {
		month = FirstOfNextMonth(month)
		if day > DaysIn(month.Year(), month.Month()) {
			return time.Time{}, fmt.Errorf("day %d not in %s: %w", day, month.Format("January 2006"), ErrInvalidDate)
		}
	}
	return Date(month.Year(), month.Month(), day), nil
}
