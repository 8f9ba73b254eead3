package model

import (
	"errors"
	"testing"
	"time"
)

func TestPlaceDay(t *testing.T) {
	tests := []struct {
		name    string
		today   time.Time
		day     int
		want    time.Time
		wantErr bool
	}{
		{"same day", Date(2015, time.July, 10), 10, Date(2015, time.July, 10), false},
		{"later this month", Date(2015, time.July, 10), 25, Date(2015, time.July, 25), false},
		{"earlier goes to next month", Date(2015, time.July, 10), 5, Date(2015, time.August, 5), false},
		{"december wraps year", Date(2015, time.December, 20), 3, Date(2016, time.January, 3), false},
		{"31 in 30-day month rolls over", Date(2015, time.June, 10), 31, Date(2015, time.July, 31), false},
		{"missing in next month", Date(2015, time.January, 30), 29, time.Time{}, true},
		{"zero", Date(2015, time.July, 10), 0, time.Time{}, true},
		{"beyond both months", Date(2015, time.July, 10), 32, time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlaceDay(tt.day, tt.today)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PlaceDay() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("PlaceDay() = %s, want %s", FormatDate(got), FormatDate(tt.want))
			}
		})
	}
}

func TestMoveTo(t *testing.T) {
	task := NewTask(1, "Finish report.", "Work", Date(2015, time.July, 20))
	key := task.Key

	if err := task.MoveTo(5, Date(2015, time.July, 10)); err != nil {
		t.Fatalf("MoveTo failed: %v", err)
	}
	if want := Date(2015, time.August, 5); !task.StartDate.Equal(want) {
		t.Errorf("StartDate = %s, want %s", FormatDate(task.StartDate), FormatDate(want))
	}
	if task.Key != key {
		t.Error("MoveTo must not change the stable key")
	}

	if err := task.MoveTo(0, Date(2015, time.July, 10)); err == nil {
		t.Error("expected error for day 0")
	}
	if want := Date(2015, time.August, 5); !task.StartDate.Equal(want) {
		t.Errorf("failed move changed StartDate to %s", FormatDate(task.StartDate))
	}
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2015-07-21", "2015-7-21"} {
		got, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		if FormatDate(got) != "2015-07-21" {
			t.Errorf("ParseDate(%q) = %s", s, FormatDate(got))
		}
	}
	if _, err := ParseDate("2015-02-30"); err == nil {
		t.Error("expected error for February 30")
	}
	if _, err := ParseDate("July 21"); err == nil {
		t.Error("expected error for free-form date")
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2016, time.February); got != 29 {
		t.Errorf("DaysIn(2016, Feb) = %d, want 29", got)
	}
	if got := DaysIn(2015, time.December); got != 31 {
		t.Errorf("DaysIn(2015, Dec) = %d, want 31", got)
	}
}
