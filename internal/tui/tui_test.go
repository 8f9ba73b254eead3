package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
	"github.com/idilsaglam/tasklist/internal/tasklist"
	"github.com/idilsaglam/tasklist/internal/ui"
)

type fixture struct {
	list  *tasklist.TaskList
	saves int
	m     Model
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	friday := time.Date(2015, time.July, 10, 9, 30, 0, 0, time.Local)
	l, err := tasklist.New(&jsonstore.File{
		Categories: []string{"Home", "Work"},
		Tasks: []jsonstore.Record{
			{Body: "Finish report.", Category: "Work", StartDate: "2015-07-20"},
			{Body: "Buy milk.", Category: "Home", StartDate: "2015-07-22"},
		},
	}, tasklist.WithClock(func() time.Time { return friday }))
	if err != nil {
		t.Fatalf("tasklist.New: %v", err)
	}
	var out, errOut bytes.Buffer
	r := ui.NewRenderer(&out, &errOut, ui.Options{Theme: "mono", NoColor: true})

	f := &fixture{list: l}
	f.m = New(l, func(*jsonstore.File) error { f.saves++; return nil }, r, nil)
	f.update(t, tea.WindowSizeMsg{Width: 100, Height: 40})
	return f
}

func (f *fixture) update(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	f.m = m
	return cmd
}

// enter types line and presses enter, returning the command of the enter key.
func (f *fixture) enter(t *testing.T, line string) tea.Cmd {
	t.Helper()
	if line != "" {
		f.update(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	}
	return f.update(t, tea.KeyMsg{Type: tea.KeyEnter})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestViewShowsSchedule(t *testing.T) {
	f := newFixture(t)
	view := f.m.View()
	for _, want := range []string{"Monday, July 20:", "[1] Finish report.", "July 2015", "enter run"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDeleteReloads(t *testing.T) {
	f := newFixture(t)
	if cmd := f.enter(t, "1d"); isQuit(cmd) {
		t.Fatal("delete should not quit")
	}
	if f.list.Len() != 1 {
		t.Fatalf("Len = %d, want 1", f.list.Len())
	}
	if !strings.Contains(f.m.status.String(), "removed!") {
		t.Errorf("status = %q", f.m.status.String())
	}
	view := f.m.View()
	if strings.Contains(view, "Finish report.") {
		t.Error("deleted task still shown")
	}
	if !strings.Contains(view, "[1] Buy milk.") {
		t.Error("ids were not reallocated after delete")
	}
	if f.m.ti.Value() != "" {
		t.Errorf("input not cleared: %q", f.m.ti.Value())
	}
}

func TestInvalidCommand(t *testing.T) {
	f := newFixture(t)
	f.enter(t, "hello")
	if !strings.Contains(f.m.status.String(), "Invalid input. Please try again.") {
		t.Errorf("status = %q", f.m.status.String())
	}
}

func TestQuitConfirm(t *testing.T) {
	f := newFixture(t)
	if cmd := f.enter(t, "q"); isQuit(cmd) {
		t.Fatal("q should ask before quitting")
	}
	if !f.m.confirming {
		t.Fatal("expected confirm mode")
	}
	if !strings.Contains(f.m.status.String(), "Save changes to database?") {
		t.Errorf("status = %q", f.m.status.String())
	}

	if cmd := f.enter(t, "c"); isQuit(cmd) {
		t.Fatal("cancel should stay")
	}
	if f.m.confirming || !strings.Contains(f.m.status.String(), "...Quit aborted.") {
		t.Errorf("confirming = %v, status = %q", f.m.confirming, f.m.status.String())
	}

	f.enter(t, "q")
	if cmd := f.enter(t, "y"); !isQuit(cmd) {
		t.Fatal("y should quit")
	}
	if f.saves != 1 {
		t.Errorf("saves = %d, want 1", f.saves)
	}
	if f.m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestEscapeCancelsConfirm(t *testing.T) {
	f := newFixture(t)
	f.enter(t, "q")
	f.update(t, tea.KeyMsg{Type: tea.KeyEsc})
	if f.m.confirming {
		t.Error("esc should leave confirm mode")
	}
	if f.saves != 0 {
		t.Errorf("saves = %d, want 0", f.saves)
	}
}

func TestSaveQuit(t *testing.T) {
	f := newFixture(t)
	if cmd := f.enter(t, "wq"); !isQuit(cmd) {
		t.Fatal("wq should quit")
	}
	if f.saves != 1 {
		t.Errorf("saves = %d, want 1", f.saves)
	}
}

func TestCtrlCQuitsWithoutSaving(t *testing.T) {
	f := newFixture(t)
	if cmd := f.update(t, tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Fatal("ctrl+c should quit")
	}
	if f.saves != 0 {
		t.Errorf("saves = %d, want 0", f.saves)
	}
}
