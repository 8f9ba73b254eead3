// Package tasklist holds the in-memory task collection and the rules for
// ordering, querying and mutating it.
package tasklist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
)

var (
	// ErrEmptyCollection is returned by queries that need at least one task.
	ErrEmptyCollection = errors.New("no tasks")
	// ErrNoTask reports an id that labels no task.
	ErrNoTask = errors.New("no task")
	// ErrInvalidDate reports a date spec that does not resolve to a day.
	ErrInvalidDate = model.ErrInvalidDate
	// ErrNoMatch reports a weekday substring matching no weekday name.
	ErrNoMatch = errors.New("no match")
)

// TaskList owns the tasks of one session together with the category
// vocabulary.
type TaskList struct {
	tasks      []*model.Task
	categories []string
	// source keeps the categories in file order; category matching scans it.
	source []string
	extra  map[string]json.RawMessage

	now    func() time.Time
	logger *log.Logger
}

// Option configures a TaskList.
type Option func(*TaskList)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(l *TaskList) { l.now = now }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *TaskList) { l.logger = logger }
}

// New builds a TaskList from a loaded data file. Tasks are sorted by date and
// category and numbered from 1.
func New(f *jsonstore.File, opts ...Option) (*TaskList, error) {
	l := &TaskList{
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	if f == nil {
		f = &jsonstore.File{}
	}

	l.source = slices.Clone(f.Categories)
	l.categories = slices.Clone(f.Categories)
	l.extra = f.Extra

	l.tasks = make([]*model.Task, 0, len(f.Tasks))
	for i, rec := range f.Tasks {
		start, err := model.ParseDate(rec.StartDate)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		t := model.NewTask(model.NewTaskID, rec.Body, rec.Category, start)
		t.RepeatMode = rec.RepeatMode
		t.RepeatInterval = rec.RepeatInterval
		l.tasks = append(l.tasks, t)

		if !slices.Contains(l.categories, rec.Category) {
			l.logger.Debug("registering category missing from vocabulary", "category", rec.Category)
			l.categories = append(l.categories, rec.Category)
		}
	}
	sort.Strings(l.categories)
	l.ReallocateTaskIDs()

	l.logger.Debug("task list loaded", "tasks", len(l.tasks), "categories", len(l.categories))
	return l, nil
}

// Today returns the current calendar day.
func (l *TaskList) Today() time.Time { return model.Day(l.now()) }

// Len returns the number of tasks.
func (l *TaskList) Len() int { return len(l.tasks) }

// Tasks returns the tasks in collection order.
func (l *TaskList) Tasks() []*model.Task { return slices.Clone(l.tasks) }

// Categories returns the category vocabulary.
func (l *TaskList) Categories() []string { return slices.Clone(l.categories) }

// ReallocateTaskIDs sorts tasks by date then category and renumbers them
// from 1, so displayed ids follow chronological order.
func (l *TaskList) ReallocateTaskIDs() {
	sort.SliceStable(l.tasks, func(i, j int) bool {
		a, b := l.tasks[i], l.tasks[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return a.Category < b.Category
	})
	for i, t := range l.tasks {
		t.ID = i + 1
	}
}

// TaskExists reports whether a task carries the given id.
func (l *TaskList) TaskExists(id int) bool {
	_, ok := l.TaskByID(id)
	return ok
}

// TaskByID returns the task labeled id.
func (l *TaskList) TaskByID(id int) (*model.Task, bool) {
	for _, t := range l.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// KeyOf returns the stable key of the task currently labeled id.
func (l *TaskList) KeyOf(id int) (uuid.UUID, bool) {
	t, ok := l.TaskByID(id)
	if !ok {
		return uuid.Nil, false
	}
	return t.Key, true
}

// TaskByKey returns the task with the given key, whatever its current id.
func (l *TaskList) TaskByKey(key uuid.UUID) (*model.Task, bool) {
	i := slices.IndexFunc(l.tasks, func(t *model.Task) bool { return t.Key == key })
	if i < 0 {
		return nil, false
	}
	return l.tasks[i], true
}

// DeleteTask removes the task labeled id and returns it.
func (l *TaskList) DeleteTask(id int) (*model.Task, error) {
	key, ok := l.KeyOf(id)
	if !ok {
		return nil, fmt.Errorf("#%d: %w", id, ErrNoTask)
	}
	t, _ := l.TaskByKey(key)
	l.tasks = slices.DeleteFunc(l.tasks, func(t *model.Task) bool { return t.Key == key })
	l.logger.Debug("task deleted", "id", id, "key", key)
	return t, nil
}

// MoveTask reschedules the task labeled id to the day named by spec.
func (l *TaskList) MoveTask(id int, spec string) (*model.Task, error) {
	key, ok := l.KeyOf(id)
	if !ok {
		return nil, fmt.Errorf("#%d: %w", id, ErrNoTask)
	}
	day, err := l.resolveDay(spec)
	if err != nil {
		return nil, err
	}
	if !l.IsValidDate(day) {
		return nil, fmt.Errorf("date %d: %w", day, ErrInvalidDate)
	}
	t, _ := l.TaskByKey(key)
	if err := t.MoveTo(day, l.Today()); err != nil {
		return nil, err
	}
	l.logger.Debug("task moved", "id", id, "key", key, "date", model.FormatDate(t.StartDate))
	return t, nil
}

// NewTask appends a task built from user input. The date is resolved before
// the category so a rejected date leaves the vocabulary untouched. The task
// keeps id 0 until the next reallocation.
func (l *TaskList) NewTask(body, categorySubstr, spec string) (*model.Task, error) {
	start, err := l.MatchDate(spec)
	if err != nil {
		return nil, err
	}
	category, _ := l.MatchCategory(categorySubstr)
	t := model.NewTask(model.NewTaskID, body+".", category, start)
	l.tasks = append(l.tasks, t)
	l.logger.Debug("task created", "key", t.Key, "category", category, "date", model.FormatDate(start))
	return t, nil
}

// AddCategory appends name to the vocabulary unless it is already there.
func (l *TaskList) AddCategory(name string) bool {
	if slices.Contains(l.categories, name) {
		return false
	}
	l.categories = append(l.categories, name)
	return true
}

// Snapshot converts the list back into a data file, ready to save.
func (l *TaskList) Snapshot() *jsonstore.File {
	f := &jsonstore.File{
		Categories: slices.Clone(l.categories),
		Tasks:      make([]jsonstore.Record, 0, len(l.tasks)),
		Extra:      l.extra,
	}
	for _, t := range l.tasks {
		f.Tasks = append(f.Tasks, jsonstore.Record{
			Body:           t.Body,
			Category:       t.Category,
			RepeatInterval: t.RepeatInterval,
			RepeatMode:     t.RepeatMode,
			StartDate:      model.FormatDate(t.StartDate),
		})
	}
	return f
}
