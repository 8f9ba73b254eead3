package command

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
	"github.com/idilsaglam/tasklist/internal/tasklist"
)

// Result tells the session loop what to do after a command.
type Result int

const (
	// None keeps the current screen.
	None Result = iota
	// Reload re-renders the schedule from the mutated list.
	Reload
	// Quit ends the session.
	Quit
)

// QuitQuestion is asked before quitting with q.
const QuitQuestion = "Save changes to database?\n[Y]es, (N)o, (C)ancel: "

// Reporter receives operator messages.
type Reporter interface {
	OK(msg string)
	Info(msg string)
	Fail(msg string)
}

// Prompter asks the operator a follow-up question.
type Prompter interface {
	Ask(question string) (string, error)
}

// Saver persists a snapshot of the task list.
type Saver func(f *jsonstore.File) error

// Interpreter runs parsed commands against a task list.
type Interpreter struct {
	list     *tasklist.TaskList
	save     Saver
	report   Reporter
	prompter Prompter
	logger   *log.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithPrompter sets where the quit confirmation is read from.
func WithPrompter(p Prompter) Option {
	return func(in *Interpreter) { in.prompter = p }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *log.Logger) Option {
	return func(in *Interpreter) { in.logger = logger }
}

// New returns an Interpreter for list.
func New(list *tasklist.TaskList, save Saver, report Reporter, opts ...Option) *Interpreter {
	in := &Interpreter{
		list:   list,
		save:   save,
		report: report,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Execute parses and runs one input line. Structural commands always ask
// for a reload, even when the list rejected them.
func (in *Interpreter) Execute(line string) Result {
	cmd := Parse(line)
	in.logger.Debug("command", "kind", cmd.Kind, "line", line)

	switch cmd.Kind {
	case Move:
		if _, err := in.list.MoveTask(cmd.ID, cmd.Date); err != nil {
			in.fail(cmd, err)
		}
		return Reload
	case Create:
		t, err := in.list.NewTask(cmd.Body, cmd.Category, cmd.Date)
		if err != nil {
			in.fail(cmd, err)
		} else {
			in.report.Info(t.Category)
		}
		return Reload
	case Delete:
		if _, err := in.list.DeleteTask(cmd.ID); err != nil {
			in.fail(cmd, err)
		} else {
			in.report.Info("removed!")
		}
		return Reload
	case Save:
		if in.write() {
			in.report.OK("Saving to file... done!")
		}
		return None
	case SaveQuit:
		return in.writeQuit()
	case QuitPrompt:
		if in.prompter == nil {
			return in.ResolveQuit("")
		}
		answer, err := in.prompter.Ask(QuitQuestion)
		if err != nil {
			in.logger.Debug("quit prompt aborted", "err", err)
			in.report.Info("...Quit aborted.")
			return None
		}
		return in.ResolveQuit(answer)
	}
	in.report.Fail("Invalid input. Please try again.")
	return None
}

// ResolveQuit applies the answer to the quit question: yes saves and quits,
// no quits, cancel or anything else stays.
func (in *Interpreter) ResolveQuit(answer string) Result {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y":
		return in.writeQuit()
	case "n":
		in.report.Info("Exiting without saving...")
		return Quit
	case "c":
		in.report.Info("...Quit aborted.")
		return None
	}
	in.report.Fail("Invalid input. Quit aborted.")
	return None
}

func (in *Interpreter) writeQuit() Result {
	if !in.write() {
		return None
	}
	in.report.OK("Save successful. Exiting...")
	return Quit
}

func (in *Interpreter) write() bool {
	if err := in.save(in.list.Snapshot()); err != nil {
		in.logger.Error("save failed", "err", err)
		in.report.Fail("save: " + err.Error())
		return false
	}
	in.logger.Debug("saved", "tasks", in.list.Len())
	return true
}

func (in *Interpreter) fail(cmd Command, err error) {
	switch {
	case errors.Is(err, tasklist.ErrNoTask):
		label := strconv.Itoa(cmd.ID)
		if cmd.ID < 0 {
			label = cmd.Label
		}
		in.report.Fail(fmt.Sprintf("No task is labeled #%s.", label))
	case errors.Is(err, tasklist.ErrInvalidDate):
		in.report.Fail(fmt.Sprintf("Date %s is not valid.", cmd.Date))
	default:
		in.report.Fail(err.Error())
	}
}
