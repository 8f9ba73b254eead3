// Package cli runs an interactive session over the task list: load the data
// file, render the schedule, then read and execute one command per line.
package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/command"
	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/exitcode"
	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
	"github.com/idilsaglam/tasklist/internal/tasklist"
	"github.com/idilsaglam/tasklist/internal/tui"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// CommandPrompt is printed before every command line.
const CommandPrompt = ":"

// Options wires a session to its settings and streams. Zero streams default
// to the process ones.
type Options struct {
	Config *config.Config
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Now    func() time.Time
	Logger *log.Logger
}

func (o *Options) defaults() {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Run loads the data file and drives a session until the operator quits or
// input ends. Returns an exit code.
func Run(opt Options) int {
	opt.defaults()
	cfg, logger := opt.Config, opt.Logger

	r := ui.NewRenderer(opt.Out, opt.Err, ui.Options{
		Theme:       cfg.Theme,
		NoColor:     cfg.NoColor,
		WeekStart:   cfg.Weekday(),
		ClearScreen: cfg.ClearScreen,
	})

	f, err := jsonstore.Load(cfg.DataFile)
	if err != nil {
		r.Fail("load: " + err.Error())
		return exitcode.Failure
	}
	list, err := tasklist.New(f, tasklist.WithClock(opt.Now), tasklist.WithLogger(logger))
	if err != nil {
		r.Fail("load: " + err.Error())
		return exitcode.Failure
	}
	logger.Info("data file loaded", "path", cfg.DataFile, "tasks", list.Len(), "categories", len(list.Categories()))

	save := func(f *jsonstore.File) error {
		if err := jsonstore.Save(cfg.DataFile, f); err != nil {
			return err
		}
		logger.Info("data file saved", "path", cfg.DataFile, "tasks", len(f.Tasks))
		return nil
	}

	if cfg.TUI {
		if err := tui.Run(list, save, r, tui.Options{In: opt.In, Out: opt.Out, Logger: logger}); err != nil {
			r.Fail("tui: " + err.Error())
			return exitcode.Failure
		}
		return exitcode.Success
	}

	s := &session{scanner: bufio.NewScanner(opt.In), r: r}
	in := command.New(list, save, r, command.WithPrompter(s), command.WithLogger(logger))
	return s.loop(list, in, logger)
}

// session reads operator lines and answers the quit question from the same
// input.
type session struct {
	scanner *bufio.Scanner
	r       *ui.Renderer
}

// Ask implements command.Prompter.
func (s *session) Ask(question string) (string, error) {
	s.r.Prompt(question)
	return s.readLine()
}

func (s *session) readLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.scanner.Text(), "\r"), nil
}

func (s *session) loop(list *tasklist.TaskList, in *command.Interpreter, logger *log.Logger) int {
	list.ReallocateTaskIDs()
	s.r.Render(list)

	for {
		s.r.Prompt(CommandPrompt)
		line, err := s.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Warn("input closed, leaving without saving")
				return exitcode.Success
			}
			s.r.Fail("read: " + err.Error())
			return exitcode.Failure
		}

		switch in.Execute(line) {
		case command.Reload:
			s.r.Divider()
			list.ReallocateTaskIDs()
			s.r.Render(list)
		case command.Quit:
			return exitcode.Success
		}
	}
}
