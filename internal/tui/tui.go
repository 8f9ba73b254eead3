// Package tui is the full-screen front end: the schedule in a scrollable
// viewport with a command line underneath, driven by the same interpreter as
// the line mode.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/command"
	"github.com/idilsaglam/tasklist/internal/tasklist"
	"github.com/idilsaglam/tasklist/internal/ui"
)

const (
	commandPlaceholder = "1m5, n Buy milk; Home; t, 2d, w, q, wq"
	confirmPlaceholder = "y / n / c"

	// status, input and help lines
	footerHeight = 3
)

// Options sets the program streams.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Logger *log.Logger
}

type keyMap struct {
	Submit   key.Binding
	Cancel   key.Binding
	Abort    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Abort:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit without saving")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.PageUp, k.PageDown, k.Abort}
}

// statusLine collects the interpreter's messages for the last command.
type statusLine struct {
	theme ui.Theme
	msgs  []string
}

func (s *statusLine) OK(msg string) {
	s.msgs = append(s.msgs, s.theme.Success.Render(s.theme.SymOK+" "+msg))
}

func (s *statusLine) Info(msg string) { s.msgs = append(s.msgs, msg) }

func (s *statusLine) Fail(msg string) {
	s.msgs = append(s.msgs, s.theme.Error.Render(s.theme.SymFail+" "+msg))
}

func (s *statusLine) reset() { s.msgs = s.msgs[:0] }

func (s *statusLine) String() string { return strings.Join(s.msgs, "  ") }

// Model implements tea.Model over a task list.
type Model struct {
	list   *tasklist.TaskList
	interp *command.Interpreter
	r      *ui.Renderer
	status *statusLine
	keys   keyMap

	vp viewport.Model
	ti textinput.Model

	confirming bool
	quitting   bool
}

// New returns a Model showing list. Commands run through an interpreter that
// saves with save and reports to the status line.
func New(list *tasklist.TaskList, save command.Saver, r *ui.Renderer, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	status := &statusLine{theme: r.Theme()}

	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = commandPlaceholder
	ti.CharLimit = 200
	ti.Focus()

	m := Model{
		list:   list,
		interp: command.New(list, save, status, command.WithLogger(logger)),
		r:      r,
		status: status,
		keys:   defaultKeys(),
		vp:     viewport.New(80, 20),
		ti:     ti,
	}
	m.list.ReallocateTaskIDs()
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and prints the last
// messages once it exits.
func Run(list *tasklist.TaskList, save command.Saver, r *ui.Renderer, opt Options) error {
	m := New(list, save, r, opt.Logger)
	var popts []tea.ProgramOption
	popts = append(popts, tea.WithAltScreen())
	if opt.In != nil {
		popts = append(popts, tea.WithInput(opt.In))
	}
	if opt.Out != nil {
		popts = append(popts, tea.WithOutput(opt.Out))
	}

	final, err := tea.NewProgram(m, popts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && len(fm.status.msgs) > 0 && opt.Out != nil {
		fmt.Fprintln(opt.Out, strings.Join(fm.status.msgs, "\n"))
	}
	return nil
}

func (m *Model) refresh() {
	m.vp.SetContent(m.r.Screen(m.list))
}

func (m *Model) resetInput() {
	m.confirming = false
	m.ti.Placeholder = commandPlaceholder
	m.ti.SetValue("")
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = max(1, msg.Height-footerHeight)
		m.ti.Width = max(10, msg.Width-len(m.ti.Prompt)-1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Abort):
			m.status.reset()
			m.status.Info("Exiting without saving...")
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			if m.confirming {
				m.status.reset()
				m.status.Info("...Quit aborted.")
			}
			m.resetInput()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.ti.Value()
	m.status.reset()

	if m.confirming {
		m.resetInput()
		if m.interp.ResolveQuit(line) == command.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	m.ti.SetValue("")

	// q asks first; the answer comes from the next submitted line
	if command.Parse(line).Kind == command.QuitPrompt {
		m.confirming = true
		m.ti.Placeholder = confirmPlaceholder
		m.status.Info(strings.ReplaceAll(command.QuitQuestion, "\n", " "))
		return m, nil
	}

	switch m.interp.Execute(line) {
	case command.Reload:
		m.list.ReallocateTaskIDs()
		m.refresh()
	case command.Quit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var help []string
	for _, b := range m.keys.bindings() {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join([]string{
		m.vp.View(),
		m.status.String(),
		m.ti.View(),
		m.r.Theme().Muted.Render(strings.Join(help, " • ")),
	}, "\n")
}
