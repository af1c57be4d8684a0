package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoview/internal/todo"
	"github.com/idilsaglam/todoview/internal/ui"
)

type focus int

const (
	focusInput focus = iota
	focusList
	focusFilter
)

// Options configure the interactive widget.
type Options struct {
	Theme  ui.Theme
	Logger *log.Logger
}

// Model is the Bubble Tea model around a todo.View. All state transitions go
// through the view; the model only keeps what the terminal needs: focus,
// cursor and scroll position, and the latest snapshot to draw from.
type Model struct {
	view *todo.View
	snap todo.Snapshot

	theme  ui.Theme
	help   help.Model
	input  textinput.Model // mirrors the view's input buffer
	filter textinput.Model
	focus  focus

	cursor int // index into snap.Rows
	offset int // first visible row
	width  int
	height int

	status string // last filter error, cleared on the next key
	log    *log.Logger
}

// New returns a model bound to v, with the input focused.
func New(v *todo.View, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Theme.Name == "" {
		opts.Theme = ui.Classic()
	}

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "Add new todo..."
	in.CharLimit = 0
	in.SetValue(v.Input())
	in.Focus()

	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "glob or words"
	fi.CharLimit = 100

	h := help.New()
	h.Styles.ShortKey = opts.Theme.Help
	h.Styles.ShortDesc = opts.Theme.Help
	h.Styles.FullKey = opts.Theme.Help
	h.Styles.FullDesc = opts.Theme.Help

	m := Model{
		view:   v,
		theme:  opts.Theme,
		help:   h,
		input:  in,
		filter: fi,
		focus:  focusInput,
		width:  defaultWidth,
		height: defaultHeight,
		log:    opts.Logger,
	}
	m.refresh()
	return m
}

// TodoView returns the todo view the model drives.
func (m Model) TodoView() *todo.View { return m.view }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = m.rowWidth()
		m.refresh()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, forceQuit) {
			return m, tea.Quit
		}
		m.status = ""
		switch m.focus {
		case focusInput:
			return m.updateInput(msg)
		case focusFilter:
			return m.updateFilter(msg)
		default:
			return m.updateList(msg)
		}
	}

	// cursor blink and friends
	var cmd tea.Cmd
	if m.focus == focusFilter {
		m.filter, cmd = m.filter.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, inputKeys.Submit):
		// enter is consumed here and goes nowhere else
		if _, ok := m.view.Submit(); ok {
			m.refresh()
			m.cursor = len(m.snap.Rows) - 1
			m.scrollToCursor()
		}
		m.input.SetValue(m.view.Input())
		return m, nil
	case key.Matches(msg, inputKeys.Leave):
		return m.setFocus(focusList), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.view.SetInput(m.input.Value())
	m.snap.Input = m.view.Input()
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, filterKeys.Submit):
		return m.setFocus(focusList), nil
	case key.Matches(msg, filterKeys.Leave):
		m.applyFilter("")
		m.filter.SetValue("")
		return m.setFocus(focusList), nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter(m.filter.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, listKeys.Quit):
		if msg.String() == "esc" && m.snap.Filter != "" {
			m.applyFilter("")
			m.filter.SetValue("")
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, listKeys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, listKeys.Down):
		m.moveCursor(1)
	case key.Matches(msg, listKeys.Toggle):
		m.toggleRow(m.cursor)
	case key.Matches(msg, listKeys.Delete):
		m.deleteRow(m.cursor)
	case key.Matches(msg, listKeys.Undo):
		if m.view.Undo() {
			m.refresh()
		}
	case key.Matches(msg, listKeys.Filter):
		m.filter.SetValue(m.snap.Filter)
		m.filter.CursorEnd()
		return m.setFocus(focusFilter), textinput.Blink
	case key.Matches(msg, listKeys.Add):
		return m.setFocus(focusInput), textinput.Blink
	case key.Matches(msg, listKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.scrollToCursor()
	}
	return m, nil
}

// updateMouse maps clicks onto rows. A click on a row's delete affordance
// deletes that row and stops there; anywhere else on the row toggles it.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.hitInput(msg.X, msg.Y) {
		return m.setFocus(focusInput), textinput.Blink
	}
	row, part := m.hitRow(msg.X, msg.Y)
	switch part {
	case zoneDelete:
		m.deleteRow(row)
	case zoneRow:
		m.cursor = row
		m.toggleRow(row)
		if m.focus == focusFilter {
			return m.setFocus(focusList), nil
		}
	}
	return m, nil
}

func (m Model) setFocus(f focus) Model {
	m.focus = f
	m.input.Blur()
	m.filter.Blur()
	switch f {
	case focusInput:
		m.input.Focus()
	case focusFilter:
		m.filter.Focus()
	}
	return m
}

func (m *Model) toggleRow(i int) {
	r, ok := m.snap.Row(i)
	if !ok {
		return
	}
	if err := m.view.Toggle(r.ID); err != nil {
		m.log.Warn("toggle ignored", "err", err)
		return
	}
	m.refresh()
}

func (m *Model) deleteRow(i int) {
	r, ok := m.snap.Row(i)
	if !ok {
		return
	}
	if err := m.view.Delete(r.ID); err != nil {
		m.log.Warn("delete ignored", "err", err)
		return
	}
	m.refresh()
}

func (m *Model) applyFilter(pattern string) {
	if err := m.view.SetFilter(pattern); err != nil {
		m.status = err.Error()
		return
	}
	m.cursor = 0
	m.offset = 0
	m.refresh()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.scrollToCursor()
}

// refresh takes a new snapshot and keeps cursor and scroll inside it.
func (m *Model) refresh() {
	m.snap = m.view.Snapshot()
	m.clampCursor()
	m.scrollToCursor()
}

func (m *Model) clampCursor() {
	m.cursor = min(m.cursor, len(m.snap.Rows)-1)
	m.cursor = max(m.cursor, 0)
}

func (m *Model) scrollToCursor() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = min(m.offset, max(len(m.snap.Rows)-visible, 0))
	m.offset = max(m.offset, 0)
}
