package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoview/internal/todo"
)

// RunOptions control the terminal program.
type RunOptions struct {
	Options
	AltScreen bool
	Mouse     bool // only honoured on the alt screen, where click positions are known
	Input     io.Reader
	Output    io.Writer
}

// Run starts the interactive widget on v and blocks until the user quits.
// The view keeps its final state, so callers can inspect it afterwards.
func Run(v *todo.View, opt RunOptions) error {
	var popts []tea.ProgramOption
	if opt.AltScreen {
		popts = append(popts, tea.WithAltScreen())
		if opt.Mouse {
			popts = append(popts, tea.WithMouseCellMotion())
		}
	}
	if opt.Input != nil {
		popts = append(popts, tea.WithInput(opt.Input))
	}
	if opt.Output != nil {
		popts = append(popts, tea.WithOutput(opt.Output))
	}

	m := New(v, opt.Options)
	m.log.Debug("widget started", "todos", v.Len(), "theme", m.theme.Name)
	if _, err := tea.NewProgram(m, popts...).Run(); err != nil {
		return fmt.Errorf("run widget: %w", err)
	}
	m.log.Debug("widget stopped", "todos", v.Len())
	return nil
}
