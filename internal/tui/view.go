package tui

import (
	"strings"

	"github.com/idilsaglam/todoview/internal/ui"
)

func (m Model) View() string {
	s := m.snap
	t := m.theme

	lines := make([]string, 0, linesAbove+m.visibleRows()+m.linesBelow())
	lines = append(lines,
		t.Header(s.Done, s.Pending, s.Total),
		t.Muted.Render(ui.ProgressBar(s.Done, s.Total, 28)),
		"",
		m.input.View(),
		"",
	)

	visible := m.visibleRows()
	width := m.rowWidth()
	end := min(m.offset+visible, len(s.Rows))
	for i := m.offset; i < end; i++ {
		r := s.Rows[i]
		selected := i == m.cursor && m.focus != focusInput
		lines = append(lines, t.Row(r.Text, r.Completed, selected, width))
	}
	if len(s.Rows) == 0 {
		empty := "no items"
		if s.Filter != "" {
			empty = "no matches"
		}
		lines = append(lines, t.Muted.Render("  "+empty))
	}
	// keep the chrome below the list at a fixed height
	for len(lines) < linesAbove+visible {
		lines = append(lines, "")
	}

	lines = append(lines, "", m.statusLine())
	lines = append(lines, strings.Split(m.helpView(), "\n")...)

	// a terminal too short for the chrome loses lines at the bottom, never
	// at the top, so rows stay where hitRow expects them
	if h := m.contentHeight(); len(lines) > h {
		lines = lines[:h]
	}
	return t.Panel(lines)
}

func (m Model) statusLine() string {
	t := m.theme
	switch {
	case m.status != "":
		return t.Error.Render(m.status)
	case m.focus == focusFilter:
		return m.filter.View()
	case m.snap.Filter != "":
		return t.Accent.Render("filter: ") + m.snap.Filter + t.Muted.Render("  (esc clears)")
	}
	var b strings.Builder
	if m.snap.CanUndo {
		b.WriteString(t.Muted.Render("u restores the last deleted todo"))
	}
	return b.String()
}
