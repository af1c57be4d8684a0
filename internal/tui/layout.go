package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todoview/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// lines of content above the first row: header, progress bar, blank,
	// input, blank
	linesAbove = 5
	inputLine  = 3
	// lines below the last row besides the help block: blank, status
	chromeBelow = 2

	minRowWidth = 24
	maxRowWidth = 76
)

type zone int

const (
	zoneNone zone = iota
	zoneRow
	zoneDelete
)

func (m Model) rowWidth() int {
	w := m.width - 2*ui.PanelInsetX
	return min(max(w, minRowWidth), maxRowWidth)
}

// contentHeight is the number of lines inside the panel frame. View never
// draws more, so the top of the panel stays on screen row 0.
func (m Model) contentHeight() int {
	return max(m.height-2*ui.PanelInsetY, 1)
}

func (m Model) keyMap() help.KeyMap {
	switch m.focus {
	case focusInput:
		return inputKeys
	case focusFilter:
		return filterKeys
	}
	return listKeys
}

func (m Model) helpView() string {
	return m.help.View(m.keyMap())
}

func (m Model) linesBelow() int {
	return chromeBelow + lipgloss.Height(m.helpView())
}

func (m Model) visibleRows() int {
	return max(m.contentHeight()-linesAbove-m.linesBelow(), 1)
}

func (m Model) hitInput(x, y int) bool {
	return y == ui.PanelInsetY+inputLine && inputLine < m.contentHeight() && x >= ui.PanelInsetX
}

// hitRow translates screen coordinates into a row index and the part of the
// row that was hit. Coordinates are those of the alt screen, where the
// panel's top-left corner is at (0, 0).
func (m Model) hitRow(x, y int) (int, zone) {
	top := ui.PanelInsetY + linesAbove
	line := y - top
	if line < 0 || line >= m.visibleRows() || y-ui.PanelInsetY >= m.contentHeight() {
		return -1, zoneNone
	}
	row := m.offset + line
	if row >= len(m.snap.Rows) {
		return -1, zoneNone
	}

	left := ui.PanelInsetX
	right := left + m.rowWidth()
	switch {
	case x < left || x >= right:
		return -1, zoneNone
	case x >= right-m.theme.DeleteZone():
		return row, zoneDelete
	}
	return row, zoneRow
}
