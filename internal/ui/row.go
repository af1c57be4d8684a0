package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Row renders one todo line exactly width cells wide:
//
//	<cursor> <box> <text...> <delete>
//
// The delete affordance always occupies the last DeleteZone() cells, so
// callers can hit-test clicks without re-rendering.
func (t Theme) Row(text string, completed, selected bool, width int) string {
	prefix := strings.Repeat(" ", t.PrefixWidth())
	if selected {
		prefix = t.Selected.Render(t.Cursor) + strings.Repeat(" ", t.PrefixWidth()-ansi.StringWidth(t.Cursor))
	}

	box := t.Muted.Render(t.BoxUnchecked)
	boxW := ansi.StringWidth(t.BoxUnchecked)
	if completed {
		box = t.Success.Render(t.BoxChecked)
		boxW = ansi.StringWidth(t.BoxChecked)
	}

	textW := width - t.PrefixWidth() - boxW - 1 - t.DeleteZone()
	if textW < 1 {
		textW = 1
	}
	text = ansi.Truncate(text, textW, "…")
	pad := strings.Repeat(" ", max(textW-ansi.StringWidth(text), 0))
	if completed {
		text = t.Done.Render(text)
	}

	return prefix + box + " " + text + pad + " " + t.Error.Render(t.Delete)
}

// PrefixWidth is the width of the cursor column.
func (t Theme) PrefixWidth() int {
	return max(ansi.StringWidth(t.Cursor), 1) + 1
}

// DeleteZone is the number of trailing row cells that belong to the delete
// affordance: the glyph and the space before it.
func (t Theme) DeleteZone() int {
	return ansi.StringWidth(t.Delete) + 1
}
