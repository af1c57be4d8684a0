package ui

import (
	"fmt"

	"github.com/idilsaglam/todoview/internal/todo"
)

// ListOptions tune the non-interactive list.
type ListOptions struct {
	Group bool // pending first, then done
	Width int  // row width; 0 picks a default
}

// List renders a snapshot as a framed panel: header, progress bar, rows
// numbered by their 1-based list position, and a tip line.
func (t Theme) List(s todo.Snapshot, opt ListOptions) string {
	width := opt.Width
	if width <= 0 {
		width = 48
	}

	var lines []string
	lines = append(lines, t.Header(s.Done, s.Pending, s.Total))
	lines = append(lines, t.Muted.Render(ProgressBar(s.Done, s.Total, 28)))
	if s.Filter != "" {
		lines = append(lines, t.Accent.Render("filter: ")+s.Filter)
	}
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, t.groupLines(s.Rows, width)...)
	} else {
		lines = append(lines, t.flatLines(s.Rows, width)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: todo apply \"add Buy milk\" \"done 1\""))
	return t.Panel(lines)
}

func (t Theme) flatLines(rows []todo.Row, width int) []string {
	if len(rows) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		idx := t.Muted.Render(fmt.Sprintf("%2d.", r.Position+1))
		out = append(out, idx+" "+t.Row(r.Text, r.Completed, false, width))
	}
	return out
}

func (t Theme) groupLines(rows []todo.Row, width int) []string {
	var pend, done []todo.Row
	for _, r := range rows {
		if r.Completed {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, t.flatLines(pend, width)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, t.flatLines(done, width)...)
	}
	return lines
}
