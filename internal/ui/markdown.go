package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/todoview/internal/todo"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "<", `\<`, "#", `\#`,
)

// Markdown renders a snapshot as a GitHub task list.
func Markdown(s todo.Snapshot) string {
	var b strings.Builder
	b.WriteString("# Todo List\n\n")
	if len(s.Rows) == 0 {
		b.WriteString("_no items_\n")
		return b.String()
	}
	for _, r := range s.Rows {
		box := "[ ]"
		if r.Completed {
			box = "[x]"
		}
		b.WriteString("- " + box + " " + mdEscaper.Replace(r.Text) + "\n")
	}
	return b.String()
}

// RenderMarkdown styles md for a terminal of the given width. The mono theme
// gets glamour's colourless style.
func (t Theme) RenderMarkdown(md string, width int) (string, error) {
	if width < 40 {
		width = 80
	}
	style := glamour.WithAutoStyle()
	if t.Name == "mono" {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width-4))
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
