package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/todoview/internal/todo"
	"github.com/idilsaglam/todoview/internal/ui"
)

const (
	formatPanel    = "panel"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

type renderOptions struct {
	format string
	group  bool
	match  string
}

func (o *renderOptions) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.format, "format", "f", formatPanel, "output format: panel, json or markdown")
	fs.BoolVarP(&o.group, "group", "g", false, "group rows into pending and done (panel only)")
	fs.StringVarP(&o.match, "match", "m", "", "only show rows matching a glob or words")
}

func (o renderOptions) validate() error {
	switch o.format {
	case formatPanel, formatJSON, formatMarkdown:
		return nil
	}
	return usageError("unknown format %q (want panel, json or markdown)", o.format)
}

// render writes one snapshot of the list in the requested format.
func (s *session) render(snap todo.Snapshot, o renderOptions) error {
	switch o.format {
	case formatJSON:
		enc := json.NewEncoder(s.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil

	case formatMarkdown:
		md := ui.Markdown(snap)
		if f, ok := terminal(s.stdout); ok {
			out, err := s.theme.RenderMarkdown(md, ui.TermWidth(f, 80))
			if err != nil {
				return fmt.Errorf("render markdown: %w", err)
			}
			md = out
		}
		_, err := io.WriteString(s.stdout, md)
		return err
	}

	width := 0
	if f, ok := terminal(s.stdout); ok {
		// border, padding and the index column
		width = min(max(ui.TermWidth(f, 80)-12, 24), 76)
	}
	_, err := fmt.Fprintln(s.stdout, s.theme.List(snap, ui.ListOptions{Group: o.group, Width: width}))
	return err
}

func terminal(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok || !ui.IsTerminal(f) {
		return nil, false
	}
	return f, true
}
