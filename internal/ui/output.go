package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// SetColorMode overrides colour detection for everything rendered through
// lipgloss afterwards. "always" forces 256 colours, "never" plain text and
// anything else leaves detection alone.
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TermWidth returns the width of f, or fallback when it is not a terminal.
func TermWidth(f *os.File, fallback int) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}

func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render(t.SymDone+" "+msg))
}

func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render("✖ "+msg))
}
