package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name string

	Title, Muted, Accent     lipgloss.Style
	Success, Pending, Error  lipgloss.Style
	Selected, Done, Help     lipgloss.Style
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
	BoxUnchecked, BoxChecked string
	Delete, Cursor           string
	SymDone, SymPending      string
	Banner                   string
}

// ThemeNames lists the accepted theme names, default first.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme. Names are case-insensitive and ""
// selects classic.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return classic(), nil
	case "neon":
		return neon(), nil
	case "mono":
		return mono(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames, ", "))
}

// Classic is the default theme.
func Classic() Theme { return classic() }

func classic() Theme {
	muted := lipgloss.Color("245")
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2C3E50")),
		Muted:        lipgloss.NewStyle().Foreground(muted),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("#3498DB")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("#3498DB")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:         lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Strikethrough(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("8"),
		BoxUnchecked: "☐", BoxChecked: "☑",
		Delete: "✖", Cursor: ">",
		SymDone: "✔", SymPending: "•",
		Banner: "✨ Todo List ✨",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	t.BorderColor = lipgloss.Color("13")
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	return t
}

// mono carries no colour at all; strike-through stays so completed rows
// remain distinguishable.
func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:     "mono",
		Title:    plain.Bold(true),
		Muted:    plain,
		Accent:   plain,
		Success:  plain,
		Pending:  plain,
		Error:    plain,
		Selected: plain.Reverse(true),
		Done:     plain.Strikethrough(true),
		Help:     plain,
		Border: lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		},
		BorderColor:  lipgloss.NoColor{},
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		Delete: "x", Cursor: ">",
		SymDone: "x", SymPending: "-",
		Banner: "Todo List",
	}
}
