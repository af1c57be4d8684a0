package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelInsetX and PanelInsetY are the cells between a panel's outer edge and
// its first content cell (border + horizontal padding).
const (
	PanelInsetX = 2
	PanelInsetY = 1
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines with the theme border.
func (t Theme) Panel(lines []string) string {
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Header is the banner line followed by live counts.
func (t Theme) Header(done, pending, total int) string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render(t.Banner),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), total,
	)
}
