package components

import (
	"flipcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and the active mode on the right.
func RenderStatusBar(width int, modeLabel string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [j/k]move [enter]edit [m]ode [e]xample [c]lear [s]ave [q]uit"
	right := ""
	if modeLabel != "" {
		right = "Mode: " + modeLabel + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
