// Package components provides reusable TUI widgets for the flipcalc panel.
package components

import (
	"flipcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	return card(title, body, outerWidth, theme.Active.Border)
}

// AccentCard renders a content card with a colored border, used for the
// outcome panel where the border signals the fundability category.
func AccentCard(title, body string, outerWidth int, border lipgloss.Color) string {
	return card(title, body, outerWidth, border)
}

func card(title, body string, outerWidth int, border lipgloss.Color) string {
	t := theme.Active

	contentWidth := outerWidth - 2 // subtract border chars
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}
