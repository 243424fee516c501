package components

import (
	"fmt"
	"strings"

	"flipcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// gaugeScaleMax is the top of the depth gauge scale, in percent. Depths past
// it render as a full bar.
const gaugeScaleMax = 125.0

// DepthColor returns green/orange/red for a depth percentage, matching the
// classifier buckets.
func DepthColor(depth float64) lipgloss.Color {
	t := theme.Active
	switch {
	case depth > 100:
		return t.Red
	case depth > 80:
		return t.Orange
	default:
		return t.Green
	}
}

// DepthGauge renders the depth percentage as a horizontal bar with tick
// marks at the 80% and 100% classification thresholds. A nil depth renders
// an empty bar with a muted placeholder.
func DepthGauge(depth *float64, width int) string {
	t := theme.Active

	barW := width - 8 // leave room for the percentage readout
	if barW < 10 {
		barW = 10
	}

	if depth == nil {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		return emptyStyle.Render(strings.Repeat("░", barW) + "     —")
	}

	d := *depth
	pct := d / gaugeScaleMax
	if pct > 1 {
		pct = 1
	}
	if pct < 0 {
		pct = 0
	}

	filled := int(pct * float64(barW))
	if filled > barW {
		filled = barW
	}

	mark80 := int(80.0 / gaugeScaleMax * float64(barW))
	mark100 := int(100.0 / gaugeScaleMax * float64(barW))

	color := DepthColor(d)
	filledStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	markStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	var b strings.Builder
	for i := 0; i < barW; i++ {
		switch {
		case i == mark80 || i == mark100:
			b.WriteString(markStyle.Render("┊"))
		case i < filled:
			b.WriteString(filledStyle.Render("█"))
		default:
			b.WriteString(emptyStyle.Render("░"))
		}
	}

	return b.String() + " " + pctStyle.Render(fmt.Sprintf("%5.1f%%", d))
}
