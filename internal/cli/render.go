package cli

import (
	"fmt"
	"strings"

	"flipcalc/internal/deal"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(48).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. The first
// column is left-aligned; remaining columns are right-aligned for amounts.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// CategoryLabel returns the human-readable headline for an outcome category.
func CategoryLabel(c deal.Category) string {
	switch c {
	case deal.FullyFundable:
		return "Fully fundable"
	case deal.FundableWithDownpayment:
		return "Fundable with downpayment"
	case deal.NotFundable:
		return "Not fundable"
	case deal.NoRehabFunded:
		return "Fundable"
	}
	return "No outcome yet"
}

// CategoryColor returns the accent color for an outcome category.
func CategoryColor(c deal.Category) lipgloss.Color {
	switch c {
	case deal.FullyFundable, deal.NoRehabFunded:
		return ColorGreen
	case deal.FundableWithDownpayment:
		return ColorOrange
	case deal.NotFundable:
		return ColorRed
	}
	return ColorTextMuted
}

// RenderOutcome renders the fundability panel for one-shot CLI output.
func RenderOutcome(o deal.Outcome) string {
	var b strings.Builder

	if o.Category == deal.NoOutcomeYet {
		b.WriteString(mutedStyle.Render("  Enter the remaining amounts to see an outcome."))
		b.WriteString("\n")
		return b.String()
	}

	headline := lipgloss.NewStyle().Bold(true).Foreground(CategoryColor(o.Category))
	b.WriteString("  ")
	b.WriteString(headline.Render(CategoryLabel(o.Category)))
	b.WriteString("\n")

	rows := outcomeRows(o)
	if len(rows) > 0 {
		b.WriteString(RenderTable(Table{Rows: rows}))
	}

	return b.String()
}

// outcomeRows returns the label/value rows carried by the outcome's category.
func outcomeRows(o deal.Outcome) [][]string {
	var rows [][]string
	add := func(label string, v *float64, money bool) {
		if v == nil {
			return
		}
		if money {
			rows = append(rows, []string{label, FormatMoney(*v)})
		} else {
			rows = append(rows, []string{label, FormatPercent(*v)})
		}
	}

	add("As-is value", o.AsIsValue, true)
	add("Depth", o.Depth, false)
	add("Purchase draw", o.PurchaseDraw, true)
	add("Rehab draw", o.Rehab, true)
	add("Total loan", o.TotalLoan, true)
	add("Downpayment needed", o.Downpayment, true)
	add("Loan amount", o.NoRehabLoan, true)
	return rows
}
