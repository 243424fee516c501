// Package tui provides the interactive Bubble Tea calculator panel.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"flipcalc/internal/cli"
	"flipcalc/internal/deal"
	"flipcalc/internal/store"
	"flipcalc/internal/tui/components"
	"flipcalc/internal/tui/theme"
	"flipcalc/internal/widget"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 60
	panelWidth       = 64
)

// fieldDef describes one editable input row.
type fieldDef struct {
	label string
	field deal.Field
}

var rehabFields = []fieldDef{
	{"After repair value", deal.FieldARV},
	{"Rehab cost", deal.FieldRehab},
	{"Purchase price", deal.FieldPurchase},
}

var noRehabFields = []fieldDef{
	{"Property value", deal.FieldNoRehabValue},
}

// App is the root Bubble Tea model. One App owns one calculator widget;
// multiple programs can run independent instances.
type App struct {
	w         *widget.Widget
	storePath string

	width  int
	height int

	cursor  int
	editing bool
	input   textinput.Model

	saveForm *huh.Form
	saveName string
	saved    bool
	saveErr  error
}

// NewApp creates the TUI model around a fresh widget instance.
func NewApp(mode deal.Mode, storePath string) App {
	w := widget.New()
	w.SetMode(mode)
	return App{w: w, storePath: storePath}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

func (a App) fields() []fieldDef {
	if a.w.Mode() == deal.NoRehab {
		return noRehabFields
	}
	return rehabFields
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.saveForm != nil {
			a.saveForm = a.saveForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Save form intercepts all keys while active
		if a.saveForm != nil {
			return a.updateSaveForm(msg)
		}

		if a.editing {
			return a.updateFieldInput(msg)
		}

		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "j", "down", "tab":
			if a.cursor < len(a.fields())-1 {
				a.cursor++
			}
			return a, nil
		case "k", "up", "shift+tab":
			if a.cursor > 0 {
				a.cursor--
			}
			return a, nil
		case "enter":
			return a.startEdit()
		case "m":
			if a.w.Mode() == deal.RehabRequired {
				a.w.SetMode(deal.NoRehab)
			} else {
				a.w.SetMode(deal.RehabRequired)
			}
			if a.cursor >= len(a.fields()) {
				a.cursor = len(a.fields()) - 1
			}
			a.saved = false
			return a, nil
		case "e":
			a.w.LoadExample()
			a.saved = false
			return a, nil
		case "c":
			a.w.Clear()
			a.saved = false
			return a, nil
		case "s":
			return a.startSaveForm()
		}
		return a, nil
	}

	// Forward unhandled messages to the save form (cursor blinks, etc.)
	if a.saveForm != nil {
		return a.updateSaveForm(msg)
	}

	return a, nil
}

func (a App) startEdit() (tea.Model, tea.Cmd) {
	f := a.fields()[a.cursor]

	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 14
	ti.Placeholder = "min 10,000"
	if v := a.w.Scenario().Get(f.field); v != nil {
		ti.SetValue(strconv.FormatFloat(*v, 'f', -1, 64))
	}
	ti.Focus()

	a.editing = true
	a.saved = false
	a.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateFieldInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.applyFieldInput()
		a.editing = false
		return a, nil
	case "esc":
		a.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// applyFieldInput commits the edited value. Empty input unsets the field;
// unparseable input leaves it unchanged.
func (a *App) applyFieldInput() {
	f := a.fields()[a.cursor]
	val := strings.TrimSpace(a.input.Value())

	if val == "" {
		a.w.SetField(f.field, nil)
		return
	}
	if v, err := strconv.ParseFloat(val, 64); err == nil {
		a.w.SetField(f.field, &v)
	}
}

func (a App) startSaveForm() (tea.Model, tea.Cmd) {
	a.saveName = ""
	a.saved = false
	a.saveErr = nil

	a.saveForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scenario name").
				Description("Archive the current inputs and outcome.").
				Value(&a.saveName),
		),
	)
	if a.width > 0 {
		a.saveForm = a.saveForm.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.saveForm.Init()
}

func (a App) updateSaveForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.saveForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.saveForm = f
	}

	if a.saveForm.State == huh.StateCompleted {
		name := strings.TrimSpace(a.saveName)
		if name != "" {
			a.saveErr = a.saveScenario(name)
			a.saved = a.saveErr == nil
		}
		a.saveForm = nil
		return a, nil
	}

	if a.saveForm.State == huh.StateAborted {
		a.saveForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) saveScenario(name string) error {
	st, err := store.Open(a.storePath)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	_, err = st.Save(name, a.w.Scenario())
	return err
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  flipcalc needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.saveForm != nil {
		return a.saveForm.View()
	}

	t := theme.Active

	cw := panelWidth
	if cw > a.width-2 {
		cw = a.width - 2
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	title := titleStyle.Render("◈ flipcalc") + subtitleStyle.Render(" · Loan Fundability")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		a.renderInputs(cw),
		a.renderOutcome(cw),
	)

	statusBar := components.RenderStatusBar(a.width, a.w.Mode().String())

	contentH := a.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}
	content := lipgloss.Place(a.width, contentH, lipgloss.Center, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (a App) renderInputs(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	unsetStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	selectedLabel := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	selectedValue := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	for i, f := range a.fields() {
		if a.editing && i == a.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedLabel.Render(fmt.Sprintf("%-20s ", f.label)))
			b.WriteString(a.input.View())
			b.WriteString("\n")
			continue
		}

		display := "—"
		set := false
		if v := a.w.Scenario().Get(f.field); v != nil {
			display = cli.FormatMoney(*v)
			set = true
		}

		if i == a.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedLabel.Render(fmt.Sprintf("%-20s ", f.label)))
			b.WriteString(selectedValue.Render(display))
		} else {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			if set {
				b.WriteString(valueStyle.Render(display))
			} else {
				b.WriteString(unsetStyle.Render(display))
			}
		}
		b.WriteString("\n")
	}

	if a.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.saveErr)))
	} else if a.saved {
		greenStyle := lipgloss.NewStyle().Foreground(t.Green)
		b.WriteString("\n")
		b.WriteString(greenStyle.Render("Saved!"))
	}

	return components.ContentCard("Inputs", strings.TrimRight(b.String(), "\n"), cw)
}

func (a App) renderOutcome(cw int) string {
	t := theme.Active
	o := a.w.Outcome()
	d := a.w.Derived()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(cw)

	row := func(b *strings.Builder, label string, v *float64) {
		if v == nil {
			return
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", label)))
		b.WriteString(valueStyle.Render(cli.FormatMoney(*v)))
		b.WriteString("\n")
	}

	if o.Category == deal.NoOutcomeYet {
		body := dimStyle.Render("Enter the remaining amounts to see an outcome.")
		return components.ContentCard("Outcome", body, cw)
	}

	headlineStyle := lipgloss.NewStyle().Foreground(categoryColor(o.Category)).Bold(true)

	var b strings.Builder
	b.WriteString(headlineStyle.Render(cli.CategoryLabel(o.Category)))
	b.WriteString("\n")

	if a.w.Mode() == deal.RehabRequired {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", "Depth")))
		b.WriteString(components.DepthGauge(d.Depth, innerW-21))
		b.WriteString("\n")
	}

	row(&b, "As-is value", o.AsIsValue)
	row(&b, "Purchase draw", o.PurchaseDraw)
	row(&b, "Rehab draw", o.Rehab)
	row(&b, "Total loan", o.TotalLoan)
	row(&b, "Loan amount", o.NoRehabLoan)

	if o.Category == deal.FundableWithDownpayment && o.Downpayment != nil {
		downStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", "Downpayment needed")))
		b.WriteString(downStyle.Render(cli.FormatMoney(*o.Downpayment)))
		b.WriteString("\n")
	}

	return components.AccentCard("Outcome", strings.TrimRight(b.String(), "\n"), cw, categoryColor(o.Category))
}

func categoryColor(c deal.Category) lipgloss.Color {
	t := theme.Active
	switch c {
	case deal.FullyFundable, deal.NoRehabFunded:
		return t.Green
	case deal.FundableWithDownpayment:
		return t.Orange
	case deal.NotFundable:
		return t.Red
	}
	return t.Border
}
