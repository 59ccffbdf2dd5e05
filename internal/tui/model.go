// Package tui implements the interactive lifetime spending calculator.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lifetracker/spending-calculator/internal/calculation"
	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/lifetracker/spending-calculator/internal/output"
	"github.com/shopspring/decimal"
)

const (
	ageField = iota
	monthlyField
)

const tickInterval = 100 * time.Millisecond

// tickMsg advances the animated total. gen ties it to the input change that scheduled it.
type tickMsg struct{ gen int }

// Model is the bubbletea model for the calculator.
type Model struct {
	inputs    [2]textinput.Model
	focus     int
	engine    *calculation.CalculationEngine
	report    *domain.ProjectionReport
	displayed decimal.Decimal
	gen       int
	width     int
}

// New creates a calculator pre-filled with age and monthly spending.
func New(engine *calculation.CalculationEngine, age int, monthly decimal.Decimal) Model {
	ageIn := textinput.New()
	ageIn.Prompt = ""
	ageIn.Placeholder = "Enter your current age"
	ageIn.CharLimit = 3
	ageIn.Width = 24
	ageIn.SetValue(fmt.Sprint(age))
	ageIn.Focus()

	monthlyIn := textinput.New()
	monthlyIn.Prompt = ""
	monthlyIn.Placeholder = "Enter your monthly spending"
	monthlyIn.CharLimit = 12
	monthlyIn.Width = 24
	monthlyIn.SetValue(monthly.String())

	m := Model{
		inputs:    [2]textinput.Model{ageIn, monthlyIn},
		engine:    engine,
		displayed: decimal.Zero,
		width:     80,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.gen))
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Age returns the parsed, clamped age field.
func (m Model) Age() int { return ParseAge(m.inputs[ageField].Value()) }

// Monthly returns the parsed monthly spending field.
func (m Model) Monthly() decimal.Decimal { return ParseMonthly(m.inputs[monthlyField].Value()) }

// Report returns the projection for the current inputs.
func (m Model) Report() *domain.ProjectionReport { return m.report }

// Displayed returns the animated total currently on screen.
func (m Model) Displayed() decimal.Decimal { return m.displayed }

func (m *Model) recompute() {
	report, err := m.engine.RunProjection(context.Background(), m.Monthly(), m.Age())
	if err != nil {
		m.engine.Logger.Errorf("projection failed: %v", err)
		return
	}
	m.report = report
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.displayed = stepToward(m.displayed, m.report.TotalSpending)
		if m.displayed.Equal(m.report.TotalSpending) {
			return m, nil
		}
		return m, tickCmd(m.gen)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % len(m.inputs))
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		}
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() == before {
		return m, cmd
	}

	m.recompute()
	m.gen++
	return m, tea.Batch(cmd, tickCmd(m.gen))
}

// View implements tea.Model.
func (m Model) View() string {
	t := output.Active
	title := lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Width(20)
	total := lipgloss.NewStyle().Bold(true).Foreground(t.AccentBright)
	muted := lipgloss.NewStyle().Foreground(t.TextDim)
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	focused := box.BorderForeground(t.Accent)

	field := func(i int, name string) string {
		style := box
		if i == m.focus {
			style = focused
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, label.Render(name), style.Render(m.inputs[i].View()))
	}

	var b strings.Builder
	b.WriteString("\n  " + title.Render("Lifetracker") + "\n")
	b.WriteString("  " + muted.Render("Calculate your lifetime spending trajectory") + "\n\n")
	b.WriteString(field(ageField, "  Current Age") + "\n")
	b.WriteString(field(monthlyField, "  Monthly Spending ($)") + "\n\n")

	if !m.report.HasProjection() {
		b.WriteString("  " + muted.Render("Enter a monthly spending above $0 to see your projection.") + "\n")
	} else {
		b.WriteString("  " + muted.Render("Projected Lifetime Spending") + "\n")
		b.WriteString("  " + total.Render(output.FormatCurrency(m.displayed)) + "\n\n")

		amounts := make([]float64, len(m.report.Records))
		events := make([]bool, len(m.report.Records))
		for i, r := range m.report.Records {
			amounts[i] = r.Amount.InexactFloat64()
			events[i] = r.IsLifeEvent
		}
		b.WriteString(output.BarChart(amounts, events, output.EventMarkers(m.report), max(40, m.width-4), 10))
		b.WriteString("\n\n")

		ctx := m.report.Context
		b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
			muted.Render("Retirement income/mo"), output.FormatCurrency(ctx.RetirementMonthlyIncome),
			muted.Render("Emergency fund"), output.FormatCurrency(ctx.EmergencyFund),
			muted.Render("Invest/yr"), output.FormatCurrency(ctx.YearlyInvestmentTarget)))
	}

	b.WriteString("\n  " + muted.Render("tab: switch field • q: quit") + "\n")
	return b.String()
}
