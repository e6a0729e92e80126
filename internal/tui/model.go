// Package tui is a terminal front-end for the viager valuation engine.
//
// Every keystroke re-parses the input fields and runs a full recompute;
// the engine is pure and O(months), so there is no debouncing and no
// cached state beyond the current scenario.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogerard/immoval/internal/domain"
	"github.com/ogerard/immoval/internal/output"
	"github.com/ogerard/immoval/internal/parse"
	"github.com/ogerard/immoval/internal/viager"
)

// field indexes into Model.inputs.
const (
	fieldMarketValue = iota
	fieldAge
	fieldSex
	fieldRent
	fieldDiscountRate
	fieldUpfrontPct
	fieldIndexation
	fieldCharges
	fieldPropertyTax
	fieldAppreciation
	fieldSaleCosts
	fieldTermYears
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Market value",
	"Occupant age",
	"Occupant sex",
	"Monthly rent",
	"Discount rate %",
	"Bouquet %",
	"Indexation %",
	"Annual charges",
	"Property tax",
	"Appreciation %",
	"Sale costs %",
	"Term years",
}

var saleModes = []domain.SaleMode{domain.SaleOccupied, domain.SaleFree, domain.SaleTerm}

// Model is the complete TUI state: a column of text inputs and the result
// of the latest recompute.
type Model struct {
	inputs [fieldCount]textinput.Model
	focus  int
	mode   int
	result domain.ValuationResult
	width  int
	height int
}

// NewModel builds the TUI pre-filled with a typical occupied-viager case.
func NewModel() Model {
	defaults := [fieldCount]string{
		"292 000", "71", "Femme", "740", "2", "30", "1,5", "1 800", "1 200", "1", "7", "15",
	}

	var m Model
	for i := 0; i < fieldCount; i++ {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 16
		in.Width = 12
		in.SetValue(defaults[i])
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Any edit triggers a recompute.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "shift+tab":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "down", "tab", "enter":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "ctrl+m", "f2":
			m.mode = (m.mode + 1) % len(saleModes)
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *Model) setFocus(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

// scenario assembles the current inputs into a domain scenario. Numeric
// fields go through the locale-aware parser, so "292 000" and "1,5" work
// as typed.
func (m *Model) scenario() domain.ViagerScenario {
	val := func(i int) float64 { return parse.Amount(m.inputs[i].Value()) }
	return domain.ViagerScenario{
		MarketValue:       val(fieldMarketValue),
		OccupantAge:       val(fieldAge),
		OccupantSex:       strings.TrimSpace(m.inputs[fieldSex].Value()),
		EstimatedRent:     val(fieldRent),
		DiscountRatePct:   val(fieldDiscountRate),
		UpfrontPct:        val(fieldUpfrontPct),
		IndexationRatePct: val(fieldIndexation),
		AnnualCharges:     val(fieldCharges),
		AnnualPropertyTax: val(fieldPropertyTax),
		AppreciationPct:   val(fieldAppreciation),
		SaleCostsPct:      val(fieldSaleCosts),
		Mode:              saleModes[m.mode],
		TermYears:         val(fieldTermYears),
	}
}

func (m *Model) recompute() {
	m.result = viager.Value(m.scenario())
}

// View implements tea.Model.
func (m Model) View() string {
	var form strings.Builder
	form.WriteString(fmt.Sprintf("Sale mode: %s  (F2 to cycle)\n\n", saleModes[m.mode]))
	for i := 0; i < fieldCount; i++ {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		form.WriteString(label.Render(fieldLabels[i]))
		form.WriteString(m.inputs[i].View())
		form.WriteString("\n")
	}

	r := m.result
	var results strings.Builder
	writeMetric(&results, "Horizon", fmt.Sprintf("%.1f years", r.HorizonYears), metricValueStyle)
	writeMetric(&results, "Occupancy right (DUH)", output.Currency(r.OccupancyValue), metricValueStyle)
	writeMetric(&results, "Base value", output.Currency(r.BaseValue), metricValueStyle)
	writeMetric(&results, "Bouquet", output.Currency(r.UpfrontAmount), metricValueStyle)
	writeMetric(&results, "Monthly payment", output.Currency(r.MonthlyPayment), metricValueStyle)
	writeMetric(&results, "Notary fees", output.Currency(r.NotaryFees), metricValueStyle)
	writeMetric(&results, "Total outlay", output.Currency(r.TotalOutlay), metricValueStyle)
	writeMetric(&results, "Net resale proceeds", output.Currency(r.NetProceeds), metricValueStyle)
	writeMetric(&results, "Annualized return", output.Percent(r.AnnualizedReturnPct),
		metricValueColored(r.AnnualizedReturnPct >= 0))
	writeMetric(&results, "DUH / market value", output.Percent(r.DiscountPct), metricValueStyle)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(form.String()),
		" ",
		panelStyle.Render(results.String()),
	)

	help := helpStyle.Render("tab/↑↓ move · F2 sale mode · esc quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("immoval · viager calculator"),
		body,
		help,
	)
}

func writeMetric(b *strings.Builder, label, value string, style lipgloss.Style) {
	b.WriteString(metricLabelStyle.Render(label))
	b.WriteString(style.Render(value))
	b.WriteString("\n")
}
