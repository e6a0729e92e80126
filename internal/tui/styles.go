package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorMuted   = lipgloss.Color("#626262")
	colorGood    = lipgloss.Color("#04B575")
	colorBad     = lipgloss.Color("#FF5F87")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(colorPrimary).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(22)

	focusedLabelStyle = labelStyle.
				Foreground(colorPrimary).
				Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Width(24)

	metricValueStyle = lipgloss.NewStyle().Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)

func metricValueColored(positive bool) lipgloss.Style {
	if positive {
		return metricValueStyle.Foreground(colorGood)
	}
	return metricValueStyle.Foreground(colorBad)
}
