package report

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#C2185B")
	warningColor = lipgloss.Color("#FFB300")
	subtleColor  = lipgloss.Color("#757575")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)
)
