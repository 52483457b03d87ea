package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle       = lipgloss.NewStyle().Padding(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	labelStyle     = lipgloss.NewStyle().Width(10)
	counterStyle   = lipgloss.NewStyle().Faint(true)
	overLimitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errorBoxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)
)
