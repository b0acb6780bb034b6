package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1976D2")).
			Padding(0, 1)
	hintStyle    = lipgloss.NewStyle().Faint(true)
	pullStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	armedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	statusStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C1C6B2")).
			Background(lipgloss.Color("#353533")).
			Padding(0, 1)
)
