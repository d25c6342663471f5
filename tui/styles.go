package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	addressStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "244"})
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	subjectStyle  = lipgloss.NewStyle().Bold(true)
	bodyBoxStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1)
	expiredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Faint(true)
	attachMarker  = dimStyle.Render("📎")
)
