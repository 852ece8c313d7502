package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	focusedLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	resultStyle  = lipgloss.NewStyle().PaddingLeft(2)
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	dimmedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func formatStatus(message string, isError bool) string {
	if isError {
		return errorStyle.Render(message)
	}
	return successStyle.Render(message)
}
