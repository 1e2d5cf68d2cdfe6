package tui

import "github.com/charmbracelet/lipgloss"

var (
	// HeaderStyle styles the column header row.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// CursorStyle highlights the selected picker row.
	CursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)

	// HelpStyle renders key binding hints.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	statusStyles = map[string]lipgloss.Style{
		"found":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"ok":      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"missing": lipgloss.NewStyle().Faint(true),
		"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// StatusStyle returns the lipgloss style for the given status string.
func StatusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
