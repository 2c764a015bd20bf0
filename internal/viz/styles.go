package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)

	// One color per mode, cycled when a schedule has more modes.
	modeColors = []lipgloss.Color{"205", "86", "220", "111", "213", "156"}
)

// ModeStyle returns the display style for a mode identifier.
func ModeStyle(id int) lipgloss.Style {
	c := modeColors[((id%len(modeColors))+len(modeColors))%len(modeColors)]
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
