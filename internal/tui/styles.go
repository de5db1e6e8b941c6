package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("247"))
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1)
	taxTagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	formBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// applyTheme adjusts the palette for light terminals. The dark palette
// is the default.
func applyTheme(theme string) {
	if theme != "light" {
		return
	}
	dimStyle = dimStyle.Foreground(lipgloss.Color("245"))
	labelStyle = labelStyle.Foreground(lipgloss.Color("238"))
	totalStyle = totalStyle.Foreground(lipgloss.Color("28"))
	statusStyle = statusStyle.Foreground(lipgloss.Color("235")).Background(lipgloss.Color("253"))
	footerStyle = footerStyle.Foreground(lipgloss.Color("235")).Background(lipgloss.Color("251"))
	taxTagStyle = taxTagStyle.Foreground(lipgloss.Color("94"))
}
