package ui

import "github.com/charmbracelet/lipgloss"

// Palette based on Vitesse Dark Soft, trimmed to what the dashboard uses.
var (
	colPrimary = lipgloss.Color("#4d9375")
	colYellow  = lipgloss.Color("#e6cc77")
	colRed     = lipgloss.Color("#cb7676")
	colMuted   = lipgloss.Color("#dedcd590")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colPrimary)
	styleOK      = lipgloss.NewStyle().Foreground(colPrimary)
	styleWarn    = lipgloss.NewStyle().Foreground(colYellow)
	styleBad     = lipgloss.NewStyle().Foreground(colRed)
	styleMuted   = lipgloss.NewStyle().Foreground(colMuted)
	styleSpinner = lipgloss.NewStyle().Foreground(colPrimary)
	styleHelp    = lipgloss.NewStyle().Foreground(colMuted)
)
