package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	BlackColor     = lipgloss.Color("#121214") // screen and unrevealed cells
	PrimaryColor   = lipgloss.Color("#538D4E") // green - correct
	SecondaryColor = lipgloss.Color("#B59F3B") // yellow - present
	DarkGreyColor  = lipgloss.Color("#3A3A3D") // absent, idle borders
	GreyColor      = lipgloss.Color("#818384") // active cell border, untouched keys
	LightGreyColor = lipgloss.Color("#D7DADC") // letters, title
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(LightGreyColor).
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	cellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(LightGreyColor).
			Border(lipgloss.RoundedBorder())

	keyStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Margin(0, 0, 0, 1).
			Bold(true).
			Foreground(LightGreyColor)

	StatusStyle = lipgloss.NewStyle().
			Foreground(LightGreyColor).
			MarginTop(1)

	WonStyle = StatusStyle.Foreground(PrimaryColor).Bold(true)

	LostStyle = StatusStyle.Foreground(SecondaryColor).Bold(true)
)
