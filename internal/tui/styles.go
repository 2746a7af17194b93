package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("45")
	ColorAccent  = lipgloss.Color("212")
	ColorSuccess = lipgloss.Color("42")
	ColorDanger  = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("241")

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	PositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	NegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)
)
