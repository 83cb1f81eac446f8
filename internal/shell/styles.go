package shell

import "github.com/charmbracelet/lipgloss"

// Color Palette
var (
	mintGreen   = lipgloss.Color("#A8E6CF") // success
	orchid      = lipgloss.Color("#E0A3E8") // warnings
	salmonPink  = lipgloss.Color("#FFB3BA") // accent, validation errors
	mutedGray   = lipgloss.Color("#6B7280") // hints
	brightWhite = lipgloss.Color("#F9FAFB") // primary text
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	questionStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	successStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	warningStyle = lipgloss.NewStyle().
			Foreground(orchid)

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)
)
