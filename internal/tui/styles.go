package tui

import "github.com/charmbracelet/lipgloss"

// Styling constants
var (
	// Colors
	primaryColor   = lipgloss.Color("#F5C518") // IMDb gold
	secondaryColor = lipgloss.Color("#F5F5F1") // Light cream color
	accentColor    = lipgloss.Color("#564D4D") // Dark gray

	// Text styles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	normalTextStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	highlightedTextStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	favMarkStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	// Component styles
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1).
			Width(44)

	listStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1).
			Width(64)

	helpStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	// Informational messages (zero matches, upstream notices)
	infoStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	activeDot   = lipgloss.NewStyle().Foreground(primaryColor).Render("•")
	inactiveDot = lipgloss.NewStyle().Foreground(accentColor).Render("•")
)
