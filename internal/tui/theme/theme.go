package theme

import "github.com/charmbracelet/lipgloss"

// Color palette — semantic design tokens shared by every component.
var (
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorGray50  = lipgloss.Color("#F7F9FA")
	ColorGray100 = lipgloss.Color("#DEE4EA")
	ColorGray200 = lipgloss.Color("#B8C1CC")
	ColorGray400 = lipgloss.Color("#8B96A3")
	ColorGray600 = lipgloss.Color("#5C6670")
	ColorGray800 = lipgloss.Color("#2E343B")

	ColorPrimary   = lipgloss.Color("#5B8DEF")
	ColorHighlight = lipgloss.Color("#F2CC60")
	ColorSuccess   = lipgloss.Color("#3FB950")
	ColorWarning   = lipgloss.Color("#D29922")
	ColorError     = lipgloss.Color("#F85149")
)

// Shared styles used across TUI components.
var (
	StyleBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray600)

	StyleActiveBorder = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorGray400)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorGray800).
			Foreground(ColorGray100).
			Padding(0, 1)
)
