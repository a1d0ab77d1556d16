package statusbar

import (
	"strings"

	"github.com/ajsierra/launchpad/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the bottom status bar component.
type Model struct {
	width      int
	defaultEnv string
	message    string
}

// New creates a new status bar model.
func New() Model {
	return Model{}
}

// SetWidth updates the component width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetDefaultEnv updates the displayed default environment name.
func (m *Model) SetDefaultEnv(name string) {
	m.defaultEnv = name
}

// SetMessage sets a temporary status message.
func (m *Model) SetMessage(msg string) {
	m.message = msg
}

// Init returns the initial command (none).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages (status bar has no interactive behavior).
func (m Model) Update(_ tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the status bar.
func (m Model) View() string {
	style := theme.StyleStatusBar.Width(m.width)

	var left string
	if m.defaultEnv != "" {
		left = lipgloss.NewStyle().
			Foreground(theme.ColorSuccess).
			Render("◆") + " " + m.defaultEnv
	} else {
		left = theme.StyleMuted.Render("no default environment")
	}

	hints := "Enter/r: Probe │ a: Add │ x: Remove │ ?: Help │ q: Quit"

	right := hints
	if m.message != "" {
		right = m.message
	}

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := m.width - leftLen - rightLen - 4
	if padding < 1 {
		padding = 1
	}

	bar := left + strings.Repeat(" ", padding) + right

	return style.Render(bar)
}
