package settingsbar

import (
	"fmt"
	"strings"

	"github.com/ajsierra/launchpad/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BarHeight is the fixed height of the bar's content box, padding included.
// The bottom border adds one extra row on screen.
const BarHeight = 3

// Style is the settings bar container style. It binds exactly two palette
// tokens: theme.ColorGray200 for the bottom edge and theme.ColorWhite for
// the fill. All other properties are fixed.
var Style = lipgloss.NewStyle().
	Foreground(theme.ColorWhite).
	Border(lipgloss.NormalBorder(), false, false, true, false).
	BorderForeground(theme.ColorGray200).
	Background(theme.ColorWhite).
	AlignVertical(lipgloss.Center).
	Height(BarHeight).
	Padding(1, 2)

// Section foregrounds ride on the white fill; the bar itself never
// overrides them.
var (
	styleProfile = lipgloss.NewStyle().
			Foreground(theme.ColorGray800).
			Background(theme.ColorWhite).
			Bold(true)

	styleDetail = lipgloss.NewStyle().
			Foreground(theme.ColorGray400).
			Background(theme.ColorWhite)
)

// Model is the settings bar shown at the top of the launchpad view.
type Model struct {
	width     int
	profile   string
	sortMode  string
	themeName string
	envCount  int
}

// New creates a new settings bar model.
func New() Model {
	return Model{
		profile:   "default",
		sortMode:  "name",
		themeName: "default",
	}
}

// SetWidth updates the component width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetProfile updates the displayed profile name.
func (m *Model) SetProfile(name string) {
	m.profile = name
}

// SetSortMode updates the displayed sort mode.
func (m *Model) SetSortMode(mode string) {
	m.sortMode = mode
}

// SetThemeName updates the displayed theme name.
func (m *Model) SetThemeName(name string) {
	m.themeName = name
}

// SetEnvCount updates the displayed environment count.
func (m *Model) SetEnvCount(n int) {
	m.envCount = n
}

// Init returns the initial command (none).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages (the settings bar has no interactive behavior).
func (m Model) Update(_ tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the settings bar.
func (m Model) View() string {
	style := Style.Width(m.width)

	left := styleProfile.Render("Launchpad") +
		styleDetail.Render(" · "+m.profile)

	right := styleDetail.Render(fmt.Sprintf(
		"sort: %s │ theme: %s │ %d environments",
		m.sortMode, m.themeName, m.envCount,
	))

	// The right section yields, and the left truncates, rather than
	// wrap the bar.
	inner := m.width - style.GetHorizontalPadding()
	if inner > 0 && lipgloss.Width(left) > inner {
		left = lipgloss.NewStyle().MaxWidth(inner).Render(left)
	}
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		right = ""
		gap = inner - lipgloss.Width(left)
	}
	if gap < 0 {
		gap = 0
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		left,
		styleDetail.Render(strings.Repeat(" ", gap)),
		right,
	)

	return style.Render(row)
}
