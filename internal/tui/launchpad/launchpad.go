package launchpad

import (
	"fmt"
	"strings"
	"time"

	"github.com/ajsierra/launchpad/internal/config"
	"github.com/ajsierra/launchpad/internal/probe"
	"github.com/ajsierra/launchpad/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const probeLatencyUnit = time.Millisecond

// Item is one environment tile on the launchpad.
type Item struct {
	Env    config.Environment
	Status probe.Status
	Report *probe.Report
	Err    error
}

// Model is the launchpad (environment list) component.
type Model struct {
	items     []Item
	cursor    int
	width     int
	height    int
	focused   bool
	defaultID string
}

// New creates a new launchpad model.
func New() Model {
	return Model{focused: true}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetFocused sets the focus state.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// Focused returns whether the launchpad has focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetDefaultID marks which environment is the default.
func (m *Model) SetDefaultID(id string) {
	m.defaultID = id
}

// SetEnvironments replaces the tile list, preserving known statuses.
func (m *Model) SetEnvironments(envs []config.Environment) {
	prev := make(map[string]Item, len(m.items))
	for _, it := range m.items {
		prev[it.Env.ID] = it
	}

	items := make([]Item, 0, len(envs))
	for _, env := range envs {
		it := Item{Env: env}
		if old, ok := prev[env.ID]; ok {
			it.Status = old.Status
			it.Report = old.Report
			it.Err = old.Err
		}
		items = append(items, it)
	}
	m.items = items

	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetStatus updates the probe status of one environment.
func (m *Model) SetStatus(id string, status probe.Status) {
	for i := range m.items {
		if m.items[i].Env.ID == id {
			m.items[i].Status = status
			return
		}
	}
}

// SetReport records a probe outcome for one environment.
func (m *Model) SetReport(id string, report *probe.Report, err error) {
	for i := range m.items {
		if m.items[i].Env.ID != id {
			continue
		}
		m.items[i].Report = report
		m.items[i].Err = err
		if err != nil {
			m.items[i].Status = probe.StatusDown
		} else {
			m.items[i].Status = probe.StatusUp
		}
		return
	}
}

// Selected returns the environment under the cursor, or nil.
func (m Model) Selected() *config.Environment {
	if len(m.items) == 0 || m.cursor >= len(m.items) {
		return nil
	}
	env := m.items[m.cursor].Env
	return &env
}

// Init returns the initial command (none).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if len(m.items) > 0 {
				m.cursor = len(m.items) - 1
			}
		}
	}

	return m, nil
}

// View renders the launchpad tiles.
func (m Model) View() string {
	if len(m.items) == 0 {
		return theme.StyleMuted.Render("No environments registered. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, it := range m.items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderTile(it, i == m.cursor))
	}
	return b.String()
}

func (m Model) renderTile(it Item, selected bool) string {
	glyph := statusGlyph(it.Status)

	name := it.Env.Name
	if it.Env.ID != "" && it.Env.ID == m.defaultID {
		name += " *"
	}

	nameStyle := lipgloss.NewStyle().Bold(true)
	if selected {
		nameStyle = nameStyle.Foreground(theme.ColorHighlight)
	}

	prefix := "  "
	if selected {
		prefix = "> "
	}

	head := prefix + glyph + " " + nameStyle.Render(name) + "  " +
		theme.StyleMuted.Render(it.Env.DisplayString())
	if len(it.Env.Tags) > 0 {
		head += "  " + theme.StyleMuted.Render("["+strings.Join(it.Env.Tags, ",")+"]")
	}

	detail := m.renderDetail(it)
	if detail == "" {
		return head
	}
	return head + "\n" + "      " + detail
}

func (m Model) renderDetail(it Item) string {
	switch {
	case it.Err != nil:
		return theme.StyleError.Render(truncate("unreachable: "+it.Err.Error(), m.width-8))
	case it.Status == probe.StatusChecking:
		return theme.StyleMuted.Render("probing...")
	case it.Report != nil:
		r := it.Report
		return theme.StyleMuted.Render(fmt.Sprintf(
			"pg %s │ %s │ %d conns │ %s",
			r.ServerVersion,
			probe.FormatSize(r.SizeBytes),
			r.ActiveConns,
			r.Latency.Round(probeLatencyUnit),
		))
	default:
		return ""
	}
}

func statusGlyph(s probe.Status) string {
	switch s {
	case probe.StatusUp:
		return theme.StyleSuccess.Render("●")
	case probe.StatusDown:
		return theme.StyleError.Render("●")
	case probe.StatusChecking:
		return lipgloss.NewStyle().Foreground(theme.ColorWarning).Render("●")
	default:
		return theme.StyleMuted.Render("○")
	}
}

func truncate(s string, max int) string {
	if max < 4 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
