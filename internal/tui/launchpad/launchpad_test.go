package launchpad

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ajsierra/launchpad/internal/config"
	"github.com/ajsierra/launchpad/internal/probe"
	tea "github.com/charmbracelet/bubbletea"
)

func testEnvs() []config.Environment {
	return []config.Environment{
		{ID: "a", Name: "dev", Host: "localhost", Port: 5432, Database: "app"},
		{ID: "b", Name: "prod", Host: "db.internal", Port: 5432, Database: "app", Tags: []string{"critical"}},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelected(t *testing.T) {
	m := New()
	m.SetSize(80, 20)
	m.SetEnvironments(testEnvs())

	if env := m.Selected(); env == nil || env.ID != "a" {
		t.Fatalf("Selected = %+v, want dev", env)
	}

	m, _ = m.Update(keyMsg("j"))
	if env := m.Selected(); env == nil || env.ID != "b" {
		t.Fatalf("after j: Selected = %+v, want prod", env)
	}

	// Cursor clamps at the end.
	m, _ = m.Update(keyMsg("j"))
	if env := m.Selected(); env == nil || env.ID != "b" {
		t.Fatalf("cursor ran past the last tile: %+v", env)
	}

	m, _ = m.Update(keyMsg("k"))
	if env := m.Selected(); env == nil || env.ID != "a" {
		t.Fatalf("after k: Selected = %+v, want dev", env)
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := New()
	m.SetSize(80, 20)
	m.SetEnvironments(testEnvs())
	m.SetFocused(false)

	m, _ = m.Update(keyMsg("j"))
	if env := m.Selected(); env == nil || env.ID != "a" {
		t.Fatalf("unfocused launchpad moved its cursor: %+v", env)
	}

	m.SetFocused(true)
	m, _ = m.Update(keyMsg("j"))
	if env := m.Selected(); env == nil || env.ID != "b" {
		t.Fatalf("focused launchpad did not move: %+v", env)
	}
}

func TestSelected_Empty(t *testing.T) {
	m := New()
	if env := m.Selected(); env != nil {
		t.Errorf("Selected on empty launchpad = %+v, want nil", env)
	}
}

func TestSetEnvironments_PreservesStatus(t *testing.T) {
	m := New()
	m.SetEnvironments(testEnvs())
	m.SetReport("a", &probe.Report{ServerVersion: "16.2"}, nil)

	// Re-sorted list keeps the probe outcome for surviving IDs.
	envs := testEnvs()
	envs[0], envs[1] = envs[1], envs[0]
	m.SetEnvironments(envs)

	view := m.View()
	if !strings.Contains(view, "16.2") {
		t.Error("probe report lost after SetEnvironments")
	}
}

func TestSetEnvironments_ClampsCursor(t *testing.T) {
	m := New()
	m.SetEnvironments(testEnvs())
	m, _ = m.Update(keyMsg("j"))

	m.SetEnvironments(testEnvs()[:1])
	if env := m.Selected(); env == nil || env.ID != "a" {
		t.Fatalf("cursor not clamped after shrink: %+v", env)
	}
}

func TestSetReport(t *testing.T) {
	m := New()
	m.SetSize(120, 20)
	m.SetEnvironments(testEnvs())

	m.SetReport("a", &probe.Report{ServerVersion: "16.2", SizeBytes: 2048, ActiveConns: 4}, nil)
	m.SetReport("b", nil, errors.New("connection refused"))

	view := m.View()
	if !strings.Contains(view, "pg 16.2") {
		t.Error("view missing probe summary for dev")
	}
	if !strings.Contains(view, "2.0 KB") {
		t.Error("view missing formatted database size")
	}
	if !strings.Contains(view, "unreachable: connection refused") {
		t.Error("view missing failure detail for prod")
	}
}

func TestTruncate_MultibyteSafe(t *testing.T) {
	s := "überlastung: zu viele verbindungen, später erneut versuchen"

	for max := 4; max < len(s)+4; max++ {
		got := truncate(s, max)
		if !utf8.ValidString(got) {
			t.Fatalf("truncate(%q, %d) produced invalid UTF-8: %q", s, max, got)
		}
	}

	if got := truncate("short", 80); got != "short" {
		t.Errorf("truncate should leave short strings alone, got %q", got)
	}
	if got := truncate("übermäßig lang", 2); got != "übermäßig lang" {
		t.Errorf("tiny budgets should pass through, got %q", got)
	}
}

func TestView_MultibyteErrorStaysValid(t *testing.T) {
	m := New()
	m.SetSize(30, 20)
	m.SetEnvironments(testEnvs())
	m.SetReport("a", nil, errors.New("überlastung: zu viele verbindungen im pool"))

	if view := m.View(); !utf8.ValidString(view) {
		t.Error("view contains invalid UTF-8 after truncating a multibyte error")
	}
}

func TestView_EmptyState(t *testing.T) {
	m := New()
	if !strings.Contains(m.View(), "No environments registered") {
		t.Error("empty launchpad should invite adding an environment")
	}
}

func TestView_MarksDefault(t *testing.T) {
	m := New()
	m.SetSize(80, 20)
	m.SetEnvironments(testEnvs())
	m.SetDefaultID("b")

	if !strings.Contains(m.View(), "prod *") {
		t.Error("default environment not marked")
	}
}

func TestView_ShowsTags(t *testing.T) {
	m := New()
	m.SetSize(80, 20)
	m.SetEnvironments(testEnvs())

	if !strings.Contains(m.View(), "[critical]") {
		t.Error("tags not rendered")
	}
}
