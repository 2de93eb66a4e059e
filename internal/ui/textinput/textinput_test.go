package textinput

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func result(t *testing.T, cmd tea.Cmd) ResultMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg, got %T", cmd())
	}
	return msg
}

func TestInactiveIgnoresInput(t *testing.T) {
	m := New()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("inactive prompt should not emit commands")
	}
	if m.View() != "" {
		t.Error("inactive prompt should render nothing")
	}
}

func TestEnterConfirms(t *testing.T) {
	m := New()
	m.Start("Go to time", "")
	m = typeText(m, "1:30")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := result(t, cmd)
	if got.Canceled || got.Text != "1:30" {
		t.Errorf("result = %+v, want Text 1:30", got)
	}
	if m.Active() {
		t.Error("prompt should close on enter")
	}
}

func TestEscCancels(t *testing.T) {
	m := New()
	m.Start("Go to time", "00:10")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if got := result(t, cmd); !got.Canceled {
		t.Errorf("result = %+v, want canceled", got)
	}
	if m.Active() {
		t.Error("prompt should close on esc")
	}
}

func TestStartPrefills(t *testing.T) {
	m := New()
	m.Start("Go to time", "00:42")

	if m.Value() != "00:42" {
		t.Errorf("Value() = %q, want %q", m.Value(), "00:42")
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Go to time") || !strings.Contains(view, "00:42") {
		t.Errorf("View() = %q", view)
	}
}

func TestSetErrorShown(t *testing.T) {
	m := New()
	m.Start("Go to time", "")
	m.SetError(errors.New("invalid time"))

	if !strings.Contains(ansi.Strip(m.View()), "invalid time") {
		t.Error("View() should show the error")
	}
}
