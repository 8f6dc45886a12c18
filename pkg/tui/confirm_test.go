package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestConfirmYes(t *testing.T) {
	m := NewConfirm()
	confirmed := false
	m.Show(ConfirmConfig{Message: "Delete?", Destructive: true}, func() tea.Cmd {
		confirmed = true
		return nil
	}, nil)

	if !m.Active() {
		t.Fatal("confirm not active after Show")
	}
	m.Update(keyMsg("y"))
	if !confirmed {
		t.Error("onConfirm not called for y")
	}
	if m.Active() {
		t.Error("confirm still active after answer")
	}
}

func TestConfirmDecline(t *testing.T) {
	for _, key := range []string{"n", "esc"} {
		t.Run(key, func(t *testing.T) {
			m := NewConfirm()
			confirmed := false
			cancelled := false
			m.Show(ConfirmConfig{Message: "Delete?"}, func() tea.Cmd {
				confirmed = true
				return nil
			}, func() tea.Cmd {
				cancelled = true
				return nil
			})

			m.Update(keyMsg(key))
			if confirmed {
				t.Error("onConfirm called on decline")
			}
			if !cancelled {
				t.Error("onCancel not called")
			}
			if m.Active() {
				t.Error("confirm still active after decline")
			}
		})
	}
}

func TestConfirmOtherKeysIgnored(t *testing.T) {
	m := NewConfirm()
	m.Show(ConfirmConfig{Message: "Sure?"}, nil, nil)
	m.Update(keyMsg("z"))
	if !m.Active() {
		t.Error("unrelated key closed the confirmation")
	}
}

func TestConfirmViewShowsWarning(t *testing.T) {
	m := NewConfirm()
	m.Show(ConfirmConfig{Message: "Clear?", Warning: "cannot be undone"}, nil, nil)
	if !strings.Contains(m.View(), "cannot be undone") {
		t.Errorf("warning line missing from view: %q", m.View())
	}
	m.Hide()
	if m.View() != "" {
		t.Error("hidden confirmation rendered content")
	}
}
