package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

func pressMenu(m MenuModel, keys ...tea.KeyMsg) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelection(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected MenuChoice
	}{
		{"play", []tea.KeyMsg{enter}, ChoicePlay},
		{"scores", []tea.KeyMsg{down, enter}, ChoiceScores},
		{"quit entry", []tea.KeyMsg{down, down, down, enter}, ChoiceQuit},
		{"cursor stops at bottom", []tea.KeyMsg{down, down, down, down, down, enter}, ChoiceQuit},
		{"cursor stops at top", []tea.KeyMsg{up, up, enter}, ChoicePlay},
		{"escape quits", []tea.KeyMsg{{Type: tea.KeyEsc}}, ChoiceQuit},
		{"no selection yet", []tea.KeyMsg{down}, ChoiceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressMenu(NewMenuModel(core.DefaultConfig()), tt.keys...)
			if m.Choice() != tt.expected {
				t.Errorf("Choice() = %v, expected %v", m.Choice(), tt.expected)
			}
		})
	}
}

func TestMenuInstructionsToggle(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m := pressMenu(NewMenuModel(core.DefaultConfig()), down, down, enter)
	if m.Choice() != ChoiceNone {
		t.Fatalf("instructions should not close the menu, got %v", m.Choice())
	}
	if !strings.Contains(m.View(), "double jump") {
		t.Error("instructions view should describe the controls")
	}

	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Choice() != ChoiceNone {
		t.Fatalf("escape from instructions should return to the menu, got %v", m.Choice())
	}
	if !strings.Contains(m.View(), "High Scores") {
		t.Error("menu entries should be visible again")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()

	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config size = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
