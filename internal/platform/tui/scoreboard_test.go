package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canyon-runner/internal/storage"
)

type failingBoard struct{ *memBoard }

func (failingBoard) All() ([]storage.Entry, error) { return nil, errors.New("corrupt") }

func TestScoreboardLoadsTopAndStats(t *testing.T) {
	board := &memBoard{}
	for i, score := range []int{90, 80, 70, 60, 50, 40, 30} {
		board.entries = append(board.entries, storage.Entry{Name: string(rune('a' + i)), Score: score})
	}

	m := NewScoreboardModel(board, 80)

	if len(m.top) != storage.TopN {
		t.Fatalf("expected %d rows, got %d", storage.TopN, len(m.top))
	}
	if m.top[0].Score != 90 || m.top[4].Score != 50 {
		t.Errorf("unexpected top rows: %+v", m.top)
	}
	if m.stats.Count != 7 || m.stats.Best != 90 || m.stats.Mean != 60 {
		t.Errorf("unexpected stats: %+v", m.stats)
	}
	if !strings.Contains(m.View(), "7 games") {
		t.Error("view should include the stats line")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(&memBoard{}, 80)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty board should show a placeholder")
	}
}

func TestScoreboardLoadError(t *testing.T) {
	m := NewScoreboardModel(failingBoard{&memBoard{}}, 80)
	if m.loadErr == nil {
		t.Fatal("expected a load error")
	}
	if !strings.Contains(m.View(), "corrupt") {
		t.Error("view should show the load error")
	}
}

func TestScoreboardKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		back bool
		quit bool
	}{
		{"escape goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"b goes back", runeKey('b'), true, false},
		{"q quits", runeKey('q'), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, cmd := NewScoreboardModel(&memBoard{}, 80).Update(tt.msg)
			m := next.(ScoreboardModel)
			if m.IsGoingBack() != tt.back || m.IsQuitting() != tt.quit {
				t.Errorf("back=%v quit=%v, expected back=%v quit=%v",
					m.IsGoingBack(), m.IsQuitting(), tt.back, tt.quit)
			}
			if cmd == nil {
				t.Error("expected a quit command")
			}
		})
	}
}
