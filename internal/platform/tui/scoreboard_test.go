package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termtris/internal/storage"
)

type fakeHistory struct {
	scores []storage.ScoreEntry
	err    error
}

func (f fakeHistory) TopScores(limit int) ([]storage.ScoreEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.scores[:min(limit, len(f.scores))], nil
}

func (f fakeHistory) Stats() (storage.Stats, error) {
	st := storage.Stats{Games: len(f.scores)}
	for _, s := range f.scores {
		st.HighScore = max(st.HighScore, s.Score)
		st.TotalLines += int64(s.Lines)
	}
	return st, f.err
}

func TestScoreboardListsScores(t *testing.T) {
	played := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)
	history := fakeHistory{scores: []storage.ScoreEntry{
		{ID: 2, Score: 1200, Lines: 12, Level: 2, CreatedAt: played},
		{ID: 1, Score: 300, Lines: 3, Level: 1, CreatedAt: played},
	}}

	m := NewScoreboardModel(history, 100, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES", "#1", "1200", "#2", "2 games", "May 01 20:30"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(fakeHistory{}, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty message not shown")
	}
}

func TestScoreboardReadError(t *testing.T) {
	m := NewScoreboardModel(fakeHistory{err: errors.New("locked")}, 80, 24)
	if !strings.Contains(m.View(), "Cannot read scores") {
		t.Error("error message not shown")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(fakeHistory{}, 80, 24)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit did not return tea.Quit")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("View() should be empty after quit")
	}
}
