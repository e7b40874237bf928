package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lexicon/internal/storage"
)

func TestScoreboardShowsScoresAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, s := range []struct {
		player string
		score  int
	}{{"ana", 120}, {"bo", 340}, {"ana", 60}} {
		if _, err := store.SaveScore("lexicon", s.player, s.score); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewScoreboardModel(store, "lexicon", "Lexicon Chaos", 100, 30)
	if len(m.scores) != 3 {
		t.Fatalf("scores = %d, want 3", len(m.scores))
	}
	if m.scores[0].Player != "bo" {
		t.Errorf("top player = %q, want bo", m.scores[0].Player)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Lexicon Chaos", "bo", "340", "Games:   3", "Players: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardNarrowLayout(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore("lexicon", "ana", 50); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, "lexicon", "Lexicon Chaos", 60, 20)
	if m.showSidebar {
		t.Fatal("narrow terminal should hide the sidebar")
	}
	if view := m.View(); !strings.Contains(view, "1 games | best 50") {
		t.Errorf("narrow view missing summary:\n%s", view)
	}
}

type brokenSource struct{}

func (brokenSource) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("database is locked")
}

func (brokenSource) GetGameStats(string) (*storage.GameStats, error) {
	return nil, errors.New("database is locked")
}

func TestScoreboardEmptyAndBroken(t *testing.T) {
	m := NewScoreboardModel(nil, "lexicon", "Lexicon Chaos", 100, 30)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("nil store should show the empty message")
	}

	m = NewScoreboardModel(brokenSource{}, "lexicon", "Lexicon Chaos", 100, 30)
	if !strings.Contains(m.View(), "database is locked") {
		t.Error("load errors should be shown")
	}
}

func TestScoreboardQuitAndResize(t *testing.T) {
	m := NewScoreboardModel(nil, "lexicon", "", 100, 30)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 15})
	m = next.(ScoreboardModel)
	if m.showSidebar || m.width != 50 {
		t.Errorf("resize not applied: width=%d sidebar=%v", m.width, m.showSidebar)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || next.(ScoreboardModel).View() != "" {
		t.Error("q should quit the scoreboard")
	}
}
