package tui

import (
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lexicon/internal/core"
	"github.com/vovakirdan/lexicon/internal/registry"
)

// fakeGame replays queued step results and records what it was fed.
type fakeGame struct {
	queue   []core.StepResult
	state   core.GameState
	frames  []core.InputFrame
	resets  int
	resized [][2]int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(width, height int) { g.resized = append(g.resized, [2]int{width, height}) }
func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if len(g.queue) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.queue[0]
	g.queue = g.queue[1:]
	g.state = r.State
	return r
}

// staticGame hides Resize, so the model must fall back to Reset.
type staticGame struct{ registry.Game }

type savedScore struct {
	gameID, player string
	score          int
}

type fakeSaver struct {
	saved []savedScore
	err   error
}

func (s *fakeSaver) SaveScore(gameID, player string, score int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, savedScore{gameID, player, score})
	return int64(len(s.saved)), nil
}

type fakeSound struct {
	playing bool
	plays   int
	blips   int
}

func (s *fakeSound) Play()         { s.playing = true; s.plays++ }
func (s *fakeSound) Playing() bool { return s.playing }
func (s *fakeSound) Toggle() bool  { s.playing = !s.playing; return s.playing }
func (s *fakeSound) Blip()         { s.blips++ }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func over(score int) core.StepResult {
	return core.StepResult{State: core.GameState{Started: true, GameOver: true, Score: score}}
}

func running(score int) core.StepResult {
	return core.StepResult{State: core.GameState{Started: true, Score: score}}
}

func TestModelPasteReachesGameInOrder(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{})

	m = send(t, m, runes("git"))
	m = send(t, m, runes("ja"))
	m = send(t, m, TickMsg{})

	if len(g.frames) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.frames))
	}
	if got := string(g.frames[0].Typed()); got != "gitja" {
		t.Errorf("typed = %q, want %q", got, "gitja")
	}

	// Input is consumed by the tick
	send(t, m, TickMsg{})
	if got := len(g.frames[1].Typed()); got != 0 {
		t.Errorf("second tick typed %d chars, want 0", got)
	}
}

func TestModelSavesScoreOncePerSession(t *testing.T) {
	g := &fakeGame{queue: []core.StepResult{
		running(10), over(30), over(30), over(30),
		running(0), running(20), over(20),
	}}
	saver := &fakeSaver{}
	m := NewModel(g, testConfig(), Options{Scores: saver, Player: "ana"})

	for i := 0; i < 7; i++ {
		m = send(t, m, TickMsg{})
	}

	want := []savedScore{{"fake", "ana", 30}, {"fake", "ana", 20}}
	if len(saver.saved) != len(want) {
		t.Fatalf("saved = %v, want %v", saver.saved, want)
	}
	for i := range want {
		if saver.saved[i] != want[i] {
			t.Errorf("saved[%d] = %v, want %v", i, saver.saved[i], want[i])
		}
	}
}

func TestModelSkipsEmptyAndFailedSaves(t *testing.T) {
	g := &fakeGame{queue: []core.StepResult{over(0)}}
	saver := &fakeSaver{}
	m := NewModel(g, testConfig(), Options{Scores: saver})
	send(t, m, TickMsg{})
	if len(saver.saved) != 0 {
		t.Errorf("zero score saved: %v", saver.saved)
	}

	g = &fakeGame{queue: []core.StepResult{over(40)}}
	failing := &fakeSaver{err: errors.New("disk full")}
	m = NewModel(g, testConfig(), Options{Scores: failing})
	m = send(t, m, TickMsg{})
	if !m.scoreSaved {
		t.Error("a failed save must not be retried every tick")
	}
}

func TestModelEventsDriveSound(t *testing.T) {
	sound := &fakeSound{}
	g := &fakeGame{queue: []core.StepResult{
		{State: core.GameState{Started: true}, Events: []core.Event{{Kind: core.EventStarted}}},
		{State: core.GameState{Started: true, Score: 30}, Events: []core.Event{
			{Kind: core.EventWordCompleted, Word: "git", Score: 30},
			{Kind: core.EventNewBest, Score: 30},
		}},
	}}
	m := NewModel(g, testConfig(), Options{Sound: sound, AutoMusic: true})

	m = send(t, m, TickMsg{})
	if sound.plays != 1 || !sound.playing {
		t.Errorf("music should start with the session, plays = %d", sound.plays)
	}
	send(t, m, TickMsg{})
	if sound.blips != 1 {
		t.Errorf("blips = %d, want 1", sound.blips)
	}
}

func TestModelAutoMusicLeavesPlayingTrackAlone(t *testing.T) {
	sound := &fakeSound{playing: true}
	g := &fakeGame{queue: []core.StepResult{
		{State: core.GameState{Started: true}, Events: []core.Event{{Kind: core.EventStarted}}},
	}}
	m := NewModel(g, testConfig(), Options{Sound: sound, AutoMusic: true})
	send(t, m, TickMsg{})
	if sound.plays != 0 {
		t.Errorf("plays = %d, want 0", sound.plays)
	}
}

func TestModelTabTogglesMusic(t *testing.T) {
	sound := &fakeSound{}
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{Sound: sound})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !sound.playing {
		t.Error("tab should start music")
	}
	if !strings.Contains(m.View(), "♪") {
		t.Error("view should show the music indicator")
	}
	send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if sound.playing {
		t.Error("second tab should stop music")
	}

	// Tab is never game input
	m = send(t, m, TickMsg{})
	if len(g.frames[0].Typed()) != 0 {
		t.Error("tab leaked into typed input")
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(g.resized) != 1 || g.resized[0] != [2]int{100, 30} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resets != 0 {
		t.Errorf("resizable game was reset %d times", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}

	s := &fakeGame{}
	m = NewModel(staticGame{s}, testConfig(), Options{})
	send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if s.resets != 1 {
		t.Errorf("static game resets = %d, want 1", s.resets)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig(), Options{})

	next, cmd := m.Update(runes("q"))
	if cmd != nil || next.(Model).quitting {
		t.Fatal("q is a letter, not quit")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return tea.Quit")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("view after quit = %q", v)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&fakeGame{}, testConfig(), Options{ScreenshotDir: dir})
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Fatalf("screenshots = %v", entries)
	}
	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot content = %q", data)
	}
}
