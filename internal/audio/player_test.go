package audio

import (
	"math"
	"testing"
	"time"
)

// TestPlayerDisabledIsSilent verifies every call is safe without a speaker
func TestPlayerDisabledIsSilent(t *testing.T) {
	p := NewPlayer()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("disabled player panicked: %v", r)
		}
	}()

	if p.Enabled() {
		t.Error("new player should be disabled")
	}
	p.Play()
	if p.Playing() {
		t.Error("disabled player should never report playing")
	}
	if p.Toggle() {
		t.Error("Toggle on a disabled player should leave music off")
	}
	p.Pause()
	p.Blip()
	p.Close()
	p.Close()
}

func TestPlayerInitAfterCloseIsNoop(t *testing.T) {
	p := NewPlayer()
	p.Close()
	if err := p.Init(); err != nil {
		t.Errorf("Init after Close should be a no-op, got %v", err)
	}
	if p.Enabled() {
		t.Error("closed player must stay disabled")
	}
}

func TestBlipIsFinite(t *testing.T) {
	s := NewBlip(sampleRate)
	buf := make([][2]float64, 512)

	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > int(sampleRate) {
			t.Fatal("blip should end well within a second")
		}
	}
	if want := sampleRate.N(90 * time.Millisecond); total != want {
		t.Errorf("blip length = %d samples, expected %d", total, want)
	}
}

func TestMusicGeneratorBounded(t *testing.T) {
	g := NewMusicGenerator(sampleRate)
	buf := make([][2]float64, 4096)

	for round := 0; round < 20; round++ {
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("music should stream forever, got n=%d ok=%v", n, ok)
		}
		for _, s := range buf {
			if math.Abs(s[0]) > 1 || s[0] != s[1] {
				t.Fatalf("sample out of range or not mono: %v", s)
			}
		}
	}
	if g.Err() != nil {
		t.Error("generator should not report errors")
	}
}
