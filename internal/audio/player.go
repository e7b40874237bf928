// Package audio plays the background track and the completion blip.
// Audio is optional: when no output device is available every call is a no-op.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and a mixer with a pausable music track.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	closed      bool
}

// NewPlayer creates a disabled player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. On failure the player stays disabled and the error
// is returned for logging; the game runs silently.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.closed {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	p.music = &beep.Ctrl{
		Streamer: &effects.Volume{Streamer: NewMusicGenerator(sampleRate), Base: 2, Volume: -1.5},
		Paused:   true,
	}
	p.mixer.Add(p.music)
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Playing reports whether the music track is audible.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.music.Paused
}

// Play resumes the music. A disabled player stays silent.
func (p *Player) Play() {
	p.setPaused(false)
}

// Pause silences the music.
func (p *Player) Pause() {
	p.setPaused(true)
}

// Toggle flips the music on or off and returns whether it is now playing.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}
	speaker.Lock()
	p.music.Paused = !p.music.Paused
	playing := !p.music.Paused
	speaker.Unlock()
	return playing
}

func (p *Player) setPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.music.Paused = paused
	speaker.Unlock()
}

// Blip plays the short completion sound over whatever else is playing.
func (p *Player) Blip() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(NewBlip(sampleRate))
	speaker.Unlock()
}

// Close stops all sound and releases the speaker. Safe to call repeatedly.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// NewBlip returns a 90ms rising chirp with an exponential decay.
func NewBlip(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(90*time.Millisecond), &blipGenerator{sr: sr})
}

type blipGenerator struct {
	sr  beep.SampleRate
	pos int
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 880 + 2200*t
		sample := 0.25 * math.Exp(-t*30) * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error {
	return nil
}

// MusicGenerator loops a minor arpeggio over a pulsing bass line.
type MusicGenerator struct {
	sr   beep.SampleRate
	pos  int
	step int // Samples per arpeggio note
}

// arpeggio is A minor, C major, F major, G major, four notes each.
var arpeggio = []float64{
	220.00, 261.63, 329.63, 440.00,
	261.63, 329.63, 392.00, 523.25,
	174.61, 220.00, 261.63, 349.23,
	196.00, 246.94, 293.66, 392.00,
}

// NewMusicGenerator creates an endless background track at 120 BPM sixteenths.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{sr: sr, step: sr.N(125 * time.Millisecond)}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (g.pos / g.step) % len(arpeggio)
		inNote := float64(g.pos%g.step) / float64(g.sr)
		t := float64(g.pos) / float64(g.sr)

		lead := 0.12 * math.Exp(-inNote*12) * math.Sin(2*math.Pi*arpeggio[note]*t)
		root := arpeggio[(note/4)*4] / 2
		bass := 0.08 * math.Sin(2*math.Pi*root*t)

		sample := lead + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
