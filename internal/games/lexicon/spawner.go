package lexicon

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lexicon/internal/core"
	"github.com/vovakirdan/lexicon/internal/physics"
)

// Placement holds the parameters for positioning and launching new words.
type Placement struct {
	Margin        float64 // Cells kept free along every edge
	Band          float64 // Fraction of the height, from the top margin, where words appear
	MinSpeed      float64
	MaxSpeed      float64
	VelocityScale float64 // Cells per second for one speed unit
	VerticalScale float64 // Applied to the vertical velocity
	Spin          float64 // Max angular velocity per tick, radians
	TickRate      int
}

// Spawner chooses words from a pool on a tick-driven timer.
type Spawner struct {
	pool      []string
	rng       *rand.Rand
	interval  int
	countdown int
	active    bool
}

// NewSpawner creates a stopped spawner firing every interval ticks.
func NewSpawner(pool []string, rng *rand.Rand, interval int) *Spawner {
	return &Spawner{
		pool:     pool,
		rng:      rng,
		interval: max(interval, 1),
	}
}

// Start arms the timer. The first timed spawn fires one interval from now.
func (s *Spawner) Start() {
	s.active = true
	s.countdown = s.interval
}

// Stop disarms the timer. Returns false if it was already stopped.
func (s *Spawner) Stop() bool {
	if !s.active {
		return false
	}
	s.active = false
	return true
}

// Active reports whether the timer is armed.
func (s *Spawner) Active() bool {
	return s.active
}

// Interval returns the current interval in ticks.
func (s *Spawner) Interval() int {
	return s.interval
}

// SetInterval changes the interval. A pending countdown longer than the new
// interval is shortened.
func (s *Spawner) SetInterval(ticks int) {
	s.interval = max(ticks, 1)
	if s.countdown > s.interval {
		s.countdown = s.interval
	}
}

// Countdown returns the ticks left until the next timed spawn.
func (s *Spawner) Countdown() int {
	return s.countdown
}

// Tick advances the timer and reports whether a spawn is due.
func (s *Spawner) Tick() bool {
	if !s.active {
		return false
	}
	s.countdown--
	if s.countdown > 0 {
		return false
	}
	s.countdown = s.interval
	return true
}

// Pick returns a uniformly random word from the pool.
func (s *Spawner) Pick() string {
	return s.pool[s.rng.Intn(len(s.pool))]
}

// Place computes where and how a word of the given text enters a field of
// the given size. Speed is scaled by speedMul.
func (s *Spawner) Place(text string, fieldW, fieldH float64, p Placement, speedMul float64) physics.BoxSpec {
	w := float64(len(text) + 2)
	h := 1.0

	minX, maxX := p.Margin+w/2, fieldW-p.Margin-w/2
	x := fieldW / 2
	if maxX > minX {
		x = minX + s.rng.Float64()*(maxX-minX)
	} else {
		s.rng.Float64() // keep the sequence stable for tiny fields
	}

	y := p.Margin + s.rng.Float64()*(fieldH*p.Band)
	y = core.ClampF(y, h/2, fieldH-h/2)

	speed := (p.MinSpeed + s.rng.Float64()*(p.MaxSpeed-p.MinSpeed)) * p.VelocityScale * speedMul
	angle := s.rng.Float64() * 2 * math.Pi
	spin := (s.rng.Float64() - 0.5) * p.Spin * float64(p.TickRate)

	return physics.BoxSpec{
		X:               x,
		Y:               y,
		W:               w,
		H:               h,
		VX:              math.Cos(angle) * speed,
		VY:              math.Sin(angle) * speed * p.VerticalScale,
		AngularVelocity: spin,
	}
}
