package lexicon

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lexicon/internal/core"
)

// Particle is a cosmetic spark from a destroyed word. Particles never affect
// gameplay and draw from their own RNG.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 when born, removed at 0
	Color  core.Color
}

// burst describes one explosion.
type burst struct {
	count         int
	minSpeed      float64
	maxSpeed      float64
	scale         float64 // Cells per tick for one speed unit
	verticalScale float64
}

func (b burst) spawn(rng *rand.Rand, x, y float64) []Particle {
	out := make([]Particle, 0, b.count)
	for i := 0; i < b.count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := (b.minSpeed + rng.Float64()*(b.maxSpeed-b.minSpeed)) * b.scale
		color := core.ColorBrightCyan
		if rng.Float64() > 0.5 {
			color = core.ColorBrightMagenta
		}
		out = append(out, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed * b.verticalScale,
			Life:  1,
			Color: color,
		})
	}
	return out
}

// stepParticles moves every particle and drops the dead ones in place.
func stepParticles(ps []Particle, decay float64) []Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= decay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	return alive
}

// glyph picks a rune that fades with the particle's life.
func (p Particle) glyph() rune {
	switch {
	case p.Life > 0.66:
		return '*'
	case p.Life > 0.33:
		return '+'
	default:
		return '.'
	}
}
