// Package config provides YAML-based game configuration loading and
// difficulty management for Lexicon.
package config

import (
	"errors"
	"fmt"
)

// LexiconConfig contains all configuration for the game.
type LexiconConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the play-field capacity and spawn area.
type BoardConfig struct {
	MaxWords  int     `yaml:"max_words"`  // Session ends when this many words are on the field
	Margin    int     `yaml:"margin"`     // Safe border in cells kept free of new words
	SpawnBand float64 `yaml:"spawn_band"` // Fraction of the height, from the top, where words appear
}

// SpawnConfig defines the spawn timer and the default word pack.
type SpawnConfig struct {
	IntervalMS int    `yaml:"interval_ms"`
	Pack       string `yaml:"pack"`
}

// PhysicsConfig defines the simulation parameters. Units are cells and seconds.
type PhysicsConfig struct {
	GravityY       float64 `yaml:"gravity_y"`
	Damping        float64 `yaml:"damping"`
	Elasticity     float64 `yaml:"elasticity"`
	WallElasticity float64 `yaml:"wall_elasticity"`
	Friction       float64 `yaml:"friction"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	VelocityScale  float64 `yaml:"velocity_scale"` // Cells per second for one speed unit
	VerticalScale  float64 `yaml:"vertical_scale"` // Terminal cells are about twice as tall as wide
	Spin           float64 `yaml:"spin"`           // Max angular velocity per tick, radians
}

// ScoringConfig defines how completions are rewarded and where the best score lives.
type ScoringConfig struct {
	PointsPerChar int    `yaml:"points_per_char"`
	BestKey       string `yaml:"best_key"`
}

// EffectsConfig defines the cosmetic completion effects.
type EffectsConfig struct {
	Particles        int     `yaml:"particles"`
	ParticleMinSpeed float64 `yaml:"particle_min_speed"`
	ParticleMaxSpeed float64 `yaml:"particle_max_speed"`
	ParticleScale    float64 `yaml:"particle_scale"` // Cells per tick for one speed unit
	ParticleDecay    float64 `yaml:"particle_decay"` // Life lost per tick, life starts at 1
	ShakeTicks       int     `yaml:"shake_ticks"`
	Music            bool    `yaml:"music"` // Start the music with the first session
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to spawn speed at max difficulty
}

// Validate reports the first setting that would make the game unplayable.
func (c LexiconConfig) Validate() error {
	var errs []error
	if c.Board.MaxWords <= 0 {
		errs = append(errs, fmt.Errorf("board.max_words must be positive, got %d", c.Board.MaxWords))
	}
	if c.Board.Margin < 0 {
		errs = append(errs, fmt.Errorf("board.margin must not be negative, got %d", c.Board.Margin))
	}
	if c.Board.SpawnBand <= 0 || c.Board.SpawnBand > 1 {
		errs = append(errs, fmt.Errorf("board.spawn_band must be in (0, 1], got %g", c.Board.SpawnBand))
	}
	if c.Spawn.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("spawn.interval_ms must be positive, got %d", c.Spawn.IntervalMS))
	}
	if c.Physics.Friction < 0 {
		errs = append(errs, fmt.Errorf("physics.friction must not be negative, got %g", c.Physics.Friction))
	}
	if c.Physics.MinSpeed < 0 || c.Physics.MaxSpeed < c.Physics.MinSpeed {
		errs = append(errs, fmt.Errorf("physics speed range [%g, %g] is invalid", c.Physics.MinSpeed, c.Physics.MaxSpeed))
	}
	if c.Scoring.PointsPerChar <= 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_char must be positive, got %d", c.Scoring.PointsPerChar))
	}
	if c.Scoring.BestKey == "" {
		errs = append(errs, errors.New("scoring.best_key must not be empty"))
	}
	if c.Effects.ParticleDecay <= 0 {
		errs = append(errs, fmt.Errorf("effects.particle_decay must be positive, got %g", c.Effects.ParticleDecay))
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is unknown", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
