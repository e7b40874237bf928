package config

import (
	_ "embed"
)

//go:embed defaults/lexicon.yaml
var defaultLexiconYAML []byte

// DefaultLexiconConfig returns the default configuration.
func DefaultLexiconConfig() LexiconConfig {
	return LexiconConfig{
		Board: BoardConfig{
			MaxWords:  15,
			Margin:    2,
			SpawnBand: 0.6,
		},
		Spawn: SpawnConfig{
			IntervalMS: 2200,
			Pack:       "cs",
		},
		Physics: PhysicsConfig{
			GravityY:       0.3,
			Damping:        0.94,
			Elasticity:     0.9,
			WallElasticity: 1.0,
			Friction:       0,
			MinSpeed:       1.0,
			MaxSpeed:       2.5,
			VelocityScale:  4.0,
			VerticalScale:  0.5,
			Spin:           0.03,
		},
		Scoring: ScoringConfig{
			PointsPerChar: 10,
			BestKey:       "lexicon_highscore",
		},
		Effects: EffectsConfig{
			Particles:        16,
			ParticleMinSpeed: 2.0,
			ParticleMaxSpeed: 6.0,
			ParticleScale:    0.1,
			ParticleDecay:    0.028,
			ShakeTicks:       6,
			Music:            true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 0.5,
				SpeedMultiplier:   0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLexiconYAML
}
