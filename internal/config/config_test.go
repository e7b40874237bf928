package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points the user and local search paths at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())
	return home
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg LexiconConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultLexiconConfig() {
		t.Errorf("embedded yaml and DefaultLexiconConfig() disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultLexiconConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDefaultsMatchGameConstants(t *testing.T) {
	cfg := DefaultLexiconConfig()
	if cfg.Board.MaxWords != 15 {
		t.Errorf("MaxWords = %d, expected 15", cfg.Board.MaxWords)
	}
	if cfg.Spawn.IntervalMS != 2200 {
		t.Errorf("IntervalMS = %d, expected 2200", cfg.Spawn.IntervalMS)
	}
	if cfg.Scoring.PointsPerChar != 10 {
		t.Errorf("PointsPerChar = %d, expected 10", cfg.Scoring.PointsPerChar)
	}
	if cfg.Scoring.BestKey != "lexicon_highscore" {
		t.Errorf("BestKey = %q", cfg.Scoring.BestKey)
	}
	// Slow downward drift with frictionless contacts
	if cfg.Physics.GravityY != 0.3 || cfg.Physics.Friction != 0 {
		t.Errorf("GravityY = %g, Friction = %g, expected 0.3 and 0", cfg.Physics.GravityY, cfg.Physics.Friction)
	}
}

func TestLoadLexiconFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadLexicon("")
	if err != nil {
		t.Fatalf("LoadLexicon() failed: %v", err)
	}
	if cfg != DefaultLexiconConfig() {
		t.Error("expected embedded defaults")
	}
}

func TestLoadLexiconCustomPathPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("board:\n  max_words: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon() failed: %v", err)
	}
	if cfg.Board.MaxWords != 8 {
		t.Errorf("MaxWords = %d, expected 8", cfg.Board.MaxWords)
	}
	if cfg.Spawn.IntervalMS != 2200 {
		t.Errorf("unset fields should keep defaults, IntervalMS = %d", cfg.Spawn.IntervalMS)
	}
}

func TestLoadLexiconCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadLexicon(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  max_words: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadLexicon(bad)
	if err == nil || !strings.Contains(err.Error(), "max_words") {
		t.Errorf("invalid custom file should fail validation, got %v", err)
	}
}

func TestLoadLexiconSearchOrder(t *testing.T) {
	home := isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "lexicon.yaml"), []byte("board:\n  max_words: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLexicon("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.MaxWords != 9 {
		t.Errorf("local config should be used, MaxWords = %d", cfg.Board.MaxWords)
	}

	userDir := filepath.Join(home, ".lexicon", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "lexicon.yaml"), []byte("board:\n  max_words: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadLexicon("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.MaxWords != 12 {
		t.Errorf("user config should win over local, MaxWords = %d", cfg.Board.MaxWords)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LexiconConfig)
		field  string
	}{
		{"zero capacity", func(c *LexiconConfig) { c.Board.MaxWords = 0 }, "max_words"},
		{"negative margin", func(c *LexiconConfig) { c.Board.Margin = -1 }, "margin"},
		{"band too large", func(c *LexiconConfig) { c.Board.SpawnBand = 1.5 }, "spawn_band"},
		{"zero interval", func(c *LexiconConfig) { c.Spawn.IntervalMS = 0 }, "interval_ms"},
		{"negative friction", func(c *LexiconConfig) { c.Physics.Friction = -0.1 }, "friction"},
		{"inverted speeds", func(c *LexiconConfig) { c.Physics.MaxSpeed = 0.5 }, "speed range"},
		{"no points", func(c *LexiconConfig) { c.Scoring.PointsPerChar = 0 }, "points_per_char"},
		{"no key", func(c *LexiconConfig) { c.Scoring.BestKey = "" }, "best_key"},
		{"no decay", func(c *LexiconConfig) { c.Effects.ParticleDecay = 0 }, "particle_decay"},
		{"bad progression", func(c *LexiconConfig) { c.Difficulty.Progression.Type = "moon" }, "progression"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLexiconConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %v, expected error naming %q", err, tc.field)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultLexiconConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultLexiconConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}
	if cfg.Difficulty.Progression.Type != "score" {
		t.Errorf("presets should switch on score progression, got %q", cfg.Difficulty.Progression.Type)
	}
	if cfg.Board.MaxWords != 10 {
		t.Errorf("hard preset MaxWords = %d, expected 10", cfg.Board.MaxWords)
	}

	cfg = DefaultLexiconConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Board.MaxWords != 20 {
		t.Errorf("easy preset MaxWords = %d, expected 20", cfg.Board.MaxWords)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestLoadServeEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LEXICON_SSH_ADDR", ":4000")
	t.Setenv("LEXICON_SSH_IDLE_TIMEOUT", "90s")

	cfg, err := LoadServeEnv()
	if err != nil {
		t.Fatalf("LoadServeEnv() failed: %v", err)
	}
	if cfg.Addr != ":4000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.IdleTimeout.Seconds() != 90 {
		t.Errorf("IdleTimeout = %v", cfg.IdleTimeout)
	}
	if cfg.MaxTimeout.Hours() != 2 {
		t.Errorf("MaxTimeout default = %v", cfg.MaxTimeout)
	}
}

func TestLoadServeEnvDotenv(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile(".env", []byte("LEXICON_DB=/tmp/from-dotenv.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LEXICON_DB", "")
	os.Unsetenv("LEXICON_DB") //nolint:errcheck // t.Setenv restores it

	cfg, err := LoadServeEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/tmp/from-dotenv.db" {
		t.Errorf("DBPath = %q, expected value from .env", cfg.DBPath)
	}
}

func TestLoadServeEnvBadDuration(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LEXICON_SSH_IDLE_TIMEOUT", "soon")
	if _, err := LoadServeEnv(); err == nil {
		t.Error("bad duration should fail")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
