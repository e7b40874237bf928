package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLexicon loads the game configuration.
// Search order: customPath -> ~/.lexicon/configs/lexicon.yaml -> ./configs/lexicon.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadLexicon(customPath string) (LexiconConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LexiconConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return LexiconConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("lexicon.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "lexicon.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg LexiconConfig
	if err := yaml.Unmarshal(defaultLexiconYAML, &cfg); err != nil {
		return DefaultLexiconConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (LexiconConfig, error) {
	cfg := DefaultLexiconConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LexiconConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return LexiconConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lexicon", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *LexiconConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "none" || cfg.Difficulty.Progression.Type == "" {
		cfg.Difficulty.Progression.Type = "score"
	}

	// Adjust capacity based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Board.MaxWords += 5
	case DifficultyHard:
		cfg.Board.MaxWords = max(cfg.Board.MaxWords-5, 5)
	}
}
