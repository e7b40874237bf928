package main

import (
	"fmt"

	"github.com/vovakirdan/lexicon/internal/config"
	"github.com/vovakirdan/lexicon/internal/words"
)

// loadSettings resolves the game config and word pack from flags.
// An empty packID uses the pack named in the config.
func loadSettings(configPath, difficulty, packID string) (config.LexiconConfig, words.Pack, error) {
	cfg, err := config.LoadLexicon(configPath)
	if err != nil {
		return config.LexiconConfig{}, words.Pack{}, err
	}

	if difficulty != "" {
		preset, presetErr := config.ParsePreset(difficulty)
		if presetErr != nil {
			return config.LexiconConfig{}, words.Pack{}, presetErr
		}
		config.ApplyPreset(&cfg, preset)
	}

	packs, err := loadPacks()
	if err != nil {
		return config.LexiconConfig{}, words.Pack{}, err
	}
	if packID == "" {
		packID = cfg.Spawn.Pack
	}
	pack, err := packs.Lookup(packID)
	if err != nil {
		return config.LexiconConfig{}, words.Pack{}, err
	}
	cfg.Spawn.Pack = pack.ID

	return cfg, pack, nil
}

// loadPacks returns the built-in packs plus any in ~/.lexicon/packs.
func loadPacks() (*words.Set, error) {
	packs, err := words.Load(words.UserDir())
	if err != nil {
		return nil, fmt.Errorf("cannot load word packs: %w", err)
	}
	return packs, nil
}
