package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lexicon/internal/audio"
	"github.com/vovakirdan/lexicon/internal/core"
	"github.com/vovakirdan/lexicon/internal/games/lexicon"
	"github.com/vovakirdan/lexicon/internal/platform/tui"
	"github.com/vovakirdan/lexicon/internal/registry"
	"github.com/vovakirdan/lexicon/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPack       string
	flagMute       bool
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a Lexicon Chaos session.

Controls:
  Enter      - Start / play again
  a-z        - Type (first letter locks onto a word)
  Esc        - Pause
  Tab        - Toggle music
  Ctrl+S     - Save a screenshot
  Ctrl+C     - Quit

Difficulty options:
  easy   - More room on the field, spawns speed up slowly
  normal - Spawns speed up with your score
  hard   - Less room on the field, starts fast
  fixed  - No progression, stays at the config's interval

Examples:
  lexicon play
  lexicon play --pack go
  lexicon play --difficulty hard --mute
  lexicon play --config ./my-lexicon.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Word pack ID (see 'lexicon list')")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your scores (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "lexicon")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, pack, err := loadSettings(flagConfig, flagDifficulty, flagPack)
	if err != nil {
		return err
	}
	lexicon.Configure(cfg, pack)

	game, err := registry.Create(lexicon.GameID)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Logger:    logger,
		Player:    playerName(),
		AutoMusic: cfg.Effects.Music,
	}

	// Without a database the game still runs; the best score lives in memory
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		if bs, ok := game.(registry.BestScorer); ok {
			bs.AttachBestStore(storage.NewMemoryBestStore())
		}
	} else {
		defer store.Close()
		opts.Scores = store
		if bs, ok := game.(registry.BestScorer); ok {
			bs.AttachBestStore(store)
		}
	}

	if !flagMute {
		player := audio.NewPlayer()
		if initErr := player.Init(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
		}
		defer player.Close()
		opts.Sound = player
	}

	logger.Info("starting", "pack", pack.ID, "words", len(pack.Words), "max_words", cfg.Board.MaxWords)
	if err := tui.Run(game, runtime, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// playerName picks the name stored with scores.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
