package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lexicon/internal/core"
	"github.com/vovakirdan/lexicon/internal/registry"
)

// ScoreSaver records the final score of a finished session.
type ScoreSaver interface {
	SaveScore(gameID, player string, score int) (int64, error)
}

// Sound is the audio feedback the model drives from game events.
type Sound interface {
	Play()
	Playing() bool
	Toggle() bool
	Blip()
}

// Options configures a Model beyond the runtime config.
type Options struct {
	Scores        ScoreSaver  // Where finished sessions are recorded; nil skips saving
	Sound         Sound       // Audio feedback; nil runs silent
	Logger        *log.Logger // Session log; nil discards
	Player        string      // Name stored with saved scores
	SessionID     string      // Attached to every log line when set
	AutoMusic     bool        // Start music when a session starts
	ScreenshotDir string      // Defaults to ~/.lexicon/screenshots

	// Renderer builds the color styles; nil uses the local terminal.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	styles     Styles
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("game", game.ID())
	if opts.SessionID != "" {
		logger = logger.With("session", opts.SessionID)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       NewKeyMapper(),
		styles:     NewStyles(opts.Renderer),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsScreenshot(msg):
		m.saveScreenshot()
		return m, nil
	case m.keys.IsMusicToggle(msg):
		if m.opts.Sound != nil {
			playing := m.opts.Sound.Toggle()
			m.logger.Debug("music toggled", "playing", playing)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Save score on game over (once per session)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore(m.gameState.Score)
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents logs game events and turns them into audio feedback.
func (m Model) handleEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventStarted:
			m.logger.Info("session started", "player", m.opts.Player)
			if m.opts.AutoMusic && m.opts.Sound != nil && !m.opts.Sound.Playing() {
				m.opts.Sound.Play()
			}
		case core.EventWordCompleted:
			m.logger.Debug("word completed", "word", ev.Word, "score", ev.Score)
			if m.opts.Sound != nil {
				m.opts.Sound.Blip()
			}
		case core.EventNewBest:
			m.logger.Info("new best", "score", ev.Score)
		case core.EventPersistFailed:
			m.logger.Warn("could not persist best score", "err", ev.Err)
		case core.EventGameOver:
			m.logger.Info("game over", "score", ev.Score)
		default:
			m.logger.Debug(ev.Kind.String(), "word", ev.Word)
		}
	}
}

// saveScore records a finished session. Empty sessions are not recorded.
func (m Model) saveScore(score int) {
	if m.opts.Scores == nil || score <= 0 {
		return
	}
	id, err := m.opts.Scores.SaveScore(m.game.ID(), m.opts.Player, score)
	if err != nil {
		m.logger.Error("save score", "err", err)
		return
	}
	m.logger.Debug("score saved", "id", id, "score", score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".lexicon", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.opts.Sound != nil && m.opts.Sound.Playing() && m.screen.Height() > 1 {
		m.screen.SetColor(m.screen.Width()-2, 1, '♪', core.ColorBrightMagenta)
	}
	return m.styles.RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
