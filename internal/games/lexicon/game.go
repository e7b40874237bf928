// Package lexicon implements Lexicon Chaos, a typing game where words drift
// around a physics-simulated field. Typing the first letter of a word locks
// onto it; finishing it destroys the word for ten points per letter. The
// session ends when the field holds too many words.
package lexicon

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/lexicon/internal/config"
	"github.com/vovakirdan/lexicon/internal/core"
	"github.com/vovakirdan/lexicon/internal/physics"
	"github.com/vovakirdan/lexicon/internal/registry"
	"github.com/vovakirdan/lexicon/internal/words"
)

const (
	// GameID is the registry and score-table identifier.
	GameID = "lexicon"

	hudHeight    = 2 // Status line and separator
	footerHeight = 3 // Capacity bar, typing line, key hints

	minFieldW = 20
	minFieldH = 4
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Package-level configuration set by the CLI before games are created.
// SSH sessions read it concurrently.
var (
	settingsMu  sync.RWMutex
	settingsCfg = config.DefaultLexiconConfig()
	settingsPk  words.Pack
)

// Configure sets the configuration and word pack used by New.
func Configure(cfg config.LexiconConfig, pack words.Pack) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settingsCfg = cfg
	settingsPk = pack
}

func settings() (config.LexiconConfig, words.Pack) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	pack := settingsPk
	if len(pack.Words) == 0 {
		pack = words.Default()
	}
	return settingsCfg, pack
}

// Game implements Lexicon Chaos.
type Game struct {
	cfg  config.LexiconConfig
	pack words.Pack

	tickRate int
	rng      *rand.Rand // Gameplay: word choice and placement
	fxRng    *rand.Rand // Cosmetic effects only
	tick     uint64

	phase  Phase
	paused bool

	world      *physics.World
	reg        *Registry
	typist     Typist
	spawner    *Spawner
	scorer     *Scorer
	difficulty *config.DifficultyManager

	particles    []Particle
	shake        int
	sessionTicks int

	screenW int
	screenH int

	events  []core.Event
	pending []core.Event // Raised outside Step, flushed on the next tick
}

// New creates a game from the package-level configuration.
func New() *Game {
	cfg, pack := settings()
	return NewWithConfig(cfg, pack)
}

// NewWithConfig creates a game with an explicit configuration and pack.
func NewWithConfig(cfg config.LexiconConfig, pack words.Pack) *Game {
	return &Game{
		cfg:    cfg,
		pack:   pack,
		scorer: NewScorer(cfg.Scoring.BestKey, cfg.Scoring.PointsPerChar),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lexicon Chaos"
}

// Pack returns the word pack in play.
func (g *Game) Pack() words.Pack {
	return g.pack
}

// AttachBestStore connects the persisted best score. A failed load is
// reported as an EventPersistFailed on the next tick.
func (g *Game) AttachBestStore(store core.BestStore) {
	if err := g.scorer.Attach(store); err != nil {
		g.pending = append(g.pending, core.Event{Kind: core.EventPersistFailed, Err: err})
	}
}

// physicsConfig overlays the tunable knobs onto the world defaults.
func (g *Game) physicsConfig() physics.Config {
	pc := physics.DefaultConfig()
	pc.GravityY = g.cfg.Physics.GravityY
	pc.Damping = g.cfg.Physics.Damping
	pc.Elasticity = g.cfg.Physics.Elasticity
	pc.WallElasticity = g.cfg.Physics.WallElasticity
	pc.Friction = g.cfg.Physics.Friction
	return pc
}

// Reset prepares a fresh session waiting on the start screen.
// The best score survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.fxRng = rand.New(rand.NewSource(cfg.Seed + 1))
	g.tick = 0
	g.phase = PhaseNotStarted
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.world = physics.NewWorld(g.physicsConfig())
	g.reg = NewRegistry(g.cfg.Board.MaxWords)
	g.typist = Typist{}
	g.spawner = NewSpawner(g.pack.Words, g.rng, g.baseInterval())
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.scorer.Reset()
	g.particles = nil
	g.shake = 0
	g.sessionTicks = 0
}

// Resize adapts the walls to a new screen without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.world != nil {
		fw, fh := g.fieldSize()
		g.world.SetBounds(fw, fh)
	}
}

// baseInterval converts the configured spawn interval to ticks.
func (g *Game) baseInterval() int {
	return max(g.cfg.Spawn.IntervalMS*g.tickRate/1000, 1)
}

// fieldSize returns the play-field size in cells.
func (g *Game) fieldSize() (float64, float64) {
	w := max(g.screenW, 1)
	h := max(g.screenH-hudHeight-footerHeight, 1)
	return float64(w), float64(h)
}

func (g *Game) tooSmall() bool {
	fw, fh := g.fieldSize()
	return fw < minFieldW || fh < minFieldH
}

func (g *Game) placement() Placement {
	return Placement{
		Margin:        float64(g.cfg.Board.Margin),
		Band:          g.cfg.Board.SpawnBand,
		MinSpeed:      g.cfg.Physics.MinSpeed,
		MaxSpeed:      g.cfg.Physics.MaxSpeed,
		VelocityScale: g.cfg.Physics.VelocityScale,
		VerticalScale: g.cfg.Physics.VerticalScale,
		Spin:          g.cfg.Physics.Spin,
		TickRate:      g.tickRate,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.pending
	g.pending = nil

	switch {
	case g.phase != PhaseRunning && (in.Has(core.ActionConfirm) || in.Has(core.ActionRestart)):
		g.start()
	case g.phase == PhaseRunning && in.Has(core.ActionPause):
		g.paused = !g.paused
	}

	if g.phase == PhaseRunning && !g.paused {
		for _, ch := range in.Typed() {
			g.typeChar(ch)
		}

		g.sessionTicks++
		g.world.Step(1 / float64(g.tickRate))

		if g.difficulty.IsEnabled() {
			g.spawner.SetInterval(g.difficulty.SpawnInterval(g.baseInterval(), g.scorer.Current(), g.sessionTicks))
		}
		if g.spawner.Tick() {
			g.spawn()
		}
	}

	// Effects keep fading on every screen, including game over
	g.particles = stepParticles(g.particles, g.cfg.Effects.ParticleDecay)
	if g.shake > 0 {
		g.shake--
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// start begins a new session from the start screen or after game over.
func (g *Game) start() {
	g.typist.Release(g.reg)
	g.reg.Clear()
	g.particles = nil
	g.shake = 0
	g.scorer.Reset()
	g.sessionTicks = 0
	g.paused = false

	fw, fh := g.fieldSize()
	g.world.Reset(fw, fh)
	g.spawner.SetInterval(g.baseInterval())
	g.spawner.Start()
	g.phase = PhaseRunning

	g.emit(core.Event{Kind: core.EventStarted, Score: 0})
	g.spawn()
}

// end finishes the session. Only the capacity check calls it, and only the
// first call has any effect.
func (g *Game) end() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhaseEnded
	g.paused = false
	g.spawner.Stop()
	g.world.Stop()
	g.typist.Release(g.reg)
	g.emit(core.Event{Kind: core.EventGameOver, Score: g.scorer.Current()})
}

// spawn adds a random word, ending the session when the field is full.
func (g *Game) spawn() {
	if g.phase != PhaseRunning {
		return
	}
	if g.reg.Full() {
		g.end()
		return
	}
	g.place(g.spawner.Pick())
	if g.reg.Full() {
		g.end()
	}
}

// place puts text on the field as a new body and entity.
func (g *Game) place(text string) *Entity {
	fw, fh := g.fieldSize()
	speedMul := g.difficulty.Speed(1, g.scorer.Current(), g.sessionTicks)
	spec := g.spawner.Place(text, fw, fh, g.placement(), speedMul)
	body := g.world.AddBox(spec)
	e, ok := g.reg.Add(text, body)
	if !ok {
		g.world.Remove(body)
		return nil
	}
	g.emit(core.Event{Kind: core.EventWordSpawned, Word: text, Score: g.scorer.Current()})
	return e
}

func (g *Game) typeChar(ch rune) {
	out := g.typist.Type(g.reg, ch)
	switch out.Kind {
	case OutcomeLocked:
		g.emit(core.Event{Kind: core.EventWordLocked, Word: out.Entity.Text, Score: g.scorer.Current()})
	case OutcomeDropped:
		g.emit(core.Event{Kind: core.EventLockDropped, Word: out.Entity.Text, Score: g.scorer.Current()})
	case OutcomeCompleted:
		g.complete(out.Entity)
	}
}

// complete destroys a fully typed word and rewards it.
func (g *Game) complete(e *Entity) {
	body, hasBody := g.world.Body(e.Body)
	g.world.Remove(e.Body)
	g.reg.Remove(e.ID)

	newBest, err := g.scorer.Award(e.Text)

	if hasBody {
		b := burst{
			count:         g.cfg.Effects.Particles,
			minSpeed:      g.cfg.Effects.ParticleMinSpeed,
			maxSpeed:      g.cfg.Effects.ParticleMaxSpeed,
			scale:         g.cfg.Effects.ParticleScale,
			verticalScale: g.cfg.Physics.VerticalScale,
		}
		g.particles = append(g.particles, b.spawn(g.fxRng, body.X, body.Y)...)
	}
	g.shake = g.cfg.Effects.ShakeTicks

	g.emit(core.Event{Kind: core.EventWordCompleted, Word: e.Text, Score: g.scorer.Current()})
	if newBest {
		g.emit(core.Event{Kind: core.EventNewBest, Score: g.scorer.Best()})
	}
	if err != nil {
		g.emit(core.Event{Kind: core.EventPersistFailed, Score: g.scorer.Best(), Err: err})
	}
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scorer.Current(),
		Best:     g.scorer.Best(),
		Started:  g.phase != PhaseNotStarted,
		GameOver: g.phase == PhaseEnded,
		Paused:   g.paused,
	}
}

// Phase returns the session lifecycle state.
func (g *Game) Phase() Phase {
	return g.phase
}
