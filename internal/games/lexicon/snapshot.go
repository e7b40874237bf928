package lexicon

// WordSnapshot captures one word on the field.
type WordSnapshot struct {
	Text  string
	Typed int
	X, Y  float64
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Phase          Phase
	Paused         bool
	Score          int
	Best           int
	Words          []WordSnapshot
	Locked         string // Text of the locked word, empty when idle
	Bodies         int
	Particles      int
	SpawnCountdown int
	WorldRunning   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:           g.tick,
		Phase:          g.phase,
		Paused:         g.paused,
		Score:          g.scorer.Current(),
		Best:           g.scorer.Best(),
		Bodies:         g.world.Count(),
		Particles:      len(g.particles),
		SpawnCountdown: g.spawner.Countdown(),
		WorldRunning:   g.world.Running(),
	}
	for _, e := range g.reg.items {
		ws := WordSnapshot{Text: e.Text, Typed: e.Typed}
		if body, ok := g.world.Body(e.Body); ok {
			ws.X, ws.Y = body.X, body.Y
		}
		s.Words = append(s.Words, ws)
	}
	if e, ok := g.lockedEntity(); ok {
		s.Locked = e.Text
	}
	return s
}
