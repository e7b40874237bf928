package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score seen so far, persisted across sessions
	Started  bool // Whether a session has been started at least once
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventStarted       EventKind = iota // A session started
	EventWordSpawned                    // A word entered the play field
	EventWordLocked                     // Typing locked onto a word
	EventWordCompleted                  // A word was fully typed and destroyed
	EventLockDropped                    // A mismatched character released the lock
	EventNewBest                        // The best score was raised
	EventPersistFailed                  // The best score could not be stored
	EventGameOver                       // The session ended
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventWordSpawned:
		return "word_spawned"
	case EventWordLocked:
		return "word_locked"
	case EventWordCompleted:
		return "word_completed"
	case EventLockDropped:
		return "lock_dropped"
	case EventNewBest:
		return "new_best"
	case EventPersistFailed:
		return "persist_failed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification emitted by a game.
// The platform uses events for logging and feedback (sound, haptics);
// nothing it does with them flows back into the simulation.
type Event struct {
	Kind  EventKind
	Word  string // Word involved, if any
	Score int    // Score after the event
	Err   error  // Set for EventPersistFailed
}
