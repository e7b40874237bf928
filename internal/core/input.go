package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - scroll/move up
	ActionDown           // Down arrow - scroll/move down
	ActionConfirm        // Enter - start a session or play again
	ActionBack           // Escape on overlays - go back
	ActionRestart        // Restart game after game over
	ActionQuit           // Ctrl+C - exit game/session
	ActionPause          // Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame and the
// characters typed since the previous frame, in the order they arrived.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Chars holds typed characters. Order matters, so this is a slice.
	Chars []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends a typed character to the frame.
// Characters outside a-z are dropped here so games never see them.
func (f *InputFrame) Type(r rune) bool {
	ch, ok := NormalizeChar(r)
	if !ok {
		return false
	}
	f.Chars = append(f.Chars, ch)
	return true
}

// Typed returns the characters typed this frame.
func (f InputFrame) Typed() []rune {
	return f.Chars
}

// Clear resets all actions and typed characters for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Chars = f.Chars[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Chars) > 0 {
		clone.Chars = append([]rune(nil), f.Chars...)
	}
	return clone
}

// NormalizeChar lower-cases r and reports whether it is a letter a-z.
func NormalizeChar(r rune) (rune, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return r, true
}
