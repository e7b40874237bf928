package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lexicon/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// Letters are the game's input, so no letter is bound to a command.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionPause, false
	case "up":
		return core.ActionUp, false
	case "down":
		return core.ActionDown, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message. Printable
// runes become typed characters; a paste delivers them all in order.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			frame.Type(r)
		}
	}
	return isQuit
}

// IsMusicToggle reports whether the key flips the background music.
func (km *KeyMapper) IsMusicToggle(msg tea.KeyMsg) bool {
	return msg.String() == "tab"
}

// IsScreenshot reports whether the key saves a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return msg.String() == "ctrl+s"
}
