package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMapper translates Bubble Tea key messages into normalized game
// input events. This centralizes key bindings and makes them testable;
// the engine never learns which key (or controller button) produced an
// event.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game input event.
// Returns ok=false for keys without a binding.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (in core.GameInput, ok bool) {
	switch msg.String() {
	case "up", "w":
		return core.DirectionInput(core.DirUp), true
	case "down", "s":
		return core.DirectionInput(core.DirDown), true
	case "left", "a":
		return core.DirectionInput(core.DirLeft), true
	case "right", "d":
		return core.DirectionInput(core.DirRight), true
	case "p", "esc":
		return core.ControlInput(core.ControlPause), true
	case "enter", " ":
		return core.ControlInput(core.ControlConfirm), true
	case "q", "ctrl+c":
		return core.ControlInput(core.ControlQuit), true
	}
	return core.GameInput{}, false
}
