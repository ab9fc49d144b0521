package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "ctrl+s":
		return core.ActionScreenshot
	case "a", "left", "h":
		return core.ActionLeft
	case "d", "right", "l":
		return core.ActionRight
	case "w", "up", "k":
		return core.ActionUp
	case "s", "down", "j":
		return core.ActionDown
	case "enter", " ":
		return core.ActionConfirm
	case "n":
		return core.ActionNext
	case "b":
		return core.ActionPrev
	case "esc":
		return core.ActionBack
	}

	return core.ActionNone
}
