package core

import "time"

// Action represents a semantic action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionConfirm           // Enter, Space - advance a sequence
	ActionNext              // N - next level
	ActionPrev              // B - previous level
	ActionBack              // Esc - back to the level picker
	ActionScreenshot        // Ctrl+S
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionBack:
		return "Back"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether a is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a >= ActionLeft && a <= ActionDown
}

// HeldKeys emulates key-up events for terminals, which only report presses.
// A direction counts as held until Hold has passed since its last press or
// auto-repeat. Pressing a direction releases the opposite one.
type HeldKeys struct {
	Hold  time.Duration
	until map[Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold duration.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{Hold: hold, until: make(map[Action]time.Time)}
}

// Press records a press of a at time now. Non-directions are ignored.
func (h *HeldKeys) Press(a Action, now time.Time) {
	if !a.IsDirection() {
		return
	}
	if h.until == nil {
		h.until = make(map[Action]time.Time)
	}
	delete(h.until, opposite(a))
	h.until[a] = now.Add(h.Hold)
}

// Held reports whether a is still held at time now.
func (h *HeldKeys) Held(a Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.until)
}

func opposite(a Action) Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	}
	return ActionNone
}
