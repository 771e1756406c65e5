package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blob-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "r":
		return core.ActionRestart, false
	case "n":
		return core.ActionNextLevel, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// IsHeld reports whether an action is level-triggered (held) rather than
// edge-triggered.
func IsHeld(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

// HoldTracker emulates held keys on terminals, which report presses and
// auto-repeats but never releases. Each press keeps its direction held for
// a fixed number of ticks; auto-repeat refreshes it.
type HoldTracker struct {
	holdTicks int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker that holds each press for holdTicks ticks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks <= 0 {
		holdTicks = 1
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		remaining: make(map[core.Action]int),
	}
}

// Press starts or refreshes a hold. Pressing one direction releases the
// opposite one.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	h.remaining[a] = h.holdTicks
}

// Apply sets every held action on the frame and counts one tick down.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Release drops every hold.
func (h *HoldTracker) Release() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
