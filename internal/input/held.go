// Package input turns terminal key events into the level-triggered key set
// the platformer consumes each tick.
//
// Terminals report key presses (and auto-repeat) but never key releases, so a
// key is treated as held until HoldWindow has passed since its last press.
package input

import (
	"time"

	"github.com/vovakirdan/pedal-arcade/internal/core"
)

// DefaultHoldWindow covers the gap between a key press and the first
// auto-repeat, which is 250 to 600 ms on common terminals and X/Wayland
// defaults. Once repeats arrive they come every 30 to 50 ms. The cost is a
// key that stays held for up to this long after release.
const DefaultHoldWindow = 500 * time.Millisecond

// HeldKeys tracks which actions are currently held.
type HeldKeys struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHeldKeys creates a held-key set. A non-positive window uses DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a key-down (or auto-repeat) for the action.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	h.lastSeen[a] = now
}

// Release drops an action immediately, for sources that do report key-up.
func (h *HeldKeys) Release(a core.Action) {
	delete(h.lastSeen, a)
}

// Held reports whether the action counts as held at the given time.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.lastSeen[a]
	if !ok {
		return false
	}
	if now.Sub(t) > h.window {
		delete(h.lastSeen, a)
		return false
	}
	return true
}

// Apply sets every held action on the frame.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.lastSeen {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Reset forgets all held keys.
func (h *HeldKeys) Reset() {
	clear(h.lastSeen)
}
