package tui

import (
	"time"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// DefaultHoldRelease is how long a key counts as held after its last
// press or auto-repeat.
const DefaultHoldRelease = 250 * time.Millisecond

// HoldTracker turns terminal key presses into held keys.
// Terminals report presses and auto-repeats but never releases, so a key
// is considered released once no repeat has arrived for the release window.
type HoldTracker struct {
	release time.Duration
	now     func() time.Time
	pressed map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given release window.
// A non-positive window uses DefaultHoldRelease.
func NewHoldTracker(release time.Duration) *HoldTracker {
	if release <= 0 {
		release = DefaultHoldRelease
	}
	return &HoldTracker{
		release: release,
		now:     time.Now,
		pressed: make(map[core.Action]time.Time),
	}
}

// opposite pairs directions that cannot be held together from a terminal.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// Press records a press or auto-repeat of a continuous action.
// Pressing a direction releases its opposite at once.
func (h *HoldTracker) Press(a core.Action) {
	h.pressed[a] = h.now()
	if o, ok := opposite[a]; ok {
		delete(h.pressed, o)
	}
}

// ReleaseAll forgets every held action.
func (h *HoldTracker) ReleaseAll() {
	clear(h.pressed)
}

// Apply marks every action still inside its release window as held on the
// frame and expires the rest.
func (h *HoldTracker) Apply(f *core.InputFrame) {
	now := h.now()
	for a, at := range h.pressed {
		if now.Sub(at) > h.release {
			delete(h.pressed, a)
			continue
		}
		f.Hold(a)
	}
}
