package tui

import (
	"time"

	"github.com/vovakirdan/golddigger/internal/core"
)

// HoldTracker turns key press events into held and released directions.
//
// Terminals report presses and auto-repeats but never key-up. A fresh press
// holds its direction long enough to cover the OS repeat delay; each repeat
// extends the hold by a shorter window. When a hold runs out the direction
// is reported as released.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration

	until   map[core.Action]time.Time
	pending map[core.Action]bool // Released by a press of another direction
}

// NewHoldTracker creates a tracker with the given hold windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		until:   make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// Press records a key event for a direction at the given time.
// Pressing a different direction releases the others, since terminals only
// repeat the most recent key.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	for other := range h.until {
		if other != a {
			delete(h.until, other)
			h.pending[other] = true
		}
	}

	deadline, held := h.until[a]
	if !held {
		h.until[a] = now.Add(h.initial)
		delete(h.pending, a)
		return
	}
	if next := now.Add(h.repeat); next.After(deadline) {
		h.until[a] = next
	}
}

// Frame fills the frame's held and released sets for the given time.
func (h *HoldTracker) Frame(now time.Time, f *core.InputFrame) {
	for a := range h.pending {
		f.Release(a)
	}
	clear(h.pending)

	for a, deadline := range h.until {
		if now.Before(deadline) {
			f.Hold(a)
			continue
		}
		delete(h.until, a)
		f.Release(a)
	}
}

// Held reports whether a direction is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.until[a]
	return ok
}

// Reset drops all holds without reporting releases.
func (h *HoldTracker) Reset() {
	clear(h.until)
	clear(h.pending)
}
