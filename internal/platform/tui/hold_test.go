package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/golddigger/internal/core"
)

const (
	testInitial = 550 * time.Millisecond
	testRepeat  = 120 * time.Millisecond
)

func frameAt(h *HoldTracker, now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	h.Frame(now, &f)
	return f
}

func TestHoldTrackerInitialWindow(t *testing.T) {
	h := NewHoldTracker(testInitial, testRepeat)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionDown, t0)

	tests := []struct {
		name     string
		at       time.Duration
		held     bool
		released bool
	}{
		{"right after press", 10 * time.Millisecond, true, false},
		{"during os repeat delay", 500 * time.Millisecond, true, false},
		{"after initial window", 560 * time.Millisecond, false, true},
		{"stays released", 700 * time.Millisecond, false, false},
	}

	for _, tc := range tests {
		f := frameAt(h, t0.Add(tc.at))
		if f.IsHeld(core.ActionDown) != tc.held {
			t.Errorf("%s: held = %v, expected %v", tc.name, f.IsHeld(core.ActionDown), tc.held)
		}
		if f.WasReleased(core.ActionDown) != tc.released {
			t.Errorf("%s: released = %v, expected %v", tc.name, f.WasReleased(core.ActionDown), tc.released)
		}
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(testInitial, testRepeat)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	// Auto-repeat every 30ms after the initial delay
	last := t0
	for at := 500 * time.Millisecond; at <= 2*time.Second; at += 30 * time.Millisecond {
		last = t0.Add(at)
		h.Press(core.ActionRight, last)
		if f := frameAt(h, last); !f.IsHeld(core.ActionRight) {
			t.Fatalf("expected hold at %v", at)
		}
	}

	// A repeat never shortens the initial window
	h2 := NewHoldTracker(testInitial, testRepeat)
	h2.Press(core.ActionRight, t0)
	h2.Press(core.ActionRight, t0.Add(10*time.Millisecond))
	if f := frameAt(h2, t0.Add(400*time.Millisecond)); !f.IsHeld(core.ActionRight) {
		t.Error("early repeat should not cut the initial hold short")
	}

	// Released once repeats stop
	f := frameAt(h, last.Add(testRepeat+time.Millisecond))
	if f.IsHeld(core.ActionRight) || !f.WasReleased(core.ActionRight) {
		t.Errorf("expected release after repeats stop: held=%v released=%v",
			f.IsHeld(core.ActionRight), f.WasReleased(core.ActionRight))
	}
}

func TestHoldTrackerDirectionSwitch(t *testing.T) {
	h := NewHoldTracker(testInitial, testRepeat)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionDown, t0)
	h.Press(core.ActionLeft, t0.Add(100*time.Millisecond))

	f := frameAt(h, t0.Add(110*time.Millisecond))
	if !f.WasReleased(core.ActionDown) {
		t.Error("switching direction should release the previous one")
	}
	if f.IsHeld(core.ActionDown) || !f.IsHeld(core.ActionLeft) {
		t.Errorf("unexpected holds: %v", f.Held)
	}
	if h.Held(core.ActionDown) || !h.Held(core.ActionLeft) {
		t.Error("Held() disagrees with frame")
	}

	// Release is reported once
	f = frameAt(h, t0.Add(120*time.Millisecond))
	if f.WasReleased(core.ActionDown) {
		t.Error("release should be reported once")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(testInitial, testRepeat)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionDown, t0)
	h.Reset()

	f := frameAt(h, t0.Add(time.Millisecond))
	if len(f.Held) != 0 || f.AnyReleased() {
		t.Errorf("expected empty frame after reset, got held=%v released=%v", f.Held, f.Released)
	}
}
