package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, Up, W, left mouse button - jump / start a run
	ActionDuck         // Down, S, right mouse button - duck while held
	ActionPause        // P, Escape - pause/unpause a run
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the boolean input state sampled for one simulation frame.
// An action present in the frame is considered pressed or held during it.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HoldTracker turns discrete press events into held state.
//
// Terminals deliver key presses and auto-repeats but never key releases, so
// an action is treated as held for a fixed window after its most recent
// press. Auto-repeat keeps refreshing the window while the key stays down.
// Actions without a window are one-shot: they are active for the next
// sampled frame only.
type HoldTracker struct {
	windows map[Action]time.Duration
	last    map[Action]time.Duration
	pending map[Action]bool
}

// NewHoldTracker creates a tracker with per-action hold windows.
func NewHoldTracker(windows map[Action]time.Duration) *HoldTracker {
	w := make(map[Action]time.Duration, len(windows))
	for a, d := range windows {
		w[a] = d
	}
	return &HoldTracker{
		windows: w,
		last:    make(map[Action]time.Duration),
		pending: make(map[Action]bool),
	}
}

// Press records a press (or auto-repeat) of an action at time now.
func (h *HoldTracker) Press(a Action, now time.Duration) {
	h.last[a] = now
	h.pending[a] = true
}

// Release ends the hold of an action immediately. Pointer devices report
// releases, keyboards do not.
func (h *HoldTracker) Release(a Action) {
	delete(h.last, a)
	delete(h.pending, a)
}

// ReleaseAll drops every held and pending action.
func (h *HoldTracker) ReleaseAll() {
	for a := range h.last {
		delete(h.last, a)
	}
	for a := range h.pending {
		delete(h.pending, a)
	}
}

// Held reports whether an action counts as held at time now.
func (h *HoldTracker) Held(a Action, now time.Duration) bool {
	if h.pending[a] {
		return true
	}
	t, ok := h.last[a]
	if !ok {
		return false
	}
	return now-t < h.windows[a]
}

// Sample returns the input frame for time now. Pending presses are consumed
// so a one-shot action reaches exactly one frame.
func (h *HoldTracker) Sample(now time.Duration) InputFrame {
	f := NewInputFrame()
	for a := range h.last {
		if h.Held(a, now) {
			f.Set(a)
		}
	}
	for a := range h.pending {
		f.Set(a)
		delete(h.pending, a)
	}
	return f
}
