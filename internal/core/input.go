package core

import (
	"fmt"
	"time"
)

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - raise the virtual voice one semitone
	ActionDown           // S, Down arrow, j - lower the virtual voice one semitone
	ActionSing           // Space - sing the current note
	ActionConfirm        // Enter
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionSing:
		return "Sing"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pitch is a single reading from a pitch source: a frequency in Hz, or no
// signal. The zero value is "no signal".
type Pitch struct {
	Hz    float64
	Valid bool
}

// Hz returns a pitch reading for the given frequency.
func Hz(f float64) Pitch {
	return Pitch{Hz: f, Valid: true}
}

// NoSignal returns a reading with no detected pitch.
func NoSignal() Pitch {
	return Pitch{}
}

// String formats the reading for logs and the HUD.
func (p Pitch) String() string {
	if !p.Valid {
		return "-"
	}
	return fmt.Sprintf("%.1fHz", p.Hz)
}

// InputFrame is everything the host hands the game for one tick: the
// discrete actions triggered since the last tick, the frame timestamp, and
// the last-known pitch reading.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Now is the host's monotonic frame timestamp.
	Now time.Duration

	// Pitch is polled from the pitch source before the tick.
	Pitch Pitch
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame. Timestamp and pitch are
// overwritten by the host every tick and are left alone.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
