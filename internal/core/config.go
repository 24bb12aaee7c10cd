package core

// RuntimeConfig contains configuration passed to the game by the host.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frame rate (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// CellW and CellH are playfield units per terminal cell. When both are
	// positive the playfield is sized from the screen; otherwise the
	// configured playfield size is used as-is.
	CellW float64
	CellH float64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		CellW:    10,
		CellH:    20,
	}
}

// Playfield returns the playfield size in units for this screen, and false
// when cell sizes are not set.
func (c RuntimeConfig) Playfield() (w, h float64, ok bool) {
	if c.CellW <= 0 || c.CellH <= 0 || c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 0, 0, false
	}
	return float64(c.ScreenW) * c.CellW, float64(c.ScreenH) * c.CellH, true
}

// GameState represents the current state of a round.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the round is paused
	Resting  bool // Whether a rest break is in progress
	Running  bool // Whether a round is in progress (false when idle)
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventSpawned      EventKind = iota // a pipe entered the playfield
	EventSkipped                       // a scheduled spawn was suppressed
	EventPassed                        // a pipe was cleared and scored
	EventBreakPending                  // the last pipe before a break was cleared
	EventBreakStarted                  // a rest break began
	EventBreakEnded                    // a rest break finished
	EventGameOver                      // the round ended in a collision
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventSkipped:
		return "skipped"
	case EventPassed:
		return "passed"
	case EventBreakPending:
		return "break-pending"
	case EventBreakStarted:
		return "break-started"
	case EventBreakEnded:
		return "break-ended"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is a single notable occurrence. Score is the round score after the event.
type Event struct {
	Kind  EventKind
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
