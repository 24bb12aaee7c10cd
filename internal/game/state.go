package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Status is the round lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusGameOver
)

// String returns a short name for logs.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// State is the whole simulation for one round. Tick mutates it in place.
type State struct {
	Status Status
	Paused bool
	Score  int

	Flyer      Flyer
	Pipes      []Pipe // spawn order, oldest first
	SpawnTimer time.Duration

	Rest          RestBreak
	SkipNextSpawn bool

	Clock Timebase

	rng        *rand.Rand
	nextPipeID uint64
}

// NewState returns an idle state sized for sim.
func NewState(seed int64, sim config.Simulation) *State {
	s := &State{}
	s.Reset(seed, sim)
	s.Status = StatusIdle
	return s
}

// Reset starts a fresh round. Every counter, timer, and flag returns to its
// initial value; the pipe slice keeps its backing array.
func (s *State) Reset(seed int64, sim config.Simulation) {
	pipes := s.Pipes[:0]
	*s = State{
		Status: StatusRunning,
		Flyer:  NewFlyer(sim),
		Pipes:  pipes,
		Clock:  NewTimebase(sim.FrameDuration),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Stop abandons the round and returns to idle with the flyer back at its
// start position.
func (s *State) Stop(sim config.Simulation) {
	s.Pipes = s.Pipes[:0]
	s.Flyer = NewFlyer(sim)
	s.nextPipeID = 0
	s.Status = StatusIdle
	s.Paused = false
	s.Score = 0
	s.SpawnTimer = 0
	s.Rest = RestBreak{}
	s.SkipNextSpawn = false
	s.Clock.Reset()
}

// Input is what the host supplies for one tick.
type Input struct {
	Now    time.Duration // monotonic frame timestamp
	Pitch  core.Pitch    // last-known reading
	Resume bool          // first frame after the host stopped ticking
}

// Outcome reports what happened during a tick.
type Outcome struct {
	Delta  time.Duration
	Mult   float64
	Events []core.Event
}

// Has reports whether an event of the given kind occurred.
func (o Outcome) Has(kind core.EventKind) bool {
	for _, e := range o.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Count returns how many events of the given kind occurred.
func (o Outcome) Count(kind core.EventKind) int {
	n := 0
	for _, e := range o.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (o *Outcome) emit(kind core.EventKind, score int) {
	o.Events = append(o.Events, core.Event{Kind: kind, Score: score})
}
