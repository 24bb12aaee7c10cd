package game

import (
	"time"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Status Status
	Paused bool
	Score  int

	Flyer core.Rect
	Pipes []Pipe
	Gap   float64

	Phase          Phase
	PipesToBreak   int // pipes left before the next break; 0 once pending
	BreakRemaining time.Duration
	SkipNextSpawn  bool

	Width  float64
	Height float64
}

// Snapshot captures the state for sim. The pipe slice is copied.
func (s *State) Snapshot(sim config.Simulation) Snapshot {
	pipes := make([]Pipe, len(s.Pipes))
	copy(pipes, s.Pipes)

	return Snapshot{
		Status:         s.Status,
		Paused:         s.Paused,
		Score:          s.Score,
		Flyer:          s.Flyer.Rect(),
		Pipes:          pipes,
		Gap:            GapHeight(sim.Height),
		Phase:          s.Rest.Phase,
		PipesToBreak:   max(0, sim.PipesPerBreak-s.Rest.Passed),
		BreakRemaining: s.Rest.Remaining(sim.BreakDuration),
		SkipNextSpawn:  s.SkipNextSpawn,
		Width:          sim.Width,
		Height:         sim.Height,
	}
}

// Snapshot captures the current round.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot(g.sim)
}
