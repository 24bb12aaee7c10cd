package game

import (
	"math"
	"time"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Pipe geometry, in playfield units.
const (
	PipeWidth     = 60.0
	PipeCapHeight = 24.0
	RetireMargin  = 100.0 // pipes are dropped this far past the left edge

	gapFraction = 0.18
	MinGap      = 120.0
	MaxGap      = 260.0
)

// Pipe is one obstacle: a vertical barrier with a gap starting at GapY.
type Pipe struct {
	ID     uint64
	X      float64 // left edge
	GapY   float64 // top of the gap, fixed at spawn
	Passed bool
}

// GapHeight returns 18% of the playfield height, clamped to [MinGap, MaxGap].
func GapHeight(height float64) float64 {
	return core.ClampF(math.Floor(gapFraction*height), MinGap, MaxGap)
}

// Rects returns the pipe's collision rectangles: top body, top cap, bottom
// cap, bottom body. Bodies never have negative height.
func (p Pipe) Rects(sim config.Simulation) [4]core.Rect {
	gap := GapHeight(sim.Height)
	topCapY := math.Max(0, p.GapY-PipeCapHeight)
	bottomY := p.GapY + gap

	return [4]core.Rect{
		core.NewRect(p.X, 0, PipeWidth, math.Max(0, p.GapY-PipeCapHeight)),
		core.NewRect(p.X, topCapY, PipeWidth, PipeCapHeight),
		core.NewRect(p.X, bottomY, PipeWidth, PipeCapHeight),
		core.NewRect(p.X, bottomY+PipeCapHeight, PipeWidth, math.Max(0, sim.Height-(bottomY+PipeCapHeight))),
	}
}

// Mid returns the pipe's horizontal midpoint.
func (p Pipe) Mid() float64 {
	return p.X + PipeWidth/2
}

// Retired reports whether the pipe has scrolled far enough off the left edge
// to be dropped.
func (p Pipe) Retired() bool {
	return p.X+PipeWidth <= -RetireMargin
}

// gapRange returns the bounds for a new pipe's GapY. When the playfield is
// too short for a gap between the padding lines both bounds are Padding.
func gapRange(sim config.Simulation) (lo, hi float64) {
	lo = sim.Padding
	hi = sim.Height - sim.Padding - GapHeight(sim.Height)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// spawnTick runs the generator for one tick: it accumulates delta and, once
// the interval has elapsed while the break schedule allows it, either
// consumes a pending skip or spawns a pipe at the right edge.
func (s *State) spawnTick(delta time.Duration, sim config.Simulation, out *Outcome) {
	s.SpawnTimer += delta
	if !s.Rest.AllowsSpawn(sim.PipesPerBreak) {
		return
	}
	if s.SpawnTimer < sim.SpawnInterval() {
		return
	}

	s.SpawnTimer = 0
	if s.SkipNextSpawn {
		s.SkipNextSpawn = false
		out.emit(core.EventSkipped, s.Score)
		return
	}

	lo, hi := gapRange(sim)
	s.nextPipeID++
	s.Pipes = append(s.Pipes, Pipe{
		ID:   s.nextPipeID,
		X:    sim.Width,
		GapY: math.Max(lo, math.Floor(lo+s.rng.Float64()*(hi-lo))),
	})
	out.emit(core.EventSpawned, s.Score)
}

// advancePipes moves every pipe left and drops retired ones, keeping spawn order.
func (s *State) advancePipes(mult float64, sim config.Simulation) {
	dx := sim.PipeSpeed * mult
	kept := s.Pipes[:0]
	for _, p := range s.Pipes {
		p.X -= dx
		if !p.Retired() {
			kept = append(kept, p)
		}
	}
	s.Pipes = kept
}

// pipe looks up a live pipe by ID.
func (s *State) pipe(id uint64) (Pipe, bool) {
	for _, p := range s.Pipes {
		if p.ID == id {
			return p, true
		}
	}
	return Pipe{}, false
}
