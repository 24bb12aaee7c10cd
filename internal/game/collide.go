package game

import (
	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// scorePipes marks every pipe whose midpoint has crossed the flyer's
// midpoint. The Passed flag makes each pipe count once.
func (s *State) scorePipes(sim config.Simulation, out *Outcome) {
	flyerMid, _ := s.Flyer.Rect().Center()
	for i := range s.Pipes {
		p := &s.Pipes[i]
		if p.Passed || p.Mid() >= flyerMid {
			continue
		}
		p.Passed = true
		s.Score++
		out.emit(core.EventPassed, s.Score)

		armSkip, pending := s.Rest.recordPass(p.ID, sim.PipesPerBreak)
		if armSkip {
			s.SkipNextSpawn = true
		}
		if pending {
			out.emit(core.EventBreakPending, s.Score)
		}
	}
}

// collides reports whether the flyer overlaps any part of any pipe.
func (s *State) collides(sim config.Simulation) bool {
	flyer := s.Flyer.Rect()
	for _, p := range s.Pipes {
		if HitsPipe(flyer, p, sim) {
			return true
		}
	}
	return false
}

// HitsPipe tests r against the pipe's body and cap rectangles.
func HitsPipe(r core.Rect, p Pipe, sim config.Simulation) bool {
	for _, part := range p.Rects(sim) {
		if r.Intersects(part) {
			return true
		}
	}
	return false
}
