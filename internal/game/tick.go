package game

import (
	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Tick advances a running round by one frame. It never blocks and does
// nothing unless the round is running. A paused round only re-arms the
// clock so resuming does not produce a spike.
//
// Order: clock, flyer, then either the break timer or the generator
// (spawn, advance, retire, break start), then scoring, then collision.
func Tick(s *State, in Input, sim config.Simulation) Outcome {
	var out Outcome
	if s.Status != StatusRunning {
		return out
	}
	if s.Paused {
		s.Clock.Rearm(in.Now)
		return out
	}

	s.Clock.Nominal = sim.FrameDuration
	delta, mult := s.Clock.Advance(in.Now, in.Resume)
	out.Delta, out.Mult = delta, mult

	s.Flyer.Step(in.Pitch, mult, sim)

	if s.Rest.Phase == PhaseOnBreak {
		if s.Rest.tickBreak(delta, sim.BreakDuration) {
			s.SkipNextSpawn = true
			out.emit(core.EventBreakEnded, s.Score)
		}
	} else {
		s.spawnTick(delta, sim, &out)
		s.advancePipes(mult, sim)
		s.checkBreakStart(&out)
	}

	if s.Rest.Phase != PhaseOnBreak {
		s.scorePipes(sim, &out)
	}

	if s.collides(sim) {
		s.Status = StatusGameOver
		out.emit(core.EventGameOver, s.Score)
	}
	return out
}

// checkBreakStart begins the break once the remembered pipe has scrolled
// past BreakOffscreenX or has already been retired.
func (s *State) checkBreakStart(out *Outcome) {
	if s.Rest.Phase != PhasePendingBreak {
		return
	}
	p, ok := s.pipe(s.Rest.LastPipe)
	if ok && p.X > BreakOffscreenX {
		return
	}
	s.Rest.startBreak()
	out.emit(core.EventBreakStarted, s.Score)
}
