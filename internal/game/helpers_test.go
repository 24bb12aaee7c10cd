package game

import (
	"time"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// testSim returns the default parameters with a round pipe speed.
func testSim() config.Simulation {
	sim := config.DefaultSimulation()
	sim.PipeSpeed = 2
	return sim
}

// driver feeds a State nominal frames.
type driver struct {
	st    *State
	sim   config.Simulation
	now   time.Duration
	pilot bool // steer through the next gap instead of using pitch
	pitch core.Pitch
}

func newDriver(seed int64, sim config.Simulation) *driver {
	st := NewState(seed, sim)
	st.Reset(seed, sim)
	return &driver{st: st, sim: sim}
}

func (d *driver) tick() Outcome {
	p := d.pitch
	if d.pilot {
		p = autopilot(d.st, d.sim)
	}
	out := Tick(d.st, Input{Now: d.now, Pitch: p}, d.sim)
	d.now += d.sim.FrameDuration
	return out
}

// autopilot returns the pitch that puts the flyer in the middle of the gap
// of the first pipe not yet behind it. It assumes Smoothing is 0.
func autopilot(st *State, sim config.Simulation) core.Pitch {
	y := sim.Height/2 - FlyerHeight/2
	for _, p := range st.Pipes {
		if p.X+PipeWidth > FlyerX {
			y = p.GapY + GapHeight(sim.Height)/2 - FlyerHeight/2
			break
		}
	}
	return core.Hz(pitchFor(y, sim))
}

// pitchFor inverts PitchTarget.
func pitchFor(y float64, sim config.Simulation) float64 {
	frac := (sim.Height - sim.Padding - y) / (sim.Height - 2*sim.Padding)
	return sim.MinPitch + frac*(sim.MaxPitch-sim.MinPitch)
}
