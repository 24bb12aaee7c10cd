package game

import (
	"math"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Flyer geometry, in playfield units.
const (
	FlyerX      = 100.0
	FlyerWidth  = 40.0
	FlyerHeight = 32.0
	FlyerStartY = 300.0
)

// Flyer is the voice-controlled bird. Y is the top edge of its hitbox.
type Flyer struct {
	Y   float64
	Vel float64 // only meaningful during free fall
}

// NewFlyer places a flyer at the start position, resting on the floor when
// the playfield is too short.
func NewFlyer(sim config.Simulation) Flyer {
	return Flyer{Y: core.ClampF(FlyerStartY, 0, floorY(sim))}
}

// Step integrates one tick. With a pitch reading the flyer eases toward the
// height the pitch maps to and loses any fall velocity. Without one it falls
// under gravity scaled by mult. A non-finite frequency counts as no signal.
// Either way it never sinks below the floor.
func (f *Flyer) Step(p core.Pitch, mult float64, sim config.Simulation) {
	if p.Valid && !math.IsNaN(p.Hz) && !math.IsInf(p.Hz, 0) {
		target := PitchTarget(p.Hz, sim)
		f.Y = f.Y*sim.Smoothing + target*(1-sim.Smoothing)
		f.Vel = 0
	} else {
		f.Vel += sim.Gravity * mult
		f.Y += f.Vel * mult
	}

	if floor := floorY(sim); f.Y > floor {
		f.Y = floor
		f.Vel = 0
	}
}

// Rect returns the flyer's hitbox.
func (f Flyer) Rect() core.Rect {
	return core.NewRect(FlyerX, f.Y, FlyerWidth, FlyerHeight)
}

// PitchTarget maps a frequency onto a Y coordinate: MinPitch lands on the
// bottom padding line and MaxPitch on the top one.
func PitchTarget(hz float64, sim config.Simulation) float64 {
	hz = core.ClampF(hz, sim.MinPitch, sim.MaxPitch)
	frac := (hz - sim.MinPitch) / (sim.MaxPitch - sim.MinPitch)
	return sim.Height - sim.Padding - frac*(sim.Height-2*sim.Padding)
}

func floorY(sim config.Simulation) float64 {
	if sim.Height < FlyerHeight {
		return 0
	}
	return sim.Height - FlyerHeight
}
