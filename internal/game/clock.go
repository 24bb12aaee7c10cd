package game

import (
	"math"
	"time"
)

// minFrameDelta replaces zero or negative raw deltas caused by clock skew.
const minFrameDelta = time.Microsecond

// Timebase turns host frame timestamps into a bounded, smoothed delta and a
// speed multiplier relative to the nominal frame duration.
type Timebase struct {
	Nominal time.Duration

	last    time.Duration
	delta   float64 // smoothed delta in nanoseconds
	armed   bool
	rearmed bool
}

// NewTimebase creates a timebase for the given nominal frame duration.
func NewTimebase(nominal time.Duration) Timebase {
	return Timebase{Nominal: nominal}
}

// Advance consumes the frame timestamp now. The first call after a reset,
// a Rearm, or with resume set yields exactly one nominal frame. Otherwise the
// raw delta is clamped to [minFrameDelta, 2*Nominal] and blended into the
// running delta with weight 0.1.
func (t *Timebase) Advance(now time.Duration, resume bool) (time.Duration, float64) {
	nominal := float64(t.Nominal)
	if nominal <= 0 {
		return 0, 0
	}

	if !t.armed || t.rearmed || resume {
		t.armed = true
		t.rearmed = false
		t.last = now
		t.delta = nominal
		return t.Nominal, 1
	}

	raw := float64(now - t.last)
	t.last = now
	raw = math.Max(float64(minFrameDelta), math.Min(raw, 2*nominal))

	t.delta = t.delta*0.9 + raw*0.1
	delta := time.Duration(math.Round(t.delta))
	return delta, float64(delta) / nominal
}

// Rearm records the timestamp of a frame that did not advance the
// simulation, such as a paused frame. The next Advance yields one nominal
// frame instead of the gap since the last simulated frame.
func (t *Timebase) Rearm(now time.Duration) {
	t.last = now
	t.rearmed = t.armed
}

// Reset forgets all timing history.
func (t *Timebase) Reset() {
	*t = Timebase{Nominal: t.Nominal}
}
