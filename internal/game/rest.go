package game

import "time"

// BreakOffscreenX is how far left the last pipe before a break must scroll
// before the break begins.
const BreakOffscreenX = -60.0

// Phase is the rest-break schedule state.
type Phase int

const (
	PhaseActive       Phase = iota // pipes spawn and scroll
	PhasePendingBreak              // quota reached, waiting for the last pipe to leave
	PhaseOnBreak                   // pipes frozen, break timer running
)

// String returns a short name for logs and the HUD.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhasePendingBreak:
		return "pending"
	case PhaseOnBreak:
		return "break"
	default:
		return "unknown"
	}
}

// RestBreak tracks pipes cleared since the last break and the break itself.
type RestBreak struct {
	Phase    Phase
	Passed   int           // pipes passed since the last break
	LastPipe uint64        // pipe whose departure starts the break
	Elapsed  time.Duration // time spent on the current break
}

// AllowsSpawn reports whether the generator may spawn under this schedule.
func (r RestBreak) AllowsSpawn(pipesPerBreak int) bool {
	return r.Phase == PhaseActive && r.Passed < pipesPerBreak
}

// recordPass counts a cleared pipe. It reports whether the early skip
// should be armed and whether the quota was just reached, in which case the
// schedule moves to PhasePendingBreak and remembers the pipe.
func (r *RestBreak) recordPass(id uint64, pipesPerBreak int) (armSkip, pending bool) {
	r.Passed++
	armSkip = r.Passed == pipesPerBreak-1
	if r.Phase == PhaseActive && r.Passed >= pipesPerBreak {
		r.Phase = PhasePendingBreak
		r.LastPipe = id
		pending = true
	}
	return armSkip, pending
}

// startBreak moves PhasePendingBreak to PhaseOnBreak.
func (r *RestBreak) startBreak() {
	r.Phase = PhaseOnBreak
	r.LastPipe = 0
	r.Elapsed = 0
}

// tickBreak advances the break timer and reports whether the break ended.
// On the way out the counter is reset.
func (r *RestBreak) tickBreak(delta, duration time.Duration) bool {
	r.Elapsed += delta
	if r.Elapsed < duration {
		return false
	}
	*r = RestBreak{Phase: PhaseActive}
	return true
}

// Remaining returns the time left on the current break.
func (r RestBreak) Remaining(duration time.Duration) time.Duration {
	if r.Phase != PhaseOnBreak || r.Elapsed >= duration {
		return 0
	}
	return duration - r.Elapsed
}
