package pitch

import (
	"sync"
	"time"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// DefaultHold is how long a key press keeps the virtual voice sounding.
// Terminal key repeat refreshes it while a key is held.
const DefaultHold = 250 * time.Millisecond

// KeySource is a keyboard-driven virtual voice for terminals without a
// microphone. Up and Down move one semitone and sing; Sing repeats the
// current note. Each press sounds for the hold window, then the voice goes
// silent and the bird falls.
type KeySource struct {
	mu sync.Mutex

	midi      int
	low, high int
	hold      time.Duration
	until     time.Duration
	sounding  bool
}

// NewKeySource creates a voice spanning the simulation's pitch range,
// starting on the middle note.
func NewKeySource(sim config.Simulation, hold time.Duration) *KeySource {
	if hold <= 0 {
		hold = DefaultHold
	}
	low := config.FreqToMidi(sim.MinPitch)
	high := config.FreqToMidi(sim.MaxPitch)
	return &KeySource{
		midi: (low + high) / 2,
		low:  low,
		high: high,
		hold: hold,
	}
}

// Apply handles a voice action pressed at now and reports whether the
// action belongs to the voice.
func (k *KeySource) Apply(a core.Action, now time.Duration) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch a {
	case core.ActionUp:
		k.midi = min(k.midi+1, k.high)
	case core.ActionDown:
		k.midi = max(k.midi-1, k.low)
	case core.ActionSing:
	default:
		return false
	}
	k.sounding = true
	k.until = now + k.hold
	return true
}

// Silence stops the voice immediately.
func (k *KeySource) Silence() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.sounding = false
}

// Sample implements Source.
func (k *KeySource) Sample(now time.Duration) core.Pitch {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.sounding || now >= k.until {
		return core.NoSignal()
	}
	return core.Hz(config.MidiToFreq(k.midi))
}

// Note returns the name of the current note, e.g. "F#3".
func (k *KeySource) Note() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return config.MidiToNoteName(k.midi)
}
