package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop is a Player that stays silent. Used for SSH sessions and when sound
// is disabled.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

// PlayEvents plays the cue for every audible event of a tick.
func PlayEvents(p Player, events []core.Event) {
	for _, e := range events {
		if c, ok := CueFor(e.Kind); ok {
			p.Play(c)
		}
	}
}

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	gain   float64
	closed bool
}

// NewSpeaker initializes the audio device. gain is a linear volume in (0, 1].
func NewSpeaker(gain float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}, gain: gain}
	speaker.Play(s.mixer)
	return s, nil
}

// Play implements Player.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	st := Streamer(c, s.gain, SampleRate)
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all cues.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Recorder collects played cues. Useful in tests and headless runs.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

// Play implements Player.
func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

// Close implements Player.
func (r *Recorder) Close() {}

// Cues returns a copy of the played cues.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}
