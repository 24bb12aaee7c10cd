// Package audio plays short synthesized cues for round events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// SampleRate is the output rate for every cue.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	CuePass     Cue = iota // a pipe was cleared
	CueBreak               // a rest break began
	CueBreakEnd            // the break is over, pipes resume
	CueGameOver            // collision
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CuePass:
		return "pass"
	case CueBreak:
		return "break"
	case CueBreakEnd:
		return "break-end"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CueFor maps an engine event to its cue. Spawns, skips and the pending
// notice are silent.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventPassed:
		return CuePass, true
	case core.EventBreakStarted:
		return CueBreak, true
	case core.EventBreakEnded:
		return CueBreakEnd, true
	case core.EventGameOver:
		return CueGameOver, true
	default:
		return 0, false
	}
}

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone creates a fixed-frequency oscillator of the given length.
func NewTone(freq float64, length time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, length: rate.N(length), wave: wave, rate: rate}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, length, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(length),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain; zero or less is silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

func note(freq float64, length time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(freq, length, wave, rate), length, 5*time.Millisecond, length/2, rate)
}

// Streamer builds a fresh streamer for the cue at the given gain.
func Streamer(c Cue, gain float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CuePass:
		// Short rising blip: E5 then A5.
		s = beep.Seq(
			note(659.25, 60*time.Millisecond, WaveSine, rate),
			note(880, 90*time.Millisecond, WaveSine, rate),
		)
	case CueBreak:
		// Soft chord, C4 + E4 + G4.
		length := 600 * time.Millisecond
		s = beep.Mix(
			newVolume(note(261.63, length, WaveSine, rate), 0.4),
			newVolume(note(329.63, length, WaveSine, rate), 0.3),
			newVolume(note(392, length, WaveSine, rate), 0.3),
		)
	case CueBreakEnd:
		s = beep.Seq(
			note(392, 80*time.Millisecond, WaveSquare, rate),
			beep.Silence(rate.N(40*time.Millisecond)),
			note(523.25, 120*time.Millisecond, WaveSquare, rate),
		)
	case CueGameOver:
		// Falling buzz.
		s = beep.Seq(
			note(220, 150*time.Millisecond, WaveSaw, rate),
			note(164.81, 150*time.Millisecond, WaveSaw, rate),
			note(110, 300*time.Millisecond, WaveSaw, rate),
		)
	default:
		s = beep.Silence(0)
	}
	return newVolume(s, gain)
}
