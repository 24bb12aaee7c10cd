package pitch

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// ErrEmptyScript is returned for a script without steps.
var ErrEmptyScript = errors.New("pitch: script has no steps")

// Step is one entry of a pitch script. Exactly one of Note, Hz or Rest is set.
type Step struct {
	Note string  `yaml:"note,omitempty"`
	Hz   float64 `yaml:"hz,omitempty"`
	Rest bool    `yaml:"rest,omitempty"`
	MS   int     `yaml:"ms"`
}

type scriptFile struct {
	Loop  bool   `yaml:"loop"`
	Steps []Step `yaml:"steps"`
}

type segment struct {
	end     time.Duration
	reading core.Pitch
}

// Script replays a timeline of notes and rests, for headless runs and demos.
//
//	loop: true
//	steps:
//	  - {note: C3, ms: 400}
//	  - {hz: 220, ms: 250}
//	  - {rest: true, ms: 150}
type Script struct {
	segments []segment
	loop     bool
}

// LoadScript reads a script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pitch: read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("pitch: parse script: %w", err)
	}
	return NewScript(f.Steps, f.Loop)
}

// NewScript builds a script from steps.
func NewScript(steps []Step, loop bool) (*Script, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyScript
	}

	s := &Script{loop: loop, segments: make([]segment, 0, len(steps))}
	var end time.Duration
	for i, st := range steps {
		reading, err := st.reading()
		if err != nil {
			return nil, fmt.Errorf("pitch: step %d: %w", i+1, err)
		}
		if st.MS <= 0 {
			return nil, fmt.Errorf("pitch: step %d: duration must be positive, got %dms", i+1, st.MS)
		}
		end += time.Duration(st.MS) * time.Millisecond
		s.segments = append(s.segments, segment{end: end, reading: reading})
	}
	return s, nil
}

func (st Step) reading() (core.Pitch, error) {
	set := 0
	if st.Note != "" {
		set++
	}
	if st.Hz != 0 {
		set++
	}
	if st.Rest {
		set++
	}
	if set != 1 {
		return core.Pitch{}, errors.New("exactly one of note, hz or rest is required")
	}

	switch {
	case st.Rest:
		return core.NoSignal(), nil
	case st.Hz != 0:
		if math.IsNaN(st.Hz) || math.IsInf(st.Hz, 0) {
			return core.Pitch{}, fmt.Errorf("frequency %v is not finite", st.Hz)
		}
		if st.Hz < 0 {
			return core.Pitch{}, fmt.Errorf("negative frequency %v", st.Hz)
		}
		return core.Hz(st.Hz), nil
	default:
		midi, err := config.NoteNameToMidi(st.Note)
		if err != nil {
			return core.Pitch{}, err
		}
		return core.Hz(config.MidiToFreq(midi)), nil
	}
}

// Duration returns the length of one pass through the script.
func (s *Script) Duration() time.Duration {
	return s.segments[len(s.segments)-1].end
}

// Sample implements Source. Past the end a looping script starts over and a
// one-shot script is silent.
func (s *Script) Sample(now time.Duration) core.Pitch {
	if now < 0 {
		return core.NoSignal()
	}
	total := s.Duration()
	if now >= total {
		if !s.loop {
			return core.NoSignal()
		}
		now %= total
	}
	i := sort.Search(len(s.segments), func(i int) bool {
		return s.segments[i].end > now
	})
	return s.segments[i].reading
}
