package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownNote is returned when a note name cannot be parsed.
var ErrUnknownNote = errors.New("unknown note")

var noteNames = [12]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// MidiToFreq converts a MIDI note number to a frequency (A4 = 69 = 440Hz).
func MidiToFreq(midi int) float64 {
	return 440 * math.Pow(2, float64(midi-69)/12)
}

// FreqToMidi converts a frequency to the nearest MIDI note number.
func FreqToMidi(hz float64) int {
	if hz <= 0 {
		return 0
	}
	return int(math.Round(69 + 12*math.Log2(hz/440)))
}

// MidiToNoteName formats a MIDI note number, e.g. 60 -> "C4".
func MidiToNoteName(midi int) string {
	octave := floorDiv(midi, 12) - 1
	return fmt.Sprintf("%s%d", noteNames[midi-floorDiv(midi, 12)*12], octave)
}

// NoteNameToMidi parses names such as "C3", "F#4", "Eb2" or "c#-1".
// Both sharps and flats are accepted for every letter.
func NoteNameToMidi(name string) (int, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownNote)
	}

	base, ok := letterSemitones[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}
	s = s[1:]

	switch {
	case strings.HasPrefix(s, "#"):
		base++
		s = s[1:]
	case strings.HasPrefix(s, "b"):
		base--
		s = s[1:]
	}

	octave, err := strconv.Atoi(s)
	if err != nil || octave < -1 || octave > 9 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}
	return base + (octave+1)*12, nil
}

// ParseFrequency accepts a note name ("C3") or a plain frequency in Hz
// ("220", "220Hz") and returns the frequency.
func ParseFrequency(s string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(strings.ToLower(s)), "hz"))
	if hz, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if hz <= 0 || math.IsInf(hz, 0) || math.IsNaN(hz) {
			return 0, fmt.Errorf("%w: non-positive frequency %q", ErrUnknownNote, s)
		}
		return hz, nil
	}
	midi, err := NoteNameToMidi(s)
	if err != nil {
		return 0, err
	}
	return MidiToFreq(midi), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
