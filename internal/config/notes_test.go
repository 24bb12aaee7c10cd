package config

import (
	"errors"
	"math"
	"testing"
)

func TestNoteNameToMidi(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"C4", 60},
		{"C3", 48},
		{"A4", 69},
		{"F#4", 66},
		{"Gb4", 66},
		{"Eb2", 39},
		{"D#2", 39},
		{"c3", 48},
		{"C-1", 0},
		{" B3 ", 59},
	}

	for _, tt := range tests {
		got, err := NoteNameToMidi(tt.name)
		if err != nil {
			t.Errorf("NoteNameToMidi(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NoteNameToMidi(%q) = %d, expected %d", tt.name, got, tt.want)
		}
	}
}

func TestNoteNameToMidiErrors(t *testing.T) {
	for _, name := range []string{"", "H3", "C", "Cx3", "C10", "4C"} {
		if _, err := NoteNameToMidi(name); !errors.Is(err, ErrUnknownNote) {
			t.Errorf("NoteNameToMidi(%q) error = %v, expected ErrUnknownNote", name, err)
		}
	}
}

func TestMidiToNoteName(t *testing.T) {
	tests := []struct {
		midi int
		want string
	}{
		{60, "C4"},
		{48, "C3"},
		{66, "F#4"},
		{39, "Eb2"},
		{70, "Bb4"},
		{0, "C-1"},
	}

	for _, tt := range tests {
		if got := MidiToNoteName(tt.midi); got != tt.want {
			t.Errorf("MidiToNoteName(%d) = %q, expected %q", tt.midi, got, tt.want)
		}
	}
}

func TestMidiFrequency(t *testing.T) {
	if got := MidiToFreq(69); got != 440 {
		t.Errorf("MidiToFreq(69) = %v, expected 440", got)
	}
	if got := MidiToFreq(57); math.Abs(got-220) > 1e-9 {
		t.Errorf("MidiToFreq(57) = %v, expected 220", got)
	}
	for m := 30; m < 90; m++ {
		if got := FreqToMidi(MidiToFreq(m)); got != m {
			t.Errorf("FreqToMidi(MidiToFreq(%d)) = %d", m, got)
		}
	}
	if FreqToMidi(0) != 0 {
		t.Error("FreqToMidi(0) should be 0")
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"220", 220, false},
		{"220Hz", 220, false},
		{"196.5 hz", 196.5, false},
		{"A3", 220, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseFrequency(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFrequency(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFrequency(%q) failed: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseFrequency(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}
