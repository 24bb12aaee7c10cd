package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Validation errors returned (wrapped) by Config.Simulation.
var (
	ErrPitchRange    = errors.New("pitch range must satisfy low < high")
	ErrPipesPerBreak = errors.New("pipes per break must be at least 1")
	ErrPipeSpeed     = errors.New("pipe speed and spacing must be positive")
	ErrPlayfield     = errors.New("playfield must have positive size and non-negative padding")
	ErrPhysics       = errors.New("invalid physics parameters")
)

// Simulation is the validated parameter set the engine reads every tick.
// The engine never modifies it.
type Simulation struct {
	PipeSpeed     float64 // units per nominal tick
	PipesPerBreak int
	MinPitch      float64 // Hz
	MaxPitch      float64 // Hz
	Width         float64
	Height        float64
	Padding       float64
	Gravity       float64 // units per nominal tick squared
	Smoothing     float64 // [0, 1)
	PipeSpacing   float64
	BreakDuration time.Duration
	FrameDuration time.Duration // nominal tick
}

// Simulation validates the config and converts it into engine parameters.
func (c Config) Simulation() (Simulation, error) {
	low, err := ParseFrequency(c.Pitch.Low)
	if err != nil {
		return Simulation{}, fmt.Errorf("config: pitch.low: %w", err)
	}
	high, err := ParseFrequency(c.Pitch.High)
	if err != nil {
		return Simulation{}, fmt.Errorf("config: pitch.high: %w", err)
	}

	sim := Simulation{
		PipeSpeed:     SpeedFromSlider(c.Pipes.SpeedSlider),
		PipesPerBreak: c.Break.PipesPerBreak,
		MinPitch:      low,
		MaxPitch:      high,
		Width:         c.Playfield.Width,
		Height:        c.Playfield.Height,
		Padding:       c.Playfield.Padding,
		Gravity:       c.Physics.Gravity,
		Smoothing:     c.Physics.Smoothing,
		PipeSpacing:   c.Pipes.Spacing,
		BreakDuration: time.Duration(c.Break.DurationSeconds * float64(time.Second)),
	}
	if c.Physics.NominalFPS > 0 {
		sim.FrameDuration = time.Second / time.Duration(c.Physics.NominalFPS)
	}

	if err := sim.Validate(); err != nil {
		return Simulation{}, err
	}
	return sim, nil
}

// Validate checks the invariants the engine relies on.
func (s Simulation) Validate() error {
	if !(s.MinPitch < s.MaxPitch) {
		return fmt.Errorf("config: %.2fHz..%.2fHz: %w", s.MinPitch, s.MaxPitch, ErrPitchRange)
	}
	if s.PipesPerBreak < 1 {
		return fmt.Errorf("config: %d: %w", s.PipesPerBreak, ErrPipesPerBreak)
	}
	if !positive(s.PipeSpeed) || !positive(s.PipeSpacing) {
		return fmt.Errorf("config: speed %.2f, spacing %.2f: %w", s.PipeSpeed, s.PipeSpacing, ErrPipeSpeed)
	}
	if !positive(s.Width) || !positive(s.Height) || s.Padding < 0 || math.IsNaN(s.Padding) {
		return fmt.Errorf("config: %.0fx%.0f padding %.0f: %w", s.Width, s.Height, s.Padding, ErrPlayfield)
	}
	if !positive(s.Gravity) {
		return fmt.Errorf("config: gravity %.3f: %w", s.Gravity, ErrPhysics)
	}
	if !(s.Smoothing >= 0 && s.Smoothing < 1) {
		return fmt.Errorf("config: smoothing %.3f: %w", s.Smoothing, ErrPhysics)
	}
	if s.FrameDuration <= 0 {
		return fmt.Errorf("config: nominal frame duration %s: %w", s.FrameDuration, ErrPhysics)
	}
	if s.BreakDuration <= 0 {
		return fmt.Errorf("config: break duration %s: %w", s.BreakDuration, ErrPhysics)
	}
	return nil
}

// WithPlayfield returns a copy sized to w x h. Non-positive sizes are ignored.
func (s Simulation) WithPlayfield(w, h float64) Simulation {
	if positive(w) && positive(h) {
		s.Width = w
		s.Height = h
	}
	return s
}

// SpawnInterval is the simulated time between spawns:
// PipeSpacing / PipeSpeed nominal ticks.
func (s Simulation) SpawnInterval() time.Duration {
	if s.PipeSpeed <= 0 {
		return 0
	}
	return time.Duration(float64(s.FrameDuration) * s.PipeSpacing / s.PipeSpeed)
}

// DefaultSimulation returns the validated default parameters.
func DefaultSimulation() Simulation {
	sim, err := DefaultConfig().Simulation()
	if err != nil {
		panic("config: default simulation is invalid: " + err.Error())
	}
	return sim
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
