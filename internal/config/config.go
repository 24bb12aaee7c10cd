// Package config provides YAML-based configuration loading, difficulty
// presets and validation for the game. Everything the engine reads passes
// through Config.Simulation, which is the only place parameters are checked.
package config

// Config is the on-disk configuration.
type Config struct {
	Physics   Physics    `yaml:"physics"`
	Pipes     Pipes      `yaml:"pipes"`
	Break     Break      `yaml:"break"`
	Pitch     PitchRange `yaml:"pitch"`
	Playfield Playfield  `yaml:"playfield"`
	Terminal  Terminal   `yaml:"terminal"`

	// Source records where the config was loaded from.
	Source string `yaml:"-"`
}

// Physics defines flyer physics and timing parameters.
type Physics struct {
	Gravity    float64 `yaml:"gravity"`
	Smoothing  float64 `yaml:"smoothing"`
	NominalFPS int     `yaml:"nominal_fps"`
}

// Pipes defines obstacle speed and spacing.
type Pipes struct {
	SpeedSlider int     `yaml:"speed_slider"` // 1..100
	Spacing     float64 `yaml:"spacing"`
}

// Break defines the rest-break cadence.
type Break struct {
	PipesPerBreak   int     `yaml:"pipes_per_break"`
	DurationSeconds float64 `yaml:"duration_seconds"`
}

// PitchRange is the vocal range mapped onto the playfield height. Each end is
// a note name ("C3", "F#4", "Eb2") or a frequency in Hz ("220").
type PitchRange struct {
	Low  string `yaml:"low"`
	High string `yaml:"high"`
}

// Playfield defines the simulated area in distance units.
type Playfield struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

// Terminal defines how playfield units map onto terminal cells.
type Terminal struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}
