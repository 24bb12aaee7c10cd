package config

import (
	"strings"

	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Slider bounds and the pipe speed range they map onto.
const (
	SliderMin = 1
	SliderMax = 100

	SpeedMin = 1.5
	SpeedMax = 4.0
)

// PresetCustom names any slider/threshold combination that matches no preset.
const PresetCustom = "custom"

// Preset is a named difficulty: how often breaks come and how fast pipes move.
type Preset struct {
	Name          string
	PipesPerBreak int
	SpeedSlider   int
}

// Speed returns the pipe speed in units per nominal tick.
func (p Preset) Speed() float64 {
	return SpeedFromSlider(p.SpeedSlider)
}

// Presets in increasing order of difficulty.
var Presets = []Preset{
	{Name: "easy", PipesPerBreak: 3, SpeedSlider: 25},
	{Name: "normal", PipesPerBreak: 5, SpeedSlider: 50},
	{Name: "hard", PipesPerBreak: 7, SpeedSlider: 75},
	{Name: "insane", PipesPerBreak: 10, SpeedSlider: 100},
}

// ClampSlider limits a slider value to [SliderMin, SliderMax].
func ClampSlider(v int) int {
	return core.Clamp(v, SliderMin, SliderMax)
}

// SpeedFromSlider maps a slider value linearly onto [SpeedMin, SpeedMax].
// Out-of-range values are clamped.
func SpeedFromSlider(v int) float64 {
	t := float64(ClampSlider(v)-SliderMin) / float64(SliderMax-SliderMin)
	return core.Lerp(SpeedMin, SpeedMax, t)
}

// PresetByName looks up a preset case-insensitively.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// MatchPreset returns the preset with exactly these settings, if any.
func MatchPreset(pipesPerBreak, slider int) (Preset, bool) {
	for _, p := range Presets {
		if p.PipesPerBreak == pipesPerBreak && p.SpeedSlider == slider {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetName returns the name of the preset matching this config, or
// PresetCustom.
func (c Config) PresetName() string {
	if p, ok := MatchPreset(c.Break.PipesPerBreak, c.Pipes.SpeedSlider); ok {
		return p.Name
	}
	return PresetCustom
}

// ApplyPreset overwrites the difficulty settings with the preset's values.
func (c *Config) ApplyPreset(p Preset) {
	c.Break.PipesPerBreak = p.PipesPerBreak
	c.Pipes.SpeedSlider = p.SpeedSlider
}
