package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/buzzy.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:    0.7,
			Smoothing:  0.8,
			NominalFPS: 60,
		},
		Pipes: Pipes{
			SpeedSlider: 50,
			Spacing:     320,
		},
		Break: Break{
			PipesPerBreak:   5,
			DurationSeconds: 3,
		},
		Pitch: PitchRange{
			Low:  "C3",
			High: "C4",
		},
		Playfield: Playfield{
			Width:   800,
			Height:  480,
			Padding: 20,
		},
		Terminal: Terminal{
			CellWidth:  10,
			CellHeight: 20,
		},
		Source: "builtin",
	}
}

// EmbeddedDefaults returns the default config from embedded YAML.
// Fields missing from the YAML keep their hardcoded defaults.
func EmbeddedDefaults() (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return DefaultConfig(), err
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// EmbeddedYAML returns the raw embedded default config, used to seed a
// user config file.
func EmbeddedYAML() []byte {
	out := make([]byte, len(defaultConfigYAML))
	copy(out, defaultConfigYAML)
	return out
}
