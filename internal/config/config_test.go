package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSimulation(t *testing.T) {
	sim, err := DefaultConfig().Simulation()
	if err != nil {
		t.Fatalf("Simulation() failed: %v", err)
	}

	if sim.PipesPerBreak != 5 {
		t.Errorf("PipesPerBreak = %d, expected 5", sim.PipesPerBreak)
	}
	if math.Abs(sim.MinPitch-130.81) > 0.01 {
		t.Errorf("MinPitch = %.3f, expected C3 (130.81Hz)", sim.MinPitch)
	}
	if math.Abs(sim.MaxPitch-261.63) > 0.01 {
		t.Errorf("MaxPitch = %.3f, expected C4 (261.63Hz)", sim.MaxPitch)
	}
	if sim.BreakDuration != 3*time.Second {
		t.Errorf("BreakDuration = %s, expected 3s", sim.BreakDuration)
	}
	if sim.FrameDuration != time.Second/60 {
		t.Errorf("FrameDuration = %s, expected 1/60s", sim.FrameDuration)
	}
	if sim.Width != 800 || sim.Height != 480 || sim.Padding != 20 {
		t.Errorf("playfield = %vx%v pad %v", sim.Width, sim.Height, sim.Padding)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded, err := EmbeddedDefaults()
	if err != nil {
		t.Fatalf("EmbeddedDefaults() failed: %v", err)
	}
	builtin := DefaultConfig()
	embedded.Source = builtin.Source
	if embedded != builtin {
		t.Errorf("embedded defaults drifted from DefaultConfig():\n%+v\n%+v", embedded, builtin)
	}
}

func TestSimulationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"inverted pitch range", func(c *Config) { c.Pitch.Low, c.Pitch.High = "C4", "C3" }, ErrPitchRange},
		{"equal pitch range", func(c *Config) { c.Pitch.High = c.Pitch.Low }, ErrPitchRange},
		{"bad note", func(c *Config) { c.Pitch.Low = "H2" }, ErrUnknownNote},
		{"zero pipes per break", func(c *Config) { c.Break.PipesPerBreak = 0 }, ErrPipesPerBreak},
		{"zero spacing", func(c *Config) { c.Pipes.Spacing = 0 }, ErrPipeSpeed},
		{"zero height", func(c *Config) { c.Playfield.Height = 0 }, ErrPlayfield},
		{"negative padding", func(c *Config) { c.Playfield.Padding = -1 }, ErrPlayfield},
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }, ErrPhysics},
		{"smoothing of one", func(c *Config) { c.Physics.Smoothing = 1 }, ErrPhysics},
		{"zero fps", func(c *Config) { c.Physics.NominalFPS = 0 }, ErrPhysics},
		{"zero break", func(c *Config) { c.Break.DurationSeconds = 0 }, ErrPhysics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := cfg.Simulation()
			if !errors.Is(err, tt.want) {
				t.Errorf("Simulation() error = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestSimulationClampsSlider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pipes.SpeedSlider = 500
	sim, err := cfg.Simulation()
	if err != nil {
		t.Fatalf("Simulation() failed: %v", err)
	}
	if sim.PipeSpeed != SpeedMax {
		t.Errorf("PipeSpeed = %v, expected clamp to %v", sim.PipeSpeed, SpeedMax)
	}

	cfg.Pipes.SpeedSlider = -3
	sim, err = cfg.Simulation()
	if err != nil {
		t.Fatalf("Simulation() failed: %v", err)
	}
	if sim.PipeSpeed != SpeedMin {
		t.Errorf("PipeSpeed = %v, expected clamp to %v", sim.PipeSpeed, SpeedMin)
	}
}

func TestSpawnInterval(t *testing.T) {
	sim := DefaultSimulation()
	sim.PipeSpeed = 2
	sim.PipeSpacing = 320

	if got, want := sim.SpawnInterval(), 160*sim.FrameDuration; got != want {
		t.Errorf("SpawnInterval() = %s, expected %s", got, want)
	}
}

func TestWithPlayfield(t *testing.T) {
	sim := DefaultSimulation()

	resized := sim.WithPlayfield(1000, 600)
	if resized.Width != 1000 || resized.Height != 600 {
		t.Errorf("WithPlayfield(1000, 600) = %vx%v", resized.Width, resized.Height)
	}
	if sim.Width != 800 {
		t.Error("WithPlayfield should not modify the receiver")
	}

	same := sim.WithPlayfield(0, 600)
	if same.Width != sim.Width || same.Height != sim.Height {
		t.Error("non-positive sizes should be ignored")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("break:\n  pipes_per_break: 7\npitch:\n  low: A2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Break.PipesPerBreak != 7 {
		t.Errorf("PipesPerBreak = %d, expected 7", cfg.Break.PipesPerBreak)
	}
	if cfg.Pitch.Low != "A2" {
		t.Errorf("Pitch.Low = %q, expected A2", cfg.Pitch.Low)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Pitch.High != "C4" || cfg.Physics.Gravity != 0.7 {
		t.Errorf("missing fields lost defaults: %+v", cfg)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "buzzy.yaml")

	cfg := DefaultConfig()
	cfg.ApplyPreset(Presets[3])
	cfg.Pitch.Low = "E2"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	loaded.Source = cfg.Source
	if loaded != cfg {
		t.Errorf("round trip mismatch:\n%+v\n%+v", loaded, cfg)
	}
}
