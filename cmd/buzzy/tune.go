package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/buzzy-bird/internal/config"
)

var (
	flagTunePipes  int
	flagTuneSpeed  int
	flagTuneLow    string
	flagTuneHigh   string
	flagTuneOutput string
)

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Save difficulty and pitch settings",
	Long: `Change pipes per break, pipe speed and the pitch range, then save
them to the user config (~/.buzzy/configs/buzzy.yaml). --difficulty applies
a preset first; explicit flags override it.

Pitch bounds accept note names (C3, F#4, Eb2) or frequencies (220, 196Hz).

Examples:
  buzzy tune --difficulty easy
  buzzy tune --pipes 4 --speed 60
  buzzy tune --low A2 --high A3`,
	Args: cobra.NoArgs,
	Run:  runTune,
}

func init() {
	tuneCmd.Flags().IntVar(&flagTunePipes, "pipes", 0, "Pipes per break (>= 1)")
	tuneCmd.Flags().IntVar(&flagTuneSpeed, "speed", 0, "Pipe speed slider (1..100)")
	tuneCmd.Flags().StringVar(&flagTuneLow, "low", "", "Lowest pitch (note or Hz)")
	tuneCmd.Flags().StringVar(&flagTuneHigh, "high", "", "Highest pitch (note or Hz)")
	tuneCmd.Flags().StringVarP(&flagTuneOutput, "output", "o", "", "Write to this file instead of the user config")
}

func runTune(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("pipes") {
		cfg.Break.PipesPerBreak = flagTunePipes
	}
	if flags.Changed("speed") {
		cfg.Pipes.SpeedSlider = config.ClampSlider(flagTuneSpeed)
	}
	if flags.Changed("low") {
		cfg.Pitch.Low = flagTuneLow
	}
	if flags.Changed("high") {
		cfg.Pitch.High = flagTuneHigh
	}

	sim, err := cfg.Simulation()
	if err != nil {
		fail("%v", err)
	}

	path := flagTuneOutput
	if path == "" {
		path, err = config.UserConfigPath()
		if err != nil {
			fail("%v", err)
		}
	}
	if err := config.Save(path, cfg); err != nil {
		fail("%v", err)
	}

	fmt.Printf("Saved %s\n", path)
	fmt.Printf("  difficulty       %s\n", cfg.PresetName())
	fmt.Printf("  pipes per break  %d\n", sim.PipesPerBreak)
	fmt.Printf("  pipe speed       %.2f\n", sim.PipeSpeed)
	fmt.Printf("  pitch range      %.1f Hz .. %.1f Hz\n", sim.MinPitch, sim.MaxPitch)
}
