package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/buzzy-bird/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets and the effective config",
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	cfg, sim, err := loadSimulation()
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-15s  %-6s  %s\n", "Name", "Pipes per break", "Slider", "Speed")
	fmt.Printf("  %-8s  %-15s  %-6s  %s\n", "----", "---------------", "------", "-----")
	current := cfg.PresetName()
	for _, p := range config.Presets {
		mark := " "
		if p.Name == current {
			mark = "*"
		}
		fmt.Printf("%s %-8s  %-15d  %-6d  %.2f\n", mark, p.Name, p.PipesPerBreak, p.SpeedSlider, p.Speed())
	}

	fmt.Println()
	fmt.Printf("Effective config (%s, %s):\n", cfg.Source, current)
	fmt.Printf("  pipes per break  %d\n", sim.PipesPerBreak)
	fmt.Printf("  pipe speed       %.2f (slider %d)\n", sim.PipeSpeed, config.ClampSlider(cfg.Pipes.SpeedSlider))
	fmt.Printf("  spawn interval   %s\n", sim.SpawnInterval())
	fmt.Printf("  break            %s\n", sim.BreakDuration)
	fmt.Printf("  pitch range      %s (%.1f Hz) .. %s (%.1f Hz)\n",
		config.MidiToNoteName(config.FreqToMidi(sim.MinPitch)), sim.MinPitch,
		config.MidiToNoteName(config.FreqToMidi(sim.MaxPitch)), sim.MaxPitch)
	fmt.Printf("  playfield        %.0f x %.0f (padding %.0f)\n", sim.Width, sim.Height, sim.Padding)
}
