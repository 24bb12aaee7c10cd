package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
	"github.com/vovakirdan/buzzy-bird/internal/game"
	"github.com/vovakirdan/buzzy-bird/internal/pitch"
)

var (
	flagScript   string
	flagHz       string
	flagDuration time.Duration
	flagJitter   float64
	flagEvents   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless round from a pitch script",
	Long: `Play one round without a terminal, feeding pitch from a YAML script,
a constant note, or silence, and print what happened.

Script format:
  loop: true
  steps:
    - {note: C3, ms: 400}
    - {hz: 220, ms: 250}
    - {rest: true, ms: 150}

Examples:
  buzzy simulate --script song.yaml --duration 60s
  buzzy simulate --hz A3 --duration 10s --jitter 0.3 --events`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Pitch script YAML")
	simulateCmd.Flags().StringVar(&flagHz, "hz", "", "Sing a constant pitch (Hz or note name) instead of a script")
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Maximum host time to simulate")
	simulateCmd.Flags().Float64Var(&flagJitter, "jitter", 0, "Relative frame interval jitter (0..1)")
	simulateCmd.Flags().BoolVar(&flagEvents, "events", false, "Log every event")
}

func runSimulate(_ *cobra.Command, _ []string) {
	_, sim, err := loadSimulation()
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger("buzzy-sim")

	var src pitch.Source = pitch.Silence()
	switch {
	case flagScript != "" && flagHz != "":
		fail("--script and --hz are mutually exclusive")
	case flagScript != "":
		s, err := pitch.LoadScript(flagScript)
		if err != nil {
			fail("%v", err)
		}
		src = s
	case flagHz != "":
		hz, err := config.ParseFrequency(flagHz)
		if err != nil {
			fail("%v", err)
		}
		src = pitch.Constant(hz)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var onEvent func(time.Duration, core.Event)
	if flagEvents || flagDebug {
		onEvent = func(now time.Duration, e core.Event) {
			logger.Info(e.Kind.String(), "at", now.Round(time.Millisecond), "score", e.Score)
		}
	}

	res := game.Replay(sim, src, game.ReplayOptions{
		Seed:     seed,
		Duration: flagDuration,
		Jitter:   flagJitter,
	}, onEvent)

	outcome := "survived"
	if res.GameOver {
		outcome = "crashed"
	}
	fmt.Printf("Seed      %d\n", seed)
	fmt.Printf("Outcome   %s after %s (%d ticks)\n", outcome, res.Elapsed.Round(time.Millisecond), res.Ticks)
	fmt.Printf("Score     %d\n", res.Score)
	fmt.Printf("Pipes     %d spawned, %d skipped\n", res.Spawned, res.Skipped)
	fmt.Printf("Breaks    %d\n", res.Breaks)
}
