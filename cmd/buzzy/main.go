// buzzy is a pitch-controlled flappy game for the terminal: sing (or press
// keys for a virtual voice) to steer a bird through pipes, with a short rest
// break every few pipes.
//
// Usage:
//
//	buzzy play               - Play a round in this terminal
//	buzzy serve              - Start SSH server for remote play
//	buzzy scores [player]    - Show best rounds
//	buzzy board              - Interactive leaderboard
//	buzzy presets            - List difficulty presets and the effective config
//	buzzy simulate           - Run a headless round from a pitch script
//	buzzy tune               - Save difficulty and pitch settings
//
// Global flags:
//
//	--fps <rate>          - Host tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible rounds
//	--db <path>           - Database path (default: ~/.buzzy/scores.db)
//	--config <path>       - Config file (default: search order)
//	--difficulty <name>   - easy, normal, hard or insane
//	--debug               - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "buzzy",
	Short: "Buzzy Bird - steer a bird with your voice",
	Long: `Buzzy Bird is a flappy game steered by pitch: the higher you sing,
the higher the bird flies. Without a microphone the arrow keys drive a
virtual voice one semitone at a time.

Every few pipes the stream pauses for a short rest break.

Examples:
  buzzy play --player ana
  buzzy play --difficulty easy --sound
  buzzy serve --ssh :2222
  buzzy scores ana
  buzzy simulate --script song.yaml --duration 60s
  buzzy tune --pipes 4 --speed 60 --low A2 --high A3`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.buzzy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, insane")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(tuneCmd)
}

// loadConfig loads the config and applies --difficulty.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		p, ok := config.PresetByName(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or insane)", flagDifficulty)
		}
		cfg.ApplyPreset(p)
	}
	return cfg, nil
}

// loadSimulation loads and validates the engine parameters.
func loadSimulation() (config.Config, config.Simulation, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, config.Simulation{}, err
	}
	sim, err := cfg.Simulation()
	return cfg, sim, err
}

// runtimeConfig builds the host settings for a screen of the given size.
func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		CellW:    cfg.Terminal.CellWidth,
		CellH:    cfg.Terminal.CellHeight,
	}
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// newLogger returns a stderr logger honoring --debug.
func newLogger(prefix string) *log.Logger {
	return newLoggerTo(os.Stderr, prefix)
}

func newLoggerTo(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens ~/.buzzy/buzzy.log for sessions that own the terminal.
func openLogFile() (*os.File, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "buzzy.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
