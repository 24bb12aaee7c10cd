package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/buzzy-bird/internal/audio"
	"github.com/vovakirdan/buzzy-bird/internal/game"
	"github.com/vovakirdan/buzzy-bird/internal/pitch"
	"github.com/vovakirdan/buzzy-bird/internal/platform/tui"
	"github.com/vovakirdan/buzzy-bird/internal/storage"
)

var (
	flagPlayer string
	flagSound  bool
	flagVolume float64
	flagHold   time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round in this terminal.

Controls:
  Up/W/K     - Sing one semitone higher
  Down/S/J   - Sing one semitone lower
  Space      - Sing the current note again
  Enter      - Start
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.buzzy/screenshots
  Q/Ctrl+C   - Quit

A note keeps sounding for the hold window after each press; hold a key
to keep singing. When the voice stops, the bird falls.

Examples:
  buzzy play
  buzzy play --player ana --difficulty hard
  buzzy play --sound --volume 0.3`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name for the leaderboard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound cue volume (0..1)")
	playCmd.Flags().DurationVar(&flagHold, "hold", pitch.DefaultHold, "How long a key press keeps the voice sounding")
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return storage.DefaultPlayer
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, sim, err := loadSimulation()
	if err != nil {
		fail("%v", err)
	}

	// The alt screen owns the terminal; log to a file.
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLoggerTo(logOut, "buzzy")
	logger.Info("config loaded", "source", cfg.Source, "preset", cfg.PresetName())

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var rec storage.Recorder
	best := 0
	if store != nil {
		defer store.Close()
		rec = store
		if high, err := store.HighScore(flagPlayer); err == nil {
			best = high
		}
	}

	var player audio.Player = audio.Nop{}
	if flagSound {
		spk, err := audio.NewSpeaker(flagVolume)
		if err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer spk.Close()
			player = spk
		}
	}

	width, height := terminalSize()
	err = tui.Run(game.New(sim), tui.Options{
		Player:  flagPlayer,
		Runtime: runtimeConfig(cfg, width, height),
		Hold:    flagHold,
		Best:    best,
		Syncer:  storage.NewSyncer(rec, logger.WithPrefix("buzzy-sync")),
		Audio:   player,
		Logger:  logger,
	})
	if err != nil {
		fail("running game: %v", err)
	}
}
