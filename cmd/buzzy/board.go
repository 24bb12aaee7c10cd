package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/buzzy-bird/internal/platform/tui"
	"github.com/vovakirdan/buzzy-bird/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive leaderboard",
	Long: `Browse players ranked by best round, and the best single rounds.

Controls:
  Up/Down    - Scroll
  Tab        - Switch between players and rounds
  R          - Reload
  Q/Esc      - Quit`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, _ []string) {
	logger := newLogger("buzzy")

	var source tui.BoardSource
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
		source = store
	}

	width, height := terminalSize()
	if err := tui.RunScoreboard(source, width, height); err != nil {
		fail("running leaderboard: %v", err)
	}
}
