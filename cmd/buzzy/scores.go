package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/buzzy-bird/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show best rounds",
	Long: `Display the best rounds, overall or for one player. With a player
name the player's profile (best, points, rounds) is shown as well.

Examples:
  buzzy scores
  buzzy scores ana --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

func runScores(_ *cobra.Command, args []string) {
	player := ""
	if len(args) == 1 {
		player = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	rounds, err := store.TopScores(player, flagLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	if player == "" {
		fmt.Println("Best Rounds - Buzzy Bird")
	} else {
		fmt.Printf("Best Rounds - %s\n", player)
	}
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'buzzy play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Speed", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----")
	for i, r := range rounds {
		fmt.Printf("  %-4d  %-16s  %-6d  %-6.2f  %s\n", i+1, r.Player, r.Score, r.PipeSpeed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if player == "" {
		if high, err := store.HighScore(""); err == nil {
			fmt.Printf("Best: %d\n", high)
		}
		return
	}

	p, err := store.Player(player)
	if err == nil && p != nil {
		fmt.Printf("Best: %d   Points: %d   Rounds: %d\n", p.HighScore, p.Points, p.Rounds)
	}
}
