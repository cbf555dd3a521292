package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooter-arcade/internal/highscore"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
	"github.com/vovakirdan/shooter-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the best runs of a game",
	Long: `Display the top 10 runs for the specified game together with the
stored high score.

Examples:
  arcade scores invasion
  arcade scores sideways`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %s\n", "Rank", "Score", "Level", "Difficulty", "Date")
		fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %s\n", "----", "-----", "-----", "----------", "----")
		for i, r := range runs {
			fmt.Printf("  %-4d  %-8d  %-5d  %-10s  %s\n",
				i+1, r.Score, r.Level, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Runs: %d  Average: %.0f  Best level: %d\n", stats.RunsCount, stats.AvgScore, stats.BestLevel)
		}
	}

	// The high-score file also counts runs finished without a database
	hs, err := highscore.OpenFor(flagHighScoreDir, gameID)
	if err != nil {
		return err
	}
	best, err := hs.Load()
	if err != nil {
		logger.Warn("cannot read high score", "error", err)
	}
	fmt.Println()
	fmt.Printf("High score: %d\n", best)
	return nil
}
