package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/simon-says/internal/config"
	"github.com/vovakirdan/simon-says/internal/platform/tui"
	"github.com/vovakirdan/simon-says/internal/simon"
	"github.com/vovakirdan/simon-says/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and round history",
	Long: `Display the stored high score and the best recorded rounds.

Examples:
  simon scores
  simon scores --limit 25
  simon scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a scrollable table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of rounds to list")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	}

	if err := printScores(store); err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	return nil
}

func printScores(store *storage.Store) error {
	key := config.DefaultHighScoreKey
	if cfg, err := loadGameConfig(); err == nil {
		key = cfg.Persistence.Key
	}

	high, err := store.HighScoreValue(key)
	if err != nil {
		// A malformed value reads as 0, as it does in game.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	scores, err := store.TopScores(simon.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Simon Says")
	fmt.Println()
	fmt.Printf("High score: %d\n", high)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'simon play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %s\n", "Rank", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(simon.GameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Rounds played: %d  Average level: %.1f\n", stats.GamesCount, stats.AvgLevel)

	return nil
}
