package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/simon-says/internal/config"
	"github.com/vovakirdan/simon-says/internal/simon"
	"github.com/vovakirdan/simon-says/internal/storage"
)

var (
	flagYes         bool
	flagKeepHistory bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the stored high score",
	Long: `Delete the stored high score and, unless --keep-history is given,
the round history.

Examples:
  simon reset
  simon reset --yes --keep-history`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
	resetCmd.Flags().BoolVar(&flagKeepHistory, "keep-history", false, "Only clear the high score")
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagYes && !confirm("Clear the Simon Says high score? [y/N] ") {
		fmt.Println("Aborted.")
		return nil
	}

	key := config.DefaultHighScoreKey
	if cfg, err := loadGameConfig(); err == nil {
		key = cfg.Persistence.Key
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteSetting(key); err != nil {
		return err
	}
	if !flagKeepHistory {
		if err := store.ClearScores(simon.GameID); err != nil {
			return err
		}
	}

	fmt.Println("High score cleared.")
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
