package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Simon Says",
	Long: `Start a game straight away. Press Enter to begin a round.

Controls:
  Enter/Space/S  - Start or restart
  1 / R          - Red pad
  2 / B          - Blue pad
  3 / G          - Green pad
  4 / Y          - Yellow pad
  Mouse click    - Press the clicked pad
  Esc            - Back to the menu (between rounds)
  ?              - More keys
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Playback starts slow and speeds up with the level
  normal - Starts at 30% of the speed-up, progresses to max
  hard   - Starts at 70% of the speed-up, progresses to max
  fixed  - No progression, the configured step is used throughout

Examples:
  simon play
  simon play --difficulty hard
  simon play --seed 42 --no-persist
  simon play --config ./my-simon.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLocal(true)
	},
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runLocal(false)
}
