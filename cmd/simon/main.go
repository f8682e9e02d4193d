// simon is the Simon Says memory game for the terminal.
//
// Usage:
//
//	simon                    - Open the menu (play, high scores, quit)
//	simon play               - Start playing straight away
//	simon scores [-i]        - Show the round history
//	simon reset              - Clear the high score and history
//	simon serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible sequences
//	--db <path>           - Set database path (default: ~/.simon/simon.db, env SIMON_DB)
//	--config <path>       - Custom config YAML (env SIMON_CONFIG)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--no-persist          - Keep the high score in memory only
//	--log-file <path>     - Write debug logs to a file
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultDBPath = "~/.simon/simon.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagNoPersist  bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon Says - a color memory game in your terminal",
	Long: `Simon Says plays a growing sequence of colors. Repeat it back pad by
pad; every correct round adds one more color. One mistake ends the game.

Available commands:
  play     - Start a game straight away
  scores   - View the round history
  reset    - Clear the high score and history
  serve    - Start SSH server for remote play

Examples:
  simon
  simon play --difficulty hard
  simon scores -i
  simon serve --ssh :2222`,
	PersistentPreRun: loadEnv,
	RunE:             runMenu,
	SilenceUsage:     true,
	SilenceErrors:    true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (env SIMON_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML (env SIMON_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagNoPersist, "no-persist", false, "Keep the high score for this run only")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadEnv reads an optional .env file and fills flags the user left unset
// from SIMON_DB and SIMON_CONFIG.
func loadEnv(cmd *cobra.Command, _ []string) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv("SIMON_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("SIMON_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
}

// newLogger returns a debug logger writing to --log-file, or a discarding
// logger while the TUI owns the terminal. The returned closer is never nil.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "simon",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
