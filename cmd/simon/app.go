package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/simon-says/internal/config"
	"github.com/vovakirdan/simon-says/internal/core"
	"github.com/vovakirdan/simon-says/internal/platform/tui"
	"github.com/vovakirdan/simon-says/internal/storage"
)

// loadGameConfig loads the YAML config and applies the command-line overrides.
func loadGameConfig() (config.SimonConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SimonConfig{}, err
	}

	cfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		return config.SimonConfig{}, err
	}

	config.ApplySimonPreset(&cfg, preset)
	if flagNoPersist {
		cfg.Persistence.Enabled = false
	}
	return cfg, nil
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the database, degrading to nil with a warning when it is
// unavailable so the game still runs.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("store unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runLocal runs a terminal session, opening on the menu or straight on a game.
func runLocal(playFirst bool) error {
	logger, logCloser, err := newLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg, err := loadGameConfig()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	// Cues go to stderr, which shares the terminal without interleaving
	// with frame writes.
	deps := tui.GameDeps{
		Config:  cfg,
		Speaker: tui.NewSpeaker(os.Stderr, cfg.Sound),
		Logger:  logger,
	}

	// The store backs the score screen even when the high score is not
	// persisted.
	store := openStore(logger)
	if store != nil && cfg.Persistence.Enabled {
		keeper := storage.NewKeeper(store, cfg.Persistence.Key, logger)
		deps.Scores = keeper
		deps.History = keeper
	}

	logger.Info("session starting", "db", flagDBPath, "persist", cfg.Persistence.Enabled, "difficulty", flagDifficulty)
	runErr := tui.RunSession(deps, store, runtimeConfig(), playFirst)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("session failed", "err", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
