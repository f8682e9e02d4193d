// Package config provides YAML-based game configuration loading and
// level-based timing for Simon Says.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SimonConfig contains all configuration for the game.
type SimonConfig struct {
	Timing      TimingConfig      `yaml:"timing"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Sound       SoundConfig       `yaml:"sound"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// TimingConfig defines the fixed delays of the turn-taking loop, in milliseconds.
type TimingConfig struct {
	FlashMS   int `yaml:"flash_ms"`
	StepMS    int `yaml:"step_ms"`
	SettleMS  int `yaml:"settle_ms"`
	AdvanceMS int `yaml:"advance_ms"`
}

// Flash returns the pad highlight duration.
func (t TimingConfig) Flash() time.Duration { return ms(t.FlashMS) }

// Step returns the offset between consecutive playback flashes.
func (t TimingConfig) Step() time.Duration { return ms(t.StepMS) }

// Settle returns the delay before a new level's playback begins.
func (t TimingConfig) Settle() time.Duration { return ms(t.SettleMS) }

// Advance returns the pause after a completed sequence.
func (t TimingConfig) Advance() time.Duration { return ms(t.AdvanceMS) }

// PersistenceConfig controls whether the high score survives restarts.
type PersistenceConfig struct {
	Enabled bool   `yaml:"enabled"`
	Key     string `yaml:"key"` // settings key holding the high score
}

// SoundConfig controls the audible cue played with each flash.
type SoundConfig struct {
	Bell  bool `yaml:"bell"`
	Tones bool `yaml:"tones"` // per-color notes via DECPS; overrides bell
}

// DifficultyConfig defines level-based timing.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases with the level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of timing changes at max difficulty.
type ScalingConfig struct {
	StepReductionMS int `yaml:"step_reduction_ms"`
	MinStepMS       int `yaml:"min_step_ms"`
}

// Validate checks that the timing values can drive a game.
func (c SimonConfig) Validate() error {
	var errs []error
	if c.Timing.FlashMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.flash_ms must be positive, got %d", c.Timing.FlashMS))
	}
	if c.Timing.StepMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.step_ms must be positive, got %d", c.Timing.StepMS))
	}
	if c.Timing.SettleMS < 0 {
		errs = append(errs, fmt.Errorf("timing.settle_ms must not be negative, got %d", c.Timing.SettleMS))
	}
	if c.Timing.AdvanceMS < 0 {
		errs = append(errs, fmt.Errorf("timing.advance_ms must not be negative, got %d", c.Timing.AdvanceMS))
	}
	if c.Persistence.Enabled && c.Persistence.Key == "" {
		errs = append(errs, errors.New("persistence.key must be set when persistence is enabled"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "keep the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
