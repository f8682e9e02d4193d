package config

import (
	_ "embed"
)

// DefaultHighScoreKey is the settings key the high score is stored under.
const DefaultHighScoreKey = "simon.high_score"

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultSimonConfig returns the built-in configuration. It matches the
// embedded defaults/simon.yaml.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Timing: TimingConfig{
			FlashMS:   400,
			StepMS:    800,
			SettleMS:  600,
			AdvanceMS: 1000,
		},
		Persistence: PersistenceConfig{
			Enabled: true,
			Key:     DefaultHighScoreKey,
		},
		Sound: SoundConfig{
			Bell:  true,
			Tones: false,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				StepReductionMS: 400,
				MinStepMS:       350,
			},
		},
	}
}
