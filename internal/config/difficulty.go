package config

import (
	"math"
	"time"
)

// DifficultyManager turns the current level into playback timing.
type DifficultyManager struct {
	timing TimingConfig
	cfg    DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(timing TimingConfig, cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0.0, 1.0)
	return &DifficultyManager{timing: timing, cfg: cfg}
}

// IsEnabled returns whether timing changes with the level.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a game level starting at 1.
func (d *DifficultyManager) Level(level int) float64 {
	if !d.IsEnabled() {
		return d.cfg.InitialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		return 1.0
	}

	progress := clampF(float64(level-1)/(maxAt-1), 0.0, 1.0)
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Step returns the offset between playback flashes at the given level.
func (d *DifficultyManager) Step(level int) time.Duration {
	base := d.timing.StepMS
	if !d.cfg.Enabled {
		return ms(base)
	}

	reduction := int(d.Level(level) * float64(d.cfg.Scaling.StepReductionMS))
	step := base - reduction
	if floor := d.cfg.Scaling.MinStepMS; floor > 0 && step < floor {
		step = floor
	}
	if step < 1 {
		step = 1
	}
	return ms(step)
}

// Flash returns how long a pad stays lit at the given level. The highlight
// never takes more than half of the playback step, so flashes of the same
// color stay distinguishable.
func (d *DifficultyManager) Flash(level int) time.Duration {
	flash := d.timing.Flash()
	if half := d.Step(level) / 2; flash > half {
		return half
	}
	return flash
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
