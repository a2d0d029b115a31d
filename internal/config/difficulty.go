package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MoveInterval returns the current move interval in ticks, never below 1.
func (d *DifficultyManager) MoveInterval(baseTicks int, score int, ticks int) int {
	level := d.Level(score, ticks)
	result := baseTicks - int(level*float64(d.cfg.Scaling.SpeedUp))
	if result < 1 {
		result = 1
	}
	return result
}

// NitroChance returns the current explosive-food probability, capped so a
// plain food always remains possible.
func (d *DifficultyManager) NitroChance(base float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(base+level*d.cfg.Scaling.NitroBoost, 0.0, 0.9)
}

// FuseBounds returns the current fuse draw range, shortened as difficulty
// rises but never below one second.
func (d *DifficultyManager) FuseBounds(baseMin, baseMax float64, score int, ticks int) (float64, float64) {
	level := d.Level(score, ticks)
	cut := level * d.cfg.Scaling.FuseCut
	lo := math.Max(1.0, baseMin-cut)
	hi := math.Max(lo, baseMax-cut)
	return lo, hi
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
