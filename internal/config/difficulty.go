package config

import "math"

// DifficultyManager derives the level and gravity interval from progress.
type DifficultyManager struct {
	gravity GravityConfig
	levels  LevelConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg TetrisConfig) *DifficultyManager {
	return &DifficultyManager{
		gravity: cfg.Gravity,
		levels:  cfg.Levels,
	}
}

// IsProgressive reports whether gravity speeds up with the level.
func (d *DifficultyManager) IsProgressive() bool {
	return d.gravity.Curve == CurveMarathon
}

// Level returns the level reached after clearing the given number of lines.
func (d *DifficultyManager) Level(lines int) int {
	if !d.IsProgressive() {
		return d.levels.StartLevel
	}
	per := d.levels.LinesPerLevel
	if per <= 0 {
		per = 10
	}
	level := d.levels.StartLevel + lines/per
	if d.levels.MaxLevel > 0 && level > d.levels.MaxLevel {
		level = d.levels.MaxLevel
	}
	return level
}

// Interval returns the seconds between automatic drops at the given level.
// Marathon gravity follows (0.8-(level-1)*0.007)^(level-1), floored at MinInterval.
func (d *DifficultyManager) Interval(level int) float64 {
	if !d.IsProgressive() {
		return d.gravity.Interval
	}
	if level < 1 {
		level = 1
	}
	n := float64(level - 1)
	seconds := math.Pow(0.8-n*0.007, n)
	return math.Max(seconds, d.gravity.MinInterval)
}
