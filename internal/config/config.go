// Package config provides YAML-based tuning for the Tetris engine and
// difficulty presets selected from the command line.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all tunable parameters of the game.
type TetrisConfig struct {
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	Levels  LevelConfig   `yaml:"levels"`
}

// GravityConfig controls how fast the active block falls on its own.
type GravityConfig struct {
	Curve       string  `yaml:"curve"`        // "marathon" or "fixed"
	Interval    float64 `yaml:"interval"`     // Seconds between drops for the fixed curve
	MinInterval float64 `yaml:"min_interval"` // Floor for the marathon curve
}

// ScoringConfig defines points awarded by the game.
type ScoringConfig struct {
	Single   int `yaml:"single"`
	Double   int `yaml:"double"`
	Triple   int `yaml:"triple"`
	Tetris   int `yaml:"tetris"`
	SoftDrop int `yaml:"soft_drop"` // Per row of manual soft drop
	HardDrop int `yaml:"hard_drop"` // Per row of hard drop
}

// LevelConfig defines level progression in marathon mode.
type LevelConfig struct {
	StartLevel    int `yaml:"start_level"`
	LinesPerLevel int `yaml:"lines_per_level"`
	MaxLevel      int `yaml:"max_level"`
}

// Gravity curve names.
const (
	CurveMarathon = "marathon"
	CurveFixed    = "fixed"
)

// LineClearPoints returns the bonus for clearing n rows at once.
func (s ScoringConfig) LineClearPoints(n int) int {
	switch n {
	case 1:
		return s.Single
	case 2:
		return s.Double
	case 3:
		return s.Triple
	case 4:
		return s.Tetris
	default:
		return 0
	}
}

// Validate checks every parameter and joins the problems into one error.
func (c TetrisConfig) Validate() error {
	var errs []error

	switch c.Gravity.Curve {
	case CurveMarathon, CurveFixed:
	default:
		errs = append(errs, fmt.Errorf("gravity.curve: unknown curve %q", c.Gravity.Curve))
	}
	if c.Gravity.Interval <= 0 {
		errs = append(errs, errors.New("gravity.interval: must be positive"))
	}
	if c.Gravity.MinInterval <= 0 {
		errs = append(errs, errors.New("gravity.min_interval: must be positive"))
	}
	if c.Scoring.SoftDrop < 0 || c.Scoring.HardDrop < 0 {
		errs = append(errs, errors.New("scoring: drop points cannot be negative"))
	}
	if c.Levels.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("levels.lines_per_level: must be positive"))
	}
	if c.Levels.StartLevel < 1 || c.Levels.StartLevel > c.Levels.MaxLevel {
		errs = append(errs, fmt.Errorf("levels.start_level: %d outside [1, %d]", c.Levels.StartLevel, c.Levels.MaxLevel))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// StartLevelForPreset returns the marathon start level for a preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 10
	default:
		return 1
	}
}
