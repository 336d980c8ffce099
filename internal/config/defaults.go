package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It mirrors
// defaults/tetris.yaml and is used when the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			Curve:       CurveMarathon,
			Interval:    0.2,
			MinInterval: 0.05,
		},
		Scoring: ScoringConfig{
			Single:   100,
			Double:   300,
			Triple:   500,
			Tetris:   800,
			SoftDrop: 1,
			HardDrop: 2,
		},
		Levels: LevelConfig{
			StartLevel:    1,
			LinesPerLevel: 10,
			MaxLevel:      20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
