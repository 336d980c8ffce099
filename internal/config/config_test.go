package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML TetrisConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &fromYAML))
	assert.Equal(t, DefaultTetrisConfig(), fromYAML)
	assert.NoError(t, fromYAML.Validate())
}

func TestLoadTetrisCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("scoring:\n  tetris: 1200\ngravity:\n  curve: fixed\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 1200, cfg.Scoring.Tetris)
	assert.Equal(t, CurveFixed, cfg.Gravity.Curve)
	// Untouched keys keep their defaults
	assert.Equal(t, 100, cfg.Scoring.Single)
	assert.Equal(t, 10, cfg.Levels.LinesPerLevel)
}

func TestLoadTetrisErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("gravity: [1, 2"), 0o600))
	_, err = LoadTetris(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("gravity:\n  curve: sideways\n"), 0o600))
	_, err = LoadTetris(invalid)
	assert.ErrorContains(t, err, "sideways")
}

func TestLineClearPoints(t *testing.T) {
	s := DefaultTetrisConfig().Scoring
	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
		{5, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, s.LineClearPoints(tc.lines), "lines=%d", tc.lines)
	}
}

func TestValidateCollectsProblems(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Gravity.Interval = 0
	cfg.Levels.LinesPerLevel = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gravity.interval")
	assert.Contains(t, err.Error(), "levels.lines_per_level")
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantCurve string
		wantStart int
	}{
		{"", CurveMarathon, 1},
		{DifficultyEasy, CurveMarathon, 1},
		{DifficultyNormal, CurveMarathon, 5},
		{DifficultyHard, CurveMarathon, 10},
		{DifficultyFixed, CurveFixed, 1},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)
			assert.Equal(t, tc.wantCurve, cfg.Gravity.Curve)
			assert.Equal(t, tc.wantStart, cfg.Levels.StartLevel)
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestDifficultyManager(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig())

	assert.True(t, d.IsProgressive())
	assert.Equal(t, 1, d.Level(0))
	assert.Equal(t, 1, d.Level(9))
	assert.Equal(t, 2, d.Level(10))
	assert.Equal(t, 20, d.Level(10_000), "level is capped at max_level")

	assert.InDelta(t, 1.0, d.Interval(1), 1e-9)
	assert.InDelta(t, 0.793, d.Interval(2), 1e-9)
	assert.Less(t, d.Interval(10), d.Interval(5))
	assert.InDelta(t, 0.05, d.Interval(20), 1e-9, "marathon curve is floored at min_interval")

	fixed := DefaultTetrisConfig()
	fixed.Gravity.Curve = CurveFixed
	fd := NewDifficultyManager(fixed)
	assert.False(t, fd.IsProgressive())
	assert.Equal(t, 1, fd.Level(500))
	assert.InDelta(t, 0.2, fd.Interval(15), 1e-9)
}

func TestMarshalWritesLoadableFile(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Levels.StartLevel = 7

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "start_level: 7")

	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	loaded, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
