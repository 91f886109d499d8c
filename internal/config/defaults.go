package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches
// defaults/tetris.yaml and is used if the embedded file fails to parse.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Scoring: ScoringConfig{
			PointsPerRow:  100,
			LinesPerLevel: 10,
		},
		Speed: SpeedConfig{
			BaseInterval: 0.27,
			StepPerLevel: 0.02,
			MinInterval:  0.05,
		},
		Display: DisplayConfig{
			Ghost: true,
		},
	}
}
