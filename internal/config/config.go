// Package config provides YAML-based game configuration loading and the
// level/speed/score progression policy.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all configuration for a game session.
type TetrisConfig struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Speed   SpeedConfig   `yaml:"speed"`
	Display DisplayConfig `yaml:"display"`
}

// ScoringConfig defines points and level boundaries.
type ScoringConfig struct {
	PointsPerRow  int `yaml:"points_per_row"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// SpeedConfig defines the fall interval curve, in seconds.
// interval(level) = max(min_interval, base_interval - (level-1) * step_per_level)
type SpeedConfig struct {
	BaseInterval float64 `yaml:"base_interval"`
	StepPerLevel float64 `yaml:"step_per_level"`
	MinInterval  float64 `yaml:"min_interval"`
}

// DisplayConfig toggles optional rendering aids.
type DisplayConfig struct {
	Ghost bool `yaml:"ghost"` // Show where the active piece would land
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the progression can only speed up and never
// stalls.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Scoring.PointsPerRow <= 0:
		return fmt.Errorf("%w: scoring.points_per_row must be positive, got %d", ErrInvalidConfig, c.Scoring.PointsPerRow)
	case c.Scoring.LinesPerLevel <= 0:
		return fmt.Errorf("%w: scoring.lines_per_level must be positive, got %d", ErrInvalidConfig, c.Scoring.LinesPerLevel)
	case c.Speed.MinInterval <= 0:
		return fmt.Errorf("%w: speed.min_interval must be positive, got %g", ErrInvalidConfig, c.Speed.MinInterval)
	case c.Speed.BaseInterval < c.Speed.MinInterval:
		return fmt.Errorf("%w: speed.base_interval %g is below min_interval %g", ErrInvalidConfig, c.Speed.BaseInterval, c.Speed.MinInterval)
	case c.Speed.StepPerLevel < 0:
		return fmt.Errorf("%w: speed.step_per_level must not be negative, got %g", ErrInvalidConfig, c.Speed.StepPerLevel)
	}
	return nil
}

// DifficultyPreset represents a named starting speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a flag value to a preset. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
