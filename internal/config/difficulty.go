package config

import (
	"math"
	"time"
)

// Progression derives level, fall speed and points from the number of
// lines a session has cleared. Lines only grow, so level only grows and
// the fall interval only shrinks until it reaches the floor.
type Progression struct {
	cfg TetrisConfig
}

// NewProgression creates a progression for the given configuration.
func NewProgression(cfg TetrisConfig) *Progression {
	return &Progression{cfg: cfg}
}

// Level returns floor(lines / lines_per_level) + 1.
func (p *Progression) Level(lines int) int {
	per := p.cfg.Scoring.LinesPerLevel
	if per <= 0 {
		per = 10 // Prevent division by zero
	}
	return max(lines, 0)/per + 1
}

// FallInterval returns the time between gravity steps at a level,
// rounded to the millisecond.
func (p *Progression) FallInterval(level int) time.Duration {
	s := p.cfg.Speed
	secs := s.BaseInterval - float64(max(level, 1)-1)*s.StepPerLevel
	secs = math.Max(secs, s.MinInterval)
	return time.Duration(math.Round(secs*1000)) * time.Millisecond
}

// Points returns the score for clearing rows at once.
func (p *Progression) Points(rows int) int {
	if rows <= 0 {
		return 0
	}
	return rows * p.cfg.Scoring.PointsPerRow
}
