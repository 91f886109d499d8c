package core

import "time"

// RuntimeConfig contains configuration passed to a session at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second driving input polling and rendering
	Seed     int64 // RNG seed for deterministic piece order
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the session status reported to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Total lines cleared
	Level    int  // Current level, starting at 1
	GameOver bool // Stack reached the spawn area
	Paused   bool // Waiting for a resume input
	Quit     bool // Player ended the session
}

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	State   GameState
	Locked  bool // A piece was committed to the board this tick
	Cleared int  // Rows cleared this tick
}
