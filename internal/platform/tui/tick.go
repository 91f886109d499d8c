// Package tui runs a game session in the terminal with Bubble Tea. It
// owns the tick loop, key bindings, and turning screen buffers into
// styled text, and can serve the same model over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsedSince returns the time between two ticks. The first tick of a
// session, and a clock that went backwards, count as zero.
func elapsedSince(last, now time.Time) time.Duration {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	return now.Sub(last)
}
