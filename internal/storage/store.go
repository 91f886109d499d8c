// Package storage persists high scores. Two backends share the Store
// interface: a plain file holding one integer, and a SQLite database that
// also keeps the history of finished games.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Result describes a finished game.
type Result struct {
	Score int
	Lines int
	Level int
}

// Store reads and updates the best score.
//
// HighScore returns 0 when nothing has been stored yet. Submit records a
// finished game and reports whether it set a new best; the stored best is
// only ever replaced by a strictly higher score.
type Store interface {
	HighScore() (int, error)
	Submit(r Result) (bool, error)
	Close() error
}

// expandPath resolves a leading ~ and creates the parent directory.
func expandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
