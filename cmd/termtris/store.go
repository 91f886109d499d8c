package main

import (
	"github.com/vovakirdan/termtris/internal/storage"
)

// openStore opens the backend selected by the global flags.
func openStore() (storage.Store, error) {
	if flagHighScoreFile != "" {
		fs, err := storage.OpenFile(flagHighScoreFile)
		if err != nil {
			return nil, err
		}
		return fs, nil
	}

	db, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	return db, nil
}
