package storage

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// FileStore keeps the best score as a single decimal integer in a file.
// A missing or unparsable file reads as 0. Safe for concurrent use.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// OpenFile returns a store backed by the file at path. The file itself is
// created on the first successful Submit.
func OpenFile(path string) (*FileStore, error) {
	p, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: p}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// HighScore returns the stored score. Read failures are not errors.
func (s *FileStore) HighScore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(), nil
}

func (s *FileStore) read() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Submit replaces the file contents when r.Score beats the stored value.
func (s *FileStore) Submit(r Result) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Score <= s.read() {
		return false, nil
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(r.Score)), 0o644); err != nil {
		return false, fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return true, nil
}

// Reset removes the stored score.
func (s *FileStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open during reads and writes.
func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
