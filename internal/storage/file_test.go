package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFileStoreMissingFileIsZero(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "highscore.txt"))
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for a missing file, got %d", high)
	}
}

func TestFileStoreUnreadableContentsIsZero(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     int
	}{
		{"empty", "", 0},
		{"garbage", "not a number", 0},
		{"negative", "-5", 0},
		{"trailing newline", "1200\n", 1200},
		{"padded", "  42  ", 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatal(err)
			}
			store, err := OpenFile(path)
			if err != nil {
				t.Fatalf("OpenFile() failed: %v", err)
			}

			high, err := store.HighScore()
			if err != nil {
				t.Fatalf("HighScore() failed: %v", err)
			}
			if high != tc.want {
				t.Errorf("HighScore() = %d, want %d", high, tc.want)
			}
		})
	}
}

func TestFileStoreSubmitKeepsBest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	best, err := store.Submit(Result{Score: 500})
	if err != nil || !best {
		t.Fatalf("Submit(500) = %v, %v; want true, nil", best, err)
	}

	best, err = store.Submit(Result{Score: 200})
	if err != nil || best {
		t.Fatalf("Submit(200) = %v, %v; want false, nil", best, err)
	}

	high, _ := store.HighScore()
	if high != 500 {
		t.Errorf("Expected 500 after lower submit, got %d", high)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "500" {
		t.Errorf("File contents = %q, want %q", data, "500")
	}
}

func TestFileStoreReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, _ := OpenFile(path)

	if _, err := store.Submit(Result{Score: 1000}); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "1000" {
		t.Errorf("File contents = %q, want %q", data, "1000")
	}
}

func TestFileStoreReset(t *testing.T) {
	store, _ := OpenFile(filepath.Join(t.TempDir(), "highscore.txt"))
	store.Submit(Result{Score: 300})

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() on missing file failed: %v", err)
	}

	high, _ := store.HighScore()
	if high != 0 {
		t.Errorf("Expected 0 after reset, got %d", high)
	}
}

func TestFileStoreConcurrentSubmit(t *testing.T) {
	store, _ := OpenFile(filepath.Join(t.TempDir(), "highscore.txt"))

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			store.Submit(Result{Score: score * 10})
		}(i)
	}
	wg.Wait()

	high, _ := store.HighScore()
	if high != 200 {
		t.Errorf("Expected 200 after concurrent submits, got %d", high)
	}
}
