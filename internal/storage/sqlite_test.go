package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSQLiteHighScoreEmpty(t *testing.T) {
	store := openTestDB(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}
}

func TestSQLiteSubmitKeepsBest(t *testing.T) {
	store := openTestDB(t)

	best, err := store.Submit(Result{Score: 500, Lines: 5, Level: 1})
	if err != nil {
		t.Fatalf("Submit(500) failed: %v", err)
	}
	if !best {
		t.Error("First game should set a new best")
	}

	best, err = store.Submit(Result{Score: 200, Lines: 2, Level: 1})
	if err != nil {
		t.Fatalf("Submit(200) failed: %v", err)
	}
	if best {
		t.Error("Lower score should not set a new best")
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("Expected high score of 500, got %d", high)
	}

	best, _ = store.Submit(Result{Score: 500})
	if best {
		t.Error("Equal score should not set a new best")
	}
}

func TestSQLiteTopScores(t *testing.T) {
	store := openTestDB(t)

	for i := 0; i < 5; i++ {
		if _, err := store.Submit(Result{Score: (i + 1) * 100, Lines: i + 1, Level: 1}); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Lines != 5 {
		t.Errorf("Expected 5 lines for the best game, got %d", scores[0].Lines)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestSQLiteStats(t *testing.T) {
	store := openTestDB(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty history failed: %v", err)
	}
	if st.Games != 0 || st.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", st)
	}

	store.Submit(Result{Score: 100, Lines: 1, Level: 1})
	store.Submit(Result{Score: 300, Lines: 3, Level: 1})

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Games != 2 {
		t.Errorf("Expected 2 games, got %d", st.Games)
	}
	if st.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", st.HighScore)
	}
	if st.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", st.AvgScore)
	}
	if st.TotalLines != 4 {
		t.Errorf("Expected 4 total lines, got %d", st.TotalLines)
	}
}

func TestSQLiteReset(t *testing.T) {
	store := openTestDB(t)
	store.Submit(Result{Score: 100})

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after reset, got %d", len(scores))
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Submit(Result{Score: 700})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, _ := store.HighScore()
	if high != 700 {
		t.Errorf("Expected 700 after reopen, got %d", high)
	}
}
