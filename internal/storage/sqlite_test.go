package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", MemoryDSN, err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreDefaultsToMemory(t *testing.T) {
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("normal", 1); err != nil {
		t.Errorf("in-memory store should accept writes: %v", err)
	}
}

func TestSaveAndTopScores(t *testing.T) {
	store := openMemory(t)

	for _, run := range []struct {
		difficulty string
		score      int
	}{
		{"normal", 7},
		{"normal", 12},
		{"normal", 3},
		{"hard", 9},
	} {
		if _, err := store.SaveScore(run.difficulty, run.score); err != nil {
			t.Fatalf("SaveScore(%v) failed: %v", run, err)
		}
	}

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d normal scores, want 3", len(scores))
	}
	if scores[0].Score != 12 || scores[1].Score != 7 || scores[2].Score != 3 {
		t.Errorf("scores not ordered best-first: %+v", scores)
	}
	for _, e := range scores {
		if e.Difficulty != "normal" {
			t.Errorf("difficulty filter leaked %q", e.Difficulty)
		}
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores(all) failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("empty difficulty should match all runs, got %d", len(all))
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openMemory(t)
	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("easy", i); err != nil {
			t.Fatal(err)
		}
	}

	scores, err := store.TopScores("easy", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 5 {
		t.Errorf("limit 5 returned %d rows", len(scores))
	}
	if scores[0].Score != 19 {
		t.Errorf("top score = %d, want 19", scores[0].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := openMemory(t)

	if hs, err := store.HighScore("normal"); err != nil || hs != 0 {
		t.Errorf("empty table should report 0, got %d, %v", hs, err)
	}

	store.SaveScore("normal", 4)
	store.SaveScore("normal", 11)
	store.SaveScore("hard", 99)

	if hs, _ := store.HighScore("normal"); hs != 11 {
		t.Errorf("HighScore(normal) = %d, want 11", hs)
	}
}
