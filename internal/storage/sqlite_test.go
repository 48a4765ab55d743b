package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []struct {
		score, length, duration int
	}{
		{100, 8, 45},
		{50, 5, 20},
		{200, 12, 90},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.score, r.length, r.duration); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	entries, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(entries))
	}

	// Should be sorted by score descending
	if entries[0].Score != 200 || entries[1].Score != 100 || entries[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %d, %d, %d",
			entries[0].Score, entries[1].Score, entries[2].Score)
	}
	if entries[0].SnakeLen != 12 {
		t.Errorf("Expected snake length 12 on top run, got %d", entries[0].SnakeLen)
	}
	if entries[0].DurationSecs != 90 {
		t.Errorf("Expected duration 90s on top run, got %d", entries[0].DurationSecs)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 1; i <= 20; i++ {
		if _, err := store.SaveRun(i, 3+i, i*10); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	entries, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(entries))
	}
	if entries[0].Score != 20 {
		t.Errorf("Expected top score 20, got %d", entries[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty database returns 0 without error
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed on empty db: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 on empty db, got %d", high)
	}

	store.SaveRun(30, 6, 15)
	store.SaveRun(70, 9, 40)
	store.SaveRun(10, 4, 5)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 70 {
		t.Errorf("Expected high score 70, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(100, 10, 60)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	entries, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(entries))
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(10, 5, 10)
	store.SaveRun(30, 11, 50)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("Expected high score 30, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected avg score 20, got %v", stats.AvgScore)
	}
	if stats.LongestLen != 11 {
		t.Errorf("Expected longest length 11, got %d", stats.LongestLen)
	}
}
