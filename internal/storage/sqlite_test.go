package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

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
	store := openTestStore(t)

	for _, e := range []RunEntry{
		{Distance: 1200, Level: 3, Duration: 95.5, Seed: 42},
		{Distance: 400, Level: 1, Duration: 20.1, Seed: 42},
		{Distance: 2500, Level: 5, Duration: 210.0, Seed: 7},
	} {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted by distance descending
	if runs[0].Distance != 2500 || runs[1].Distance != 1200 || runs[2].Distance != 400 {
		t.Errorf("Runs not in descending distance order: %v", runs)
	}

	// Non-distance columns survive the round trip
	if runs[0].Level != 5 || runs[0].Seed != 7 {
		t.Errorf("Top run = %+v, expected level 5 seed 7", runs[0])
	}
	if runs[0].Duration != 210.0 {
		t.Errorf("Top run duration = %f, expected 210.0", runs[0].Duration)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Distance: (i + 1) * 100, Level: 1})
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	if runs[0].Distance != 500 || runs[1].Distance != 400 || runs[2].Distance != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Distance: (i + 1) * 100, Level: 1})
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first; the insertion timestamps share a second, so the
	// id tiebreaker decides.
	if runs[0].Distance != 500 || runs[1].Distance != 400 {
		t.Errorf("Recent runs not in insertion-reverse order: %v", runs)
	}
}

func TestStoreBestDistance(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestDistance()
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best distance of 0 for empty table, got %d", best)
	}

	store.SaveRun(RunEntry{Distance: 100, Level: 1})
	store.SaveRun(RunEntry{Distance: 300, Level: 2})
	store.SaveRun(RunEntry{Distance: 200, Level: 1})

	best, err = store.BestDistance()
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best distance of 300, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Distance: 100, Level: 1})
	store.SaveRun(RunEntry{Distance: 200, Level: 1})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty table gives zero stats, not an error
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.BestDistance != 0 {
		t.Errorf("Empty stats = %+v, expected zeros", stats)
	}

	store.SaveRun(RunEntry{Distance: 100, Level: 1, Duration: 10})
	store.SaveRun(RunEntry{Distance: 300, Level: 4, Duration: 30})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", stats.RunsCount)
	}
	if stats.BestDistance != 300 {
		t.Errorf("BestDistance = %d, expected 300", stats.BestDistance)
	}
	if stats.AvgDistance != 200 {
		t.Errorf("AvgDistance = %f, expected 200", stats.AvgDistance)
	}
	if stats.TotalDistance != 400 {
		t.Errorf("TotalDistance = %d, expected 400", stats.TotalDistance)
	}
	if stats.BestLevel != 4 {
		t.Errorf("BestLevel = %d, expected 4", stats.BestLevel)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
