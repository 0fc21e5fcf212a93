package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/roadgrid/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []RunEntry{
		{
			Grid:          core.GridSize{Rows: 4, Cols: 4},
			Start:         core.Point{Row: 0, Col: 0},
			End:           core.Point{Row: 3, Col: 0},
			Found:         true,
			Iterations:    42,
			MaxIterations: 1000,
			DurationMS:    3,
		},
		{
			Grid:          core.GridSize{Rows: 2, Cols: 2},
			Start:         core.Point{Row: 0, Col: 0},
			End:           core.Point{Row: 1, Col: 1},
			Found:         false,
			Iterations:    1000,
			MaxIterations: 1000,
			DurationMS:    1,
		},
	}

	for _, e := range entries {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	latest := runs[0]
	if latest.Grid != (core.GridSize{Rows: 2, Cols: 2}) {
		t.Errorf("latest run grid = %v, want 2x2", latest.Grid)
	}
	if latest.Found {
		t.Error("latest run should be a failed search")
	}
	if latest.Iterations != 1000 {
		t.Errorf("latest run iterations = %d, want 1000", latest.Iterations)
	}
	if latest.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	first := runs[1]
	if !first.Found || first.End != (core.Point{Row: 3, Col: 0}) {
		t.Errorf("oldest run not preserved: %+v", first)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		entry := RunEntry{
			Grid:          core.GridSize{Rows: 3, Cols: 3},
			End:           core.Point{Row: 2, Col: 2},
			Found:         true,
			Iterations:    i + 1,
			MaxIterations: 100,
		}
		if _, err := store.SaveRun(entry); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit 3, got %d", len(runs))
	}
}

func TestStoreStatsForGrid(t *testing.T) {
	store := openTestStore(t)

	saves := []RunEntry{
		{Grid: core.GridSize{Rows: 4, Cols: 4}, Found: true, Iterations: 10, MaxIterations: 100},
		{Grid: core.GridSize{Rows: 4, Cols: 4}, Found: true, Iterations: 30, MaxIterations: 100},
		{Grid: core.GridSize{Rows: 4, Cols: 4}, Found: false, Iterations: 100, MaxIterations: 100},
		{Grid: core.GridSize{Rows: 5, Cols: 5}, Found: true, Iterations: 7, MaxIterations: 100},
	}
	for _, e := range saves {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.StatsForGrid(core.GridSize{Rows: 4, Cols: 4})
	if err != nil {
		t.Fatalf("StatsForGrid() failed: %v", err)
	}

	if stats.RunCount != 3 {
		t.Errorf("RunCount = %d, want 3", stats.RunCount)
	}
	if stats.SolvedCount != 2 {
		t.Errorf("SolvedCount = %d, want 2", stats.SolvedCount)
	}
	if stats.MaxIterations != 100 {
		t.Errorf("MaxIterations = %d, want 100", stats.MaxIterations)
	}
	wantAvg := (10.0 + 30.0 + 100.0) / 3.0
	if stats.AvgIterations < wantAvg-0.01 || stats.AvgIterations > wantAvg+0.01 {
		t.Errorf("AvgIterations = %f, want %f", stats.AvgIterations, wantAvg)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunEntry{Grid: core.GridSize{Rows: 2, Cols: 2}, Found: true, Iterations: 4, MaxIterations: 10}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}
