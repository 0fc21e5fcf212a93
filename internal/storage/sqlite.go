// Package storage provides SQLite-based persistence for solve-run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/roadgrid/internal/core"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry records one path search: grid, endpoints, outcome, and cost.
// Iteration counts across runs are the data used for tuning the budget.
type RunEntry struct {
	ID            int64
	Grid          core.GridSize
	Start         core.Point
	End           core.Point
	Found         bool
	Iterations    int
	MaxIterations int
	DurationMS    int64
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			start_row INTEGER NOT NULL,
			start_col INTEGER NOT NULL,
			end_row INTEGER NOT NULL,
			end_col INTEGER NOT NULL,
			found INTEGER NOT NULL,
			iterations INTEGER NOT NULL,
			max_iterations INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_grid ON runs(rows, cols);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a solve run. Returns the ID of the inserted record.
func (s *Store) SaveRun(entry RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (rows, cols, start_row, start_col, end_row, end_col, found, iterations, max_iterations, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Grid.Rows,
		entry.Grid.Cols,
		entry.Start.Row,
		entry.Start.Col,
		entry.End.Row,
		entry.End.Col,
		entry.Found,
		entry.Iterations,
		entry.MaxIterations,
		entry.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent solve runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, rows, cols, start_row, start_col, end_row, end_col,
		        found, iterations, max_iterations, duration_ms, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		entry, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GridStats contains aggregated search statistics for one grid size.
type GridStats struct {
	Grid          core.GridSize
	RunCount      int
	SolvedCount   int
	AvgIterations float64
	MaxIterations int
}

// StatsForGrid aggregates run statistics for the given grid dimensions.
func (s *Store) StatsForGrid(grid core.GridSize) (*GridStats, error) {
	stats := &GridStats{Grid: grid}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(found), 0),
		        COALESCE(AVG(iterations), 0),
		        COALESCE(MAX(iterations), 0)
		 FROM runs WHERE rows = ? AND cols = ?`,
		grid.Rows, grid.Cols,
	).Scan(&stats.RunCount, &stats.SolvedCount, &stats.AvgIterations, &stats.MaxIterations)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get grid stats: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRun(rows *sql.Rows) (RunEntry, error) {
	var e RunEntry
	var createdAt any
	if err := rows.Scan(
		&e.ID,
		&e.Grid.Rows,
		&e.Grid.Cols,
		&e.Start.Row,
		&e.Start.Col,
		&e.End.Row,
		&e.End.Col,
		&e.Found,
		&e.Iterations,
		&e.MaxIterations,
		&e.DurationMS,
		&createdAt,
	); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}

	return e, nil
}
