// Package storage provides SQLite-based persistence for simulation run
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents one recorded simulation run.
type RunEntry struct {
	ID          int64
	Pattern     string // Preset name, or "file" for loaded grids
	Width       int
	Height      int
	Generations uint64
	Toroidal    bool
	AliveStart  int
	AliveEnd    int
	CreatedAt   time.Time
}

// PatternStats contains aggregated statistics for one pattern.
type PatternStats struct {
	Pattern        string
	RunCount       int
	MaxGenerations uint64
	AvgAliveEnd    float64
	LastRun        time.Time
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

	// Create parent directories
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
			pattern TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			generations INTEGER NOT NULL,
			toroidal INTEGER NOT NULL DEFAULT 0,
			alive_start INTEGER NOT NULL,
			alive_end INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pattern ON runs(pattern);
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

// SaveRun records a finished simulation run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (pattern, width, height, generations, toroidal, alive_start, alive_end)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Pattern, run.Width, run.Height, run.Generations,
		boolToInt(run.Toroidal), run.AliveStart, run.AliveEnd,
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

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, pattern, width, height, generations, toroidal, alive_start, alive_end, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// RunsForPattern retrieves the most recent runs of one pattern, newest first.
func (s *Store) RunsForPattern(pattern string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, pattern, width, height, generations, toroidal, alive_start, alive_end, created_at
		 FROM runs
		 WHERE pattern = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		pattern, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var toroidal int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Pattern, &e.Width, &e.Height,
			&e.Generations, &toroidal, &e.AliveStart, &e.AliveEnd, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Toroidal = toroidal != 0
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics for one pattern.
func (s *Store) Stats(pattern string) (*PatternStats, error) {
	stats := &PatternStats{Pattern: pattern}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(generations), 0), COALESCE(AVG(alive_end), 0)
		 FROM runs WHERE pattern = ?`,
		pattern,
	).Scan(&stats.RunCount, &stats.MaxGenerations, &stats.AvgAliveEnd)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pattern stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE pattern = ? ORDER BY created_at DESC LIMIT 1`,
		pattern,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTimestamp(lastRun)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs for the given pattern. An empty
// pattern deletes every run.
func (s *Store) ClearRuns(pattern string) error {
	var err error
	if pattern == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE pattern = ?", pattern)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
