// Package storage provides SQLite-based persistence for the run log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only completed levels are recorded. Game state itself is never saved,
// so every session starts from a fresh level load.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// Run is one completed level.
type Run struct {
	ID         int64
	LevelName  string
	LevelIndex int
	Source     string // Level file path, or "embedded"
	Ticks      int    // Frames from load to win
	Respawns   int    // Obstacle hits before the win
	Seed       int64
	CreatedAt  time.Time
}

// LevelSummary aggregates every run of one level.
type LevelSummary struct {
	LevelName      string
	Completions    int
	BestTicks      int
	FewestRespawns int
	LastPlayed     time.Time
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
		CREATE TABLE IF NOT EXISTS level_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_name TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			source TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			respawns INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_runs_name ON level_runs(level_name);
		CREATE INDEX IF NOT EXISTS idx_level_runs_best ON level_runs(level_name, respawns, ticks);
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

// SaveRun records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO level_runs (level_name, level_index, source, ticks, respawns, seed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.LevelName, r.LevelIndex, r.Source, r.Ticks, r.Respawns, r.Seed,
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

// BestRuns retrieves the best N runs of a level: fewest respawns first,
// then fastest.
func (s *Store) BestRuns(levelName string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_name, level_index, source, ticks, respawns, seed, created_at
		 FROM level_runs
		 WHERE level_name = ?
		 ORDER BY respawns ASC, ticks ASC, id ASC
		 LIMIT ?`,
		levelName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the latest N runs across all levels.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_name, level_index, source, ticks, respawns, seed, created_at
		 FROM level_runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// Summary aggregates runs per level, ordered by level name.
func (s *Store) Summary() ([]LevelSummary, error) {
	rows, err := s.db.Query(
		`SELECT level_name, COUNT(*), MIN(ticks), MIN(respawns), MAX(created_at)
		 FROM level_runs
		 GROUP BY level_name
		 ORDER BY level_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query summary: %w", err)
	}
	defer rows.Close()

	var summaries []LevelSummary
	for rows.Next() {
		var ls LevelSummary
		var lastPlayed any
		if err := rows.Scan(&ls.LevelName, &ls.Completions, &ls.BestTicks, &ls.FewestRespawns, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		summaries = append(summaries, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summaries, nil
}

// ClearRuns deletes all runs of the given level, or every run when
// levelName is empty.
func (s *Store) ClearRuns(levelName string) error {
	var err error
	if levelName == "" {
		_, err = s.db.Exec("DELETE FROM level_runs")
	} else {
		_, err = s.db.Exec("DELETE FROM level_runs WHERE level_name = ?", levelName)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelName, &r.LevelIndex, &r.Source, &r.Ticks, &r.Respawns, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
