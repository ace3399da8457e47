// Package runlog keeps a local history of correction runs in sqlite so
// survey teams can audit which offsets were applied to which files.
package runlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Register driver
)

// DB wraps the sql.DB connection.
type DB struct {
	*sql.DB
}

// Run is one recorded correction run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Source    string // input path, or "-" for stdin
	Format    string // csv, shapefile, geojson, nmea
	Inline    float64
	Lateral   float64
	Edge      string // edge-heading convention
	Points    int    // input point count
	Undefined int    // points with no defined heading
}

// Init opens the database and runs migrations.
func Init(path string) (*DB, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	// Enable WAL mode for better concurrency and set busy timeout
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=30000;"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	d := &DB{db}
	// Enforce single connection to avoid SQLITE_BUSY errors during concurrent writes
	db.SetMaxOpenConns(1)

	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return d, nil
}

func (d *DB) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			source TEXT,
			format TEXT,
			inline_offset REAL,
			lateral_offset REAL,
			edge TEXT,
			points INTEGER,
			undefined INTEGER
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);`,
	}
	for _, q := range queries {
		if _, err := d.Exec(q); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}
	return nil
}

// Record inserts a run, assigning an ID when the caller left it empty, and
// returns the ID.
func (d *DB) Record(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	created := run.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := d.Exec(
		`INSERT INTO runs (id, created_at, source, format, inline_offset, lateral_offset, edge, points, undefined)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, created.Format("2006-01-02 15:04:05"), run.Source, run.Format,
		run.Inline, run.Lateral, run.Edge, run.Points, run.Undefined,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}
	return run.ID, nil
}

// Recent returns the most recent runs, newest first.
func (d *DB) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.Query(
		`SELECT id, created_at, source, format, inline_offset, lateral_offset, edge, points, undefined
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &created, &r.Source, &r.Format, &r.Inline, &r.Lateral, &r.Edge, &r.Points, &r.Undefined); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if t, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
