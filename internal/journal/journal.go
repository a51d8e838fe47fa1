// Package journal records a one-row summary of every finished run in a
// SQLite database. Grids themselves are never stored.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at  TEXT    NOT NULL,
	finished_at TEXT    NOT NULL,
	width       INTEGER NOT NULL,
	height      INTEGER NOT NULL,
	source      TEXT    NOT NULL,
	generations INTEGER NOT NULL,
	reason      TEXT    NOT NULL,
	population  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_finished ON runs(finished_at);
`

// Run is one journal row.
type Run struct {
	ID          int64
	StartedAt   time.Time
	FinishedAt  time.Time
	Width       int
	Height      int
	Source      string
	Generations int
	Reason      string
	Population  int
}

// Journal is a SQLite-backed run log.
type Journal struct {
	db *sql.DB
}

// Open creates or opens the journal at path.
func Open(ctx context.Context, path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends r and returns its id.
func (j *Journal) Record(ctx context.Context, r Run) (int64, error) {
	res, err := j.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, finished_at, width, height, source, generations, reason, population)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt.UTC().Format(time.RFC3339Nano),
		r.FinishedAt.UTC().Format(time.RFC3339Nano),
		r.Width, r.Height, r.Source, r.Generations, r.Reason, r.Population,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit runs, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, width, height, source, generations, reason, population
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var started, finished string
		if err := rows.Scan(&r.ID, &started, &finished, &r.Width, &r.Height, &r.Source, &r.Generations, &r.Reason, &r.Population); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("bad started_at %q: %w", started, err)
		}
		if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("bad finished_at %q: %w", finished, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
