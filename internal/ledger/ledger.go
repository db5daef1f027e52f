// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger keeps a SQLite history of generation runs. Recording is
// opt-in; the transformation pipeline itself stays stateless.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pinsmith/pkg/types"
)

const defaultListLimit = 20

// Ledger manages the run history SQLite database.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, bootstrapping the
// schema if it does not exist.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		input_path TEXT NOT NULL,
		products INTEGER NOT NULL,
		seo_files INTEGER NOT NULL,
		pin_rows INTEGER NOT NULL,
		validation_skipped INTEGER NOT NULL
	)`
	if _, err := l.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one run to the ledger.
func (l *Ledger) Record(ctx context.Context, s types.RunSummary) error {
	skipped := 0
	if s.ValidationSkipped {
		skipped = 1
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, finished_at, input_path, products, seo_files, pin_rows, validation_skipped)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.StartedAt.UTC().Format(time.RFC3339Nano),
		s.FinishedAt.UTC().Format(time.RFC3339Nano),
		s.InputPath, s.Products, s.SeoFiles, s.PinRows, skipped)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns recorded runs, newest first. A non-positive limit selects
// the default of 20.
func (l *Ledger) List(ctx context.Context, limit int) ([]types.RunSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT started_at, finished_at, input_path, products, seo_files, pin_rows, validation_skipped
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunSummary
	for rows.Next() {
		var s types.RunSummary
		var started, finished string
		var skipped int
		if err := rows.Scan(&started, &finished, &s.InputPath, &s.Products, &s.SeoFiles, &s.PinRows, &skipped); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		if s.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parsing run start time %q: %w", started, err)
		}
		if s.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parsing run finish time %q: %w", finished, err)
		}
		s.ValidationSkipped = skipped != 0
		runs = append(runs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run rows: %w", err)
	}
	return runs, nil
}
