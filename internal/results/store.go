// SPDX-License-Identifier: MIT

// Package results persists hafbench measurements in SQLite so runs on
// different machines, worker counts or versions can be compared later.
package results

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS measurements (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT    NOT NULL,
	version     TEXT    NOT NULL,
	algorithm   TEXT    NOT NULL,
	field       TEXT    NOT NULL,
	n           INTEGER NOT NULL,
	workers     INTEGER NOT NULL,
	seed        INTEGER NOT NULL,
	repeat      INTEGER NOT NULL,
	elapsed_ns  INTEGER NOT NULL,
	value_re    TEXT    NOT NULL,
	value_im    TEXT    NOT NULL,
	created_at  TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS measurements_run ON measurements(run_id);
`

// Record is one stored measurement.
type Record struct {
	RunID     string
	Version   string
	Algorithm string
	Field     string
	N         int
	Workers   int
	Seed      int64
	Repeat    int
	Elapsed   time.Duration
	Value     complex128
	CreatedAt time.Time
}

// Store manages measurement history in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts records in one transaction.
func (s *Store) Add(ctx context.Context, recs ...Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO measurements
		 (run_id, version, algorithm, field, n, workers, seed, repeat, elapsed_ns, value_re, value_im, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range recs {
		_, err = stmt.ExecContext(ctx,
			r.RunID, r.Version, r.Algorithm, r.Field, r.N, r.Workers, r.Seed, r.Repeat,
			r.Elapsed.Nanoseconds(), formatValue(real(r.Value)), formatValue(imag(r.Value)),
			r.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert measurement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// Recent returns up to limit records, newest first. An empty runID matches
// every run.
func (s *Store) Recent(ctx context.Context, runID string, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, version, algorithm, field, n, workers, seed, repeat, elapsed_ns, value_re, value_im, created_at
		 FROM measurements
		 WHERE ? = '' OR run_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		runID, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r         Record
			elapsedNs int64
			re, im    string
			created   string
		)
		if err := rows.Scan(&r.RunID, &r.Version, &r.Algorithm, &r.Field, &r.N, &r.Workers,
			&r.Seed, &r.Repeat, &elapsedNs, &re, &im, &created); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		r.Elapsed = time.Duration(elapsedNs)
		if r.Value, err = parseValue(re, im); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Values are stored as text so NaN and ±Inf round-trip; SQLite binds NaN as NULL.
func formatValue(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseValue(re, im string) (complex128, error) {
	x, err := strconv.ParseFloat(re, 64)
	if err != nil {
		return 0, fmt.Errorf("parse value_re: %w", err)
	}
	y, err := strconv.ParseFloat(im, 64)
	if err != nil {
		return 0, fmt.Errorf("parse value_im: %w", err)
	}

	return complex(x, y), nil
}
