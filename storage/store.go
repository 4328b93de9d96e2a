// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schema contains the per-node database DDL. Safe to apply repeatedly.
const schema = `
CREATE TABLE IF NOT EXISTS readings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp INTEGER NOT NULL,
    lux REAL NOT NULL,
    sound REAL NOT NULL
);
`

// Reading is one sensor sample. Timestamp is absolute Unix seconds; the
// epoch-base shift has already happened by the time a Reading reaches the
// store.
type Reading struct {
	Timestamp int64
	Lux       float64
	Sound     float64
}

// Store is one node's append-only readings database. Rows are never updated
// or deleted; insertion order doubles as the tiebreak for equal timestamps.
type Store struct {
	db *sql.DB
}

func openStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL plus a busy timeout lets concurrent batch writers to the same
	// node queue up instead of failing with SQLITE_BUSY.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// InsertBatch appends all readings as a single transaction: either every row
// in the batch becomes visible or none does. Input order is preserved.
func (s *Store) InsertBatch(ctx context.Context, readings []Reading) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StoreError{Op: "insert", Err: err}
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO readings (timestamp, lux, sound) VALUES (?, ?, ?)
	`)
	if err != nil {
		return &StoreError{Op: "insert", Err: err}
	}
	defer stmt.Close()

	for _, r := range readings {
		if _, err := stmt.ExecContext(ctx, r.Timestamp, r.Lux, r.Sound); err != nil {
			return &StoreError{Op: "insert", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StoreError{Op: "insert", Err: err}
	}
	return nil
}

// ReadingsOn returns every reading whose timestamp falls on the given
// calendar date (YYYY-MM-DD, UTC as per SQLite's unixepoch conversion),
// ordered by timestamp ascending with insertion order breaking ties.
func (s *Store) ReadingsOn(ctx context.Context, date string) ([]Reading, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT timestamp, lux, sound FROM readings
		WHERE DATE(timestamp, 'unixepoch') = ?
		ORDER BY timestamp ASC, id ASC
	`, date)
	if err != nil {
		return nil, &StoreError{Op: "select", Err: err}
	}
	defer rows.Close()

	var readings []Reading
	for rows.Next() {
		var r Reading
		if err := rows.Scan(&r.Timestamp, &r.Lux, &r.Sound); err != nil {
			return nil, &StoreError{Op: "select", Err: err}
		}
		readings = append(readings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "select", Err: err}
	}
	return readings, nil
}

// Count returns the total number of stored readings.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM readings").Scan(&n)
	if err != nil {
		return 0, &StoreError{Op: "select", Err: err}
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
