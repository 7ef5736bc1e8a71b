// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: history/store.go
// Summary: SQLite-backed history store.
// Usage: Opened once at startup; the UI reads the full list newest-first
// and filters in memory.

package history

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
    id        TEXT PRIMARY KEY,
    command   TEXT NOT NULL,
    cwd       TEXT NOT NULL DEFAULT '',
    exit      INTEGER NOT NULL DEFAULT 0,
    duration  INTEGER NOT NULL DEFAULT 0,  -- nanoseconds
    timestamp INTEGER NOT NULL,            -- UnixNano
    hostname  TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_history_timestamp ON history(timestamp);
`

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the per-user database location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "recall", "history.db"), nil
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=temp_store(MEMORY)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one command. A missing ID is filled in, a missing
// timestamp becomes now.
func (s *Store) Append(item Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO history (id, command, cwd, exit, duration, timestamp, hostname)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Command, item.CWD, item.Exit,
		int64(item.Duration), item.Timestamp.UnixNano(), item.Hostname,
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// List returns all entries, newest first.
func (s *Store) List() ([]Item, error) {
	rows, err := s.db.Query(
		`SELECT id, command, cwd, exit, duration, timestamp, hostname
		 FROM history ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var dur, ts int64
		if err := rows.Scan(&it.ID, &it.Command, &it.CWD, &it.Exit, &dur, &ts, &it.Hostname); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		it.Duration = time.Duration(dur)
		it.Timestamp = time.Unix(0, ts)
		items = append(items, it)
	}
	return items, rows.Err()
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM history`).Scan(&n)
	return n, err
}

// Import reads plain-text history (one command per line, bash style) and
// appends each line as an entry stamped hostname. Blank lines are skipped.
// Returns the number of entries imported.
func (s *Store) Import(r io.Reader, hostname string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("import history: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO history (id, command, cwd, exit, duration, timestamp, hostname)
		 VALUES (?, ?, '', 0, 0, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("import history: %w", err)
	}
	defer stmt.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	// Imported lines carry no time of their own; stamp them with a
	// monotonically increasing timestamp so ordering is preserved.
	ts := time.Now().Add(-time.Duration(1) * time.Hour)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := stmt.Exec(uuid.NewString(), line, ts.UnixNano(), hostname); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("import history: %w", err)
		}
		ts = ts.Add(time.Millisecond)
		n++
	}
	if err := scanner.Err(); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("import history: %w", err)
	}
	return n, tx.Commit()
}
