// Package storage provides SQLite-based persistence for seen sequences.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the store lives when no path is configured.
const DefaultPath = "~/.tilewalk/tilewalk.db"

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// SeenEntry records when a sequence was first shown.
type SeenEntry struct {
	SequenceID string
	SeenAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultPath
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sequences_seen (
			sequence_id TEXT PRIMARY KEY,
			seen_at INTEGER NOT NULL
		);
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

// MarkSeen records that a sequence was shown.
// Only the first call for an ID records a timestamp.
func (s *Store) MarkSeen(id string) error {
	if id == "" {
		return nil
	}
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO sequences_seen (sequence_id, seen_at) VALUES (?, ?)",
		id, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot mark %s seen: %w", id, err)
	}
	return nil
}

// HasSeen reports whether a sequence was shown before.
func (s *Store) HasSeen(id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sequences_seen WHERE sequence_id = ?",
		id,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query %s: %w", id, err)
	}
	return n > 0, nil
}

// Seen lists every seen sequence, oldest first.
func (s *Store) Seen() ([]SeenEntry, error) {
	rows, err := s.db.Query(
		`SELECT sequence_id, seen_at
		 FROM sequences_seen
		 ORDER BY seen_at, sequence_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query seen sequences: %w", err)
	}
	defer rows.Close()

	var entries []SeenEntry
	for rows.Next() {
		var e SeenEntry
		var ms int64
		if err := rows.Scan(&e.SequenceID, &ms); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.SeenAt = time.UnixMilli(ms)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Clear forgets every seen sequence.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM sequences_seen"); err != nil {
		return fmt.Errorf("storage: cannot clear seen sequences: %w", err)
	}
	return nil
}
