// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrClosed   = errors.New("history store is closed")
	ErrNotFound = errors.New("no such entry")
)

// =============================================================================
// TYPES
// =============================================================================

// Entry is one visited location.
type Entry struct {
	ID        string
	Location  string
	Remote    bool
	VisitedAt time.Time
}

// Bookmark is a named saved location.
type Bookmark struct {
	ID       string
	Name     string
	Location string
	Remote   bool
	AddedAt  time.Time
}

// Store persists history and bookmarks in SQLite.
type Store struct {
	db    *sql.DB
	limit int
}

// =============================================================================
// OPEN / CLOSE
// =============================================================================

// Open opens (creating if needed) the history database at path. The limit
// caps how many history rows are retained; older rows are pruned on insert.
func Open(path string, limit int) (*Store, error) {
	if limit <= 0 {
		return nil, errors.New("history limit must be positive")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite supports one writer at a time; keep the pool at one
	// connection so writes never contend.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &Store{db: db, limit: limit}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS visits (
		id          TEXT PRIMARY KEY,
		location    TEXT NOT NULL UNIQUE,
		remote      INTEGER NOT NULL DEFAULT 0,
		visited_at  INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_visits_time ON visits(visited_at DESC);

	CREATE TABLE IF NOT EXISTS bookmarks (
		id        TEXT PRIMARY KEY,
		name      TEXT NOT NULL UNIQUE,
		location  TEXT NOT NULL,
		remote    INTEGER NOT NULL DEFAULT 0,
		added_at  INTEGER NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// =============================================================================
// VISITS
// =============================================================================

// Add records a visit. Revisiting a location replaces its previous row, so
// the history stays one row per location ordered by most recent visit.
func (s *Store) Add(location string, remote bool) error {
	if s.db == nil {
		return ErrClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO visits (id, location, remote, visited_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(location) DO UPDATE SET visited_at = excluded.visited_at`,
		uuid.NewString(), location, boolToInt(remote), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}

	// Prune beyond the retention limit.
	_, err = s.db.Exec(`
		DELETE FROM visits WHERE id NOT IN (
			SELECT id FROM visits ORDER BY visited_at DESC LIMIT ?
		)`, s.limit)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Recent returns up to n visits, most recent first.
func (s *Store) Recent(n int) ([]Entry, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.Query(`
		SELECT id, location, remote, visited_at
		FROM visits ORDER BY visited_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var remote int
		var ts int64
		if err := rows.Scan(&e.ID, &e.Location, &remote, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Remote = remote != 0
		e.VisitedAt = time.UnixMilli(ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// =============================================================================
// BOOKMARKS
// =============================================================================

// AddBookmark saves a location under a name, replacing any bookmark already
// using that name.
func (s *Store) AddBookmark(name, location string, remote bool) error {
	if s.db == nil {
		return ErrClosed
	}
	_, err := s.db.Exec(`
		INSERT INTO bookmarks (id, name, location, remote, added_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			location = excluded.location,
			remote = excluded.remote,
			added_at = excluded.added_at`,
		uuid.NewString(), name, location, boolToInt(remote), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}
	return nil
}

// Bookmarks returns all bookmarks in name order.
func (s *Store) Bookmarks() ([]Bookmark, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.Query(`
		SELECT id, name, location, remote, added_at
		FROM bookmarks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []Bookmark
	for rows.Next() {
		var b Bookmark
		var remote int
		var ts int64
		if err := rows.Scan(&b.ID, &b.Name, &b.Location, &remote, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		b.Remote = remote != 0
		b.AddedAt = time.UnixMilli(ts)
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// RemoveBookmark deletes a bookmark by name.
func (s *Store) RemoveBookmark(name string) error {
	if s.db == nil {
		return ErrClosed
	}
	res, err := s.db.Exec(`DELETE FROM bookmarks WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
