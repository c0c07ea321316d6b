// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package progress records completed challenges in a SQLite database.
package progress

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Completion is one solved challenge.
type Completion struct {
	ChallengeID string
	RunID       string
	CompletedAt time.Time
}

// Store persists completions. Safe for concurrent use.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection serializes writers
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS completions (
		challenge_id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		completed_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// MarkCompleted records id as solved by runID. Marking an already
// completed challenge keeps the first completion.
func (s *Store) MarkCompleted(ctx context.Context, id, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO completions (challenge_id, run_id, completed_at) VALUES (?, ?, ?)`,
		id, runID, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to mark %s completed: %w", id, err)
	}
	return nil
}

// IsCompleted reports whether id has been solved.
func (s *Store) IsCompleted(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM completions WHERE challenge_id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to query %s: %w", id, err)
	}
	return n > 0, nil
}

// Completed lists every completion, oldest first.
func (s *Store) Completed(ctx context.Context) ([]Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT challenge_id, run_id, completed_at FROM completions ORDER BY completed_at, challenge_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		var nanos int64
		if err := rows.Scan(&c.ChallengeID, &c.RunID, &nanos); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		c.CompletedAt = time.Unix(0, nanos)
		out = append(out, c)
	}
	return out, rows.Err()
}

// Reset forgets every completion.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM completions`); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
