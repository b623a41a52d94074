package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SqliteStore keeps preferences in a single sqlite table.
type SqliteStore struct {
	db *sql.DB
}

// OpenSqlite opens (creating if needed) the database at path. Use
// ":memory:" for a throwaway store.
func OpenSqlite(ctx context.Context, path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS preferences (
		owner TEXT NOT NULL,
		name TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (owner, name)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error initializing preferences table: %w", err)
	}

	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Get(ctx context.Context, owner, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE owner = ? AND name = ?`, owner, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("preference query error: %w", err)
	}
	return v, nil
}

func (s *SqliteStore) Set(ctx context.Context, owner, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (owner, name, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(owner, name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, owner, key, value)
	if err != nil {
		return fmt.Errorf("error saving preference: %w", err)
	}
	return nil
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}
