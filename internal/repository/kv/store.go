package kv

import (
	"context"
	"database/sql"

	"taskboard/internal/errors"
	"taskboard/internal/repository/kv/migrations"

	_ "modernc.org/sqlite"
)

// Store defines the interface for the opaque key-value store the
// persistence layer is built on. Values are opaque serialized strings;
// the store never interprets them.
type Store interface {
	// Get returns the value for key. The boolean reports whether the key
	// was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Utility
	Close() error
}

// SQLiteStore implements the Store interface on a single kv table
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite-backed key-value store instance
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	db.SetMaxOpenConns(1)

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get retrieves the value for a key
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewDatabaseError("get key "+key, err)
	}
	return value, true, nil
}

// Set writes the value for a key, replacing any previous value
func (s *SQLiteStore) Set(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.NewDatabaseError("set key "+key, err)
	}
	return nil
}

// Delete removes a key
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return errors.NewDatabaseError("delete key "+key, err)
	}
	return nil
}
