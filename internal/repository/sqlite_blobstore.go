package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"selftalk/internal/db"
)

// SQLiteBlobStore implements BlobStore over the blobs table.
type SQLiteBlobStore struct {
	db db.DBTX
}

// NewSQLiteBlobStore creates a new SQLiteBlobStore.
func NewSQLiteBlobStore(conn db.DBTX) *SQLiteBlobStore {
	return &SQLiteBlobStore{db: conn}
}

func (s *SQLiteBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("blob %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning blob %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteBlobStore) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storing blob %q: %w", key, err)
	}
	return nil
}
