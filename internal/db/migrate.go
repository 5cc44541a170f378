package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements run on every open.
var migrations = []string{
	// Local persistent store: opaque key to serialized record. Progress
	// records live here under a "habit-progress-" prefixed key.
	`CREATE TABLE IF NOT EXISTS blobs (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Log of assembled practice recordings, one row per Ready artifact.
	`CREATE TABLE IF NOT EXISTS recordings (
		id         TEXT PRIMARY KEY,
		locale     TEXT NOT NULL,
		filename   TEXT NOT NULL,
		mime_type  TEXT NOT NULL,
		byte_size  INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_recordings_locale ON recordings(locale, created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
