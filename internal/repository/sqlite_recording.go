package repository

import (
	"context"
	"fmt"
	"time"

	"selftalk/internal/db"
	"selftalk/internal/domain"
)

// SQLiteRecordingLogRepo implements RecordingLogRepo using SQLite.
type SQLiteRecordingLogRepo struct {
	db db.DBTX
}

// NewSQLiteRecordingLogRepo creates a new SQLiteRecordingLogRepo.
func NewSQLiteRecordingLogRepo(conn db.DBTX) *SQLiteRecordingLogRepo {
	return &SQLiteRecordingLogRepo{db: conn}
}

func (r *SQLiteRecordingLogRepo) Create(ctx context.Context, rec *domain.RecordingLog) error {
	query := `INSERT INTO recordings (id, locale, filename, mime_type, byte_size, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.Locale),
		rec.Filename,
		rec.MimeType,
		rec.ByteSize,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting recording %s: %w", rec.ID, err)
	}
	return nil
}

func (r *SQLiteRecordingLogRepo) ListByLocale(ctx context.Context, locale domain.Locale, limit int) ([]*domain.RecordingLog, error) {
	query := `SELECT id, locale, filename, mime_type, byte_size, created_at
		FROM recordings WHERE locale = ? ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, string(locale), limit)
	if err != nil {
		return nil, fmt.Errorf("listing recordings: %w", err)
	}
	defer rows.Close()

	var out []*domain.RecordingLog
	for rows.Next() {
		var rec domain.RecordingLog
		var loc, created string
		if err := rows.Scan(&rec.ID, &loc, &rec.Filename, &rec.MimeType, &rec.ByteSize, &created); err != nil {
			return nil, fmt.Errorf("scanning recording: %w", err)
		}
		rec.Locale = domain.Locale(loc)
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			rec.CreatedAt = t
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
