package repository

import (
	"context"
	"errors"

	"selftalk/internal/domain"
)

// ErrNotFound is returned when a requested key or row does not exist.
var ErrNotFound = errors.New("not found")

// BlobStore is opaque key-value byte storage that survives restarts.
// Callers own serialization; the store never inspects values.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// RecordingLogRepo records assembled practice artifacts.
type RecordingLogRepo interface {
	Create(ctx context.Context, rec *domain.RecordingLog) error
	ListByLocale(ctx context.Context, locale domain.Locale, limit int) ([]*domain.RecordingLog, error)
}
