package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"selftalk/internal/domain"
	"selftalk/internal/repository"
)

type recordingLogService struct {
	recordings repository.RecordingLogRepo
	observer   UseCaseObserver
}

// NewRecordingLogService creates the recording history service.
func NewRecordingLogService(recordings repository.RecordingLogRepo, observers ...UseCaseObserver) RecordingLogService {
	return &recordingLogService{
		recordings: recordings,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *recordingLogService) Log(ctx context.Context, rec *domain.RecordingLog) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	err := s.recordings.Create(ctx, rec)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name: "recording.log", Success: err == nil, Err: err,
		Fields:    map[string]any{"locale": string(rec.Locale), "bytes": rec.ByteSize},
		StartedAt: time.Now().UTC(),
	})
	return err
}

func (s *recordingLogService) ListByLocale(ctx context.Context, locale domain.Locale, limit int) ([]*domain.RecordingLog, error) {
	return s.recordings.ListByLocale(ctx, locale, limit)
}
