package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"selftalk/internal/domain"
	"selftalk/internal/repository"
)

// ProgressKeyPrefix namespaces progress records in the blob store.
const ProgressKeyPrefix = "habit-progress-"

type progressService struct {
	store    repository.BlobStore
	observer UseCaseObserver

	mu    sync.Mutex
	cache map[string]*domain.ProgressRecord
}

// NewProgressService creates the progress store over the given blob
// store. A nil store is tolerated: everything stays in memory for the
// session, matching the degrade-gracefully contract for disabled
// storage.
func NewProgressService(store repository.BlobStore, observers ...UseCaseObserver) ProgressService {
	return &progressService{
		store:    store,
		observer: useCaseObserverOrNoop(observers),
		cache:    make(map[string]*domain.ProgressRecord),
	}
}

func (s *progressService) Get(ctx context.Context, scriptID string) *domain.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(ctx, scriptID).Clone()
}

// getLocked returns the cached authoritative record, loading or
// defaulting it on first access. Callers must hold s.mu and must clone
// before handing the record out.
func (s *progressService) getLocked(ctx context.Context, scriptID string) *domain.ProgressRecord {
	if rec, ok := s.cache[scriptID]; ok {
		return rec
	}

	rec := s.load(ctx, scriptID)
	s.cache[scriptID] = rec
	return rec
}

// load reads and parses a record from persistent storage. Any failure
// (missing key, read error, corrupt JSON) yields the default record.
func (s *progressService) load(ctx context.Context, scriptID string) *domain.ProgressRecord {
	if s.store == nil {
		return domain.NewProgressRecord()
	}

	raw, err := s.store.Get(ctx, ProgressKeyPrefix+scriptID)
	if err != nil {
		s.observe(ctx, "progress.load", scriptID, err)
		return domain.NewProgressRecord()
	}

	var rec domain.ProgressRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.observe(ctx, "progress.parse", scriptID, err)
		return domain.NewProgressRecord()
	}
	rec.Normalize()
	return &rec
}

func (s *progressService) UpdateDay(ctx context.Context, scriptID string, day int, update domain.DayUpdate) *domain.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.getLocked(ctx, scriptID)
	rec.Days[day] = update.Apply(rec.Days[day])
	s.persistLocked(ctx, scriptID, rec)
	return rec.Clone()
}

func (s *progressService) SetReminder(ctx context.Context, scriptID string, enabled bool) *domain.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.getLocked(ctx, scriptID)
	rec.Reminder = enabled
	s.persistLocked(ctx, scriptID, rec)
	return rec.Clone()
}

func (s *progressService) CompletionPercent(record *domain.ProgressRecord, totalDays int) int {
	return domain.CompletionPercent(record, totalDays)
}

// persistLocked writes the record best-effort. The cache entry remains
// authoritative for the session whether or not the write lands.
func (s *progressService) persistLocked(ctx context.Context, scriptID string, rec *domain.ProgressRecord) {
	if s.store == nil {
		return
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		s.observe(ctx, "progress.encode", scriptID, err)
		return
	}
	if err := s.store.Put(ctx, ProgressKeyPrefix+scriptID, raw); err != nil {
		s.observe(ctx, "progress.save", scriptID, err)
	}
}

func (s *progressService) observe(ctx context.Context, name, scriptID string, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"script_id": scriptID},
		StartedAt: time.Now().UTC(),
	})
}
