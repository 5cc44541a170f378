package service

import (
	"context"

	"selftalk/internal/domain"
)

// ProgressService is the progress store: per-script, per-day persisted
// state with merge-on-update semantics. No method returns an error —
// storage failures degrade to defaults (reads) or to in-memory-only
// state (writes), reported through the observer.
type ProgressService interface {
	// Get returns the record for a script, creating the default record
	// lazily for never-seen identifiers. The returned record is a
	// snapshot; re-request after mutating.
	Get(ctx context.Context, scriptID string) *domain.ProgressRecord
	// UpdateDay merges a partial update into one day's progress and
	// persists the record best-effort.
	UpdateDay(ctx context.Context, scriptID string, day int, update domain.DayUpdate) *domain.ProgressRecord
	// SetReminder flips the daily-reminder opt-in.
	SetReminder(ctx context.Context, scriptID string, enabled bool) *domain.ProgressRecord
	// CompletionPercent derives the rounded completion percentage for a
	// plan of totalDays days.
	CompletionPercent(record *domain.ProgressRecord, totalDays int) int
}

// PlanService resolves habit metadata and per-script plan documents.
// A nil result means "no data": remote fetch failed and no bundled
// copy is registered. Failures never surface as errors.
type PlanService interface {
	Metadata(ctx context.Context) *domain.HabitMetadata
	Script(ctx context.Context, scriptID string) *domain.PlanDocument
}

// RecordingLogService records assembled practice artifacts and lists
// past rehearsals.
type RecordingLogService interface {
	Log(ctx context.Context, rec *domain.RecordingLog) error
	ListByLocale(ctx context.Context, locale domain.Locale, limit int) ([]*domain.RecordingLog, error)
}
