package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selftalk/internal/domain"
	"selftalk/internal/repository"
	"selftalk/internal/testutil"
)

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

// failingBlobStore simulates disabled or full storage.
type failingBlobStore struct{}

func (failingBlobStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage disabled")
}

func (failingBlobStore) Put(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func newTestProgressService(t *testing.T) (ProgressService, repository.BlobStore) {
	t.Helper()
	store := repository.NewSQLiteBlobStore(testutil.NewTestDB(t))
	return NewProgressService(store), store
}

func TestProgressService_Get_NeverSeenScript(t *testing.T) {
	svc, _ := newTestProgressService(t)

	rec := svc.Get(context.Background(), "never-seen")
	require.NotNil(t, rec)
	assert.Empty(t, rec.Days)
	assert.False(t, rec.Reminder)
}

func TestProgressService_UpdateDay_MergesNotOverwrites(t *testing.T) {
	svc, _ := newTestProgressService(t)
	ctx := context.Background()

	svc.UpdateDay(ctx, "quit-smoking-21", 5, domain.DayUpdate{Completed: boolPtr(true)})
	rec := svc.UpdateDay(ctx, "quit-smoking-21", 5, domain.DayUpdate{Repetitions: intPtr(7)})

	dp := rec.Days[5]
	assert.True(t, dp.Completed)
	require.NotNil(t, dp.Repetitions)
	assert.Equal(t, 7, *dp.Repetitions)
}

func TestProgressService_UpdateDay_ClampsRepetitions(t *testing.T) {
	svc, _ := newTestProgressService(t)
	ctx := context.Background()

	svc.UpdateDay(ctx, "quit-smoking-21", 5, domain.DayUpdate{Completed: boolPtr(true)})
	rec := svc.UpdateDay(ctx, "quit-smoking-21", 5, domain.DayUpdate{Repetitions: intPtr(12)})

	require.NotNil(t, rec.Days[5].Repetitions)
	assert.Equal(t, 10, *rec.Days[5].Repetitions)
}

func TestProgressService_UpdateDay_ClearRemovesRepetitions(t *testing.T) {
	svc, _ := newTestProgressService(t)
	ctx := context.Background()

	svc.UpdateDay(ctx, "s", 3, domain.DayUpdate{Repetitions: intPtr(4)})
	rec := svc.UpdateDay(ctx, "s", 3, domain.DayUpdate{ClearRepetitions: true})

	dp, ok := rec.Days[3]
	require.True(t, ok, "the day entry itself survives")
	assert.Nil(t, dp.Repetitions)
}

func TestProgressService_PersistsAcrossInstances(t *testing.T) {
	svc, store := newTestProgressService(t)
	ctx := context.Background()

	svc.UpdateDay(ctx, "quit-smoking-21", 1, domain.DayUpdate{Completed: boolPtr(true)})
	svc.SetReminder(ctx, "quit-smoking-21", true)

	// A fresh service over the same store sees the persisted record.
	again := NewProgressService(store)
	rec := again.Get(ctx, "quit-smoking-21")
	assert.True(t, rec.Days[1].Completed)
	assert.True(t, rec.Reminder)
}

func TestProgressService_StorageFailuresSwallowed(t *testing.T) {
	svc := NewProgressService(failingBlobStore{})
	ctx := context.Background()

	rec := svc.Get(ctx, "s")
	require.NotNil(t, rec, "read failure degrades to the default record")

	rec = svc.UpdateDay(ctx, "s", 2, domain.DayUpdate{Completed: boolPtr(true)})
	assert.True(t, rec.Days[2].Completed, "in-memory value is authoritative despite the failed write")

	// Subsequent reads in the same session observe the update.
	rec = svc.Get(ctx, "s")
	assert.True(t, rec.Days[2].Completed)
}

func TestProgressService_NilStoreToleratedFully(t *testing.T) {
	svc := NewProgressService(nil)
	ctx := context.Background()

	rec := svc.UpdateDay(ctx, "s", 1, domain.DayUpdate{Completed: boolPtr(true)})
	assert.True(t, rec.Days[1].Completed)
}

func TestProgressService_CorruptRecordReplacedWithDefault(t *testing.T) {
	svc, store := newTestProgressService(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, ProgressKeyPrefix+"broken", []byte("{not json")))

	rec := svc.Get(ctx, "broken")
	require.NotNil(t, rec)
	assert.Empty(t, rec.Days)
}

func TestProgressService_SnapshotsAreNotLive(t *testing.T) {
	svc, _ := newTestProgressService(t)
	ctx := context.Background()

	snap := svc.Get(ctx, "s")
	snap.Days[9] = domain.DayProgress{Completed: true}

	fresh := svc.Get(ctx, "s")
	_, ok := fresh.Days[9]
	assert.False(t, ok, "mutating a snapshot must not reach the store")
}

func TestProgressService_CompletionPercent(t *testing.T) {
	svc, _ := newTestProgressService(t)
	ctx := context.Background()

	rec := svc.Get(ctx, "s")
	assert.Equal(t, 0, svc.CompletionPercent(rec, 0))
	assert.Equal(t, 0, svc.CompletionPercent(rec, 21))

	for day := 1; day <= 21; day++ {
		rec = svc.UpdateDay(ctx, "s", day, domain.DayUpdate{Completed: boolPtr(true)})
	}
	assert.Equal(t, 100, svc.CompletionPercent(rec, 21))
}
