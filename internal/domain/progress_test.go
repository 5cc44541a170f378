package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

func TestDayUpdate_Apply_MergesFields(t *testing.T) {
	dp := DayUpdate{Completed: boolPtr(true)}.Apply(DayProgress{})
	assert.True(t, dp.Completed)
	assert.Nil(t, dp.Repetitions)

	dp = DayUpdate{Repetitions: intPtr(7)}.Apply(dp)
	assert.True(t, dp.Completed, "completed flag survives a repetitions-only update")
	require.NotNil(t, dp.Repetitions)
	assert.Equal(t, 7, *dp.Repetitions)
}

func TestDayUpdate_Apply_ClampsRepetitions(t *testing.T) {
	dp := DayUpdate{Repetitions: intPtr(12)}.Apply(DayProgress{})
	require.NotNil(t, dp.Repetitions)
	assert.Equal(t, MaxRepetitions, *dp.Repetitions)

	dp = DayUpdate{Repetitions: intPtr(-3)}.Apply(dp)
	require.NotNil(t, dp.Repetitions)
	assert.Equal(t, 0, *dp.Repetitions)
}

func TestDayUpdate_Apply_ClearRemovesRepetitions(t *testing.T) {
	dp := DayProgress{Completed: true, Repetitions: intPtr(4)}
	dp = DayUpdate{ClearRepetitions: true}.Apply(dp)
	assert.Nil(t, dp.Repetitions, "clear removes the count, not sets it to zero")
	assert.True(t, dp.Completed)
}

func TestCompletionPercent(t *testing.T) {
	rec := NewProgressRecord()
	assert.Equal(t, 0, CompletionPercent(rec, 0), "zero-length plan never divides")
	assert.Equal(t, 0, CompletionPercent(nil, 21))

	prev := 0
	for day := 1; day <= 21; day++ {
		rec.Days[day] = DayProgress{Completed: true}
		pct := CompletionPercent(rec, 21)
		assert.GreaterOrEqual(t, pct, prev, "percent is monotonic in completed days")
		prev = pct
	}
	assert.Equal(t, 100, CompletionPercent(rec, 21))

	// Rounding: 1 of 3 days.
	rec = NewProgressRecord()
	rec.Days[2] = DayProgress{Completed: true}
	assert.Equal(t, 33, CompletionPercent(rec, 3))

	// Days beyond the plan length still count toward the numerator; the
	// derived value is a plain ratio, not a range check.
	assert.Equal(t, 0, CompletionPercent(rec, 0))
}

func TestProgressRecord_JSONRoundTrip(t *testing.T) {
	rec := NewProgressRecord()
	rec.Reminder = true
	rec.Days[1] = DayProgress{Completed: true}
	rec.Days[5] = DayProgress{Completed: true, Repetitions: intPtr(7)}
	rec.Days[9] = DayProgress{Repetitions: intPtr(0)}

	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	var back ProgressRecord
	require.NoError(t, json.Unmarshal(raw, &back))
	back.Normalize()

	assert.Equal(t, rec, &back)
	require.NotNil(t, back.Days[9].Repetitions)
	assert.Equal(t, 0, *back.Days[9].Repetitions, "explicit zero is preserved, not dropped")
	assert.Nil(t, back.Days[1].Repetitions, "absent repetitions stay absent")
}

func TestProgressRecord_Normalize(t *testing.T) {
	var rec ProgressRecord
	require.NoError(t, json.Unmarshal([]byte(`{"reminder":true}`), &rec))
	rec.Normalize()
	assert.NotNil(t, rec.Days)

	require.NoError(t, json.Unmarshal([]byte(`{"days":{"3":{"repetitions":99}}}`), &rec))
	rec.Normalize()
	require.NotNil(t, rec.Days[3].Repetitions)
	assert.Equal(t, MaxRepetitions, *rec.Days[3].Repetitions)
}

func TestProgressRecord_Clone_IsDeep(t *testing.T) {
	rec := NewProgressRecord()
	rec.Days[5] = DayProgress{Repetitions: intPtr(3)}

	cp := rec.Clone()
	*cp.Days[5].Repetitions = 9
	cp.Days[6] = DayProgress{Completed: true}

	assert.Equal(t, 3, *rec.Days[5].Repetitions)
	_, ok := rec.Days[6]
	assert.False(t, ok)
}
