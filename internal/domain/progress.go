package domain

import "math"

// MaxRepetitions bounds the per-day repetition counter.
const MaxRepetitions = 10

// DayProgress is the tracked state for one day of a practice plan.
// Repetitions is a pointer because "never entered" is distinct from 0.
type DayProgress struct {
	Completed   bool `json:"completed,omitempty"`
	Repetitions *int `json:"repetitions,omitempty"`
}

// ProgressRecord is the persisted per-script progress aggregate.
// Days is sparse: a missing day number means the day was never touched.
type ProgressRecord struct {
	Days     map[int]DayProgress `json:"days"`
	Reminder bool                `json:"reminder"`
}

// NewProgressRecord returns the default record for a script that has
// never been practiced.
func NewProgressRecord() *ProgressRecord {
	return &ProgressRecord{Days: make(map[int]DayProgress)}
}

// Normalize repairs a record parsed from storage: a nil Days map
// (possible with hand-edited or truncated JSON) becomes an empty one,
// and out-of-range repetition values are clamped.
func (r *ProgressRecord) Normalize() {
	if r.Days == nil {
		r.Days = make(map[int]DayProgress)
	}
	for day, dp := range r.Days {
		if dp.Repetitions != nil {
			v := ClampRepetitions(*dp.Repetitions)
			dp.Repetitions = &v
			r.Days[day] = dp
		}
	}
}

// Clone returns a deep copy. Callers receive clones so the store's
// cached record stays the single authoritative copy.
func (r *ProgressRecord) Clone() *ProgressRecord {
	out := &ProgressRecord{
		Days:     make(map[int]DayProgress, len(r.Days)),
		Reminder: r.Reminder,
	}
	for day, dp := range r.Days {
		if dp.Repetitions != nil {
			v := *dp.Repetitions
			dp.Repetitions = &v
		}
		out.Days[day] = dp
	}
	return out
}

// CompletedDays counts days marked completed.
func (r *ProgressRecord) CompletedDays() int {
	n := 0
	for _, dp := range r.Days {
		if dp.Completed {
			n++
		}
	}
	return n
}

// DayUpdate is a partial update merged into one day's progress.
// Nil fields are left untouched. ClearRepetitions removes the
// repetition count entirely, which is different from setting it to 0.
type DayUpdate struct {
	Completed        *bool
	Repetitions      *int
	ClearRepetitions bool
}

// Apply merges the update into an existing DayProgress and returns the
// result. Repetition values are clamped to [0, MaxRepetitions].
func (u DayUpdate) Apply(existing DayProgress) DayProgress {
	next := existing
	if u.Completed != nil {
		next.Completed = *u.Completed
	}
	if u.ClearRepetitions {
		next.Repetitions = nil
	} else if u.Repetitions != nil {
		v := ClampRepetitions(*u.Repetitions)
		next.Repetitions = &v
	}
	return next
}

// ClampRepetitions bounds a repetition count to [0, MaxRepetitions].
func ClampRepetitions(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxRepetitions {
		return MaxRepetitions
	}
	return n
}

// CompletionPercent derives the rounded completion percentage for a
// plan of totalDays days. A zero-length plan is 0% regardless of the
// record's contents.
func CompletionPercent(r *ProgressRecord, totalDays int) int {
	if r == nil || totalDays <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(r.CompletedDays()) / float64(totalDays)))
}
