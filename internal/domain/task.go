// Package domain holds the took data model: tasks, intervals and the
// aggregate shapes derived from them. A task moves
// active → paused → active → ... → done, and every tracked span of time is
// one interval in an append-only history.
package domain

import "time"

// Status tracks the task lifecycle.
type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusDone   Status = "done"
)

// Valid reports whether s is one of the three lifecycle states.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusPaused || s == StatusDone
}

// DateLayout is the calendar-day format used by day buckets and the
// per-day log, in local time.
const DateLayout = "2006-01-02"

// Interval is one contiguous span of tracked time. A nil End means the
// interval is still open; exactly one interval per task may be open.
type Interval struct {
	Start time.Time  `json:"start_time"`
	End   *time.Time `json:"end_time,omitempty"`
}

// Open reports whether the interval has not been closed yet.
func (iv Interval) Open() bool { return iv.End == nil }

// Seconds returns the interval length in whole seconds. Open intervals are
// measured up to now; a negative span clamps to zero.
func (iv Interval) Seconds(now time.Time) int64 {
	end := now
	if iv.End != nil {
		end = *iv.End
	}
	secs := int64(end.Sub(iv.Start) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// Task is a named unit of work with its full interval history.
// TotalSeconds is always derived from the intervals, never stored.
type Task struct {
	Name          string     `json:"-"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdatedAt time.Time  `json:"last_updated_at"`
	Intervals     []Interval `json:"intervals"`
}

// OpenInterval returns a pointer to the task's open interval, or nil.
func (t *Task) OpenInterval() *Interval {
	for i := range t.Intervals {
		if t.Intervals[i].Open() {
			return &t.Intervals[i]
		}
	}
	return nil
}

// openCount returns the number of open intervals. Anything other than
// the status-mandated count is corruption.
func (t *Task) openCount() int {
	n := 0
	for _, iv := range t.Intervals {
		if iv.Open() {
			n++
		}
	}
	return n
}

// TotalSeconds sums all closed intervals, plus the open interval measured
// to now when the task is active.
func (t *Task) TotalSeconds(now time.Time) int64 {
	var total int64
	for _, iv := range t.Intervals {
		total += iv.Seconds(now)
	}
	return total
}

// Snapshot is the read-side view of one task handed to the command layer.
type Snapshot struct {
	Name          string    `json:"name"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	TotalSeconds  int64     `json:"total_seconds"`
}

// Snapshot derives the read-side view at the given instant.
func (t *Task) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		Name:          t.Name,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
		TotalSeconds:  t.TotalSeconds(now),
	}
}

// TaskSeconds is one task's share of a day bucket.
type TaskSeconds struct {
	Name    string `json:"name"`
	Seconds int64  `json:"seconds"`
}

// DayBucket aggregates one local calendar day across tasks.
// Entries keep task creation order.
type DayBucket struct {
	Date    string        `json:"date"`
	Entries []TaskSeconds `json:"entries"`
}

// Total returns the seconds recorded across all tasks on this day.
func (b DayBucket) Total() int64 {
	var total int64
	for _, e := range b.Entries {
		total += e.Seconds
	}
	return total
}

// DayTotal is one calendar day of recorded time for a single task.
type DayTotal struct {
	Date    string `json:"date"`
	Seconds int64  `json:"seconds"`
}
