package domain

import (
	"fmt"
	"sort"
)

// CurrentVersion is the store schema version written by this build.
const CurrentVersion = 1

// Log is the full took log: every tracked task keyed by name. It is both
// the task registry and the event history; current state is always
// derivable from the intervals.
type Log struct {
	Version int              `json:"version"`
	Tasks   map[string]*Task `json:"tasks"`
}

// NewLog returns an empty log at the current schema version.
func NewLog() *Log {
	return &Log{Version: CurrentVersion, Tasks: make(map[string]*Task)}
}

// Get looks up a task by name.
func (l *Log) Get(name string) (*Task, bool) {
	t, ok := l.Tasks[name]
	return t, ok
}

// Names returns all task names in creation order. CreatedAt is set exactly
// once per task, so this reproduces insertion order; ties break by name.
func (l *Log) Names() []string {
	names := make([]string, 0, len(l.Tasks))
	for name := range l.Tasks {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := l.Tasks[names[i]], l.Tasks[names[j]]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return names[i] < names[j]
	})
	return names
}

// Active returns the names of all active tasks in creation order.
func (l *Log) Active() []string {
	var active []string
	for _, name := range l.Names() {
		if l.Tasks[name].Status == StatusActive {
			active = append(active, name)
		}
	}
	return active
}

// MostRecentPaused returns the paused task with the latest LastUpdatedAt,
// or "" when no task is paused.
func (l *Log) MostRecentPaused() string {
	var best string
	for _, name := range l.Names() {
		t := l.Tasks[name]
		if t.Status != StatusPaused {
			continue
		}
		if best == "" || t.LastUpdatedAt.After(l.Tasks[best].LastUpdatedAt) {
			best = name
		}
	}
	return best
}

// Validate checks the structural invariants the lifecycle engine relies on.
// Parsing is lenient, validation is strict: any violation is ErrStoreCorrupt
// and is reported, never repaired.
func (l *Log) Validate() error {
	for name, t := range l.Tasks {
		if t == nil {
			return fmt.Errorf("task %q: nil entry: %w", name, ErrStoreCorrupt)
		}
		if !t.Status.Valid() {
			return fmt.Errorf("task %q: unknown status %q: %w", name, t.Status, ErrStoreCorrupt)
		}
		open := t.openCount()
		switch t.Status {
		case StatusActive:
			if open != 1 {
				return fmt.Errorf("task %q: active with %d open intervals: %w", name, open, ErrStoreCorrupt)
			}
		case StatusPaused, StatusDone:
			if open != 0 {
				return fmt.Errorf("task %q: %s with %d open intervals: %w", name, t.Status, open, ErrStoreCorrupt)
			}
		}
		for i, iv := range t.Intervals {
			if iv.Start.IsZero() {
				return fmt.Errorf("task %q: interval %d has no start time: %w", name, i, ErrStoreCorrupt)
			}
			if iv.End != nil && iv.End.Before(iv.Start) {
				return fmt.Errorf("task %q: interval %d ends before it starts: %w", name, i, ErrStoreCorrupt)
			}
		}
	}
	if len(l.Active()) > 1 {
		return fmt.Errorf("%d tasks active at once: %w", len(l.Active()), ErrStoreCorrupt)
	}
	return nil
}
