package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/joaohenriqueluz/took/internal/domain"
)

// ExportWriter receives the registry one task at a time with its derived
// aggregates. internal/infra/sqlite implements it for `took export`.
type ExportWriter interface {
	// Reset discards everything from a previous export so a rerun
	// replaces rather than merges.
	Reset() error
	// WriteTask stores one task, its raw intervals and its per-day totals.
	WriteTask(snap domain.Snapshot, intervals []domain.Interval, days []domain.DayTotal) error
}

// ExportStats counts what an export wrote.
type ExportStats struct {
	Tasks     int
	Intervals int
	Days      int
}

// Export writes the whole registry to w from one consistent snapshot of
// the store, in task creation order. Open intervals are measured up to now
// for totals and day buckets but stay open in the exported intervals.
func (s *Service) Export(ctx context.Context, w ExportWriter, now time.Time) (ExportStats, error) {
	now = now.Truncate(time.Second)
	var stats ExportStats

	l, err := s.store.Load(ctx)
	if err != nil {
		return stats, err
	}
	if err := w.Reset(); err != nil {
		return stats, fmt.Errorf("reset export target: %w", err)
	}

	for _, name := range l.Names() {
		t := l.Tasks[name]
		days := taskDays(t, now)
		if err := w.WriteTask(t.Snapshot(now), t.Intervals, days); err != nil {
			return stats, fmt.Errorf("export task %q: %w", name, err)
		}
		stats.Tasks++
		stats.Intervals += len(t.Intervals)
		stats.Days += len(days)
	}
	return stats, nil
}
