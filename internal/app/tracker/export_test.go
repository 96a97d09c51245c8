package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/joaohenriqueluz/took/internal/domain"
)

// memoryWriter is an in-memory ExportWriter for tests.
type memoryWriter struct {
	resets    int
	tasks     []string
	intervals int
	days      map[string][]domain.DayTotal
	failOn    string
}

func newMemoryWriter() *memoryWriter {
	return &memoryWriter{days: make(map[string][]domain.DayTotal)}
}

func (w *memoryWriter) Reset() error {
	w.resets++
	w.tasks = nil
	w.intervals = 0
	w.days = make(map[string][]domain.DayTotal)
	return nil
}

func (w *memoryWriter) WriteTask(snap domain.Snapshot, intervals []domain.Interval, days []domain.DayTotal) error {
	if snap.Name == w.failOn {
		return errors.New("disk full")
	}
	w.tasks = append(w.tasks, snap.Name)
	w.intervals += len(intervals)
	w.days[snap.Name] = days
	return nil
}

func TestExport_WritesAllTasksInCreationOrder(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	mustStart(t, s, "zeta", at(9, 0, 0))
	mustPause(t, s, "zeta", at(9, 30, 0))
	mustStart(t, s, "alpha", at(10, 0, 0))
	mustPause(t, s, "alpha", at(10, 15, 0))
	mustStart(t, s, "zeta", at(11, 0, 0))

	w := newMemoryWriter()
	stats, err := s.Export(ctx, w, at(11, 30, 0))
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if w.resets != 1 {
		t.Errorf("Reset called %d times, want 1", w.resets)
	}
	if len(w.tasks) != 2 || w.tasks[0] != "zeta" || w.tasks[1] != "alpha" {
		t.Errorf("exported tasks = %v, want [zeta alpha] in creation order", w.tasks)
	}
	if stats.Tasks != 2 || stats.Intervals != 3 {
		t.Errorf("stats = %+v, want 2 tasks and 3 intervals", stats)
	}
}

func TestExport_OpenIntervalMeasuredToNow(t *testing.T) {
	s := newTestService(t)
	mustStart(t, s, "deep-work", at(9, 0, 0))

	w := newMemoryWriter()
	if _, err := s.Export(context.Background(), w, at(9, 20, 0)); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	days := w.days["deep-work"]
	if len(days) != 1 || days[0].Seconds != 1200 {
		t.Errorf("day totals = %+v, want 1200s on one day", days)
	}
}

func TestExport_WriterFailureAborts(t *testing.T) {
	s := newTestService(t)
	mustStart(t, s, "deep-work", at(9, 0, 0))

	w := newMemoryWriter()
	w.failOn = "deep-work"
	_, err := s.Export(context.Background(), w, at(10, 0, 0))
	if err == nil {
		t.Fatal("Export() with failing writer succeeded")
	}
}
