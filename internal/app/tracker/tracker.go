// Package tracker implements the task lifecycle state machine and the
// aggregation views derived from the interval log. Current task state is
// always a function of the log; mutations append or close intervals and
// never rewrite closed history.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/joaohenriqueluz/took/internal/domain"
	"github.com/joaohenriqueluz/took/internal/infra/store"
)

// Service runs lifecycle transitions and aggregation against one store.
type Service struct {
	store *store.Store
}

// NewService creates a tracker service over the given store.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// StartOutcome reports what Start did, for the command layer to narrate.
type StartOutcome struct {
	// Name is the task that was started, after resolving an omitted name
	// to the most recently paused task.
	Name string
	// Created is true when the task did not exist before.
	Created bool
	// AlreadyActive is true when the task was active and the call was a
	// no-op.
	AlreadyActive bool
	// AutoPaused names the previously active task that was paused to keep
	// a single task active, empty when there was none.
	AutoPaused string
}

// Start begins tracking name at the given instant. With an empty name it
// resumes the most recently paused task. Starting a task that is already
// active is a no-op; starting while another task is active pauses that task
// at the same instant.
func (s *Service) Start(ctx context.Context, name string, at time.Time) (StartOutcome, error) {
	at = at.Truncate(time.Second)
	var out StartOutcome
	err := s.store.Update(ctx, func(l *domain.Log) error {
		var err error
		out, err = applyStart(l, name, at)
		return err
	})
	return out, err
}

// Pause stops tracking name at the given instant. With an empty name it
// resolves the single active task. It returns the resolved task name.
func (s *Service) Pause(ctx context.Context, name string, at time.Time) (string, error) {
	at = at.Truncate(time.Second)
	var paused string
	err := s.store.Update(ctx, func(l *domain.Log) error {
		var err error
		paused, err = applyPause(l, name, at)
		return err
	})
	return paused, err
}

// Done marks name finished, closing its open interval first when active.
// Finishing an already done task is a no-op.
func (s *Service) Done(ctx context.Context, name string, at time.Time) error {
	at = at.Truncate(time.Second)
	return s.store.Update(ctx, func(l *domain.Log) error {
		return applyDone(l, name, at)
	})
}

// Remove deletes name and its whole interval history.
func (s *Service) Remove(ctx context.Context, name string) error {
	return s.store.Update(ctx, func(l *domain.Log) error {
		if _, ok := l.Get(name); !ok {
			return fmt.Errorf("task %q: %w", name, domain.ErrTaskNotFound)
		}
		delete(l.Tasks, name)
		return nil
	})
}

func applyStart(l *domain.Log, name string, at time.Time) (StartOutcome, error) {
	var out StartOutcome
	if name == "" {
		name = l.MostRecentPaused()
		if name == "" {
			return out, domain.ErrNoPausedTask
		}
	}
	out.Name = name

	if t, ok := l.Get(name); ok {
		switch t.Status {
		case domain.StatusDone:
			return out, fmt.Errorf("task %q: %w", name, domain.ErrTaskDone)
		case domain.StatusActive:
			out.AlreadyActive = true
			return out, nil
		}
	}

	// Keep at most one task active: close whatever is running at the same
	// instant the new task starts.
	for _, activeName := range l.Active() {
		prev := l.Tasks[activeName]
		if err := closeOpenInterval(prev, at); err != nil {
			return out, err
		}
		prev.Status = domain.StatusPaused
		prev.LastUpdatedAt = at
		out.AutoPaused = activeName
	}

	t, ok := l.Get(name)
	if !ok {
		t = &domain.Task{Name: name, CreatedAt: at}
		l.Tasks[name] = t
		out.Created = true
	}
	if err := openInterval(t, at); err != nil {
		return out, err
	}
	t.Status = domain.StatusActive
	t.LastUpdatedAt = at
	return out, nil
}

func applyPause(l *domain.Log, name string, at time.Time) (string, error) {
	if name == "" {
		var err error
		name, err = resolveActive(l)
		if err != nil {
			return "", err
		}
	}

	t, ok := l.Get(name)
	if !ok {
		return "", fmt.Errorf("task %q: %w", name, domain.ErrTaskNotFound)
	}
	if t.Status != domain.StatusActive {
		return "", fmt.Errorf("task %q: %w", name, domain.ErrNoActiveTask)
	}
	if err := closeOpenInterval(t, at); err != nil {
		return "", err
	}
	t.Status = domain.StatusPaused
	t.LastUpdatedAt = at
	return name, nil
}

func applyDone(l *domain.Log, name string, at time.Time) error {
	t, ok := l.Get(name)
	if !ok {
		return fmt.Errorf("task %q: %w", name, domain.ErrTaskNotFound)
	}
	if t.Status == domain.StatusDone {
		return nil
	}
	if t.Status == domain.StatusActive {
		if err := closeOpenInterval(t, at); err != nil {
			return err
		}
	}
	t.Status = domain.StatusDone
	t.LastUpdatedAt = at
	return nil
}

// resolveActive returns the single active task name.
func resolveActive(l *domain.Log) (string, error) {
	active := l.Active()
	switch len(active) {
	case 0:
		return "", domain.ErrNoActiveTask
	case 1:
		return active[0], nil
	default:
		return "", fmt.Errorf("%d tasks active: %w", len(active), domain.ErrAmbiguousActive)
	}
}

// closeOpenInterval ends the task's open interval at the given instant.
// Closing before the interval opened would record negative time and fails
// the whole operation.
func closeOpenInterval(t *domain.Task, at time.Time) error {
	iv := t.OpenInterval()
	if iv == nil {
		return nil
	}
	if at.Before(iv.Start) {
		return fmt.Errorf("task %q: end %s before start %s: %w",
			t.Name, at.Format(time.RFC3339), iv.Start.Format(time.RFC3339), domain.ErrIntervalOrder)
	}
	end := at
	iv.End = &end
	return nil
}

// openInterval appends a fresh interval. A retroactive start may not reach
// back into already recorded history, so the new interval must begin at or
// after the previous interval's end.
func openInterval(t *domain.Task, at time.Time) error {
	if n := len(t.Intervals); n > 0 {
		last := t.Intervals[n-1]
		if last.End != nil && at.Before(*last.End) {
			return fmt.Errorf("task %q: start %s before previous end %s: %w",
				t.Name, at.Format(time.RFC3339), last.End.Format(time.RFC3339), domain.ErrIntervalOrder)
		}
	}
	t.Intervals = append(t.Intervals, domain.Interval{Start: at})
	return nil
}
