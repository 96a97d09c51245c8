package tracker

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/joaohenriqueluz/took/internal/domain"
)

// TotalDuration returns the task's accumulated seconds at the given instant,
// including the open interval when the task is active.
func (s *Service) TotalDuration(ctx context.Context, name string, now time.Time) (int64, error) {
	now = now.Truncate(time.Second)
	l, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	t, ok := l.Get(name)
	if !ok {
		return 0, fmt.Errorf("task %q: %w", name, domain.ErrTaskNotFound)
	}
	return t.TotalSeconds(now), nil
}

// DailyLog returns one entry per local calendar day on which the task
// recorded any time, ascending by date. It is recomputed from the interval
// log on every call.
func (s *Service) DailyLog(ctx context.Context, name string, now time.Time) ([]domain.DayTotal, error) {
	now = now.Truncate(time.Second)
	l, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	t, ok := l.Get(name)
	if !ok {
		return nil, fmt.Errorf("task %q: %w", name, domain.ErrTaskNotFound)
	}
	return taskDays(t, now), nil
}

// taskDays buckets one task's whole history by local calendar day, with
// the open interval measured up to now.
func taskDays(t *domain.Task, now time.Time) []domain.DayTotal {
	acc := make(map[string]int64)
	for _, iv := range t.Intervals {
		overlapByDay(acc, iv, time.Time{}, now)
	}

	days := make([]domain.DayTotal, 0, len(acc))
	for date, secs := range acc {
		days = append(days, domain.DayTotal{Date: date, Seconds: secs})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// Report buckets the last days*24h before ref by local calendar day across
// all tasks. Days with no recorded time are omitted; bucket entries keep
// task creation order and skip tasks idle on that day.
func (s *Service) Report(ctx context.Context, days int, ref time.Time) ([]domain.DayBucket, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%d days: %w", days, domain.ErrInvalidReportDays)
	}
	ref = ref.Truncate(time.Second)
	l, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return buildReport(l, days, ref), nil
}

func buildReport(l *domain.Log, days int, ref time.Time) []domain.DayBucket {
	winStart := ref.Add(-time.Duration(days) * 24 * time.Hour)
	names := l.Names()

	perTask := make(map[string]map[string]int64, len(names))
	dates := make(map[string]struct{})
	for _, name := range names {
		acc := make(map[string]int64)
		for _, iv := range l.Tasks[name].Intervals {
			overlapByDay(acc, iv, winStart, ref)
		}
		perTask[name] = acc
		for date := range acc {
			dates[date] = struct{}{}
		}
	}

	ordered := make([]string, 0, len(dates))
	for date := range dates {
		ordered = append(ordered, date)
	}
	sort.Strings(ordered)

	buckets := make([]domain.DayBucket, 0, len(ordered))
	for _, date := range ordered {
		b := domain.DayBucket{Date: date}
		for _, name := range names {
			if secs := perTask[name][date]; secs > 0 {
				b.Entries = append(b.Entries, domain.TaskSeconds{Name: name, Seconds: secs})
			}
		}
		if len(b.Entries) > 0 {
			buckets = append(buckets, b)
		}
	}
	return buckets
}

// ActiveStatus returns snapshots of every task that is not done, in task
// creation order.
func (s *Service) ActiveStatus(ctx context.Context, now time.Time) ([]domain.Snapshot, error) {
	return s.snapshots(ctx, false, now)
}

// Current returns the task the user is "on": the active task when one is
// running, otherwise the most recently paused one. Nil when neither exists.
func (s *Service) Current(ctx context.Context, now time.Time) (*domain.Snapshot, error) {
	now = now.Truncate(time.Second)
	l, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if active := l.Active(); len(active) == 1 {
		snap := l.Tasks[active[0]].Snapshot(now)
		return &snap, nil
	}
	if name := l.MostRecentPaused(); name != "" {
		snap := l.Tasks[name].Snapshot(now)
		return &snap, nil
	}
	return nil, nil
}

// AllTasks returns snapshots of the whole registry, optionally including
// done tasks, in task creation order.
func (s *Service) AllTasks(ctx context.Context, includeDone bool, now time.Time) ([]domain.Snapshot, error) {
	return s.snapshots(ctx, includeDone, now)
}

func (s *Service) snapshots(ctx context.Context, includeDone bool, now time.Time) ([]domain.Snapshot, error) {
	now = now.Truncate(time.Second)
	l, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Snapshot
	for _, name := range l.Names() {
		t := l.Tasks[name]
		if t.Status == domain.StatusDone && !includeDone {
			continue
		}
		out = append(out, t.Snapshot(now))
	}
	return out, nil
}

// overlapByDay adds the interval's wall-clock overlap with each local
// calendar day to acc, clipped to the window [winStart, winEnd]. An open
// interval is measured up to winEnd. Day boundaries are local midnights,
// so a span crossing midnight is split between the two days:
//
//	overlap = min(end, dayEnd) - max(start, dayStart)
func overlapByDay(acc map[string]int64, iv domain.Interval, winStart, winEnd time.Time) {
	start := iv.Start
	end := winEnd
	if iv.End != nil {
		end = *iv.End
		if end.After(winEnd) {
			end = winEnd
		}
	}
	if start.Before(winStart) {
		start = winStart
	}
	if !end.After(start) {
		return
	}

	// Stamps keep whatever UTC offset they were written with; normalize
	// so every interval is bucketed on the local day grid.
	start, end = start.In(time.Local), end.In(time.Local)

	for day := startOfDay(start); day.Before(end); day = day.AddDate(0, 0, 1) {
		dayEnd := day.AddDate(0, 0, 1)
		from := start
		if day.After(from) {
			from = day
		}
		to := end
		if dayEnd.Before(to) {
			to = dayEnd
		}
		if secs := int64(to.Sub(from) / time.Second); secs > 0 {
			acc[day.Format(domain.DateLayout)] += secs
		}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
