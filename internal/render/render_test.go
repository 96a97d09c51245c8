package render

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/joaohenriqueluz/took/internal/domain"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{-5, "0s"},
		{59, "59s"},
		{60, "1m"},
		{3661, "1h-1m-1s"},
		{86400, "1D"},
		{90061, "1D-1h-1m-1s"},
		{2592000, "1M"},
		{31536000, "1Y"},
		{31536000 + 2592000 + 3*86400 + 4*3600 + 5*60 + 6, "1Y-1M-3D-4h-5m-6s"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.seconds); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestBar_Proportional(t *testing.T) {
	if got := utf8.RuneCountInString(Bar(600, 1200, 30)); got != 15 {
		t.Errorf("half share bar = %d cells, want 15", got)
	}
	if got := utf8.RuneCountInString(Bar(1200, 1200, 30)); got != 30 {
		t.Errorf("full share bar = %d cells, want 30", got)
	}
	if got := Bar(0, 1200, 30); got != "" {
		t.Errorf("zero value bar = %q, want empty", got)
	}
	if got := Bar(600, 0, 30); got != "" {
		t.Errorf("zero total bar = %q, want empty", got)
	}
	if got := Bar(1, 100000, 30); got != "" {
		t.Errorf("tiny share bar = %q, want empty", got)
	}
}

func snap(name string, status domain.Status, seconds int64) domain.Snapshot {
	return domain.Snapshot{
		Name:          name,
		Status:        status,
		LastUpdatedAt: time.Date(2024, 3, 12, 9, 30, 0, 0, time.Local),
		TotalSeconds:  seconds,
	}
}

func TestStatus_NoCurrentTask(t *testing.T) {
	if got := Status(nil); !strings.Contains(got, "No task in progress") {
		t.Errorf("Status(nil) = %q", got)
	}
}

func TestStatus_ActiveAndPaused(t *testing.T) {
	active := snap("deep-work", domain.StatusActive, 1800)
	got := Status(&active)
	if !strings.Contains(got, "deep-work") || !strings.Contains(got, "(in progress)") {
		t.Errorf("active Status = %q, want name and in-progress marker", got)
	}
	if !strings.Contains(got, "30m") {
		t.Errorf("active Status = %q, want formatted time spent", got)
	}

	paused := snap("deep-work", domain.StatusPaused, 1800)
	if got := Status(&paused); !strings.Contains(got, "(paused)") {
		t.Errorf("paused Status = %q, want paused marker", got)
	}
}

func markedRows(table string) []string {
	var rows []string
	for _, line := range strings.Split(table, "\n") {
		if strings.HasPrefix(line, "*") {
			rows = append(rows, line)
		}
	}
	return rows
}

func TestTaskTable_MarksActiveAndDone(t *testing.T) {
	resting := snap("resting", domain.StatusPaused, 1200)
	resting.LastUpdatedAt = resting.LastUpdatedAt.Add(time.Hour)

	got := TaskTable([]domain.Snapshot{
		snap("running", domain.StatusActive, 600),
		resting,
		snap("shipped", domain.StatusDone, 3600),
	})

	rows := markedRows(got)
	if len(rows) != 1 || !strings.Contains(rows[0], "running") {
		t.Errorf("marked rows = %q, want the active task only", rows)
	}
	if !strings.Contains(got, "(done) shipped") {
		t.Error("table missing done prefix")
	}
	if !strings.Contains(got, "Task Name") || !strings.Contains(got, "Last Updated") {
		t.Error("table missing header")
	}
	if !strings.Contains(got, "Took Tasks") {
		t.Error("table missing title panel")
	}
}

func TestTaskTable_MarksMostRecentPausedWhenNothingRuns(t *testing.T) {
	warmup := snap("warmup", domain.StatusPaused, 600)
	deepWork := snap("deep-work", domain.StatusPaused, 1200)
	deepWork.LastUpdatedAt = warmup.LastUpdatedAt.Add(time.Hour)
	shipped := snap("shipped", domain.StatusDone, 3600)
	shipped.LastUpdatedAt = warmup.LastUpdatedAt.Add(2 * time.Hour)

	got := TaskTable([]domain.Snapshot{warmup, deepWork, shipped})

	if !strings.Contains(got, "Took Tasks (paused)") {
		t.Error("table missing paused title")
	}
	rows := markedRows(got)
	if len(rows) != 1 || !strings.Contains(rows[0], "deep-work") {
		t.Errorf("marked rows = %q, want the most recently paused task only", rows)
	}
}

func TestTaskTable_Empty(t *testing.T) {
	if got := TaskTable(nil); !strings.Contains(got, "No tasks logged") {
		t.Errorf("TaskTable(nil) = %q", got)
	}
}

func TestTaskLog_ListsDays(t *testing.T) {
	got := TaskLog("deep-work", []domain.DayTotal{
		{Date: "2024-03-12", Seconds: 5400},
		{Date: "2024-03-13", Seconds: 600},
	})

	if !strings.Contains(got, "Task Log for: deep-work") {
		t.Errorf("TaskLog = %q, want title", got)
	}
	if !strings.Contains(got, "2024-03-12") || !strings.Contains(got, "1h-30m") {
		t.Errorf("TaskLog = %q, want first day with formatted time", got)
	}
}

func TestReport_SectionsPerDay(t *testing.T) {
	got := Report([]domain.DayBucket{
		{Date: "2024-03-12", Entries: []domain.TaskSeconds{
			{Name: "alpha", Seconds: 900},
			{Name: "beta", Seconds: 300},
		}},
		{Date: "2024-03-13", Entries: []domain.TaskSeconds{
			{Name: "alpha", Seconds: 600},
		}},
	}, 2, 30)

	if !strings.Contains(got, "Reports (Last 2 Days)") {
		t.Errorf("Report = %q, want title", got)
	}
	for _, want := range []string{"2024-03-12", "2024-03-13", "alpha:", "beta:", "15m", "5m", "10m"} {
		if !strings.Contains(got, want) {
			t.Errorf("Report missing %q in %q", want, got)
		}
	}
	if strings.Index(got, "2024-03-12") > strings.Index(got, "2024-03-13") {
		t.Error("Report days out of order")
	}
}

func TestReport_EmptyWindow(t *testing.T) {
	if got := Report(nil, 7, 30); !strings.Contains(got, "No time recorded") {
		t.Errorf("Report(nil) = %q", got)
	}
}
