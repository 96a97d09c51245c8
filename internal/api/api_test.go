package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/joaohenriqueluz/took/internal/app/tracker"
	"github.com/joaohenriqueluz/took/internal/domain"
	"github.com/joaohenriqueluz/took/internal/infra/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc := tracker.NewService(store.New(t.TempDir(), "took.json", 2*time.Second))
	ctx := context.Background()

	start := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	if _, err := svc.Start(ctx, "deep-work", start); err != nil {
		t.Fatalf("seed Start() error = %v", err)
	}
	if _, err := svc.Pause(ctx, "deep-work", start.Add(30*time.Minute)); err != nil {
		t.Fatalf("seed Pause() error = %v", err)
	}
	if _, err := svc.Start(ctx, "review", start.Add(time.Hour)); err != nil {
		t.Fatalf("seed Start() error = %v", err)
	}

	return NewServer(svc, 7)
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", rec.Code)
	}
}

func TestStatus_ReportsCurrentTask(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/status = %d, want 200", rec.Code)
	}

	var resp statusResponse
	decode(t, rec, &resp)
	if resp.Current == nil || resp.Current.Name != "review" {
		t.Errorf("current = %+v, want active review", resp.Current)
	}
	if resp.Tasks != 2 || resp.Active != 1 {
		t.Errorf("tasks = %d active = %d, want 2 and 1", resp.Tasks, resp.Active)
	}
}

func TestTasks_DoneFilter(t *testing.T) {
	srv := newTestServer(t)
	if err := srv.svc.Done(context.Background(), "deep-work", time.Now()); err != nil {
		t.Fatalf("Done() error = %v", err)
	}

	var resp struct {
		Tasks []domain.Snapshot `json:"tasks"`
	}
	decode(t, get(t, srv, "/api/tasks"), &resp)
	if len(resp.Tasks) != 1 || resp.Tasks[0].Name != "review" {
		t.Errorf("tasks = %+v, want only review", resp.Tasks)
	}

	decode(t, get(t, srv, "/api/tasks?done=true"), &resp)
	if len(resp.Tasks) != 2 {
		t.Errorf("tasks with done = %d entries, want 2", len(resp.Tasks))
	}
}

func TestTaskLog_UnknownTaskIs404(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/tasks/ghost/log")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /api/tasks/ghost/log = %d, want 404", rec.Code)
	}
}

func TestTaskLog_ReturnsDays(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/tasks/deep-work/log")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/tasks/deep-work/log = %d, want 200", rec.Code)
	}

	var resp struct {
		Task string            `json:"task"`
		Days []domain.DayTotal `json:"days"`
	}
	decode(t, rec, &resp)
	if resp.Task != "deep-work" {
		t.Errorf("task = %q, want deep-work", resp.Task)
	}
	var sum int64
	for _, d := range resp.Days {
		sum += d.Seconds
	}
	if sum != 1800 {
		t.Errorf("logged seconds = %d, want 1800", sum)
	}
}

func TestReport_DaysValidation(t *testing.T) {
	srv := newTestServer(t)

	if rec := get(t, srv, "/api/report?days=zero"); rec.Code != http.StatusBadRequest {
		t.Errorf("days=zero = %d, want 400", rec.Code)
	}
	if rec := get(t, srv, "/api/report?days=-1"); rec.Code != http.StatusBadRequest {
		t.Errorf("days=-1 = %d, want 400", rec.Code)
	}

	rec := get(t, srv, "/api/report?days=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("days=2 = %d, want 200", rec.Code)
	}
	var resp struct {
		Days    int                `json:"days"`
		Buckets []domain.DayBucket `json:"buckets"`
	}
	decode(t, rec, &resp)
	if resp.Days != 2 {
		t.Errorf("days = %d, want 2", resp.Days)
	}
	if len(resp.Buckets) == 0 {
		t.Error("report buckets empty, want seeded activity")
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	srv := newTestServer(t)
	get(t, srv, "/api/status")

	rec := get(t, srv, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "took_api_requests_total") {
		t.Error("metrics output missing took_api_requests_total")
	}
}
