package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joaohenriqueluz/took/internal/domain"
	"github.com/joaohenriqueluz/took/internal/infra/metrics"
)

// statusResponse is the /api/status payload. Current is null when nothing
// has ever been tracked.
type statusResponse struct {
	Current *domain.Snapshot `json:"current"`
	Tasks   int              `json:"tasks"`
	Active  int              `json:"active"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	metrics.APIRequests.WithLabelValues("/api/status").Inc()
	now := time.Now()

	loadStart := time.Now()
	current, err := s.svc.Current(r.Context(), now)
	if err != nil {
		metrics.APIErrors.WithLabelValues("/api/status").Inc()
		writeError(w, statusFor(err), err.Error())
		return
	}
	all, err := s.svc.AllTasks(r.Context(), true, now)
	if err != nil {
		metrics.APIErrors.WithLabelValues("/api/status").Inc()
		writeError(w, statusFor(err), err.Error())
		return
	}
	metrics.StoreLoadSeconds.Observe(time.Since(loadStart).Seconds())

	active := 0
	for _, snap := range all {
		if snap.Status == domain.StatusActive {
			active++
		}
	}
	metrics.TrackedTasks.Set(float64(len(all)))
	metrics.ActiveTasks.Set(float64(active))

	writeJSON(w, http.StatusOK, statusResponse{
		Current: current,
		Tasks:   len(all),
		Active:  active,
	})
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	metrics.APIRequests.WithLabelValues("/api/tasks").Inc()

	includeDone := r.URL.Query().Get("done") == "true"
	snaps, err := s.svc.AllTasks(r.Context(), includeDone, time.Now())
	if err != nil {
		metrics.APIErrors.WithLabelValues("/api/tasks").Inc()
		writeError(w, statusFor(err), err.Error())
		return
	}
	if snaps == nil {
		snaps = []domain.Snapshot{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": snaps})
}

func (s *Server) handleTaskLog(w http.ResponseWriter, r *http.Request) {
	metrics.APIRequests.WithLabelValues("/api/tasks/log").Inc()

	name := chi.URLParam(r, "name")
	days, err := s.svc.DailyLog(r.Context(), name, time.Now())
	if err != nil {
		metrics.APIErrors.WithLabelValues("/api/tasks/log").Inc()
		writeError(w, statusFor(err), err.Error())
		return
	}
	if days == nil {
		days = []domain.DayTotal{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"task": name,
		"days": days,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	metrics.APIRequests.WithLabelValues("/api/report").Inc()

	days := s.defaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			metrics.APIErrors.WithLabelValues("/api/report").Inc()
			writeError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}

	buckets, err := s.svc.Report(r.Context(), days, time.Now())
	if err != nil {
		metrics.APIErrors.WithLabelValues("/api/report").Inc()
		writeError(w, statusFor(err), err.Error())
		return
	}
	if buckets == nil {
		buckets = []domain.DayBucket{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"days":    days,
		"buckets": buckets,
	})
}
