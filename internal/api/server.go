// Package api provides the read-only HTTP server behind `took serve`.
// It exposes the same views the CLI renders, as JSON, so dashboards and
// scripts can watch tracked time without shelling out.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joaohenriqueluz/took/internal/app/tracker"
	"github.com/joaohenriqueluz/took/internal/domain"
)

// Server is the took HTTP API server.
type Server struct {
	svc         *tracker.Service
	defaultDays int
}

// NewServer creates an API server over the given tracker service.
// defaultDays is the report window used when the request does not name one.
func NewServer(svc *tracker.Service, defaultDays int) *Server {
	return &Server{svc: svc, defaultDays: defaultDays}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/tasks", s.handleTasks)
		r.Get("/tasks/{name}/log", s.handleTaskLog)
		r.Get("/report", s.handleReport)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Serve runs the server until ctx is cancelled or the listener fails.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Printf("[api] listening on http://%s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// statusFor maps tracker errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidReportDays):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStoreLocked):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
