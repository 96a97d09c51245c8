// Package metrics provides Prometheus metrics for the took API server.
// They are registered on the default registry and exposed on /metrics in
// serve mode; plain CLI invocations never touch them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// APIRequests counts served API requests per endpoint.
var APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "took",
	Name:      "api_requests_total",
	Help:      "Total API requests served.",
}, []string{"endpoint"})

// APIErrors counts failed API requests per endpoint.
var APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "took",
	Name:      "api_errors_total",
	Help:      "Total API requests that failed.",
}, []string{"endpoint"})

// TrackedTasks tracks how many tasks are in the store, done included.
var TrackedTasks = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "took",
	Name:      "tasks_tracked",
	Help:      "Number of tasks in the store.",
})

// ActiveTasks tracks whether a task is currently running (0 or 1).
var ActiveTasks = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "took",
	Name:      "tasks_active",
	Help:      "Number of currently active tasks.",
})

// StoreLoadSeconds tracks how long store reads take while serving.
var StoreLoadSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "took",
	Name:      "store_load_seconds",
	Help:      "Duration of store reads in seconds.",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
})
