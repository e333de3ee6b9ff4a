package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	ProjectWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_writes_total",
			Help: "Total number of persisted project writes",
		},
		[]string{"operation"}, // create, update, delete
	)

	IDAllocationRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "project_id_allocation_retries_total",
			Help: "Project creations retried because the allocated id was already taken",
		},
	)

	TeamLoadWeight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "team_load_weight",
			Help: "Weighted count of active projects at the last team load computation",
		},
	)
)

// RecordHTTPRequestDuration records the latency of one HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementProjectWrite counts a persisted project write.
func IncrementProjectWrite(operation string) {
	ProjectWrites.WithLabelValues(operation).Inc()
}

// IncrementIDAllocationRetry counts a retried id allocation.
func IncrementIDAllocationRetry() {
	IDAllocationRetries.Inc()
}

// SetTeamLoadWeight publishes the latest team load weight.
func SetTeamLoadWeight(weight float64) {
	TeamLoadWeight.Set(weight)
}
