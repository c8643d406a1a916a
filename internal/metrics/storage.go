package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storageOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "operations_total",
		Help:      "Count of storage gateway operations.",
	}, []string{"backend", "operation", "table", "status"})
	storageOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "operation_duration_seconds",
		Help:      "Duration of storage gateway operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"backend", "operation", "table", "status"})
)

// Storage tracks metrics for storage gateway operations.
type Storage struct {
	backend string
}

// NewStorage creates a Storage metrics collector for the given backend.
func NewStorage(backend string) *Storage {
	return &Storage{backend: orUnknown(backend)}
}

// Observe records duration and status of a storage operation.
func (m Storage) Observe(operation, table string, err error, started time.Time) {
	table = orUnknown(table)
	s := status(err)
	storageOperationsTotal.WithLabelValues(m.backend, operation, table, s).Inc()
	storageOperationDuration.WithLabelValues(m.backend, operation, table, s).Observe(time.Since(started).Seconds())
}
