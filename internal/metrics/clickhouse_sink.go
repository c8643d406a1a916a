package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseSinkRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_sink",
		Name:      "operations_total",
		Help:      "Count of analytics sink operations.",
	}, []string{"operation", "network", "status"})
	clickhouseSinkRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_sink",
		Name:      "operation_duration_seconds",
		Help:      "Duration of analytics sink operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "network", "status"})
)

// ClickhouseSink tracks metrics for ClickHouse analytics writes.
type ClickhouseSink struct {
	network string
}

// NewClickhouseSink creates a ClickhouseSink metrics collector.
func NewClickhouseSink(network string) *ClickhouseSink {
	return &ClickhouseSink{network: orUnknown(network)}
}

// Observe records duration and status of a sink operation.
func (m ClickhouseSink) Observe(operation string, err error, started time.Time) {
	s := status(err)
	clickhouseSinkRequestsTotal.WithLabelValues(operation, m.network, s).Inc()
	clickhouseSinkRequestDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}
