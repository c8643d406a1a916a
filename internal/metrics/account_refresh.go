package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	accountRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "account_refresh",
		Name:      "refresh_total",
		Help:      "Count of account refreshes.",
	}, []string{"kind", "status"})

	accountRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "account_refresh",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of refreshing one account.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	accountDirtySize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "account_refresh",
		Name:      "dirty_size",
		Help:      "Number of identifiers waiting for refresh.",
	}, []string{"kind"})

	accountDirectRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "account_refresh",
		Name:      "direct_rows_total",
		Help:      "Count of account rows written without a node lookup.",
	}, []string{"status"})
)

// AccountRefresh tracks metrics for the account dirty sets and their refresh workers.
type AccountRefresh struct{}

// NewAccountRefresh constructs an AccountRefresh collector.
func NewAccountRefresh() *AccountRefresh {
	return &AccountRefresh{}
}

// ObserveRefresh records one account refresh.
func (m AccountRefresh) ObserveRefresh(kind string, err error, started time.Time) {
	s := status(err)
	kind = orUnknown(kind)
	accountRefreshTotal.WithLabelValues(kind, s).Inc()
	accountRefreshDuration.WithLabelValues(kind, s).Observe(time.Since(started).Seconds())
}

// SetDirty records the size of a dirty set.
func (m AccountRefresh) SetDirty(kind string, n int) {
	accountDirtySize.WithLabelValues(orUnknown(kind)).Set(float64(n))
}

// ObserveDirect records a flushed batch of direct account updates.
func (m AccountRefresh) ObserveDirect(err error, rows int) {
	accountDirectRows.WithLabelValues(status(err)).Add(float64(rows))
}
