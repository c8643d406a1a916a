package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "network", "status"})
	nodeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	nodeReconnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "reconnects_total",
		Help:      "Count of node websocket reconnect attempts.",
	}, []string{"network", "status"})
)

// NodeClient tracks metrics for RPC calls to the node.
type NodeClient struct {
	network string
}

// NewNodeClient constructs a metrics collector for node RPC calls.
func NewNodeClient(network string) *NodeClient {
	return &NodeClient{network: orUnknown(network)}
}

// Observe records a single RPC call outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	nodeRequestsTotal.WithLabelValues(operation, m.network, s).Inc()
	nodeRequestDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveReconnect records a websocket reconnect attempt.
func (m NodeClient) ObserveReconnect(err error) {
	nodeReconnectsTotal.WithLabelValues(m.network, status(err)).Inc()
}
