package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var gatewayNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "gateway",
	Name:      "notifications_total",
	Help:      "Count of node notifications by topic and outcome.",
}, []string{"topic", "status"})

// Gateway tracks node notifications received by the ingestion gateway.
type Gateway struct{}

// NewGateway constructs a Gateway collector.
func NewGateway() *Gateway {
	return &Gateway{}
}

// ObserveNotification records one notification. Rejected notifications were dropped because
// the inbox was full.
func (m Gateway) ObserveNotification(topic string, accepted bool) {
	s := "accepted"
	if !accepted {
		s = "rejected"
	}
	gatewayNotificationsTotal.WithLabelValues(orUnknown(topic), s).Inc()
}
