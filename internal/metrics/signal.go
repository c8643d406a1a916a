package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var signalDeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "signal",
	Name:      "deliveries_total",
	Help:      "Count of signal deliveries to subscribers.",
}, []string{"signal", "status"})

// Signal tracks delivered and dropped signals.
type Signal struct{}

// NewSignal constructs a Signal collector.
func NewSignal() *Signal {
	return &Signal{}
}

// ObserveDelivery records a delivery to one subscriber.
func (m Signal) ObserveDelivery(signal string, delivered bool) {
	s := "delivered"
	if !delivered {
		s = "dropped"
	}
	signalDeliveriesTotal.WithLabelValues(signal, s).Inc()
}
