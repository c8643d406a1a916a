package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobPoolJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "job_pool",
		Name:      "jobs_total",
		Help:      "Count of finished jobs by outcome.",
	}, []string{"pool", "status"})

	jobPoolAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "job_pool",
		Name:      "attempt_duration_seconds",
		Help:      "Duration of one job attempt.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 300},
	}, []string{"pool", "status"})

	jobPoolPending = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "job_pool",
		Name:      "pending",
		Help:      "Number of queued jobs.",
	}, []string{"pool"})
)

// JobPool tracks metrics for one job pool.
type JobPool struct {
	pool string
}

// NewJobPool constructs a JobPool collector for the named pool.
func NewJobPool(pool string) *JobPool {
	return &JobPool{pool: orUnknown(pool)}
}

// ObserveAttempt records one job attempt.
func (m JobPool) ObserveAttempt(err error, started time.Time) {
	jobPoolAttemptDuration.WithLabelValues(m.pool, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveJob records a finished job. Failed jobs exhausted their attempt budget.
func (m JobPool) ObserveJob(err error) {
	s := "completed"
	if err != nil {
		s = "failed"
	}
	jobPoolJobsTotal.WithLabelValues(m.pool, s).Inc()
}

// SetPending records the queue length.
func (m JobPool) SetPending(n int64) {
	jobPoolPending.WithLabelValues(m.pool).Set(float64(n))
}
