package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_indexer",
		Name:      "blocks_total",
		Help:      "Count of blocks applied or reverted.",
	}, []string{"network", "operation", "status"})

	indexerBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_indexer",
		Name:      "block_duration_seconds",
		Help:      "Duration of applying or reverting one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "operation", "status"})

	indexerBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_indexer",
		Name:      "block_transactions",
		Help:      "Number of transactions per indexed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"network"})

	indexerIndexedHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "block_indexer",
		Name:      "indexed_height",
		Help:      "Height of the last indexed block.",
	}, []string{"network"})

	indexerMissingHeights = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_indexer",
		Name:      "missing_heights_total",
		Help:      "Count of missing heights scheduled by the gap filler.",
	}, []string{"network"})

	indexerReorgs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_indexer",
		Name:      "reorgs_total",
		Help:      "Count of stored blocks found replaced on the node.",
	}, []string{"network"})
)

// BlockIndexer tracks metrics for block application and reversal.
type BlockIndexer struct {
	network string
}

// NewBlockIndexer constructs a BlockIndexer with defaults.
func NewBlockIndexer(network string) *BlockIndexer {
	return &BlockIndexer{network: orUnknown(network)}
}

// ObserveApply records one block application.
func (m BlockIndexer) ObserveApply(err error, height uint64, transactions int, started time.Time) {
	s := status(err)
	indexerBlocksTotal.WithLabelValues(m.network, "apply", s).Inc()
	indexerBlockDuration.WithLabelValues(m.network, "apply", s).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	indexerBlockTransactions.WithLabelValues(m.network).Observe(float64(transactions))
	indexerIndexedHeight.WithLabelValues(m.network).Set(float64(height))
}

// ObserveRevert records one block reversal.
func (m BlockIndexer) ObserveRevert(err error, started time.Time) {
	s := status(err)
	indexerBlocksTotal.WithLabelValues(m.network, "revert", s).Inc()
	indexerBlockDuration.WithLabelValues(m.network, "revert", s).Observe(time.Since(started).Seconds())
}

// ObserveMissing records heights scheduled by the gap filler.
func (m BlockIndexer) ObserveMissing(heights int) {
	indexerMissingHeights.WithLabelValues(m.network).Add(float64(heights))
}

// ObserveReorg records a stored block found replaced on the node.
func (m BlockIndexer) ObserveReorg() {
	indexerReorgs.WithLabelValues(m.network).Inc()
}
