package indexer

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/repository"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
	"github.com/goodnatureofminers/blockinsight7000-lisk/pkg/workerpool"
)

const (
	DefaultTipDepth   = 100
	DefaultTipWorkers = 4
)

// TipReconciler compares the highest stored non final blocks with the node and queues the
// deletion of blocks the node no longer has. It recovers deletions whose notification was
// lost. Matching blocks the node has finalized are flagged final.
type TipReconciler struct {
	db       storage.Executor
	node     Node
	queue    DeleteQueue
	finality Finality
	metrics  Metrics
	logger   *zap.Logger
	interval time.Duration
	depth    uint64
	workers  int
}

// NewTipReconciler constructs a TipReconciler checking the depth highest stored blocks.
func NewTipReconciler(
	db storage.Executor,
	node Node,
	queue DeleteQueue,
	finality Finality,
	metrics Metrics,
	interval time.Duration,
	depth uint64,
	logger *zap.Logger,
) *TipReconciler {
	if interval <= 0 {
		interval = DefaultGapInterval
	}
	if depth == 0 {
		depth = DefaultTipDepth
	}
	return &TipReconciler{
		db:       db,
		node:     node,
		queue:    queue,
		finality: finality,
		metrics:  metrics,
		logger:   logger.Named("tip_reconciler"),
		interval: interval,
		depth:    depth,
		workers:  DefaultTipWorkers,
	}
}

// Run reconciles every interval until ctx is canceled.
func (r *TipReconciler) Run(ctx context.Context) error {
	return clock.Repeat(ctx, r.interval, func(ctx context.Context) error {
		_, err := r.Reconcile(ctx)
		return err
	}, func(err error) {
		r.logger.Warn("tip reconciliation failed", zap.Error(err))
	})
}

// Reconcile queues deletions for stored blocks that differ from the node and returns how many
// were queued.
func (r *TipReconciler) Reconcile(ctx context.Context) (int, error) {
	info, err := r.node.GetNodeInfo(ctx)
	if err != nil {
		return 0, err
	}
	r.finality.SetFinalizedHeight(info.FinalizedHeight)

	top, err := repository.TopBlocks(ctx, r.db, r.depth)
	if err != nil {
		return 0, err
	}
	var pending []model.BlockRow
	for _, row := range top {
		if !row.IsFinal {
			pending = append(pending, row)
		}
	}

	var (
		mu        sync.Mutex
		orphaned  []model.BlockRow
		finalized []model.BlockRow
	)
	err = workerpool.Process(ctx, r.workers, pending, func(ctx context.Context, row model.BlockRow) error {
		if row.Height > info.Height {
			mu.Lock()
			orphaned = append(orphaned, row)
			mu.Unlock()
			return nil
		}
		block, err := r.node.GetBlockByHeight(ctx, row.Height)
		if err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		switch {
		case block.Header.ID != row.ID:
			orphaned = append(orphaned, row)
		case row.Height <= info.FinalizedHeight:
			row.IsFinal = true
			finalized = append(finalized, row)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("compare stored tip: %w", err)
	}

	if _, err := repository.Blocks.Upsert(ctx, r.db, finalized, "is_final"); err != nil {
		return 0, err
	}

	// highest first, the order the node would have deleted them in
	sort.Slice(orphaned, func(a, b int) bool {
		return orphaned[a].Height > orphaned[b].Height
	})
	queued := 0
	for _, row := range orphaned {
		r.metrics.ObserveReorg()
		ok, err := r.queue.Submit(ctx, "delete:"+row.ID, row.Header())
		if err != nil {
			return queued, fmt.Errorf("queue deletion of block %s: %w", row.ID, err)
		}
		if ok {
			queued++
		}
		r.logger.Warn("stored block no longer on node",
			zap.Uint64("height", row.Height),
			zap.String("block_id", row.ID),
		)
	}
	return queued, nil
}
