package indexer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/repository"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
	"github.com/goodnatureofminers/blockinsight7000-lisk/pkg/safe"
)

const (
	DefaultGapInterval = time.Minute
	DefaultGapLimit    = 1000
)

// GapFiller periodically finds heights between genesis and the node's tip that are not
// stored and queues them for indexing.
type GapFiller struct {
	db       storage.Executor
	node     Node
	chain    Chain
	queue    HeightQueue
	finality Finality
	metrics  Metrics
	logger   *zap.Logger
	interval time.Duration
	limit    int
}

// NewGapFiller constructs a GapFiller queueing at most limit heights per cycle.
func NewGapFiller(
	db storage.Executor,
	node Node,
	chain Chain,
	queue HeightQueue,
	finality Finality,
	metrics Metrics,
	interval time.Duration,
	limit int,
	logger *zap.Logger,
) *GapFiller {
	if interval <= 0 {
		interval = DefaultGapInterval
	}
	if limit <= 0 {
		limit = DefaultGapLimit
	}
	return &GapFiller{
		db:       db,
		node:     node,
		chain:    chain,
		queue:    queue,
		finality: finality,
		metrics:  metrics,
		logger:   logger.Named("gap_filler"),
		interval: interval,
		limit:    limit,
	}
}

// Run fills gaps every interval until ctx is canceled.
func (g *GapFiller) Run(ctx context.Context) error {
	return clock.Repeat(ctx, g.interval, func(ctx context.Context) error {
		_, err := g.Fill(ctx)
		return err
	}, func(err error) {
		g.logger.Warn("gap fill failed", zap.Error(err), zap.Duration("sleep", g.interval))
	})
}

// Fill queues one bounded batch of missing heights and returns how many were queued.
func (g *GapFiller) Fill(ctx context.Context) (int, error) {
	info, err := g.node.GetNodeInfo(ctx)
	if err != nil {
		return 0, err
	}
	g.finality.SetFinalizedHeight(info.FinalizedHeight)

	constants, err := g.chain.Constants(ctx)
	if err != nil {
		return 0, err
	}

	missing, err := MissingHeights(ctx, g.db, constants.GenesisHeight, info.Height, g.limit)
	if err != nil {
		return 0, fmt.Errorf("find missing heights: %w", err)
	}

	queued := 0
	for _, h := range missing {
		ok, err := g.queue.Submit(ctx, "height:"+strconv.FormatUint(h, 10), h)
		if err != nil {
			return queued, fmt.Errorf("queue height %d: %w", h, err)
		}
		if ok {
			queued++
		}
	}

	g.metrics.ObserveMissing(queued)
	if len(missing) > 0 {
		g.logger.Info("missing heights queued",
			zap.Int("missing", len(missing)),
			zap.Int("queued", queued),
			zap.Uint64("first", missing[0]),
			zap.Uint64("tip", info.Height),
		)
	}
	return queued, nil
}

// MissingHeights returns up to limit heights in [from, to] with no stored block, lowest
// first. Ranges are bisected on their stored block count, so fully indexed ranges cost one
// count query.
func MissingHeights(ctx context.Context, db storage.Executor, from, to uint64, limit int) ([]uint64, error) {
	var missing []uint64

	var walk func(lo, hi uint64) error
	walk = func(lo, hi uint64) error {
		if lo > hi || len(missing) >= limit {
			return nil
		}
		count, err := repository.CountBlocks(ctx, db, lo, hi)
		if err != nil {
			return err
		}
		stored, err := safe.Uint64(count)
		if err != nil {
			return err
		}

		switch size := hi - lo + 1; {
		case stored >= size:
			return nil
		case stored == 0:
			for h := lo; len(missing) < limit; h++ {
				missing = append(missing, h)
				if h == hi {
					break
				}
			}
			return nil
		}

		mid := lo + (hi-lo)/2
		if err := walk(lo, mid); err != nil {
			return err
		}
		return walk(mid+1, hi)
	}

	if err := walk(from, to); err != nil {
		return nil, err
	}
	return missing, nil
}
