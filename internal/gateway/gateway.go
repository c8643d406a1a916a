// Package gateway turns node notifications and internally scheduled work into jobs. Each job
// category has its own worker pool so a slow category never holds up another.
package gateway

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/node"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/processor"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/signal"
	"github.com/goodnatureofminers/blockinsight7000-lisk/pkg/workerpool"
)

const (
	PoolNewBlock      = "new_block"
	PoolMissingHeight = "missing_height"
	PoolDeleteBlock   = "delete_block"
	PoolNewRound      = "new_round"

	DefaultInboxSize      = 1024
	DefaultStatusInterval = time.Minute
)

// Config tunes a Gateway. Zero values fall back to the package defaults.
type Config struct {
	NewBlock       workerpool.Config
	MissingHeight  workerpool.Config
	DeleteBlock    workerpool.Config
	NewRound       workerpool.Config
	InboxSize      int
	StatusInterval time.Duration
}

type runner interface {
	Run(ctx context.Context) error
}

type reporter interface {
	Name() string
	Stats() workerpool.Stats
}

// Gateway dispatches node notifications to the job pools and runs them.
type Gateway struct {
	cfg     Config
	indexer Indexer
	node    Node
	state   State
	emitter Emitter
	metrics Metrics
	logger  *zap.Logger

	inbox chan node.Notification

	newBlocks BlockQueue
	heights   HeightQueue
	deletions BlockQueue
	rounds    RoundQueue

	runners   []runner
	reporters []reporter
}

// New constructs a Gateway and its four job pools.
func New(
	cfg Config,
	indexer Indexer,
	client Node,
	state State,
	emitter Emitter,
	metrics Metrics,
	jobMetrics func(pool string) workerpool.Metrics,
	logger *zap.Logger,
) *Gateway {
	if cfg.InboxSize <= 0 {
		cfg.InboxSize = DefaultInboxSize
	}
	if cfg.StatusInterval <= 0 {
		cfg.StatusInterval = DefaultStatusInterval
	}
	logger = logger.Named("gateway")

	g := &Gateway{
		cfg:     cfg,
		indexer: indexer,
		node:    client,
		state:   state,
		emitter: emitter,
		metrics: metrics,
		logger:  logger,
		inbox:   make(chan node.Notification, cfg.InboxSize),
	}

	cfg.NewBlock.Name = PoolNewBlock
	newBlocks := workerpool.New(cfg.NewBlock, g.HandleNewBlock, jobMetrics(PoolNewBlock), logger)

	cfg.MissingHeight.Name = PoolMissingHeight
	heights := workerpool.New(cfg.MissingHeight, g.HandleMissingHeight, jobMetrics(PoolMissingHeight), logger)

	cfg.DeleteBlock.Name = PoolDeleteBlock
	deletions := workerpool.New(cfg.DeleteBlock, g.HandleDeleteBlock, jobMetrics(PoolDeleteBlock), logger)
	deletions.OnFailure(g.deletionFailed)

	cfg.NewRound.Name = PoolNewRound
	cfg.NewRound.Attempts = 1
	rounds := workerpool.New(cfg.NewRound, g.HandleNewRound, jobMetrics(PoolNewRound), logger)

	g.newBlocks, g.heights, g.deletions, g.rounds = newBlocks, heights, deletions, rounds
	g.runners = []runner{newBlocks, heights, deletions, rounds}
	g.reporters = []reporter{newBlocks, heights, deletions, rounds}
	return g
}

// HeightQueue accepts missing height jobs.
func (g *Gateway) HeightQueue() HeightQueue {
	return g.heights
}

// DeleteQueue accepts block deletion jobs.
func (g *Gateway) DeleteQueue() BlockQueue {
	return g.deletions
}

// Notify hands a node notification to the dispatcher. It never blocks: when the inbox is full
// the notification is dropped and left to the gap filler and the tip reconciler.
func (g *Gateway) Notify(n node.Notification) {
	select {
	case g.inbox <- n:
		g.metrics.ObserveNotification(n.Topic, true)
	default:
		g.metrics.ObserveNotification(n.Topic, false)
		g.logger.Warn("notification dropped, inbox full", zap.String("topic", n.Topic))
	}
}

// Run starts the pools, the dispatcher and the status reporter and blocks until ctx is canceled.
func (g *Gateway) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, r := range g.runners {
		eg.Go(func() error {
			return r.Run(ctx)
		})
	}

	eg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case n := <-g.inbox:
				if err := g.Dispatch(ctx, n); err != nil && ctx.Err() == nil {
					g.logger.Warn("notification not queued", zap.String("topic", n.Topic), zap.Error(err))
				}
			}
		}
	})

	eg.Go(func() error {
		err := clock.Repeat(ctx, g.cfg.StatusInterval, func(context.Context) error {
			g.ReportStatus()
			return nil
		}, nil)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.logger.Info("gateway started")
	return eg.Wait()
}

// Dispatch queues the job a notification asks for. Unknown topics are ignored.
func (g *Gateway) Dispatch(ctx context.Context, n node.Notification) error {
	switch n.Topic {
	case node.TopicNewBlock:
		header, err := node.DecodeBlockHeader(n.Params)
		if err != nil {
			g.logger.Warn("malformed new block notification", zap.Error(err))
			return nil
		}
		_, err = g.newBlocks.Submit(ctx, "block:"+header.ID, header)
		return err
	case node.TopicDeleteBlock:
		header, err := node.DecodeBlockHeader(n.Params)
		if err != nil {
			g.logger.Warn("malformed delete block notification", zap.Error(err))
			return nil
		}
		_, err = g.deletions.Submit(ctx, "delete:"+header.ID, header)
		return err
	case node.TopicValidatorsChanged:
		_, err := g.rounds.Submit(ctx, "round", struct{}{})
		return err
	default:
		g.logger.Debug("notification ignored", zap.String("topic", n.Topic))
		return nil
	}
}

// HandleNewBlock fetches the announced block and indexes it.
func (g *Gateway) HandleNewBlock(ctx context.Context, header model.BlockHeader) error {
	block, err := g.node.GetBlockByID(ctx, header.ID)
	if err != nil {
		return err
	}
	if err := g.indexer.IndexNewBlock(ctx, block); err != nil {
		return classify(err)
	}

	g.state.SetLastIndexedBlock(block.Header)
	g.emitter.Emit(signal.Signal{Name: signal.NewBlock, Block: block, Header: block.Header})
	return nil
}

// HandleMissingHeight indexes the block the node has at height.
func (g *Gateway) HandleMissingHeight(ctx context.Context, height uint64) error {
	return classify(g.indexer.IndexHeight(ctx, height))
}

// HandleDeleteBlock reverts a block the node dropped.
func (g *Gateway) HandleDeleteBlock(ctx context.Context, header model.BlockHeader) error {
	if err := g.indexer.ScheduleBlockDeletion(ctx, header); err != nil {
		return classify(err)
	}

	g.state.RewindLastIndexedBlock(header)
	g.emitter.Emit(signal.Signal{Name: signal.DeleteBlock, Header: header})
	return nil
}

// HandleNewRound reloads the generator list. Failures are logged and never retried.
func (g *Gateway) HandleNewRound(ctx context.Context, _ struct{}) error {
	if err := g.state.ReloadGenerators(ctx); err != nil {
		g.logger.Warn("generators not reloaded", zap.Error(err))
	}
	g.emitter.Emit(signal.Signal{Name: signal.NewRound})
	return nil
}

// ReportStatus logs the counters of every pool.
func (g *Gateway) ReportStatus() {
	for _, r := range g.reporters {
		s := r.Stats()
		g.logger.Info("job queue status",
			zap.String("queue", r.Name()),
			zap.Int64("pending", s.Pending),
			zap.Int64("active", s.Active),
			zap.Int64("completed", s.Completed),
			zap.Int64("failed", s.Failed),
		)
	}
}

func (g *Gateway) deletionFailed(header model.BlockHeader, err error) {
	g.logger.Error("block deletion abandoned, index out of sync with node",
		zap.Uint64("height", header.Height),
		zap.String("block_id", header.ID),
		zap.Error(err),
	)
}

func classify(err error) error {
	if errors.Is(err, processor.ErrInvalidParams) {
		return workerpool.Permanent(err)
	}
	return err
}
