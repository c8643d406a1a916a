// Package indexer applies and reverts whole blocks against the relational store. Every
// block is written in exactly one storage transaction together with the derived state its
// transactions produce.
package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/processor"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/repository"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

// blockWriteLock serializes every block apply and revert across workers and processes.
const blockWriteLock int64 = 0x6c69736b

// Indexer is safe for concurrent use. Block transactions take blockWriteLock first, so one
// block is written at a time.
type Indexer struct {
	store    storage.Store
	node     Node
	handlers Handlers
	env      *processor.Env
	metrics  Metrics
	logger   *zap.Logger

	finalized atomic.Uint64
}

// New constructs an Indexer. env is handed to every transaction handler.
func New(store storage.Store, node Node, handlers Handlers, env *processor.Env, metrics Metrics, logger *zap.Logger) *Indexer {
	return &Indexer{
		store:    store,
		node:     node,
		handlers: handlers,
		env:      env,
		metrics:  metrics,
		logger:   logger.Named("indexer"),
	}
}

// SetFinalizedHeight records the node's finalized height. Blocks at or below it are stored
// as final.
func (i *Indexer) SetFinalizedHeight(height uint64) {
	for {
		current := i.finalized.Load()
		if height <= current || i.finalized.CompareAndSwap(current, height) {
			return
		}
	}
}

// FinalizedHeight returns the highest finalized height seen so far.
func (i *Indexer) FinalizedHeight() uint64 {
	return i.finalized.Load()
}

// IndexHeight fetches the block at height from the node and indexes it.
func (i *Indexer) IndexHeight(ctx context.Context, height uint64) error {
	block, err := i.node.GetBlockByHeight(ctx, height)
	if err != nil {
		return fmt.Errorf("index height %d: %w", height, err)
	}
	return i.IndexNewBlock(ctx, block)
}

// IndexNewBlock stores block and applies its successful transactions. A different block
// already stored at the same height is reverted first. Indexing the same block twice
// leaves the same state.
func (i *Indexer) IndexNewBlock(ctx context.Context, block model.Block) (err error) {
	header := block.Header
	started := time.Now()
	defer func() {
		i.metrics.ObserveApply(err, header.Height, len(block.Transactions), started)
	}()

	if len(block.Events) == 0 {
		events, err := i.node.GetEvents(ctx, header.Height)
		if err != nil {
			return fmt.Errorf("index block height %d: %w", header.Height, err)
		}
		block.Events = events
	}
	prepare(&block)

	err = i.store.WithTransaction(ctx, func(ctx context.Context, db storage.Executor) error {
		if err := db.Lock(ctx, blockWriteLock); err != nil {
			return err
		}
		existing, found, err := repository.BlockAtHeight(ctx, db, header.Height)
		if err != nil {
			return err
		}
		if found && existing.ID != header.ID {
			i.metrics.ObserveReorg()
			i.logger.Warn("replacing block missed by a reorg",
				zap.Uint64("height", header.Height),
				zap.String("stored_id", existing.ID),
				zap.String("block_id", header.ID),
			)
			if err := i.revert(ctx, db, existing); err != nil {
				return err
			}
		}
		return i.apply(ctx, db, block)
	})
	if err != nil {
		return fmt.Errorf("index block height %d: %w", header.Height, err)
	}

	i.logger.Debug("block indexed",
		zap.Uint64("height", header.Height),
		zap.String("block_id", header.ID),
		zap.Int("transactions", len(block.Transactions)),
	)
	return nil
}

// ScheduleBlockDeletion reverts and removes the stored block identified by header. A block
// that is not stored is ignored, so redelivered deletions are harmless.
func (i *Indexer) ScheduleBlockDeletion(ctx context.Context, header model.BlockHeader) error {
	err := i.store.WithTransaction(ctx, func(ctx context.Context, db storage.Executor) error {
		if err := db.Lock(ctx, blockWriteLock); err != nil {
			return err
		}
		row, found, err := repository.BlockByID(ctx, db, header.ID)
		if err != nil {
			return err
		}
		if !found {
			i.logger.Debug("deleted block not stored", zap.Uint64("height", header.Height), zap.String("block_id", header.ID))
			return nil
		}
		return i.revert(ctx, db, row)
	})
	if err != nil {
		return fmt.Errorf("delete block height %d: %w", header.Height, err)
	}
	return nil
}

func (i *Indexer) apply(ctx context.Context, db storage.Executor, block model.Block) error {
	header := block.Header
	for n := range block.Transactions {
		tx := &block.Transactions[n]
		i.env.Accounts.MarkPublicKey(tx.SenderPublicKey)
		if tx.ExecutionStatus != model.ExecutionSuccess {
			continue
		}
		handler, ok := i.handlers.Lookup(tx.Module, tx.Command)
		if !ok {
			continue
		}
		in := processor.Input{Header: header, Tx: tx, Events: model.TransactionEvents(block.Events, tx.ID), DB: db}
		if err := handler.Apply(ctx, i.env, in); err != nil {
			return fmt.Errorf("apply %s tx %s: %w", tx.ModuleCommand(), tx.ID, err)
		}
	}

	if _, err := repository.Transactions.Upsert(ctx, db, block.Transactions); err != nil {
		return err
	}
	if _, err := repository.Events.Upsert(ctx, db, block.Events); err != nil {
		return err
	}
	row := block.Row(header.Height <= i.finalized.Load())
	if _, err := repository.Blocks.Upsert(ctx, db, []model.BlockRow{row}); err != nil {
		return err
	}
	i.env.Accounts.MarkAddress(header.GeneratorAddress)
	return nil
}

func (i *Indexer) revert(ctx context.Context, db storage.Executor, row model.BlockRow) (err error) {
	started := time.Now()
	defer func() {
		i.metrics.ObserveRevert(err, started)
	}()

	txs, err := repository.BlockTransactions(ctx, db, row.ID)
	if err != nil {
		return err
	}
	events, err := repository.BlockEvents(ctx, db, row.ID)
	if err != nil {
		return err
	}

	header := row.Header()
	for n := len(txs) - 1; n >= 0; n-- {
		tx := &txs[n]
		i.env.Accounts.MarkPublicKey(tx.SenderPublicKey)
		if tx.ExecutionStatus != model.ExecutionSuccess {
			continue
		}
		handler, ok := i.handlers.Lookup(tx.Module, tx.Command)
		if !ok {
			continue
		}
		in := processor.Input{Header: header, Tx: tx, Events: model.TransactionEvents(events, tx.ID), DB: db}
		if err := handler.Revert(ctx, i.env, in); err != nil {
			return fmt.Errorf("revert %s tx %s: %w", tx.ModuleCommand(), tx.ID, err)
		}
	}

	if err := repository.DeleteBlock(ctx, db, row.ID); err != nil {
		return err
	}
	i.env.Accounts.MarkAddress(row.GeneratorAddress)
	i.logger.Info("block reverted", zap.Uint64("height", row.Height), zap.String("block_id", row.ID))
	return nil
}

type executionResultJSON struct {
	Success bool `json:"success"`
}

// prepare stamps block coordinates on transactions and events and derives execution
// statuses from the commandExecutionResult events.
func prepare(block *model.Block) {
	header := block.Header
	statuses := make(map[string]model.ExecutionStatus, len(block.Transactions))
	for n := range block.Events {
		e := &block.Events[n]
		e.BlockID = header.ID
		e.Height = header.Height
		if e.Name != model.EventCommandExecutionResult || len(e.Topics) == 0 {
			continue
		}
		var res executionResultJSON
		if err := json.Unmarshal(e.Data, &res); err == nil && res.Success {
			statuses[e.Topics[0]] = model.ExecutionSuccess
		} else {
			statuses[e.Topics[0]] = model.ExecutionFail
		}
	}

	for n := range block.Transactions {
		tx := &block.Transactions[n]
		tx.BlockID = header.ID
		tx.Height = header.Height
		tx.Timestamp = header.Timestamp
		tx.ExecutionStatus = model.ExecutionPending
		if s, ok := statuses[tx.ID]; ok {
			tx.ExecutionStatus = s
		}
	}
}
