// Package clickhouse mirrors indexed blocks and transactions into ClickHouse for analytics.
// Writes are best effort: the primary store stays the source of truth and a failed write is
// only logged and measured.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/signal"
	"github.com/goodnatureofminers/blockinsight7000-lisk/pkg/safe"
)

const DefaultBuffer = 256

const insertBlockQuery = `
INSERT INTO lisk_blocks (
	height,
	id,
	timestamp,
	generator_address,
	tx_count,
	event_count,
	version,
	is_deleted
) VALUES`

const insertTransactionsQuery = `
INSERT INTO lisk_transactions (
	id,
	block_id,
	height,
	timestamp,
	tx_index,
	module,
	command,
	sender_address,
	fee,
	execution_status,
	version,
	is_deleted
) VALUES`

const tombstoneBlockQuery = `
INSERT INTO lisk_blocks
SELECT height, id, timestamp, generator_address, tx_count, event_count, ? AS version, 1 AS is_deleted
FROM lisk_blocks FINAL
WHERE id = ?`

const tombstoneTransactionsQuery = `
INSERT INTO lisk_transactions
SELECT id, block_id, height, timestamp, tx_index, module, command, sender_address, fee, execution_status, ? AS version, 1 AS is_deleted
FROM lisk_transactions FINAL
WHERE block_id = ?`

type conn struct {
	driver.Conn
}

func (c conn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.Conn.PrepareBatch(ctx, query)
}

// Sink writes block signals to ClickHouse.
type Sink struct {
	conn    Conn
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewSink opens a ClickHouse connection for dsn.
func NewSink(dsn string, metrics Metrics, logger *zap.Logger) (*Sink, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	c, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Sink{
		conn:    conn{Conn: c},
		metrics: metrics,
		logger:  logger.Named("clickhouse_sink"),
		now:     time.Now,
	}, nil
}

// Close closes the connection.
func (s *Sink) Close() error {
	return s.conn.Close()
}

// Run writes every newBlock and deleteBlock signal until ctx is canceled.
func (s *Sink) Run(ctx context.Context, signals Signals) error {
	sub := signals.Subscribe(DefaultBuffer, signal.NewBlock, signal.DeleteBlock)
	defer signals.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig, ok := <-sub.C:
			if !ok {
				return nil
			}
			s.Handle(ctx, sig)
		}
	}
}

// Handle writes one signal. Failures are logged.
func (s *Sink) Handle(ctx context.Context, sig signal.Signal) {
	var err error
	switch sig.Name {
	case signal.NewBlock:
		err = s.InsertBlock(ctx, sig.Block)
	case signal.DeleteBlock:
		err = s.DeleteBlock(ctx, sig.Header)
	default:
		return
	}
	if err != nil && ctx.Err() == nil {
		s.logger.Warn("analytics write failed",
			zap.String("signal", string(sig.Name)),
			zap.Uint64("height", sig.Header.Height),
			zap.String("block_id", sig.Header.ID),
			zap.Error(err),
		)
	}
}

// InsertBlock stores the block row and its transaction rows.
func (s *Sink) InsertBlock(ctx context.Context, block model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("insert_block", err, start)
	}()

	version, err := s.version()
	if err != nil {
		return err
	}
	h := block.Header

	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return fmt.Errorf("block %s tx count: %w", h.ID, err)
	}
	eventCount, err := safe.Uint32(len(block.Events))
	if err != nil {
		return fmt.Errorf("block %s event count: %w", h.ID, err)
	}

	// transactions first so a reader never sees a block without its transactions
	if err = s.insertTransactions(ctx, block.Transactions, h, version); err != nil {
		return err
	}

	batch, err := s.conn.PrepareBatch(ctx, insertBlockQuery)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}
	if err = batch.Append(
		h.Height,
		h.ID,
		time.Unix(h.Timestamp, 0).UTC(),
		h.GeneratorAddress,
		txCount,
		eventCount,
		version,
		uint8(0),
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append block: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

func (s *Sink) insertTransactions(ctx context.Context, txs []model.Transaction, h model.BlockHeader, version uint64) error {
	if len(txs) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}
	for _, tx := range txs {
		fee, err := strconv.ParseUint(tx.Fee, 10, 64)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("transaction %s fee: %w", tx.ID, err)
		}
		if err := batch.Append(
			tx.ID,
			h.ID,
			h.Height,
			time.Unix(h.Timestamp, 0).UTC(),
			tx.Index,
			tx.Module,
			tx.Command,
			tx.SenderAddress,
			fee,
			string(tx.ExecutionStatus),
			version,
			uint8(0),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction %s: %w", tx.ID, err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

// DeleteBlock writes tombstones for a deleted block and its transactions.
func (s *Sink) DeleteBlock(ctx context.Context, header model.BlockHeader) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("delete_block", err, start)
	}()

	version, err := s.version()
	if err != nil {
		return err
	}
	if err = s.conn.Exec(ctx, tombstoneTransactionsQuery, version, header.ID); err != nil {
		return fmt.Errorf("tombstone transactions of block %s: %w", header.ID, err)
	}
	if err = s.conn.Exec(ctx, tombstoneBlockQuery, version, header.ID); err != nil {
		return fmt.Errorf("tombstone block %s: %w", header.ID, err)
	}
	return nil
}

func (s *Sink) version() (uint64, error) {
	v, err := safe.Uint64(s.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("row version: %w", err)
	}
	return v, nil
}
