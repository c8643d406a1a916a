package repository

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

// BlockAtHeight returns the stored block at height and whether one exists.
func BlockAtHeight(ctx context.Context, ex storage.Executor, height uint64) (model.BlockRow, bool, error) {
	return findOptional(Blocks.FindOne(ctx, ex, storage.Where(storage.Eq("height", height))))
}

// BlockByID returns the stored block with id and whether one exists.
func BlockByID(ctx context.Context, ex storage.Executor, id string) (model.BlockRow, bool, error) {
	return findOptional(Blocks.FindOne(ctx, ex, storage.Where(storage.Eq("id", id))))
}

// LastBlock returns the highest stored block and whether any block is stored.
func LastBlock(ctx context.Context, ex storage.Executor) (model.BlockRow, bool, error) {
	return findOptional(Blocks.FindOne(ctx, ex, storage.All().Desc("height")))
}

// TopBlocks returns up to limit highest stored blocks, highest first.
func TopBlocks(ctx context.Context, ex storage.Executor, limit uint64) ([]model.BlockRow, error) {
	return Blocks.Find(ctx, ex, storage.All().Desc("height").WithLimit(limit))
}

// CountBlocks returns how many blocks are stored in the inclusive height range.
func CountBlocks(ctx context.Context, ex storage.Executor, from, to uint64) (int64, error) {
	return Blocks.Count(ctx, ex, storage.Where(storage.Gte("height", from), storage.Lte("height", to)))
}

// BlockTransactions returns the transactions of a stored block in block order.
func BlockTransactions(ctx context.Context, ex storage.Executor, blockID string) ([]model.Transaction, error) {
	return Transactions.Find(ctx, ex, storage.Where(storage.Eq("block_id", blockID)).Asc("tx_index"))
}

// BlockEvents returns the events of a stored block in emission order.
func BlockEvents(ctx context.Context, ex storage.Executor, blockID string) ([]model.Event, error) {
	return Events.Find(ctx, ex, storage.Where(storage.Eq("block_id", blockID)).Asc("event_index"))
}

// DeleteBlock removes a block with its transactions and events.
func DeleteBlock(ctx context.Context, ex storage.Executor, blockID string) error {
	if _, err := Transactions.Delete(ctx, ex, storage.Where(storage.Eq("block_id", blockID))); err != nil {
		return err
	}
	if _, err := Events.Delete(ctx, ex, storage.Where(storage.Eq("block_id", blockID))); err != nil {
		return err
	}
	if _, err := Blocks.Delete(ctx, ex, storage.Where(storage.Eq("id", blockID))); err != nil {
		return err
	}
	return nil
}

// TransactionByID returns a stored transaction and whether it exists.
func TransactionByID(ctx context.Context, ex storage.Executor, id string) (model.Transaction, bool, error) {
	return findOptional(Transactions.FindOne(ctx, ex, storage.Where(storage.Eq("id", id))))
}

// LatestCommissionChange returns the newest stored commission change of validator.
func LatestCommissionChange(ctx context.Context, ex storage.Executor, validator string) (model.CommissionChange, bool, error) {
	q := storage.Where(storage.Eq("validator_address", validator))
	return findOptional(CommissionChanges.FindOne(ctx, ex, newestFirst(q)))
}

// LatestCommissionChangeBefore returns the newest commission change of validator made by a
// transaction before position (height, txIndex).
func LatestCommissionChangeBefore(ctx context.Context, ex storage.Executor, validator string, height uint64, txIndex uint32) (model.CommissionChange, bool, error) {
	return latestBefore(ctx, ex, CommissionChanges, storage.Eq("validator_address", validator), height, txIndex)
}

// LatestCCUAuditBefore returns the newest cross-chain update of chainID made by a transaction
// before position (height, txIndex).
func LatestCCUAuditBefore(ctx context.Context, ex storage.Executor, chainID string, height uint64, txIndex uint32) (model.CCUAudit, bool, error) {
	return latestBefore(ctx, ex, CCUAudits, storage.Eq("chain_id", chainID), height, txIndex)
}

func newestFirst(q storage.Query) storage.Query {
	return q.Desc("height").Desc("tx_index")
}

// latestBefore looks in the same block first, then below it.
func latestBefore[T any](ctx context.Context, ex storage.Executor, table storage.Table[T], key storage.Cond, height uint64, txIndex uint32) (T, bool, error) {
	row, found, err := findOptional(table.FindOne(ctx, ex, newestFirst(storage.Where(
		key,
		storage.Eq("height", height),
		storage.Lt("tx_index", txIndex),
	))))
	if err != nil || found {
		return row, found, err
	}
	return findOptional(table.FindOne(ctx, ex, newestFirst(storage.Where(
		key,
		storage.Lt("height", height),
	))))
}

// StakeChangesBetween returns every stake change of staker on validator.
func StakeChangesBetween(ctx context.Context, ex storage.Executor, staker, validator string) ([]model.StakeChange, error) {
	return StakeChanges.Find(ctx, ex, storage.Where(
		storage.Eq("staker_address", staker),
		storage.Eq("validator_address", validator),
	))
}

// ValidatorStakes returns all current stakes on validator.
func ValidatorStakes(ctx context.Context, ex storage.Executor, validator string) ([]model.Stake, error) {
	return Stakes.Find(ctx, ex, storage.Where(storage.Eq("validator_address", validator)))
}

// AccountByAddress returns a stored account and whether it exists.
func AccountByAddress(ctx context.Context, ex storage.Executor, address string) (model.Account, bool, error) {
	return findOptional(Accounts.FindOne(ctx, ex, storage.Where(storage.Eq("address", address))))
}

func findOptional[T any](row T, err error) (T, bool, error) {
	if errors.Is(err, storage.ErrNotFound) {
		return row, false, nil
	}
	if err != nil {
		return row, false, err
	}
	return row, true, nil
}
