// Package account keeps the accounts table eventually consistent with the node. Block
// processing marks identifiers dirty; a periodic drain refreshes them through per kind job
// queues, one node lookup and one row per identifier.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/repository"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
	"github.com/goodnatureofminers/blockinsight7000-lisk/pkg/batcher"
	"github.com/goodnatureofminers/blockinsight7000-lisk/pkg/workerpool"
)

const (
	DefaultInterval            = 10 * time.Second
	DefaultBatchSize           = 64
	DefaultDirectFlushSize     = 500
	DefaultDirectFlushInterval = time.Second
)

// refreshColumns are overwritten by an address refresh. The public key is left alone so a
// key learned earlier is never cleared.
var refreshColumns = []string{"nonce", "token_id", "available_balance", "locked_balance", "updated_at"}

var kinds = []model.IdentifierKind{model.ByAddress, model.ByPublicKey}

// Config tunes a Refresher. Zero values fall back to the package defaults.
type Config struct {
	Interval            time.Duration
	BatchSize           int
	Jobs                workerpool.Config
	DirectFlushSize     int
	DirectFlushInterval time.Duration
	// DirectFlushRPS bounds direct update flushes per second, zero for unlimited.
	DirectFlushRPS int
}

type runner interface {
	Run(ctx context.Context) error
}

// Refresher owns the dirty sets and the refresh queues.
type Refresher struct {
	cfg       Config
	node      Node
	db        storage.Executor
	chain     Chain
	addresses AddressDeriver
	metrics   Metrics
	logger    *zap.Logger
	now       func() time.Time

	dirty   map[model.IdentifierKind]*DirtySet
	queues  map[model.IdentifierKind]Queue
	runners []runner
	direct  *batcher.Batcher[model.Account]
}

// New constructs a Refresher with one single worker queue per identifier kind.
func New(
	cfg Config,
	node Node,
	db storage.Executor,
	chain Chain,
	addresses AddressDeriver,
	metrics Metrics,
	jobMetrics func(pool string) workerpool.Metrics,
	logger *zap.Logger,
) *Refresher {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.DirectFlushSize <= 0 {
		cfg.DirectFlushSize = DefaultDirectFlushSize
	}
	if cfg.DirectFlushInterval <= 0 {
		cfg.DirectFlushInterval = DefaultDirectFlushInterval
	}
	logger = logger.Named("account_refresh")

	r := &Refresher{
		cfg:       cfg,
		node:      node,
		db:        db,
		chain:     chain,
		addresses: addresses,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
		dirty:     make(map[model.IdentifierKind]*DirtySet, len(kinds)),
		queues:    make(map[model.IdentifierKind]Queue, len(kinds)),
	}

	handlers := map[model.IdentifierKind]workerpool.Handler[string]{
		model.ByAddress:   r.RefreshAddress,
		model.ByPublicKey: r.RefreshPublicKey,
	}
	for _, kind := range kinds {
		jobs := cfg.Jobs
		jobs.Name = "account_refresh_by_" + string(kind)
		jobs.Workers = 1
		pool := workerpool.New(jobs, handlers[kind], jobMetrics(jobs.Name), logger)

		r.dirty[kind] = NewDirtySet()
		r.queues[kind] = pool
		r.runners = append(r.runners, pool)
	}
	r.direct = batcher.New(batcher.Config{
		Size:     cfg.DirectFlushSize,
		Interval: cfg.DirectFlushInterval,
		RPS:      cfg.DirectFlushRPS,
	}, r.flushDirect, logger.Named("direct"))
	return r
}

// MarkAddress schedules a refresh of address.
func (r *Refresher) MarkAddress(address string) {
	r.mark(model.ByAddress, address)
}

// MarkPublicKey schedules a refresh of the account owning publicKey.
func (r *Refresher) MarkPublicKey(publicKey string) {
	r.mark(model.ByPublicKey, publicKey)
}

func (r *Refresher) mark(kind model.IdentifierKind, id string) {
	set := r.dirty[kind]
	if set.Add(id) {
		r.metrics.SetDirty(string(kind), set.Len())
	}
}

// Run drives the refresh queues, the direct update batcher and the periodic drain until ctx
// is canceled.
func (r *Refresher) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range r.runners {
		g.Go(func() error {
			return p.Run(ctx)
		})
	}

	g.Go(func() error {
		return r.direct.Run(ctx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(r.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := r.TriggerRefresh(ctx); err != nil && ctx.Err() == nil {
					r.logger.Warn("refresh not scheduled", zap.Error(err))
				}
			}
		}
	})

	r.logger.Info("account refresher started", zap.Duration("interval", r.cfg.Interval))
	return g.Wait()
}

// TriggerRefresh moves up to BatchSize identifiers of each kind from the dirty set to its
// queue. Identifiers that could not be queued go back to the set.
func (r *Refresher) TriggerRefresh(ctx context.Context) error {
	var result *multierror.Error
	for _, kind := range kinds {
		set := r.dirty[kind]
		ids := set.Pop(r.cfg.BatchSize)
		scheduled := len(ids)
		for i, id := range ids {
			if _, err := r.queues[kind].Submit(ctx, id, id); err != nil {
				for _, rest := range ids[i:] {
					set.Add(rest)
				}
				scheduled = i
				result = multierror.Append(result, fmt.Errorf("queue %s refresh: %w", kind, err))
				break
			}
		}
		r.metrics.SetDirty(string(kind), set.Len())
		if scheduled > 0 {
			r.logger.Debug("refresh scheduled", zap.String("kind", string(kind)), zap.Int("count", scheduled))
		}
	}
	return result.ErrorOrNil()
}

// RefreshAddress reloads one account by address.
func (r *Refresher) RefreshAddress(ctx context.Context, address string) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveRefresh(string(model.ByAddress), err, started)
	}()

	row, err := r.fetch(ctx, address)
	if err != nil {
		return err
	}
	_, err = repository.Accounts.Upsert(ctx, r.db, []model.Account{row}, refreshColumns...)
	return err
}

// RefreshPublicKey reloads the account owning publicKey and records the key.
func (r *Refresher) RefreshPublicKey(ctx context.Context, publicKey string) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveRefresh(string(model.ByPublicKey), err, started)
	}()

	address, err := r.addresses.FromPublicKey(publicKey)
	if err != nil {
		return workerpool.Permanent(fmt.Errorf("refresh public key %s: %w", publicKey, err))
	}
	row, err := r.fetch(ctx, address)
	if err != nil {
		return err
	}
	row.PublicKey = publicKey
	_, err = repository.Accounts.Upsert(ctx, r.db, []model.Account{row})
	return err
}

func (r *Refresher) fetch(ctx context.Context, address string) (model.Account, error) {
	constants, err := r.chain.Constants(ctx)
	if err != nil {
		return model.Account{}, err
	}
	state, err := r.node.GetAccount(ctx, address)
	if err != nil {
		return model.Account{}, fmt.Errorf("get account %s: %w", address, err)
	}
	balance := state.Balance(constants.MainTokenID)
	return model.Account{
		Address:          address,
		Nonce:            state.Nonce,
		TokenID:          balance.TokenID,
		AvailableBalance: balance.AvailableBalance,
		LockedBalance:    balance.LockedBalance,
		UpdatedAt:        r.now().UTC(),
	}, nil
}

// UpdateDirect queues rows that are written without a node lookup.
func (r *Refresher) UpdateDirect(ctx context.Context, rows ...model.Account) error {
	for _, row := range rows {
		if err := r.direct.Add(ctx, row); err != nil {
			return fmt.Errorf("queue account %s: %w", row.Address, err)
		}
	}
	return nil
}

func (r *Refresher) flushDirect(ctx context.Context, rows []model.Account) (err error) {
	defer func() {
		r.metrics.ObserveDirect(err, len(rows))
	}()

	// one statement may not touch a row twice, so the last row per address wins
	var withKey, withoutKey []model.Account
	seen := make(map[string]struct{}, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		if _, ok := seen[row.Address]; ok {
			continue
		}
		seen[row.Address] = struct{}{}
		if row.PublicKey != "" {
			withKey = append(withKey, row)
		} else {
			withoutKey = append(withoutKey, row)
		}
	}

	if _, err := repository.Accounts.Upsert(ctx, r.db, withKey); err != nil {
		return err
	}
	_, err = repository.Accounts.Upsert(ctx, r.db, withoutKey, refreshColumns...)
	return err
}
