// Package postgres implements the storage contract on PostgreSQL using pgx and squirrel.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

var _ storage.Store = (*Store)(nil)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is a storage.Store backed by a pgx connection pool.
type Store struct {
	executor
	pool *pgxpool.Pool
}

// NewStore connects to PostgreSQL and verifies the connection.
func NewStore(ctx context.Context, dsn string, maxConns int32, metrics Metrics) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	cfg.MaxConnLifetime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Store{
		executor: executor{q: pool, metrics: metrics},
		pool:     pool,
	}, nil
}

// WithTransaction runs fn inside a read committed transaction.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx storage.Executor) error) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("transaction", "", err, started)
	}()

	return pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(ctx, &executor{q: tx, metrics: s.metrics})
	})
}

// Close closes the pool.
func (s *Store) Close() {
	s.pool.Close()
}

type executor struct {
	q       querier
	metrics Metrics
}

func (e *executor) Upsert(ctx context.Context, def storage.Def, rows [][]any, updateColumns []string) (affected int64, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("upsert", def.Name, err, started)
	}()

	for _, chunk := range chunkRows(rows, len(def.Columns)) {
		query, args, err := upsertSQL(def, chunk, updateColumns)
		if err != nil {
			return 0, err
		}
		tag, err := e.q.Exec(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("exec upsert: %w", err)
		}
		affected += tag.RowsAffected()
	}
	return affected, nil
}

func (e *executor) Find(ctx context.Context, def storage.Def, q storage.Query, each func(scan storage.ScanFunc) error) (err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("find", def.Name, err, started)
	}()

	query, args, err := selectSQL(def, q)
	if err != nil {
		return err
	}
	rows, err := e.q.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err = each(rows.Scan); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterate rows: %w", err)
	}
	return nil
}

func (e *executor) Count(ctx context.Context, def storage.Def, q storage.Query) (n int64, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("count", def.Name, err, started)
	}()

	query, args, err := countSQL(def, q)
	if err != nil {
		return 0, err
	}
	if err = e.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("query count: %w", err)
	}
	return n, nil
}

func (e *executor) Delete(ctx context.Context, def storage.Def, q storage.Query) (n int64, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("delete", def.Name, err, started)
	}()

	query, args, err := deleteSQL(def, q)
	if err != nil {
		return 0, err
	}
	tag, err := e.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (e *executor) Lock(ctx context.Context, key int64) (err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("lock", "", err, started)
	}()

	if _, err = e.q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
		return fmt.Errorf("advisory lock %d: %w", key, err)
	}
	return nil
}
