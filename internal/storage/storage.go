// Package storage defines the transactional relational store contract used by the indexer.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by FindOne when no row matches.
	ErrNotFound = errors.New("not found")
)

type (
	// Def describes a table: its name, primary key and column order.
	Def struct {
		Name       string
		PrimaryKey []string
		Columns    []string
	}

	// ScanFunc copies the current row into dest, one pointer per column of the table definition.
	ScanFunc func(dest ...any) error

	// Executor runs table operations either in autocommit mode or inside a transaction.
	Executor interface {
		// Upsert inserts rows and merges on primary key conflict. Only updateColumns are
		// overwritten on conflict; all non key columns are overwritten when none are given.
		Upsert(ctx context.Context, def Def, rows [][]any, updateColumns []string) (int64, error)
		// Find calls each once per matching row.
		Find(ctx context.Context, def Def, q Query, each func(scan ScanFunc) error) error
		Count(ctx context.Context, def Def, q Query) (int64, error)
		Delete(ctx context.Context, def Def, q Query) (int64, error)
		// Lock waits for the exclusive lock named by key and holds it until the surrounding
		// transaction ends. Outside a transaction the lock is released right away.
		Lock(ctx context.Context, key int64) error
	}

	// Store is an Executor that can also scope work to a single transaction.
	Store interface {
		Executor
		// WithTransaction runs fn in one transaction. The transaction commits when fn returns nil
		// and rolls back otherwise; no partial state is ever visible to other executors.
		WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Executor) error) error
		Close()
	}
)

// Column returns the index of column in the definition, or -1.
func (d Def) Column(column string) int {
	for i, c := range d.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// IsPrimaryKey reports whether column belongs to the primary key.
func (d Def) IsPrimaryKey(column string) bool {
	for _, c := range d.PrimaryKey {
		if c == column {
			return true
		}
	}
	return false
}

// UpdateColumns returns the columns overwritten on conflict for the requested set.
func (d Def) UpdateColumns(requested []string) []string {
	if len(requested) > 0 {
		return requested
	}
	cols := make([]string, 0, len(d.Columns))
	for _, c := range d.Columns {
		if !d.IsPrimaryKey(c) {
			cols = append(cols, c)
		}
	}
	return cols
}
