// Package memory implements the storage contract in process memory. Transactions work on a
// private copy of the committed tables and replace it atomically on commit.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

var _ storage.Store = (*Store)(nil)

type rowSet map[string][]any

// Store is an in-memory storage.Store. Only one transaction runs at a time; reads outside a
// transaction see the last committed state. Code running inside WithTransaction must use the
// executor it was given: writing through the Store itself from there blocks forever.
type Store struct {
	txMu      sync.Mutex
	mu        sync.Mutex
	committed map[string]rowSet
}

// New returns an empty store.
func New() *Store {
	return &Store{committed: map[string]rowSet{}}
}

func (s *Store) snapshot() map[string]rowSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

// WithTransaction runs fn against a copy of the committed tables and publishes the copy when fn succeeds.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx storage.Executor) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := clone(s.snapshot())
	if err := fn(ctx, &executor{tables: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.committed = work
	s.mu.Unlock()
	return nil
}

func (s *Store) Upsert(ctx context.Context, def storage.Def, rows [][]any, updateColumns []string) (n int64, err error) {
	err = s.WithTransaction(ctx, func(ctx context.Context, tx storage.Executor) error {
		n, err = tx.Upsert(ctx, def, rows, updateColumns)
		return err
	})
	return n, err
}

func (s *Store) Delete(ctx context.Context, def storage.Def, q storage.Query) (n int64, err error) {
	err = s.WithTransaction(ctx, func(ctx context.Context, tx storage.Executor) error {
		n, err = tx.Delete(ctx, def, q)
		return err
	})
	return n, err
}

func (s *Store) Find(ctx context.Context, def storage.Def, q storage.Query, each func(scan storage.ScanFunc) error) error {
	return (&executor{tables: s.snapshot(), readOnly: true}).Find(ctx, def, q, each)
}

func (s *Store) Count(ctx context.Context, def storage.Def, q storage.Query) (int64, error) {
	return (&executor{tables: s.snapshot(), readOnly: true}).Count(ctx, def, q)
}

// Lock only checks ctx: transactions already run one at a time.
func (s *Store) Lock(ctx context.Context, _ int64) error {
	return ctx.Err()
}

// Close is a no-op.
func (s *Store) Close() {}

func clone(tables map[string]rowSet) map[string]rowSet {
	out := make(map[string]rowSet, len(tables))
	for name, rows := range tables {
		cp := make(rowSet, len(rows))
		for k, v := range rows {
			cp[k] = v
		}
		out[name] = cp
	}
	return out
}

type executor struct {
	tables   map[string]rowSet
	readOnly bool
}

func (e *executor) table(name string) rowSet {
	rows, ok := e.tables[name]
	if !ok {
		rows = rowSet{}
		if !e.readOnly {
			e.tables[name] = rows
		}
	}
	return rows
}

func (e *executor) Lock(ctx context.Context, _ int64) error {
	return ctx.Err()
}

func (e *executor) Upsert(ctx context.Context, def storage.Def, rows [][]any, updateColumns []string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	update := def.UpdateColumns(updateColumns)
	table := e.table(def.Name)
	for _, values := range rows {
		if len(values) != len(def.Columns) {
			return 0, fmt.Errorf("table %s: %d values for %d columns", def.Name, len(values), len(def.Columns))
		}
		key := primaryKey(def, values)
		existing, ok := table[key]
		if !ok {
			table[key] = copyValues(values)
			continue
		}
		merged := append([]any(nil), existing...)
		for _, col := range update {
			i := def.Column(col)
			if i < 0 {
				return 0, fmt.Errorf("table %s: unknown column %s", def.Name, col)
			}
			merged[i] = copyValue(values[i])
		}
		table[key] = merged
	}
	return int64(len(rows)), nil
}

func (e *executor) Find(ctx context.Context, def storage.Def, q storage.Query, each func(scan storage.ScanFunc) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	matched, err := e.match(def, q)
	if err != nil {
		return err
	}
	if err := sortRows(def, matched, q.OrderBy); err != nil {
		return err
	}
	if q.Limit > 0 && uint64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}
	for _, values := range matched {
		values := values
		if err := each(func(dest ...any) error { return scan(def, values, dest) }); err != nil {
			return err
		}
	}
	return nil
}

func (e *executor) Count(ctx context.Context, def storage.Def, q storage.Query) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	matched, err := e.match(def, q)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (e *executor) Delete(ctx context.Context, def storage.Def, q storage.Query) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	table := e.table(def.Name)
	var n int64
	for key, values := range table {
		ok, err := matches(def, values, q.Where)
		if err != nil {
			return 0, err
		}
		if ok {
			delete(table, key)
			n++
		}
	}
	return n, nil
}

func (e *executor) match(def storage.Def, q storage.Query) ([][]any, error) {
	var out [][]any
	for _, values := range e.table(def.Name) {
		ok, err := matches(def, values, q.Where)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, values)
		}
	}
	return out, nil
}

func matches(def storage.Def, values []any, conds []storage.Cond) (bool, error) {
	for _, c := range conds {
		i := def.Column(c.Column)
		if i < 0 {
			return false, fmt.Errorf("table %s: unknown column %s", def.Name, c.Column)
		}
		ok, err := eval(values[i], c)
		if err != nil {
			return false, fmt.Errorf("table %s column %s: %w", def.Name, c.Column, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func eval(v any, c storage.Cond) (bool, error) {
	if c.Op == storage.OpIn {
		candidates, ok := c.Value.([]any)
		if !ok {
			return false, fmt.Errorf("in operator expects []any, got %T", c.Value)
		}
		for _, candidate := range candidates {
			cmp, err := compare(v, candidate)
			if err != nil {
				return false, err
			}
			if cmp == 0 {
				return true, nil
			}
		}
		return false, nil
	}

	cmp, err := compare(v, c.Value)
	if err != nil {
		return false, err
	}
	switch c.Op {
	case storage.OpEq:
		return cmp == 0, nil
	case storage.OpLt:
		return cmp < 0, nil
	case storage.OpLte:
		return cmp <= 0, nil
	case storage.OpGt:
		return cmp > 0, nil
	case storage.OpGte:
		return cmp >= 0, nil
	default:
		return false, fmt.Errorf("unsupported operator %q", c.Op)
	}
}

func sortRows(def storage.Def, rows [][]any, order []storage.Order) error {
	if len(order) == 0 {
		for _, pk := range def.PrimaryKey {
			order = append(order, storage.Order{Column: pk})
		}
	}
	idx := make([]int, len(order))
	for i, o := range order {
		idx[i] = def.Column(o.Column)
		if idx[i] < 0 {
			return fmt.Errorf("table %s: unknown column %s", def.Name, o.Column)
		}
	}

	var sortErr error
	sort.SliceStable(rows, func(a, b int) bool {
		for i, o := range order {
			cmp, err := compare(rows[a][idx[i]], rows[b][idx[i]])
			if err != nil {
				sortErr = err
				return false
			}
			if cmp == 0 {
				continue
			}
			if o.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	return sortErr
}

func primaryKey(def storage.Def, values []any) string {
	parts := make([]string, len(def.PrimaryKey))
	for i, col := range def.PrimaryKey {
		parts[i] = fmt.Sprint(values[def.Column(col)])
	}
	return strings.Join(parts, "\x00")
}

func scan(def storage.Def, values []any, dest []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("table %s: scan into %d destinations, row has %d columns", def.Name, len(dest), len(values))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("table %s column %s: destination must be a non-nil pointer", def.Name, def.Columns[i])
		}
		target := dv.Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		sv := reflect.ValueOf(copyValue(values[i]))
		switch {
		case sv.Type().AssignableTo(target.Type()):
			target.Set(sv)
		case sv.Type().ConvertibleTo(target.Type()):
			target.Set(sv.Convert(target.Type()))
		default:
			return fmt.Errorf("table %s column %s: cannot scan %T into %s", def.Name, def.Columns[i], values[i], target.Type())
		}
	}
	return nil
}

func copyValues(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = copyValue(v)
	}
	return out
}

// copyValue detaches slices so callers cannot mutate stored rows.
func copyValue(v any) any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(cp, rv)
	return cp.Interface()
}
