package storage

import (
	"context"
	"fmt"
	"reflect"
)

// Table binds a table definition to a row type. fields returns pointers to the row fields in
// the order of Def.Columns and is used both to read values and to scan rows.
type Table[T any] struct {
	Def    Def
	fields func(*T) []any
}

// NewTable constructs a typed table. It panics when fields does not match the column count,
// which is a programming error caught at package initialization.
func NewTable[T any](def Def, fields func(*T) []any) Table[T] {
	var zero T
	if n := len(fields(&zero)); n != len(def.Columns) {
		panic(fmt.Sprintf("table %s: %d fields for %d columns", def.Name, n, len(def.Columns)))
	}
	return Table[T]{Def: def, fields: fields}
}

// Values returns the column values of row in column order.
func (t Table[T]) Values(row T) []any {
	ptrs := t.fields(&row)
	values := make([]any, len(ptrs))
	for i, p := range ptrs {
		values[i] = reflect.ValueOf(p).Elem().Interface()
	}
	return values
}

// Upsert merges rows on primary key. updateColumns limits which columns a conflict overwrites.
func (t Table[T]) Upsert(ctx context.Context, ex Executor, rows []T, updateColumns ...string) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = t.Values(r)
	}
	n, err := ex.Upsert(ctx, t.Def, values, updateColumns)
	if err != nil {
		return 0, fmt.Errorf("upsert %s: %w", t.Def.Name, err)
	}
	return n, nil
}

// Find returns all rows matching q.
func (t Table[T]) Find(ctx context.Context, ex Executor, q Query) ([]T, error) {
	var out []T
	err := ex.Find(ctx, t.Def, q, func(scan ScanFunc) error {
		var row T
		if err := scan(t.fields(&row)...); err != nil {
			return err
		}
		out = append(out, row)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", t.Def.Name, err)
	}
	return out, nil
}

// FindOne returns the first row matching q or ErrNotFound.
func (t Table[T]) FindOne(ctx context.Context, ex Executor, q Query) (T, error) {
	rows, err := t.Find(ctx, ex, q.WithLimit(1))
	if err != nil {
		var zero T
		return zero, err
	}
	if len(rows) == 0 {
		var zero T
		return zero, fmt.Errorf("find %s: %w", t.Def.Name, ErrNotFound)
	}
	return rows[0], nil
}

// Count returns the number of rows matching q.
func (t Table[T]) Count(ctx context.Context, ex Executor, q Query) (int64, error) {
	n, err := ex.Count(ctx, t.Def, q)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", t.Def.Name, err)
	}
	return n, nil
}

// Delete removes rows matching q.
func (t Table[T]) Delete(ctx context.Context, ex Executor, q Query) (int64, error) {
	n, err := ex.Delete(ctx, t.Def, q)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", t.Def.Name, err)
	}
	return n, nil
}
