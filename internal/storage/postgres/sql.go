package postgres

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

// maxParams is the PostgreSQL bind parameter limit of one statement.
const maxParams = 65535

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func chunkRows(rows [][]any, columns int) [][][]any {
	if columns == 0 || len(rows) == 0 {
		return nil
	}
	size := maxParams / columns
	var chunks [][][]any
	for len(rows) > size {
		chunks = append(chunks, rows[:size])
		rows = rows[size:]
	}
	return append(chunks, rows)
}

func upsertSQL(def storage.Def, rows [][]any, updateColumns []string) (string, []any, error) {
	stmt := psql.Insert(def.Name).Columns(def.Columns...)
	for _, r := range rows {
		if len(r) != len(def.Columns) {
			return "", nil, fmt.Errorf("table %s: %d values for %d columns", def.Name, len(r), len(def.Columns))
		}
		stmt = stmt.Values(r...)
	}

	update := def.UpdateColumns(updateColumns)
	conflict := fmt.Sprintf("ON CONFLICT (%s)", strings.Join(def.PrimaryKey, ", "))
	if len(update) == 0 {
		stmt = stmt.Suffix(conflict + " DO NOTHING")
	} else {
		set := make([]string, len(update))
		for i, c := range update {
			set[i] = fmt.Sprintf("%s = EXCLUDED.%s", c, c)
		}
		stmt = stmt.Suffix(conflict + " DO UPDATE SET " + strings.Join(set, ", "))
	}
	return stmt.ToSql()
}

func selectSQL(def storage.Def, q storage.Query) (string, []any, error) {
	stmt := psql.Select(def.Columns...).From(def.Name)
	where, err := whereClause(q.Where)
	if err != nil {
		return "", nil, err
	}
	if where != nil {
		stmt = stmt.Where(where)
	}
	for _, o := range q.OrderBy {
		if o.Desc {
			stmt = stmt.OrderBy(o.Column + " DESC")
		} else {
			stmt = stmt.OrderBy(o.Column + " ASC")
		}
	}
	if q.Limit > 0 {
		stmt = stmt.Limit(q.Limit)
	}
	return stmt.ToSql()
}

func countSQL(def storage.Def, q storage.Query) (string, []any, error) {
	stmt := psql.Select("count(*)").From(def.Name)
	where, err := whereClause(q.Where)
	if err != nil {
		return "", nil, err
	}
	if where != nil {
		stmt = stmt.Where(where)
	}
	return stmt.ToSql()
}

func deleteSQL(def storage.Def, q storage.Query) (string, []any, error) {
	stmt := psql.Delete(def.Name)
	where, err := whereClause(q.Where)
	if err != nil {
		return "", nil, err
	}
	if where != nil {
		stmt = stmt.Where(where)
	}
	return stmt.ToSql()
}

func whereClause(conds []storage.Cond) (sq.Sqlizer, error) {
	if len(conds) == 0 {
		return nil, nil
	}
	and := make(sq.And, 0, len(conds))
	for _, c := range conds {
		switch c.Op {
		case storage.OpEq, storage.OpIn:
			and = append(and, sq.Eq{c.Column: c.Value})
		case storage.OpLt:
			and = append(and, sq.Lt{c.Column: c.Value})
		case storage.OpLte:
			and = append(and, sq.LtOrEq{c.Column: c.Value})
		case storage.OpGt:
			and = append(and, sq.Gt{c.Column: c.Value})
		case storage.OpGte:
			and = append(and, sq.GtOrEq{c.Column: c.Value})
		default:
			return nil, fmt.Errorf("unsupported operator %q on %s", c.Op, c.Column)
		}
	}
	return and, nil
}
