package storage

// Op is a comparison operator of a query condition.
type Op string

const (
	OpEq  Op = "="
	OpLt  Op = "<"
	OpLte Op = "<="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpIn  Op = "in"
)

// Cond compares a column with a value. For OpIn the value is a []any.
type Cond struct {
	Column string
	Op     Op
	Value  any
}

// Order sorts query results by a column.
type Order struct {
	Column string
	Desc   bool
}

// Query selects rows by a conjunction of conditions.
type Query struct {
	Where   []Cond
	OrderBy []Order
	Limit   uint64
}

// Where builds a query from conditions.
func Where(conds ...Cond) Query {
	return Query{Where: conds}
}

// All matches every row.
func All() Query {
	return Query{}
}

func Eq(column string, v any) Cond  { return Cond{Column: column, Op: OpEq, Value: v} }
func Lt(column string, v any) Cond  { return Cond{Column: column, Op: OpLt, Value: v} }
func Lte(column string, v any) Cond { return Cond{Column: column, Op: OpLte, Value: v} }
func Gt(column string, v any) Cond  { return Cond{Column: column, Op: OpGt, Value: v} }
func Gte(column string, v any) Cond { return Cond{Column: column, Op: OpGte, Value: v} }

// In matches rows whose column equals one of values.
func In[T any](column string, values ...T) Cond {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Cond{Column: column, Op: OpIn, Value: vs}
}

// Asc adds an ascending sort on column.
func (q Query) Asc(column string) Query {
	q.OrderBy = append(append([]Order(nil), q.OrderBy...), Order{Column: column})
	return q
}

// Desc adds a descending sort on column.
func (q Query) Desc(column string) Query {
	q.OrderBy = append(append([]Order(nil), q.OrderBy...), Order{Column: column, Desc: true})
	return q
}

// WithLimit caps the number of returned rows.
func (q Query) WithLimit(n uint64) Query {
	q.Limit = n
	return q
}
