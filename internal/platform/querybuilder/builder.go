// Package querybuilder renders the small set of PostgreSQL statements the
// repositories need, numbering placeholders as $1, $2, ...
package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// binder collects bound arguments while a statement is rendered.
type binder struct {
	sql  strings.Builder
	args []any
}

func (b *binder) write(parts ...string) {
	for _, p := range parts {
		b.sql.WriteString(p)
	}
}

// bind appends v and writes its placeholder.
func (b *binder) bind(v any) {
	b.args = append(b.args, v)
	b.sql.WriteByte('$')
	b.sql.WriteString(strconv.Itoa(len(b.args)))
}

// expr writes a fragment using ? markers, binding one value per marker.
// Markers without a value are written as is.
func (b *binder) expr(fragment string, values []any) {
	next := 0
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == '?' && next < len(values) {
			b.bind(values[next])
			next++
			continue
		}
		b.sql.WriteByte(fragment[i])
	}
}

func (b *binder) where(conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			b.write(" WHERE ")
		} else {
			b.write(" AND ")
		}
		c.render(b)
	}
}

func (b *binder) result() (string, []any, error) {
	return b.sql.String(), b.args, nil
}

// Condition is one predicate of a WHERE clause. Conditions are joined with AND.
type Condition interface {
	render(b *binder)
}

type conditionFunc func(b *binder)

func (f conditionFunc) render(b *binder) { f(b) }

func compare(column, op string, value any) Condition {
	return conditionFunc(func(b *binder) {
		b.write(column, " ", op, " ")
		b.bind(value)
	})
}

func Eq(column string, value any) Condition { return compare(column, "=", value) }

// Gte matches rows where column >= value.
func Gte(column string, value any) Condition { return compare(column, ">=", value) }

// Lt matches rows where column < value.
func Lt(column string, value any) Condition { return compare(column, "<", value) }

// Lte matches rows where column <= value.
func Lte(column string, value any) Condition { return compare(column, "<=", value) }

// In matches column against values. An empty list matches nothing.
func In(column string, values []any) Condition {
	return conditionFunc(func(b *binder) {
		if len(values) == 0 {
			b.write("1=0")
			return
		}
		b.write(column, " IN (")
		for i, v := range values {
			if i > 0 {
				b.write(", ")
			}
			b.bind(v)
		}
		b.write(")")
	})
}

func IsNull(column string) Condition {
	return conditionFunc(func(b *binder) {
		b.write(column, " IS NULL")
	})
}

// Expr is a raw predicate with ? markers, e.g. Expr("player_id = ANY(?)", ids).
func Expr(fragment string, args ...any) Condition {
	return conditionFunc(func(b *binder) {
		b.expr(fragment, args)
	})
}

type SelectBuilder struct {
	columns []string
	table   string
	conds   []Condition
	order   []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.table = table
	return s
}

func (s *SelectBuilder) Where(conds ...Condition) *SelectBuilder {
	s.conds = append(s.conds, conds...)
	return s
}

func (s *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	s.order = append(s.order, parts...)
	return s
}

// Limit caps the result size. Zero or negative means no limit.
func (s *SelectBuilder) Limit(n int) *SelectBuilder {
	s.limit = n
	return s
}

func (s *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(s.columns) == 0:
		return "", nil, errors.New("select: no columns")
	case strings.TrimSpace(s.table) == "":
		return "", nil, errors.New("select: no table")
	}

	var b binder
	b.write("SELECT ", strings.Join(s.columns, ", "), " FROM ", s.table)
	b.where(s.conds)
	if len(s.order) > 0 {
		b.write(" ORDER BY ", strings.Join(s.order, ", "))
	}
	if s.limit > 0 {
		b.write(" LIMIT ", strconv.Itoa(s.limit))
	}
	return b.result()
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (ins *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	ins.columns = append([]string(nil), columns...)
	return ins
}

// Values adds one row. Call it again for a multi-row insert.
func (ins *InsertBuilder) Values(values ...any) *InsertBuilder {
	ins.rows = append(ins.rows, append([]any(nil), values...))
	return ins
}

// Suffix appends a trailing clause such as RETURNING or ON CONFLICT.
func (ins *InsertBuilder) Suffix(clause string) *InsertBuilder {
	ins.suffix = strings.TrimSpace(clause)
	return ins
}

func (ins *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(ins.table) == "":
		return "", nil, errors.New("insert: no table")
	case len(ins.columns) == 0:
		return "", nil, errors.New("insert: no columns")
	case len(ins.rows) == 0:
		return "", nil, errors.New("insert: no values")
	}

	var b binder
	b.write("INSERT INTO ", ins.table, " (", strings.Join(ins.columns, ", "), ") VALUES ")
	for i, row := range ins.rows {
		if len(row) != len(ins.columns) {
			return "", nil, fmt.Errorf("insert: row %d has %d values for %d columns", i, len(row), len(ins.columns))
		}
		if i > 0 {
			b.write(", ")
		}
		b.write("(")
		for j, v := range row {
			if j > 0 {
				b.write(", ")
			}
			b.bind(v)
		}
		b.write(")")
	}
	if ins.suffix != "" {
		b.write(" ", ins.suffix)
	}
	return b.result()
}

type assignment struct {
	column string
	value  any
	raw    string
	args   []any
	isRaw  bool
}

type UpdateBuilder struct {
	table  string
	sets   []assignment
	conds  []Condition
	suffix string
	err    error
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (u *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column: column, value: value})
	return u
}

// SetExpr assigns a raw SQL expression, e.g. SetExpr("deleted_at", "NOW()").
func (u *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column: column, raw: expr, args: args, isRaw: true})
	return u
}

func (u *UpdateBuilder) Where(conds ...Condition) *UpdateBuilder {
	u.conds = append(u.conds, conds...)
	return u
}

func (u *UpdateBuilder) Suffix(clause string) *UpdateBuilder {
	u.suffix = strings.TrimSpace(clause)
	return u
}

func (u *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case u.err != nil:
		return "", nil, u.err
	case strings.TrimSpace(u.table) == "":
		return "", nil, errors.New("update: no table")
	case len(u.sets) == 0:
		return "", nil, errors.New("update: nothing to set")
	}

	var b binder
	b.write("UPDATE ", u.table, " SET ")
	for i, a := range u.sets {
		if i > 0 {
			b.write(", ")
		}
		b.write(a.column, " = ")
		if a.isRaw {
			b.expr(a.raw, a.args)
			continue
		}
		b.bind(a.value)
	}
	b.where(u.conds)
	if u.suffix != "" {
		b.write(" ", u.suffix)
	}
	return b.result()
}

type DeleteBuilder struct {
	table string
	conds []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (d *DeleteBuilder) Where(conds ...Condition) *DeleteBuilder {
	d.conds = append(d.conds, conds...)
	return d
}

// ToSQL refuses to render a DELETE without a WHERE clause.
func (d *DeleteBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(d.table) == "":
		return "", nil, errors.New("delete: no table")
	case len(d.conds) == 0:
		return "", nil, errors.New("delete: refusing to delete without conditions")
	}

	var b binder
	b.write("DELETE FROM ", d.table)
	b.where(d.conds)
	return b.result()
}
