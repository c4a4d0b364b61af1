package replication

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Jason881/sqlmap/internal/safestr"
	"github.com/Jason881/sqlmap/internal/sqlident"
)

// Column pairs a column name with its declared storage class. A zero
// Type declares the column typeless.
type Column struct {
	Name string
	Type DataType
}

// Table is a handle to one table in the owning Replication's database.
type Table struct {
	parent  *Replication
	name    string // sanitized
	quoted  string // double-quoted identifier for SQL text
	columns []Column
}

// Name returns the sanitized table name.
func (t *Table) Name() string {
	return t.name
}

// create issues DROP TABLE IF EXISTS followed by a fresh CREATE TABLE.
func (t *Table) create(typeless bool) error {
	if err := t.Execute(`DROP TABLE IF EXISTS ` + t.quoted); err != nil {
		return err
	}

	defs := make([]string, len(t.columns))
	for i, c := range t.columns {
		if typeless || c.Type == "" {
			defs[i] = sqlident.Quote(c.Name)
		} else {
			defs[i] = sqlident.Quote(c.Name) + " " + string(c.Type)
		}
	}
	return t.Execute(fmt.Sprintf(`CREATE TABLE %s (%s)`, t.quoted, strings.Join(defs, ",")))
}

// Insert adds one row. The number of values must match the declared
// column count; nothing is written otherwise. Values are normalized
// before binding and never interpolated into the SQL text.
func (t *Table) Insert(values []any) error {
	if len(t.columns) == 0 {
		return fmt.Errorf("%w: table handle %q has no declared columns to insert into", ErrValue, t.name)
	}
	if len(values) != len(t.columns) {
		return fmt.Errorf("%w: wrong number of columns used in replicating insert (got %d, want %d)",
			ErrValue, len(values), len(t.columns))
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
	return t.Execute(
		fmt.Sprintf(`INSERT INTO %s VALUES (%s)`, t.quoted, placeholders),
		safestr.DecodeValues(values)...,
	)
}

// Select returns a cursor over the table's rows, optionally filtered by
// a raw SQL condition. The caller must close the returned rows; other
// statements may run on the connection while the cursor is open.
func (t *Table) Select(condition string) (*sqlx.Rows, error) {
	rows, err := t.parent.conn.QueryxContext(context.Background(), t.selectSQL(condition))
	if err != nil {
		return nil, t.parent.operr(err)
	}
	return rows, nil
}

func (t *Table) selectSQL(condition string) string {
	stmt := `SELECT * FROM ` + t.quoted
	if condition != "" {
		stmt += " WHERE " + condition
	}
	return stmt
}

// LegacySelectSQL renders the select statement exactly as the reference
// implementation did: unquoted table name and no space before the WHERE
// keyword, which makes the statement unrunnable whenever a condition is
// given. Kept only for byte-level compatibility checks against the
// reference tool's output; never executed by this package.
func (t *Table) LegacySelectSQL(condition string) string {
	stmt := "SELECT * FROM " + t.name
	if condition != "" {
		stmt += "WHERE " + condition
	}
	return stmt
}

// Execute runs a statement on the owning connection. It is the single
// point where engine-level failures are translated into the generic
// error kind.
func (t *Table) Execute(query string, args ...any) error {
	if _, err := t.parent.conn.ExecContext(context.Background(), query, args...); err != nil {
		return t.parent.operr(err)
	}
	return nil
}

// BeginTransaction opens an explicit transaction. Bulk inserts are much
// faster inside one. There is no nesting and no automatic rollback; a
// caller that opens a transaction must close it with EndTransaction.
func (t *Table) BeginTransaction() error {
	return t.Execute("BEGIN TRANSACTION")
}

// EndTransaction commits the transaction opened by BeginTransaction.
func (t *Table) EndTransaction() error {
	return t.Execute("END TRANSACTION")
}
