// Package replication persists scan results into a standalone SQLite
// file so they can be inspected or exported later. A Replication owns a
// single connection to one database file and hands out Table handles
// bound to that connection.
package replication

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Jason881/sqlmap/internal/db"
	"github.com/Jason881/sqlmap/internal/sqlident"
)

// Replication owns one connection to a replication database file.
// It is not safe for concurrent use.
type Replication struct {
	path   string
	db     *sqlx.DB
	conn   *sqlx.Conn
	closed bool
}

// Open opens (creating if needed) the replication database at path.
func Open(path string) (*Replication, error) {
	d, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening replication file %q: %v", ErrConnection, path, err)
	}

	// Dedicate the connection up front. Statements and open cursors then
	// interleave on it under SQLite's own rules instead of waiting on
	// each other for a pool slot.
	conn, err := d.Connx(context.Background())
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("%w: opening replication file %q: %v", ErrConnection, path, err)
	}

	return &Replication{path: path, db: d, conn: conn}, nil
}

// Path returns the database file path.
func (r *Replication) Path() string {
	return r.path
}

// CreateTable drops any existing table of the same name and creates it
// fresh with the given columns, returning a handle bound to this
// connection.
func (r *Replication) CreateTable(name string, columns []Column) (*Table, error) {
	t := r.newTable(name, columns)
	if err := t.create(false); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTypelessTable is CreateTable without column types, for tables
// whose schema is learned incrementally from untyped data.
func (r *Replication) CreateTypelessTable(name string, columns []string) (*Table, error) {
	cols := make([]Column, len(columns))
	for i, c := range columns {
		cols[i] = Column{Name: c}
	}
	t := r.newTable(name, cols)
	if err := t.create(true); err != nil {
		return nil, err
	}
	return t, nil
}

// Table returns a handle to an existing table without touching its
// schema. Pass the declared columns if the handle will be used for
// inserts; a nil column list only supports selects.
func (r *Replication) Table(name string, columns []Column) *Table {
	return r.newTable(name, columns)
}

// TableNames lists the user tables present in the database file.
func (r *Replication) TableNames() ([]string, error) {
	rows, err := r.conn.QueryxContext(context.Background(),
		`SELECT name FROM sqlite_master
		 WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, r.operr(err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, r.operr(err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, r.operr(err)
	}
	return names, nil
}

// Close releases the connection. Safe to call more than once; operations
// after Close fail with the generic error kind.
func (r *Replication) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	err := r.conn.Close()
	if cerr := r.db.Close(); err == nil {
		err = cerr
	}
	return err
}

func (r *Replication) newTable(name string, columns []Column) *Table {
	return &Table{
		parent:  r,
		name:    sqlident.Sanitize(name),
		quoted:  sqlident.Quote(name),
		columns: columns,
	}
}

// operr translates an engine-level failure into the generic error kind,
// naming the file since a locked database is the usual cause.
func (r *Replication) operr(err error) error {
	return fmt.Errorf("%w: %v while accessing replication file %q (make sure it is not used by another program)",
		ErrGeneric, err, r.path)
}
