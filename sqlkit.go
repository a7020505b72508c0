// Package sqlkit is a thin ergonomics layer over database/sql. It adds
// scoped-resource helpers that guarantee statement and cursor cleanup on
// every exit path, a chunked batch executor with per-row affected counts,
// 1-based indexed parameter and column accessors, and unsigned-integer
// binding helpers.
//
// sqlkit does not manage connections, transactions, retries, or SQL text;
// all of that stays with database/sql and the driver. Errors from the
// driver pass through unchanged.
package sqlkit

import (
	"context"
	"database/sql"
)

// Preparer prepares statements. Implemented by *sql.DB, *sql.Tx and
// *sql.Conn, so every helper taking a Preparer works inside or outside a
// transaction.
type Preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Queryer executes queries that return rows. Implemented by *sql.DB,
// *sql.Tx and *sql.Conn.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var (
	_ Preparer = (*sql.DB)(nil)
	_ Preparer = (*sql.Tx)(nil)
	_ Preparer = (*sql.Conn)(nil)

	_ Queryer = (*sql.DB)(nil)
	_ Queryer = (*sql.Tx)(nil)
	_ Queryer = (*sql.Conn)(nil)
)

// Rows is the subset of *sql.Rows the iteration and accessor helpers need.
// Its cursor starts before the first row; Next advances it and reports
// whether a row is available.
type Rows interface {
	// Next prepares the next result row for reading with Scan. It returns
	// true on success, or false if there is no next row or an error
	// happened while preparing it. Err distinguishes the two cases.
	Next() bool

	// Scan copies the columns of the current row into the values pointed
	// at by dest, following database/sql conversion rules.
	Scan(dest ...any) error

	// Close closes the rows, preventing further enumeration. Close is
	// idempotent and does not affect the result of Err.
	Close() error

	// Err returns the error, if any, encountered during iteration.
	Err() error

	// Columns returns the column names.
	Columns() ([]string, error)
}

var _ Rows = (*sql.Rows)(nil)
