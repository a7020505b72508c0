package sqlkit

import (
	"context"
	"database/sql"
	"errors"
)

// WithStmt prepares query, invokes fn with the statement, and closes the
// statement on every exit path. fn's result and error pass through
// unchanged; a failure while closing is joined onto the returned error.
// The statement is not executed unless fn does so.
func WithStmt[R any](ctx context.Context, db Preparer, query string, fn func(*sql.Stmt) (R, error)) (result R, err error) {
	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return result, err
	}
	defer func() {
		err = errors.Join(err, stmt.Close())
	}()
	return fn(stmt)
}

// ExecWith prepares query, lets bind fill the parameter slots, executes the
// statement as an update, closes it, and returns the affected-row count.
func ExecWith(ctx context.Context, db Preparer, query string, bind func(*Params) error) (int64, error) {
	return WithStmt(ctx, db, query, func(stmt *sql.Stmt) (int64, error) {
		var p Params
		if err := bind(&p); err != nil {
			return 0, err
		}
		res, err := stmt.ExecContext(ctx, p.Args()...)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	})
}

// WithRows executes query with args, invokes fn with the resulting cursor,
// and closes the cursor on every exit path. The underlying statement is
// created and released inside database/sql.
func WithRows[R any](ctx context.Context, db Queryer, query string, args []any, fn func(*sql.Rows) (R, error)) (result R, err error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return result, err
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()
	return fn(rows)
}

// QueryStmt runs an already-prepared statement with args, invokes fn with
// the resulting cursor, and closes the cursor on every exit path. The
// statement itself stays open; the caller owns it.
func QueryStmt[R any](ctx context.Context, stmt *sql.Stmt, args []any, fn func(*sql.Rows) (R, error)) (result R, err error) {
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return result, err
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()
	return fn(rows)
}
