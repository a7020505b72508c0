package sqlkit

import (
	"fmt"
	_ "unsafe" // for go:linkname
)

// convertAssign is a linkname to the private convertAssign function in
// database/sql. It applies the same driver-value conversion rules as
// sql.Rows.Scan, which keeps Get and GetNamed consistent with what Scan
// into a typed destination would produce.
//
//go:linkname convertAssign database/sql.convertAssign
func convertAssign(dest, src any) error

// Row is a snapshot of the cursor's current row: the column names and the
// raw driver values. It stays valid after the cursor advances or closes.
type Row struct {
	columns []string
	values  []any
}

// Current captures the row the cursor is positioned on. The cursor must
// have been advanced by Next; the cursor itself is not advanced or closed.
func Current(rows Rows) (*Row, error) {
	if rows == nil {
		return nil, ErrNilRows
	}
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	return &Row{columns: columns, values: values}, nil
}

// Columns returns the column names of the row.
func (r *Row) Columns() []string {
	return r.columns
}

// Get retrieves the column at the 1-based index, coerced into the caller's
// target type by database/sql's conversion rules.
func Get[T any](r *Row, index int) (T, error) {
	var out T
	if index < 1 || index > len(r.values) {
		return out, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, index, len(r.values))
	}
	if err := convertAssign(&out, r.values[index-1]); err != nil {
		return out, err
	}
	return out, nil
}

// GetNamed retrieves the column with the given name, coerced into the
// caller's target type. The first column with a matching name wins.
func GetNamed[T any](r *Row, name string) (T, error) {
	for i, column := range r.columns {
		if column == name {
			return Get[T](r, i+1)
		}
	}
	var out T
	return out, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}
