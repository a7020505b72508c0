package sqlkit

import (
	"fmt"

	"github.com/lib/pq"
)

// WithArray decodes the array-typed column at the 1-based index into a
// slice of E and runs fn against it. pq materializes the array as a plain
// Go slice, so there is no driver-side resource to free afterwards; the
// scoped shape is kept so call sites read the same as the other helpers.
func WithArray[E any](r *Row, index int, fn func([]E) error) error {
	if index < 1 || index > len(r.values) {
		return fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, index, len(r.values))
	}
	var dest []E
	if err := pq.Array(&dest).Scan(r.values[index-1]); err != nil {
		return err
	}
	return fn(dest)
}

// WithArrayNamed is WithArray addressing the column by name.
func WithArrayNamed[E any](r *Row, name string, fn func([]E) error) error {
	for i, column := range r.columns {
		if column == name {
			return WithArray(r, i+1, fn)
		}
	}
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}
