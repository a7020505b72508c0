package sqlkit

import "iter"

// Each returns a lazy, single-pass sequence over the result rows. Each step
// advances the cursor once and yields the cursor itself positioned on the
// next row. The sequence never closes the cursor; the caller closes it
// after full or partial consumption. Indexing operations that reposition
// the cursor from inside the loop body desynchronize the effective position
// from the number of elements produced.
func Each(rows Rows) iter.Seq[Rows] {
	return func(yield func(Rows) bool) {
		for rows.Next() {
			if !yield(rows) {
				return
			}
		}
	}
}

// Values returns a lazy sequence of scanned rows. scan reads the row the
// cursor is positioned on; its error is yielded alongside the value. An
// error encountered by the cursor during iteration is yielded last. The
// cursor is not closed.
func Values[T any](rows Rows, scan func(Rows) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for rows.Next() {
			if !yield(scan(rows)) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// Collect scans every remaining row into a new slice, in cursor order. The
// cursor is not closed.
func Collect[T any](rows Rows, scan func(Rows) (T, error)) ([]T, error) {
	return CollectInto(rows, nil, scan)
}

// CollectInto scans every remaining row and appends it to dst, which may be
// nil or already hold elements. The cursor is not closed.
func CollectInto[T any](rows Rows, dst []T, scan func(Rows) (T, error)) ([]T, error) {
	if rows == nil {
		return dst, ErrNilRows
	}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return dst, err
		}
		dst = append(dst, v)
	}
	return dst, rows.Err()
}

// CollectMap builds a map from the remaining rows, one entry per row, with
// fn producing both key and value. A later row with a duplicate key
// overwrites the earlier entry. The cursor is not closed.
func CollectMap[K comparable, V any](rows Rows, fn func(Rows) (K, V, error)) (map[K]V, error) {
	if rows == nil {
		return nil, ErrNilRows
	}
	out := make(map[K]V)
	for rows.Next() {
		k, v, err := fn(rows)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

// CollectMapOf is CollectMap with separate key and value transforms; key
// runs before value on each row.
func CollectMapOf[K comparable, V any](rows Rows, key func(Rows) (K, error), value func(Rows) (V, error)) (map[K]V, error) {
	return CollectMap(rows, func(r Rows) (K, V, error) {
		var v V
		k, err := key(r)
		if err != nil {
			return k, v, err
		}
		v, err = value(r)
		return k, v, err
	})
}
