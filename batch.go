package sqlkit

import (
	"context"
	"database/sql"
	"errors"
)

// BindFunc sets every parameter slot for one input row. It must only set
// values; accumulating the row into the pending batch and flushing are the
// executor's job. Slots are not cleared between rows, so a binder that
// skips a slot leaves the previous row's value in it.
type BindFunc[T any] func(p *Params, row T) error

// ExecBatch prepares query once, binds every row, and executes the whole
// accumulated batch in a single flush, returning the per-row affected
// counts in input order. With no rows, nothing executes and the result is
// empty. Equivalent to ExecBatchChunked with chunkSize 0.
func ExecBatch[T any](ctx context.Context, db Preparer, query string, rows []T, bind BindFunc[T]) ([]int64, error) {
	return ExecBatchChunked(ctx, db, query, rows, 0, bind)
}

// ExecBatchChunked prepares query once and binds every row into the pending
// batch, flushing after every chunkSize rows plus once more for a partial
// trailing chunk. chunkSize <= 0 means a single flush after all rows. The
// returned counts hold one per-row affected count per input row, in input
// order, concatenated across chunks.
//
// The statement lives for the whole call and is closed on every exit path.
// Any error from bind or from executing a chunk propagates immediately;
// chunks that already flushed are not reported back, so the caller cannot
// tell how many rows took effect before a mid-batch failure.
func ExecBatchChunked[T any](ctx context.Context, db Preparer, query string, rows []T, chunkSize int, bind BindFunc[T]) (counts []int64, err error) {
	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, stmt.Close())
	}()

	flush := func(pending [][]any) ([]int64, error) {
		out := make([]int64, 0, len(pending))
		for _, args := range pending {
			res, err := stmt.ExecContext(ctx, args...)
			if err != nil {
				return nil, err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}
	return runBatch(rows, chunkSize, bind, flush)
}

// ExecBatchResult is like ExecBatch but collapses the per-row counts into a
// single sql.Result carrying the cumulative affected-row total.
func ExecBatchResult[T any](ctx context.Context, db Preparer, query string, rows []T, bind BindFunc[T]) (sql.Result, error) {
	counts, err := ExecBatch(ctx, db, query, rows, bind)
	if err != nil {
		return nil, err
	}
	var res BatchResult
	for _, n := range counts {
		res.rowsAffected += n
	}
	return &res, nil
}

// BatchResult is a sql.Result aggregating a whole batch into a cumulative
// affected-row total. Batched inserts have no single meaningful insert id,
// so LastInsertId reports zero.
type BatchResult struct {
	rowsAffected int64
}

func (r *BatchResult) LastInsertId() (int64, error) {
	return 0, nil
}

// RowsAffected returns the cumulative affected-row count across the batch.
func (r *BatchResult) RowsAffected() (int64, error) {
	return r.rowsAffected, nil
}

// runBatch drives the bind/accumulate/flush loop. flush receives the
// pending parameter sets for one chunk and returns their affected counts.
func runBatch[T any](rows []T, chunkSize int, bind BindFunc[T], flush func([][]any) ([]int64, error)) ([]int64, error) {
	var (
		p       Params
		pending [][]any
		counts  []int64
	)
	for _, row := range rows {
		if err := bind(&p, row); err != nil {
			return nil, err
		}
		pending = append(pending, p.snapshot())
		if chunkSize > 0 && len(pending) == chunkSize {
			chunk, err := flush(pending)
			if err != nil {
				return nil, err
			}
			counts = append(counts, chunk...)
			pending = pending[:0]
		}
	}
	if len(pending) > 0 {
		chunk, err := flush(pending)
		if err != nil {
			return nil, err
		}
		counts = append(counts, chunk...)
	}
	return counts, nil
}
