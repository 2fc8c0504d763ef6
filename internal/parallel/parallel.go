package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Map partitions the index range [0, n) into contiguous, statically sized
// chunks — one per worker — and runs fn over each index in its chunk on a
// pool of goroutines managed by errgroup.Group. Each worker accumulates
// its own private output slice; Map concatenates all worker slices, in
// worker order, after every goroutine has returned. The concatenation
// order is a merge convenience only: callers must not depend on any
// relationship between output order and index order.
//
// workers <= 0 selects runtime.GOMAXPROCS(0). n <= 0 returns (nil, nil)
// without spawning anything.
//
// If fn returns an error for any index, that error is returned (via
// errgroup, so only the first one observed) and the ctx passed to fn's
// siblings is canceled; already-collected partial results are discarded.
func Map[T any](ctx context.Context, n, workers int, fn func(ctx context.Context, idx int) ([]T, error)) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	group, gctx := errgroup.WithContext(ctx)
	partials := make([][]T, workers)

	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}

		group.Go(func() error {
			local := make([]T, 0, hi-lo)
			for i := lo; i < hi; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				out, err := fn(gctx, i)
				if err != nil {
					return err
				}
				local = append(local, out...)
			}
			partials[w] = local

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range partials {
		total += len(p)
	}
	merged := make([]T, 0, total)
	for _, p := range partials {
		merged = append(merged, p...)
	}

	return merged, nil
}
