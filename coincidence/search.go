package coincidence

import (
	"context"
	"fmt"

	"github.com/katalvlaran/heterolattice/internal/parallel"
	"github.com/katalvlaran/heterolattice/lattice"
)

// Search enumerates the coincidence tuples (m1,m2,n1,n2) in
// [nmin,nmax]^4 for which |A*(m1,m2) - R(thetaRad)*B*(n1,n2)| < tol,
// excluding the all-equal tuple (which also removes the null vector
// whenever 0 is in range).
//
// Stage 1 (Validate): nmax >= nmin and tol > 0, else ErrInvalidParameter.
// Stage 2 (Execute): the outer index m1 is partitioned across a worker
// pool (internal/parallel.Map); each worker enumerates its slice of the
// 4D grid and returns its local matches. Comparisons use strict "<".
//
// Complexity: O((nmax-nmin+1)^4) distance evaluations, the hot loop of
// the whole system.
func Search(ctx context.Context, a, b lattice.Basis, thetaRad float64, nmin, nmax int64, tol float64, opts ...SearchOption) ([]Coincidence, error) {
	if nmax < nmin {
		return nil, fmt.Errorf("Search: %w", ErrInvalidParameter)
	}
	if tol <= 0 {
		return nil, fmt.Errorf("Search: %w", ErrInvalidParameter)
	}

	cfg := newSearchConfig(opts...)
	span := nmax - nmin + 1

	results, err := parallel.Map(ctx, int(span), cfg.workers, func(_ context.Context, idx int) ([]Coincidence, error) {
		m1 := nmin + int64(idx)
		var local []Coincidence
		for m2 := nmin; m2 <= nmax; m2++ {
			am := lattice.Apply(a, lattice.IntVec2{m1, m2})
			for n1 := nmin; n1 <= nmax; n1++ {
				for n2 := nmin; n2 <= nmax; n2++ {
					if m1 == m2 && m2 == n1 && n1 == n2 {
						continue
					}
					bn := lattice.Rotate(lattice.Apply(b, lattice.IntVec2{n1, n2}), thetaRad)
					if lattice.Distance(am, bn) < tol {
						local = append(local, Coincidence{M1: m1, M2: m2, N1: n1, N2: n2})
					}
				}
			}
		}

		return local, nil
	})
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	cfg.logger.Debugw("coincidence search complete", "theta_rad", thetaRad, "count", len(results))

	return results, nil
}
