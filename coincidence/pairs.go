package coincidence

import (
	"context"
	"fmt"

	"github.com/katalvlaran/heterolattice/internal/parallel"
	"github.com/katalvlaran/heterolattice/intmath"
)

// ReducePairs combines every unordered pair (i, j), i < j, of raw
// coincidences into a candidate (M, N) supercell-matrix pair, keeping it
// iff both determinants are strictly positive and the combined eight
// entries have absolute GCD 1. When both determinants are negative the
// rows are swapped (the pair is taken as (j, i)), so the result does not
// depend on the order in which Search returned the coincidences.
//
// Stage 1 (Execute): the outer index i is partitioned across a worker
// pool; each worker scans j in (i, len) and emits the pairs that survive
// the determinant and GCD filters.
//
// Complexity: O(k^2) in len(coincidences).
func ReducePairs(ctx context.Context, coincidences []Coincidence, opts ...SearchOption) ([]PrimitivePair, error) {
	cfg := newSearchConfig(opts...)
	n := len(coincidences)

	pairs, err := parallel.Map(ctx, n, cfg.workers, func(_ context.Context, i int) ([]PrimitivePair, error) {
		var local []PrimitivePair
		ci := coincidences[i]
		for j := i + 1; j < n; j++ {
			cj := coincidences[j]
			m := SupercellMatrix2{{ci.M1, ci.M2}, {cj.M1, cj.M2}}
			nMat := SupercellMatrix2{{ci.N1, ci.N2}, {cj.N1, cj.N2}}

			detM := intmath.Det2([2][2]int64(m))
			detN := intmath.Det2([2][2]int64(nMat))
			if detM < 0 && detN < 0 {
				// Taking the pair as (j, i) flips both signs.
				m[0], m[1] = m[1], m[0]
				nMat[0], nMat[1] = nMat[1], nMat[0]
				detM, detN = -detM, -detN
			}
			if detM <= 0 || detN <= 0 {
				continue
			}

			g := intmath.GCDOfList([]int64{
				m[0][0], m[0][1], m[1][0], m[1][1],
				nMat[0][0], nMat[0][1], nMat[1][0], nMat[1][1],
			})
			if g != 1 {
				continue
			}

			local = append(local, PrimitivePair{M: m, N: nMat})
		}

		return local, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReducePairs: %w", err)
	}

	cfg.logger.Debugw("primitive pair reduction complete", "raw", n, "primitive", len(pairs))

	return pairs, nil
}
