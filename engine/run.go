package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/heterolattice/atoms"
	"github.com/katalvlaran/heterolattice/coincidence"
	"github.com/katalvlaran/heterolattice/dedup"
	"github.com/katalvlaran/heterolattice/supercell"
)

// Run is the single public entry point of the coincidence-lattice
// search: for each candidate angle it runs coincidence.Search then
// coincidence.ReducePairs, builds and standardizes an Interface for
// every surviving primitive pair (supercell.BuildInterfaces), and
// returns the deduplicated result sorted by (space_group, atom_count,
// area).
//
// Stage 1 (Validate): params.validate(), else ErrInvalidParameter.
// Stage 2 (Prepare): resolve the angle set (explicit Angles or the
// AngleLimits/AngleStep sweep) and the two in-plane bases.
// Stage 3 (Execute): for each angle, in order, Run checks ctx once; ctx
// is also passed to Search, ReducePairs and BuildInterfaces, whose
// worker pools stop before their next outer index once it is canceled.
// Angles that yield no primitive pairs are dropped silently.
// Stage 4 (Finalize): dedup.Dedup the accumulated interfaces and return.
//
// If no angle yields a primitive pair, Run returns (nil, nil): an empty
// result is not an error.
func Run(ctx context.Context, bottom, top atoms.Atoms, params Params, opts ...RunOption) ([]supercell.Interface, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	angles := params.resolveAngles()
	if len(angles) == 0 {
		return nil, fmt.Errorf("engine: empty angle set: %w", ErrInvalidParameter)
	}

	cfg := newRunConfig(opts...)
	a := bottom.InPlaneBasis()
	b := top.InPlaneBasis()

	var all []supercell.Interface
	for _, angleDeg := range angles {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		thetaRad := angleDeg * math.Pi / 180

		raw, err := coincidence.Search(ctx, a, b, thetaRad, params.Nmin, params.Nmax, params.Tolerance,
			coincidence.WithLogger(cfg.logger), coincidence.WithWorkers(params.Workers))
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		if len(raw) == 0 {
			continue
		}

		pairs, err := coincidence.ReducePairs(ctx, raw,
			coincidence.WithLogger(cfg.logger), coincidence.WithWorkers(params.Workers))
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		if len(pairs) == 0 {
			continue
		}

		ifaces, err := supercell.BuildInterfaces(ctx, bottom, top, thetaRad, params.Weight, params.Distance, pairs,
			supercell.WithLogger(cfg.logger),
			supercell.WithWorkers(params.Workers),
			supercell.WithStandardizer(cfg.standardizer),
			supercell.WithSymprec(params.Symprec),
			supercell.WithAngleTolerance(params.AngleTolerance),
			supercell.WithToPrimitive(params.ToPrimitive),
			supercell.WithNoIdealize(params.NoIdealize),
		)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}

		all = append(all, ifaces...)
	}

	if len(all) == 0 {
		return nil, nil
	}

	return dedup.Dedup(all), nil
}
