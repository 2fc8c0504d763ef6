package supercell

import (
	"context"
	"fmt"

	"github.com/katalvlaran/heterolattice/atoms"
	"github.com/katalvlaran/heterolattice/coincidence"
	"github.com/katalvlaran/heterolattice/internal/parallel"
)

// BuildInterfaces expands every pair in pairs into a candidate Interface
// for the given bottom/top layers and rotation angle theta, dropping any
// candidate the Standardizer cannot assign a space group to.
//
// Stage 1 (Validate): weight in [0,1] and distance > 0, else
// ErrInvalidParameter.
// Stage 2 (Execute): pairs is partitioned across a worker pool
// (internal/parallel.Map, the same helper used by coincidence.Search);
// each worker lifts its pair to 3x3, expands both layers
// (atoms.MakeSupercell), rotates the top layer
// (atoms.RotateAtomsAroundZ), stacks them (atoms.StackAtoms), and
// standardizes the result.
//
// Parallelism/order: as with coincidence.Search, the returned order is
// unspecified; callers that need determinism sort afterward themselves.
func BuildInterfaces(ctx context.Context, bottom, top atoms.Atoms, thetaRad, weight, distance float64, pairs []coincidence.PrimitivePair, opts ...BuildOption) ([]Interface, error) {
	if weight < 0 || weight > 1 || distance <= 0 {
		return nil, fmt.Errorf("BuildInterfaces: %w", ErrInvalidParameter)
	}

	cfg := newBuildConfig(opts...)

	results, err := parallel.Map(ctx, len(pairs), cfg.workers, func(_ context.Context, idx int) ([]Interface, error) {
		pair := pairs[idx]
		iface, ok, err := buildOne(bottom, top, thetaRad, weight, distance, pair, &cfg)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}

		return []Interface{iface}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("BuildInterfaces: %w", err)
	}

	cfg.logger.Debugw("supercell build complete", "theta_rad", thetaRad, "pairs", len(pairs), "admitted", len(results))

	return results, nil
}

// buildOne runs the supercell-assembly pipeline for a single pair. ok is false when the
// standardizer could not assign a space group (space group 0), which is
// a normal, silent drop rather than an error.
func buildOne(bottom, top atoms.Atoms, thetaRad, weight, distance float64, pair coincidence.PrimitivePair, cfg *buildConfig) (Interface, bool, error) {
	m3 := Lift2To3(pair.M)
	n3 := Lift2To3(pair.N)

	bottomLayer, err := atoms.MakeSupercell(bottom, m3)
	if err != nil {
		return Interface{}, false, fmt.Errorf("buildOne: bottom layer: %w", err)
	}
	topLayer, err := atoms.MakeSupercell(top, n3)
	if err != nil {
		return Interface{}, false, fmt.Errorf("buildOne: top layer: %w", err)
	}
	topLayerRot := atoms.RotateAtomsAroundZ(topLayer, thetaRad)

	stacked, err := atoms.StackAtoms(bottomLayer, topLayerRot, weight, distance)
	if err != nil {
		return Interface{}, false, fmt.Errorf("buildOne: %w", err)
	}

	spaceGroup, standardized, err := cfg.standardizer.Standardize(stacked, cfg.toPrimitive, cfg.noIdealize, cfg.symprec, cfg.angleTol)
	if err != nil {
		return Interface{}, false, fmt.Errorf("buildOne: standardize: %w", err)
	}
	if spaceGroup == 0 {
		return Interface{}, false, nil
	}

	area := Area(standardized)
	iface := Interface{
		ID:         computeID(spaceGroup, standardized.Len(), area, thetaRad),
		Bottom:     bottomLayer,
		Top:        topLayerRot,
		Stacked:    standardized,
		ThetaRad:   thetaRad,
		M:          m3,
		N:          n3,
		SpaceGroup: spaceGroup,
		AtomCount:  standardized.Len(),
		Area:       area,
	}

	return iface, true, nil
}
