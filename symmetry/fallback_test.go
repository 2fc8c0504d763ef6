package symmetry_test

import (
	"testing"

	"github.com/katalvlaran/heterolattice/atoms"
	"github.com/katalvlaran/heterolattice/symmetry"
	"github.com/stretchr/testify/require"
)

func squareOneAtom() atoms.Atoms {
	return atoms.Atoms{
		Cell:      atoms.Cell{{1, 0, 0}, {0, 1, 0}, {0, 0, 20}},
		Positions: []atoms.Vec3{{0, 0, 0}},
		Species:   []string{"C"},
		PBC:       []atoms.PBCFlags{atoms.TwoDPBC},
	}
}

func hexagonalOneAtom() atoms.Atoms {
	// A p6-symmetric arrangement: a hexagonal cell with a single atom at
	// the origin, which every rotation about that atom maps onto itself.
	return atoms.Atoms{
		Cell:      atoms.Cell{{1, 0, 0}, {-0.5, 0.8660254037844386, 0}, {0, 0, 20}},
		Positions: []atoms.Vec3{{0, 0, 0}},
		Species:   []string{"C"},
		PBC:       []atoms.PBCFlags{atoms.TwoDPBC},
	}
}

func obliqueTwoAtom() atoms.Atoms {
	return atoms.Atoms{
		Cell: atoms.Cell{{1, 0, 0}, {0.3, 1.1, 0}, {0, 0, 20}},
		Positions: []atoms.Vec3{
			{0, 0, 0},
			{0.6, 0.2, 0},
		},
		Species: []string{"C", "N"},
		PBC:     []atoms.PBCFlags{atoms.TwoDPBC, atoms.TwoDPBC},
	}
}

func TestStandardize_EmptyAtoms(t *testing.T) {
	t.Parallel()

	var lf symmetry.LatticeFallback
	_, _, err := lf.Standardize(atoms.Atoms{}, false, false, 1e-3, 1.0)
	require.ErrorIs(t, err, symmetry.ErrEmptyAtoms)
}

func TestStandardize_SquareSingleAtomDetectsFourFold(t *testing.T) {
	t.Parallel()

	var lf symmetry.LatticeFallback
	sg, out, err := lf.Standardize(squareOneAtom(), false, false, 1e-6, 1.0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, sg, 1)
	require.LessOrEqual(t, sg, 230)
	require.Equal(t, 99, sg) // P4mm: four-fold rotation plus a mirror line
	require.Equal(t, 1, out.Len())
}

func TestStandardize_HexagonalSingleAtom(t *testing.T) {
	t.Parallel()

	var lf symmetry.LatticeFallback
	sg, _, err := lf.Standardize(hexagonalOneAtom(), false, true, 1e-6, 1.0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, sg, 1)
	require.LessOrEqual(t, sg, 230)
}

func TestStandardize_NoIdealizeKeepsPositions(t *testing.T) {
	t.Parallel()

	var lf symmetry.LatticeFallback
	in := obliqueTwoAtom()
	_, out, err := lf.Standardize(in, false, true, 1e-6, 1.0)
	require.NoError(t, err)
	require.Equal(t, in.Positions, out.Positions)
}

func TestStandardize_IdealizeRecentersAroundCentroid(t *testing.T) {
	t.Parallel()

	var lf symmetry.LatticeFallback
	_, out, err := lf.Standardize(squareOneAtom(), false, false, 1e-6, 1.0)
	require.NoError(t, err)
	require.InDelta(t, 0, out.Positions[0][0], 1e-9)
	require.InDelta(t, 0, out.Positions[0][1], 1e-9)
}

func TestStandardize_SingularCellReturnsZero(t *testing.T) {
	t.Parallel()

	degenerate := atoms.Atoms{
		Cell:      atoms.Cell{{1, 0, 0}, {2, 0, 0}, {0, 0, 20}},
		Positions: []atoms.Vec3{{0, 0, 0}},
		Species:   []string{"C"},
		PBC:       []atoms.PBCFlags{atoms.TwoDPBC},
	}

	var lf symmetry.LatticeFallback
	sg, _, err := lf.Standardize(degenerate, false, false, 1e-6, 1.0)
	require.NoError(t, err)
	require.Equal(t, 0, sg)
}

func TestStandardize_IsDeterministic(t *testing.T) {
	t.Parallel()

	var lf symmetry.LatticeFallback
	in := obliqueTwoAtom()
	sg1, out1, err := lf.Standardize(in, false, false, 1e-6, 1.0)
	require.NoError(t, err)
	sg2, out2, err := lf.Standardize(in, false, false, 1e-6, 1.0)
	require.NoError(t, err)
	require.Equal(t, sg1, sg2)
	require.Equal(t, out1, out2)
}
