package supercell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heterolattice/atoms"
	"github.com/katalvlaran/heterolattice/coincidence"
	"github.com/katalvlaran/heterolattice/supercell"
)

// alwaysGroup is a Standardizer test double that reports a fixed space
// group and returns its input unchanged, used to isolate BuildInterfaces
// from LatticeFallback's detection heuristics.
type alwaysGroup struct{ group int }

func (a alwaysGroup) Standardize(in atoms.Atoms, _, _ bool, _, _ float64) (int, atoms.Atoms, error) {
	return a.group, in, nil
}

func onePerCell(cell atoms.Cell) atoms.Atoms {
	return atoms.Atoms{
		Cell:      cell,
		Positions: []atoms.Vec3{{0, 0, 0}},
		Species:   []string{"C"},
		PBC:       []atoms.PBCFlags{atoms.TwoDPBC},
	}
}

func identityCell(vacuum float64) atoms.Cell {
	return atoms.Cell{{1, 0, 0}, {0, 1, 0}, {0, 0, vacuum}}
}

func identityPair() coincidence.PrimitivePair {
	return coincidence.PrimitivePair{
		M: coincidence.SupercellMatrix2{{1, 0}, {0, 1}},
		N: coincidence.SupercellMatrix2{{1, 0}, {0, 1}},
	}
}

func TestBuildInterfaces_InvalidParameter(t *testing.T) {
	t.Parallel()

	bottom := onePerCell(identityCell(20))
	_, err := supercell.BuildInterfaces(context.Background(), bottom, bottom, 0, 1.5, 3.0, []coincidence.PrimitivePair{identityPair()})
	require.ErrorIs(t, err, supercell.ErrInvalidParameter)

	_, err = supercell.BuildInterfaces(context.Background(), bottom, bottom, 0, 0.5, 0, []coincidence.PrimitivePair{identityPair()})
	require.ErrorIs(t, err, supercell.ErrInvalidParameter)
}

func TestBuildInterfaces_AdmitsWhenStandardizerSucceeds(t *testing.T) {
	t.Parallel()

	bottom := onePerCell(identityCell(20))
	top := onePerCell(identityCell(20))

	got, err := supercell.BuildInterfaces(context.Background(), bottom, top, 0, 0.5, 3.0, []coincidence.PrimitivePair{identityPair()},
		supercell.WithStandardizer(alwaysGroup{group: 191}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 191, got[0].SpaceGroup)
	require.Equal(t, 2, got[0].AtomCount)
	require.NotEqual(t, got[0].ID.String(), "")
}

func TestBuildInterfaces_DropsWhenStandardizerFails(t *testing.T) {
	t.Parallel()

	bottom := onePerCell(identityCell(20))
	top := onePerCell(identityCell(20))

	got, err := supercell.BuildInterfaces(context.Background(), bottom, top, 0, 0.5, 3.0, []coincidence.PrimitivePair{identityPair()},
		supercell.WithStandardizer(alwaysGroup{group: 0}))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestBuildInterfaces_EquivalentCandidatesShareID(t *testing.T) {
	t.Parallel()

	bottom := onePerCell(identityCell(20))
	top := onePerCell(identityCell(20))

	pairs := []coincidence.PrimitivePair{identityPair(), identityPair()}
	got, err := supercell.BuildInterfaces(context.Background(), bottom, top, 0, 0.5, 3.0, pairs,
		supercell.WithStandardizer(alwaysGroup{group: 47}))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, got[0].ID, got[1].ID)
}

func TestLift2To3_PreservesUpperLeftBlock(t *testing.T) {
	t.Parallel()

	m := coincidence.SupercellMatrix2{{2, 1}, {0, 3}}
	got := supercell.Lift2To3(m)
	require.Equal(t, [3][3]int64{{2, 1, 0}, {0, 3, 0}, {0, 0, 1}}, got)
}
