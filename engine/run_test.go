package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heterolattice/atoms"
	"github.com/katalvlaran/heterolattice/engine"
)

type fixedGroup struct{ group int }

func (f fixedGroup) Standardize(in atoms.Atoms, _, _ bool, _, _ float64) (int, atoms.Atoms, error) {
	return f.group, in, nil
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

func TestRun_InvalidParameters(t *testing.T) {
	t.Parallel()

	bottom := onePerCell(identityCell(20))
	p := engine.Params{Nmin: 1, Nmax: 0, Tolerance: 1e-6, Weight: 0.5, Distance: 4, AngleStep: 1, AngleLimits: [2]float64{0, 90}}
	_, err := engine.Run(context.Background(), bottom, bottom, p)
	require.ErrorIs(t, err, engine.ErrInvalidParameter)

	p2 := engine.Params{Nmin: 0, Nmax: 1, Tolerance: 1e-6, Weight: 1.5, Distance: 4, AngleStep: 1, AngleLimits: [2]float64{0, 90}}
	_, err = engine.Run(context.Background(), bottom, bottom, p2)
	require.ErrorIs(t, err, engine.ErrInvalidParameter)

	p3 := engine.Params{Nmin: 0, Nmax: 1, Tolerance: 1e-6, Weight: 0.5, Distance: 4}
	_, err = engine.Run(context.Background(), bottom, bottom, p3)
	require.ErrorIs(t, err, engine.ErrInvalidParameter)
}

// An angle sweep that yields no coincidences anywhere returns an
// empty result, not an error.
func TestRun_NoCoincidencesYieldsEmptyResult(t *testing.T) {
	t.Parallel()

	bottom := onePerCell(identityCell(20))
	top := onePerCell(atoms.Cell{{1.37, 0, 0}, {0, 1.41, 0}, {0, 0, 20}})

	p := engine.Params{
		Nmin: 0, Nmax: 1, Tolerance: 1e-9,
		Angles:   []float64{0},
		Weight:   0.5, Distance: 4,
	}
	got, err := engine.Run(context.Background(), bottom, top, p, engine.WithStandardizer(fixedGroup{group: 191}))
	require.NoError(t, err)
	require.Empty(t, got)
}

// Identity bases, one atom per cell, weight=0.5, distance=4.
func TestRun_EndToEndTrivialAtoms(t *testing.T) {
	t.Parallel()

	bottom := onePerCell(identityCell(20))
	top := onePerCell(identityCell(20))

	p := engine.Params{
		Nmin: 0, Nmax: 1, Tolerance: 1e-6,
		Angles:   []float64{0},
		Weight:   0.5, Distance: 4,
	}
	got, err := engine.Run(context.Background(), bottom, top, p, engine.WithStandardizer(fixedGroup{group: 47}))
	require.NoError(t, err)
	require.NotEmpty(t, got)

	iface := got[0]
	require.Equal(t, 2, iface.Stacked.Len())
	require.InDelta(t, 1, iface.Stacked.Cell[0][0], 1e-9)
	require.InDelta(t, 1, iface.Stacked.Cell[1][1], 1e-9)
	for _, pbc := range iface.Stacked.PBC {
		require.Equal(t, atoms.TwoDPBC, pbc)
	}
	zGap := iface.Stacked.Positions[1][2] - iface.Stacked.Positions[0][2]
	if zGap < 0 {
		zGap = -zGap
	}
	require.GreaterOrEqual(t, zGap, 4.0-1e-9)
}

// Two identical bases at theta=0: every accepted pair has M == N.
func TestRun_IdenticalBasesProduceMEqualsN(t *testing.T) {
	t.Parallel()

	bottom := onePerCell(identityCell(20))
	top := onePerCell(identityCell(20))

	p := engine.Params{
		Nmin: 0, Nmax: 3, Tolerance: 0.05,
		Angles:   []float64{0},
		Weight:   0.5, Distance: 4,
	}
	got, err := engine.Run(context.Background(), bottom, top, p, engine.WithStandardizer(fixedGroup{group: 47}))
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for _, iface := range got {
		require.Equal(t, iface.M, iface.N)
	}
}

// Repeated runs over identical inputs produce identically ordered
// results.
func TestRun_DeterministicOrdering(t *testing.T) {
	t.Parallel()

	bottom := onePerCell(identityCell(20))
	top := onePerCell(identityCell(20))

	p := engine.Params{
		Nmin: 0, Nmax: 2, Tolerance: 0.05,
		Angles:   []float64{0},
		Weight:   0.5, Distance: 4,
	}
	got1, err := engine.Run(context.Background(), bottom, top, p, engine.WithStandardizer(fixedGroup{group: 47}))
	require.NoError(t, err)
	got2, err := engine.Run(context.Background(), bottom, top, p, engine.WithStandardizer(fixedGroup{group: 47}))
	require.NoError(t, err)

	require.Equal(t, len(got1), len(got2))
	for i := range got1 {
		require.Equal(t, got1[i].SpaceGroup, got2[i].SpaceGroup)
		require.Equal(t, got1[i].AtomCount, got2[i].AtomCount)
		require.InDelta(t, got1[i].Area, got2[i].Area, 1e-12)
	}
}

func TestRun_AngleLimitsSweepWhenAnglesEmpty(t *testing.T) {
	t.Parallel()

	bottom := onePerCell(identityCell(20))
	top := onePerCell(identityCell(20))

	p := engine.Params{
		Nmin: 0, Nmax: 1, Tolerance: 1e-6,
		AngleLimits: [2]float64{0, 1}, AngleStep: 1,
		Weight: 0.5, Distance: 4,
	}
	got, err := engine.Run(context.Background(), bottom, top, p, engine.WithStandardizer(fixedGroup{group: 47}))
	require.NoError(t, err)
	require.NotEmpty(t, got)
}
