package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/heterolattice/lattice"
	"github.com/stretchr/testify/require"
)

func TestApply_Identity(t *testing.T) {
	t.Parallel()

	identity := lattice.Basis{{1, 0}, {0, 1}}
	got := lattice.Apply(identity, lattice.IntVec2{3, -2})
	require.Equal(t, lattice.Vec2{3, -2}, got)
}

func TestRotate_NinetyDegrees(t *testing.T) {
	t.Parallel()

	got := lattice.Rotate(lattice.Vec2{1, 0}, math.Pi/2)
	require.InDelta(t, 0, got[0], 1e-12)
	require.InDelta(t, 1, got[1], 1e-12)
}

func TestRotate_IsIsometry(t *testing.T) {
	t.Parallel()

	u := lattice.Vec2{3, 4}
	v := lattice.Vec2{-1, 2}
	before := lattice.Distance(u, v)

	theta := 0.7
	ur := lattice.Rotate(u, theta)
	vr := lattice.Rotate(v, theta)
	after := lattice.Distance(ur, vr)

	require.InDelta(t, before, after, 1e-10)
}

func TestDistance_Zero(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, lattice.Distance(lattice.Vec2{1, 1}, lattice.Vec2{1, 1}))
}
