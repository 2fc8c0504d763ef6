package matrix_test

import (
	"testing"

	"github.com/katalvlaran/heterolattice/matrix"
	"github.com/stretchr/testify/require"
)

func TestInverse_Identity(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, inv.At(i, j), 1e-12)
		}
	}
}

func TestInverse_Diagonal(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{
		{2, 0, 0},
		{0, 4, 0},
		{0, 0, 5},
	})
	require.NoError(t, err)

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	require.InDelta(t, 0.5, inv.At(0, 0), 1e-12)
	require.InDelta(t, 0.25, inv.At(1, 1), 1e-12)
	require.InDelta(t, 0.2, inv.At(2, 2), 1e-12)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{0, 0, 1},
	})
	require.NoError(t, err)

	_, err = matrix.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_NonSquare(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = matrix.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
