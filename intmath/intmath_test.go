package intmath_test

import (
	"testing"

	"github.com/katalvlaran/heterolattice/intmath"
	"github.com/stretchr/testify/require"
)

func TestGCDOfList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xs   []int64
		want int64
	}{
		{"empty", nil, 0},
		{"all zero", []int64{0, 0, 0}, 0},
		{"single", []int64{7}, 7},
		{"coprime pair", []int64{4, 9}, 1},
		{"common factor", []int64{12, 18, 24}, 6},
		{"negative entries", []int64{-8, 12}, 4},
		{"primitive pair eight-entry", []int64{1, 0, 0, 1, 1, 0, 0, 1}, 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, intmath.GCDOfList(tc.xs))
		})
	}
}

func TestDet2(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(1), intmath.Det2([2][2]int64{{1, 0}, {0, 1}}))
	require.Equal(t, int64(4), intmath.Det2([2][2]int64{{2, 0}, {0, 2}}))
	require.Equal(t, int64(-2), intmath.Det2([2][2]int64{{0, 1}, {2, 0}}))
}

func TestDet3(t *testing.T) {
	t.Parallel()

	identity := [3][3]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	require.Equal(t, int64(1), intmath.Det3(identity))

	lifted := [3][3]int64{{2, 0, 0}, {0, 3, 0}, {0, 0, 1}}
	require.Equal(t, int64(6), intmath.Det3(lifted))
}
