package supercell

import "github.com/katalvlaran/heterolattice/coincidence"

// Lift2To3 embeds a 2x2 integer supercell matrix in the upper-left block
// of a 3x3 matrix with a 1 at (3,3), so the in-plane transformation
// leaves the stacking axis untouched.
func Lift2To3(m coincidence.SupercellMatrix2) [3][3]int64 {
	return [3][3]int64{
		{m[0][0], m[0][1], 0},
		{m[1][0], m[1][1], 0},
		{0, 0, 1},
	}
}
