package supercell

import (
	"math"

	"github.com/katalvlaran/heterolattice/atoms"
)

// AreaEpsilon is the absolute tolerance, in angstrom^2, below which two
// interface areas are considered equal by dedup and by identity hashing.
const AreaEpsilon = 1e-4

// Area returns the magnitude of the cross product of a's two in-plane
// lattice vectors, the area used both by dedup and by the
// identity hash.
func Area(a atoms.Atoms) float64 {
	b := a.InPlaneBasis()

	return abs(b[0][0]*b[1][1] - b[0][1]*b[1][0])
}

// QuantizeArea rounds area to the AreaEpsilon grid, so two areas that
// compare equal under dedup's epsilon also hash to the same identity.
func QuantizeArea(area float64) float64 {
	return math.Round(area/AreaEpsilon) * AreaEpsilon
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
