package supercell

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/heterolattice/atoms"
)

// Interface is an immutable, admitted heterostructure candidate: the two
// expanded and rotated layers, the stacked and standardized cell, the
// integer matrices that produced it, and the space-group number
// reported by the Standardizer.
type Interface struct {
	ID uuid.UUID

	Bottom  atoms.Atoms // MakeSupercell(bottom, M3)
	Top     atoms.Atoms // RotateAtomsAroundZ(MakeSupercell(top, N3), theta)
	Stacked atoms.Atoms // StackAtoms(Bottom, Top, weight, distance), standardized

	ThetaRad float64
	M, N     [3][3]int64

	SpaceGroup int
	AtomCount  int
	Area       float64 // |a1 x a2| of Stacked's in-plane cell, angstrom^2
}
