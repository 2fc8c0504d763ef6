package atoms

import "github.com/katalvlaran/heterolattice/lattice"

// Vec3 is a Cartesian 3-vector in angstrom.
type Vec3 [3]float64

// PBCFlags marks which of the three cell axes are periodic.
type PBCFlags [3]bool

// TwoDPBC is the periodicity flag set expected of a stacked 2D interface:
// periodic in-plane, open along the stacking axis.
var TwoDPBC = PBCFlags{true, true, false}

// Cell is a 3x3 real matrix whose rows are the lattice vectors a, b, c.
// For a 2D layer, c is conventionally taken along z with enough vacuum to
// avoid spurious images.
type Cell [3][3]float64

// Atoms is a finite collection of atoms: a cell plus three parallel,
// equal-length sequences of positions, species and pbc flags (see
// ErrLengthMismatch / Validate).
type Atoms struct {
	Cell      Cell
	Positions []Vec3
	Species   []string
	PBC       []PBCFlags
}

// Len returns the atom count.
func (a Atoms) Len() int { return len(a.Positions) }

// Validate checks that Positions, Species and PBC all have equal length.
func (a Atoms) Validate() error {
	n := len(a.Positions)
	if len(a.Species) != n || len(a.PBC) != n {
		return ErrLengthMismatch
	}

	return nil
}

// InPlaneBasis extracts the top-left 2x2 submatrix of Cell as a real
// in-plane lattice basis.
func (a Atoms) InPlaneBasis() lattice.Basis {
	return lattice.Basis{
		{a.Cell[0][0], a.Cell[0][1]},
		{a.Cell[1][0], a.Cell[1][1]},
	}
}

// clone returns a deep copy of a, so operators never alias a caller's
// backing slices.
func (a Atoms) clone() Atoms {
	out := Atoms{
		Cell:      a.Cell,
		Positions: make([]Vec3, len(a.Positions)),
		Species:   make([]string, len(a.Species)),
		PBC:       make([]PBCFlags, len(a.PBC)),
	}
	copy(out.Positions, a.Positions)
	copy(out.Species, a.Species)
	copy(out.PBC, a.PBC)

	return out
}
