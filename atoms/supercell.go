package atoms

import (
	"fmt"

	"github.com/katalvlaran/heterolattice/intmath"
	"github.com/katalvlaran/heterolattice/matrix"
)

// boundaryEpsilon tolerates atoms that land exactly on a fractional-cell
// boundary due to floating-point rounding of an otherwise-exact lattice
// translation.
const boundaryEpsilon = 1e-8

// MakeSupercell expands atoms into the supercell described by the 3x3
// integer matrix m3 (newCell = m3 * oldCell), which must have a strictly
// positive determinant.
//
// Stage 1 (Validate): det(m3) > 0, else ErrDegenerateCell.
// Stage 2 (Prepare): compute the new cell and its inverse (for
// fractional-coordinate membership tests), and a conservative bounding
// box of integer translation offsets from the image of the unit cube
// under m3.
// Stage 3 (Execute): for every candidate offset and every input atom,
// translate and keep the image iff its fractional coordinates in the new
// cell lie in [0,1) (within boundaryEpsilon).
//
// Required post-condition: len(output) == |det(m3)| * len(input), up to
// one boundaryEpsilon at the cell faces.
func MakeSupercell(a Atoms, m3 [3][3]int64) (Atoms, error) {
	if err := a.Validate(); err != nil {
		return Atoms{}, err
	}

	detM := intmath.Det3(m3)
	if detM <= 0 {
		return Atoms{}, ErrDegenerateCell
	}

	newCell := multiplyIntCell(m3, a.Cell)

	newCellDense, err := matrix.NewDenseFromRows([][]float64{
		newCell[0][:], newCell[1][:], newCell[2][:],
	})
	if err != nil {
		return Atoms{}, fmt.Errorf("MakeSupercell: %w", ErrDegenerateCell)
	}
	invNewCell, err := matrix.Inverse(newCellDense)
	if err != nil {
		return Atoms{}, fmt.Errorf("MakeSupercell: %w", ErrDegenerateCell)
	}

	lo, hi := boundingBoxOfUnitCubeImage(m3)

	out := Atoms{Cell: newCell}
	for o0 := lo[0]; o0 <= hi[0]; o0++ {
		for o1 := lo[1]; o1 <= hi[1]; o1++ {
			for o2 := lo[2]; o2 <= hi[2]; o2++ {
				offsetCart := offsetCartesian(a.Cell, [3]int64{o0, o1, o2})
				for i, p := range a.Positions {
					cand := Vec3{p[0] + offsetCart[0], p[1] + offsetCart[1], p[2] + offsetCart[2]}
					frac := fractionalOf(cand, invNewCell)
					if !inUnitCell(frac) {
						continue
					}
					out.Positions = append(out.Positions, cand)
					out.Species = append(out.Species, a.Species[i])
					out.PBC = append(out.PBC, a.PBC[i])
				}
			}
		}
	}

	return out, nil
}

// multiplyIntCell computes m3 * cell (integer matrix times real cell).
func multiplyIntCell(m3 [3][3]int64, cell Cell) Cell {
	var out Cell
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += float64(m3[i][k]) * cell[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// boundingBoxOfUnitCubeImage returns the integer bounding box, padded by
// one cell in each direction, of the image of the unit cube {0,1}^3
// under m3 — the conservative range of old-basis translation offsets
// that could possibly land inside the new cell.
func boundingBoxOfUnitCubeImage(m3 [3][3]int64) (lo, hi [3]int64) {
	lo = [3]int64{0, 0, 0}
	hi = [3]int64{0, 0, 0}
	for corner := 0; corner < 8; corner++ {
		c := [3]int64{int64(corner & 1), int64((corner >> 1) & 1), int64((corner >> 2) & 1)}
		for i := 0; i < 3; i++ {
			v := m3[i][0]*c[0] + m3[i][1]*c[1] + m3[i][2]*c[2]
			if v < lo[i] {
				lo[i] = v
			}
			if v > hi[i] {
				hi[i] = v
			}
		}
	}
	for i := 0; i < 3; i++ {
		lo[i]--
		hi[i]++
	}

	return lo, hi
}

// offsetCartesian converts an integer translation given in old-basis
// lattice-vector units into a Cartesian offset.
func offsetCartesian(cell Cell, o [3]int64) Vec3 {
	var out Vec3
	for j := 0; j < 3; j++ {
		out[j] = float64(o[0])*cell[0][j] + float64(o[1])*cell[1][j] + float64(o[2])*cell[2][j]
	}

	return out
}

// fractionalOf computes the fractional coordinates of a Cartesian point
// with respect to a cell whose inverse is invCell (frac = cart * invCell,
// since cell rows are lattice vectors and cart = frac * cell).
func fractionalOf(cart Vec3, invCell *matrix.Dense) Vec3 {
	var out Vec3
	for j := 0; j < 3; j++ {
		out[j] = cart[0]*invCell.At(0, j) + cart[1]*invCell.At(1, j) + cart[2]*invCell.At(2, j)
	}

	return out
}

// inUnitCell reports whether frac lies in [0,1) on every axis, within
// boundaryEpsilon.
func inUnitCell(frac Vec3) bool {
	for _, f := range frac {
		if f < -boundaryEpsilon || f >= 1-boundaryEpsilon {
			return false
		}
	}

	return true
}
