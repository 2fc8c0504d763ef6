package symmetry

import (
	"errors"
	"math"

	"github.com/katalvlaran/heterolattice/atoms"
	"github.com/katalvlaran/heterolattice/lattice"
)

// ErrEmptyAtoms indicates Standardize was called with a zero-atom
// structure, a misuse of the interface rather than a normal
// standardization failure.
var ErrEmptyAtoms = errors.New("symmetry: atoms has no positions")

// spaceGroupByOrder maps a detected in-plane rotational symmetry order
// (and whether a mirror line was also found) to one real, valid
// international space-group number. This is a deliberately small,
// documented subset of the 230 groups — the layer-appropriate ones
// consistent with pbc=(T,T,F) — chosen so LatticeFallback works without
// an external spglib binding.
var spaceGroupByOrder = map[int]map[bool]int{
	1: {false: 1, true: 6},    // P1 / Pm
	2: {false: 3, true: 10},   // P2 / P2/m
	3: {false: 143, true: 156}, // P3 / P3m1
	4: {false: 75, true: 99},  // P4 / P4mm
	6: {false: 168, true: 183}, // P6 / P6mm
}

// candidateOrders is tried from highest to lowest so the detector
// reports the finest symmetry the structure actually has.
var candidateOrders = []int{6, 4, 3, 2, 1}

// LatticeFallback is a stateless, reentrant Standardizer that detects
// the in-plane point-group symmetry of a stacked 2D interface by
// testing candidate rotations against the in-plane lattice and the atom
// set, and a mirror line against the atom set only, and maps the result
// through spaceGroupByOrder. It never returns a
// number outside 1..230 and returns 0 only when the in-plane cell is
// singular (a soft standardization failure, not a Go error).
type LatticeFallback struct{}

// Standardize implements Standardizer.
func (LatticeFallback) Standardize(in atoms.Atoms, _ bool, noIdealize bool, symprec, _ float64) (int, atoms.Atoms, error) {
	if in.Len() == 0 {
		return 0, atoms.Atoms{}, ErrEmptyAtoms
	}

	basis := in.InPlaneBasis()
	detA := basis[0][0]*basis[1][1] - basis[0][1]*basis[1][0]
	if detA == 0 {
		return 0, in, nil
	}

	center := centroidXY(in)
	order := 1
	for _, o := range candidateOrders {
		if o == 1 {
			continue
		}
		if matchesUnderRotation(in, center, o, symprec) {
			order = o
			break
		}
	}
	mirror := matchesUnderMirror(in, center, symprec)

	sg := spaceGroupByOrder[order][mirror]

	out := in
	if !noIdealize {
		out = recenter(in, center)
	}

	return sg, out, nil
}

func centroidXY(a atoms.Atoms) lattice.Vec2 {
	var cx, cy float64
	for _, p := range a.Positions {
		cx += p[0]
		cy += p[1]
	}
	n := float64(len(a.Positions))

	return lattice.Vec2{cx / n, cy / n}
}

// matchesUnderRotation reports whether rotating the in-plane basis by
// 2*pi/order yields lattice vectors and rotating every atom by the same
// angle about center reproduces the same (species, position) multiset,
// using the in-plane basis to find the minimal periodic image of the
// residual. Only images within one basis step in each direction are
// tried.
func matchesUnderRotation(a atoms.Atoms, center lattice.Vec2, order int, symprec float64) bool {
	theta := 2 * math.Pi / float64(order)
	basis := a.InPlaneBasis()

	// The in-plane lattice must map onto itself too: each rotated basis
	// vector has to land on a lattice vector.
	origin := atoms.Atoms{Positions: []atoms.Vec3{{0, 0, 0}}, Species: []string{""}}
	for _, v := range basis {
		r := lattice.Rotate(lattice.Vec2{v[0], v[1]}, theta)
		if !findPeriodicMatch(origin, basis, r[0], r[1], 0, "", symprec, []bool{false}) {
			return false
		}
	}

	used := make([]bool, len(a.Positions))
	for _, p := range a.Positions {
		rx, ry := rotateAbout(p[0], p[1], center, theta)
		if !findPeriodicMatch(a, basis, rx, ry, p[2], a.Species[indexAt(a, p)], symprec, used) {
			return false
		}
	}

	return true
}

func matchesUnderMirror(a atoms.Atoms, center lattice.Vec2, symprec float64) bool {
	basis := a.InPlaneBasis()
	used := make([]bool, len(a.Positions))

	for _, p := range a.Positions {
		mx := 2*center[0] - p[0]
		my := p[1]
		if !findPeriodicMatch(a, basis, mx, my, p[2], a.Species[indexAt(a, p)], symprec, used) {
			return false
		}
	}

	return true
}

func rotateAbout(x, y float64, center lattice.Vec2, theta float64) (float64, float64) {
	v := lattice.Rotate(lattice.Vec2{x - center[0], y - center[1]}, theta)

	return v[0] + center[0], v[1] + center[1]
}

// findPeriodicMatch looks for an unused atom of the given species whose
// position equals (x,y,z) up to an integer combination of the in-plane
// basis vectors, within symprec.
func findPeriodicMatch(a atoms.Atoms, basis lattice.Basis, x, y, z float64, species string, symprec float64, used []bool) bool {
	for i, q := range a.Positions {
		if used[i] || a.Species[i] != species {
			continue
		}
		if math.Abs(q[2]-z) > symprec {
			continue
		}
		dx, dy := x-q[0], y-q[1]
		for _, off := range []lattice.IntVec2{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}} {
			shift := lattice.Apply(basis, off)
			if math.Hypot(dx-shift[0], dy-shift[1]) < symprec {
				used[i] = true

				return true
			}
		}
	}

	return false
}

// indexAt returns the index of the first position equal to p, used only
// to look up the moving atom's own species inside the rotation/mirror
// scan above.
func indexAt(a atoms.Atoms, p atoms.Vec3) int {
	for i, q := range a.Positions {
		if q == p {
			return i
		}
	}

	return 0
}

// recenter shifts every in-plane position so center maps to the origin,
// the modest "idealization" LatticeFallback performs when noIdealize is
// false.
func recenter(a atoms.Atoms, center lattice.Vec2) atoms.Atoms {
	out := atoms.Atoms{
		Cell:      a.Cell,
		Positions: make([]atoms.Vec3, len(a.Positions)),
		Species:   append([]string(nil), a.Species...),
		PBC:       append([]atoms.PBCFlags(nil), a.PBC...),
	}
	for i, p := range a.Positions {
		out.Positions[i] = atoms.Vec3{p[0] - center[0], p[1] - center[1], p[2]}
	}

	return out
}
