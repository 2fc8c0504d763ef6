package lattice

import "math"

// Basis is a real 2x2 in-plane lattice basis; Basis[0] and Basis[1] are the
// two lattice vectors, each given as [x, y].
type Basis [2][2]float64

// IntVec2 is an integer pair of supercell coefficients (m1, m2).
type IntVec2 [2]int64

// Vec2 is a real-valued 2D vector.
type Vec2 [2]float64

// Apply computes A·v for a real 2x2 basis A and an integer vector v,
// i.e. v[0]*A[0] + v[1]*A[1].
//
// Complexity: O(1).
func Apply(a Basis, v IntVec2) Vec2 {
	return Vec2{
		float64(v[0])*a[0][0] + float64(v[1])*a[1][0],
		float64(v[0])*a[0][1] + float64(v[1])*a[1][1],
	}
}

// Rotate rotates v by thetaRad radians about the origin.
//
// Complexity: O(1).
func Rotate(v Vec2, thetaRad float64) Vec2 {
	sin, cos := math.Sincos(thetaRad)

	return Vec2{
		v[0]*cos - v[1]*sin,
		v[0]*sin + v[1]*cos,
	}
}

// Distance returns the Euclidean norm of u-v.
//
// Complexity: O(1).
func Distance(u, v Vec2) float64 {
	dx := u[0] - v[0]
	dy := u[1] - v[1]

	return math.Hypot(dx, dy)
}
