package intmath

// gcdTwo returns the non-negative greatest common divisor of a and b.
func gcdTwo(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// GCDOfList returns the greatest common divisor of |xs[0]|, ..., |xs[n-1]|.
// The GCD of an all-zero (or empty) list is defined as 0. The result is
// always non-negative.
//
// Complexity: O(n) gcdTwo calls, each O(log(min(a,b))).
func GCDOfList(xs []int64) int64 {
	var g int64
	for _, x := range xs {
		g = gcdTwo(g, x)
	}

	return g
}

// Det2 returns the determinant of a 2x2 integer matrix given row-major:
// m = [[m00, m01], [m10, m11]].
func Det2(m [2][2]int64) int64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Det3 returns the determinant of a 3x3 integer matrix via cofactor
// expansion along the first row.
func Det3(m [3][3]int64) int64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
