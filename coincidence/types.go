package coincidence

// Coincidence is a raw (m1, m2, n1, n2) tuple satisfying the tolerance
// predicate in Search: |A*(m1,m2) - R(theta)*B*(n1,n2)| < tol.
type Coincidence struct {
	M1, M2 int64
	N1, N2 int64
}

// SupercellMatrix2 is a 2x2 integer supercell matrix, [[R0C0,R0C1],
// [R1C0,R1C1]].
type SupercellMatrix2 [2][2]int64

// PrimitivePair is a validated (M, N) pair of 2x2 integer supercell
// matrices: both determinants are strictly positive and the combined
// eight entries have absolute GCD 1 (see ReducePairs).
type PrimitivePair struct {
	M, N SupercellMatrix2
}
