// Package matrix provides the small dense linear-algebra kernel used to
// invert 3x3 lattice cells for fractional-coordinate bookkeeping.
//
// It is intentionally narrow: a general row-major Dense type plus the
// Doolittle LU decomposition and the inverse built on top of it. Nothing
// in this repository needs eigen-decomposition, QR, or a sparse
// representation, so none is provided.
package matrix
