// Package lattice provides the 2D primitives shared by the coincidence
// search and the supercell builder: applying a real 2x2 basis to an
// integer lattice vector, rotating a real 2-vector, and measuring the
// Euclidean distance between two of them.
//
// Everything here is pure arithmetic; there is no allocation on the hot
// path and no error return beyond the NaN/Inf propagation a caller gets
// for free from degenerate inputs.
package lattice
