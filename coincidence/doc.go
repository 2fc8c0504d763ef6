// Package coincidence implements the two combinatorial stages of the
// geometric engine: Search enumerates raw (m1,m2,n1,n2) coincidences of
// two lattice bases at a fixed rotation angle over a bounded integer
// grid, and ReducePairs turns those raw coincidences into primitive,
// orientation-preserving supercell-matrix pairs.
//
// Both stages are the hot path of the whole system: Search is O((Nmax-
// Nmin+1)^4) per angle, ReducePairs is O(k^2) in the number of raw
// coincidences for that angle. Both are parallelized over their outer
// index via internal/parallel.
package coincidence
