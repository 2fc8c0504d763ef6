// Package heterolattice builds two-dimensional heterostructure
// interfaces between two crystalline atomic layers by enumerating
// coincidence superlattices: pairs of integer supercell matrices and a
// rotation angle for which, within a tolerance, the lattice vectors of
// the rotated upper layer coincide with those of the lower layer.
//
// The search runs under github.com/katalvlaran/heterolattice/engine,
// composing a small set of packages, each with a single responsibility:
//
//	lattice/    — 2D basis application, rotation, distance
//	intmath/    — exact-integer GCD and determinants
//	atoms/      — the Atoms structure model and its geometric operators
//	coincidence/ — the 4D coincidence search and primitive-pair reducer
//	symmetry/   — the Standardizer contract and a dependency-free fallback
//	supercell/  — assembling and standardizing candidate interfaces
//	dedup/      — collapsing crystallographically equivalent candidates
//	engine/     — the orchestrator, engine.Run
//
// Everything above is a pure function of its inputs; file I/O,
// configuration, logging and persistence live under internal/ and are
// wired together by cmd/heterolattice, the CLI.
package heterolattice
