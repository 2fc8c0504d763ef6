// Package engine implements Run, the single public entry point that
// composes lattice, coincidence, atoms, supercell and dedup into the
// full coincidence-lattice search: for every candidate rotation angle it
// searches for coincidences, reduces them to primitive supercell-matrix
// pairs, builds and standardizes an Interface for each, and returns a
// deduplicated, deterministically sorted catalogue.
//
// Angle unit: degrees at this package's boundary;
// everything below engine works in radians.
package engine
