// Package atoms defines the Atoms data model — a 3x3 cell, parallel
// per-atom Cartesian positions, species labels and periodic-boundary
// flags — and the three geometric operators the supercell builder
// composes: MakeSupercell, RotateAtomsAroundZ and StackAtoms.
//
// Atoms values are logically immutable: every operator here returns a
// new value and never mutates its receiver's backing slices.
package atoms
