// Package supercell builds candidate Interface records from a bottom
// layer, a top layer, a rotation angle and a batch of primitive
// supercell-matrix pairs (coincidence.PrimitivePair): it lifts each 2x2
// pair to 3x3, expands both layers, rotates and stacks them, and
// delegates space-group assignment to a symmetry.Standardizer.
package supercell
