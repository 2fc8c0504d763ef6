// Package xyzio reads and writes the minimal extended-XYZ dialect used
// to hand atomic structures to and from the heterolattice CLI: an atom
// count line, a comment line carrying a quoted Lattice="..." matrix and
// a pbc="..." flag triple, then one "species x y z" line per atom.
//
// The core engine never imports this package — only cmd/heterolattice
// does, keeping the pure geometry engine free of any file-format
// concern.
package xyzio
