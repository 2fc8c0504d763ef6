// Package symmetry defines the Standardizer contract the supercell
// builder calls to idealize a stacked interface and assign it a
// crystallographic space-group number, plus LatticeFallback, a
// dependency-free implementation used whenever no real spglib-class
// binding is configured.
//
// A real binding (spglib, or any FFI to one) is expected to satisfy the
// same interface; this repository does not ship one, because no pure-Go
// binding to spglib exists in the example corpus this codebase draws its
// third-party stack from (see DESIGN.md).
package symmetry
