package symmetry

import "github.com/katalvlaran/heterolattice/atoms"

// Standardizer idealizes a candidate interface's cell and reports its
// international space-group number.
//
// Standardize returns spaceGroup in 1..230 on success, or 0 (with
// err == nil) if the routine could not determine a space group for the
// given symprec/angleTolerance — that is a normal outcome the caller
// (supercell.BuildInterfaces) recovers from by dropping the candidate,
// not a Go error. err is reserved for misuse of the interface, e.g. a
// zero-atom input.
//
// When noIdealize is false, out is the idealized standardized cell; when
// true, only spaceGroup is guaranteed meaningful and out may equal
// atoms unchanged.
//
// Implementations must be safe to call concurrently from worker
// goroutines, or document their own external synchronization.
type Standardizer interface {
	Standardize(in atoms.Atoms, toPrimitive, noIdealize bool, symprec, angleTolerance float64) (spaceGroup int, out atoms.Atoms, err error)
}
