package atoms

import "errors"

// Sentinel errors for the atoms package.
var (
	// ErrDegenerateCell indicates a supercell matrix with non-positive
	// determinant, or an input basis that cannot be inverted.
	ErrDegenerateCell = errors.New("atoms: degenerate cell or supercell matrix")

	// ErrIncompatibleLayers indicates a stacking input whose in-plane cell
	// is singular, so no interface cell can be blended from it.
	ErrIncompatibleLayers = errors.New("atoms: incompatible layers for stacking")

	// ErrLengthMismatch indicates Positions, Species and PBC are not the
	// same length, violating the Atoms invariant.
	ErrLengthMismatch = errors.New("atoms: positions/species/pbc length mismatch")
)
