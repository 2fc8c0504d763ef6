package supercell

import "errors"

// Sentinel errors for the supercell package.
var (
	// ErrInvalidParameter indicates a weight outside [0,1] or a
	// non-positive stacking distance.
	ErrInvalidParameter = errors.New("supercell: invalid parameter")
)
