package coincidence

import "errors"

// Sentinel errors for the coincidence package.
var (
	// ErrInvalidParameter indicates Nmax < Nmin or a non-positive tolerance.
	ErrInvalidParameter = errors.New("coincidence: invalid parameter")
)
