package engine

import "errors"

// ErrInvalidParameter indicates Nmax < Nmin, an empty angle set, a
// weight outside [0,1], or a non-positive tolerance or distance.
var ErrInvalidParameter = errors.New("engine: invalid parameter")
