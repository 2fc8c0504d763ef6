package xyzio

import "errors"

// ErrMalformedFile indicates the input does not parse as the extended-XYZ
// dialect this package reads: a bad atom count, a missing or unparsable
// Lattice="..." key, or a data line with the wrong number of fields.
var ErrMalformedFile = errors.New("xyzio: malformed extended-xyz file")
