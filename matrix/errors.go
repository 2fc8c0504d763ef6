package matrix

import "errors"

// Sentinel errors for the matrix package. Every algorithm returns one of
// these rather than panicking on user-triggered conditions.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during LU/inverse.
	// No partial pivoting is performed: it is intentional for determinism and
	// simplicity given the small, well-conditioned cells this kernel handles.
	ErrSingular = errors.New("matrix: singular matrix")
)
