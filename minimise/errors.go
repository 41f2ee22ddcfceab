package minimise

import "errors"

var (
	// ErrPoorlyConditioned is returned when bracketing or convergence
	// heuristics cannot certify a minimum within bounded effort: an
	// unbrackettable minimum, non-convergence within the iteration cap, a
	// degenerate search direction, or floating-point cancellation that halts
	// progress. It is recoverable by the caller (e.g. by restarting from a
	// different point); no retry happens inside the package.
	ErrPoorlyConditioned = errors.New("minimise: poorly conditioned function")
	// ErrBadInterval is returned when the two starting abscissas of a bracket
	// search are bit-identical.
	ErrBadInterval = errors.New("minimise: starting abscissas must differ")
	// ErrBadTolerance is returned when a tolerance is not strictly positive.
	ErrBadTolerance = errors.New("minimise: tolerance must be positive")
	// ErrNotBracket is returned when three points violate the bracket
	// invariant left < inner < right with f(inner) strictly below both ends.
	ErrNotBracket = errors.New("minimise: points do not bracket a minimum")
	// ErrZeroDirection is returned when a search direction has zero
	// magnitude.
	ErrZeroDirection = errors.New("minimise: search direction has zero magnitude")
	// ErrDimension is returned when vector arguments have mismatched
	// dimensions.
	ErrDimension = errors.New("minimise: dimension mismatch")
)
