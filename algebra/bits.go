package algebra

import "math"

// EqualFloats reports whether a and b carry identical float64 bit patterns.
// Unlike the == operator, two NaNs compare equal and +0.0 differs from -0.0.
// All value equality in this package (Vector, Matrix, Quaternion) is defined
// in terms of this comparison so instances behave as plain data.
func EqualFloats(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func equalSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualFloats(a[i], b[i]) {
			return false
		}
	}
	return true
}
