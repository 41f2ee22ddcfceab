// Package algebra provides deterministic vector, matrix and quaternion
// arithmetic for 3-D spatial reasoning.
//
// All value types (Vector, Matrix, Quaternion, Rotation3) are immutable and
// compared by value: equality is defined over float64 bit patterns, so two
// NaNs compare equal while +0.0 and -0.0 do not. Concurrent read-only sharing
// of immutable values is safe. MutVector and MutMatrix are mutable scratch
// twins intended for in-place iteration state; a single mutable instance must
// not be shared between goroutines without external serialization.
//
// Shape violations (mismatched dimensions, out-of-range indices, non-positive
// sizes) are programmer errors and panic with one of the exported Err values.
package algebra
