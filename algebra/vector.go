package algebra

import (
	"fmt"
	"math"
	"strings"
)

// Vector is an immutable real vector of fixed dimension > 0.
type Vector struct {
	data []float64
}

// NewVector creates a vector from the given components.
// It panics with ErrZeroDim when no components are given.
func NewVector(values ...float64) Vector {
	if len(values) == 0 {
		panic(ErrZeroDim)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return Vector{data: data}
}

// NewVector1 creates a 1-dimensional vector.
func NewVector1(x float64) Vector {
	return Vector{data: []float64{x}}
}

// NewVector3 creates a 3-dimensional vector.
func NewVector3(x, y, z float64) Vector {
	return Vector{data: []float64{x, y, z}}
}

// ZeroVector creates a vector of the given dimension with all components zero.
func ZeroVector(dim int) Vector {
	if dim <= 0 {
		panic(ErrZeroDim)
	}
	return Vector{data: make([]float64, dim)}
}

// Dim returns the number of components.
func (v Vector) Dim() int {
	return len(v.data)
}

// At returns component i. It panics with ErrIndex when i is out of range.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= len(v.data) {
		panic(ErrIndex)
	}
	return v.data[i]
}

// Dot returns the dot product with o.
// It panics with ErrShape when dimensions differ.
func (v Vector) Dot(o Vector) float64 {
	if len(v.data) != len(o.data) {
		panic(ErrShape)
	}
	var sum float64
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}
	return sum
}

// Magnitude2 returns the sum of squared components.
func (v Vector) Magnitude2() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x * x
	}
	return sum
}

// Magnitude returns the Euclidean length.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Magnitude2())
}

// Plus returns the component-wise sum with o.
// It panics with ErrShape when dimensions differ.
func (v Vector) Plus(o Vector) Vector {
	if len(v.data) != len(o.data) {
		panic(ErrShape)
	}
	data := make([]float64, len(v.data))
	for i := range v.data {
		data[i] = v.data[i] + o.data[i]
	}
	return Vector{data: data}
}

// Minus returns the component-wise difference with o.
// It panics with ErrShape when dimensions differ.
func (v Vector) Minus(o Vector) Vector {
	if len(v.data) != len(o.data) {
		panic(ErrShape)
	}
	data := make([]float64, len(v.data))
	for i := range v.data {
		data[i] = v.data[i] - o.data[i]
	}
	return Vector{data: data}
}

// Scale returns the vector multiplied by the scalar s.
func (v Vector) Scale(s float64) Vector {
	data := make([]float64, len(v.data))
	for i := range v.data {
		data[i] = v.data[i] * s
	}
	return Vector{data: data}
}

// Equal reports whether o has the same dimension and bit-identical components.
// See EqualFloats for the equality contract.
func (v Vector) Equal(o Vector) bool {
	return equalSlices(v.data, o.data)
}

// Slice returns a copy of the components.
func (v Vector) Slice() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// String renders the vector as "(x0, x1, ...)".
func (v Vector) String() string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
