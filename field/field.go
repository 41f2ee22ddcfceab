// Package field models vector-valued functions of several variables and
// approximates their Jacobians by finite differences.
package field

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/spatialopt/algebra"
)

var (
	// ErrZeroDim indicates a non-positive space or value dimension.
	ErrZeroDim = errors.New("field: dimensions must be positive")
	// ErrNilFunc indicates a missing evaluation function.
	ErrNilFunc = errors.New("field: evaluation function must not be nil")
	// ErrDimension indicates a point or field value of the wrong dimension.
	ErrDimension = errors.New("field: dimension mismatch")
	// ErrBadPoint indicates a non-finite component in the evaluation point.
	ErrBadPoint = errors.New("field: point has non-finite component")
)

// stepScale is sqrt of the float64 machine epsilon, the optimal relative
// perturbation for a forward difference.
const stepScale = 1.4901161193847656e-08

// VectorField is a function from a space of fixed input dimension to a space
// of fixed output dimension.
type VectorField struct {
	spaceDim int
	valueDim int
	eval     func(algebra.Vector) algebra.Vector
}

// NewVectorField creates a vector field with the given dimensions.
// Both dimensions must be positive and eval non-nil.
func NewVectorField(spaceDim, valueDim int, eval func(algebra.Vector) algebra.Vector) (VectorField, error) {
	if spaceDim <= 0 || valueDim <= 0 {
		return VectorField{}, fmt.Errorf("%w: space %d, value %d", ErrZeroDim, spaceDim, valueDim)
	}
	if eval == nil {
		return VectorField{}, ErrNilFunc
	}
	return VectorField{spaceDim: spaceDim, valueDim: valueDim, eval: eval}, nil
}

// SpaceDim returns the input dimension.
func (vf VectorField) SpaceDim() int {
	return vf.spaceDim
}

// ValueDim returns the output dimension.
func (vf VectorField) ValueDim() int {
	return vf.valueDim
}

// At evaluates the field at x.
func (vf VectorField) At(x algebra.Vector) algebra.Vector {
	return vf.eval(x)
}

// FieldPoint is a field evaluation together with its approximated Jacobian.
type FieldPoint struct {
	X        algebra.Vector
	Value    algebra.Vector
	Jacobian algebra.Matrix
}

// ApproximateAt computes a forward-difference Jacobian of the field at x.
// Column i estimates the partial derivatives with respect to input i using a
// step scaled to |x[i]| with an absolute floor near zero; the step is
// re-derived from the perturbed coordinate so the division uses the exactly
// representable increment. The Jacobian has ValueDim rows and SpaceDim
// columns.
func ApproximateAt(vf VectorField, x algebra.Vector) (FieldPoint, error) {
	if x.Dim() != vf.spaceDim {
		return FieldPoint{}, fmt.Errorf("%w: point has dimension %d, field space %d", ErrDimension, x.Dim(), vf.spaceDim)
	}
	for i := 0; i < x.Dim(); i++ {
		if v := x.At(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return FieldPoint{}, fmt.Errorf("%w: component %d is %g", ErrBadPoint, i, v)
		}
	}

	f0 := vf.eval(x)
	if f0.Dim() != vf.valueDim {
		return FieldPoint{}, fmt.Errorf("%w: field value has dimension %d, want %d", ErrDimension, f0.Dim(), vf.valueDim)
	}

	jac := algebra.NewMutMatrix(vf.valueDim, vf.spaceDim)
	probe := algebra.MutVectorOf(x)
	for i := 0; i < vf.spaceDim; i++ {
		xi := x.At(i)
		h := stepScale * math.Abs(xi)
		if h < stepScale {
			h = stepScale
		}
		perturbed := xi + h
		h = perturbed - xi

		probe.Set(i, perturbed)
		fi := vf.eval(probe.Vector())
		probe.Set(i, xi)
		if fi.Dim() != vf.valueDim {
			return FieldPoint{}, fmt.Errorf("%w: field value has dimension %d, want %d", ErrDimension, fi.Dim(), vf.valueDim)
		}
		for r := 0; r < vf.valueDim; r++ {
			jac.Set(r, i, (fi.At(r)-f0.At(r))/h)
		}
	}

	return FieldPoint{X: x, Value: f0, Jacobian: jac.Matrix()}, nil
}
