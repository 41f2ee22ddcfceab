package opt

import (
	"github.com/cwbudde/spatialopt/algebra"
	"github.com/cwbudde/spatialopt/minimise"
)

// PowellAdapter wraps the derivative-free Powell minimizer behind the
// Optimizer interface.
type PowellAdapter struct {
	tol float64
}

// NewPowell creates a Powell optimizer adapter with the given tolerance.
func NewPowell(tol float64) Optimizer {
	return &PowellAdapter{tol: tol}
}

// Run executes Powell's method from x0.
func (p *PowellAdapter) Run(eval func([]float64) float64, x0 []float64) ([]float64, float64, error) {
	fn := func(v algebra.Vector) float64 {
		return eval(v.Slice())
	}
	x := algebra.MutVectorOf(algebra.NewVector(x0...))
	result, err := minimise.FindPowell(fn, x, p.tol)
	if err != nil {
		return nil, 0, err
	}
	return result.X.Slice(), result.F, nil
}

// ConjGradAdapter wraps the Fletcher–Reeves–Polak–Ribière conjugate gradient
// minimizer behind the Optimizer interface.
type ConjGradAdapter struct {
	tol  float64
	grad func([]float64) []float64
}

// NewConjGrad creates a conjugate gradient adapter. grad must return the
// gradient of the objective at the given parameters.
func NewConjGrad(tol float64, grad func([]float64) []float64) Optimizer {
	return &ConjGradAdapter{tol: tol, grad: grad}
}

// Run executes conjugate gradient from x0.
func (c *ConjGradAdapter) Run(eval func([]float64) float64, x0 []float64) ([]float64, float64, error) {
	fn := func(v algebra.Vector) (float64, algebra.Vector) {
		xs := v.Slice()
		return eval(xs), algebra.NewVector(c.grad(xs)...)
	}
	result, err := minimise.FindFletcherReevesPolakRibere(fn, algebra.NewVector(x0...), c.tol)
	if err != nil {
		return nil, 0, err
	}
	return result.X.Slice(), result.F, nil
}
