package minimise

import "github.com/cwbudde/spatialopt/algebra"

// Func1 is a real function of one variable.
type Func1 func(x float64) float64

// GradFunc1 is a real function of one variable that also returns its
// derivative at x.
type GradFunc1 func(x float64) (f, df float64)

// FuncN is a real function of several variables.
type FuncN func(x algebra.Vector) float64

// GradFuncN is a real function of several variables that also returns its
// gradient at x.
type GradFuncN func(x algebra.Vector) (f float64, gradient algebra.Vector)

// Sample is a 1-D domain point with its function value.
type Sample struct {
	X float64
	F float64
}

// GradSample is a 1-D domain point with its function value and derivative.
type GradSample struct {
	X  float64
	F  float64
	DF float64
}

// Point is an N-D domain point with its function value.
type Point struct {
	X algebra.Vector
	F float64
}

// GradPoint is an N-D domain point with its function value and gradient.
type GradPoint struct {
	X        algebra.Vector
	F        float64
	Gradient algebra.Vector
}
