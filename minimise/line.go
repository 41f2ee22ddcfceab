package minimise

import (
	"fmt"

	"github.com/cwbudde/spatialopt/algebra"
)

// lineTol is the Brent tolerance used for line minimizations inside the N-D
// methods; tighter values waste function evaluations without improving the
// outer convergence tests.
const lineTol = 2e-4

// LineFunc restricts f to the line through origin along dir, returning the
// 1-D function w ↦ f(origin + w·dir).
func LineFunc(f FuncN, origin, dir algebra.Vector) Func1 {
	return func(w float64) float64 {
		return f(origin.Plus(dir.Scale(w)))
	}
}

// LineGradFunc restricts f to the line through origin along dir. The
// returned derivative is the directional derivative dot(∇f, dir).
func LineGradFunc(f GradFuncN, origin, dir algebra.Vector) GradFunc1 {
	return func(w float64) (float64, float64) {
		fv, g := f(origin.Plus(dir.Scale(w)))
		return fv, g.Dot(dir)
	}
}

// MinimiseAlongLine minimizes f along the line through x in direction dir,
// bracketing from w = 0 and narrowing with Brent's method. On success x is
// updated in place to the line minimum and dir to the displacement actually
// taken; a zero net displacement collapses dir to the zero vector. Returns
// the achieved function value.
//
// It returns ErrDimension when x and dir dimensions differ, ErrZeroDirection
// when dir has zero magnitude, and passes through bracketing and Brent
// failures.
func MinimiseAlongLine(f FuncN, x, dir *algebra.MutVector) (float64, error) {
	if x.Dim() != dir.Dim() {
		return 0, fmt.Errorf("%w: x has dimension %d, direction %d", ErrDimension, x.Dim(), dir.Dim())
	}
	if dir.Magnitude2() == 0 {
		return 0, ErrZeroDirection
	}
	origin, d := x.Vector(), dir.Vector()
	lf := LineFunc(f, origin, d)

	br, err := FindBracket(lf, 0, 1)
	if err != nil {
		return 0, err
	}
	min, err := FindBrent(lf, br, lineTol)
	if err != nil {
		return 0, err
	}

	applyLineStep(x, dir, origin, d, min.X)
	return min.F, nil
}

// MinimiseAlongLineGrad is the gradient-aware variant of MinimiseAlongLine.
// It additionally returns the gradient of f at the line minimum.
func MinimiseAlongLineGrad(f GradFuncN, x, dir *algebra.MutVector) (float64, algebra.Vector, error) {
	if x.Dim() != dir.Dim() {
		return 0, algebra.Vector{}, fmt.Errorf("%w: x has dimension %d, direction %d", ErrDimension, x.Dim(), dir.Dim())
	}
	if dir.Magnitude2() == 0 {
		return 0, algebra.Vector{}, ErrZeroDirection
	}
	origin, d := x.Vector(), dir.Vector()
	lf := LineGradFunc(f, origin, d)

	br, err := FindBracket(func(w float64) float64 {
		fv, _ := lf(w)
		return fv
	}, 0, 1)
	if err != nil {
		return 0, algebra.Vector{}, err
	}
	min, err := FindBrentGrad(lf, br, lineTol)
	if err != nil {
		return 0, algebra.Vector{}, err
	}

	applyLineStep(x, dir, origin, d, min.X)
	fv, g := f(x.Vector())
	return fv, g, nil
}

// applyLineStep writes origin + w·d into x and the displacement w·d into dir.
func applyLineStep(x, dir *algebra.MutVector, origin, d algebra.Vector, w float64) {
	for i := 0; i < x.Dim(); i++ {
		step := w * d.At(i)
		dir.Set(i, step)
		x.Set(i, origin.At(i)+step)
	}
}
