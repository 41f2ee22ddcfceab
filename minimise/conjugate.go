package minimise

import (
	"fmt"
	"math"

	"github.com/cwbudde/spatialopt/algebra"
)

const (
	// maxConjGradIter bounds the number of conjugate gradient iterations.
	maxConjGradIter = 200
	// gradEps2 is the squared gradient magnitude below which the current
	// point counts as stationary.
	gradEps2 = zeps
)

// FindFletcherReevesPolakRibere minimizes f using nonlinear conjugate
// gradient with the Polak–Ribière update clamped at zero:
//
//	β = max(0, dot(g₁, g₁-g₀) / dot(g₀, g₀))
//
// so a negative β restarts the search along steepest descent. The direction
// starts at -gradient; each iteration line-minimizes along the current
// direction, recomputes the gradient and forms -g₁ + β·direction.
//
// The caller's starting point x0 is never mutated. The search stops when the
// gradient magnitude vanishes or the value improvement falls below tol
// relative to the current value. It returns ErrBadTolerance for tol <= 0 and
// ErrPoorlyConditioned when the iteration cap is reached or the direction
// degenerates.
func FindFletcherReevesPolakRibere(f GradFuncN, x0 algebra.Vector, tol float64) (GradPoint, error) {
	if !(tol > 0) {
		return GradPoint{}, fmt.Errorf("%w: got %g", ErrBadTolerance, tol)
	}

	fp, g := f(x0)
	if g.Dim() != x0.Dim() {
		return GradPoint{}, fmt.Errorf("%w: gradient has dimension %d, point %d", ErrDimension, g.Dim(), x0.Dim())
	}
	if g.Magnitude2() <= gradEps2 {
		// Already stationary.
		return GradPoint{X: x0, F: fp, Gradient: g}, nil
	}

	x := algebra.MutVectorOf(x0)
	h := g.Scale(-1)

	for iter := 0; iter < maxConjGradIter; iter++ {
		dir := algebra.MutVectorOf(h)
		if dir.Magnitude2() == 0 {
			return GradPoint{}, fmt.Errorf("%w: conjugate direction degenerated to zero", ErrPoorlyConditioned)
		}
		fret, gNew, err := MinimiseAlongLineGrad(f, x, dir)
		if err != nil {
			return GradPoint{}, fmt.Errorf("line minimization at iteration %d: %w", iter, err)
		}

		if 2*math.Abs(fret-fp) <= tol*(math.Abs(fret)+math.Abs(fp)+zeps) {
			return GradPoint{X: x.Vector(), F: fret, Gradient: gNew}, nil
		}
		fp = fret

		gg := g.Magnitude2()
		if gg == 0 {
			return GradPoint{X: x.Vector(), F: fret, Gradient: gNew}, nil
		}
		beta := math.Max(0, gNew.Dot(gNew.Minus(g))/gg)
		h = gNew.Scale(-1).Plus(h.Scale(beta))
		g = gNew

		if g.Magnitude2() <= gradEps2 {
			return GradPoint{X: x.Vector(), F: fret, Gradient: g}, nil
		}
	}

	return GradPoint{}, fmt.Errorf("%w: conjugate gradient exceeded %d iterations", ErrPoorlyConditioned, maxConjGradIter)
}
