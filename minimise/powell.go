package minimise

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/spatialopt/algebra"
)

// maxPowellIter bounds the number of outer Powell iterations.
const maxPowellIter = 200

// FindPowell minimizes f without derivatives using Powell's direction-set
// method. The search directions start as the coordinate axes; after each
// outer iteration of sequential line minimizations, the direction that
// produced the largest single decrease is replaced by the net displacement of
// the whole iteration when that conjugate-direction step is worthwhile.
//
// x is mutated in place toward the minimum; the returned Point is a snapshot
// of the final state. Termination uses the per-iteration decrease relative to
// the current value against tol. It returns ErrBadTolerance for tol <= 0 and
// ErrPoorlyConditioned when the iteration cap is reached or a search
// direction degenerates.
func FindPowell(f FuncN, x *algebra.MutVector, tol float64) (Point, error) {
	if !(tol > 0) {
		return Point{}, fmt.Errorf("%w: got %g", ErrBadTolerance, tol)
	}
	n := x.Dim()
	dirs := make([]algebra.Vector, n)
	for i := 0; i < n; i++ {
		axis := algebra.NewMutVector(n)
		axis.Set(i, 1)
		dirs[i] = axis.Vector()
	}

	fret := f(x.Vector())
	start := x.Vector()

	for iter := 0; iter < maxPowellIter; iter++ {
		fp := fret
		ibig, del := 0, 0.0

		for i := 0; i < n; i++ {
			dir := algebra.MutVectorOf(dirs[i])
			fbefore := fret
			var err error
			fret, err = MinimiseAlongLine(f, x, dir)
			if err != nil {
				if errors.Is(err, ErrZeroDirection) {
					// A direction from a previous replacement degenerated.
					return Point{}, fmt.Errorf("%w: search direction %d has zero magnitude", ErrPoorlyConditioned, i)
				}
				return Point{}, fmt.Errorf("line minimization along direction %d: %w", i, err)
			}
			if fbefore-fret > del {
				del = fbefore - fret
				ibig = i
			}
		}

		if 2*(fp-fret) <= tol*(math.Abs(fp)+math.Abs(fret))+zeps {
			return Point{X: x.Vector(), F: fret}, nil
		}

		// Probe the extrapolated point 2x - x0 to decide whether the net
		// displacement of this iteration is worth keeping as a direction.
		current := x.Vector()
		extrap := current.Scale(2).Minus(start)
		displacement := current.Minus(start)
		start = current

		fextrap := f(extrap)
		if fextrap < fp {
			t := 2*(fp-2*fret+fextrap)*sqr(fp-fret-del) - del*sqr(fp-fextrap)
			if t < 0 {
				dir := algebra.MutVectorOf(displacement)
				if dir.Magnitude2() == 0 {
					return Point{}, fmt.Errorf("%w: net displacement collapsed to zero", ErrPoorlyConditioned)
				}
				var err error
				fret, err = MinimiseAlongLine(f, x, dir)
				if err != nil {
					return Point{}, fmt.Errorf("line minimization along net displacement: %w", err)
				}
				dirs[ibig] = dirs[n-1]
				dirs[n-1] = dir.Vector()
				start = x.Vector()
			}
		}
	}

	return Point{}, fmt.Errorf("%w: powell exceeded %d iterations", ErrPoorlyConditioned, maxPowellIter)
}

func sqr(x float64) float64 {
	return x * x
}
