package minimise

import (
	"fmt"
	"math"

	"github.com/cwbudde/spatialopt/algebra"
)

const (
	// golden is the bracket expansion ratio.
	golden = 1.618034
	// growLimit caps a single parabolic extrapolation step relative to the
	// current interval.
	growLimit = 100.0
	// maxBracketIter bounds the expansion effort before the search is
	// declared poorly conditioned.
	maxBracketIter = 500
	// tinyDenom guards parabolic fits against division by near-zero
	// curvature.
	tinyDenom = 1e-20
)

// Bracket is an ordered triple of function-evaluated abscissas with
// Left.X < Inner.X < Right.X and Inner.F strictly below both end values,
// certifying that a minimum lies between the outer two points.
type Bracket struct {
	Left  Sample
	Inner Sample
	Right Sample
}

// NewBracket validates the bracket invariant and returns the bracket.
// It returns ErrNotBracket when the ordering or strict-minimum property does
// not hold (NaN values fail both).
func NewBracket(left, inner, right Sample) (Bracket, error) {
	if !(left.X < inner.X && inner.X < right.X) {
		return Bracket{}, fmt.Errorf("%w: abscissas %g, %g, %g not strictly ordered",
			ErrNotBracket, left.X, inner.X, right.X)
	}
	if !(inner.F < left.F && inner.F < right.F) {
		return Bracket{}, fmt.Errorf("%w: inner value %g not strictly below ends %g, %g",
			ErrNotBracket, inner.F, left.F, right.F)
	}
	return Bracket{Left: left, Inner: inner, Right: right}, nil
}

// Width returns the length of the bracketed interval.
func (b Bracket) Width() float64 {
	return b.Right.X - b.Left.X
}

// FindBracket searches outward from the abscissas x1 and x2 for a bracket of
// a minimum of f, expanding downhill with the golden ratio and refining with
// parabolic trial points. Ties in function value do not count as bracketing
// and keep the expansion going.
//
// It returns ErrBadInterval when x1 and x2 are bit-identical, and
// ErrPoorlyConditioned when no bracket is certified within the iteration cap
// (monotone functions, plateaus) or a function value is NaN.
func FindBracket(f Func1, x1, x2 float64) (Bracket, error) {
	if algebra.EqualFloats(x1, x2) {
		return Bracket{}, fmt.Errorf("%w: x1 == x2 == %g", ErrBadInterval, x1)
	}

	l, r := math.Min(x1, x2), math.Max(x1, x2)
	fl, fr := f(l), f(r)

	// Seed the third point on the downhill side; on a tie, expand right.
	var m, fm float64
	if fr <= fl {
		m, fm = r, fr
		r = m + golden*(m-l)
		fr = f(r)
	} else {
		m, fm = l, fl
		l = m - golden*(r-m)
		fl = f(l)
	}

	for iter := 0; iter < maxBracketIter; iter++ {
		if math.IsNaN(fl) || math.IsNaN(fm) || math.IsNaN(fr) {
			return Bracket{}, fmt.Errorf("%w: NaN function value during bracketing", ErrPoorlyConditioned)
		}
		if fm < fl && fm < fr {
			return NewBracket(Sample{l, fl}, Sample{m, fm}, Sample{r, fr})
		}

		if u, ok := parabolicVertex(l, m, r, fl, fm, fr); ok {
			switch {
			case l < u && u < m:
				fu := f(u)
				if fu < fm {
					r, fr = m, fm
					m, fm = u, fu
				} else {
					l, fl = u, fu
				}
				continue
			case m < u && u < r:
				fu := f(u)
				if fu < fm {
					l, fl = m, fm
					m, fm = u, fu
				} else {
					r, fr = u, fu
				}
				continue
			case u <= l && fl <= fm:
				u = math.Max(u, m-growLimit*(m-l))
				if u < l {
					l, m, r = u, l, m
					fm, fr = fl, fm
					fl = f(l)
					continue
				}
			case u >= r && fr <= fm:
				u = math.Min(u, m+growLimit*(r-m))
				if u > r {
					l, m, r = m, r, u
					fl, fm = fm, fr
					fr = f(r)
					continue
				}
			}
		}

		// No usable parabolic step: golden expansion on the downhill side.
		if fr <= fm && fr <= fl {
			u := r + golden*(r-m)
			l, m, r = m, r, u
			fl, fm = fm, fr
			fr = f(r)
		} else {
			u := l - golden*(m-l)
			l, m, r = u, l, m
			fm, fr = fl, fm
			fl = f(l)
		}
	}

	return Bracket{}, fmt.Errorf("%w: no minimum bracketed within %d expansions from (%g, %g)",
		ErrPoorlyConditioned, maxBracketIter, x1, x2)
}

// parabolicVertex returns the abscissa of the vertex of the parabola through
// the three samples, or ok=false when the fit is degenerate.
func parabolicVertex(l, m, r, fl, fm, fr float64) (float64, bool) {
	p := (m - l) * (fm - fr)
	q := (m - r) * (fm - fl)
	d := q - p
	if math.Abs(d) < tinyDenom {
		return 0, false
	}
	u := m - ((m-r)*q-(m-l)*p)/(2*d)
	if math.IsNaN(u) || math.IsInf(u, 0) {
		return 0, false
	}
	return u, true
}
