package minimise

import (
	"fmt"
	"math"
)

const (
	// maxBrentIter bounds the narrowing effort before the search is declared
	// poorly conditioned.
	maxBrentIter = 200
	// cgold is the golden-section step fraction.
	cgold = 0.3819660
	// zeps is the absolute tolerance floor protecting termination tests when
	// the minimum sits at or near x = 0.
	zeps = 1e-18
)

// FindBrent narrows the bracket b to a minimum of f using Brent's method:
// golden-section steps interleaved with inverse parabolic interpolation when
// the local quadratic fit is well behaved. The bracket invariant holds at
// every iteration.
//
// tol is a relative tolerance scaled by |x| with an absolute floor near zero;
// the search terminates once the bracket width shrinks below it. The result
// satisfies result.F <= b.Inner.F. It returns ErrBadTolerance for tol <= 0
// and ErrPoorlyConditioned when the width test is not met within the
// iteration cap or a function value is NaN.
func FindBrent(f Func1, b Bracket, tol float64) (Sample, error) {
	if !(tol > 0) {
		return Sample{}, fmt.Errorf("%w: got %g", ErrBadTolerance, tol)
	}
	a, c := b.Left.X, b.Right.X
	x, fx := b.Inner.X, b.Inner.F
	w, fw := x, fx
	v, fv := x, fx
	var d, e float64

	for iter := 0; iter < maxBrentIter; iter++ {
		xm := 0.5 * (a + c)
		tol1 := tol*math.Abs(x) + zeps
		tol2 := 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(c-a) {
			return Sample{X: x, F: fx}, nil
		}

		if math.Abs(e) > tol1 {
			// Inverse parabolic interpolation through x, w, v.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etemp := e
			e = d
			if math.Abs(p) >= math.Abs(0.5*q*etemp) || p <= q*(a-x) || p >= q*(c-x) {
				// Fit not trustworthy: golden section into the larger side.
				if x >= xm {
					e = a - x
				} else {
					e = c - x
				}
				d = cgold * e
			} else {
				d = p / q
				u := x + d
				if u-a < tol2 || c-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
			}
		} else {
			if x >= xm {
				e = a - x
			} else {
				e = c - x
			}
			d = cgold * e
		}

		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}
		fu := f(u)
		if math.IsNaN(fu) {
			return Sample{}, fmt.Errorf("%w: NaN function value at %g", ErrPoorlyConditioned, u)
		}

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				c = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu
		} else {
			if u < x {
				a = u
			} else {
				c = u
			}
			if fu <= fw || w == x {
				v, fv = w, fw
				w, fw = u, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}

	return Sample{}, fmt.Errorf("%w: no convergence within %d iterations (width %g)",
		ErrPoorlyConditioned, maxBrentIter, c-a)
}

// FindBrentGrad narrows the bracket b to a minimum of f using derivative
// information: secant steps on the derivative replace parabolic fits where
// they stay inside the bracket and point downhill, with bisection as the
// fallback. Termination uses the same width-based test as FindBrent, and the
// derivative at the result is carried through.
func FindBrentGrad(f GradFunc1, b Bracket, tol float64) (GradSample, error) {
	if !(tol > 0) {
		return GradSample{}, fmt.Errorf("%w: got %g", ErrBadTolerance, tol)
	}
	a, c := b.Left.X, b.Right.X
	x := b.Inner.X
	fx, dx := f(x)
	w, fw, dw := x, fx, dx
	v, fv, dv := x, fx, dx
	var d, e float64

	for iter := 0; iter < maxBrentIter; iter++ {
		xm := 0.5 * (a + c)
		tol1 := tol*math.Abs(x) + zeps
		tol2 := 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(c-a) {
			return GradSample{X: x, F: fx, DF: dx}, nil
		}

		if math.Abs(e) > tol1 {
			// Secant steps from the two most recent derivative samples.
			d1 := 2 * (c - a)
			d2 := d1
			if dw != dx {
				d1 = (w - x) * dx / (dx - dw)
			}
			if dv != dx {
				d2 = (v - x) * dx / (dx - dv)
			}
			u1, u2 := x+d1, x+d2
			ok1 := (a-u1)*(u1-c) > 0 && dx*d1 <= 0
			ok2 := (a-u2)*(u2-c) > 0 && dx*d2 <= 0
			olde := e
			e = d
			if ok1 || ok2 {
				switch {
				case ok1 && ok2:
					if math.Abs(d1) < math.Abs(d2) {
						d = d1
					} else {
						d = d2
					}
				case ok1:
					d = d1
				default:
					d = d2
				}
				if math.Abs(d) <= math.Abs(0.5*olde) {
					u := x + d
					if u-a < tol2 || c-u < tol2 {
						d = math.Copysign(tol1, xm-x)
					}
				} else {
					e = bisectSide(a, c, x, dx)
					d = 0.5 * e
				}
			} else {
				e = bisectSide(a, c, x, dx)
				d = 0.5 * e
			}
		} else {
			e = bisectSide(a, c, x, dx)
			d = 0.5 * e
		}

		var u, fu, du float64
		if math.Abs(d) >= tol1 {
			u = x + d
			fu, du = f(u)
		} else {
			u = x + math.Copysign(tol1, d)
			fu, du = f(u)
			if fu > fx {
				// The smallest sensible step goes uphill: done.
				return GradSample{X: x, F: fx, DF: dx}, nil
			}
		}
		if math.IsNaN(fu) {
			return GradSample{}, fmt.Errorf("%w: NaN function value at %g", ErrPoorlyConditioned, u)
		}

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				c = x
			}
			v, fv, dv = w, fw, dw
			w, fw, dw = x, fx, dx
			x, fx, dx = u, fu, du
		} else {
			if u < x {
				a = u
			} else {
				c = u
			}
			if fu <= fw || w == x {
				v, fv, dv = w, fw, dw
				w, fw, dw = u, fu, du
			} else if fu <= fv || v == x || v == w {
				v, fv, dv = u, fu, du
			}
		}
	}

	return GradSample{}, fmt.Errorf("%w: no convergence within %d iterations (width %g)",
		ErrPoorlyConditioned, maxBrentIter, c-a)
}

// bisectSide picks the bracket side the derivative points away from.
func bisectSide(a, c, x, dx float64) float64 {
	if dx >= 0 {
		return a - x
	}
	return c - x
}
