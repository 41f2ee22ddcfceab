package algebra

import (
	"fmt"
	"math"
)

// Quaternion is an immutable quaternion a + b·i + c·j + d·k.
type Quaternion struct {
	A, B, C, D float64
}

// QuaternionIdentity is the multiplicative identity (1, 0, 0, 0).
var QuaternionIdentity = Quaternion{A: 1}

// NewQuaternion creates a quaternion from its four real components.
func NewQuaternion(a, b, c, d float64) Quaternion {
	return Quaternion{A: a, B: b, C: c, D: d}
}

// Mul returns the quaternion product q·r. Quaternion multiplication is not
// commutative.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		A: q.A*r.A - q.B*r.B - q.C*r.C - q.D*r.D,
		B: q.A*r.B + q.B*r.A + q.C*r.D - q.D*r.C,
		C: q.A*r.C - q.B*r.D + q.C*r.A + q.D*r.B,
		D: q.A*r.D + q.B*r.C - q.C*r.B + q.D*r.A,
	}
}

// Plus returns the component-wise sum q + r.
func (q Quaternion) Plus(r Quaternion) Quaternion {
	return Quaternion{A: q.A + r.A, B: q.B + r.B, C: q.C + r.C, D: q.D + r.D}
}

// Minus returns the component-wise difference q - r.
func (q Quaternion) Minus(r Quaternion) Quaternion {
	return Quaternion{A: q.A - r.A, B: q.B - r.B, C: q.C - r.C, D: q.D - r.D}
}

// Scale returns the quaternion multiplied by the scalar s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{A: q.A * s, B: q.B * s, C: q.C * s, D: q.D * s}
}

// Conj returns the conjugate, negating the vector part.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{A: q.A, B: -q.B, C: -q.C, D: -q.D}
}

// Norm2 returns the squared norm a² + b² + c² + d².
func (q Quaternion) Norm2() float64 {
	return q.A*q.A + q.B*q.B + q.C*q.C + q.D*q.D
}

// Norm returns the quaternion norm.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.Norm2())
}

// Reciprocal returns the multiplicative inverse, conjugate divided by squared
// norm. The reciprocal of the zero quaternion is defined as the zero
// quaternion rather than a NaN-filled value.
func (q Quaternion) Reciprocal() Quaternion {
	n2 := q.Norm2()
	if n2 == 0 {
		return Quaternion{}
	}
	return q.Conj().Scale(1 / n2)
}

// Versor returns the unit quaternion q / norm(q). The versor of the zero
// quaternion is defined as the zero quaternion.
func (q Quaternion) Versor() Quaternion {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}
	}
	return q.Scale(1 / n)
}

// Exp returns the quaternion exponential via the scalar+vector decomposition:
// for q = a + v, exp(q) = exp(a)·(cos|v| + (v/|v|)·sin|v|).
func (q Quaternion) Exp() Quaternion {
	vn := math.Sqrt(q.B*q.B + q.C*q.C + q.D*q.D)
	ea := math.Exp(q.A)
	if vn == 0 {
		return Quaternion{A: ea}
	}
	s := ea * math.Sin(vn) / vn
	return Quaternion{A: ea * math.Cos(vn), B: s * q.B, C: s * q.C, D: s * q.D}
}

// Log returns the quaternion logarithm, the inverse of Exp on its principal
// branch: for q = a + v, log(q) = log|q| + (v/|v|)·atan2(|v|, a).
func (q Quaternion) Log() Quaternion {
	vn := math.Sqrt(q.B*q.B + q.C*q.C + q.D*q.D)
	ln := math.Log(q.Norm())
	if vn == 0 {
		// Pure real: log of a negative real quaternion has no principal
		// value here; math.Log propagates NaN.
		return Quaternion{A: ln}
	}
	t := math.Atan2(vn, q.A) / vn
	return Quaternion{A: ln, B: t * q.B, C: t * q.C, D: t * q.D}
}

// Pow returns q raised to the real power p, exp(p·log(q)).
func (q Quaternion) Pow(p float64) Quaternion {
	return q.Log().Scale(p).Exp()
}

// Conjugation returns q·p·q⁻¹, the conjugation of p by q.
func (q Quaternion) Conjugation(p Quaternion) Quaternion {
	return q.Mul(p).Mul(q.Reciprocal())
}

// Equal reports whether r has bit-identical components.
// See EqualFloats for the equality contract.
func (q Quaternion) Equal(r Quaternion) bool {
	return EqualFloats(q.A, r.A) && EqualFloats(q.B, r.B) &&
		EqualFloats(q.C, r.C) && EqualFloats(q.D, r.D)
}

// String renders the quaternion as "a + bi + cj + dk".
func (q Quaternion) String() string {
	return fmt.Sprintf("%g + %gi + %gj + %gk", q.A, q.B, q.C, q.D)
}
