package algebra

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
)

func toGonum(q Quaternion) quat.Number {
	return quat.Number{Real: q.A, Imag: q.B, Jmag: q.C, Kmag: q.D}
}

func quatApproxEqual(t *testing.T, name string, got, want Quaternion, tol float64) {
	t.Helper()
	d := got.Minus(want)
	if d.Norm() > tol {
		t.Errorf("%s: got %v, want %v (|diff| = %g)", name, got, want, d.Norm())
	}
}

func TestQuaternionProductTable(t *testing.T) {
	i := NewQuaternion(0, 1, 0, 0)
	j := NewQuaternion(0, 0, 1, 0)
	k := NewQuaternion(0, 0, 0, 1)
	one := QuaternionIdentity

	tests := []struct {
		name string
		got  Quaternion
		want Quaternion
	}{
		{"i*i", i.Mul(i), one.Scale(-1)},
		{"j*j", j.Mul(j), one.Scale(-1)},
		{"k*k", k.Mul(k), one.Scale(-1)},
		{"i*j", i.Mul(j), k},
		{"j*i", j.Mul(i), k.Scale(-1)},
		{"j*k", j.Mul(k), i},
		{"k*j", k.Mul(j), i.Scale(-1)},
		{"k*i", k.Mul(i), j},
		{"i*k", i.Mul(k), j.Scale(-1)},
	}

	for _, tt := range tests {
		if !tt.got.Equal(tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestQuaternionMulMatchesGonum(t *testing.T) {
	a := NewQuaternion(0.5, -1.25, 2, 0.75)
	b := NewQuaternion(-3, 0.25, 1.5, -2)

	got := a.Mul(b)
	want := quat.Mul(toGonum(a), toGonum(b))

	if got.A != want.Real || got.B != want.Imag || got.C != want.Jmag || got.D != want.Kmag {
		t.Errorf("Mul = %v, gonum says %v", got, want)
	}
}

func TestQuaternionConjAndNorm(t *testing.T) {
	q := NewQuaternion(1, -2, 3, -4)

	c := q.Conj()
	if !c.Equal(NewQuaternion(1, 2, -3, 4)) {
		t.Errorf("Conj = %v", c)
	}
	if q.Norm2() != 30 {
		t.Errorf("Norm2 = %g, want 30", q.Norm2())
	}
	if q.Norm() != math.Sqrt(30) {
		t.Errorf("Norm = %g, want %g", q.Norm(), math.Sqrt(30))
	}
}

func TestQuaternionReciprocal(t *testing.T) {
	q := NewQuaternion(2, -1, 0.5, 3)

	quatApproxEqual(t, "q*q^-1", q.Mul(q.Reciprocal()), QuaternionIdentity, 1e-15)
	quatApproxEqual(t, "q^-1*q", q.Reciprocal().Mul(q), QuaternionIdentity, 1e-15)

	// The zero quaternion has no inverse; its reciprocal is pinned to zero
	// instead of NaN.
	if !NewQuaternion(0, 0, 0, 0).Reciprocal().Equal(Quaternion{}) {
		t.Error("Reciprocal of zero quaternion must be zero")
	}
}

func TestQuaternionVersor(t *testing.T) {
	q := NewQuaternion(3, 0, 4, 0)
	v := q.Versor()
	if math.Abs(v.Norm()-1) > 1e-15 {
		t.Errorf("versor norm = %g", v.Norm())
	}
	if !NewQuaternion(0, 0, 0, 0).Versor().Equal(Quaternion{}) {
		t.Error("Versor of zero quaternion must be zero")
	}
}

func TestQuaternionExpLogRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		q    Quaternion
	}{
		{"generic", NewQuaternion(0.3, -0.5, 0.2, 0.7)},
		{"near real", NewQuaternion(1.5, 1e-9, 0, 0)},
		{"large vector part", NewQuaternion(0.1, 1.2, -0.8, 0.4)},
		{"pure vector", NewQuaternion(0, 0.4, -0.3, 0.2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tol := 1e-14 * (1 + tt.q.Norm())
			quatApproxEqual(t, "exp(log(q))", tt.q.Log().Exp(), tt.q, tol)
			quatApproxEqual(t, "log(exp(q))", tt.q.Exp().Log(), tt.q, tol)
		})
	}
}

func TestQuaternionExpLogMatchGonum(t *testing.T) {
	q := NewQuaternion(0.4, -0.9, 0.35, 0.6)

	ge := quat.Exp(toGonum(q))
	quatApproxEqual(t, "Exp vs gonum", q.Exp(),
		NewQuaternion(ge.Real, ge.Imag, ge.Jmag, ge.Kmag), 1e-13)

	gl := quat.Log(toGonum(q))
	quatApproxEqual(t, "Log vs gonum", q.Log(),
		NewQuaternion(gl.Real, gl.Imag, gl.Jmag, gl.Kmag), 1e-13)
}

func TestQuaternionPow(t *testing.T) {
	q := NewQuaternion(0.8, 0.3, -0.2, 0.1)

	quatApproxEqual(t, "q^1", q.Pow(1), q, 1e-14)
	quatApproxEqual(t, "q^2", q.Pow(2), q.Mul(q), 1e-14)

	half := q.Pow(0.5)
	quatApproxEqual(t, "(q^0.5)^2", half.Mul(half), q, 1e-14)
}

func TestQuaternionConjugation(t *testing.T) {
	// Conjugating by a versor preserves the norm of the argument.
	q := NewQuaternion(1, 1, 0, 0).Versor()
	p := NewQuaternion(0, 2, -1, 3)

	out := q.Conjugation(p)
	if math.Abs(out.Norm()-p.Norm()) > 1e-14 {
		t.Errorf("conjugation changed norm: %g vs %g", out.Norm(), p.Norm())
	}
	// Conjugation by the identity is the identity map.
	quatApproxEqual(t, "identity conjugation", QuaternionIdentity.Conjugation(p), p, 0)
}

func TestQuaternionEqualityBits(t *testing.T) {
	nan := math.NaN()
	if !NewQuaternion(nan, 0, 0, 0).Equal(NewQuaternion(nan, 0, 0, 0)) {
		t.Error("NaN components must compare equal")
	}
	if NewQuaternion(0, 0, 0, 0).Equal(NewQuaternion(math.Copysign(0, -1), 0, 0, 0)) {
		t.Error("+0 and -0 must compare unequal")
	}
}
