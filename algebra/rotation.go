package algebra

import (
	"fmt"
	"math"
)

// axisEps bounds the vector-part magnitude below which a rotation is treated
// as having no well-defined axis.
const axisEps = 1e-12

// Rotation3 is an immutable rotation of 3-D space represented by a unit
// quaternion. The convention is the right-hand rule: a positive angle rotates
// counterclockwise about the axis as seen from the axis tip, so the rotation
// about (1,0,0) by π/2 maps (0,1,0) to (0,0,1).
type Rotation3 struct {
	q Quaternion
}

// IdentityRotation returns the rotation that leaves every vector unchanged.
func IdentityRotation() Rotation3 {
	return Rotation3{q: QuaternionIdentity}
}

// NewRotation3 creates the rotation about the given 3-D axis by angle radians.
// The axis need not be normalized. A zero axis yields the identity rotation.
// It panics with ErrNotVec3 when axis is not 3-dimensional.
func NewRotation3(axis Vector, angle float64) Rotation3 {
	if axis.Dim() != 3 {
		panic(ErrNotVec3)
	}
	n := axis.Magnitude()
	if n == 0 {
		return IdentityRotation()
	}
	s := math.Sin(angle/2) / n
	return Rotation3{q: Quaternion{
		A: math.Cos(angle / 2),
		B: s * axis.At(0),
		C: s * axis.At(1),
		D: s * axis.At(2),
	}}
}

// RotationFromVersor creates a rotation from a quaternion, normalizing it
// first. A zero quaternion yields the identity rotation.
func RotationFromVersor(q Quaternion) Rotation3 {
	v := q.Versor()
	if v.Equal(Quaternion{}) {
		return IdentityRotation()
	}
	return Rotation3{q: v}
}

// Quaternion returns the unit quaternion representing the rotation.
func (r Rotation3) Quaternion() Quaternion {
	return r.q
}

// Angle returns the rotation angle in [0, 2π].
func (r Rotation3) Angle() float64 {
	vn := math.Sqrt(r.q.B*r.q.B + r.q.C*r.q.C + r.q.D*r.q.D)
	return 2 * math.Atan2(vn, r.q.A)
}

// Axis returns the unit rotation axis, or the zero vector when the angle is
// close enough to zero (or a full turn) that no axis is defined.
func (r Rotation3) Axis() Vector {
	vn := math.Sqrt(r.q.B*r.q.B + r.q.C*r.q.C + r.q.D*r.q.D)
	if vn <= axisEps {
		return ZeroVector(3)
	}
	return NewVector3(r.q.B/vn, r.q.C/vn, r.q.D/vn)
}

// Apply rotates the 3-D vector v, returning q·(0,v)·q⁻¹.
// It panics with ErrNotVec3 when v is not 3-dimensional.
func (r Rotation3) Apply(v Vector) Vector {
	if v.Dim() != 3 {
		panic(ErrNotVec3)
	}
	p := Quaternion{B: v.At(0), C: v.At(1), D: v.At(2)}
	// For a versor the conjugate is the reciprocal.
	out := r.q.Mul(p).Mul(r.q.Conj())
	return NewVector3(out.B, out.C, out.D)
}

// Compose returns the rotation equivalent to applying o first, then r.
func (r Rotation3) Compose(o Rotation3) Rotation3 {
	// Renormalize to keep repeated composition from drifting off the unit
	// sphere.
	return Rotation3{q: r.q.Mul(o.q).Versor()}
}

// Minus returns the inverse rotation.
func (r Rotation3) Minus() Rotation3 {
	return Rotation3{q: r.q.Conj()}
}

// Pow returns the rotation scaled to the fraction t of its angle, via the
// quaternion power of the versor. Pow(0.5) is the half rotation; Pow(-1)
// equals Minus().
func (r Rotation3) Pow(t float64) Rotation3 {
	return Rotation3{q: r.q.Pow(t).Versor()}
}

// String renders the rotation as its axis and angle.
func (r Rotation3) String() string {
	return fmt.Sprintf("rotation %g rad about %v", r.Angle(), r.Axis())
}
