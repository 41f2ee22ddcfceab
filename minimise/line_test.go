package minimise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/spatialopt/algebra"
)

func paraboloid(x algebra.Vector) float64 {
	return x.Magnitude2()
}

func paraboloidGrad(x algebra.Vector) (float64, algebra.Vector) {
	return x.Magnitude2(), x.Scale(2)
}

func TestLineFunc(t *testing.T) {
	origin := algebra.NewVector(1, 2)
	dir := algebra.NewVector(0, 1)

	lf := LineFunc(paraboloid, origin, dir)

	assert.Equal(t, 5.0, lf(0), "w=0 evaluates at the origin")
	assert.Equal(t, 1.0+9.0, lf(1))
	assert.Equal(t, 1.0, lf(-2), "w=-2 reaches (1,0)")
}

func TestLineGradFuncDirectionalDerivative(t *testing.T) {
	origin := algebra.NewVector(1, 1)
	dir := algebra.NewVector(3, -4)

	lf := LineGradFunc(paraboloidGrad, origin, dir)

	f0, df0 := lf(0)
	assert.Equal(t, 2.0, f0)
	// dot(∇f(1,1), dir) = dot((2,2), (3,-4)) = -2.
	assert.Equal(t, -2.0, df0)

	// At w the derivative is d/dw |origin + w·dir|² = 2·dot(origin,dir) + 2w·|dir|².
	_, df := lf(0.5)
	assert.InDelta(t, 2*(-1)+2*0.5*25, df, 1e-12)
}

func TestMinimiseAlongLine(t *testing.T) {
	x := algebra.MutVectorOf(algebra.NewVector(1, 1))
	dir := algebra.MutVectorOf(algebra.NewVector(1, 0))

	val, err := MinimiseAlongLine(paraboloid, x, dir)
	require.NoError(t, err)

	// The line minimum of x²+y² along (1,0) from (1,1) is (0,1).
	assert.InDelta(t, 1, val, 1e-6)
	assert.InDelta(t, 0, x.At(0), 1e-3)
	assert.InDelta(t, 1, x.At(1), 0)

	// dir now holds the displacement actually taken.
	assert.InDelta(t, -1, dir.At(0), 1e-3)
	assert.InDelta(t, 0, dir.At(1), 0)
}

func TestMinimiseAlongLineZeroDirection(t *testing.T) {
	x := algebra.MutVectorOf(algebra.NewVector(1, 1))
	dir := algebra.NewMutVector(2)

	_, err := MinimiseAlongLine(paraboloid, x, dir)
	assert.ErrorIs(t, err, ErrZeroDirection)
}

func TestMinimiseAlongLineDimensionMismatch(t *testing.T) {
	x := algebra.MutVectorOf(algebra.NewVector(1, 1))
	dir := algebra.MutVectorOf(algebra.NewVector1(1))

	_, err := MinimiseAlongLine(paraboloid, x, dir)
	assert.ErrorIs(t, err, ErrDimension)

	_, _, err = MinimiseAlongLineGrad(paraboloidGrad, x, dir)
	assert.ErrorIs(t, err, ErrDimension)
}

func TestMinimiseAlongLineGrad(t *testing.T) {
	x := algebra.MutVectorOf(algebra.NewVector(2, -3))
	dir := algebra.MutVectorOf(algebra.NewVector(2, -3))

	val, grad, err := MinimiseAlongLineGrad(paraboloidGrad, x, dir)
	require.NoError(t, err)

	// The ray through the origin minimizes at the origin itself.
	assert.InDelta(t, 0, val, 1e-5)
	assert.InDelta(t, 0, x.Vector().Magnitude(), 1e-2)
	assert.InDelta(t, 0, grad.Magnitude(), 2e-2)

	// Displacement is the step from (2,-3) to near the origin.
	assert.InDelta(t, -2, dir.At(0), 1e-2)
	assert.InDelta(t, 3, dir.At(1), 1e-2)
}

func TestMinimiseAlongLineUnbracketable(t *testing.T) {
	// Linear objective: no minimum along the line.
	plane := func(x algebra.Vector) float64 { return x.At(0) }
	x := algebra.MutVectorOf(algebra.NewVector(0, 0))
	dir := algebra.MutVectorOf(algebra.NewVector(1, 0))

	_, err := MinimiseAlongLine(plane, x, dir)
	assert.ErrorIs(t, err, ErrPoorlyConditioned)
	assert.False(t, math.IsNaN(x.At(0)), "x must stay untouched on failure")
	assert.Equal(t, 0.0, x.At(0), "x must stay untouched on failure")
}
