package opt

import (
	"math"
	"testing"
)

// Sphere function: f(x) = sum(x_i^2), minimum at origin
func sphere(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func sphereGrad(x []float64) []float64 {
	g := make([]float64, len(x))
	for i, v := range x {
		g[i] = 2 * v
	}
	return g
}

func TestPowellAdapterOnSphere(t *testing.T) {
	optimizer := NewPowell(1e-8)

	best, cost, err := optimizer.Run(sphere, []float64{1, -2, 3})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 parameters, got %d", len(best))
	}
	if cost > 1e-6 {
		t.Errorf("Expected cost near 0, got %g", cost)
	}
	for i, v := range best {
		if math.Abs(v) > 1e-2 {
			t.Errorf("Parameter %d = %g, expected near 0", i, v)
		}
	}
}

func TestConjGradAdapterOnSphere(t *testing.T) {
	optimizer := NewConjGrad(1e-8, sphereGrad)

	best, cost, err := optimizer.Run(sphere, []float64{4, -1})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if cost > 1e-6 {
		t.Errorf("Expected cost near 0, got %g", cost)
	}
	for i, v := range best {
		if math.Abs(v) > 1e-2 {
			t.Errorf("Parameter %d = %g, expected near 0", i, v)
		}
	}
}

func TestPowellAdapterReportsFailure(t *testing.T) {
	// A plane has no minimum; the adapter must surface the failure rather
	// than fabricate a result.
	plane := func(x []float64) float64 { return x[0] }

	_, _, err := NewPowell(1e-6).Run(plane, []float64{0, 0})
	if err == nil {
		t.Fatal("expected an error for an unbounded objective")
	}
}
