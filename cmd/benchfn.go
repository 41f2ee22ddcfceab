package main

import "fmt"

// benchFunc is a named benchmark objective with an analytic gradient.
type benchFunc struct {
	name string
	// dim is the required dimensionality, 0 when any dimension works.
	dim  int
	eval func([]float64) float64
	grad func([]float64) []float64
}

var benchFuncs = map[string]benchFunc{
	"sphere": {
		name: "sphere",
		eval: func(x []float64) float64 {
			var sum float64
			for _, v := range x {
				sum += v * v
			}
			return sum
		},
		grad: func(x []float64) []float64 {
			g := make([]float64, len(x))
			for i, v := range x {
				g[i] = 2 * v
			}
			return g
		},
	},
	"rosenbrock": {
		name: "rosenbrock",
		dim:  2,
		eval: func(x []float64) float64 {
			a := 1 - x[0]
			b := x[1] - x[0]*x[0]
			return a*a + 100*b*b
		},
		grad: func(x []float64) []float64 {
			b := x[1] - x[0]*x[0]
			return []float64{
				-2*(1-x[0]) - 400*x[0]*b,
				200 * b,
			}
		},
	},
	"booth": {
		name: "booth",
		dim:  2,
		eval: func(x []float64) float64 {
			a := x[0] + 2*x[1] - 7
			b := 2*x[0] + x[1] - 5
			return a*a + b*b
		},
		grad: func(x []float64) []float64 {
			a := x[0] + 2*x[1] - 7
			b := 2*x[0] + x[1] - 5
			return []float64{2*a + 4*b, 4*a + 2*b}
		},
	},
}

// lookupBenchFunc resolves a benchmark by name and checks dimensionality.
func lookupBenchFunc(name string, dim int) (benchFunc, error) {
	bf, ok := benchFuncs[name]
	if !ok {
		return benchFunc{}, fmt.Errorf("unknown benchmark function %q", name)
	}
	if bf.dim != 0 && bf.dim != dim {
		return benchFunc{}, fmt.Errorf("function %q requires dimension %d, got %d", name, bf.dim, dim)
	}
	return bf, nil
}
