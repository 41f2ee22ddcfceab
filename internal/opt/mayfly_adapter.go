package opt

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MayflyAdapter wraps the external Mayfly library to conform to our Optimizer
// interface. It performs population-based global search and is the natural
// companion to the local methods: run Mayfly to land in the right basin, then
// polish with Powell or conjugate gradient.
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
	lower    float64
	upper    float64
}

// NewMayfly creates a new Mayfly optimizer adapter. The scalar bounds apply
// to every dimension (the external library uses uniform bounds).
func NewMayfly(maxIters, popSize int, seed int64, lower, upper float64) Optimizer {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
		lower:    lower,
		upper:    upper,
	}
}

// Run executes the Mayfly optimization using the external library. x0 fixes
// only the dimensionality; the population is sampled inside the bounds.
func (m *MayflyAdapter) Run(eval func([]float64) float64, x0 []float64) ([]float64, float64, error) {
	config := mayfly.NewDefaultConfig()

	config.ObjectiveFunc = eval
	config.ProblemSize = len(x0)
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = m.lower
	config.UpperBound = m.upper

	// Seeded for reproducibility.
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		return nil, 0, fmt.Errorf("mayfly optimization: %w", err)
	}

	return result.GlobalBest.Position, result.GlobalBest.Cost, nil
}
