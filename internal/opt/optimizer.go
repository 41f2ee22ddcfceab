package opt

// Optimizer defines an optimization algorithm interface over flat parameter
// slices, the calling convention of the surrounding engine code.
type Optimizer interface {
	// Run minimizes eval starting from x0.
	// Returns: best parameters, best value, and an error when the algorithm
	// cannot certify a result (poorly conditioned problems included).
	Run(eval func([]float64) float64, x0 []float64) ([]float64, float64, error)
}
