package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/spatialopt/internal/opt"
	"github.com/spf13/cobra"
)

var (
	funcName  string
	method    string
	from      string
	tolerance float64
	iters     int
	popSize   int
	seed      int64
	lower     float64
	upper     float64
)

var minimiseCmd = &cobra.Command{
	Use:   "minimise",
	Short: "Minimize a benchmark function",
	Long:  `Runs the selected minimization method against a named benchmark objective and prints the result as JSON.`,
	RunE:  runMinimise,
}

func init() {
	minimiseCmd.Flags().StringVar(&funcName, "function", "sphere", "Benchmark function: sphere, rosenbrock, booth")
	minimiseCmd.Flags().StringVar(&method, "method", "powell", "Method: powell, cg, mayfly")
	minimiseCmd.Flags().StringVar(&from, "from", "1,1", "Comma-separated starting point")
	minimiseCmd.Flags().Float64Var(&tolerance, "tolerance", 1e-6, "Convergence tolerance")
	minimiseCmd.Flags().IntVar(&iters, "iters", 200, "Max iterations (mayfly)")
	minimiseCmd.Flags().IntVar(&popSize, "pop", 30, "Population size (mayfly)")
	minimiseCmd.Flags().Int64Var(&seed, "seed", 42, "Random seed (mayfly)")
	minimiseCmd.Flags().Float64Var(&lower, "lower", -10, "Lower bound per dimension (mayfly)")
	minimiseCmd.Flags().Float64Var(&upper, "upper", 10, "Upper bound per dimension (mayfly)")

	rootCmd.AddCommand(minimiseCmd)
}

// minimiseResult is the JSON output of the minimise command.
type minimiseResult struct {
	Function string    `json:"function"`
	Method   string    `json:"method"`
	X        []float64 `json:"x"`
	F        float64   `json:"f"`
	Seconds  float64   `json:"seconds"`
}

func runMinimise(cmd *cobra.Command, args []string) error {
	x0, err := parsePoint(from)
	if err != nil {
		return err
	}
	bf, err := lookupBenchFunc(funcName, len(x0))
	if err != nil {
		return err
	}

	var optimizer opt.Optimizer
	switch method {
	case "powell":
		optimizer = opt.NewPowell(tolerance)
	case "cg":
		optimizer = opt.NewConjGrad(tolerance, bf.grad)
	case "mayfly":
		optimizer = opt.NewMayfly(iters, popSize, seed, lower, upper)
	default:
		return fmt.Errorf("unknown method %q", method)
	}

	slog.Info("Starting minimization", "function", bf.name, "method", method, "from", x0, "tolerance", tolerance)

	start := time.Now()
	best, value, err := optimizer.Run(bf.eval, x0)
	if err != nil {
		return fmt.Errorf("minimization failed: %w", err)
	}
	elapsed := time.Since(start)

	slog.Info("Minimization complete", "f", value, "seconds", elapsed.Seconds())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(minimiseResult{
		Function: bf.name,
		Method:   method,
		X:        best,
		F:        value,
		Seconds:  elapsed.Seconds(),
	})
}

// parsePoint parses a comma-separated list of floats.
func parsePoint(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid starting point %q: %w", s, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("starting point must have at least one component")
	}
	return out, nil
}
