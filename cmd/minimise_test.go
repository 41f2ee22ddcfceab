package main

import (
	"testing"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []float64
		wantErr bool
	}{
		{name: "pair", input: "1,1", want: []float64{1, 1}},
		{name: "spaces", input: " 2.5 , -3 ", want: []float64{2.5, -3}},
		{name: "single", input: "0.125", want: []float64{0.125}},
		{name: "garbage", input: "1,x", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePoint(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("length %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("component %d = %g, want %g", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLookupBenchFunc(t *testing.T) {
	if _, err := lookupBenchFunc("sphere", 5); err != nil {
		t.Errorf("sphere should accept any dimension: %v", err)
	}
	if _, err := lookupBenchFunc("rosenbrock", 2); err != nil {
		t.Errorf("rosenbrock with dim 2: %v", err)
	}
	if _, err := lookupBenchFunc("rosenbrock", 3); err == nil {
		t.Error("rosenbrock with dim 3 should be rejected")
	}
	if _, err := lookupBenchFunc("nope", 2); err == nil {
		t.Error("unknown function should be rejected")
	}
}

func TestBenchFuncGradientsMatchValues(t *testing.T) {
	// Central-difference check of each analytic gradient.
	const h = 1e-6
	points := map[string][]float64{
		"sphere":     {0.7, -1.3},
		"rosenbrock": {-0.5, 1.2},
		"booth":      {2, 0.5},
	}

	for name, x := range points {
		bf, err := lookupBenchFunc(name, len(x))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		grad := bf.grad(x)
		for i := range x {
			hi := append([]float64{}, x...)
			lo := append([]float64{}, x...)
			hi[i] += h
			lo[i] -= h
			numeric := (bf.eval(hi) - bf.eval(lo)) / (2 * h)
			if diff := numeric - grad[i]; diff > 1e-3 || diff < -1e-3 {
				t.Errorf("%s: gradient[%d] = %g, numeric %g", name, i, grad[i], numeric)
			}
		}
	}
}
