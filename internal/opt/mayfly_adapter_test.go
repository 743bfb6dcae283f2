package opt

import (
	"math"
	"testing"
)

// Sum of squares: f(x) = sum(x_i^2), minimum at origin
func sumOfSquares(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func TestMayflyAdapterFindsBasin(t *testing.T) {
	seeder := NewMayfly(100, 20, 42) // maxIters, popSize, seed

	dim := 3
	lower := make([]float64, dim)
	upper := make([]float64, dim)
	for i := 0; i < dim; i++ {
		lower[i] = -10
		upper[i] = 10
	}

	best, cost := seeder.Run(sumOfSquares, lower, upper, dim)

	if len(best) != dim {
		t.Fatalf("Expected %d parameters, got %d", dim, len(best))
	}

	// A seed point only needs to land in the right basin, not at the
	// minimum itself.
	if cost > 0.1 {
		t.Errorf("Expected cost near 0, got %f", cost)
	}
	for i, v := range best {
		if math.Abs(v) > 1.0 {
			t.Errorf("Parameter %d = %f, expected near 0", i, v)
		}
	}
}

func TestMayflyAdapterDeterministic(t *testing.T) {
	dim := 2
	lower := []float64{-5, -5}
	upper := []float64{5, 5}

	// Run twice with same seed (popSize must be >=20 for mayfly v0.1.0)
	seeder1 := NewMayfly(50, 20, 123)
	_, cost1 := seeder1.Run(sumOfSquares, lower, upper, dim)

	seeder2 := NewMayfly(50, 20, 123)
	_, cost2 := seeder2.Run(sumOfSquares, lower, upper, dim)

	if cost1 != cost2 {
		t.Errorf("Non-deterministic: cost1=%f, cost2=%f", cost1, cost2)
	}
}
