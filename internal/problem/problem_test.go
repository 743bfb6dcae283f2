package problem

import (
	"math"
	"testing"

	"github.com/cwbudde/riemanncg/internal/manifold"
)

// numericalGrad approximates the ambient gradient by central differences.
func numericalGrad(cost func(manifold.Point) float64, p manifold.Point, h float64) []float64 {
	g := make([]float64, len(p))
	for i := range p {
		hi := manifold.ClonePoint(p)
		lo := manifold.ClonePoint(p)
		hi[i] += h
		lo[i] -= h
		g[i] = (cost(hi) - cost(lo)) / (2 * h)
	}
	return g
}

func TestFlatGradientsMatchFiniteDifferences(t *testing.T) {
	tests := []struct {
		name  string
		prob  Problem
		point manifold.Point
	}{
		{name: "quadratic", prob: Quadratic(), point: manifold.Point{0.3, -1.7}},
		{name: "rosenbrock 2d", prob: Rosenbrock(2), point: manifold.Point{-1.2, 1}},
		{name: "rosenbrock 5d", prob: Rosenbrock(5), point: manifold.Point{0.5, -0.5, 1.5, 0.1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.prob.Grad(tt.point)
			want := numericalGrad(tt.prob.Cost, tt.point, 1e-6)

			for i := range want {
				if math.Abs(got[i]-want[i]) > 1e-4*(1+math.Abs(want[i])) {
					t.Errorf("grad[%d] = %g, finite difference %g", i, got[i], want[i])
				}
			}
		})
	}
}

func TestRayleighGradientIsProjectedAmbientGradient(t *testing.T) {
	d := []float64{1, 2, 3}
	prob := Rayleigh(d)
	sphere := manifold.NewSphere()

	p := sphere.Normalize(manifold.Point{1, -2, 0.5})

	ambient := numericalGrad(prob.Cost, p, 1e-6)
	want := sphere.Project(p, manifold.Vector(ambient))
	got := prob.Grad(p)

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-4 {
			t.Errorf("grad[%d] = %g, want %g", i, got[i], want[i])
		}
	}

	// The Riemannian gradient must be tangent at p.
	var radial float64
	for i := range p {
		radial += got[i] * p[i]
	}
	if math.Abs(radial) > 1e-12 {
		t.Errorf("gradient not tangent: ⟨grad, p⟩ = %g", radial)
	}
}

func TestRayleighInitialOnSphere(t *testing.T) {
	prob := Rayleigh([]float64{1, 2, 3, 4})

	var norm float64
	for _, v := range prob.Initial {
		norm += v * v
	}
	if math.Abs(norm-1) > 1e-12 {
		t.Errorf("initial norm² = %g, want 1", norm)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			prob, err := ByName(name, 4)
			if err != nil {
				t.Fatalf("ByName(%q) failed: %v", name, err)
			}
			if prob.Dim != len(prob.Initial) {
				t.Errorf("Dim = %d but initial has %d coordinates", prob.Dim, len(prob.Initial))
			}
			if len(prob.Lower) != prob.Dim || len(prob.Upper) != prob.Dim {
				t.Errorf("bounds length mismatch for %q", name)
			}
		})
	}

	if _, err := ByName("himmelblau", 2); err == nil {
		t.Error("expected error for unknown problem")
	}
}

func TestProjectMapsOntoManifold(t *testing.T) {
	prob := Rayleigh([]float64{1, 2, 3})
	p := prob.Project([]float64{3, 4, 0})

	var norm float64
	for _, v := range p {
		norm += v * v
	}
	if math.Abs(norm-1) > 1e-12 {
		t.Errorf("projected norm² = %g, want 1", norm)
	}
}
