package problem

import (
	"fmt"

	"github.com/cwbudde/riemanncg/internal/cg"
	"github.com/cwbudde/riemanncg/internal/manifold"
)

// Problem binds a cost function, its analytic Riemannian gradient and the
// geometry it lives on, together with a canonical start point and box bounds
// for global seeding.
type Problem struct {
	Name     string
	Dim      int
	Geometry manifold.Geometry
	Cost     cg.Cost
	Grad     cg.Gradient
	Initial  manifold.Point

	// Lower and Upper bound the ambient coordinates for global seeding.
	Lower, Upper []float64

	// Project maps an ambient parameter vector onto the manifold, so that
	// seed points proposed off-manifold become valid start points.
	Project func([]float64) manifold.Point
}

// ByName resolves a named benchmark problem. dim is honored by problems with
// a free dimension and ignored otherwise.
func ByName(name string, dim int) (Problem, error) {
	switch name {
	case "quadratic":
		return Quadratic(), nil
	case "rosenbrock":
		if dim < 2 {
			dim = 2
		}
		return Rosenbrock(dim), nil
	case "rayleigh":
		if dim < 2 {
			dim = 3
		}
		d := make([]float64, dim)
		for i := range d {
			d[i] = float64(i + 1)
		}
		return Rayleigh(d), nil
	}
	return Problem{}, fmt.Errorf("unknown problem %q", name)
}

// Names lists the available benchmark problems.
func Names() []string {
	return []string{"quadratic", "rosenbrock", "rayleigh"}
}

// Quadratic is f(x,y) = x² + 10y² on flat 2-D space, minimized at the
// origin. With an exact line search conjugate gradient finishes it in two
// iterations.
func Quadratic() Problem {
	return Problem{
		Name:     "quadratic",
		Dim:      2,
		Geometry: manifold.NewEuclidean(),
		Cost: func(p manifold.Point) float64 {
			return p[0]*p[0] + 10*p[1]*p[1]
		},
		Grad: func(p manifold.Point) manifold.Vector {
			return manifold.Vector{2 * p[0], 20 * p[1]}
		},
		Initial: manifold.Point{1, 1},
		Lower:   []float64{-10, -10},
		Upper:   []float64{10, 10},
		Project: clonePoint,
	}
}

// Rosenbrock is the banana-valley function in dim dimensions on flat space,
// minimized at (1, ..., 1).
func Rosenbrock(dim int) Problem {
	initial := make(manifold.Point, dim)
	lower := make([]float64, dim)
	upper := make([]float64, dim)
	for i := range initial {
		if i%2 == 0 {
			initial[i] = -1.2
		} else {
			initial[i] = 1
		}
		lower[i] = -5
		upper[i] = 10
	}
	return Problem{
		Name:     "rosenbrock",
		Dim:      dim,
		Geometry: manifold.NewEuclidean(),
		Cost: func(p manifold.Point) float64 {
			var sum float64
			for i := 0; i+1 < len(p); i++ {
				a := p[i+1] - p[i]*p[i]
				b := 1 - p[i]
				sum += 100*a*a + b*b
			}
			return sum
		},
		Grad: func(p manifold.Point) manifold.Vector {
			g := make(manifold.Vector, len(p))
			for i := 0; i+1 < len(p); i++ {
				a := p[i+1] - p[i]*p[i]
				g[i] += -400*p[i]*a - 2*(1-p[i])
				g[i+1] += 200 * a
			}
			return g
		},
		Initial: initial,
		Lower:   lower,
		Upper:   upper,
		Project: clonePoint,
	}
}

// Rayleigh minimizes the Rayleigh quotient xᵀAx of the diagonal matrix
// A = diag(d) over the unit sphere. The minimum is the smallest entry of d,
// attained at the matching coordinate axis. The Riemannian gradient is the
// ambient gradient 2Ax projected onto the tangent space at x.
func Rayleigh(d []float64) Problem {
	sphere := manifold.NewSphere()
	dim := len(d)

	initial := make(manifold.Point, dim)
	lower := make([]float64, dim)
	upper := make([]float64, dim)
	for i := range initial {
		initial[i] = 1
		lower[i] = -1
		upper[i] = 1
	}
	initial = sphere.Normalize(initial)

	cost := func(p manifold.Point) float64 {
		var sum float64
		for i := range p {
			sum += d[i] * p[i] * p[i]
		}
		return sum
	}
	return Problem{
		Name:     "rayleigh",
		Dim:      dim,
		Geometry: sphere,
		Cost:     cost,
		Grad: func(p manifold.Point) manifold.Vector {
			g := make(manifold.Vector, len(p))
			for i := range p {
				g[i] = 2 * d[i] * p[i]
			}
			return sphere.Project(p, g)
		},
		Initial: initial,
		Lower:   lower,
		Upper:   upper,
		Project: func(x []float64) manifold.Point {
			return sphere.Normalize(manifold.Point(x))
		},
	}
}

func clonePoint(x []float64) manifold.Point {
	return manifold.ClonePoint(manifold.Point(x))
}
