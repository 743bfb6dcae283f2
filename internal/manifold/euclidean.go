package manifold

// Euclidean is flat n-dimensional space: the metric is the standard dot
// product, geodesics are straight lines and parallel transport is the
// identity. On this geometry the conjugate gradient optimizer reduces to the
// classical Euclidean algorithm.
type Euclidean struct{}

// NewEuclidean creates a flat geometry.
func NewEuclidean() Euclidean {
	return Euclidean{}
}

// Metric returns the dot-product inner product (the same at every point).
func (Euclidean) Metric(p Point) InnerProduct {
	return euclideanInner{}
}

// NewGeodesic returns an unset straight-line geodesic.
func (Euclidean) NewGeodesic() Geodesic {
	return &lineGeodesic{}
}

type euclideanInner struct{}

func (euclideanInner) Dot(u, v Vector) float64 { return dot(u, v) }
func (euclideanInner) Norm2(v Vector) float64  { return dot(v, v) }

// lineGeodesic is the straight line t ↦ base + t·velocity.
type lineGeodesic struct {
	base     Point
	velocity Vector
}

func (g *lineGeodesic) Set(base Point, velocity Vector) {
	g.base = ClonePoint(base)
	g.velocity = Clone(velocity)
}

func (g *lineGeodesic) At(t float64) Point {
	out := make(Point, len(g.base))
	for i := range g.base {
		out[i] = g.base[i] + t*g.velocity[i]
	}
	return out
}

// Transport is the identity in flat space; a copy is returned to preserve
// the no-aliasing convention.
func (g *lineGeodesic) Transport(v Vector, t float64) Vector {
	return Clone(v)
}

func (g *lineGeodesic) Velocity() Vector {
	return g.velocity
}
