package manifold

import "math"

// Sphere is the unit sphere S^(n-1) embedded in R^n. Points are unit
// vectors, tangent vectors at p are vectors orthogonal to p, geodesics are
// great circles and parallel transport rotates in the plane spanned by the
// base point and the direction of travel.
type Sphere struct{}

// NewSphere creates a unit-sphere geometry.
func NewSphere() Sphere {
	return Sphere{}
}

// Metric returns the inner product induced by the embedding (the ambient
// dot product restricted to the tangent space at p).
func (Sphere) Metric(p Point) InnerProduct {
	return euclideanInner{}
}

// NewGeodesic returns an unset great-circle geodesic.
func (Sphere) NewGeodesic() Geodesic {
	return &greatCircle{}
}

// Project maps an ambient vector to the tangent space at p by removing the
// radial component: v - ⟨p,v⟩p. Useful for turning ambient gradients into
// Riemannian ones and for re-anchoring off-manifold seed points.
func (Sphere) Project(p Point, v Vector) Vector {
	r := dot(p, v)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - r*p[i]
	}
	return out
}

// Normalize scales an ambient point onto the sphere. The zero vector maps
// to the first coordinate axis.
func (Sphere) Normalize(p Point) Point {
	n := math.Sqrt(dot(p, p))
	out := make(Point, len(p))
	if n == 0 {
		out[0] = 1
		return out
	}
	for i := range p {
		out[i] = p[i] / n
	}
	return out
}

// greatCircle is the geodesic γ(t) = cos(ωt)·p + sin(ωt)·v/ω with ω = ‖v‖.
// A zero velocity yields the constant curve at p.
type greatCircle struct {
	base     Point
	velocity Vector
	speed    float64 // ω = ‖velocity‖
	dir      Vector  // velocity/ω, unset when speed == 0
}

func (g *greatCircle) Set(base Point, velocity Vector) {
	g.base = ClonePoint(base)
	g.velocity = Clone(velocity)
	g.speed = math.Sqrt(dot(velocity, velocity))
	if g.speed > 0 {
		g.dir = Scale(velocity, 1/g.speed)
	} else {
		g.dir = nil
	}
}

func (g *greatCircle) At(t float64) Point {
	if g.speed == 0 {
		return ClonePoint(g.base)
	}
	theta := g.speed * t
	c, s := math.Cos(theta), math.Sin(theta)
	out := make(Point, len(g.base))
	for i := range g.base {
		out[i] = c*g.base[i] + s*g.dir[i]
	}
	return out
}

// Transport parallel-translates w from the base point to parameter t.
// The component of w along the travel direction rotates with the curve;
// the orthogonal component is unchanged:
//
//	Γ(w) = w + ⟨u,w⟩·((cos θ - 1)·u - sin θ·p),  θ = ωt, u = v/ω.
func (g *greatCircle) Transport(w Vector, t float64) Vector {
	if g.speed == 0 {
		return Clone(w)
	}
	theta := g.speed * t
	c, s := math.Cos(theta), math.Sin(theta)
	wu := dot(w, g.dir)
	out := make(Vector, len(w))
	for i := range w {
		out[i] = w[i] + wu*((c-1)*g.dir[i]-s*g.base[i])
	}
	return out
}

func (g *greatCircle) Velocity() Vector {
	return g.velocity
}
