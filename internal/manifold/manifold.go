package manifold

// Point is an element of a manifold, stored in embedding coordinates.
// Optimizers treat points as opaque and only manipulate them through a
// Geometry.
type Point []float64

// Vector is a tangent vector anchored at one specific point of the manifold.
//
// Anchoring invariant: two vectors may be combined arithmetically only if
// they are anchored at the same point. A vector anchored elsewhere must first
// be moved with Geodesic.Transport.
type Vector []float64

// InnerProduct is the Riemannian inner product at one fixed point.
// Both arguments must be anchored at that point.
type InnerProduct interface {
	// Dot returns ⟨u, v⟩ at the anchoring point.
	Dot(u, v Vector) float64

	// Norm2 returns ⟨v, v⟩, the squared norm of v.
	Norm2(v Vector) float64
}

// Geodesic is a curve determined by a base point and an initial velocity.
// A single Geodesic value is reused across iterations by calling Set.
type Geodesic interface {
	// Set re-anchors the geodesic at base with the given initial velocity.
	Set(base Point, velocity Vector)

	// At evaluates the curve at parameter t. At(0) is the base point.
	At(t float64) Point

	// Transport parallel-translates v, anchored at the base point, along the
	// geodesic to parameter t. The result is anchored at At(t).
	Transport(v Vector, t float64) Vector

	// Velocity returns the defining initial velocity, anchored at the base.
	Velocity() Vector
}

// Geometry bundles the capabilities an optimizer needs from a manifold:
// an inner product at every point and geodesics with parallel transport.
type Geometry interface {
	// Metric returns the inner product at p.
	Metric(p Point) InnerProduct

	// NewGeodesic returns an unset geodesic on this manifold.
	NewGeodesic() Geodesic
}
