package cg

import (
	"log/slog"
	"math"

	"github.com/cwbudde/riemanncg/internal/linesearch"
	"github.com/cwbudde/riemanncg/internal/manifold"
)

// defaultMaxSteps bounds Optimize when the caller does not override MaxSteps.
const defaultMaxSteps = 1000

// Cost maps a point of the manifold to a scalar cost. It must be pure and
// deterministic.
type Cost func(manifold.Point) float64

// Gradient returns the Riemannian gradient of the cost, anchored at the
// input point.
type Gradient func(manifold.Point) manifold.Vector

// State is the per-run record of a ConjugateGradient instance. The optimizer
// owns it exclusively; State() hands out snapshots only.
type State struct {
	X        manifold.Point  // current point
	LastX    manifold.Point  // previous point
	Grad     manifold.Vector // gradient at X
	LastGrad manifold.Vector // gradient at LastX

	// Velocity is the current search direction, anchored at X.
	Velocity manifold.Vector

	// TransportedVelocity is the previous search velocity parallel-translated
	// to X along the previous geodesic at the previous step length.
	TransportedVelocity manifold.Vector

	Iteration int
	MaxSteps  int
}

// Iteration reports one successful step to the OnIteration callback.
type Iteration struct {
	Index    int     // 0-based step index
	Cost     float64 // cost at the new point
	GradNorm float64 // norm of the gradient used for this step
	Step     float64 // accepted line-search step length
}

// ConjugateGradient seeks a local minimum of a smooth cost function on a
// Riemannian manifold by stepping along geodesics in conjugate directions.
//
// An instance is stateful and not reentrant: at most one Optimize call may
// be in flight, and concurrent use requires external synchronization.
type ConjugateGradient struct {
	// MaxSteps bounds the number of iterations per Optimize call.
	MaxSteps int

	// OnIteration, when set, is invoked after every successful step. It is
	// purely observational; leaving it nil changes nothing.
	OnIteration func(Iteration)

	geom     manifold.Geometry
	geodesic manifold.Geodesic
	search   *linesearch.LineSearch
	scheme   Scheme
	state    State
}

// New creates an optimizer on the given geometry using one fixed scheme.
func New(geom manifold.Geometry, scheme Scheme) *ConjugateGradient {
	return &ConjugateGradient{
		MaxSteps: defaultMaxSteps,
		geom:     geom,
		geodesic: geom.NewGeodesic(),
		search:   linesearch.New(),
		scheme:   scheme,
	}
}

// Scheme returns the scheme fixed at construction.
func (o *ConjugateGradient) Scheme() Scheme {
	return o.scheme
}

// State returns a snapshot of the optimizer state. Slices are cloned so the
// caller cannot alias the internal record.
func (o *ConjugateGradient) State() State {
	st := o.state
	st.X = manifold.ClonePoint(o.state.X)
	st.LastX = manifold.ClonePoint(o.state.LastX)
	st.Grad = manifold.Clone(o.state.Grad)
	st.LastGrad = manifold.Clone(o.state.LastGrad)
	st.Velocity = manifold.Clone(o.state.Velocity)
	st.TransportedVelocity = manifold.Clone(o.state.TransportedVelocity)
	return st
}

// Step performs one iteration: it rebuilds the search direction from the new
// gradient and the transported previous velocity, line-searches the geodesic
// in that direction and advances the current point. It returns false when
// the line search finds no improving step; the current point is then left
// untouched.
func (o *ConjugateGradient) Step(cost Cost, grad Gradient) bool {
	st := &o.state

	st.LastGrad = st.Grad
	st.Grad = grad(st.X)

	// The search direction is the negative gradient plus the transported
	// previous velocity weighted by the scheme coefficient.
	velocity := manifold.Neg(st.Grad)
	if st.Iteration > 0 {
		st.TransportedVelocity = o.geodesic.Transport(o.geodesic.Velocity(), o.search.Alpha)
		b := o.beta()
		if math.IsNaN(b) || math.IsInf(b, 0) {
			// Vanished denominator in the scheme formula; degrade to plain
			// steepest descent for this iteration.
			slog.Debug("non-finite conjugate coefficient, using steepest descent",
				"scheme", o.scheme.String(),
				"iteration", st.Iteration,
			)
			b = 0
		}
		velocity = manifold.Add(velocity, manifold.Scale(st.TransportedVelocity, b))
	}
	st.Velocity = velocity
	o.geodesic.Set(st.X, velocity)

	// The 1-D restriction of the cost along the geodesic; its derivative at
	// t is the inner product of the full gradient at γ(t) with the initial
	// velocity transported to t.
	alpha := o.search.Search(
		func(t float64) float64 {
			return cost(o.geodesic.At(t))
		},
		func(t float64) float64 {
			xt := o.geodesic.At(t)
			vt := o.geodesic.Transport(o.geodesic.Velocity(), t)
			return o.geom.Metric(xt).Dot(grad(xt), vt)
		},
	)
	if alpha <= 0 {
		return false
	}

	st.LastX = st.X
	st.X = o.geodesic.At(alpha)

	if o.OnIteration != nil {
		gradNorm := math.Sqrt(o.geom.Metric(st.LastX).Norm2(st.Grad))
		o.OnIteration(Iteration{
			Index:    st.Iteration,
			Cost:     cost(st.X),
			GradNorm: gradNorm,
			Step:     alpha,
		})
	}
	return true
}

// Optimize runs repeated steps from the initial point until a step fails or
// MaxSteps is reached, and returns the last successfully reached point. A
// failing step is read as having arrived at a stationary point, not as an
// error; if the very first step fails the initial point is returned as-is.
func (o *ConjugateGradient) Optimize(initial manifold.Point, cost Cost, grad Gradient) manifold.Point {
	o.state = State{
		X:        manifold.ClonePoint(initial),
		MaxSteps: o.MaxSteps,
	}
	o.search.Reset()
	for o.state.Iteration = 0; o.state.Iteration < o.MaxSteps; o.state.Iteration++ {
		if !o.Step(cost, grad) {
			break
		}
	}
	return o.state.X
}

// beta computes the scheme coefficient. Called only when a previous
// iteration exists; all transports run along the previous geodesic at the
// previous step length, landing at the current point.
func (o *ConjugateGradient) beta() float64 {
	st := &o.state
	ip := o.geom.Metric(st.X)

	switch o.scheme {
	case FletcherReeves:
		return ip.Norm2(st.Grad) / o.geom.Metric(st.LastX).Norm2(st.LastGrad)

	case PolakRibiere:
		pt := o.geodesic.Transport(st.LastGrad, o.search.Alpha)
		return ip.Dot(st.Grad, manifold.Sub(st.Grad, pt)) / ip.Norm2(pt)

	case HestenesStiefel:
		pt := o.geodesic.Transport(st.LastGrad, o.search.Alpha)
		diff := manifold.Sub(st.Grad, pt)
		return ip.Dot(st.Grad, diff) / ip.Dot(st.TransportedVelocity, diff)

	case ConjugateDescent:
		pt := o.geodesic.Transport(st.LastGrad, o.search.Alpha)
		return -ip.Norm2(st.Grad) / ip.Dot(st.TransportedVelocity, pt)

	case DaiYuan:
		pt := o.geodesic.Transport(st.LastGrad, o.search.Alpha)
		return ip.Norm2(st.Grad) / ip.Dot(st.TransportedVelocity, manifold.Sub(st.Grad, pt))
	}
	return 0
}
