package linesearch

import "math"

// armijoDecrease is the sufficient-decrease constant in the acceptance test
// f(t) ≤ f(0) + c·t·f'(0).
const armijoDecrease = 1e-4

// LineSearch finds a step length along a 1-D restriction of a cost function,
// given the restriction f and its derivative df. It runs a secant iteration
// on df, warm-started from the previously accepted step, and safeguards the
// result with Armijo backtracking. On a quadratic restriction a single
// secant update lands on the exact minimizer.
//
// A LineSearch is stateful: Alpha remembers the last accepted step so that
// consecutive searches start from a well-scaled guess. Call Reset before
// reusing the instance for an unrelated optimization run.
type LineSearch struct {
	// Alpha is the last accepted step length, 0 after Reset.
	Alpha float64

	// InitialStep is the first trial step when no previous Alpha exists.
	InitialStep float64

	// Tolerance stops the secant iteration once |df(t)| ≤ Tolerance·|df(0)|.
	Tolerance float64

	// MaxIterations bounds the secant iteration.
	MaxIterations int

	// MaxHalvings bounds the Armijo backtracking safeguard.
	MaxHalvings int
}

// New creates a line search with default settings.
func New() *LineSearch {
	return &LineSearch{
		InitialStep:   1.0,
		Tolerance:     1e-10,
		MaxIterations: 30,
		MaxHalvings:   40,
	}
}

// Reset clears the remembered step length.
func (ls *LineSearch) Reset() {
	ls.Alpha = 0
}

// Search returns a step length t > 0 with sufficient decrease of f, or a
// non-positive value when none exists. A non-negative initial slope (the
// direction is not a descent direction, including the zero direction at a
// stationary point) fails immediately.
func (ls *LineSearch) Search(f, df func(float64) float64) float64 {
	d0 := df(0)
	if !(d0 < 0) {
		return 0
	}

	t := ls.Alpha
	if t <= 0 {
		t = ls.InitialStep
	}

	// Secant iteration on the derivative: tₖ₊₁ = tₖ - df(tₖ)·(tₖ-tₖ₋₁)/(df(tₖ)-df(tₖ₋₁)).
	tPrev, dPrev := 0.0, d0
	for i := 0; i < ls.MaxIterations; i++ {
		d := df(t)
		if math.Abs(d) <= ls.Tolerance*math.Abs(d0) {
			break
		}
		denom := d - dPrev
		if denom == 0 {
			break
		}
		next := t - d*(t-tPrev)/denom
		if math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		if next <= 0 {
			// The secant model points backwards; bisect instead.
			next = t / 2
		}
		if next == t {
			break
		}
		tPrev, dPrev = t, d
		t = next
	}

	// Armijo safeguard: the secant iterate may sit on a non-decreasing
	// stretch (e.g. a local maximum of f); halve until decrease holds.
	f0 := f(0)
	for i := 0; i < ls.MaxHalvings; i++ {
		ft := f(t)
		if ft <= f0+armijoDecrease*t*d0 {
			ls.Alpha = t
			return t
		}
		t /= 2
	}
	return 0
}
