package manifold

// Vector arithmetic helpers. All helpers allocate a fresh result slice so
// that snapshots of optimizer state never alias each other. Callers are
// responsible for the anchoring invariant: all operands must be anchored at
// the same point.

// Clone returns a copy of v.
func Clone(v Vector) Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// ClonePoint returns a copy of p.
func ClonePoint(p Point) Point {
	out := make(Point, len(p))
	copy(out, p)
	return out
}

// Add returns u + v.
func Add(u, v Vector) Vector {
	out := make(Vector, len(u))
	for i := range u {
		out[i] = u[i] + v[i]
	}
	return out
}

// Sub returns u - v.
func Sub(u, v Vector) Vector {
	out := make(Vector, len(u))
	for i := range u {
		out[i] = u[i] - v[i]
	}
	return out
}

// Scale returns s * v.
func Scale(v Vector, s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = s * v[i]
	}
	return out
}

// Neg returns -v.
func Neg(v Vector) Vector {
	return Scale(v, -1)
}

// dot is the Euclidean dot product of the raw coordinate slices.
func dot(u, v []float64) float64 {
	var sum float64
	for i := range u {
		sum += u[i] * v[i]
	}
	return sum
}
