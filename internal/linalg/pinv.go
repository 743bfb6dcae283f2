package linalg

import "math"

const (
	machineEps = 2.220446049250313e-16
	maxSweeps  = 60
)

// PseudoInverse returns the Moore–Penrose pseudo-inverse of a, computed via
// a one-sided Jacobi SVD. Singular values below
// eps·max(rows,cols)·σ_max are treated as zero, so rank-deficient inputs
// yield the minimum-norm inverse.
func PseudoInverse(a *Matrix) *Matrix {
	if a.Rows < a.Cols {
		// pinv(Aᵀ) = pinv(A)ᵀ; Jacobi below wants at least as many rows
		// as columns.
		return PseudoInverse(a.T()).T()
	}

	m, n := a.Rows, a.Cols
	u := a.Clone()
	v := NewMatrix(n, n)
	for j := 0; j < n; j++ {
		v.Set(j, j, 1)
	}

	// One-sided Jacobi: rotate column pairs of U (and accumulate into V)
	// until all pairs are numerically orthogonal.
	for sweep := 0; sweep < maxSweeps; sweep++ {
		rotated := false
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				var alpha, beta, gamma float64
				for i := 0; i < m; i++ {
					up, uq := u.At(i, p), u.At(i, q)
					alpha += up * up
					beta += uq * uq
					gamma += up * uq
				}
				if gamma == 0 || math.Abs(gamma) <= machineEps*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true

				zeta := (beta - alpha) / (2 * gamma)
				t := math.Copysign(1, zeta) / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				c := 1 / math.Sqrt(1+t*t)
				s := c * t

				for i := 0; i < m; i++ {
					up, uq := u.At(i, p), u.At(i, q)
					u.Set(i, p, c*up-s*uq)
					u.Set(i, q, s*up+c*uq)
				}
				for i := 0; i < n; i++ {
					vp, vq := v.At(i, p), v.At(i, q)
					v.Set(i, p, c*vp-s*vq)
					v.Set(i, q, s*vp+c*vq)
				}
			}
		}
		if !rotated {
			break
		}
	}

	// Singular values are the column norms of the rotated U.
	sigma := make([]float64, n)
	var sigmaMax float64
	for j := 0; j < n; j++ {
		var sum float64
		for i := 0; i < m; i++ {
			sum += u.At(i, j) * u.At(i, j)
		}
		sigma[j] = math.Sqrt(sum)
		if sigma[j] > sigmaMax {
			sigmaMax = sigma[j]
		}
	}

	dim := m
	if n > dim {
		dim = n
	}
	tolerance := machineEps * float64(dim) * sigmaMax

	// A⁺ = V·Σ⁺·Ûᵀ with Û the normalized columns of U, folded into one pass:
	// A⁺[i,k] = Σ_j V[i,j]·U[k,j]/σ_j².
	out := NewMatrix(n, m)
	for j := 0; j < n; j++ {
		if sigma[j] <= tolerance || sigma[j] == 0 {
			continue
		}
		inv := 1 / (sigma[j] * sigma[j])
		for i := 0; i < n; i++ {
			vij := v.At(i, j)
			if vij == 0 {
				continue
			}
			for k := 0; k < m; k++ {
				out.Data[i*out.Cols+k] += vij * u.At(k, j) * inv
			}
		}
	}
	return out
}
