package spectral

import (
	"math"
	"sort"
)

// Eigen computes all eigenvalues of the symmetric matrix m using the
// classical Jacobi rotation method, returned in ascending order.
// tol bounds the largest off-diagonal magnitude at convergence; maxIter
// caps the number of rotations.
// Returns ErrNotSymmetric or ErrNoConverge.
// Complexity: O(n) per rotation scan plus O(n) per update, worst case
// O(maxIter·n); Memory: O(n²) for the working copy.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, error) {
	// Stage 1: Validate symmetry.
	n := m.N()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return nil, ErrNotSymmetric
			}
		}
	}
	if n < 2 {
		eigs := make([]float64, n)
		for i = 0; i < n; i++ {
			eigs[i] = m.At(i, i)
		}

		return eigs, nil
	}

	// Stage 2: Rotate away the largest off-diagonal element until below tol.
	var (
		A          = m.Clone()
		iter       int
		p, q       int
		maxOff     float64
		theta, t   float64
		c, s       float64
		app, aqq   float64
		apq        float64
		aip, aiq   float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// 2.1: locate pivot |A[p][q]|.
		maxOff = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off := math.Abs(A.At(i, j)); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			break // converged
		}

		// 2.2: rotation parameters.
		app = A.At(p, p)
		aqq = A.At(q, q)
		apq = A.At(p, q)
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// 2.3: apply the rotation to rows/columns p and q.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.At(i, p)
			aiq = A.At(i, q)
			A.Set(i, p, c*aip-s*aiq)
			A.Set(p, i, c*aip-s*aiq)
			A.Set(i, q, s*aip+c*aiq)
			A.Set(q, i, s*aip+c*aiq)
		}
		A.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		A.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq)
		A.Set(p, q, 0.0)
		A.Set(q, p, 0.0)
	}
	if iter == maxIter {
		return nil, ErrNoConverge
	}

	// Stage 3: diagonal holds the eigenvalues.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.At(i, i)
	}
	sort.Float64s(eigs)

	return eigs, nil
}
