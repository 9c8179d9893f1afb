package spectral

import "github.com/mkaralis/posgraph/graph"

// eigenTol is the Jacobi convergence tolerance used for Fiedler values.
const eigenTol = 1e-10

// Fiedler returns the second-smallest Laplacian eigenvalue of g, a measure
// of algebraic connectivity. Directed graphs go through the symmetrized
// walk Laplacian; undirected graphs use L = D − W directly.
//
// Returns nil when the value is undefined (< 2 nodes) or when the solver
// fails to converge: per the engine's error policy a failed metric is a
// null, never an abort.
func Fiedler(g *graph.Graph) *float64 {
	n := g.NodeCount()
	if n < 2 {
		return nil
	}

	var (
		L   *Dense
		err error
	)
	if g.Directed() {
		L, _, err = DirectedLaplacian(g, DefaultAlpha)
		if err != nil {
			return nil
		}
	} else {
		L, _ = Laplacian(g)
	}

	eigs, err := Eigen(L, eigenTol, 100*n*n)
	if err != nil || len(eigs) < 2 {
		return nil
	}
	v := eigs[1]

	return &v
}
