package spectral

import (
	"math"

	"github.com/mkaralis/posgraph/graph"
)

// DefaultAlpha is the teleportation damping of the PageRank walk used by
// DirectedLaplacian.
const DefaultAlpha = 0.95

// stationaryTol bounds the L1 change between power-iteration steps.
const stationaryTol = 1e-12

// Laplacian builds the weighted Laplacian L = D − W of an undirected
// graph, with rows/columns in ascending node-ID order. The returned order
// slice maps matrix indices back to node IDs.
func Laplacian(g *graph.Graph) (*Dense, []string) {
	order := g.NodeIDs()
	index := indexOf(order)
	L := NewDense(len(order))
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		if i == j {
			continue // self-loops do not affect the Laplacian
		}
		L.Add(i, j, -e.Weight)
		L.Add(j, i, -e.Weight)
		L.Add(i, i, e.Weight)
		L.Add(j, j, e.Weight)
	}

	return L, order
}

// DirectedLaplacian builds the symmetrized random-walk Laplacian of a
// directed graph:
//
//	L = I − (Φ^½ P Φ^-½ + Φ^-½ Pᵀ Φ^½) / 2
//
// where P is the PageRank transition matrix (damping alpha, dangling rows
// uniform) and Φ holds its stationary distribution, found by power
// iteration. The construction is symmetric, so its spectrum is real and
// Eigen applies directly.
// Returns ErrNoConverge if the stationary distribution does not settle.
func DirectedLaplacian(g *graph.Graph, alpha float64) (*Dense, []string, error) {
	order := g.NodeIDs()
	index := indexOf(order)
	n := len(order)
	if n == 0 {
		return NewDense(0), order, nil
	}

	// Stage 1: row-stochastic walk matrix with teleportation.
	P := NewDense(n)
	rowSum := make([]float64, n)
	for _, e := range g.Edges() {
		rowSum[index[e.From]] += e.Weight
	}
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		P.Add(i, j, e.Weight/rowSum[i])
	}
	uniform := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rowSum[i] == 0 {
				P.Set(i, j, uniform) // dangling node walks anywhere
			} else {
				P.Set(i, j, alpha*P.At(i, j)+(1-alpha)*uniform)
			}
		}
	}

	// Stage 2: stationary distribution by power iteration.
	phi, err := stationary(P)
	if err != nil {
		return nil, nil, err
	}

	// Stage 3: symmetrize and subtract from identity.
	L := NewDense(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := 0.5 * (math.Sqrt(phi[i]/phi[j])*P.At(i, j) + math.Sqrt(phi[j]/phi[i])*P.At(j, i))
			if i == j {
				L.Set(i, j, 1-s)
			} else {
				L.Set(i, j, -s)
			}
		}
	}

	return L, order, nil
}

// stationary returns the stationary distribution of the row-stochastic
// matrix P. Teleportation guarantees strictly positive entries.
func stationary(P *Dense) ([]float64, error) {
	n := P.N()
	x := make([]float64, n)
	next := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}
	const maxIter = 10000
	for iter := 0; iter < maxIter; iter++ {
		for j := 0; j < n; j++ {
			next[j] = 0
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				next[j] += x[i] * P.At(i, j)
			}
		}
		diff := 0.0
		for j := 0; j < n; j++ {
			diff += math.Abs(next[j] - x[j])
		}
		x, next = next, x
		if diff < stationaryTol {
			return x, nil
		}
	}

	return nil, ErrNoConverge
}

func indexOf(order []string) map[string]int {
	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	return index
}
