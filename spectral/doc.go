// Package spectral provides the small dense linear algebra needed by the
// metric engine: graph Laplacians and a Jacobi eigenvalue solver.
//
// What:
//
//   - Dense: a square float64 matrix sized for chess-derived graphs
//     (at most a few dozen nodes per component).
//   - Laplacian: weighted Laplacian L = D − W of an undirected graph.
//   - DirectedLaplacian: symmetrized random-walk Laplacian of a directed
//     graph (PageRank walk with teleportation), yielding a real spectrum.
//   - Eigen: all eigenvalues of a symmetric matrix via Jacobi rotations.
//   - Fiedler: second-smallest Laplacian eigenvalue of a graph, nil when
//     undefined (< 2 nodes) or when the solver fails to converge.
//
// Why:
//   - The Fiedler value measures algebraic connectivity of each component;
//     keeping the solver symmetric (directed graphs go through the
//     symmetrized walk Laplacian) means a single, well-behaved Jacobi
//     implementation covers every graph variant.
//
// Errors:
//
//   - ErrNotSymmetric   Eigen input is not symmetric
//   - ErrNoConverge     iteration cap reached before convergence
//
// Complexity: Eigen is O(n³) per sweep; DirectedLaplacian adds a power
// iteration for the stationary distribution, O(n²) per step.
package spectral
