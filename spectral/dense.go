package spectral

import "errors"

// Sentinel errors for spectral operations.
var (
	// ErrNotSymmetric is returned when Eigen receives a non-symmetric matrix.
	ErrNotSymmetric = errors.New("spectral: matrix is not symmetric")

	// ErrNoConverge is returned when an iteration cap is reached before
	// the convergence tolerance.
	ErrNoConverge = errors.New("spectral: iteration did not converge")
)

// Dense is a square row-major float64 matrix. Components derived from a
// chess board stay small (≤ 67 nodes), so no sparse representation is
// needed.
type Dense struct {
	n    int
	data []float64
}

// NewDense allocates an n×n zero matrix.
func NewDense(n int) *Dense {
	return &Dense{n: n, data: make([]float64, n*n)}
}

// N returns the dimension.
func (m *Dense) N() int { return m.n }

// At returns element (i, j).
func (m *Dense) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set assigns element (i, j).
func (m *Dense) Set(i, j int, v float64) { m.data[i*m.n+j] = v }

// Add accumulates v into element (i, j).
func (m *Dense) Add(i, j int, v float64) { m.data[i*m.n+j] += v }

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	c := NewDense(m.n)
	copy(c.data, m.data)

	return c
}
