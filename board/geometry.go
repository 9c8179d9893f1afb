package board

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadSquare indicates a square name outside a1..h8.
var ErrBadSquare = errors.New("board: bad square name")

// Coord is a zero-based board coordinate: File 0..7 maps a..h,
// Rank 0..7 maps 1..8, so a1 = {0, 0} and h8 = {7, 7}.
type Coord struct {
	File int
	Rank int
}

// InBounds reports whether c lies on the 8×8 board.
func (c Coord) InBounds() bool {
	return c.File >= 0 && c.File < 8 && c.Rank >= 0 && c.Rank < 8
}

// Name returns the algebraic square name, e.g. {4,3}.Name() == "e4".
func (c Coord) Name() string {
	return string(rune('a'+c.File)) + string(rune('1'+c.Rank))
}

// ParseSquare converts an algebraic square name to a Coord.
// Returns ErrBadSquare for anything outside a1..h8.
func ParseSquare(name string) (Coord, error) {
	if len(name) != 2 {
		return Coord{}, fmt.Errorf("ParseSquare(%q): %w", name, ErrBadSquare)
	}
	c := Coord{File: int(name[0] - 'a'), Rank: int(name[1] - '1')}
	if !c.InBounds() {
		return Coord{}, fmt.Errorf("ParseSquare(%q): %w", name, ErrBadSquare)
	}

	return c, nil
}

// AllCoords returns the 64 board coordinates in rank-major order
// (a1, b1, ..., h8). The order is fixed and relied upon for determinism.
func AllCoords() []Coord {
	coords := make([]Coord, 0, 64)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			coords = append(coords, Coord{File: file, Rank: rank})
		}
	}

	return coords
}

// Manhattan returns |Δfile| + |Δrank|.
func Manhattan(a, b Coord) int {
	return abs(a.File-b.File) + abs(a.Rank-b.Rank)
}

// Chebyshev returns max(|Δfile|, |Δrank|).
func Chebyshev(a, b Coord) int {
	dx, dy := abs(a.File-b.File), abs(a.Rank-b.Rank)
	if dx > dy {
		return dx
	}

	return dy
}

// Euclidean returns sqrt(Δfile² + Δrank²).
func Euclidean(a, b Coord) float64 {
	dx, dy := float64(a.File-b.File), float64(a.Rank-b.Rank)

	return math.Sqrt(dx*dx + dy*dy)
}

// PieceDistance computes the movement-geometry distance between two squares
// for the piece identified by its FEN symbol (case-insensitive):
//
//	N: Euclidean    B: Chebyshev    R: Manhattan
//	Q: Chebyshev on diagonals, Manhattan otherwise
//	K: constant 1   P: Manhattan    anything else: Manhattan
//
// This is a movement-geometry measure, not physical distance.
func PieceDistance(symbol string, from, to Coord) float64 {
	dx, dy := abs(from.File-to.File), abs(from.Rank-to.Rank)
	var kind byte
	if len(symbol) > 0 {
		kind = upper(symbol[0])
	}
	switch kind {
	case 'N':
		return Euclidean(from, to)
	case 'B':
		return float64(Chebyshev(from, to))
	case 'R':
		return float64(Manhattan(from, to))
	case 'Q':
		if dx == dy {
			return float64(Chebyshev(from, to))
		}

		return float64(Manhattan(from, to))
	case 'K':
		return 1
	default: // pawns and unknown symbols
		return float64(Manhattan(from, to))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}

	return b
}
