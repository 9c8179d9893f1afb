package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaralis/posgraph/board"
)

func TestParseSquare_RoundTrip(t *testing.T) {
	for _, c := range board.AllCoords() {
		parsed, err := board.ParseSquare(c.Name())
		require.NoError(t, err, c.Name())
		assert.Equal(t, c, parsed)
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, name := range []string{"", "e", "i1", "a9", "e44", "41"} {
		_, err := board.ParseSquare(name)
		assert.ErrorIs(t, err, board.ErrBadSquare, name)
	}
}

func TestPieceDistance(t *testing.T) {
	e4, _ := board.ParseSquare("e4")
	tests := []struct {
		symbol string
		to     string
		want   float64
	}{
		{"N", "f6", 2.2360679774997896}, // sqrt(1+4)
		{"B", "h7", 3},                  // Chebyshev
		{"R", "e8", 4},                  // Manhattan
		{"Q", "h7", 3},                  // diagonal: Chebyshev
		{"Q", "e8", 4},                  // straight: Manhattan
		{"K", "d3", 1},                  // always one step
		{"P", "e5", 1},
		{"p", "d5", 2},  // lowercase symbols work
		{"X", "g6", 4},  // unknown piece: Manhattan
		{"n", "f6", 2.2360679774997896},
	}
	for _, tc := range tests {
		to, err := board.ParseSquare(tc.to)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, board.PieceDistance(tc.symbol, e4, to), 1e-12,
			"%s e4->%s", tc.symbol, tc.to)
	}
}

func TestZoneOf(t *testing.T) {
	tests := []struct {
		square string
		want   board.Zone
	}{
		{"d4", board.ZoneCenter},
		{"d5", board.ZoneCenter},
		{"e4", board.ZoneCenter},
		{"e5", board.ZoneCenter},
		{"e1", board.ZoneKingside},
		{"h8", board.ZoneKingside},
		{"e6", board.ZoneKingside},
		{"d1", board.ZoneQueenside},
		{"a4", board.ZoneQueenside},
		{"d6", board.ZoneQueenside},
	}
	for _, tc := range tests {
		c, err := board.ParseSquare(tc.square)
		require.NoError(t, err)
		assert.Equal(t, tc.want, board.ZoneOf(c), tc.square)
	}
}

func TestZones_CoverBoard(t *testing.T) {
	counts := map[board.Zone]int{}
	for _, c := range board.AllCoords() {
		counts[board.ZoneOf(c)]++
	}
	assert.Equal(t, 4, counts[board.ZoneCenter])
	assert.Equal(t, 30, counts[board.ZoneKingside])
	assert.Equal(t, 30, counts[board.ZoneQueenside])
}
