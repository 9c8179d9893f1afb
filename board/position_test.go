package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaralis/posgraph/board"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func mustPosition(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.FromFEN(fen)
	require.NoError(t, err)

	return pos
}

func TestFromFEN_Invalid(t *testing.T) {
	for _, fen := range []string{"", "not a fen", "rnbqkbnr/pppppppp w - - 0 1"} {
		_, err := board.FromFEN(fen)
		assert.ErrorIs(t, err, board.ErrBadFEN, fen)
	}
}

func TestPosition_PieceAt(t *testing.T) {
	pos := mustPosition(t, startFEN)

	e1, _ := board.ParseSquare("e1")
	pi, ok := pos.PieceAt(e1)
	require.True(t, ok)
	assert.Equal(t, "K", pi.Symbol)
	assert.Equal(t, board.White, pi.Color)
	assert.Equal(t, "king", pi.TypeName())
	assert.Equal(t, "white", pi.ColorName())

	g7, _ := board.ParseSquare("g7")
	pi, ok = pos.PieceAt(g7)
	require.True(t, ok)
	assert.Equal(t, "p", pi.Symbol)
	assert.True(t, pi.IsPawn())

	e4, _ := board.ParseSquare("e4")
	_, ok = pos.PieceAt(e4)
	assert.False(t, ok)
}

func TestPosition_KingSquare(t *testing.T) {
	pos := mustPosition(t, startFEN)

	white, ok := pos.KingSquare(board.White)
	require.True(t, ok)
	assert.Equal(t, "e1", white.Name())

	black, ok := pos.KingSquare(board.Black)
	require.True(t, ok)
	assert.Equal(t, "e8", black.Name())
}

func TestPosition_LegalMoves_StartCount(t *testing.T) {
	pos := mustPosition(t, startFEN)
	moves := pos.LegalMoves()
	assert.Len(t, moves, 20) // 16 pawn pushes + 4 knight jumps
}

func TestPosition_View_FlipsTurn(t *testing.T) {
	pos := mustPosition(t, startFEN)
	require.Equal(t, board.White, pos.Turn())

	// Same color: the receiver comes back untouched.
	same, err := pos.View(board.White)
	require.NoError(t, err)
	assert.Same(t, pos, same)

	flipped, err := pos.View(board.Black)
	require.NoError(t, err)
	assert.Equal(t, board.Black, flipped.Turn())
	assert.Len(t, flipped.LegalMoves(), 20)

	// The original position is untouched.
	assert.Equal(t, board.White, pos.Turn())
}

func TestPosition_View_ClearsEnPassant(t *testing.T) {
	pos := mustPosition(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	flipped, err := pos.View(board.Black)
	require.NoError(t, err)
	assert.NotContains(t, flipped.FEN(), "d6")
}

func TestPawnRoles(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []board.Role
	}{
		{
			name:   "lone white pawn is isolated and passed and backward",
			fen:    "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1",
			square: "e4",
			want:   []board.Role{board.RoleIsolated, board.RolePassed, board.RoleBackward},
		},
		{
			name:   "chain member",
			fen:    "4k3/8/8/8/4P3/3P4/8/4K3 w - - 0 1",
			square: "e4",
			want:   []board.Role{board.RolePassed, board.RoleChainMember, board.RoleBackward},
		},
		{
			name:   "blocked by enemy pawn ahead",
			fen:    "4k3/8/4p3/8/4P3/3P4/8/4K3 w - - 0 1",
			square: "e4",
			want:   []board.Role{board.RoleChainMember, board.RoleBackward},
		},
		{
			name:   "not a pawn",
			fen:    startFEN,
			square: "e1",
			want:   nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustPosition(t, tc.fen)
			c, err := board.ParseSquare(tc.square)
			require.NoError(t, err)
			assert.Equal(t, tc.want, board.PawnRoles(pos, c))
		})
	}
}

func TestPawnRoles_StartPosition(t *testing.T) {
	pos := mustPosition(t, startFEN)
	e2, _ := board.ParseSquare("e2")
	roles := board.PawnRoles(pos, e2)
	// Flanked on both files, enemy pawn directly ahead, no diagonal support.
	assert.NotContains(t, roles, board.RoleIsolated)
	assert.NotContains(t, roles, board.RolePassed)
	assert.NotContains(t, roles, board.RoleChainMember)
	assert.NotContains(t, roles, board.RoleBackward)
}
