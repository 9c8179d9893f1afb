package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// ErrBadFEN indicates an unparseable FEN string.
var ErrBadFEN = errors.New("board: bad FEN")

// Color identifies a side to move. Alias of the engine color.
type Color = chess.Color

// Side constants re-exported for callers that do not import the engine.
const (
	White = chess.White
	Black = chess.Black
)

// Position is an immutable snapshot of a chess position. All accessors are
// read-only; per-color move enumeration goes through View, which builds a
// fresh snapshot instead of toggling a shared turn flag.
type Position struct {
	pos *chess.Position
}

// FromFEN parses a FEN string into a Position.
func FromFEN(fen string) (*Position, error) {
	pos := &chess.Position{}
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		return nil, fmt.Errorf("FromFEN(%q): %w", fen, ErrBadFEN)
	}

	return &Position{pos: pos}, nil
}

// FEN returns the canonical FEN string of the snapshot.
func (p *Position) FEN() string {
	return p.pos.String()
}

// Turn returns the side to move in this snapshot.
func (p *Position) Turn() Color {
	return p.pos.Turn()
}

// PieceInfo describes the piece occupying a square.
type PieceInfo struct {
	// Symbol is the FEN letter: uppercase for White (e.g. "N"),
	// lowercase for Black (e.g. "p").
	Symbol string

	// Color is the owning side.
	Color Color
}

// ColorName returns "white" or "black".
func (pi PieceInfo) ColorName() string {
	if pi.Color == White {
		return "white"
	}

	return "black"
}

// TypeName returns the spelled-out piece type, e.g. "knight".
func (pi PieceInfo) TypeName() string {
	if pi.Symbol == "" {
		return ""
	}
	switch upper(pi.Symbol[0]) {
	case 'K':
		return "king"
	case 'Q':
		return "queen"
	case 'R':
		return "rook"
	case 'B':
		return "bishop"
	case 'N':
		return "knight"
	default:
		return "pawn"
	}
}

// IsPawn reports whether the piece is a pawn.
func (pi PieceInfo) IsPawn() bool {
	return pi.Symbol == "P" || pi.Symbol == "p"
}

// PieceAt returns the piece on c, if any.
func (p *Position) PieceAt(c Coord) (PieceInfo, bool) {
	piece := p.pos.Board().Piece(squareOf(c))
	if piece == chess.NoPiece {
		return PieceInfo{}, false
	}

	return PieceInfo{Symbol: symbolOf(piece), Color: piece.Color()}, true
}

// Occupied reports whether c holds a piece.
func (p *Position) Occupied(c Coord) bool {
	_, ok := p.PieceAt(c)

	return ok
}

// KingSquare returns the king square of the given color, or ok=false on a
// (degenerate) kingless board.
func (p *Position) KingSquare(color Color) (Coord, bool) {
	for _, c := range AllCoords() {
		pi, ok := p.PieceAt(c)
		if ok && upper(pi.Symbol[0]) == 'K' && pi.Color == color {
			return c, true
		}
	}

	return Coord{}, false
}

// Move is a legal move of the snapshot's side to move.
type Move struct {
	From   Coord
	To     Coord
	Symbol string // FEN symbol of the moving piece
}

// LegalMoves enumerates the legal moves of the side to move. The order is
// the engine's deterministic generation order.
func (p *Position) LegalMoves() []Move {
	valid := p.pos.ValidMoves()
	moves := make([]Move, 0, len(valid))
	var pi PieceInfo
	var ok bool
	for _, m := range valid {
		from := coordOf(m.S1())
		if pi, ok = p.PieceAt(from); !ok {
			continue // S1 always holds the mover; skip if the engine disagrees
		}
		moves = append(moves, Move{From: from, To: coordOf(m.S2()), Symbol: pi.Symbol})
	}

	return moves
}

// View returns a read-only snapshot identical to p except that color is to
// move. En-passant rights are cleared when the turn flips, since they
// belong to the displaced mover. The receiver is never mutated.
func (p *Position) View(color Color) (*Position, error) {
	if p.Turn() == color {
		return p, nil
	}
	fields := strings.Fields(p.FEN())
	if len(fields) != 6 {
		return nil, fmt.Errorf("View: %w", ErrBadFEN)
	}
	if color == White {
		fields[1] = "w"
	} else {
		fields[1] = "b"
	}
	fields[3] = "-"

	return FromFEN(strings.Join(fields, " "))
}

// squareOf converts a Coord to the engine square index.
func squareOf(c Coord) chess.Square {
	return chess.Square(c.Rank*8 + c.File)
}

// coordOf converts an engine square index to a Coord.
func coordOf(sq chess.Square) Coord {
	return Coord{File: int(sq) % 8, Rank: int(sq) / 8}
}

// symbolOf maps an engine piece to its FEN letter.
func symbolOf(piece chess.Piece) string {
	var letter byte
	switch piece.Type() {
	case chess.King:
		letter = 'K'
	case chess.Queen:
		letter = 'Q'
	case chess.Rook:
		letter = 'R'
	case chess.Bishop:
		letter = 'B'
	case chess.Knight:
		letter = 'N'
	default:
		letter = 'P'
	}
	if piece.Color() == chess.Black {
		letter = letter - 'A' + 'a'
	}

	return string(letter)
}
