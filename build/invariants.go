package build

import (
	"github.com/mkaralis/posgraph/board"
	"github.com/mkaralis/posgraph/graph"
)

// Invariants is a compact per-color positional fingerprint computed from
// the board and the positional graph, independent of the spectral pipeline.
type Invariants struct {
	// PawnIslandCount is the number of connected pawn groups in the
	// pawn-node subgraph of the positional graph.
	PawnIslandCount int `json:"pawn_island_count"`

	// PassedPawnScore rewards pawns advanced past the midline, scaled by
	// their remaining distance to promotion.
	PassedPawnScore float64 `json:"passed_pawn_score"`

	// SpaceScore sums the color's influence over the four central squares.
	SpaceScore float64 `json:"space_score"`

	// ShieldIndex counts pawns on the three squares directly in front of
	// the king.
	ShieldIndex int `json:"shield_index"`

	// AttackersProximity sums inverse Manhattan distances from enemy
	// pieces to the king.
	AttackersProximity float64 `json:"attackers_proximity"`
}

// Invariants computes the positional fingerprint for color.
func (b *Builder) Invariants(color board.Color) (*Invariants, error) {
	g, err := b.Positional()
	if err != nil {
		return nil, err
	}
	space, err := b.spaceScore(color)
	if err != nil {
		return nil, err
	}
	king := b.kingOrHome(color)

	inv := &Invariants{
		PawnIslandCount:    pawnIslandCount(g),
		PassedPawnScore:    b.passedPawnScore(),
		SpaceScore:         space,
		ShieldIndex:        b.shieldIndex(king, color),
		AttackersProximity: b.attackersProximity(king, color),
	}

	return inv, nil
}

// pawnIslandCount decomposes the pawn-node induced subgraph into weakly
// connected groups. Pawn nodes connect to squares, never to each other,
// so every pawn forms its own island unless a caller has linked them.
func pawnIslandCount(g *graph.Graph) int {
	var pawnIDs []string
	for _, n := range g.Nodes() {
		if n.Kind == graph.KindPawn {
			pawnIDs = append(pawnIDs, n.ID)
		}
	}
	comps, err := graph.Decompose(g.InducedSubgraph(pawnIDs), graph.Weak)
	if err != nil {
		return 0
	}

	return len(comps)
}

// passedPawnScore scores every pawn past the board midline by
// 8 - distance-to-promotion, regardless of color.
func (b *Builder) passedPawnScore() float64 {
	score := 0.0
	for _, c := range board.AllCoords() {
		pi, ok := b.pos.PieceAt(c)
		if !ok || !pi.IsPawn() || c.Rank < 4 {
			continue
		}
		dist := c.Rank
		if pi.Color == board.White {
			dist = 7 - c.Rank
		}
		score += float64(8 - dist)
	}

	return score
}

// spaceScore weighs each central square by the number of the color's legal
// moves targeting it.
func (b *Builder) spaceScore(color board.Color) (float64, error) {
	view, err := b.pos.View(color)
	if err != nil {
		return 0, err
	}
	targets := make(map[string]int)
	for _, m := range view.LegalMoves() {
		targets[m.To.Name()]++
	}
	score := 0.0
	for _, c := range board.AllCoords() {
		if board.ZoneOf(c) != board.ZoneCenter {
			continue
		}
		score += squareWeight(c) * float64(targets[c.Name()])
	}

	return score, nil
}

// shieldIndex counts pawns on the three squares one rank ahead of the
// king, any color: a blocked king is sheltered either way.
func (b *Builder) shieldIndex(king board.Coord, color board.Color) int {
	forward := 1
	if color == board.Black {
		forward = -1
	}
	count := 0
	for _, df := range []int{-1, 0, 1} {
		c := board.Coord{File: king.File + df, Rank: king.Rank + forward}
		if !c.InBounds() {
			continue
		}
		if pi, ok := b.pos.PieceAt(c); ok && pi.IsPawn() {
			count++
		}
	}

	return count
}

// attackersProximity sums 1/(d+0.1) over enemy pieces, d being the
// Manhattan distance to the king.
func (b *Builder) attackersProximity(king board.Coord, color board.Color) float64 {
	proximity := 0.0
	for _, c := range board.AllCoords() {
		pi, ok := b.pos.PieceAt(c)
		if !ok || pi.Color == color {
			continue
		}
		proximity += 1.0 / (float64(board.Manhattan(king, c)) + 0.1)
	}

	return proximity
}

// kingOrHome returns the king's square, or the home square e1/e8 for
// positions missing one.
func (b *Builder) kingOrHome(color board.Color) board.Coord {
	if c, ok := b.pos.KingSquare(color); ok {
		return c
	}
	rank := 0
	if color == board.Black {
		rank = 7
	}

	return board.Coord{File: 4, Rank: rank}
}

// squareWeight gives the chess-theoretic importance of a square: central
// squares 2, board rim 0.5, everything else 1.
func squareWeight(c board.Coord) float64 {
	if (c.File == 3 || c.File == 4) && (c.Rank == 3 || c.Rank == 4) {
		return 2.0
	}
	if c.File == 0 || c.File == 7 || c.Rank == 0 || c.Rank == 7 {
		return 0.5
	}

	return 1.0
}
