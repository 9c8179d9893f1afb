package build

import (
	"github.com/mkaralis/posgraph/board"
	"github.com/mkaralis/posgraph/graph"
)

// PawnNodePrefix prefixes the owning square name in pawn node IDs.
const PawnNodePrefix = "pawn_"

// Builder constructs analysis graphs from one static position.
type Builder struct {
	pos *board.Position
}

// New returns a Builder over pos.
func New(pos *board.Position) *Builder {
	return &Builder{pos: pos}
}

// Position returns the wrapped position.
func (b *Builder) Position() *board.Position { return b.pos }

// Positional builds the full undirected position graph.
//
// Construction order is fixed: square, pawn and zone nodes first, then
// adjacency, pawn-support, influence and zone edges. Later edge families
// overwrite an earlier edge between the same pair, so the order is part
// of the graph's definition.
// Complexity: O(squares² + moves), Memory O(nodes + edges).
func (b *Builder) Positional() (*graph.Graph, error) {
	g := graph.New()

	// 1) Square nodes for the whole board.
	for _, c := range board.AllCoords() {
		if err := g.AddNode(b.squareNode(c)); err != nil {
			return nil, err
		}
	}

	// 2) One pawn node per pawn, annotated with its structural roles.
	for _, c := range board.AllCoords() {
		pi, ok := b.pos.PieceAt(c)
		if !ok || !pi.IsPawn() {
			continue
		}
		node := &graph.Node{
			ID:   PawnNodePrefix + c.Name(),
			Kind: graph.KindPawn,
			Pawn: &graph.PawnAttrs{Square: c.Name(), Roles: roleNames(b.pos, c)},
		}
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}

	// 3) The three fixed zone nodes.
	for _, z := range board.Zones() {
		node := &graph.Node{
			ID:   string(z),
			Kind: graph.KindZone,
			Zone: &graph.ZoneAttrs{Name: string(z)},
		}
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}

	// 4) Adjacency edges between mutually occupied orthogonal neighbors.
	coords := board.AllCoords()
	for i, a := range coords {
		for _, c := range coords[i+1:] {
			if board.Manhattan(a, c) != 1 {
				continue
			}
			if !b.pos.Occupied(a) || !b.pos.Occupied(c) {
				continue
			}
			if err := g.AddEdge(a.Name(), c.Name(), graph.EdgeAdjacency, 2); err != nil {
				return nil, err
			}
		}
	}

	// 5) Pawn-support edges from each pawn node to its occupied
	//    diagonal-forward squares.
	if err := b.addPawnSupport(g); err != nil {
		return nil, err
	}

	// 6) Influence edges from the legal moves of the side to move.
	for _, m := range b.pos.LegalMoves() {
		w := 1 + board.PieceDistance(m.Symbol, m.From, m.To)
		if err := g.AddEdge(m.From.Name(), m.To.Name(), graph.EdgeInfluence, w); err != nil {
			return nil, err
		}
	}

	// 7) Zone edges from every occupied square to its zone node.
	for _, c := range board.AllCoords() {
		if !b.pos.Occupied(c) {
			continue
		}
		if err := g.AddEdge(c.Name(), string(board.ZoneOf(c)), graph.EdgeZone, 1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// InfluenceSubgraph builds the directed legal-move influence graph of one
// color, containing only the squares that appear in at least one of that
// color's legal moves.
func (b *Builder) InfluenceSubgraph(color board.Color) (*graph.Graph, error) {
	view, err := b.pos.View(color)
	if err != nil {
		return nil, err
	}
	g := graph.New(graph.WithDirected())

	moves := view.LegalMoves()
	for _, m := range moves {
		for _, c := range []board.Coord{m.From, m.To} {
			if !g.HasNode(c.Name()) {
				if err := g.AddNode(b.squareNode(c)); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, m := range moves {
		w := 1 + board.PieceDistance(m.Symbol, m.From, m.To)
		if err := g.AddEdge(m.From.Name(), m.To.Name(), graph.EdgeInfluence, w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// CombinedInfluence builds the directed influence graph for both colors
// over the full board, then drops squares touched by neither color.
func (b *Builder) CombinedInfluence() (*graph.Graph, error) {
	g := graph.New(graph.WithDirected())
	for _, c := range board.AllCoords() {
		if err := g.AddNode(b.squareNode(c)); err != nil {
			return nil, err
		}
	}
	for _, color := range []board.Color{board.White, board.Black} {
		view, err := b.pos.View(color)
		if err != nil {
			return nil, err
		}
		for _, m := range view.LegalMoves() {
			w := 1 + board.PieceDistance(m.Symbol, m.From, m.To)
			if err := g.AddEdge(m.From.Name(), m.To.Name(), graph.EdgeInfluence, w); err != nil {
				return nil, err
			}
		}
	}
	g.RemoveIsolated()

	return g, nil
}

// UnionInfluence merges the two per-color influence subgraphs into one
// directed graph. Unlike CombinedInfluence it never seeds untouched
// squares, so no isolate pass is needed.
func (b *Builder) UnionInfluence() (*graph.Graph, error) {
	g := graph.New(graph.WithDirected())
	for _, color := range []board.Color{board.White, board.Black} {
		sub, err := b.InfluenceSubgraph(color)
		if err != nil {
			return nil, err
		}
		for _, n := range sub.Nodes() {
			if !g.HasNode(n.ID) {
				if err := g.AddNode(n); err != nil {
					return nil, err
				}
			}
		}
		for _, e := range sub.Edges() {
			if err := g.AddEdge(e.From, e.To, e.Kind, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// squareNode builds a square node with its occupancy attributes.
func (b *Builder) squareNode(c board.Coord) *graph.Node {
	attrs := &graph.SquareAttrs{}
	if pi, ok := b.pos.PieceAt(c); ok {
		attrs.Occupied = true
		attrs.PieceSymbol = pi.Symbol
		attrs.PieceColor = pi.ColorName()
		attrs.PieceType = pi.TypeName()
	}

	return &graph.Node{ID: c.Name(), Kind: graph.KindSquare, Square: attrs}
}

// addPawnSupport links each pawn node to the occupied squares on its two
// diagonal-forward files. The pawn's own square is occupied by definition,
// so occupancy of the support square alone decides the edge.
func (b *Builder) addPawnSupport(g *graph.Graph) error {
	for _, c := range board.AllCoords() {
		pi, ok := b.pos.PieceAt(c)
		if !ok || !pi.IsPawn() {
			continue
		}
		forward := 1
		if pi.Color == board.Black {
			forward = -1
		}
		for _, df := range []int{-1, 1} {
			s := board.Coord{File: c.File + df, Rank: c.Rank + forward}
			if !s.InBounds() || !b.pos.Occupied(s) {
				continue
			}
			w := 1 + board.PieceDistance("P", c, s)
			if err := g.AddEdge(PawnNodePrefix+c.Name(), s.Name(), graph.EdgePawnSupport, w); err != nil {
				return err
			}
		}
	}

	return nil
}

// roleNames renders pawn roles as their wire strings.
func roleNames(p *board.Position, c board.Coord) []string {
	roles := board.PawnRoles(p, c)
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}

	return out
}
