// This file declares the node/edge type system, construction options,
// and sentinel errors.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrEmptyNodeID indicates a node with an empty ID.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a missing node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("graph: negative edge weight")

	// ErrPartitionViolated indicates an edge crossing component boundaries
	// after decomposition. This is an internal-consistency failure, never
	// an expected runtime condition.
	ErrPartitionViolated = errors.New("graph: inter-component edge detected")
)

// NodeKind tags the variant carried by a Node.
type NodeKind uint8

// Node kinds.
const (
	KindSquare NodeKind = iota // a board square
	KindPawn                   // a pawn-structure node attached to a square
	KindZone                   // one of the three fixed board zones
)

// String returns the wire name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindSquare:
		return "square"
	case KindPawn:
		return "pawn"
	default:
		return "zone"
	}
}

// SquareAttrs describes a square node.
type SquareAttrs struct {
	Occupied    bool   `json:"has_piece"`
	PieceSymbol string `json:"piece_symbol,omitempty"`
	PieceColor  string `json:"piece_color,omitempty"`
	PieceType   string `json:"piece_type,omitempty"`
}

// PawnAttrs describes a pawn node.
type PawnAttrs struct {
	Square string   `json:"square"`
	Roles  []string `json:"roles"`
}

// ZoneAttrs describes a zone node.
type ZoneAttrs struct {
	Name string `json:"name"`
}

// Annotation carries the node-level metrics back-written after analysis.
// A graph starts with nil annotations; Annotate fills them in.
type Annotation struct {
	ComponentID           int     `json:"component_id"`
	CommunityID           int     `json:"community_id"`
	InDegree              int     `json:"in_degree_centrality"`
	OutDegree             int     `json:"out_degree_centrality"`
	InDegreeVariance      float64 `json:"in_degree_centrality_variance"`
	OutDegreeVariance     float64 `json:"out_degree_centrality_variance"`
	InDegreeComponentAvg  float64 `json:"in_degree_component_avg"`
	InDegreeDeviation     float64 `json:"in_degree_deviation"`
	OutDegreeComponentAvg float64 `json:"out_degree_component_avg"`
	OutDegreeDeviation    float64 `json:"out_degree_deviation"`
}

// Node is a tagged-variant graph node: exactly the attribute struct matching
// Kind is non-nil. Annot is nil until an analysis back-writes metrics.
type Node struct {
	ID   string
	Kind NodeKind

	Square *SquareAttrs
	Pawn   *PawnAttrs
	Zone   *ZoneAttrs

	Annot *Annotation
}

// EdgeKind tags the provenance of an edge.
type EdgeKind uint8

// Edge kinds.
const (
	EdgeAdjacency   EdgeKind = iota // geometrically adjacent, mutually occupied squares
	EdgePawnSupport                 // pawn node to its diagonal support square
	EdgeInfluence                   // a legal move exists from source to target
	EdgeZone                        // occupied square to its zone node
)

// String returns the wire name of the kind.
func (k EdgeKind) String() string {
	switch k {
	case EdgeAdjacency:
		return "adjacency"
	case EdgePawnSupport:
		return "pawn_support"
	case EdgeInfluence:
		return "influence"
	default:
		return "zone"
	}
}

// Edge is a typed, weighted connection. For undirected graphs From/To keep
// the insertion orientation; traversal treats them symmetrically.
type Edge struct {
	From   string
	To     string
	Kind   EdgeKind
	Weight float64
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected makes the graph directed. The default is undirected.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}
