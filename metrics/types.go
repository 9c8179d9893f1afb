// This file declares the metric record shapes, analysis options, and
// sentinel errors.
package metrics

import (
	"errors"

	"github.com/mkaralis/posgraph/graph"
)

// Sentinel errors for analysis configuration.
var (
	// ErrBadExponent indicates a NaN or infinite aggregation exponent.
	ErrBadExponent = errors.New("metrics: exponent must be finite")

	// ErrNilGraph indicates Analyze was handed a nil graph.
	ErrNilGraph = errors.New("metrics: graph is nil")
)

// DefaultExponent is the power-law weighting exponent used when no
// WithExponent option is given.
const DefaultExponent = 2.0

// Pair is an ordered node pair realizing an extremal path length.
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Component is the fixed metric vector of one connected component.
type Component struct {
	Index int `json:"index"`
	Size  int `json:"size"`

	// Fiedler is nil for components below two nodes.
	Fiedler *float64 `json:"fiedler"`

	OutDiameter      int    `json:"out_diameter"`
	InDiameter       int    `json:"in_diameter"`
	OutDiameterPairs []Pair `json:"out_diameter_paths"`
	InDiameterPairs  []Pair `json:"in_diameter_paths"`

	InDegreeAvg  float64 `json:"in_degree_avg"`
	InDegreeVar  float64 `json:"in_degree_var"`
	OutDegreeAvg float64 `json:"out_degree_avg"`
	OutDegreeVar float64 `json:"out_degree_var"`

	Modularity     float64    `json:"modularity"`
	Communities    [][]string `json:"communities"`
	CommunityCount int        `json:"community_count"`
	Clustering     float64    `json:"clustering"`

	Nodes []string `json:"nodes"`
}

// Aggregate is the whole-graph metric record blended across components.
type Aggregate struct {
	// Fiedler is nil when no component defined one.
	Fiedler *float64 `json:"fiedler_value"`

	OutDiameter float64 `json:"out_diameter"`
	InDiameter  float64 `json:"in_diameter"`

	InDegreeAvg  float64 `json:"in_degree_avg"`
	InDegreeVar  float64 `json:"in_degree_var"`
	OutDegreeAvg float64 `json:"out_degree_avg"`
	OutDegreeVar float64 `json:"out_degree_var"`

	Modularity     float64 `json:"modularity"`
	CommunityCount int     `json:"community_count"`
	Clustering     float64 `json:"clustering"`

	SizeEntropy float64 `json:"size_entropy"`
}

// NodeInfo is the raw-graph view of one node.
type NodeInfo struct {
	ID     string             `json:"id"`
	Kind   string             `json:"kind"`
	Square *graph.SquareAttrs `json:"square,omitempty"`
	Pawn   *graph.PawnAttrs   `json:"pawn,omitempty"`
	Zone   *graph.ZoneAttrs   `json:"zone,omitempty"`
}

// EdgeInfo is the raw-graph view of one edge.
type EdgeInfo struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Kind   string  `json:"kind"`
	Weight float64 `json:"weight"`
}

// GraphInfo carries the full node/edge listing of the analyzed graph.
type GraphInfo struct {
	Directed  bool       `json:"directed"`
	NodeCount int        `json:"node_count"`
	EdgeCount int        `json:"edge_count"`
	Nodes     []NodeInfo `json:"nodes"`
	Edges     []EdgeInfo `json:"edges"`
}

// ZoneMetrics is the analysis of one zone's induced subgraph.
type ZoneMetrics struct {
	Zone       string       `json:"zone"`
	Size       int          `json:"size"`
	Aggregate  *Aggregate   `json:"aggregate_level_metrics"`
	Components []*Component `json:"component_level_metrics"`
}

// ZoneReport combines the three per-zone analyses with their blend and
// the partition cross-entropy.
type ZoneReport struct {
	Zones map[string]*ZoneMetrics `json:"zones"`

	// Blended folds the three zone aggregates into one record using
	// zone-node-count power-law weights.
	Blended *Aggregate `json:"aggregated_zone_metrics"`

	// CrossEntropy is the whole-graph component-size entropy plus each
	// zone's internal entropy weighted by its node-count share.
	CrossEntropy float64 `json:"cross_entropy"`
}

// Report is the full four-section analysis of one graph.
type Report struct {
	ComponentCount int                          `json:"component_count"`
	Aggregate      *Aggregate                   `json:"aggregate_level_metrics"`
	Components     []*Component                 `json:"component_level_metrics"`
	Nodes          map[string]*graph.Annotation `json:"node_level_metrics"`
	Graph          *GraphInfo                   `json:"graph_info"`
	ZoneReport     *ZoneReport                  `json:"zone_metrics"`
}

// Options configures an analysis run.
type Options struct {
	exponent float64
	mode     graph.ComponentMode
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: exponent 2, weak
// component decomposition.
func DefaultOptions() Options {
	return Options{exponent: DefaultExponent, mode: graph.Weak}
}

// WithExponent sets the power-law aggregation exponent.
func WithExponent(exp float64) Option {
	return func(o *Options) { o.exponent = exp }
}

// WithComponentMode selects weak or strong connectivity for
// decomposition.
func WithComponentMode(mode graph.ComponentMode) Option {
	return func(o *Options) { o.mode = mode }
}
