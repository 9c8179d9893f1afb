package metrics

import (
	"math"

	"github.com/mkaralis/posgraph/graph"
)

// Analyze runs the full pipeline over one graph: decomposition,
// per-component metric vectors, power-law aggregation, zone-restricted
// aggregation, and node back-annotation. The returned report carries the
// four consumer sections plus the zone report; g itself ends up annotated.
// Complexity: dominated by per-component spectral and clique work,
// O(n³) worst case on the largest component.
func Analyze(g *graph.Graph, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.exponent) || math.IsInf(o.exponent, 0) {
		return nil, ErrBadExponent
	}

	// 1) Split into connected components.
	comps, err := graph.Decompose(g, o.mode)
	if err != nil {
		return nil, err
	}

	// 2) Fixed metric vector per component.
	records := make([]*Component, len(comps))
	for i, comp := range comps {
		records[i] = ComputeComponent(comp, i)
	}

	// 3) Whole-graph blend.
	agg := AggregateComponents(records, o.exponent)

	// 4) Zone-restricted repeat plus cross-entropy.
	zones, err := AnalyzeZones(g, o, agg.SizeEntropy, g.NodeCount())
	if err != nil {
		return nil, err
	}

	// 5) Node back-annotation.
	Annotate(g, records, agg)

	report := &Report{
		ComponentCount: len(records),
		Aggregate:      agg,
		Components:     records,
		Nodes:          annotationMap(g),
		Graph:          Describe(g),
		ZoneReport:     zones,
	}

	return report, nil
}

// Describe captures the raw node/edge listing of g in canonical order.
func Describe(g *graph.Graph) *GraphInfo {
	info := &GraphInfo{
		Directed:  g.Directed(),
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
	}
	for _, n := range g.Nodes() {
		info.Nodes = append(info.Nodes, NodeInfo{
			ID:     n.ID,
			Kind:   n.Kind.String(),
			Square: n.Square,
			Pawn:   n.Pawn,
			Zone:   n.Zone,
		})
	}
	for _, e := range g.Edges() {
		info.Edges = append(info.Edges, EdgeInfo{
			From:   e.From,
			To:     e.To,
			Kind:   e.Kind.String(),
			Weight: e.Weight,
		})
	}

	return info
}

func annotationMap(g *graph.Graph) map[string]*graph.Annotation {
	out := make(map[string]*graph.Annotation, g.NodeCount())
	for _, n := range g.Nodes() {
		out[n.ID] = n.Annot
	}

	return out
}
