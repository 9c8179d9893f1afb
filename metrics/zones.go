package metrics

import (
	"math"

	"github.com/mkaralis/posgraph/board"
	"github.com/mkaralis/posgraph/graph"
)

// ZoneSubgraph induces the subgraph of g belonging to zone: square nodes
// whose coordinate classifies into the zone, and pawn nodes whose owning
// square does. Zone nodes themselves are never included.
func ZoneSubgraph(g *graph.Graph, zone board.Zone) *graph.Graph {
	var ids []string
	for _, n := range g.Nodes() {
		var square string
		switch n.Kind {
		case graph.KindSquare:
			square = n.ID
		case graph.KindPawn:
			square = n.Pawn.Square
		default:
			continue
		}
		c, err := board.ParseSquare(square)
		if err != nil {
			continue
		}
		if board.ZoneOf(c) == zone {
			ids = append(ids, n.ID)
		}
	}

	return g.InducedSubgraph(ids)
}

// AnalyzeZones runs the decompose-and-aggregate pipeline inside each
// zone's induced subgraph, blends the three zone aggregates by zone node
// count, and folds the whole-graph component entropy with the zones'
// internal entropies into a cross-entropy. overallEntropy is the
// component-size entropy of the full graph; totalNodes its node count.
func AnalyzeZones(g *graph.Graph, o Options, overallEntropy float64, totalNodes int) (*ZoneReport, error) {
	report := &ZoneReport{Zones: make(map[string]*ZoneMetrics, 3)}

	var (
		aggs  []*Aggregate
		sizes []int
	)
	for _, zone := range board.Zones() {
		sub := ZoneSubgraph(g, zone)
		comps, err := graph.Decompose(sub, o.mode)
		if err != nil {
			return nil, err
		}
		records := make([]*Component, len(comps))
		for i, comp := range comps {
			records[i] = ComputeComponent(comp, i)
		}
		zm := &ZoneMetrics{
			Zone:       string(zone),
			Size:       sub.NodeCount(),
			Aggregate:  AggregateComponents(records, o.exponent),
			Components: records,
		}
		report.Zones[string(zone)] = zm
		aggs = append(aggs, zm.Aggregate)
		sizes = append(sizes, zm.Size)
	}

	report.Blended = blendAggregates(aggs, sizes, o.exponent)

	report.CrossEntropy = overallEntropy
	if totalNodes > 0 {
		for i, agg := range aggs {
			share := float64(sizes[i]) / float64(totalNodes)
			report.CrossEntropy += share * agg.SizeEntropy
		}
	}

	return report, nil
}

// blendAggregates folds several aggregate records into one using
// size^exponent weights. Empty units are skipped entirely so they cannot
// claim weight at exponent 0.
func blendAggregates(aggs []*Aggregate, sizes []int, exponent float64) *Aggregate {
	out := &Aggregate{}

	total := 0.0
	for i, agg := range aggs {
		if agg == nil || sizes[i] == 0 {
			continue
		}
		total += math.Pow(float64(sizes[i]), exponent)
	}
	if total == 0 {
		return out
	}

	fiedler := 0.0
	fiedlerDefined := false
	for i, agg := range aggs {
		if agg == nil || sizes[i] == 0 {
			continue
		}
		w := math.Pow(float64(sizes[i]), exponent) / total
		if agg.Fiedler != nil {
			fiedler += w * *agg.Fiedler
			fiedlerDefined = true
		}
		out.OutDiameter += w * agg.OutDiameter
		out.InDiameter += w * agg.InDiameter
		out.InDegreeAvg += w * agg.InDegreeAvg
		out.InDegreeVar += w * agg.InDegreeVar
		out.OutDegreeAvg += w * agg.OutDegreeAvg
		out.OutDegreeVar += w * agg.OutDegreeVar
		out.Modularity += w * agg.Modularity
		out.Clustering += w * agg.Clustering
		out.SizeEntropy += w * agg.SizeEntropy
		out.CommunityCount += agg.CommunityCount
	}
	if fiedlerDefined {
		out.Fiedler = &fiedler
	}

	return out
}
