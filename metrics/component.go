package metrics

import (
	"github.com/mkaralis/posgraph/cliques"
	"github.com/mkaralis/posgraph/community"
	"github.com/mkaralis/posgraph/graph"
	"github.com/mkaralis/posgraph/spectral"
)

// ComputeComponent fills the fixed metric vector for one connected
// component. idx is the component's position in the decomposition order
// and is recorded verbatim.
func ComputeComponent(comp *graph.Graph, idx int) *Component {
	c := &Component{
		Index:   idx,
		Size:    comp.NodeCount(),
		Fiedler: spectral.Fiedler(comp),
		Nodes:   comp.NodeIDs(),
	}

	c.OutDiameter, c.OutDiameterPairs = OutDiameterDetails(comp)
	c.InDiameter, c.InDiameterPairs = InDiameterDetails(comp)

	c.InDegreeAvg, c.InDegreeVar = degreeStats(comp, comp.InDegree)
	c.OutDegreeAvg, c.OutDegreeVar = degreeStats(comp, comp.OutDegree)

	// Community and clique metrics are defined from two nodes up.
	if c.Size >= 2 {
		c.Communities = community.Detect(comp)
		c.Modularity = community.Conductance(comp, c.Communities)
		c.CommunityCount = len(c.Communities)
		c.Clustering = cliques.MeanLargestClique(comp)
	}

	return c
}

// degreeStats returns the average and population variance of raw degrees
// over active nodes (degree > 0). Zero-degree nodes count toward
// component size but not toward the distribution.
func degreeStats(g *graph.Graph, degree func(string) int) (avg, variance float64) {
	var degrees []int
	for _, id := range g.NodeIDs() {
		if d := degree(id); d > 0 {
			degrees = append(degrees, d)
		}
	}
	if len(degrees) == 0 {
		return 0, 0
	}

	sum := 0
	for _, d := range degrees {
		sum += d
	}
	avg = float64(sum) / float64(len(degrees))
	for _, d := range degrees {
		dev := float64(d) - avg
		variance += dev * dev
	}
	variance /= float64(len(degrees))

	return avg, variance
}
