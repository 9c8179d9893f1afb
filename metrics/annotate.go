package metrics

import "github.com/mkaralis/posgraph/graph"

// Annotate back-writes analysis results onto every node of g: the owning
// component index, raw in/out degrees, the whole-graph degree variances,
// the component-local degree averages with the node's squared deviations,
// and the node's community index in the flattened cross-component
// community list (-1 when unassigned). Re-annotating the same graph
// overwrites the previous pass.
func Annotate(g *graph.Graph, comps []*Component, agg *Aggregate) {
	componentOf := make(map[string]int)
	communityOf := make(map[string]int)
	flat := 0
	for _, c := range comps {
		for _, id := range c.Nodes {
			componentOf[id] = c.Index
		}
		for _, members := range c.Communities {
			for _, id := range members {
				communityOf[id] = flat
			}
			flat++
		}
	}

	for _, n := range g.Nodes() {
		in := g.InDegree(n.ID)
		out := g.OutDegree(n.ID)
		a := &graph.Annotation{
			ComponentID:       componentOf[n.ID],
			CommunityID:       -1,
			InDegree:          in,
			OutDegree:         out,
			InDegreeVariance:  agg.InDegreeVar,
			OutDegreeVariance: agg.OutDegreeVar,
		}
		if id, ok := communityOf[n.ID]; ok {
			a.CommunityID = id
		}
		if c := comps[componentOf[n.ID]]; c != nil {
			a.InDegreeComponentAvg = c.InDegreeAvg
			a.OutDegreeComponentAvg = c.OutDegreeAvg
			inDev := float64(in) - c.InDegreeAvg
			outDev := float64(out) - c.OutDegreeAvg
			a.InDegreeDeviation = inDev * inDev
			a.OutDegreeDeviation = outDev * outDev
		}
		n.Annot = a
	}
}
