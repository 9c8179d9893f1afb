// Package community partitions graphs into densely connected groups via
// greedy modularity maximization and scores a partition by its mean
// conductance. Both routines treat directed input as undirected: community
// structure in a position graph is about mutual reachability, not edge
// orientation.
//
// What: Detect (agglomerative merging by best modularity gain) and
// Conductance (mean boundary ratio c/(2m+c) over communities).
//
// Why greedy agglomeration: it is parameter-free, deterministic under the
// lexicographic tie-break used here, and accurate enough for graphs whose
// components rarely exceed a few dozen nodes.
package community

import (
	"sort"

	"github.com/mkaralis/posgraph/graph"
)

// Detect partitions g into communities by greedy modularity maximization:
// every node starts in its own community and the pair with the largest
// positive modularity gain is merged until no merge improves modularity.
// Communities come back with sorted membership, ordered by their smallest
// member. Graphs with fewer than two nodes yield no communities.
// Complexity: O(n^2·m) worst case on the small graphs this serves,
// Memory O(n^2).
func Detect(g *graph.Graph) [][]string {
	if g.NodeCount() < 2 {
		return nil
	}
	u := g.Undirected()

	ids := u.NodeIDs()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// Degree and total weight for the modularity gain formula.
	deg := make([]float64, len(ids))
	var twoM float64
	for _, e := range u.Edges() {
		deg[index[e.From]] += e.Weight
		deg[index[e.To]] += e.Weight
		twoM += 2 * e.Weight
	}
	if twoM == 0 {
		// No edges: every node is its own community.
		out := make([][]string, len(ids))
		for i, id := range ids {
			out[i] = []string{id}
		}

		return out
	}

	// comm[i] holds the member ids of community i; nil marks a community
	// absorbed by an earlier merge. weight[i][j] is the total edge weight
	// between communities i and j, degSum[i] the summed node degree.
	comm := make([][]string, len(ids))
	degSum := make([]float64, len(ids))
	weight := make([]map[int]float64, len(ids))
	for i, id := range ids {
		comm[i] = []string{id}
		degSum[i] = deg[i]
		weight[i] = make(map[int]float64)
	}
	for _, e := range u.Edges() {
		i, j := index[e.From], index[e.To]
		if i == j {
			continue
		}
		weight[i][j] += e.Weight
		weight[j][i] += e.Weight
	}

	for {
		bestGain := 0.0
		bestI, bestJ := -1, -1
		for i := range comm {
			if comm[i] == nil {
				continue
			}
			// Deterministic scan order over connected partners.
			partners := make([]int, 0, len(weight[i]))
			for j := range weight[i] {
				partners = append(partners, j)
			}
			sort.Ints(partners)
			for _, j := range partners {
				if j <= i || comm[j] == nil {
					continue
				}
				gain := 2 * (weight[i][j]/twoM - degSum[i]*degSum[j]/(twoM*twoM))
				if gain > bestGain {
					bestGain, bestI, bestJ = gain, i, j
				}
			}
		}
		if bestI < 0 {
			break
		}
		merge(comm, degSum, weight, bestI, bestJ)
	}

	var out [][]string
	for _, members := range comm {
		if members == nil {
			continue
		}
		sorted := make([]string, len(members))
		copy(sorted, members)
		sort.Strings(sorted)
		out = append(out, sorted)
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })

	return out
}

// Conductance returns the mean conductance c/(2m+c) over communities,
// where m is the internal edge weight of a community and c the weight
// crossing its boundary. An empty community list yields 0.
func Conductance(g *graph.Graph, communities [][]string) float64 {
	if len(communities) == 0 {
		return 0.0
	}
	u := g.Undirected()

	member := make(map[string]int, u.NodeCount())
	for ci, ids := range communities {
		for _, id := range ids {
			member[id] = ci
		}
	}

	internal := make([]float64, len(communities))
	boundary := make([]float64, len(communities))
	for _, e := range u.Edges() {
		ci, okFrom := member[e.From]
		cj, okTo := member[e.To]
		switch {
		case okFrom && okTo && ci == cj:
			internal[ci] += e.Weight
		case okFrom && okTo:
			boundary[ci] += e.Weight
			boundary[cj] += e.Weight
		case okFrom:
			boundary[ci] += e.Weight
		case okTo:
			boundary[cj] += e.Weight
		}
	}

	sum := 0.0
	for ci := range communities {
		denom := 2*internal[ci] + boundary[ci]
		if denom > 0 {
			sum += boundary[ci] / denom
		}
	}

	return sum / float64(len(communities))
}

// merge folds community j into community i, rewiring j's inter-community
// weights onto i.
func merge(comm [][]string, degSum []float64, weight []map[int]float64, i, j int) {
	comm[i] = append(comm[i], comm[j]...)
	comm[j] = nil
	degSum[i] += degSum[j]
	degSum[j] = 0
	for k, w := range weight[j] {
		if k == i {
			continue
		}
		weight[i][k] += w
		weight[k][i] += w
		delete(weight[k], j)
	}
	delete(weight[i], j)
	weight[j] = nil
}
