package metrics

import (
	"sort"

	"github.com/mkaralis/posgraph/graph"
)

// OutDiameter returns the maximum forward BFS hop distance between any
// ordered node pair, ignoring edge weights. Graphs below two nodes have
// diameter 0.
// Complexity: O(n·(n+m)), Memory O(n).
func OutDiameter(g *graph.Graph) int {
	d, _ := diameter(g, g.OutNeighbors, false)

	return d
}

// InDiameter is OutDiameter against edge direction.
func InDiameter(g *graph.Graph) int {
	d, _ := diameter(g, g.InNeighbors, true)

	return d
}

// OutDiameterDetails returns the out-diameter together with every node
// pair (source, target) realizing it, in lexicographic order.
func OutDiameterDetails(g *graph.Graph) (int, []Pair) {
	return diameter(g, g.OutNeighbors, false)
}

// InDiameterDetails returns the in-diameter together with every realizing
// pair, oriented source→target like the out variant.
func InDiameterDetails(g *graph.Graph) (int, []Pair) {
	return diameter(g, g.InNeighbors, true)
}

// diameter runs a BFS from every node along next and reports the largest
// finite distance plus the extremal pairs. reversed flips the reported
// pair orientation (an in-BFS walks targets back to sources).
func diameter(g *graph.Graph, next func(string) []string, reversed bool) (int, []Pair) {
	if g.NodeCount() <= 1 {
		return 0, nil
	}

	ids := g.NodeIDs()
	maxDist := 0
	var pairs []Pair
	for _, root := range ids {
		dist := bfs(root, next)
		for _, id := range sortedDistKeys(dist) {
			d := dist[id]
			if d < maxDist {
				continue
			}
			p := Pair{From: root, To: id}
			if reversed {
				p = Pair{From: id, To: root}
			}
			if d > maxDist {
				maxDist = d
				pairs = pairs[:0]
			}
			pairs = append(pairs, p)
		}
	}
	if maxDist == 0 {
		return 0, nil
	}

	return maxDist, pairs
}

// bfs returns hop distances from root along next, excluding root itself.
func bfs(root string, next func(string) []string) map[string]int {
	dist := map[string]int{root: 0}
	queue := []string{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range next(u) {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	delete(dist, root)

	return dist
}

func sortedDistKeys(dist map[string]int) []string {
	keys := make([]string, 0, len(dist))
	for id := range dist {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	return keys
}
