// Package cliques enumerates maximal cliques of undirected graphs using
// Bron–Kerbosch with pivoting, and derives the per-node largest-clique
// participation score used as the engine's clustering measure.
//
// Chess-derived components are capped at a few dozen nodes, so the
// worst-case exponential enumeration stays cheap in practice; it is still
// the dominant cost center of a full analysis.
package cliques

import (
	"sort"

	"github.com/mkaralis/posgraph/graph"
)

// MaximalCliques enumerates every maximal clique of g (treated as
// undirected; pass g.Undirected() for directed graphs). Cliques are
// emitted with sorted membership in a deterministic order.
// Complexity: O(3^(n/3)) worst case, Memory O(n) recursion state.
func MaximalCliques(g *graph.Graph) [][]string {
	if g.NodeCount() == 0 {
		return nil
	}
	adj := neighborSets(g)
	var (
		cliques [][]string
		r       []string
	)
	p := g.NodeIDs()
	var x []string
	bronKerbosch(adj, r, p, x, &cliques)

	return cliques
}

// LargestContaining returns, for every node, the size of the largest
// maximal clique it belongs to. Isolated nodes score 1 (their own
// singleton clique).
func LargestContaining(g *graph.Graph) map[string]int {
	best := make(map[string]int, g.NodeCount())
	for _, id := range g.NodeIDs() {
		best[id] = 0
	}
	for _, clique := range MaximalCliques(g) {
		size := len(clique)
		for _, id := range clique {
			if size > best[id] {
				best[id] = size
			}
		}
	}

	return best
}

// MeanLargestClique returns the average of LargestContaining over all
// nodes, or 0 for an empty graph.
func MeanLargestClique(g *graph.Graph) float64 {
	best := LargestContaining(g)
	if len(best) == 0 {
		return 0.0
	}
	sum := 0
	for _, size := range best {
		sum += size
	}

	return float64(sum) / float64(len(best))
}

// bronKerbosch expands clique r with candidates p, excluding x, branching
// only on candidates outside the pivot's neighborhood.
func bronKerbosch(adj map[string]map[string]struct{}, r, p, x []string, out *[][]string) {
	if len(p) == 0 && len(x) == 0 {
		clique := make([]string, len(r))
		copy(clique, r)
		sort.Strings(clique)
		*out = append(*out, clique)

		return
	}

	pivot := choosePivot(adj, p, x)
	for _, v := range p {
		if _, ok := adj[pivot][v]; ok {
			continue // covered by the pivot branch
		}
		nv := adj[v]
		bronKerbosch(adj, append(r, v), intersect(p, nv), intersect(x, nv), out)
		p = remove(p, v)
		x = insertSorted(x, v)
	}
}

// choosePivot picks the candidate from p∪x with the most neighbors in p,
// ties broken lexicographically for determinism.
func choosePivot(adj map[string]map[string]struct{}, p, x []string) string {
	bestID := ""
	bestCount := -1
	consider := func(u string) {
		count := 0
		for _, v := range p {
			if _, ok := adj[u][v]; ok {
				count++
			}
		}
		if count > bestCount || (count == bestCount && u < bestID) {
			bestCount = count
			bestID = u
		}
	}
	for _, u := range p {
		consider(u)
	}
	for _, u := range x {
		consider(u)
	}

	return bestID
}

func neighborSets(g *graph.Graph) map[string]map[string]struct{} {
	adj := make(map[string]map[string]struct{}, g.NodeCount())
	for _, id := range g.NodeIDs() {
		set := make(map[string]struct{})
		for _, v := range g.OutNeighbors(id) {
			if v != id {
				set[v] = struct{}{}
			}
		}
		for _, v := range g.InNeighbors(id) {
			if v != id {
				set[v] = struct{}{}
			}
		}
		adj[id] = set
	}

	return adj
}

func intersect(ids []string, set map[string]struct{}) []string {
	var out []string
	for _, id := range ids {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

func remove(ids []string, v string) []string {
	out := ids[:0:0]
	for _, id := range ids {
		if id != v {
			out = append(out, id)
		}
	}

	return out
}

func insertSorted(ids []string, v string) []string {
	i := sort.SearchStrings(ids, v)
	ids = append(ids, "")
	copy(ids[i+1:], ids[i:])
	ids[i] = v

	return ids
}
