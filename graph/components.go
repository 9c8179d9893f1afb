package graph

import (
	"fmt"
	"sort"
)

// ComponentMode selects the connectivity notion used by Decompose.
type ComponentMode uint8

// Component modes. For undirected graphs the two coincide.
const (
	// Weak connects nodes through the undirected collapse of the graph.
	Weak ComponentMode = iota
	// Strong connects nodes mutually reachable along edge directions.
	Strong
)

// String returns the mode name.
func (m ComponentMode) String() string {
	if m == Strong {
		return "strong"
	}

	return "weak"
}

// Decompose splits g into connected components under the given mode and
// returns them as induced subgraphs sharing node records with g.
// Components are ordered by their smallest node ID; node membership within
// a component is sorted.
//
// Weak partitions are verified before returning: an edge between two weak
// components would mean a decomposition bug, surfaced as a wrapped
// ErrPartitionViolated. Strong components legitimately carry one-way edges
// between them (the condensation), so no such check applies.
//
// Complexity: O(V+E) plus the subgraph materialization.
func Decompose(g *Graph, mode ComponentMode) ([]*Graph, error) {
	var groups [][]string
	strong := mode == Strong && g.directed
	if strong {
		groups = stronglyConnected(g)
	} else {
		groups = weaklyConnected(g)
	}

	// Order components by smallest member for stable component indices.
	for _, grp := range groups {
		sort.Strings(grp)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })

	comps := make([]*Graph, len(groups))
	for i, grp := range groups {
		comps[i] = g.InducedSubgraph(grp)
	}
	if !strong {
		if err := VerifyPartition(g, comps); err != nil {
			return nil, err
		}
	}

	return comps, nil
}

// VerifyPartition checks that no edge of g connects two different
// components. A violation is an internal-consistency failure
// (ErrPartitionViolated), not an expected condition.
func VerifyPartition(g *Graph, comps []*Graph) error {
	owner := make(map[string]int, g.NodeCount())
	for idx, comp := range comps {
		for _, id := range comp.NodeIDs() {
			owner[id] = idx
		}
	}
	for _, e := range g.Edges() {
		if owner[e.From] != owner[e.To] {
			return fmt.Errorf("VerifyPartition: edge %s->%s spans components %d and %d: %w",
				e.From, e.To, owner[e.From], owner[e.To], ErrPartitionViolated)
		}
	}

	return nil
}

// weaklyConnected gathers components ignoring edge direction, BFS from
// each unvisited node in ascending ID order.
func weaklyConnected(g *Graph) [][]string {
	seen := make(map[string]struct{}, g.NodeCount())
	var groups [][]string
	for _, seed := range g.NodeIDs() {
		if _, ok := seen[seed]; ok {
			continue
		}
		seen[seed] = struct{}{}
		queue := []string{seed}
		var grp []string
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			grp = append(grp, u)
			for _, v := range g.OutNeighbors(u) {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
			for _, v := range g.InNeighbors(u) {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
		}
		groups = append(groups, grp)
	}

	return groups
}

// stronglyConnected gathers strongly connected components via Tarjan's
// algorithm with sorted neighbor expansion for determinism.
func stronglyConnected(g *Graph) [][]string {
	var (
		index   = make(map[string]int, g.NodeCount())
		lowlink = make(map[string]int, g.NodeCount())
		onStack = make(map[string]bool, g.NodeCount())
		stack   []string
		next    int
		groups  [][]string
	)

	var connect func(u string)
	connect = func(u string) {
		index[u] = next
		lowlink[u] = next
		next++
		stack = append(stack, u)
		onStack[u] = true

		for _, v := range g.OutNeighbors(u) {
			if _, visited := index[v]; !visited {
				connect(v)
				if lowlink[v] < lowlink[u] {
					lowlink[u] = lowlink[v]
				}
			} else if onStack[v] && index[v] < lowlink[u] {
				lowlink[u] = index[v]
			}
		}

		if lowlink[u] == index[u] {
			var grp []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				grp = append(grp, w)
				if w == u {
					break
				}
			}
			groups = append(groups, grp)
		}
	}

	for _, id := range g.NodeIDs() {
		if _, visited := index[id]; !visited {
			connect(id)
		}
	}

	return groups
}
