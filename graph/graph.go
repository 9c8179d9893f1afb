package graph

import (
	"fmt"
	"sort"
)

// Graph is the in-memory typed graph. It is not safe for concurrent
// mutation; the engine allocates one per analysis call (see metrics).
//
// Adding an edge over an existing (from, to) pair replaces its kind and
// weight. Builders rely on this: later edge families override earlier ones
// on the same square pair, matching the construction order of the
// positional graph.
type Graph struct {
	directed bool

	nodes map[string]*Node
	out   map[string]map[string]*Edge // out[from][to]; mirrored for undirected
	in    map[string]map[string]*Edge // in[to][from]; nil for undirected
}

// New creates an empty graph. Undirected by default.
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		out:   make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.in = make(map[string]map[string]*Edge)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddNode inserts or replaces a node. The node record is stored by
// reference; derived views (components, zone subgraphs) share it.
func (g *Graph) AddNode(n *Node) error {
	if n == nil || n.ID == "" {
		return fmt.Errorf("AddNode: %w", ErrEmptyNodeID)
	}
	g.nodes[n.ID] = n

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node record for id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// AddEdge inserts (or replaces) a typed edge. Both endpoints must already
// exist and the weight must be non-negative.
func (g *Graph) AddEdge(from, to string, kind EdgeKind, weight float64) error {
	if !g.HasNode(from) {
		return fmt.Errorf("AddEdge(%s->%s): %q: %w", from, to, from, ErrNodeNotFound)
	}
	if !g.HasNode(to) {
		return fmt.Errorf("AddEdge(%s->%s): %q: %w", from, to, to, ErrNodeNotFound)
	}
	if weight < 0 {
		return fmt.Errorf("AddEdge(%s->%s): weight %v: %w", from, to, weight, ErrBadWeight)
	}

	e := &Edge{From: from, To: to, Kind: kind, Weight: weight}
	g.link(from, to, e)
	if g.directed {
		if g.in[to] == nil {
			g.in[to] = make(map[string]*Edge)
		}
		g.in[to][from] = e
	} else {
		g.link(to, from, e)
	}

	return nil
}

func (g *Graph) link(u, v string, e *Edge) {
	if g.out[u] == nil {
		g.out[u] = make(map[string]*Edge)
	}
	g.out[u][v] = e
}

// RemoveNode deletes a node and all incident edges.
func (g *Graph) RemoveNode(id string) error {
	if !g.HasNode(id) {
		return fmt.Errorf("RemoveNode(%q): %w", id, ErrNodeNotFound)
	}
	for v := range g.out[id] {
		delete(g.out[v], id)
		if g.directed {
			delete(g.in[v], id)
		}
	}
	if g.directed {
		for u := range g.in[id] {
			delete(g.out[u], id)
			delete(g.in[u], id)
		}
		delete(g.in, id)
	}
	delete(g.out, id)
	delete(g.nodes, id)

	return nil
}

// RemoveIsolated deletes every node without incident edges and returns how
// many were removed. Used by the trimmed builder variants.
func (g *Graph) RemoveIsolated() int {
	removed := 0
	for _, id := range g.NodeIDs() {
		if len(g.out[id]) == 0 && (!g.directed || len(g.in[id]) == 0) {
			_ = g.RemoveNode(id) // existence just checked
			removed++
		}
	}

	return removed
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// NodeIDs returns all node IDs in ascending order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Nodes returns all node records ordered by ID.
func (g *Graph) Nodes() []*Node {
	ids := g.NodeIDs()
	nodes := make([]*Node, len(ids))
	for i, id := range ids {
		nodes[i] = g.nodes[id]
	}

	return nodes
}

// EdgeCount returns the number of edges (each undirected edge counted once).
func (g *Graph) EdgeCount() int {
	return len(g.Edges())
}

// Edges returns every edge exactly once, ordered by (From, To).
func (g *Graph) Edges() []*Edge {
	seen := make(map[*Edge]struct{})
	var edges []*Edge
	for _, u := range g.NodeIDs() {
		for _, v := range sortedKeys(g.out[u]) {
			e := g.out[u][v]
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// OutNeighbors returns the successors of id in ascending order.
// For undirected graphs this is the full neighborhood.
func (g *Graph) OutNeighbors(id string) []string {
	return sortedKeys(g.out[id])
}

// InNeighbors returns the predecessors of id in ascending order.
// For undirected graphs this equals OutNeighbors.
func (g *Graph) InNeighbors(id string) []string {
	if !g.directed {
		return sortedKeys(g.out[id])
	}

	return sortedKeys(g.in[id])
}

// OutDegree returns the raw out-degree (total degree when undirected).
func (g *Graph) OutDegree(id string) int {
	return len(g.out[id])
}

// InDegree returns the raw in-degree (total degree when undirected).
func (g *Graph) InDegree(id string) int {
	if !g.directed {
		return len(g.out[id])
	}

	return len(g.in[id])
}

// EdgeWeight returns the weight of the (from, to) edge, if present.
func (g *Graph) EdgeWeight(from, to string) (float64, bool) {
	e, ok := g.out[from][to]
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// InducedSubgraph returns the subgraph over the given node IDs, keeping
// every edge whose endpoints are both included. Node records are shared
// with the receiver; IDs not present are ignored.
func (g *Graph) InducedSubgraph(ids []string) *Graph {
	sub := New()
	sub.directed = g.directed
	if sub.directed {
		sub.in = make(map[string]map[string]*Edge)
	}
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if n, ok := g.nodes[id]; ok {
			keep[id] = struct{}{}
			sub.nodes[id] = n
		}
	}
	for u := range keep {
		for v, e := range g.out[u] {
			if _, ok := keep[v]; !ok {
				continue
			}
			if !g.directed && u > v {
				continue // mirror entry; the (min, max) pass adds it
			}
			sub.link(u, v, e)
			if g.directed {
				if sub.in[v] == nil {
					sub.in[v] = make(map[string]*Edge)
				}
				sub.in[v][u] = e
			} else {
				sub.link(v, u, e)
			}
		}
	}

	return sub
}

// Undirected returns the undirected collapse of the graph. An undirected
// graph is returned as-is; a directed graph yields a new graph sharing
// node records, where antiparallel edge pairs merge into one edge (the
// lexicographically first orientation wins).
func (g *Graph) Undirected() *Graph {
	if !g.directed {
		return g
	}
	u := New()
	for _, n := range g.nodes {
		u.nodes[n.ID] = n
	}
	for _, from := range g.NodeIDs() {
		for _, to := range sortedKeys(g.out[from]) {
			if _, exists := u.out[from][to]; exists {
				continue
			}
			e := g.out[from][to]
			flat := &Edge{From: e.From, To: e.To, Kind: e.Kind, Weight: e.Weight}
			u.link(from, to, flat)
			u.link(to, from, flat)
		}
	}

	return u
}

func sortedKeys(m map[string]*Edge) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
