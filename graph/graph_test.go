package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaralis/posgraph/graph"
)

func squareNode(id string) *graph.Node {
	return &graph.Node{ID: id, Kind: graph.KindSquare, Square: &graph.SquareAttrs{}}
}

func addSquares(t *testing.T, g *graph.Graph, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.AddNode(squareNode(id)))
	}
}

func TestGraph_AddNode(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(squareNode("a1")))
	assert.True(t, g.HasNode("a1"))
	assert.Equal(t, 1, g.NodeCount())

	err := g.AddNode(&graph.Node{ID: ""})
	assert.ErrorIs(t, err, graph.ErrEmptyNodeID)

	// Re-adding replaces, count stays.
	require.NoError(t, g.AddNode(squareNode("a1")))
	assert.Equal(t, 1, g.NodeCount())
}

func TestGraph_AddEdge_Errors(t *testing.T) {
	g := graph.New()
	addSquares(t, g, "a1", "b1")

	assert.ErrorIs(t, g.AddEdge("a1", "zz", graph.EdgeAdjacency, 1), graph.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge("zz", "a1", graph.EdgeAdjacency, 1), graph.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge("a1", "b1", graph.EdgeAdjacency, -1), graph.ErrBadWeight)
}

func TestGraph_AddEdge_Replaces(t *testing.T) {
	g := graph.New()
	addSquares(t, g, "a1", "b1")

	require.NoError(t, g.AddEdge("a1", "b1", graph.EdgeAdjacency, 2))
	require.NoError(t, g.AddEdge("a1", "b1", graph.EdgeInfluence, 5))

	assert.Equal(t, 1, g.EdgeCount())
	w, ok := g.EdgeWeight("a1", "b1")
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
	// Undirected: the mirror sees the replacement too.
	w, ok = g.EdgeWeight("b1", "a1")
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
}

func TestGraph_DirectedDegrees(t *testing.T) {
	g := graph.New(graph.WithDirected())
	addSquares(t, g, "a1", "b1", "c1")
	require.NoError(t, g.AddEdge("a1", "b1", graph.EdgeInfluence, 1))
	require.NoError(t, g.AddEdge("c1", "b1", graph.EdgeInfluence, 1))

	assert.Equal(t, 1, g.OutDegree("a1"))
	assert.Equal(t, 0, g.InDegree("a1"))
	assert.Equal(t, 2, g.InDegree("b1"))
	assert.Equal(t, []string{"a1", "c1"}, g.InNeighbors("b1"))
	assert.Empty(t, g.OutNeighbors("b1"))
}

func TestGraph_NodeIDs_Sorted(t *testing.T) {
	g := graph.New()
	addSquares(t, g, "c3", "a1", "b2")
	assert.Equal(t, []string{"a1", "b2", "c3"}, g.NodeIDs())
}

func TestGraph_Edges_Canonical(t *testing.T) {
	g := graph.New(graph.WithDirected())
	addSquares(t, g, "a1", "b1", "c1")
	require.NoError(t, g.AddEdge("c1", "a1", graph.EdgeInfluence, 1))
	require.NoError(t, g.AddEdge("a1", "b1", graph.EdgeInfluence, 1))

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "a1", edges[0].From)
	assert.Equal(t, "c1", edges[1].From)
}

func TestGraph_RemoveIsolated(t *testing.T) {
	g := graph.New(graph.WithDirected())
	addSquares(t, g, "a1", "b1", "c1", "d1")
	require.NoError(t, g.AddEdge("a1", "b1", graph.EdgeInfluence, 1))

	removed := g.RemoveIsolated()
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"a1", "b1"}, g.NodeIDs())
}

func TestGraph_InducedSubgraph_SharesNodes(t *testing.T) {
	g := graph.New()
	addSquares(t, g, "a1", "b1", "c1")
	require.NoError(t, g.AddEdge("a1", "b1", graph.EdgeAdjacency, 2))
	require.NoError(t, g.AddEdge("b1", "c1", graph.EdgeAdjacency, 2))

	sub := g.InducedSubgraph([]string{"a1", "b1"})
	assert.Equal(t, 2, sub.NodeCount())
	assert.Equal(t, 1, sub.EdgeCount())

	// Node records are shared: annotating the subgraph annotates the parent.
	n, ok := sub.Node("a1")
	require.True(t, ok)
	n.Annot = &graph.Annotation{ComponentID: 7}
	parent, _ := g.Node("a1")
	assert.Equal(t, 7, parent.Annot.ComponentID)
}

func TestGraph_Undirected_CollapsesAntiparallel(t *testing.T) {
	g := graph.New(graph.WithDirected())
	addSquares(t, g, "a1", "b1")
	require.NoError(t, g.AddEdge("a1", "b1", graph.EdgeInfluence, 3))
	require.NoError(t, g.AddEdge("b1", "a1", graph.EdgeInfluence, 4))

	u := g.Undirected()
	assert.False(t, u.Directed())
	assert.Equal(t, 1, u.EdgeCount())

	// Already-undirected graphs come back as-is.
	assert.Same(t, u, u.Undirected())
}
