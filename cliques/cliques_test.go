package cliques_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaralis/posgraph/cliques"
	"github.com/mkaralis/posgraph/graph"
)

// triangleWithTail builds a c4-d4-e4 triangle with a pendant f4 off e4.
func triangleWithTail(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range []string{"c4", "d4", "e4", "f4"} {
		require.NoError(t, g.AddNode(&graph.Node{ID: id, Kind: graph.KindSquare, Square: &graph.SquareAttrs{}}))
	}
	for _, pair := range [][2]string{{"c4", "d4"}, {"d4", "e4"}, {"c4", "e4"}, {"e4", "f4"}} {
		require.NoError(t, g.AddEdge(pair[0], pair[1], graph.EdgeAdjacency, 1))
	}

	return g
}

func TestMaximalCliques(t *testing.T) {
	got := cliques.MaximalCliques(triangleWithTail(t))
	assert.ElementsMatch(t, [][]string{{"c4", "d4", "e4"}, {"e4", "f4"}}, got)
}

func TestMaximalCliques_Deterministic(t *testing.T) {
	first := cliques.MaximalCliques(triangleWithTail(t))
	second := cliques.MaximalCliques(triangleWithTail(t))
	assert.Equal(t, first, second)
}

func TestLargestContaining(t *testing.T) {
	best := cliques.LargestContaining(triangleWithTail(t))
	assert.Equal(t, map[string]int{"c4": 3, "d4": 3, "e4": 3, "f4": 2}, best)
}

func TestMeanLargestClique(t *testing.T) {
	// (3 + 3 + 3 + 2) / 4
	assert.InDelta(t, 2.75, cliques.MeanLargestClique(triangleWithTail(t)), 1e-12)
}

func TestMeanLargestClique_Degenerate(t *testing.T) {
	assert.Zero(t, cliques.MeanLargestClique(graph.New()))

	g := graph.New()
	require.NoError(t, g.AddNode(&graph.Node{ID: "a1", Kind: graph.KindSquare, Square: &graph.SquareAttrs{}}))
	// A single isolated node sits in its own singleton clique.
	assert.InDelta(t, 1.0, cliques.MeanLargestClique(g), 1e-12)
}

func TestMaximalCliques_DirectedCollapse(t *testing.T) {
	g := graph.New(graph.WithDirected())
	for _, id := range []string{"a1", "b1"} {
		require.NoError(t, g.AddNode(&graph.Node{ID: id, Kind: graph.KindSquare, Square: &graph.SquareAttrs{}}))
	}
	require.NoError(t, g.AddEdge("a1", "b1", graph.EdgeInfluence, 1))

	// Direction is ignored: a one-way edge still forms a 2-clique.
	got := cliques.MaximalCliques(g)
	assert.Equal(t, [][]string{{"a1", "b1"}}, got)
}
