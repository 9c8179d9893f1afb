package community_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaralis/posgraph/community"
	"github.com/mkaralis/posgraph/graph"
)

// twoBlocks builds two triangles joined by a single bridge edge.
func twoBlocks(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range []string{"a1", "a2", "a3", "b1", "b2", "b3"} {
		require.NoError(t, g.AddNode(&graph.Node{ID: id, Kind: graph.KindSquare, Square: &graph.SquareAttrs{}}))
	}
	edges := [][2]string{
		{"a1", "a2"}, {"a2", "a3"}, {"a1", "a3"},
		{"b1", "b2"}, {"b2", "b3"}, {"b1", "b3"},
		{"a3", "b1"}, // bridge
	}
	for _, pair := range edges {
		require.NoError(t, g.AddEdge(pair[0], pair[1], graph.EdgeAdjacency, 1))
	}

	return g
}

func TestDetect_TwoBlocks(t *testing.T) {
	got := community.Detect(twoBlocks(t))
	assert.Equal(t, [][]string{{"a1", "a2", "a3"}, {"b1", "b2", "b3"}}, got)
}

func TestDetect_Degenerate(t *testing.T) {
	assert.Nil(t, community.Detect(graph.New()))

	g := graph.New()
	require.NoError(t, g.AddNode(&graph.Node{ID: "a1", Kind: graph.KindSquare, Square: &graph.SquareAttrs{}}))
	assert.Nil(t, community.Detect(g))
}

func TestDetect_NoEdges(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"a1", "b1"} {
		require.NoError(t, g.AddNode(&graph.Node{ID: id, Kind: graph.KindSquare, Square: &graph.SquareAttrs{}}))
	}
	got := community.Detect(g)
	assert.Equal(t, [][]string{{"a1"}, {"b1"}}, got)
}

func TestDetect_Deterministic(t *testing.T) {
	first := community.Detect(twoBlocks(t))
	second := community.Detect(twoBlocks(t))
	assert.Equal(t, first, second)
}

func TestConductance(t *testing.T) {
	g := twoBlocks(t)
	comms := [][]string{{"a1", "a2", "a3"}, {"b1", "b2", "b3"}}

	// Each block: internal weight 3, boundary weight 1 → 1/(2·3+1) = 1/7.
	assert.InDelta(t, 1.0/7.0, community.Conductance(g, comms), 1e-12)
}

func TestConductance_Empty(t *testing.T) {
	assert.Zero(t, community.Conductance(twoBlocks(t), nil))
}

func TestConductance_SingleCommunity(t *testing.T) {
	g := twoBlocks(t)
	all := [][]string{{"a1", "a2", "a3", "b1", "b2", "b3"}}
	// No boundary edges at all.
	assert.Zero(t, community.Conductance(g, all))
}
