package metrics_test

import (
	"fmt"

	"github.com/mkaralis/posgraph/graph"
	"github.com/mkaralis/posgraph/metrics"
)

func ExampleAnalyze() {
	g := graph.New(graph.WithDirected())
	for _, id := range []string{"d4", "e4", "a1", "a2"} {
		_ = g.AddNode(&graph.Node{ID: id, Kind: graph.KindSquare, Square: &graph.SquareAttrs{}})
	}
	_ = g.AddEdge("d4", "e4", graph.EdgeInfluence, 1)
	_ = g.AddEdge("e4", "d4", graph.EdgeInfluence, 1)
	_ = g.AddEdge("a1", "a2", graph.EdgeInfluence, 1)

	report, err := metrics.Analyze(g)
	if err != nil {
		fmt.Println("analyze:", err)
		return
	}

	fmt.Println("components:", report.ComponentCount)
	fmt.Printf("size entropy: %.4f\n", report.Aggregate.SizeEntropy)
	fmt.Println("communities:", report.Aggregate.CommunityCount)
	// Output:
	// components: 2
	// size entropy: 0.6931
	// communities: 2
}

func ExampleAnalyzePosition() {
	report, err := metrics.AnalyzePosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		fmt.Println("analyze:", err)
		return
	}

	fmt.Println("white graph nodes:", report.White.Graph.NodeCount)
	fmt.Println("combined graph nodes:", report.Combined.Graph.NodeCount)
	// Output:
	// white graph nodes: 26
	// combined graph nodes: 52
}
