// Package posgraph turns chess positions into graphs and graphs into
// numbers: spectral, topological, community and entropy invariants at the
// whole-graph, connected-component and board-zone level.
//
// 🚀 What is posgraph?
//
//	A library (and CLI) that brings together:
//		• Board model: FEN parsing, piece-specific move distances, zones,
//		  pawn-role classification (board/)
//		• Graph builders: full positional graph, per-color and combined
//		  legal-move influence graphs (build/)
//		• Typed graph core: square/pawn/zone nodes, typed weighted edges,
//		  weak/strong component decomposition (graph/)
//		• Spectral tools: weighted Laplacians, symmetrized directed
//		  Laplacian, Jacobi eigensolver, Fiedler values (spectral/)
//		• Community detection: greedy modularity + conductance (community/)
//		• Clique analysis: Bron–Kerbosch maximal cliques (cliques/)
//		• The metric pipeline: per-component vectors, power-law
//		  aggregation, zone aggregation, node annotation (metrics/)
//
// ✨ Why posgraph?
//
//   - Deterministic – identical positions produce bit-identical reports
//   - Explicit nulls – undefined metrics (Fiedler on a singleton) stay
//     null instead of hiding behind sentinel zeros
//   - Pure positional – no material values, only connectivity structure
//
// Quick start:
//
//	report, err := metrics.AnalyzePosition(
//		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
//	if err != nil { ... }
//	fmt.Println(report.Combined.Aggregate.SizeEntropy)
//
// Or from the command line:
//
//	posgraph analyze "<fen>" --exponent 2 --pretty
//	posgraph batch games.fen --parallel 8
package posgraph
