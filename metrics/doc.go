// Package metrics computes the hierarchical invariant stack over position
// graphs: per-component metric records, power-law-blended whole-graph
// aggregates, zone-restricted aggregates with a combined cross-entropy,
// and node-level back-annotation.
//
// What: Analyze is the main entry point. It decomposes a graph into
// connected components, computes a fixed metric vector per component
// (Fiedler value, directed diameters with extremal pairs, degree
// statistics, community modularity, clique-participation clustering),
// blends the vectors into one aggregate using size^exponent weighting,
// repeats the procedure inside each board zone, and writes per-node
// results back onto the graph. AnalyzePosition runs the whole pipeline
// for the combined, white and black influence graphs of one FEN;
// AnalyzeBatch fans AnalyzePosition out over many FENs.
//
// Why power-law blending: larger components should dominate a positional
// assessment more than linearly. At the default exponent 2 a component
// twice the size of another contributes four times the weight; exponent 0
// degenerates to a plain mean.
//
// Nullability: a Fiedler value is undefined below two nodes and stays an
// explicit null (nil pointer, JSON null) rather than a sentinel zero.
// Every other metric has a defined zero for degenerate inputs.
//
// Determinism: identical input graphs produce bit-identical reports.
// Component, community, pair and node orderings are all canonical.
//
// Errors: Analyze surfaces graph.ErrPartitionViolated from decomposition
// and ErrBadExponent for non-finite exponents. AnalyzePosition wraps
// board.ErrBadFEN.
package metrics
