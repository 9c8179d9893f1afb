// Package graph implements the typed, weighted graph underlying the
// positional analysis engine, together with connected-component
// decomposition.
//
// What:
//
//   - Graph: directed or undirected, with string node IDs, tagged-variant
//     node attributes (square, pawn, zone) and typed, non-negative-weight
//     edges (adjacency, pawn_support, influence, zone).
//   - Decompose: splits a graph into weak (undirected collapse) or strong
//     (Tarjan SCC) connected components and verifies that the partition is
//     edge-disjoint before returning.
//   - Undirected, InducedSubgraph: derived views sharing node records with
//     the source graph, so annotations written through a component remain
//     visible on the parent.
//
// Why:
//   - Every downstream metric (spectra, diameters, cliques, communities)
//     consumes this one representation; deterministic iteration (sorted
//     node and edge orders) is what makes repeated analyses of the same
//     position bit-identical.
//
// Errors:
//
//   - ErrEmptyNodeID         node ID is the empty string
//   - ErrNodeNotFound        an edge endpoint does not exist
//   - ErrBadWeight           negative edge weight
//   - ErrPartitionViolated   internal-consistency failure: an edge crosses
//     component boundaries after decomposition
//
// Complexity: AddNode/AddEdge O(1); NodeIDs/Edges O(n log n) per snapshot;
// Decompose O(V+E).
package graph
