// Package build turns a chess position into the graphs the analysis
// pipeline consumes.
//
// What: Builder wraps a board.Position and exposes four constructions:
//
//   - Positional: the full undirected multigraph-flattened view of the
//     position (64 square nodes, one node per pawn, three zone nodes;
//     adjacency, pawn-support, influence and zone edges).
//   - InfluenceSubgraph: a directed graph of one color's legal-move
//     influence, restricted to the squares involved.
//   - CombinedInfluence: a directed graph seeded with all 64 squares and
//     carrying both colors' influence edges, isolated squares removed.
//   - UnionInfluence: the directed union of the two per-color subgraphs,
//     keeping every involved square.
//
// Why a builder: every construction starts from the same static position
// and the same node-attribute extraction, so one wrapper owning the
// position keeps the edge-generation rules in a single place.
//
// Node IDs are stable strings: square names ("e4"), "pawn_" + square for
// pawn nodes, and the zone name for zone nodes. All iteration inside the
// builder follows board order (a1..h8 rank by rank), so two builds of the
// same position produce identical graphs.
//
// Edge weights: adjacency 2 (1 + unit distance), pawn-support 1 + pawn
// distance to the supported square, influence 1 + piece-specific move
// distance, zone 1.
//
// Errors: constructions return board.ErrBadFEN wrapped from view creation;
// graph-layer errors indicate a builder bug and are propagated unchanged.
package build
