// Package board provides the chess-side foundation of the positional graph
// engine: immutable position snapshots, square geometry, piece-specific
// distances, zone classification, and pawn-role analysis.
//
// What:
//
//   - Position: a read-only snapshot of a chess position, built from a FEN
//     string. Legal moves are enumerated per color through explicit
//     read-only views (View), never by mutating a shared turn flag.
//   - Coord, ParseSquare, Name: square name ↔ (file, rank) mapping,
//     a1 = (0, 0).
//   - Manhattan, Chebyshev, Euclidean, PieceDistance: board distances;
//     PieceDistance reflects each piece's movement geometry.
//   - Zone, ZoneOf: the three fixed board regions (center, kingside,
//     queenside) used to localize aggregated metrics.
//   - PawnRoles: chess-theoretic pawn classification
//     (isolated, passed, chain_member, backward).
//
// Why:
//   - Every edge-generation rule of the graph builders is a pure function
//     of this package's primitives, which keeps the builders deterministic
//     and testable against a fixed position snapshot.
//
// Errors:
//
//   - ErrBadSquare  square name is not in a1..h8
//   - ErrBadFEN     FEN string could not be parsed
//
// Complexity: all geometry helpers are O(1); PawnRoles scans the 64
// squares, O(1) on a fixed board.
package board
