// Package core implements the identity-preserving graph store: a mutable
// directed graph in which every vertex keeps a stable, user-visible integer
// identity for its whole lifetime, independent of the compacted internal
// storage layout.
//
// What:
//
//   - Persistent vertex IDs: allocated from a monotonically increasing
//     counter, never reused after removal within one counter sequence.
//   - Internal indices: dense 0..n-1 storage slots backed by a
//     gonum simple.DirectedGraph; remapped (defragmented) after removals.
//   - Edge identity: the ordered pair (From, To). At most one edge per pair;
//     self-loops are skipped on insert.
//   - Ordered adjacency: insertion-ordered in/out neighbour sequences with
//     an explicit, anchored reordering operation (Reorder).
//   - Property maps: lazily-created key/value bags per vertex, per edge, and
//     for the graph itself; deep-copied on Copy, dropped on removal.
//   - Structural operations: AddVertices/RemoveVertices, AddEdges/RemoveEdges,
//     induced Copy with old→new mapping, RemoveSubgraph (descendant closure),
//     Erase.
//   - Read-only gate: SetReadOnly(true) makes every structural mutation fail
//     with ErrReadOnlyGraph before any side effect.
//
// Why:
//   - Build application graphs whose elements must stay addressable across
//     arbitrary edits (IRs, dataflow graphs, document trees).
//   - Serve as the host and pattern representation for the query package.
//
// Key Types:
//
//   - Graph: the store itself; NewGraph(opts ...GraphOption).
//   - Edge: ordered (From, To) pair of persistent vertex IDs.
//   - Direction: In / Out adjacency selector.
//   - GraphInit, VertexInit, EdgeInit: optional initializer hooks.
//
// Errors:
//
//   - ErrReadOnlyGraph      mutation attempted while the read-only flag is set
//   - ErrVertexNotFound     operation referenced an unknown vertex ID
//   - ErrEdgeNotFound       operation referenced an unknown edge pair
//   - ErrBadVertexCount     AddVertices called with n < 1
//   - ErrNoVerticesGiven    RemoveVertices called with an empty batch
//   - ErrOrderNotSubset     Reorder order is not a subset of the neighbours
//   - ErrAnchorWithoutOrder Reorder anchor supplied without an order
//   - ErrAnchorNotNeighbor  Reorder anchor is not a remaining neighbour
//
// Concurrency: none. The store is single-threaded by design; the read-only
// flag is the sole (advisory) coordination mechanism. Embedders in
// multi-threaded hosts must serialize all operations on a Graph externally,
// since mutations are multi-step, non-atomic sequences.
package core
