// Package heterograph is an in-memory library for mutable directed graphs
// whose vertices and edges keep a stable, user-visible identity across
// insertions and deletions, plus a declarative structural pattern matcher
// over tree-shaped hosts.
//
// 🚀 What is heterograph?
//
//	A small, deterministic library that brings together:
//		• Identity-preserving store: persistent integer vertex IDs over a
//		  compacted internal representation that is defragmented on removal
//		• Ordered adjacency: insertion-ordered in/out neighbours with
//		  explicit, anchored reordering
//		• Property maps: lazily-created key/value bags per vertex and edge
//		• Structural operations: induced subgraph copy, subgraph removal,
//		  a read-only gate for safe hand-off
//		• Traversal: generic pre/post-order DFS with inherited and
//		  synthesized values, and maximal-path enumeration
//		• Pattern matching: declarative pattern graphs matched against
//		  tree-shaped hosts with depth windows and validity hooks
//
// ✨ Why choose heterograph?
//
//   - Stable identities – a vertex ID never changes while the vertex lives,
//     no matter how the internal storage is compacted
//   - Explicit errors – sentinel errors per package, branch with errors.Is
//   - Deterministic – ordered adjacency, ordered enumeration, ordered results
//
// Everything is organized under three subpackages:
//
//	core/  — identity-preserving graph store, adjacency, property maps
//	dfs/   — pre/post-order traversal, path enumeration
//	query/ — pattern graph model, matching engine, result sets
//
// Quick ASCII example:
//
//	    0 ──▶ 1 ──▶ 2
//	          │
//	          ▼
//	          3
//
// Concurrency model: single writer, single reader, one call stack at a time.
// The read-only flag is an advisory guard against accidental mutation, not a
// mutual-exclusion primitive; embedders must serialize access externally.
package heterograph
