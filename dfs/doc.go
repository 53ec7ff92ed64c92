// Package dfs implements generic depth-first traversal over any graph that
// exposes ordered outgoing adjacency, including inherited/synthesized value
// threading, multi-root pre-order visiting, and maximal-path enumeration.
//
// What:
//
//   - Traverse: single-root walk with an optional pre-order callback
//     (receives the value inherited from the parent, returns the value
//     passed to the children) and an optional post-order callback (receives
//     each child's synthesized value, returns this vertex's synthesized
//     value). Pure pre-order, pure post-order, and combined modes are all
//     supported; at least one callback is required.
//   - Visit: pre-order walk from several roots, handing each callback the
//     full root-to-vertex path.
//   - Paths: all maximal root-to-leaf paths reachable from the given roots
//     (defaulting to the graph's sources).
//
// Why:
//   - Subgraph removal needs a post-order descendant closure.
//   - The pattern matcher needs depth labeling (pre-order, inherited value)
//     and match synthesis (post-order, synthesized lists), plus the
//     decomposition of pattern graphs into linear paths.
//
// Semantics worth noting:
//
//   - Shared descendants are revisited, once per incoming path: the walk has
//     tree semantics, not visited-set semantics. On a graph with a cycle
//     reachable from the root this never terminates — callers constrained to
//     acyclic inputs set Visitor.Acyclic, which turns a repeated visit into
//     ErrRevisited instead.
//   - Traversal uses an explicit frame stack, so host depth is bounded by
//     heap, not by goroutine stack growth, while pre/post ordering is
//     exactly that of the equivalent recursion.
//
// Errors:
//
//   - ErrGraphNil        graph argument is nil
//   - ErrNoCallback      neither Pre nor Post (or no VisitFunc) was provided
//   - ErrVertexNotFound  a root vertex does not exist
//   - ErrNoRoots         no roots given and the graph has no sources
//   - ErrRevisited       a vertex was reached twice under Visitor.Acyclic
package dfs
