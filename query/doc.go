// Package query matches declarative structural patterns against
// tree-shaped host graphs built on the core identity-preserving store.
//
// What:
//
//   - GraphDef: a declarative pattern description — source names, sink
//     names, and an ordered list of vertex/edge construction steps with
//     optional positional/keyword argument labels. Buildable in code or
//     decoded from YAML (DefFromYAML).
//   - Pattern: the pattern graph produced by GraphDef.Build — itself a
//     read-only core.Graph whose vertices carry id/args properties, plus a
//     name → pattern-vertex lookup table.
//   - Match: the engine. It decomposes the pattern into its maximal linear
//     paths, depth-labels the host from the chosen roots (failing with
//     ErrHostNotTree when any vertex is reachable twice), and for each
//     (root × path) pair recursively aligns the path's names against chains
//     of host vertices, subject to depth windows (first-element and
//     every-element) and caller-supplied validity hooks.
//   - ResultSet: ordered matches keyed by pattern names, with a one-shot
//     cursor, positional indexing, live removed/inserted views against the
//     host, and Distinct / Disjoint derived filters.
//
// Matches from different decomposed pattern paths are reported as separate
// bindings and are never merged into one combined binding per root; callers
// that need a cross-path join must compose it externally.
//
// The worst case is exponential in host branching factor per pattern-path
// length; intended hosts are shallow application trees.
//
// Errors:
//
//   - ErrHostNotTree     a chosen root reaches some host vertex twice
//   - ErrBadWindow       a depth window with Min > Max (both bounded)
//   - ErrBadStep         a GraphDef step is neither vertex nor edge shaped
//   - ErrDuplicateArgs   arguments supplied twice for one pattern element
//   - ErrUnknownName     a name absent from the pattern (build, projection)
//   - ErrExhausted       the result-set cursor moved past the last match
//   - ErrStaleResult     a match references a host vertex that was removed
//   - ErrNoOverlapFunc   Disjoint called without an overlap predicate
package query
