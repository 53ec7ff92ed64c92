// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: Edge lifecycle — cross-product insertion, removal, existence checks,
//       deterministic enumeration.
// Invariants:
//   - At most one edge per ordered (From, To) pair; duplicates are skipped.
//   - Self-loops are skipped, never stored.
//   - For every stored edge (s, t): t appears in out[s] and s in in[t];
//     removal drops both entries together.

package core

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
)

// AddEdges inserts the cross-product of sources × targets and returns the
// edges that were genuinely added, in insertion order. Self-loops and pairs
// that already exist are skipped silently (use property maps to model edge
// multiplicity or weights). Each new edge is appended to the ordered in/out
// adjacency of its endpoints and then passed to the EdgeInit hook.
//
// Errors:
//   - ErrReadOnlyGraph if the graph is read-only.
//   - ErrVertexNotFound (naming the ID) if an endpoint does not exist.
//   - any error returned by the EdgeInit hook (insertion stops there).
//
// Complexity: O(|sources| × |targets|).
func (g *Graph) AddEdges(sources, targets []int) ([]Edge, error) {
	if err := g.mutable(); err != nil {
		return nil, err
	}

	var added []Edge
	for _, s := range sources {
		for _, t := range targets {
			if err := g.VerifyVertices(s, t); err != nil {
				return nil, err
			}
			if s == t {
				continue // self-loops are not representable
			}

			is, it := g.toInternal[s], g.toInternal[t]
			if g.store.HasEdgeFromTo(is, it) {
				continue // duplicate pair
			}
			g.store.SetEdge(simple.Edge{F: simple.Node(is), T: simple.Node(it)})

			g.in[t] = append(g.in[t], s)
			g.out[s] = append(g.out[s], t)
			g.numEdges++

			e := Edge{From: s, To: t}
			added = append(added, e)

			if g.einit != nil {
				if err := g.einit(g, e); err != nil {
					return added, fmt.Errorf("core: edge init for (%d,%d): %w", s, t, err)
				}
			}
		}
	}

	return added, nil
}

// AddEdge inserts a single (s, t) edge. The returned slice is empty when the
// pair was a self-loop or already present.
func (g *Graph) AddEdge(s, t int) ([]Edge, error) {
	return g.AddEdges([]int{s}, []int{t})
}

// RemoveEdges removes the given edges from storage and from both ordered
// adjacency sequences, and drops their property entries.
//
// When verify is true, a missing edge fails the batch at that point; when
// false, missing edges are silently skipped.
//
// Errors:
//   - ErrReadOnlyGraph if the graph is read-only.
//   - ErrEdgeNotFound (naming the pair) if verify is true and an edge is missing.
//
// Complexity: O(|es| × max degree).
func (g *Graph) RemoveEdges(es []Edge, verify bool) error {
	if err := g.mutable(); err != nil {
		return err
	}

	for _, e := range es {
		if !g.HasEdge(e) {
			if verify {
				return fmt.Errorf("core: edge (%d,%d): %w", e.From, e.To, ErrEdgeNotFound)
			}
			continue
		}

		g.store.RemoveEdge(g.toInternal[e.From], g.toInternal[e.To])
		g.in[e.To] = removeFirst(g.in[e.To], e.From)
		g.out[e.From] = removeFirst(g.out[e.From], e.To)
		g.numEdges--

		g.props.dropEdge(e)
	}

	return nil
}

// RemoveEdge removes a single edge, verifying it exists.
func (g *Graph) RemoveEdge(e Edge) error {
	return g.RemoveEdges([]Edge{e}, true)
}

// HasEdge reports whether the ordered pair e is present in the graph.
func (g *Graph) HasEdge(e Edge) bool {
	is, ok := g.toInternal[e.From]
	if !ok {
		return false
	}
	it, ok := g.toInternal[e.To]
	if !ok {
		return false
	}

	return g.store.HasEdgeFromTo(is, it)
}

// HasEdges reports whether every given edge is present.
func (g *Graph) HasEdges(es ...Edge) bool {
	for _, e := range es {
		if !g.HasEdge(e) {
			return false
		}
	}

	return true
}

// VerifyEdges returns ErrEdgeNotFound naming the first missing pair, or nil
// when every given edge is present.
func (g *Graph) VerifyEdges(es ...Edge) error {
	for _, e := range es {
		if !g.HasEdge(e) {
			return fmt.Errorf("core: edge (%d,%d): %w", e.From, e.To, ErrEdgeNotFound)
		}
	}

	return nil
}

// NumEdges returns the number of edges currently in the graph.
func (g *Graph) NumEdges() int { return g.numEdges }

// Edges enumerates all edges deterministically: vertices in ascending
// persistent-ID order, each vertex's outgoing targets in adjacency order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.numEdges)
	for _, v := range g.Vertices() {
		for _, t := range g.out[v] {
			out = append(out, Edge{From: v, To: t})
		}
	}

	return out
}
