// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: Ordered neighbourhood access and the dedicated reordering operation.
// Ownership:
//   - The adjacency sequences are exclusively owned by the Graph. Neighbors
//     returns snapshots; reordering happens only through Reorder, which
//     mutates the stored sequence and is gated by the read-only flag.

package core

import "fmt"

// ReorderOption configures Reorder placement.
type ReorderOption func(*reorderOptions)

type reorderOptions struct {
	before    bool
	anchor    int
	hasAnchor bool
}

// Before places the ordered block before the anchor (or prepends it to the
// whole sequence when no anchor is given). The default is after/append.
func Before() ReorderOption {
	return func(o *reorderOptions) { o.before = true }
}

// WithAnchor places the ordered block immediately after (or, with Before,
// immediately before) the position of neighbour a.
func WithAnchor(a int) ReorderOption {
	return func(o *reorderOptions) {
		o.anchor = a
		o.hasAnchor = true
	}
}

// Neighbors returns a snapshot of the ordered adjacency sequence of v in the
// given direction: its source vertices for In, its target vertices for Out.
// The returned slice is the caller's to keep; mutating it does not affect
// the graph.
//
// Errors:
//   - ErrVertexNotFound if v does not exist.
func (g *Graph) Neighbors(dir Direction, v int) ([]int, error) {
	if err := g.VerifyVertices(v); err != nil {
		return nil, err
	}

	return append([]int(nil), g.adjacency(dir)[v]...), nil
}

// InNeighbors returns a snapshot of the ordered incoming sources of v.
func (g *Graph) InNeighbors(v int) ([]int, error) { return g.Neighbors(In, v) }

// OutNeighbors returns a snapshot of the ordered outgoing targets of v.
func (g *Graph) OutNeighbors(v int) ([]int, error) { return g.Neighbors(Out, v) }

// Reorder rearranges the stored adjacency sequence of v in the given
// direction and returns a snapshot of the result.
//
// The neighbours listed in order are first removed from their current
// positions, then reinserted as one contiguous block, preserving the order
// given:
//
//   - no anchor: appended to the remaining sequence (prepended with Before);
//   - WithAnchor(a): inserted immediately after a's position in the
//     remaining sequence (immediately before it with Before).
//
// An empty order degenerates to a read of the current sequence, but an
// anchor without an order is still rejected.
//
// Errors:
//   - ErrReadOnlyGraph if the graph is read-only.
//   - ErrVertexNotFound if v does not exist.
//   - ErrOrderNotSubset if order lists a non-neighbour or repeats one.
//   - ErrAnchorWithoutOrder if an anchor is given with an empty order.
//   - ErrAnchorNotNeighbor if the anchor is not itself a remaining neighbour.
//
// Complexity: O(d) for degree d.
func (g *Graph) Reorder(dir Direction, v int, order []int, opts ...ReorderOption) ([]int, error) {
	if err := g.mutable(); err != nil {
		return nil, err
	}
	if err := g.VerifyVertices(v); err != nil {
		return nil, err
	}

	var ro reorderOptions
	for _, opt := range opts {
		opt(&ro)
	}

	adj := g.adjacency(dir)
	nb := adj[v]

	if len(order) == 0 {
		if ro.hasAnchor {
			return nil, ErrAnchorWithoutOrder
		}

		return append([]int(nil), nb...), nil
	}

	// The ordered block must be a duplicate-free subset of the neighbours.
	current := make(map[int]struct{}, len(nb))
	for _, x := range nb {
		current[x] = struct{}{}
	}
	for _, x := range order {
		if _, ok := current[x]; !ok {
			return nil, fmt.Errorf("core: order %v for %s[%d]: %w", order, dir, v, ErrOrderNotSubset)
		}
		delete(current, x) // repeat in order is not a subset either
	}

	// Extract the block, keeping the relative order of untouched neighbours.
	rest := make([]int, 0, len(nb))
	block := make(map[int]struct{}, len(order))
	for _, x := range order {
		block[x] = struct{}{}
	}
	for _, x := range nb {
		if _, ok := block[x]; !ok {
			rest = append(rest, x)
		}
	}

	var merged []int
	switch {
	case !ro.hasAnchor && !ro.before:
		merged = append(rest, order...)
	case !ro.hasAnchor:
		merged = append(append([]int(nil), order...), rest...)
	default:
		pos := -1
		for i, x := range rest {
			if x == ro.anchor {
				pos = i
				break
			}
		}
		if pos < 0 {
			return nil, fmt.Errorf("core: anchor %d for %s[%d]: %w", ro.anchor, dir, v, ErrAnchorNotNeighbor)
		}
		if !ro.before {
			pos++
		}
		merged = make([]int, 0, len(nb))
		merged = append(merged, rest[:pos]...)
		merged = append(merged, order...)
		merged = append(merged, rest[pos:]...)
	}

	adj[v] = merged

	return append([]int(nil), merged...), nil
}

// adjacency selects the in or out map.
func (g *Graph) adjacency(dir Direction) map[int][]int {
	if dir == In {
		return g.in
	}

	return g.out
}
