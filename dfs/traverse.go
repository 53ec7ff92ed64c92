package dfs

import "fmt"

// frame is one live vertex on the explicit traversal stack.
type frame[I, S any] struct {
	v         int
	inherited I     // value the children inherit (post-Pre)
	neighbors []int // ordered outgoing adjacency, fetched once
	next      int   // index of the next unexplored neighbor
	synth     []S   // children's synthesized values, in adjacency order
}

// Traverse walks the subgraph reachable from root by outgoing edges, calling
// vis.Pre on first visit and vis.Post after all children, and returns the
// root's synthesized value.
//
// The walk has tree semantics: a vertex reachable along k distinct paths is
// visited k times (each visit synthesizing independently), unless
// vis.Acyclic is set, in which case the second visit fails with ErrRevisited.
// An explicit frame stack replaces call-stack recursion; pre/post ordering
// is identical to the recursive formulation.
//
// Errors:
//   - ErrGraphNil, ErrNoCallback, ErrVertexNotFound (naming the root)
//   - ErrRevisited under vis.Acyclic
//   - any error returned by vis.Pre or vis.Post, wrapped with the vertex
//
// Complexity: O(V'+E') over the visited multiset; memory O(depth).
func Traverse[I, S any](g Graph, root int, vis Visitor[I, S]) (S, error) {
	var zero S
	if g == nil {
		return zero, ErrGraphNil
	}
	if vis.Pre == nil && vis.Post == nil {
		return zero, ErrNoCallback
	}
	if !g.HasVertex(root) {
		return zero, fmt.Errorf("dfs: root %d: %w", root, ErrVertexNotFound)
	}

	var seen map[int]struct{}
	if vis.Acyclic {
		seen = make(map[int]struct{})
	}

	// push runs the pre-order half of a visit and opens a frame for it.
	push := func(v int, inherited I) (*frame[I, S], error) {
		if seen != nil {
			if _, dup := seen[v]; dup {
				return nil, fmt.Errorf("dfs: vertex %d: %w", v, ErrRevisited)
			}
			seen[v] = struct{}{}
		}
		if vis.Pre != nil {
			next, err := vis.Pre(g, v, inherited)
			if err != nil {
				return nil, fmt.Errorf("dfs: pre-order at %d: %w", v, err)
			}
			inherited = next
		}
		nbs, err := g.OutNeighbors(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %d: %w", v, err)
		}

		return &frame[I, S]{v: v, inherited: inherited, neighbors: nbs}, nil
	}

	top, err := push(root, vis.Inherited)
	if err != nil {
		return zero, err
	}
	stack := []*frame[I, S]{top}

	var result S
	for len(stack) > 0 {
		f := stack[len(stack)-1]

		if f.next < len(f.neighbors) {
			child := f.neighbors[f.next]
			f.next++
			nf, err := push(child, f.inherited)
			if err != nil {
				return zero, err
			}
			stack = append(stack, nf)
			continue
		}

		// All children explored: run the post-order half and hand the
		// synthesized value to the parent frame (or out, at the root).
		var s S
		if vis.Post != nil {
			s, err = vis.Post(g, f.v, f.synth)
			if err != nil {
				return zero, fmt.Errorf("dfs: post-order at %d: %w", f.v, err)
			}
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			result = s
		} else {
			parent := stack[len(stack)-1]
			parent.synth = append(parent.synth, s)
		}
	}

	return result, nil
}
