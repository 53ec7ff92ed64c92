// SPDX-License-Identifier: MIT
//
// File: clone.go
// Role: Whole-graph and subgraph copying, subgraph removal, reset.

package core

import (
	"fmt"

	"github.com/custom-computing-ic/heterograph/dfs"
)

// CopyOption configures Copy.
type CopyOption func(*copyOptions)

type copyOptions struct {
	vs      []int
	target  *Graph
	induced bool
}

// WithVertices restricts the copy to the given vertex subset (default: all
// vertices, in ascending ID order).
func WithVertices(vs ...int) CopyOption {
	return func(o *copyOptions) { o.vs = vs }
}

// WithTarget populates an existing graph instead of creating a fresh one.
// The target's initializer hooks are used for the copied elements.
func WithTarget(t *Graph) CopyOption {
	return func(o *copyOptions) { o.target = t }
}

// WithoutInduced skips edge copying entirely; only vertices and their
// properties are reproduced.
func WithoutInduced() CopyOption {
	return func(o *copyOptions) { o.induced = false }
}

// Copy reproduces the selected vertices in a target graph with fresh
// persistent IDs and deep-copied property maps, and returns the target
// together with the old→new ID mapping.
//
// By default the copy is induced: every original edge whose endpoints are
// both in the subset is copied too, with its properties. The target's
// graph-level property bag is replaced by a deep copy of the source's; any
// entries it held before are dropped. The target's read-only flag is
// cleared for the duration of the copy and then set to mirror the source.
//
// Errors:
//   - ErrVertexNotFound if the subset names an unknown vertex.
//   - any error surfaced by the target's initializer hooks.
//
// Complexity: O(V' + E) where V' is the subset size.
func (g *Graph) Copy(opts ...CopyOption) (*Graph, map[int]int, error) {
	co := copyOptions{induced: true}
	for _, opt := range opts {
		opt(&co)
	}

	target := co.target
	if target == nil {
		target = NewGraph(WithGraphInit(g.ginit), WithVertexInit(g.vinit), WithEdgeInit(g.einit))
	}
	target.SetReadOnly(false)

	for k := range target.props.graph {
		delete(target.props.graph, k)
	}
	for k, v := range g.props.graph {
		target.props.graph[k] = deepCopyValue(v)
	}

	vs := co.vs
	if vs == nil {
		vs = g.Vertices()
	}
	if err := g.VerifyVertices(vs...); err != nil {
		return nil, nil, err
	}

	mapping := make(map[int]int, len(vs))
	for _, v := range vs {
		nv, err := target.AddVertex()
		if err != nil {
			return nil, nil, fmt.Errorf("core: copy vertex %d: %w", v, err)
		}
		mapping[v] = nv

		if m, ok := g.props.vertex(v); ok {
			target.props.vx[nv] = deepCopyMap(m)
		}
	}

	if co.induced {
		for _, e := range g.Edges() {
			ns, okS := mapping[e.From]
			nt, okT := mapping[e.To]
			if !okS || !okT {
				continue
			}
			if _, err := target.AddEdge(ns, nt); err != nil {
				return nil, nil, fmt.Errorf("core: copy edge (%d,%d): %w", e.From, e.To, err)
			}
			if m, ok := g.props.edge(e); ok {
				target.props.eg.Set(edgePropsEntry{edge: Edge{From: ns, To: nt}, props: deepCopyMap(m)})
			}
		}
	}

	target.SetReadOnly(g.readOnly)

	return target, mapping, nil
}

// RemoveSubgraph removes root and every vertex reachable from it by
// following outgoing edges (the full descendant closure), collected with a
// post-order DFS and removed as one batch.
//
// Errors:
//   - ErrReadOnlyGraph if the graph is read-only.
//   - ErrVertexNotFound if root does not exist.
func (g *Graph) RemoveSubgraph(root int) error {
	if err := g.mutable(); err != nil {
		return err
	}
	if err := g.VerifyVertices(root); err != nil {
		return err
	}

	vs, err := dfs.Traverse(g, root, dfs.Visitor[struct{}, []int]{
		Post: func(_ dfs.Graph, v int, children [][]int) ([]int, error) {
			flat := make([]int, 0, len(children)+1)
			for _, c := range children {
				flat = append(flat, c...)
			}

			return append(flat, v), nil
		},
	})
	if err != nil {
		return fmt.Errorf("core: RemoveSubgraph(%d): %w", root, err)
	}

	return g.RemoveVertices(vs, true)
}

// Erase resets the graph to its initial state: no vertices, no edges, fresh
// property maps, counter back to zero, read-only cleared, and the GraphInit
// hook rerun.
//
// Errors:
//   - ErrReadOnlyGraph if the graph is read-only.
func (g *Graph) Erase() error {
	if err := g.mutable(); err != nil {
		return err
	}
	g.reset()

	return nil
}
