// SPDX-License-Identifier: MIT
//
// File: props.go
// Role: Property store — lazily-created key/value maps attached to vertex
//       identities, edge pairs, and the graph itself.
// Policy:
//   - Vertex-keyed and edge-keyed entries are independent namespaces.
//   - The edge catalog is kept ordered by (From, To) in a B-tree for
//     deterministic enumeration and cheap incident-edge drops.
//   - Property writes are not structural mutation: they are permitted on a
//     read-only graph, exactly like the identity they annotate.

package core

import "github.com/tidwall/btree"

// edgePropsEntry is one edge property map in the ordered catalog.
type edgePropsEntry struct {
	edge  Edge
	props map[string]any
}

func lessEdgeProps(a, b edgePropsEntry) bool {
	if a.edge.From != b.edge.From {
		return a.edge.From < b.edge.From
	}

	return a.edge.To < b.edge.To
}

// propStore holds the three property namespaces of one graph.
type propStore struct {
	graph map[string]any
	vx    map[int]map[string]any
	eg    *btree.BTreeG[edgePropsEntry]
}

func newPropStore() *propStore {
	return &propStore{
		graph: make(map[string]any),
		vx:    make(map[int]map[string]any),
		eg:    btree.NewBTreeG[edgePropsEntry](lessEdgeProps),
	}
}

// ensureVertex returns the live property map of v, creating it on first use.
func (ps *propStore) ensureVertex(v int) map[string]any {
	m, ok := ps.vx[v]
	if !ok {
		m = make(map[string]any)
		ps.vx[v] = m
	}

	return m
}

// vertex returns the property map of v without creating it.
func (ps *propStore) vertex(v int) (map[string]any, bool) {
	m, ok := ps.vx[v]

	return m, ok
}

// ensureEdge returns the live property map of e, creating it on first use.
func (ps *propStore) ensureEdge(e Edge) map[string]any {
	if entry, ok := ps.eg.Get(edgePropsEntry{edge: e}); ok {
		return entry.props
	}
	m := make(map[string]any)
	ps.eg.Set(edgePropsEntry{edge: e, props: m})

	return m
}

// edge returns the property map of e without creating it.
func (ps *propStore) edge(e Edge) (map[string]any, bool) {
	entry, ok := ps.eg.Get(edgePropsEntry{edge: e})
	if !ok {
		return nil, false
	}

	return entry.props, true
}

func (ps *propStore) dropVertex(v int) {
	delete(ps.vx, v)
}

func (ps *propStore) dropEdge(e Edge) {
	ps.eg.Delete(edgePropsEntry{edge: e})
}

// dropEdgesOf removes every edge entry incident on v, in either direction.
func (ps *propStore) dropEdgesOf(v int) {
	var stale []Edge
	ps.eg.Scan(func(entry edgePropsEntry) bool {
		if entry.edge.From == v || entry.edge.To == v {
			stale = append(stale, entry.edge)
		}

		return true
	})
	for _, e := range stale {
		ps.eg.Delete(edgePropsEntry{edge: e})
	}
}

// GraphProps returns the live graph-level property map.
func (g *Graph) GraphProps() map[string]any { return g.props.graph }

// VertexProps returns the live property map of vertex v, creating it lazily.
// The map is a mutable reference owned jointly with the store: entries
// written through it are visible to every later accessor, and the whole
// entry disappears when the vertex is removed.
//
// Errors:
//   - ErrVertexNotFound if v does not exist.
func (g *Graph) VertexProps(v int) (map[string]any, error) {
	if err := g.VerifyVertices(v); err != nil {
		return nil, err
	}

	return g.props.ensureVertex(v), nil
}

// EdgeProps returns the live property map of edge e, creating it lazily.
// Same ownership contract as VertexProps.
//
// Errors:
//   - ErrEdgeNotFound if e does not exist.
func (g *Graph) EdgeProps(e Edge) (map[string]any, error) {
	if err := g.VerifyEdges(e); err != nil {
		return nil, err
	}

	return g.props.ensureEdge(e), nil
}

// deepCopyValue copies nested map[string]any and []any structures; all other
// values are shared as-is.
func deepCopyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return deepCopyMap(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = deepCopyValue(e)
		}

		return out
	default:
		return v
	}
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}

	return out
}
