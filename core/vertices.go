// SPDX-License-Identifier: MIT
//
// File: vertices.go
// Role: Vertex lifecycle — allocation, removal with defragmentation,
//       existence checks, degree and enumeration accessors.
// Invariants:
//   - A persistent ID, once assigned, never changes while its vertex lives
//     and is never reused after removal within the same counter sequence.
//   - After any removal batch, internal indices of the survivors form a
//     dense range 0..NumVertices()-1 with no gaps.

package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// AddVertices allocates n new vertices and returns their persistent IDs in
// allocation order. Each vertex receives the next ID from the counter and a
// fresh dense internal storage slot; the VertexInit hook (if installed) runs
// for each vertex after both exist.
//
// Errors:
//   - ErrReadOnlyGraph if the graph is read-only.
//   - ErrBadVertexCount if n < 1.
//   - any error returned by the VertexInit hook (allocation stops there).
//
// Complexity: O(n) plus hook cost.
func (g *Graph) AddVertices(n int) ([]int, error) {
	if err := g.mutable(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("core: AddVertices(%d): %w", n, ErrBadVertexCount)
	}

	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		ix := int64(len(g.toInternal)) // next dense internal slot
		g.store.AddNode(simple.Node(ix))

		v := g.nextID
		g.nextID++

		g.toInternal[v] = ix
		g.toPersistent[ix] = v
		ids = append(ids, v)

		if g.vinit != nil {
			if err := g.vinit(g, v); err != nil {
				return nil, fmt.Errorf("core: vertex init for %d: %w", v, err)
			}
		}
	}

	return ids, nil
}

// AddVertex allocates a single vertex and returns its persistent ID.
func (g *Graph) AddVertex() (int, error) {
	ids, err := g.AddVertices(1)
	if err != nil {
		return 0, err
	}

	return ids[0], nil
}

// RemoveVertices removes the given vertices, all edges incident on them, and
// their property entries, then defragments internal storage so surviving
// vertices occupy dense internal indices 0..NumVertices()-1. Persistent IDs
// of survivors are untouched.
//
// When verify is true, any unknown ID fails the whole batch before any
// mutation; when false, unknown IDs are silently ignored.
//
// Errors:
//   - ErrReadOnlyGraph if the graph is read-only.
//   - ErrNoVerticesGiven if vs is empty.
//   - ErrVertexNotFound (naming the ID) if verify is true and an ID is unknown.
//
// Complexity: O(V + E) for the defragmentation rebuild.
func (g *Graph) RemoveVertices(vs []int, verify bool) error {
	if err := g.mutable(); err != nil {
		return err
	}
	if len(vs) == 0 {
		return ErrNoVerticesGiven
	}

	if verify {
		if err := g.VerifyVertices(vs...); err != nil {
			return err
		}
	}

	// Dedupe and drop unknowns (possible only with verify == false).
	victims := make([]int, 0, len(vs))
	seen := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		if _, dup := seen[v]; dup {
			continue
		}
		if !g.HasVertex(v) {
			continue
		}
		seen[v] = struct{}{}
		victims = append(victims, v)
	}

	// Remove from internal storage, highest internal index first, so earlier
	// removals cannot invalidate later ones within the batch.
	order := make([]int64, 0, len(victims))
	for _, v := range victims {
		order = append(order, g.toInternal[v])
	}
	sort.Slice(order, func(i, j int) bool { return order[i] > order[j] })
	for _, ix := range order {
		v := g.toPersistent[ix]
		g.store.RemoveNode(ix) // drops incident internal edges too
		delete(g.toInternal, v)
	}

	g.defragment()

	// Adjacency bookkeeping: scrub each victim from its neighbours' ordered
	// sequences, then drop its own sequences and property entries.
	for _, v := range victims {
		for _, s := range g.in[v] {
			if lst, ok := g.out[s]; ok {
				g.out[s] = removeFirst(lst, v)
			}
		}
		for _, t := range g.out[v] {
			if lst, ok := g.in[t]; ok {
				g.in[t] = removeFirst(lst, v)
			}
		}
		delete(g.in, v)
		delete(g.out, v)

		g.props.dropVertex(v)
		g.props.dropEdgesOf(v)
	}

	g.recountEdges()

	return nil
}

// RemoveVertex removes a single vertex, verifying it exists.
func (g *Graph) RemoveVertex(v int) error {
	return g.RemoveVertices([]int{v}, true)
}

// defragment recomputes internal indices after a removal batch: it walks the
// historical ID range downward, reassigns a dense 0..n-1 internal index to
// every surviving persistent ID, rebuilds both index maps from scratch, and
// reconstructs the internal store with the surviving edges.
func (g *Graph) defragment() {
	n := len(g.toInternal)
	g.toPersistent = make(map[int64]int, n)
	fresh := simple.NewDirectedGraph()

	next := int64(n)
	for v := g.nextID - 1; v >= 0; v-- {
		if _, ok := g.toInternal[v]; !ok {
			continue
		}
		next--
		g.toInternal[v] = next
		g.toPersistent[next] = v
		fresh.AddNode(simple.Node(next))
	}

	// Re-add surviving edges. Adjacency of removed vertices may still be
	// present at this point; endpoints without an internal index are gone.
	for v, targets := range g.out {
		iv, ok := g.toInternal[v]
		if !ok {
			continue
		}
		for _, t := range targets {
			it, ok := g.toInternal[t]
			if !ok {
				continue
			}
			fresh.SetEdge(simple.Edge{F: simple.Node(iv), T: simple.Node(it)})
		}
	}

	g.store = fresh
}

// HasVertex reports whether the persistent ID v is present in the graph.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.toInternal[v]

	return ok
}

// HasVertices reports whether every given persistent ID is present.
func (g *Graph) HasVertices(vs ...int) bool {
	for _, v := range vs {
		if !g.HasVertex(v) {
			return false
		}
	}

	return true
}

// VerifyVertices returns ErrVertexNotFound naming the first missing ID, or
// nil when every given ID is present.
func (g *Graph) VerifyVertices(vs ...int) error {
	for _, v := range vs {
		if !g.HasVertex(v) {
			return fmt.Errorf("core: vertex %d: %w", v, ErrVertexNotFound)
		}
	}

	return nil
}

// NumVertices returns the number of vertices currently in the graph.
func (g *Graph) NumVertices() int { return len(g.toInternal) }

// Vertices returns all persistent vertex IDs in ascending order.
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.toInternal))
	for v := range g.toInternal {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// Sources returns, in ascending order, the vertices with no incoming edges.
func (g *Graph) Sources() []int {
	var src []int
	for _, v := range g.Vertices() {
		if len(g.in[v]) == 0 {
			src = append(src, v)
		}
	}

	return src
}

// Sinks returns, in ascending order, the vertices with no outgoing edges.
func (g *Graph) Sinks() []int {
	var snk []int
	for _, v := range g.Vertices() {
		if len(g.out[v]) == 0 {
			snk = append(snk, v)
		}
	}

	return snk
}

// InDegree returns the number of incoming edges of v.
func (g *Graph) InDegree(v int) (int, error) {
	if err := g.VerifyVertices(v); err != nil {
		return 0, err
	}

	return len(g.in[v]), nil
}

// OutDegree returns the number of outgoing edges of v.
func (g *Graph) OutDegree(v int) (int, error) {
	if err := g.VerifyVertices(v); err != nil {
		return 0, err
	}

	return len(g.out[v]), nil
}

// InternalIndex returns the current internal storage index of v. The index
// is valid only until the next removal; persistent IDs are the stable handle.
func (g *Graph) InternalIndex(v int) (int64, error) {
	ix, ok := g.toInternal[v]
	if !ok {
		return 0, fmt.Errorf("core: vertex %d: %w", v, ErrVertexNotFound)
	}

	return ix, nil
}

// PersistentID returns the persistent ID currently stored at internal index ix.
func (g *Graph) PersistentID(ix int64) (int, error) {
	v, ok := g.toPersistent[ix]
	if !ok {
		return 0, fmt.Errorf("core: internal index %d: %w", ix, ErrVertexNotFound)
	}

	return v, nil
}

// removeFirst returns lst with the first occurrence of v removed, in place.
func removeFirst(lst []int, v int) []int {
	for i, x := range lst {
		if x == v {
			return append(lst[:i], lst[i+1:]...)
		}
	}

	return lst
}

// recountEdges recomputes numEdges from the ordered adjacency.
func (g *Graph) recountEdges() {
	n := 0
	for _, targets := range g.out {
		n += len(targets)
	}
	g.numEdges = n
}
