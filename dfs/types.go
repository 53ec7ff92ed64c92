// Package dfs types: the host-graph interface, visitor configuration, and
// sentinel errors.

package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil Graph is passed to Traverse, Visit,
	// or Paths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNoCallback indicates a traversal was requested without any callback
	// to run: Traverse needs Pre and/or Post, Visit needs its VisitFunc.
	ErrNoCallback = errors.New("dfs: no callback provided")

	// ErrVertexNotFound indicates a root vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrNoRoots indicates Paths or Visit was given no roots and the graph
	// has no source vertices to default to (it is empty or all-cyclic).
	ErrNoRoots = errors.New("dfs: no root vertices")

	// ErrRevisited indicates a vertex was reached a second time during a
	// traversal constrained to acyclic input (Visitor.Acyclic).
	ErrRevisited = errors.New("dfs: vertex visited twice")
)

// Graph is the minimal host surface the traversals need. *core.Graph
// satisfies it; so does any store with ordered outgoing adjacency.
type Graph interface {
	// HasVertex reports whether v exists.
	HasVertex(v int) bool

	// OutNeighbors returns the ordered outgoing targets of v.
	OutNeighbors(v int) ([]int, error)

	// Sources returns the vertices with no incoming edges, used as default
	// roots by Paths.
	Sources() []int
}

// Visitor configures Traverse. I is the inherited value type flowing from
// parent to children; S is the synthesized value type flowing from children
// to parent. Either callback may be nil, but not both.
type Visitor[I, S any] struct {
	// Pre is called on first visit of a vertex with the value inherited from
	// its parent (Inherited for the root); its return value is inherited by
	// the children. Returning an error aborts the traversal.
	Pre func(g Graph, v int, inherited I) (I, error)

	// Post is called after all children have been visited, with each child's
	// synthesized value in adjacency order; its return value is this
	// vertex's synthesized value. Returning an error aborts the traversal.
	Post func(g Graph, v int, children []S) (S, error)

	// Inherited seeds the root's Pre call.
	Inherited I

	// Acyclic asserts the reachable subgraph is a tree or forest: reaching
	// any vertex twice fails the traversal with ErrRevisited instead of
	// walking it again.
	Acyclic bool
}

// VisitFunc is the pre-order callback of Visit. path holds the vertices from
// the current root to v, inclusive; the slice is the callback's to keep.
type VisitFunc func(g Graph, v int, path []int) error
