// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Central Graph and Edge types, options, sentinel errors, constructor.
// Policy:
//   - No algorithms here; structural operations live in vertices.go,
//     edges.go, adjacency.go, clone.go.
//   - Error policy is strict: only package-level sentinels are exposed and
//     callers MUST branch with errors.Is; implementations attach context
//     via %w wrapping.

package core

import (
	"errors"

	"gonum.org/v1/gonum/graph/simple"
)

// Sentinel errors for core graph operations.
var (
	// ErrReadOnlyGraph indicates a structural mutation was attempted while
	// the graph's read-only flag is set. The graph is left unchanged.
	// Usage: if errors.Is(err, ErrReadOnlyGraph) { /* unlock or abort */ }.
	ErrReadOnlyGraph = errors.New("core: cannot modify read-only graph")

	// ErrVertexNotFound indicates an operation referenced a persistent vertex
	// ID that is not present in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge pair that is
	// not present in the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadVertexCount indicates AddVertices was called with n < 1.
	ErrBadVertexCount = errors.New("core: vertex count must be >= 1")

	// ErrNoVerticesGiven indicates RemoveVertices was called with an empty
	// batch; removal of "nothing" is always a caller bug.
	ErrNoVerticesGiven = errors.New("core: no vertex ID specified")

	// ErrOrderNotSubset indicates the order sequence passed to Reorder is
	// not a subset of the vertex's current neighbours (or repeats one).
	ErrOrderNotSubset = errors.New("core: order is not a subset of neighbours")

	// ErrAnchorWithoutOrder indicates Reorder received an anchor but no
	// order sequence to place around it.
	ErrAnchorWithoutOrder = errors.New("core: anchor specified without order")

	// ErrAnchorNotNeighbor indicates the Reorder anchor is not among the
	// neighbours that remain after the ordered block was extracted.
	ErrAnchorNotNeighbor = errors.New("core: anchor is not a neighbour")
)

// Edge identifies a directed edge by its endpoints' persistent vertex IDs.
// The ordered pair is the whole identity: edges carry no separate ID, and at
// most one edge exists per (From, To) pair.
type Edge struct {
	// From is the source persistent vertex ID.
	From int

	// To is the target persistent vertex ID.
	To int
}

// Direction selects which adjacency sequence of a vertex an operation
// addresses: incoming sources (In) or outgoing targets (Out).
type Direction int

const (
	// In addresses the ordered sequence of source vertices.
	In Direction = iota

	// Out addresses the ordered sequence of target vertices.
	Out
)

// String returns "in" or "out" for diagnostics.
func (d Direction) String() string {
	if d == In {
		return "in"
	}

	return "out"
}

// GraphInit is invoked once per reset (construction and Erase) and may seed
// graph-level properties or styling defaults on the fresh store.
type GraphInit func(g *Graph)

// VertexInit is invoked for each newly created vertex, after its identity
// and storage slot exist. Returning an error aborts the surrounding
// operation with that error.
type VertexInit func(g *Graph, v int) error

// EdgeInit is invoked for each genuinely new edge (self-loops and duplicates
// never reach it). Returning an error aborts the surrounding operation.
type EdgeInit func(g *Graph, e Edge) error

// GraphOption configures behavior of a Graph at construction time.
type GraphOption func(g *Graph)

// WithGraphInit installs fn as the per-reset graph initializer.
func WithGraphInit(fn GraphInit) GraphOption {
	return func(g *Graph) { g.ginit = fn }
}

// WithVertexInit installs fn as the per-vertex initializer.
func WithVertexInit(fn VertexInit) GraphOption {
	return func(g *Graph) { g.vinit = fn }
}

// WithEdgeInit installs fn as the per-edge initializer.
func WithEdgeInit(fn EdgeInit) GraphOption {
	return func(g *Graph) { g.einit = fn }
}

// Graph is the identity-preserving graph store.
//
// It keeps two parallel representations consistent:
//
//   - store: a gonum simple.DirectedGraph holding the compacted internal
//     representation, whose node IDs are dense internal indices 0..n-1;
//   - in/out: insertion-ordered adjacency sequences in persistent-ID space,
//     which own neighbour ordering (gonum does not preserve it).
//
// Persistent IDs are allocated from nextID and never reused; internal
// indices are remapped by defragment() after any removal batch.
type Graph struct {
	store *simple.DirectedGraph // compacted internal storage

	nextID       int           // persistent ID counter, never decremented
	toInternal   map[int]int64 // persistent ID → internal index
	toPersistent map[int64]int // internal index → persistent ID

	in  map[int][]int // vertex → ordered incoming sources
	out map[int][]int // vertex → ordered outgoing targets

	numEdges int // current edge count, kept in step with adjacency

	props *propStore // vertex/edge/graph property maps

	ginit GraphInit  // optional per-reset initializer
	vinit VertexInit // optional per-vertex initializer
	einit EdgeInit   // optional per-edge initializer

	readOnly bool // advisory mutation gate
}

// NewGraph creates an empty Graph with the given options. A fresh graph is
// not read-only.
// Complexity: O(1) plus the installed GraphInit.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()

	return g
}

// ReadOnly reports whether the read-only flag is set.
func (g *Graph) ReadOnly() bool { return g.readOnly }

// SetReadOnly sets or clears the read-only flag. While set, every structural
// mutation fails with ErrReadOnlyGraph before any side effect. Property-map
// writes are not structural and remain permitted.
func (g *Graph) SetReadOnly(ro bool) { g.readOnly = ro }

// mutable is the single guard shared by all mutating operations.
func (g *Graph) mutable() error {
	if g.readOnly {
		return ErrReadOnlyGraph
	}

	return nil
}

// reset returns the graph to its initial state. Used by NewGraph and Erase.
func (g *Graph) reset() {
	g.store = simple.NewDirectedGraph()
	g.nextID = 0
	g.toInternal = make(map[int]int64)
	g.toPersistent = make(map[int64]int)
	g.in = make(map[int][]int)
	g.out = make(map[int][]int)
	g.numEdges = 0
	g.props = newPropStore()
	g.readOnly = false

	if g.ginit != nil {
		g.ginit(g)
	}
}
