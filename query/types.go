// SPDX-License-Identifier: MIT
//
// File: query/types.go
// Role: Shared types, sentinel errors and functional options for the
//       pattern-matching engine.
// Policy:
//   - Sentinel errors only; callers branch with errors.Is.
//   - Depth windows treat any negative bound as unbounded on that side.

package query

import (
	"errors"

	"github.com/custom-computing-ic/heterograph/core"
)

// NoVertex marks a pattern name with no host vertex bound in a given
// match row, and the absent predecessor when a path element is matched
// first.
const NoVertex = -1

var (
	// ErrPatternNil is returned when Match receives a nil pattern.
	//
	// Usage: errors.Is(err, query.ErrPatternNil)
	ErrPatternNil = errors.New("query: pattern is nil")

	// ErrHostNil is returned when Match receives a nil host graph.
	//
	// Usage: errors.Is(err, query.ErrHostNil)
	ErrHostNil = errors.New("query: host graph is nil")

	// ErrHostNotTree is returned when depth labeling reaches some host
	// vertex twice from the chosen roots, i.e. the host region is not a
	// forest.
	//
	// Usage: errors.Is(err, query.ErrHostNotTree)
	ErrHostNotTree = errors.New("query: host graph is not a tree")

	// ErrBadWindow is returned when a depth window has both bounds set
	// and Min > Max.
	//
	// Usage: errors.Is(err, query.ErrBadWindow)
	ErrBadWindow = errors.New("query: invalid depth window")

	// ErrDuplicateArgs is returned by GraphDef.Build when arguments are
	// supplied twice for the same vertex name or edge.
	//
	// Usage: errors.Is(err, query.ErrDuplicateArgs)
	ErrDuplicateArgs = errors.New("query: duplicate argument set")

	// ErrBadStep is returned by GraphDef validation when a step is
	// neither vertex shaped (Name only) nor edge shaped (From and To).
	//
	// Usage: errors.Is(err, query.ErrBadStep)
	ErrBadStep = errors.New("query: malformed definition step")

	// ErrUnknownName is returned when a pattern name lookup fails: an
	// edge step endpoint never declared, a projection over names absent
	// from the result set, or a NameOf/VertexByName miss.
	//
	// Usage: errors.Is(err, query.ErrUnknownName)
	ErrUnknownName = errors.New("query: unknown pattern name")

	// ErrExhausted is returned by ResultSet.Next once the cursor has
	// passed the final match.
	//
	// Usage: errors.Is(err, query.ErrExhausted)
	ErrExhausted = errors.New("query: result set exhausted")

	// ErrStaleResult is returned when a match row references a host
	// vertex that has since been removed from the host graph.
	//
	// Usage: errors.Is(err, query.ErrStaleResult)
	ErrStaleResult = errors.New("query: match references removed vertex")

	// ErrNoOverlapFunc is returned by Disjoint when no overlap predicate
	// is supplied.
	//
	// Usage: errors.Is(err, query.ErrNoOverlapFunc)
	ErrNoOverlapFunc = errors.New("query: overlap predicate is nil")

	// ErrOutOfRange is returned by ResultSet.At for an index outside
	// [0, Len).
	//
	// Usage: errors.Is(err, query.ErrOutOfRange)
	ErrOutOfRange = errors.New("query: match index out of range")
)

// Hop names one candidate alignment step during matching: the host
// vertex bound to the previous path element (NoVertex for the first)
// and the candidate host vertex for the current element.
type Hop struct {
	Prev int
	Cur  int
}

// Binding maps pattern names to the host vertices they matched.
// Names the match did not reach are absent.
type Binding map[string]int

// PathCheck vetoes a single alignment step. It receives the host graph,
// the pattern being matched, the candidate host hop and the pattern hop
// it would realize; returning false prunes that branch of the search.
type PathCheck func(host *core.Graph, p *Pattern, hostHop, patHop Hop) (bool, error)

// MatchFilter vetoes a completed binding before it enters the result
// set.
type MatchFilter func(host *core.Graph, p *Pattern, b Binding) (bool, error)

// OverlapFunc reports whether two matched host vertices overlap, for
// Disjoint filtering.
type OverlapFunc func(host *core.Graph, a, b int) (bool, error)

// Window is an inclusive depth interval. A negative bound means
// unbounded on that side.
type Window struct {
	Min int
	Max int
}

// Exactly returns a window admitting the single depth d.
func Exactly(d int) Window { return Window{Min: d, Max: d} }

// Between returns a window admitting depths in [lo, hi].
func Between(lo, hi int) Window { return Window{Min: lo, Max: hi} }

// AtLeast returns a window with no upper bound.
func AtLeast(lo int) Window { return Window{Min: lo, Max: -1} }

// AtMost returns a window with no lower bound.
func AtMost(hi int) Window { return Window{Min: -1, Max: hi} }

func (w Window) valid() bool {
	return w.Min < 0 || w.Max < 0 || w.Min <= w.Max
}

func (w Window) contains(d int) bool {
	if w.Min >= 0 && d < w.Min {
		return false
	}
	if w.Max >= 0 && d > w.Max {
		return false
	}
	return true
}

// matchConfig collects tunable Match behaviour.
type matchConfig struct {
	roots      []int
	pathCheck  PathCheck
	filter     MatchFilter
	firstDepth *Window
	depth      *Window
}

// MatchOption mutates matchConfig before a search runs.
type MatchOption func(*matchConfig)

// WithRoots restricts the search to the given host roots instead of the
// host's source vertices.
func WithRoots(roots ...int) MatchOption {
	return func(c *matchConfig) { c.roots = append([]int(nil), roots...) }
}

// WithPathCheck installs a per-hop veto.
func WithPathCheck(f PathCheck) MatchOption {
	return func(c *matchConfig) { c.pathCheck = f }
}

// WithMatchFilter installs a per-binding veto.
func WithMatchFilter(f MatchFilter) MatchOption {
	return func(c *matchConfig) { c.filter = f }
}

// WithFirstDepth constrains the depth, below the search root, at which
// the first element of each pattern path may bind.
func WithFirstDepth(w Window) MatchOption {
	return func(c *matchConfig) { c.firstDepth = &w }
}

// WithDepth constrains the depth at which every path element may bind.
func WithDepth(w Window) MatchOption {
	return func(c *matchConfig) { c.depth = &w }
}
