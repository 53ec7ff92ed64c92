// SPDX-License-Identifier: MIT
//
// File: query/match.go
// Role: The pattern-matching engine. Decomposes a pattern into its
//       maximal linear paths, depth-labels the host from the chosen
//       roots, and aligns each path against chains of host vertices.
// Policy:
//   - The host region reachable from the roots must be a forest; a
//     vertex reached twice fails the whole search with ErrHostNotTree.
//   - Each path element may bind at ANY descendant of its predecessor's
//     binding, not only an immediate child. Depth windows and the
//     PathCheck hook prune candidates.
//   - Matches from different pattern paths stay separate bindings.

package query

import (
	"fmt"

	"github.com/custom-computing-ic/heterograph/core"
	"github.com/custom-computing-ic/heterograph/dfs"
)

// Match runs the pattern search over a host graph and returns the
// collected bindings as a ResultSet. The search starts at the host's
// source vertices unless WithRoots overrides them, and every vertex
// reachable from those roots must be reachable exactly once.
//
// A pattern with no vertices has nothing to align and yields an empty
// result set rather than an error.
func Match(g *core.Graph, p *Pattern, opts ...MatchOption) (*ResultSet, error) {
	if g == nil {
		return nil, ErrHostNil
	}
	if p == nil {
		return nil, ErrPatternNil
	}

	var cfg matchConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.firstDepth != nil && !cfg.firstDepth.valid() {
		return nil, fmt.Errorf("query: first-element window [%d, %d]: %w",
			cfg.firstDepth.Min, cfg.firstDepth.Max, ErrBadWindow)
	}
	if cfg.depth != nil && !cfg.depth.valid() {
		return nil, fmt.Errorf("query: element window [%d, %d]: %w",
			cfg.depth.Min, cfg.depth.Max, ErrBadWindow)
	}

	if p.g.NumVertices() == 0 {
		return NewResultSet(g, p, nil)
	}
	paths, err := dfs.Paths(p.g, nil)
	if err != nil {
		return nil, fmt.Errorf("query: decompose pattern: %w", err)
	}

	roots := cfg.roots
	if roots == nil {
		roots = g.Sources()
	}
	if err := g.VerifyVertices(roots...); err != nil {
		return nil, fmt.Errorf("query: roots: %w", err)
	}

	depths, err := labelDepths(g, roots)
	if err != nil {
		return nil, err
	}

	m := &matcher{host: g, pattern: p, cfg: cfg, depths: depths}
	var bindings []Binding
	for _, root := range roots {
		for _, path := range paths {
			found, err := m.find(NoVertex, root, 0, path, depths[root])
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, found...)
		}
	}

	if cfg.filter != nil {
		kept := bindings[:0]
		for _, b := range bindings {
			ok, err := cfg.filter(g, p, b)
			if err != nil {
				return nil, fmt.Errorf("query: match filter: %w", err)
			}
			if ok {
				kept = append(kept, b)
			}
		}
		bindings = kept
	}
	return NewResultSet(g, p, bindings)
}

// labelDepths assigns every vertex reachable from the roots its depth
// below its root. One shared table across all roots doubles as the
// tree-shape check: a second visit of any vertex means the region is
// not a forest.
func labelDepths(g *core.Graph, roots []int) (map[int]int, error) {
	depths := make(map[int]int)
	for _, root := range roots {
		_, err := dfs.Traverse(g, root, dfs.Visitor[int, struct{}]{
			Pre: func(_ dfs.Graph, v int, d int) (int, error) {
				if _, seen := depths[v]; seen {
					return 0, fmt.Errorf("query: vertex %d reached twice: %w",
						v, ErrHostNotTree)
				}
				depths[v] = d
				return d + 1, nil
			},
			Inherited: 0,
		})
		if err != nil {
			return nil, err
		}
	}
	return depths, nil
}

// matcher carries the per-search state shared by all recursive calls.
type matcher struct {
	host    *core.Graph
	pattern *Pattern
	cfg     matchConfig
	depths  map[int]int
}

// find aligns path[idx:] against the host subtree rooted at root.
// prevHost is the host vertex bound to path[idx-1] (NoVertex for the
// first element) and rootDepth is the depth of the search root, so
// window checks work on distances below it. Every subtree vertex is a
// candidate for path[idx]; an accepted candidate either completes the
// path or restarts the search for the next element in each of its
// child subtrees.
func (m *matcher) find(prevHost, root, idx int, path []int, rootDepth int) ([]Binding, error) {
	name, err := m.pattern.NameOf(path[idx])
	if err != nil {
		return nil, err
	}
	prevPat := NoVertex
	if idx > 0 {
		prevPat = path[idx-1]
	}
	return dfs.Traverse(m.host, root, dfs.Visitor[struct{}, []Binding]{
		Post: func(_ dfs.Graph, v int, children [][]Binding) ([]Binding, error) {
			var out []Binding
			for _, c := range children {
				out = append(out, c...)
			}
			dist := m.depths[v] - rootDepth
			if prevHost == NoVertex && m.cfg.firstDepth != nil && !m.cfg.firstDepth.contains(dist) {
				return out, nil
			}
			if m.cfg.depth != nil && !m.cfg.depth.contains(dist) {
				return out, nil
			}
			if m.cfg.pathCheck != nil {
				ok, err := m.cfg.pathCheck(m.host, m.pattern,
					Hop{Prev: prevHost, Cur: v}, Hop{Prev: prevPat, Cur: path[idx]})
				if err != nil {
					return nil, fmt.Errorf("query: path check at %d: %w", v, err)
				}
				if !ok {
					return out, nil
				}
			}
			if idx == len(path)-1 {
				return append(out, Binding{name: v}), nil
			}
			next, err := m.host.OutNeighbors(v)
			if err != nil {
				return nil, fmt.Errorf("query: neighbors of %d: %w", v, err)
			}
			for _, child := range next {
				subs, err := m.find(v, child, idx+1, path, rootDepth)
				if err != nil {
					return nil, err
				}
				for _, sub := range subs {
					sub[name] = v
					out = append(out, sub)
				}
			}
			return out, nil
		},
	})
}
