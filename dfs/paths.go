package dfs

import "fmt"

// Visit performs a pre-order walk from each root in turn, calling fn with
// every reached vertex and its full root-to-vertex path. Children are
// explored in adjacency order; shared descendants are reached once per
// incoming path.
//
// Errors:
//   - ErrGraphNil, ErrNoCallback, ErrNoRoots
//   - ErrVertexNotFound (naming the root) if any root is missing — checked
//     for all roots before the first callback runs
//   - any error returned by fn, which aborts the walk
func Visit(g Graph, roots []int, fn VisitFunc) error {
	if g == nil {
		return ErrGraphNil
	}
	if fn == nil {
		return ErrNoCallback
	}
	if len(roots) == 0 {
		return ErrNoRoots
	}
	for _, r := range roots {
		if !g.HasVertex(r) {
			return fmt.Errorf("dfs: root %d: %w", r, ErrVertexNotFound)
		}
	}

	type item struct {
		v    int
		path []int
	}

	for _, r := range roots {
		stack := []item{{v: r, path: []int{r}}}
		for len(stack) > 0 {
			it := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if err := fn(g, it.v, it.path); err != nil {
				return err
			}

			nbs, err := g.OutNeighbors(it.v)
			if err != nil {
				return fmt.Errorf("dfs: neighbors of %d: %w", it.v, err)
			}
			// Push in reverse so adjacency order pops first.
			for i := len(nbs) - 1; i >= 0; i-- {
				child := nbs[i]
				path := make([]int, len(it.path)+1)
				copy(path, it.path)
				path[len(it.path)] = child
				stack = append(stack, item{v: child, path: path})
			}
		}
	}

	return nil
}

// Paths returns every maximal root-to-leaf path reachable from the given
// roots, in pre-order: for each root, each path ends at a vertex with no
// outgoing edges. A nil roots slice defaults to g.Sources().
//
// A branching vertex contributes one path per branch (sharing the prefix);
// a root that is itself a leaf yields the single path [root].
//
// Errors:
//   - ErrGraphNil
//   - ErrNoRoots when no roots are given and the graph has no sources
//   - ErrVertexNotFound (naming the root) if a root is missing
func Paths(g Graph, roots []int) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if roots == nil {
		roots = g.Sources()
	}
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}

	var paths [][]int
	err := Visit(g, roots, func(g Graph, v int, path []int) error {
		nbs, err := g.OutNeighbors(v)
		if err != nil {
			return err
		}
		if len(nbs) == 0 {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
