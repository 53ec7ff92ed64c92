// SPDX-License-Identifier: MIT
// Package query_test contains shared host and pattern fixtures.

package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custom-computing-ic/heterograph/core"
	"github.com/custom-computing-ic/heterograph/query"
)

// buildChainHost returns a directed host chain 0→1→…→n-1.
func buildChainHost(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddVertices(n)
	require.NoError(t, err)
	for i := 0; i < n-1; i++ {
		_, err = g.AddEdge(i, i+1)
		require.NoError(t, err)
	}

	return g
}

// buildForkHost returns 0→1 with 1→2 and 1→3.
func buildForkHost(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddVertices(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {1, 3}} {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// buildDiamondHost returns 0→1, 1→{2,3}, {2,3}→4; not a tree.
func buildDiamondHost(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddVertices(5)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {1, 3}, {2, 4}, {3, 4}} {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// pathPattern compiles a linear pattern over the given names.
func pathPattern(t *testing.T, names ...string) *query.Pattern {
	t.Helper()
	var def query.GraphDef
	for _, n := range names {
		def.Steps = append(def.Steps, query.VertexStep(n))
	}
	for i := 0; i < len(names)-1; i++ {
		def.Steps = append(def.Steps, query.EdgeStep(names[i], names[i+1]))
	}
	p, err := def.Build()
	require.NoError(t, err)

	return p
}
