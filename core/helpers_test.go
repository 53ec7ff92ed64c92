// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core graph tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custom-computing-ic/heterograph/core"
)

// buildChain returns a directed chain 0→1→…→n-1.
func buildChain(t *testing.T, n int) *core.Graph {
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

// buildFork returns 0→1 with 1→2 and 1→3.
func buildFork(t *testing.T) *core.Graph {
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

// buildDiamond returns 0→1, 1→{2,3}, {2,3}→4.
func buildDiamond(t *testing.T) *core.Graph {
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
