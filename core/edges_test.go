// SPDX-License-Identifier: MIT
// Package core_test verifies edge batch semantics: cross-product
// insertion, self-loop and duplicate suppression, verified removal,
// and deterministic enumeration order.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custom-computing-ic/heterograph/core"
)

func TestAddEdges_CrossProduct(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertices(4)
	require.NoError(t, err)

	created, err := g.AddEdges([]int{0, 1}, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 2}, {From: 0, To: 3},
		{From: 1, To: 2}, {From: 1, To: 3},
	}, created)
	assert.Equal(t, 4, g.NumEdges())
}

func TestAddEdges_SkipsLoopsAndDuplicates(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertices(2)
	require.NoError(t, err)

	created, err := g.AddEdges([]int{0, 1}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}}, created, "1→1 self-loop skipped")

	created, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	assert.Empty(t, created, "existing edge not re-added")
	assert.Equal(t, 1, g.NumEdges())
}

func TestAddEdges_UnknownEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertices(2)
	require.NoError(t, err)

	_, err = g.AddEdges([]int{0}, []int{7})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestRemoveEdges_Verify(t *testing.T) {
	g := buildFork(t)

	missing := core.Edge{From: 2, To: 3}
	err := g.RemoveEdges([]core.Edge{missing}, true)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	// Unverified removal skips absent edges, including a duplicate of an
	// edge removed earlier in the same batch.
	e := core.Edge{From: 1, To: 2}
	require.NoError(t, g.RemoveEdges([]core.Edge{e, e, missing}, false))
	assert.False(t, g.HasEdge(e))
	assert.Equal(t, 2, g.NumEdges())
}

func TestRemoveEdge_KeepsVertices(t *testing.T) {
	g := buildChain(t, 3)

	require.NoError(t, g.RemoveEdge(core.Edge{From: 0, To: 1}))
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 1, g.NumEdges())

	out, err := g.OutNeighbors(0)
	require.NoError(t, err)
	assert.Empty(t, out)
	in, err := g.InNeighbors(1)
	require.NoError(t, err)
	assert.Empty(t, in)
}

func TestEdges_DeterministicOrder(t *testing.T) {
	g := buildDiamond(t)

	assert.Equal(t, []core.Edge{
		{From: 0, To: 1},
		{From: 1, To: 2}, {From: 1, To: 3},
		{From: 2, To: 4},
		{From: 3, To: 4},
	}, g.Edges())
}

func TestVerifyEdges(t *testing.T) {
	g := buildChain(t, 3)

	assert.NoError(t, g.VerifyEdges(core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}))
	assert.True(t, g.HasEdges(core.Edge{From: 0, To: 1}))

	err := g.VerifyEdges(core.Edge{From: 2, To: 0})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestAddEdges_ReadOnly(t *testing.T) {
	g := buildChain(t, 2)
	g.SetReadOnly(true)

	_, err := g.AddEdge(1, 0)
	assert.ErrorIs(t, err, core.ErrReadOnlyGraph)
	err = g.RemoveEdge(core.Edge{From: 0, To: 1})
	assert.ErrorIs(t, err, core.ErrReadOnlyGraph)
}

func TestEdgeInitHook(t *testing.T) {
	var inited []core.Edge
	g := core.NewGraph(core.WithEdgeInit(func(g *core.Graph, e core.Edge) error {
		inited = append(inited, e)
		return nil
	}))
	_, err := g.AddVertices(3)
	require.NoError(t, err)

	_, err = g.AddEdges([]int{0}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}}, inited)
}
