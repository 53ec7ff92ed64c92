// SPDX-License-Identifier: MIT
// Package core_test verifies neighbour enumeration and the ordered
// reorder operation: block placement, anchors, and subset validation.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custom-computing-ic/heterograph/core"
)

// buildStar returns 0→{1,2,3,4} with adjacency order 1,2,3,4.
func buildStar(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddVertices(5)
	require.NoError(t, err)
	_, err = g.AddEdges([]int{0}, []int{1, 2, 3, 4})
	require.NoError(t, err)

	return g
}

func TestNeighbors_SnapshotSemantics(t *testing.T) {
	g := buildStar(t)

	out, err := g.OutNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, out)

	// The returned slice is a copy; scribbling on it must not reach the
	// stored sequence.
	out[0] = 99
	again, err := g.Neighbors(core.Out, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, again)

	in, err := g.InNeighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, in)

	_, err = g.OutNeighbors(42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestReorder_FullPermutation(t *testing.T) {
	g := buildStar(t)

	got, err := g.Reorder(core.Out, 0, []int{4, 2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 1, 3}, got)

	out, err := g.OutNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 1, 3}, out, "new order persists")
}

func TestReorder_PartialBlock(t *testing.T) {
	g := buildStar(t)

	// Default placement appends the block after the untouched rest.
	got, err := g.Reorder(core.Out, 0, []int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 3, 1}, got)

	// Before() prepends instead.
	got, err = g.Reorder(core.Out, 0, []int{4, 2}, core.Before())
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 3, 1}, got)
}

func TestReorder_Anchored(t *testing.T) {
	g := buildStar(t)

	// Insert {4,1} immediately after 2 within the remaining sequence.
	got, err := g.Reorder(core.Out, 0, []int{4, 1}, core.WithAnchor(2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1, 3}, got)

	// And immediately before 3.
	got, err = g.Reorder(core.Out, 0, []int{2, 4}, core.WithAnchor(3), core.Before())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 3}, got)
}

func TestReorder_EmptyOrderReads(t *testing.T) {
	g := buildStar(t)

	got, err := g.Reorder(core.Out, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	_, err = g.Reorder(core.Out, 0, nil, core.WithAnchor(2))
	assert.ErrorIs(t, err, core.ErrAnchorWithoutOrder)
}

func TestReorder_Validation(t *testing.T) {
	g := buildStar(t)

	_, err := g.Reorder(core.Out, 0, []int{1, 7})
	assert.ErrorIs(t, err, core.ErrOrderNotSubset)

	_, err = g.Reorder(core.Out, 0, []int{1, 1})
	assert.ErrorIs(t, err, core.ErrOrderNotSubset, "repeats are not a subset")

	// The anchor may not be part of the moved block.
	_, err = g.Reorder(core.Out, 0, []int{1, 2}, core.WithAnchor(2))
	assert.ErrorIs(t, err, core.ErrAnchorNotNeighbor)

	_, err = g.Reorder(core.Out, 42, []int{1})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	g.SetReadOnly(true)
	_, err = g.Reorder(core.Out, 0, nil)
	assert.ErrorIs(t, err, core.ErrReadOnlyGraph)
}

func TestReorder_InDirection(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertices(4)
	require.NoError(t, err)
	_, err = g.AddEdges([]int{1, 2, 3}, []int{0})
	require.NoError(t, err)

	in, err := g.InNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, in)

	got, err := g.Reorder(core.In, 0, []int{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, got)

	// Outgoing order of the sources is untouched.
	out, err := g.OutNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, out)
}
