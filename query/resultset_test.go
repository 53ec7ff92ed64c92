// SPDX-License-Identifier: MIT
// Package query_test verifies result sets: cursor and positional
// access, liveness-checked lookups, host diffing, derived filters, and
// rendering.

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custom-computing-ic/heterograph/core"
	"github.com/custom-computing-ic/heterograph/query"
)

func TestResultSet_Cursor(t *testing.T) {
	g := buildChainHost(t, 4)
	p := pathPattern(t, "a", "b")
	rs, err := query.NewResultSetRows(g, p, []string{"a", "b"},
		[][]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	require.Equal(t, 3, rs.Len())

	for _, want := range []int{0, 1, 2} {
		r, err := rs.Next()
		require.NoError(t, err)
		a, err := r.Vertex("a")
		require.NoError(t, err)
		assert.Equal(t, want, a)
	}

	_, err = rs.Next()
	assert.ErrorIs(t, err, query.ErrExhausted)

	rs.Reset()
	r, err := rs.Next()
	require.NoError(t, err)
	assert.Equal(t, query.Binding{"a": 0, "b": 1}, r.Binding())
}

func TestResultSet_At(t *testing.T) {
	g := buildChainHost(t, 4)
	p := pathPattern(t, "a", "b")
	rs, err := query.NewResultSetRows(g, p, []string{"a", "b"},
		[][]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	// Positional access leaves the cursor alone.
	_, err = rs.Next()
	require.NoError(t, err)

	r, err := rs.At(0)
	require.NoError(t, err)
	assert.Equal(t, query.Binding{"a": 0, "b": 1}, r.Binding())

	r, err = rs.Next()
	require.NoError(t, err)
	assert.Equal(t, query.Binding{"a": 1, "b": 2}, r.Binding())

	_, err = rs.At(5)
	assert.ErrorIs(t, err, query.ErrOutOfRange)
	_, err = rs.At(-1)
	assert.ErrorIs(t, err, query.ErrOutOfRange)
}

func TestResult_UnboundName(t *testing.T) {
	g := buildChainHost(t, 2)
	p := pathPattern(t, "a", "b")
	rs, err := query.NewResultSetRows(g, p, []string{"a", "b", "c"},
		[][]int{{0, 1, query.NoVertex}})
	require.NoError(t, err)

	r, err := rs.At(0)
	require.NoError(t, err)

	c, err := r.Vertex("c")
	require.NoError(t, err)
	assert.Equal(t, query.NoVertex, c)
	assert.Equal(t, query.Binding{"a": 0, "b": 1}, r.Binding())

	_, err = r.Vertex("z")
	assert.ErrorIs(t, err, query.ErrUnknownName)
}

func TestResultSet_StaleAndDiffs(t *testing.T) {
	g := buildChainHost(t, 4)
	p := pathPattern(t, "a", "b")

	rs, err := query.Match(g, p)
	require.NoError(t, err)
	assert.Empty(t, rs.Removed())
	assert.Empty(t, rs.Inserted())

	require.NoError(t, g.RemoveVertex(3))
	added, err := g.AddVertex()
	require.NoError(t, err)

	assert.Equal(t, []int{3}, rs.Removed())
	assert.Equal(t, []int{added}, rs.Inserted())

	// A row still naming vertex 3 is stale only through that column.
	var stale *query.Result
	rs.Reset()
	for {
		r, err := rs.Next()
		if err != nil {
			break
		}
		if r.Binding()["b"] == 3 {
			stale = r
			break
		}
	}
	require.NotNil(t, stale)

	_, err = stale.Vertex("b")
	assert.ErrorIs(t, err, query.ErrStaleResult)
	_, err = stale.Vertex("a")
	assert.NoError(t, err)
}

func TestResultSet_String(t *testing.T) {
	g := buildChainHost(t, 3)
	p := pathPattern(t, "a", "b")
	rs, err := query.NewResultSetRows(g, p, []string{"a", "b"},
		[][]int{{0, 2}, {1, query.NoVertex}})
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(2))

	s := rs.String()
	assert.Contains(t, s, "a\tb")
	assert.Contains(t, s, "2(v)")
	assert.Contains(t, s, "-")
}

func TestResultSet_Distinct(t *testing.T) {
	g := buildChainHost(t, 3)
	p := pathPattern(t, "a", "b")
	rs, err := query.NewResultSetRows(g, p, []string{"a", "b"},
		[][]int{{0, 1}, {0, 2}, {1, 2}, {0, 1}})
	require.NoError(t, err)

	byA, err := rs.Distinct("a")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 2}}, byA.Rows())

	full, err := rs.Distinct()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 2}}, full.Rows())

	_, err = rs.Distinct("z")
	assert.ErrorIs(t, err, query.ErrUnknownName)

	// The source set is untouched.
	assert.Equal(t, 4, rs.Len())
}

func TestResultSet_Disjoint(t *testing.T) {
	g := buildChainHost(t, 3)
	p := pathPattern(t, "a", "b")
	rs, err := query.NewResultSetRows(g, p, []string{"a", "b"},
		[][]int{{0, 1}, {0, 2}, {1, 2}})
	require.NoError(t, err)

	same := func(_ *core.Graph, a, b int) (bool, error) { return a == b, nil }

	kept, err := rs.Disjoint("a", same)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 2}}, kept.Rows())

	_, err = rs.Disjoint("a", nil)
	assert.ErrorIs(t, err, query.ErrNoOverlapFunc)
	_, err = rs.Disjoint("z", same)
	assert.ErrorIs(t, err, query.ErrUnknownName)
}

func TestNewResultSetRows_WidthMismatch(t *testing.T) {
	g := buildChainHost(t, 2)
	p := pathPattern(t, "a", "b")

	_, err := query.NewResultSetRows(g, p, []string{"a", "b"}, [][]int{{0}})
	assert.ErrorIs(t, err, query.ErrOutOfRange)
}
