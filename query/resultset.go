// SPDX-License-Identifier: MIT
//
// File: query/resultset.go
// Role: Ordered collections of matches keyed by pattern names, with a
//       one-shot cursor, positional access and live views against the
//       host graph.
// Policy:
//   - Columns follow pattern declaration order; names a match did not
//     reach hold NoVertex.
//   - The host-vertex snapshot is taken at construction; Removed and
//     Inserted diff it against the live host.

package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custom-computing-ic/heterograph/core"
)

// ResultSet holds the matches of one pattern search in a fixed column
// layout. Derived sets produced by Distinct and Disjoint share the host
// snapshot of the set they were filtered from.
type ResultSet struct {
	g        *core.Graph
	p        *Pattern
	ids      []string
	rows     [][]int
	snapshot []int
	cursor   int
}

// NewResultSet builds a result set from raw bindings. Columns are the
// pattern's names in declaration order; names absent from a binding are
// stored as NoVertex.
func NewResultSet(g *core.Graph, p *Pattern, bindings []Binding) (*ResultSet, error) {
	if g == nil {
		return nil, ErrHostNil
	}
	if p == nil {
		return nil, ErrPatternNil
	}
	ids := p.Names()
	rows := make([][]int, 0, len(bindings))
	for _, b := range bindings {
		row := make([]int, len(ids))
		for i, name := range ids {
			if v, ok := b[name]; ok {
				row[i] = v
			} else {
				row[i] = NoVertex
			}
		}
		rows = append(rows, row)
	}
	return &ResultSet{g: g, p: p, ids: ids, rows: rows, snapshot: g.Vertices()}, nil
}

// NewResultSetRows builds a result set from pre-shaped rows over an
// explicit column layout. Every row must carry one vertex per column.
func NewResultSetRows(g *core.Graph, p *Pattern, ids []string, rows [][]int) (*ResultSet, error) {
	if g == nil {
		return nil, ErrHostNil
	}
	if p == nil {
		return nil, ErrPatternNil
	}
	cols := append([]string(nil), ids...)
	out := make([][]int, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("query: row %d has %d columns, want %d: %w",
				i, len(row), len(cols), ErrOutOfRange)
		}
		out = append(out, append([]int(nil), row...))
	}
	return &ResultSet{g: g, p: p, ids: cols, rows: out, snapshot: g.Vertices()}, nil
}

// Len returns the number of matches.
func (rs *ResultSet) Len() int { return len(rs.rows) }

// Names returns the column names in order.
func (rs *ResultSet) Names() []string {
	return append([]string(nil), rs.ids...)
}

// Rows returns a copy of every match row.
func (rs *ResultSet) Rows() [][]int {
	out := make([][]int, len(rs.rows))
	for i, row := range rs.rows {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// At returns the i-th match independent of the cursor.
func (rs *ResultSet) At(i int) (*Result, error) {
	if i < 0 || i >= len(rs.rows) {
		return nil, fmt.Errorf("query: match %d of %d: %w", i, len(rs.rows), ErrOutOfRange)
	}
	return &Result{rs: rs, row: rs.rows[i]}, nil
}

// Next returns the match under the cursor and advances it. Once every
// match has been handed out it fails with ErrExhausted until Reset.
func (rs *ResultSet) Next() (*Result, error) {
	if rs.cursor >= len(rs.rows) {
		return nil, ErrExhausted
	}
	r := &Result{rs: rs, row: rs.rows[rs.cursor]}
	rs.cursor++
	return r, nil
}

// Reset rewinds the cursor to the first match.
func (rs *ResultSet) Reset() { rs.cursor = 0 }

// Removed returns, in ascending order, the snapshot vertices no longer
// present in the host graph.
func (rs *ResultSet) Removed() []int {
	var out []int
	for _, v := range rs.snapshot {
		if !rs.g.HasVertex(v) {
			out = append(out, v)
		}
	}
	return out
}

// Inserted returns, in ascending order, the host vertices added since
// the snapshot was taken.
func (rs *ResultSet) Inserted() []int {
	was := make(map[int]struct{}, len(rs.snapshot))
	for _, v := range rs.snapshot {
		was[v] = struct{}{}
	}
	var out []int
	for _, v := range rs.g.Vertices() {
		if _, ok := was[v]; !ok {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// String renders the matches as a small table, one row per match.
// Unbound columns show "-" and vertices removed from the host since the
// snapshot are flagged with "(v)".
func (rs *ResultSet) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(rs.ids, "\t"))
	b.WriteByte('\n')
	for _, row := range rs.rows {
		cells := make([]string, len(row))
		for i, v := range row {
			switch {
			case v == NoVertex:
				cells[i] = "-"
			case !rs.g.HasVertex(v):
				cells[i] = fmt.Sprintf("%d(v)", v)
			default:
				cells[i] = fmt.Sprint(v)
			}
		}
		b.WriteString(strings.Join(cells, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// derive builds a filtered sibling set sharing layout and snapshot.
func (rs *ResultSet) derive(rows [][]int) *ResultSet {
	return &ResultSet{g: rs.g, p: rs.p, ids: rs.ids, rows: rows, snapshot: rs.snapshot}
}

// column resolves a name to its column index.
func (rs *ResultSet) column(name string) (int, error) {
	for i, id := range rs.ids {
		if id == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("query: column %q: %w", name, ErrUnknownName)
}

// Result is one match row. Lookups go through the owning set so vertex
// liveness is checked against the current host state.
type Result struct {
	rs  *ResultSet
	row []int
}

// Vertex returns the host vertex bound to a pattern name, or NoVertex
// when the match never reached that name. A bound vertex that has since
// been removed from the host fails with ErrStaleResult.
func (r *Result) Vertex(name string) (int, error) {
	i, err := r.rs.column(name)
	if err != nil {
		return 0, err
	}
	v := r.row[i]
	if v == NoVertex {
		return NoVertex, nil
	}
	if !r.rs.g.HasVertex(v) {
		return 0, fmt.Errorf("query: %q bound to vertex %d: %w", name, v, ErrStaleResult)
	}
	return v, nil
}

// Binding returns the row as a name -> vertex map, omitting unbound
// names.
func (r *Result) Binding() Binding {
	b := make(Binding, len(r.row))
	for i, v := range r.row {
		if v != NoVertex {
			b[r.rs.ids[i]] = v
		}
	}
	return b
}
