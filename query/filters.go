// SPDX-License-Identifier: MIT
//
// File: query/filters.go
// Role: Derived result-set filters: first-seen deduplication over a
//       name projection, and greedy selection of pairwise-disjoint
//       matches under a caller-supplied overlap predicate.

package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Distinct keeps the first match for every distinct combination of
// values over the given columns. With no names it deduplicates whole
// rows.
func (rs *ResultSet) Distinct(names ...string) (*ResultSet, error) {
	cols := make([]int, 0, len(names))
	if len(names) == 0 {
		for i := range rs.ids {
			cols = append(cols, i)
		}
	} else {
		for _, name := range names {
			i, err := rs.column(name)
			if err != nil {
				return nil, err
			}
			cols = append(cols, i)
		}
	}

	seen := make(map[string]struct{}, len(rs.rows))
	var kept [][]int
	for _, row := range rs.rows {
		parts := make([]string, len(cols))
		for i, c := range cols {
			parts[i] = strconv.Itoa(row[c])
		}
		key := strings.Join(parts, ",")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	return rs.derive(kept), nil
}

// Disjoint scans the matches in order and keeps each one whose vertex
// under the given name does not overlap the same vertex of any match
// already kept, as judged by the overlap predicate. Unbound rows are
// kept as-is.
func (rs *ResultSet) Disjoint(name string, overlaps OverlapFunc) (*ResultSet, error) {
	if overlaps == nil {
		return nil, ErrNoOverlapFunc
	}
	c, err := rs.column(name)
	if err != nil {
		return nil, err
	}

	var kept [][]int
	var taken []int
	for _, row := range rs.rows {
		v := row[c]
		if v == NoVertex {
			kept = append(kept, row)
			continue
		}
		clash := false
		for _, t := range taken {
			hit, err := overlaps(rs.g, v, t)
			if err != nil {
				return nil, fmt.Errorf("query: overlap of %d and %d: %w", v, t, err)
			}
			if hit {
				clash = true
				break
			}
		}
		if clash {
			continue
		}
		taken = append(taken, v)
		kept = append(kept, row)
	}
	return rs.derive(kept), nil
}
