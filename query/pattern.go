// SPDX-License-Identifier: MIT
//
// File: query/pattern.go
// Role: Compiled pattern graphs — a read-only core.Graph plus the
//       name <-> vertex lookup tables produced by GraphDef.Build.

package query

import (
	"fmt"

	"github.com/custom-computing-ic/heterograph/core"
)

// Pattern is a compiled pattern graph. Its vertices carry the declared
// name under the "id" property and the attached argument set under
// "args"; the graph itself is read-only.
type Pattern struct {
	g     *core.Graph
	names map[string]int
	order []string
	def   *GraphDef
}

// Graph returns the underlying read-only pattern graph.
func (p *Pattern) Graph() *core.Graph { return p.g }

// Def returns the definition the pattern was built from.
func (p *Pattern) Def() *GraphDef { return p.def }

// Names returns the declared vertex names in declaration order.
func (p *Pattern) Names() []string {
	return append([]string(nil), p.order...)
}

// VertexByName resolves a declared name to its pattern vertex.
func (p *Pattern) VertexByName(name string) (int, error) {
	v, ok := p.names[name]
	if !ok {
		return 0, fmt.Errorf("query: vertex %q: %w", name, ErrUnknownName)
	}
	return v, nil
}

// NameOf resolves a pattern vertex back to its declared name.
func (p *Pattern) NameOf(v int) (string, error) {
	props, err := p.g.VertexProps(v)
	if err != nil {
		return "", fmt.Errorf("query: name of vertex %d: %w", v, err)
	}
	name, ok := props["id"].(string)
	if !ok {
		return "", fmt.Errorf("query: vertex %d carries no name: %w", v, ErrUnknownName)
	}
	return name, nil
}

// ArgsOf returns the argument set attached to a named pattern vertex.
func (p *Pattern) ArgsOf(name string) (Args, error) {
	v, err := p.VertexByName(name)
	if err != nil {
		return Args{}, err
	}
	props, err := p.g.VertexProps(v)
	if err != nil {
		return Args{}, fmt.Errorf("query: args of %q: %w", name, err)
	}
	args, _ := props["args"].(Args)
	return args, nil
}

// EdgeArgs returns the argument set attached to a pattern edge.
func (p *Pattern) EdgeArgs(from, to string) (Args, error) {
	f, err := p.VertexByName(from)
	if err != nil {
		return Args{}, err
	}
	t, err := p.VertexByName(to)
	if err != nil {
		return Args{}, err
	}
	props, err := p.g.EdgeProps(core.Edge{From: f, To: t})
	if err != nil {
		return Args{}, fmt.Errorf("query: args of edge %s->%s: %w", from, to, err)
	}
	args, _ := props["args"].(Args)
	return args, nil
}
