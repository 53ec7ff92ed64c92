// SPDX-License-Identifier: MIT
//
// File: query/graphdef.go
// Role: Declarative pattern definitions — ordered vertex/edge steps with
//       optional argument labels — and their compilation into Pattern
//       graphs. Definitions may be built in code or decoded from YAML.
// Policy:
//   - Steps are applied in declaration order; edge endpoints must name
//     vertices declared by earlier steps.
//   - Build output is read-only; each pattern vertex carries "id" and
//     "args" properties.

package query

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custom-computing-ic/heterograph/core"
)

// Args carries the positional and keyword argument labels attached to a
// pattern element. Labels are opaque to the matcher; they exist for
// callers to inspect via ArgsOf / EdgeArgs and for display.
type Args struct {
	Pos []any          `yaml:"pos,omitempty"`
	KW  map[string]any `yaml:"kw,omitempty"`
}

// Empty reports whether the argument set carries nothing.
func (a Args) Empty() bool { return len(a.Pos) == 0 && len(a.KW) == 0 }

// Label renders the argument set as a stable human-readable string:
// positional values in order, then keyword pairs sorted by key.
func (a Args) Label() string {
	var parts []string
	for _, p := range a.Pos {
		parts = append(parts, formatArg(p))
	}
	keys := make([]string, 0, len(a.KW))
	for k := range a.KW {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, formatArg(a.KW[k])))
	}
	return strings.Join(parts, ", ")
}

func formatArg(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}

// Step is one construction instruction inside a GraphDef. A vertex step
// sets Name only; an edge step sets From and To.
type Step struct {
	Name string `yaml:"name,omitempty"`
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
	Args Args   `yaml:"args,omitempty"`
}

// IsVertex reports whether the step declares a vertex.
func (s Step) IsVertex() bool { return s.Name != "" && s.From == "" && s.To == "" }

// IsEdge reports whether the step declares an edge.
func (s Step) IsEdge() bool { return s.Name == "" && s.From != "" && s.To != "" }

func (s Step) validate() error {
	if s.IsVertex() || s.IsEdge() {
		return nil
	}
	return fmt.Errorf("query: step {name=%q from=%q to=%q}: %w",
		s.Name, s.From, s.To, ErrBadStep)
}

// VertexStep builds a vertex declaration.
func VertexStep(name string) Step { return Step{Name: name} }

// EdgeStep builds an edge declaration between two previously declared
// vertices.
func EdgeStep(from, to string) Step { return Step{From: from, To: to} }

// GraphDef is a declarative pattern description. Src and Snk name the
// intended entry and exit vertices; Steps build the pattern in order.
type GraphDef struct {
	Src   []string `yaml:"src,omitempty"`
	Snk   []string `yaml:"snk,omitempty"`
	Steps []Step   `yaml:"steps"`
}

// DefFromYAML decodes a GraphDef from YAML text and validates its
// steps.
func DefFromYAML(data []byte) (*GraphDef, error) {
	var def GraphDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("query: decode definition: %w", err)
	}
	for _, s := range def.Steps {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	return &def, nil
}

// buildConfig collects argument sets supplied at Build time, keyed by
// vertex name and by edge endpoints.
type buildConfig struct {
	vertexArgs map[string]Args
	edgeArgs   map[[2]string]Args
	dup        error
}

// BuildOption attaches argument labels during GraphDef.Build.
type BuildOption func(*buildConfig)

// WithVertexArgs attaches an argument set to a named pattern vertex.
// Supplying a second set for the same name fails the build with
// ErrDuplicateArgs.
func WithVertexArgs(name string, a Args) BuildOption {
	return func(c *buildConfig) {
		if _, ok := c.vertexArgs[name]; ok && c.dup == nil {
			c.dup = fmt.Errorf("query: vertex %q: %w", name, ErrDuplicateArgs)
			return
		}
		c.vertexArgs[name] = a
	}
}

// WithEdgeArgs attaches an argument set to a pattern edge.
func WithEdgeArgs(from, to string, a Args) BuildOption {
	return func(c *buildConfig) {
		k := [2]string{from, to}
		if _, ok := c.edgeArgs[k]; ok && c.dup == nil {
			c.dup = fmt.Errorf("query: edge %s->%s: %w", from, to, ErrDuplicateArgs)
			return
		}
		c.edgeArgs[k] = a
	}
}

// Build compiles the definition into a Pattern. Steps are
// create-or-reference: the first step naming a vertex (or edge pair)
// creates it, and later steps for the same element refer back to it, so
// concatenated definitions may repeat declarations freely. Each pattern
// vertex carries its name under the "id" property and its argument set
// under "args"; edges carry "args" alone. An element accepts at most
// one non-empty argument set across all of its steps and Build options;
// a second supply fails with ErrDuplicateArgs. The resulting pattern
// graph is read-only.
func (d *GraphDef) Build(opts ...BuildOption) (*Pattern, error) {
	cfg := buildConfig{
		vertexArgs: make(map[string]Args),
		edgeArgs:   make(map[[2]string]Args),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dup != nil {
		return nil, cfg.dup
	}

	g := core.NewGraph()
	names := make(map[string]int, len(d.Steps))
	var order []string
	vxArgsSet := make(map[string]bool)
	egArgsSet := make(map[[2]string]bool)

	for _, s := range d.Steps {
		if err := s.validate(); err != nil {
			return nil, err
		}
		switch {
		case s.IsVertex():
			v, exists := names[s.Name]
			if !exists {
				nv, err := g.AddVertex()
				if err != nil {
					return nil, fmt.Errorf("query: build vertex %q: %w", s.Name, err)
				}
				v = nv
				names[s.Name] = v
				order = append(order, s.Name)
				props, err := g.VertexProps(v)
				if err != nil {
					return nil, fmt.Errorf("query: build vertex %q: %w", s.Name, err)
				}
				props["id"] = s.Name
				props["args"] = Args{}
				if a, ok := cfg.vertexArgs[s.Name]; ok {
					props["args"] = a
					vxArgsSet[s.Name] = true
				}
			}
			if !s.Args.Empty() {
				if vxArgsSet[s.Name] {
					return nil, fmt.Errorf("query: vertex %q: %w", s.Name, ErrDuplicateArgs)
				}
				props, err := g.VertexProps(v)
				if err != nil {
					return nil, fmt.Errorf("query: build vertex %q: %w", s.Name, err)
				}
				props["args"] = s.Args
				vxArgsSet[s.Name] = true
			}
		case s.IsEdge():
			from, ok := names[s.From]
			if !ok {
				return nil, fmt.Errorf("query: edge source %q: %w", s.From, ErrUnknownName)
			}
			to, ok := names[s.To]
			if !ok {
				return nil, fmt.Errorf("query: edge target %q: %w", s.To, ErrUnknownName)
			}
			e := core.Edge{From: from, To: to}
			k := [2]string{s.From, s.To}
			if !g.HasEdge(e) {
				if _, err := g.AddEdge(from, to); err != nil {
					return nil, fmt.Errorf("query: build edge %s->%s: %w", s.From, s.To, err)
				}
				eprops, err := g.EdgeProps(e)
				if err != nil {
					return nil, fmt.Errorf("query: build edge %s->%s: %w", s.From, s.To, err)
				}
				eprops["args"] = Args{}
				if a, ok := cfg.edgeArgs[k]; ok {
					eprops["args"] = a
					egArgsSet[k] = true
				}
			}
			if !s.Args.Empty() {
				if egArgsSet[k] {
					return nil, fmt.Errorf("query: edge %s->%s: %w", s.From, s.To, ErrDuplicateArgs)
				}
				eprops, err := g.EdgeProps(e)
				if err != nil {
					return nil, fmt.Errorf("query: build edge %s->%s: %w", s.From, s.To, err)
				}
				eprops["args"] = s.Args
				egArgsSet[k] = true
			}
		}
	}

	ids := make(map[string]int, len(names))
	for name, v := range names {
		ids[name] = v
	}
	g.GraphProps()["ids"] = ids
	g.SetReadOnly(true)

	return &Pattern{g: g, names: names, order: order, def: d}, nil
}
