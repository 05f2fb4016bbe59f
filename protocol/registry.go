// Copyright 2026 The minebase authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/py-mine/minebase/internal/refgraph"
)

const defaultMaxDepth = 200

// Registry is the name -> [Node] mapping for one protocol version. It is
// immutable once compiled; a new protocol version gets a new Registry.
type Registry struct {
	names []string
	nodes map[string]Node
}

// CompileOption is a configuration setting for [Compile] and [CompileJSON].
type CompileOption struct{ apply func(*compileOptions) }

type compileOptions struct {
	maxDepth  int
	checkRefs bool
}

// WithMaxDepth bounds how deeply a single declaration may nest. The default
// is 200, far beyond anything real data reaches; lower it when compiling
// untrusted input.
func WithMaxDepth(depth int) CompileOption {
	return CompileOption{func(o *compileOptions) { o.maxDepth = depth }}
}

// WithReferenceCheck runs [Registry.CheckReferences] as part of the
// compile, failing it on dangling targets or alias cycles.
func WithReferenceCheck() CompileOption {
	return CompileOption{func(o *compileOptions) { o.checkRefs = true }}
}

// Compile builds a Registry from a decoded type table. The first error
// aborts the whole compile; there is no per-entry partial success.
//
// Go maps carry no declaration order, so entries compile in sorted name
// order. Use [CompileJSON] when declaration order matters.
func Compile(types map[string]any, opts ...CompileOption) (*Registry, error) {
	return compile(slices.Sorted(maps.Keys(types)), types, opts)
}

// CompileJSON builds a Registry straight from the JSON encoding of a type
// table, preserving declaration order.
func CompileJSON(data []byte, opts ...CompileOption) (*Registry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("protocol: decode type table: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("protocol: type table must be a JSON object, got %v", tok)
	}

	var names []string
	raw := make(map[string]any)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("protocol: decode type table: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("protocol: decode type table: unexpected token %v", tok)
		}
		if _, dup := raw[name]; dup {
			return nil, fmt.Errorf("protocol: type %q declared twice", name)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("protocol: decode type %q: %w", name, err)
		}
		names = append(names, name)
		raw[name] = v
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("protocol: decode type table: %w", err)
	}

	return compile(names, raw, opts)
}

func compile(names []string, raw map[string]any, opts []CompileOption) (*Registry, error) {
	o := compileOptions{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if opt.apply != nil {
			opt.apply(&o)
		}
	}

	r := &Registry{names: names, nodes: make(map[string]Node, len(names))}
	for _, name := range names {
		p := &parser{typeName: name, maxDepth: o.maxDepth}
		n, err := p.parseNode("", raw[name])
		if err != nil {
			return nil, err
		}
		r.nodes[name] = n
	}

	if o.checkRefs {
		if err := r.CheckReferences(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Len returns the number of declared types.
func (r *Registry) Len() int { return len(r.names) }

// Names returns the declared type names in registry order.
func (r *Registry) Names() []string { return slices.Clone(r.names) }

// Get looks up a declared type by name.
func (r *Registry) Get(name string) (Node, bool) {
	n, ok := r.nodes[name]
	return n, ok
}

// All ranges over the declarations in registry order.
func (r *Registry) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, name := range r.names {
			if !yield(name, r.nodes[name]) {
				return
			}
		}
	}
}

// CheckReferences verifies the by-name references the compiler leaves
// unresolved: every alias target (including the inline alias-types of
// array, bitflags, buffer, mapper, pstring, count and encapsulated) must
// name a declared type, and chains of top-level aliases must not loop.
//
// Field references (compareTo, countFor) and $compareTo template
// substitution are the consumer's concern and are not checked.
func (r *Registry) CheckReferences() error {
	for _, name := range r.names {
		var dangling []string
		Walk(r.nodes[name], func(n Node) bool {
			if a, ok := n.(*Alias); ok {
				if _, declared := r.nodes[a.Target]; !declared {
					dangling = append(dangling, a.Target)
				}
			}
			return true
		})
		if len(dangling) > 0 {
			slices.Sort(dangling)
			return &NodeError{TypeName: name, Fields: slices.Compact(dangling), Err: ErrUnresolvedTarget}
		}
	}

	// A top-level entry that is itself an alias forms an edge to its
	// target; such chains must terminate at a non-alias declaration.
	aliasEdge := func(name string) iter.Seq[string] {
		return func(yield func(string) bool) {
			if a, ok := r.nodes[name].(*Alias); ok {
				yield(a.Target)
			}
		}
	}

	done := make(map[string]struct{})
	for _, name := range r.names {
		if _, ok := r.nodes[name].(*Alias); !ok {
			continue
		}
		if _, ok := done[name]; ok {
			continue
		}
		dag := refgraph.Sort(name, refgraph.Graph[string](aliasEdge))
		for comp := range dag.Topological() {
			for _, member := range comp.Members() {
				done[member] = struct{}{}
			}
			if comp.Cyclic() {
				members := slices.Clone(comp.Members())
				slices.Sort(members)
				return &NodeError{TypeName: name, Fields: members, Err: ErrAliasCycle}
			}
		}
	}
	return nil
}

// Walk visits n and every node it owns, parents before children. The walk
// stops early when visit returns false; Walk reports whether the walk ran
// to completion. By-name references are not followed.
func Walk(n Node, visit func(Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	switch t := n.(type) {
	case *Array:
		if t.CountType != nil && !Walk(t.CountType, visit) {
			return false
		}
		return Walk(t.Type, visit)
	case *Bitflags:
		return Walk(t.Type, visit)
	case *Buffer:
		if t.CountType != nil {
			return Walk(t.CountType, visit)
		}
	case *Container:
		for _, f := range t.Fields {
			if !Walk(f.Type, visit) {
				return false
			}
		}
	case *EntityMetadataLoop:
		return Walk(t.Type, visit)
	case *Mapper:
		return Walk(t.Type, visit)
	case *Pstring:
		return Walk(t.CountType, visit)
	case *Switch:
		for _, key := range slices.Sorted(maps.Keys(t.Fields)) {
			if !Walk(t.Fields[key], visit) {
				return false
			}
		}
		return Walk(t.Default, visit)
	case *Option:
		return Walk(t.Type, visit)
	case *RegistryEntryHolder:
		return Walk(t.Otherwise.Type, visit)
	case *RegistryEntryHolderSet:
		if !Walk(t.Base.Type, visit) {
			return false
		}
		return Walk(t.Otherwise.Type, visit)
	case *Count:
		return Walk(t.Type, visit)
	case *Encapsulated:
		if !Walk(t.LengthType, visit) {
			return false
		}
		return Walk(t.Type, visit)
	}
	return true
}
