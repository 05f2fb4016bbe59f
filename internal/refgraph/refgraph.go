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

// Package refgraph condenses a directed graph of by-name type references
// into its DAG of strongly connected components, using Tarjan's algorithm.
// The reference checker uses it to report alias chains that loop back on
// themselves.
package refgraph

import (
	"iter"
	"slices"
)

// Graph is a "local" view of a directed graph: the outgoing edges
// (references) from some node.
type Graph[Node comparable] func(Node) iter.Seq[Node]

// DAG is the condensation of the graph reachable from the root passed to
// [Sort].
type DAG[Node comparable] struct {
	keys       map[Node]int // index of the component holding each node
	components []Component[Node]
}

// Component is one strongly connected component.
type Component[Node comparable] struct {
	dag      *DAG[Node]
	index    int
	members  []Node
	deps     []int
	selfEdge bool
}

// Sort condenses the graph reachable from root.
//
// Components come out in topological order: every component appears after
// all components it depends on.
func Sort[Node comparable](root Node, graph Graph[Node]) *DAG[Node] {
	out := &DAG[Node]{keys: make(map[Node]int)}
	s := &sorter[Node]{
		graph: graph,
		dag:   out,
		state: make(map[Node]*nodeState),
	}
	s.visit(root)
	return out
}

// ForNode returns the component holding node, or nil if node was not
// reachable from the root.
func (d *DAG[Node]) ForNode(node Node) *Component[Node] {
	idx, ok := d.keys[node]
	if !ok {
		return nil
	}
	return &d.components[idx]
}

// Topological ranges over the components, dependencies first.
func (d *DAG[Node]) Topological() iter.Seq[*Component[Node]] {
	return func(yield func(*Component[Node]) bool) {
		for i := range d.components {
			if !yield(&d.components[i]) {
				return
			}
		}
	}
}

// Members returns the nodes of this component.
func (c *Component[Node]) Members() []Node { return c.members }

// Index returns this component's position in topological order.
func (c *Component[Node]) Index() int { return c.index }

// Cyclic reports whether the component contains a cycle: either multiple
// mutually reachable nodes, or a single node referencing itself.
func (c *Component[Node]) Cyclic() bool {
	return len(c.members) > 1 || c.selfEdge
}

// Deps ranges over the components this component directly depends on.
func (c *Component[Node]) Deps() iter.Seq[*Component[Node]] {
	return func(yield func(*Component[Node]) bool) {
		for _, i := range c.deps {
			if !yield(&c.dag.components[i]) {
				return
			}
		}
	}
}

// sorter holds the state of Tarjan's recursive algorithm.
//
// See https://en.wikipedia.org/wiki/Tarjan%27s_strongly_connected_components_algorithm
type sorter[Node comparable] struct {
	graph Graph[Node]
	dag   *DAG[Node]

	next  int
	stack []Node
	state map[Node]*nodeState
}

type nodeState struct {
	index, low int
	onStack    bool
}

func (s *sorter[Node]) visit(node Node) *nodeState {
	st := &nodeState{index: s.next, low: s.next, onStack: true}
	s.state[node] = st
	s.next++

	base := len(s.stack)
	s.stack = append(s.stack, node)

	for dep := range s.graph(node) {
		m, ok := s.state[dep]
		if !ok {
			m = s.visit(dep)
			st.low = min(st.low, m.low)
			continue
		}
		if m.onStack {
			st.low = min(st.low, m.index)
		}
	}

	if st.index != st.low {
		return st
	}

	// node is the root of a new component: everything stacked above it is
	// mutually reachable with it.
	comp := Component[Node]{
		dag:     s.dag,
		index:   len(s.dag.components),
		members: slices.Clone(s.stack[base:]),
	}
	s.stack = s.stack[:base]

	depset := make(map[int]struct{})
	for _, member := range comp.members {
		s.state[member].onStack = false
		s.dag.keys[member] = comp.index

		for dep := range s.graph(member) {
			if dep == member {
				comp.selfEdge = true
			}
			if idx, ok := s.dag.keys[dep]; ok && idx < comp.index {
				depset[idx] = struct{}{}
			}
		}
	}
	for idx := range depset {
		comp.deps = append(comp.deps, idx)
	}
	slices.Sort(comp.deps)

	s.dag.components = append(s.dag.components, comp)
	return st
}
