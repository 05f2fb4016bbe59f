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

package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-mine/minebase/protocol"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	reg, err := protocol.Compile(map[string]any{
		"varint":    "native",
		"optvarint": "varint",
		"position":  []any{"bitfield", []any{map[string]any{"name": "x", "size": float64(26), "signed": true}}},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"optvarint", "position", "varint"}, reg.Names())

	n, ok := reg.Get("optvarint")
	require.True(t, ok)
	assert.Equal(t, "varint", n.(*protocol.Alias).Target)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestCompileFailsWhole(t *testing.T) {
	t.Parallel()

	// One bad entry invalidates the whole table; there is no partial
	// registry to observe.
	_, err := protocol.Compile(map[string]any{
		"good": "native",
		"bad":  []any{"buffer", map[string]any{}},
	})
	require.ErrorIs(t, err, protocol.ErrMissingField)

	var nodeErr *protocol.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "bad", nodeErr.TypeName)
}

func TestCompileJSONPreservesOrder(t *testing.T) {
	t.Parallel()

	reg, err := protocol.CompileJSON([]byte(`{
		"varint": "native",
		"string": ["pstring", {"countType": "varint"}],
		"slot": ["container", [{"name": "present", "type": "bool"}]],
		"bool": "native"
	}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"varint", "string", "slot", "bool"}, reg.Names())

	var seen []string
	for name := range reg.All() {
		seen = append(seen, name)
	}
	assert.Equal(t, reg.Names(), seen)
}

func TestCompileJSONRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := protocol.CompileJSON([]byte(`["not", "an", "object"]`))
	require.Error(t, err)

	_, err = protocol.CompileJSON([]byte(`{"a": "native", "a": "native"}`))
	require.ErrorContains(t, err, "declared twice")
}

func TestCheckReferences(t *testing.T) {
	t.Parallel()

	t.Run("resolved", func(t *testing.T) {
		t.Parallel()
		_, err := protocol.Compile(map[string]any{
			"varint": "native",
			"i32":    "native",
			"chunk":  []any{"array", map[string]any{"countType": "varint", "type": "i32"}},
		}, protocol.WithReferenceCheck())
		require.NoError(t, err)
	})

	t.Run("dangling-target", func(t *testing.T) {
		t.Parallel()
		_, err := protocol.Compile(map[string]any{
			"chunk": []any{"array", map[string]any{"countType": "varint", "type": "i32"}},
		}, protocol.WithReferenceCheck())
		require.ErrorIs(t, err, protocol.ErrUnresolvedTarget)

		var nodeErr *protocol.NodeError
		require.ErrorAs(t, err, &nodeErr)
		assert.Equal(t, []string{"i32", "varint"}, nodeErr.Fields)
	})

	t.Run("alias-cycle", func(t *testing.T) {
		t.Parallel()
		_, err := protocol.Compile(map[string]any{
			"a": "b",
			"b": "c",
			"c": "a",
		}, protocol.WithReferenceCheck())
		require.ErrorIs(t, err, protocol.ErrAliasCycle)

		var nodeErr *protocol.NodeError
		require.ErrorAs(t, err, &nodeErr)
		assert.Equal(t, []string{"a", "b", "c"}, nodeErr.Fields)
	})

	t.Run("self-alias", func(t *testing.T) {
		t.Parallel()
		_, err := protocol.Compile(map[string]any{
			"me": "me",
		}, protocol.WithReferenceCheck())
		require.ErrorIs(t, err, protocol.ErrAliasCycle)
	})

	t.Run("forward-reference", func(t *testing.T) {
		t.Parallel()
		// Mutual by-name references between declarations are fine; only
		// pure alias loops are rejected.
		reg, err := protocol.CompileJSON([]byte(`{
			"node": ["container", [
				{"name": "value", "type": "varint"},
				{"name": "children", "type": ["array", {"countType": "varint", "type": "node"}]}
			]],
			"varint": "native"
		}`), protocol.WithReferenceCheck())
		require.NoError(t, err)
		assert.Equal(t, 2, reg.Len())
	})
}

func TestCompileMaxDepth(t *testing.T) {
	t.Parallel()

	// options nested 10 deep
	raw := any("varint")
	for range 10 {
		raw = []any{"option", raw}
	}

	_, err := protocol.Compile(map[string]any{"deep": raw})
	require.NoError(t, err)

	_, err = protocol.Compile(map[string]any{"deep": raw}, protocol.WithMaxDepth(5))
	require.ErrorIs(t, err, protocol.ErrDepthExceeded)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	reg, err := protocol.Compile(map[string]any{
		"slot": []any{"container", []any{
			map[string]any{"name": "present", "type": "bool"},
			map[string]any{"name": "item", "type": []any{"option", []any{"encapsulated", map[string]any{"lengthType": "varint", "type": "ItemExtra"}}}},
		}},
	})
	require.NoError(t, err)

	n, ok := reg.Get("slot")
	require.True(t, ok)

	var kinds []protocol.Kind
	protocol.Walk(n, func(n protocol.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Equal(t, []protocol.Kind{
		protocol.KindContainer,
		protocol.KindAlias, // bool
		protocol.KindOption,
		protocol.KindEncapsulated,
		protocol.KindAlias, // varint
		protocol.KindAlias, // ItemExtra
	}, kinds)

	// Early stop.
	count := 0
	done := protocol.Walk(n, func(protocol.Node) bool {
		count++
		return count < 2
	})
	assert.False(t, done)
	assert.Equal(t, 2, count)
}
