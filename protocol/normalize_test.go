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

	"github.com/py-mine/minebase/protocol"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want any
	}{
		{
			name: "native-literal",
			in:   "native",
			want: map[string]any{"kind": "native"},
		},
		{
			name: "bare-string-aliases",
			in:   "varint",
			want: map[string]any{"kind": "alias", "target": "varint"},
		},
		{
			name: "pair-becomes-kind-data",
			in:   []any{"array", map[string]any{"countType": "varint", "type": "i32"}},
			want: map[string]any{"kind": "array", "data": map[string]any{"countType": "varint", "type": "i32"}},
		},
		{
			name: "pair-with-list-data",
			in:   []any{"bitfield", []any{map[string]any{"name": "x", "size": 26, "signed": true}}},
			want: map[string]any{"kind": "bitfield", "data": []any{map[string]any{"name": "x", "size": 26, "signed": true}}},
		},
		{
			name: "one-element-list-passes-through",
			in:   []any{"varint"},
			want: []any{"varint"},
		},
		{
			name: "three-element-list-passes-through",
			in:   []any{"a", "b", "c"},
			want: []any{"a", "b", "c"},
		},
		{
			name: "number-passes-through",
			in:   float64(42),
			want: float64(42),
		},
		{
			name: "nil-passes-through",
			in:   nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, protocol.Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	// A canonical record is a map: it matches none of the raw shapes and
	// must come back unchanged.
	canonical := map[string]any{"kind": "alias", "target": "varint"}
	assert.Equal(t, canonical, protocol.Normalize(canonical))
	assert.Equal(t, canonical, protocol.Normalize(protocol.Normalize("varint")))
}
