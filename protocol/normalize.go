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

// Normalize converts the heterogeneous raw encodings of a protocol type
// reference into the canonical {kind, ...} record shape:
//
//   - the literal string "native" becomes {kind: "native"}
//   - any other string s becomes {kind: "alias", target: s}
//   - a two-element sequence [k, d] becomes {kind: k, data: d}
//
// Anything else is returned unchanged, so that the variant parser can fail
// with a message naming the exact position instead of an error raised here
// without context. Normalize is idempotent: a canonical record is a map and
// matches none of the three raw shapes.
func Normalize(v any) any {
	if v == "native" {
		return map[string]any{"kind": string(KindNative)}
	}

	// Any other bare string aliases a top-level type by name.
	if s, ok := v.(string); ok {
		return map[string]any{"kind": string(KindAlias), "target": s}
	}

	if pair, ok := v.([]any); ok && len(pair) == 2 {
		return map[string]any{"kind": pair[0], "data": pair[1]}
	}

	return v
}
