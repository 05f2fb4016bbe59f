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

import "fmt"

// validate enforces the cross-field invariants of a fully constructed node.
// By the time a node reaches here its children have already passed, so a
// failure always names the outermost violated position.
func (p *parser) validate(path string, n Node) error {
	switch t := n.(type) {
	case *Array:
		return p.validateCountSource(path, KindArray, t.CountType != nil, t.Count != nil)

	case *Buffer:
		return p.validateCountSource(path, KindBuffer, t.CountType != nil, t.Count != nil)

	case *Bitfield:
		if len(t.Fields) == 0 {
			return p.fail(path, KindBitfield, ErrEmptyCollection, "fields")
		}
		for _, f := range t.Fields {
			if f.Size <= 0 {
				return p.fail(path, KindBitfield, fmt.Errorf("%w: bit width of %q must be positive, got %d", ErrBadValue, f.Name, f.Size), "size")
			}
		}

	case *Container:
		// Duplicate named fields would make the container ambiguous to
		// consume, even though current data never exhibits them.
		seen := make(map[string]struct{}, len(t.Fields))
		for _, f := range t.Fields {
			if f.Anon {
				continue
			}
			if _, dup := seen[f.Name]; dup {
				return p.fail(path, KindContainer, ErrDuplicateField, f.Name)
			}
			seen[f.Name] = struct{}{}
		}

	case *Switch:
		// With no branches and no default the switch can never select a
		// type.
		if len(t.Fields) == 0 && t.Default == nil {
			return p.fail(path, KindSwitch, ErrEmptyCollection, "fields")
		}
	}
	return nil
}

// validateCountSource checks the count/countType exclusive-or shared by
// array and buffer.
func (p *parser) validateCountSource(path string, kind Kind, hasCountType, hasCount bool) error {
	switch {
	case hasCountType && hasCount:
		return p.fail(path, kind, ErrExclusiveFields, "count", "countType")
	case !hasCountType && !hasCount:
		return p.fail(path, kind, ErrMissingField, "count", "countType")
	}
	return nil
}
