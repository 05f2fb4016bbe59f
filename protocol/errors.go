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
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes for [NodeError]; match with [errors.Is].
var (
	// ErrBadShape reports a raw value that is neither "native", another
	// string, a two-element sequence, nor a canonical record.
	ErrBadShape = errors.New("unrecognized raw shape")

	// ErrBadDiscriminator reports a kind tag outside the closed variant set.
	ErrBadDiscriminator = errors.New("unknown kind")

	// ErrMissingField reports a required key absent from a declaration.
	ErrMissingField = errors.New("missing required field")

	// ErrUnexpectedField reports a key the variant does not declare.
	ErrUnexpectedField = errors.New("unexpected field")

	// ErrExclusiveFields reports that both members of an exclusive-or pair
	// were given.
	ErrExclusiveFields = errors.New("mutually exclusive fields")

	// ErrEmptyCollection reports a collection that must not be empty.
	ErrEmptyCollection = errors.New("must not be empty")

	// ErrDuplicateField reports a repeated named field inside a container.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrBadValue reports a field whose value has the wrong type or range.
	ErrBadValue = errors.New("malformed value")

	// ErrDepthExceeded reports declarations nested beyond the compile
	// option limit; see [WithMaxDepth].
	ErrDepthExceeded = errors.New("nesting depth exceeded")

	// ErrUnresolvedTarget reports a by-name reference that does not resolve
	// against the registry. Only produced by [Registry.CheckReferences].
	ErrUnresolvedTarget = errors.New("unresolved type reference")

	// ErrAliasCycle reports a cycle of top-level aliases. Only produced by
	// [Registry.CheckReferences].
	ErrAliasCycle = errors.New("alias cycle")
)

// NodeError is a structural failure at one position of a protocol type
// declaration. It pinpoints the failing JSON location: the top-level entry
// being compiled, the dotted path inside its declaration, the variant kind
// at that position when known, and the offending field name(s).
type NodeError struct {
	TypeName string
	Path     string
	Kind     Kind
	Fields   []string
	Err      error
}

// Error implements [error].
func (e *NodeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "protocol: %q", e.TypeName)
	if e.Path != "" {
		fmt.Fprintf(&b, ": at %s", e.Path)
	}
	if e.Kind != "" {
		fmt.Fprintf(&b, ": kind %q", e.Kind)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	if len(e.Fields) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(e.Fields, ", "))
	}
	return b.String()
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *NodeError) Unwrap() error { return e.Err }
