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

// Package protocol models the declarative type descriptions embedded in
// minecraft-data protocol files: a small IR for binary packet layouts,
// expressed in loosely-typed JSON and normalized here into a strict
// 17-variant tagged representation.
//
// Raw declarations come in three shapes, unified by [Normalize]: the
// literal "native", a bare type name acting as an alias, or a two-element
// [kind, data] pair. [Compile] (or [CompileJSON], which keeps declaration
// order) turns a whole type table into an immutable [Registry] of validated
// [Node] trees, checking each variant's structural invariants along the
// way: count/countType exclusivity, bitfield widths, container field
// uniqueness, switch completeness. Compilation is all-or-nothing; any
// structural error fails the whole table.
//
// This package only validates the shape of the IR. Encoding or decoding
// actual packet bytes against it, and resolving $compareTo switch
// templates, are the consumer's business.
package protocol
