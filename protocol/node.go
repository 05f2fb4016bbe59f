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

// Node is one validated unit of the protocol type IR. It is a closed sum
// over exactly the kinds listed in [Kind]; consumers are expected to switch
// exhaustively over the concrete pointer types.
//
// A Node owns every Node and [Field] nested inside it. Names held by
// [Alias].Target, [Encapsulated] and friends are weak references into the
// enclosing [Registry], never pointers into the tree, so mutually-referencing
// top-level declarations stay acyclic.
//
// Nodes are immutable once returned by [Compile] or [CompileJSON].
type Node interface {
	// Kind reports which variant this node is.
	Kind() Kind

	sealed()
}

// Native marks a primitive that cannot be described in terms of other
// protocol types; its wire behavior is supplied by the consumer.
type Native struct{}

// Alias stands for another top-level type, referenced by name
// (e.g. "optvarint": "varint"). The target is not resolved eagerly; see
// [Registry.CheckReferences].
type Alias struct {
	Target string
}

// Array is a repeated sequence of elements. The element count comes from
// exactly one of CountType (a length prefix read from the stream) or Count
// (a fixed literal, or the name of a sibling field holding the length).
type Array struct {
	CountType *Alias
	Count     *string
	Type      Node
}

// BitfieldField is one named bit slice of a packed [Bitfield].
type BitfieldField struct {
	Name   string
	Size   int
	Signed bool
}

// Bitfield splits a single integer into ordered, fixed-width named slices,
// such as a block position packed as 26/12/26 bits of x/y/z.
type Bitfield struct {
	Fields []BitfieldField
}

// Bitflags is a set of named boolean flags packed into an integer of the
// width given by Type.
//
// Exactly one of Names or Masks is set. Names is the sequential form, where
// position i occupies bit i; Masks gives each flag an explicit bitmask.
// Big mirrors the raw "big" marker emitted for JavaScript bigint handling;
// it carries no structural meaning here.
type Bitflags struct {
	Type  *Alias
	Names []string
	Masks map[string]uint64
	Big   bool
}

// Buffer is an opaque run of bytes, sized by exactly one of CountType
// (a length prefix) or Count (a fixed byte length).
type Buffer struct {
	CountType *Alias
	Count     *int
}

// Container is an ordered composite of sub-fields, analogous to a struct.
// Field order is the serialization order.
type Container struct {
	Fields []Field
}

// EntityMetadataLoop reads elements of Type repeatedly until the sentinel
// byte EndVal is seen.
type EntityMetadataLoop struct {
	EndVal int
	Type   Node
}

// Mapper is a data-defined enumeration: an integer read as Type, resolved
// through Mappings to a symbolic name. Keys are the string form of the code,
// usually decimal but occasionally hex-prefixed ("0x8E").
type Mapper struct {
	Type     *Alias
	Mappings map[string]string
}

// Pstring is a length-prefixed string. The prefix is read as CountType;
// Encoding is the text encoding name, with "" meaning UTF-8.
type Pstring struct {
	CountType *Alias
	Encoding  string
}

// Switch selects one of several types based on the runtime value of the
// sibling field named CompareTo. Branch keys are the string form of that
// field's possible values, preserved verbatim. Default, when non-nil, is
// used when no branch matches.
type Switch struct {
	CompareTo string
	Fields    map[string]Node
	Default   Node
}

// Option wraps a type whose presence is signaled by an implicit flag
// preceding it on the wire.
type Option struct {
	Type Node
}

// RegistryEntryHolder is a value that is either a single reference-like
// field named BaseName, or the inline structure described by Otherwise.
type RegistryEntryHolder struct {
	BaseName  string
	Otherwise Field
}

// RegistryEntryHolderSet is a two-variant value with both alternatives
// spelled out as named fields.
type RegistryEntryHolderSet struct {
	Base      Field
	Otherwise Field
}

// EntityMetadataItem refers to the shared top-level entityMetadataItem
// switch template, binding its $compareTo placeholder to the sibling field
// named CompareTo. The substitution itself is performed by the consumer,
// not here.
type EntityMetadataItem struct {
	CompareTo string
}

// Count is the inverse of an array length prefix: an integer of Type whose
// value is the element count of the sibling field named CountFor.
type Count struct {
	Type     *Alias
	CountFor string
}

// Encapsulated frames another named type behind a byte-length prefix read
// as LengthType. Both positions are references by name, not inline nodes.
type Encapsulated struct {
	LengthType *Alias
	Type       *Alias
}

// ParticleData refers to the shared top-level particleData switch template,
// in the same way as [EntityMetadataItem].
type ParticleData struct {
	CompareTo string
}

func (*Native) Kind() Kind                 { return KindNative }
func (*Alias) Kind() Kind                  { return KindAlias }
func (*Array) Kind() Kind                  { return KindArray }
func (*Bitfield) Kind() Kind               { return KindBitfield }
func (*Bitflags) Kind() Kind               { return KindBitflags }
func (*Buffer) Kind() Kind                 { return KindBuffer }
func (*Container) Kind() Kind              { return KindContainer }
func (*EntityMetadataLoop) Kind() Kind     { return KindEntityMetadataLoop }
func (*Mapper) Kind() Kind                 { return KindMapper }
func (*Pstring) Kind() Kind                { return KindPstring }
func (*Switch) Kind() Kind                 { return KindSwitch }
func (*Option) Kind() Kind                 { return KindOption }
func (*RegistryEntryHolder) Kind() Kind    { return KindRegistryEntryHolder }
func (*RegistryEntryHolderSet) Kind() Kind { return KindRegistryEntryHolderSet }
func (*EntityMetadataItem) Kind() Kind     { return KindEntityMetadataItem }
func (*Count) Kind() Kind                  { return KindCount }
func (*Encapsulated) Kind() Kind           { return KindEncapsulated }
func (*ParticleData) Kind() Kind           { return KindParticleData }

func (*Native) sealed()                 {}
func (*Alias) sealed()                  {}
func (*Array) sealed()                  {}
func (*Bitfield) sealed()               {}
func (*Bitflags) sealed()               {}
func (*Buffer) sealed()                 {}
func (*Container) sealed()              {}
func (*EntityMetadataLoop) sealed()     {}
func (*Mapper) sealed()                 {}
func (*Pstring) sealed()                {}
func (*Switch) sealed()                 {}
func (*Option) sealed()                 {}
func (*RegistryEntryHolder) sealed()    {}
func (*RegistryEntryHolderSet) sealed() {}
func (*EntityMetadataItem) sealed()     {}
func (*Count) sealed()                  {}
func (*Encapsulated) sealed()           {}
func (*ParticleData) sealed()           {}
