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

// Kind discriminates the variants of [Node]. The set of kinds is closed;
// a declaration using any other tag fails with [ErrBadDiscriminator].
type Kind string

const (
	KindNative                 Kind = "native"
	KindAlias                  Kind = "alias"
	KindArray                  Kind = "array"
	KindBitfield               Kind = "bitfield"
	KindBitflags               Kind = "bitflags"
	KindBuffer                 Kind = "buffer"
	KindContainer              Kind = "container"
	KindEntityMetadataLoop     Kind = "entityMetadataLoop"
	KindMapper                 Kind = "mapper"
	KindPstring                Kind = "pstring"
	KindSwitch                 Kind = "switch"
	KindOption                 Kind = "option"
	KindRegistryEntryHolder    Kind = "registryEntryHolder"
	KindRegistryEntryHolderSet Kind = "registryEntryHolderSet"
	KindEntityMetadataItem     Kind = "entityMetadataItem"
	KindCount                  Kind = "count"
	KindEncapsulated           Kind = "encapsulated"
	KindParticleData           Kind = "particleData"
)

// String implements [fmt.Stringer].
func (k Kind) String() string { return string(k) }
