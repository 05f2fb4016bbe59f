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

// Field is one entry of a [Container], or a named alternative inside
// [RegistryEntryHolder] and [RegistryEntryHolderSet].
//
// A field is either named or anonymous, discriminated by the raw "anon"
// marker, which defaults to false when absent. Name is non-empty exactly
// when Anon is false; the parser rejects everything else.
type Field struct {
	Name string
	Anon bool
	Type Node
}
