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

package minebase

import "encoding/json"

// CommonData holds the edition-wide files from <edition>/common, shared by
// every version of that edition.
type CommonData struct {
	// Versions lists the edition's game versions in release order.
	Versions []string

	// Files holds every common file's raw content, keyed by file stem
	// ("versions", "protocolVersions", ...).
	Files map[string]json.RawMessage
}
