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

import "fmt"

// Edition is one of the minecraft-data game editions. The value doubles as
// the edition's directory name inside the data tree.
type Edition string

const (
	EditionPC      Edition = "pc"
	EditionBedrock Edition = "bedrock"
)

// Valid reports whether e names a known edition.
func (e Edition) Valid() bool {
	return e == EditionPC || e == EditionBedrock
}

// String implements [fmt.Stringer].
func (e Edition) String() string { return string(e) }

// ParseEdition converts an edition name, accepting exactly the directory
// names used by minecraft-data.
func ParseEdition(s string) (Edition, error) {
	e := Edition(s)
	if !e.Valid() {
		return "", fmt.Errorf("minebase: unknown edition %q", s)
	}
	return e, nil
}
