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

import (
	"fmt"
	"maps"
	"slices"
)

// DataPaths is the dataPaths.json manifest: per edition, a mapping from
// game version to the sections available for it, each with the directory
// (relative to the data root) that holds the section's file.
type DataPaths struct {
	PC      map[string]map[string]string `json:"pc"`
	Bedrock map[string]map[string]string `json:"bedrock"`
}

func (d *DataPaths) edition(ed Edition) (map[string]map[string]string, error) {
	switch ed {
	case EditionPC:
		return d.PC, nil
	case EditionBedrock:
		return d.Bedrock, nil
	default:
		return nil, fmt.Errorf("minebase: unknown edition %q", ed)
	}
}

// Version returns the section -> directory mapping for one game version.
func (d *DataPaths) Version(ed Edition, version string) (map[string]string, error) {
	versions, err := d.edition(ed)
	if err != nil {
		return nil, err
	}
	sections, ok := versions[version]
	if !ok {
		return nil, fmt.Errorf("minebase: version %q doesn't exist for edition %s", version, ed)
	}
	return sections, nil
}

// Versions returns the manifest's version names for an edition, sorted.
// The manifest itself carries no release order; see
// [Loader.SupportedVersions] for the release-ordered list.
func (d *DataPaths) Versions(ed Edition) ([]string, error) {
	versions, err := d.edition(ed)
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(versions)), nil
}
