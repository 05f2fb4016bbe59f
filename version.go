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
	"regexp"
)

// Version naming as used throughout minecraft-data: releases like 1.20.4
// or 1.7.10-pre4, and snapshots like 23w31a.
var (
	minecraftVersionRE = regexp.MustCompile(`([0-9]+\.[0-9]+(\.[0-9]+)?[a-z]?(-pre[0-9]+)?)|([0-9]{2}w[0-9]{2}[a-z])`)
	majorVersionRE     = regexp.MustCompile(`[0-9]+\.[0-9]+[a-z]?`)
)

// VersionData is the version.json record of one loaded game version.
type VersionData struct {
	// Version is the protocol version number.
	Version          int    `json:"version"`
	MinecraftVersion string `json:"minecraftVersion"`
	MajorVersion     string `json:"majorVersion"`
	// ReleaseType is "release" or "snapshot" when present.
	ReleaseType string `json:"releaseType,omitempty"`
}

// Validate checks the record against the upstream version naming scheme.
func (v *VersionData) Validate() error {
	if !minecraftVersionRE.MatchString(v.MinecraftVersion) {
		return fmt.Errorf("minebase: minecraftVersion %q does not match the version naming scheme", v.MinecraftVersion)
	}
	if !majorVersionRE.MatchString(v.MajorVersion) {
		return fmt.Errorf("minebase: majorVersion %q does not match the version naming scheme", v.MajorVersion)
	}
	switch v.ReleaseType {
	case "", "release", "snapshot":
	default:
		return fmt.Errorf("minebase: unknown releaseType %q", v.ReleaseType)
	}
	return nil
}
