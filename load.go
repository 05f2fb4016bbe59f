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
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/py-mine/minebase/protocol"
)

// manifestFile sits at the root of the minecraft-data data directory.
const manifestFile = "dataPaths.json"

// yamlSections are manifest sections stored as YAML rather than JSON;
// they are skipped, matching the upstream loaders.
var yamlSections = map[string]struct{}{
	"proto": {},
	"types": {},
}

// Loader reads minecraft-data from a filesystem rooted at its "data"
// directory. The zero cost of an [fs.FS] keeps the loader equally usable
// over a checkout on disk, an embedded copy, or a test fixture.
type Loader struct {
	fsys        fs.FS
	log         zerolog.Logger
	compileOpts []protocol.CompileOption
}

// LoadOption is a configuration setting for [NewLoader].
type LoadOption struct{ apply func(*Loader) }

// WithLogger routes the loader's progress and skip notices to log. The
// default discards them.
func WithLogger(log zerolog.Logger) LoadOption {
	return LoadOption{func(l *Loader) { l.log = log }}
}

// WithCompileOptions forwards options to the protocol type-table compile,
// such as [protocol.WithReferenceCheck].
func WithCompileOptions(opts ...protocol.CompileOption) LoadOption {
	return LoadOption{func(l *Loader) { l.compileOpts = opts }}
}

// NewLoader wraps a filesystem rooted at the minecraft-data data directory.
func NewLoader(fsys fs.FS, opts ...LoadOption) *Loader {
	l := &Loader{fsys: fsys, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt.apply != nil {
			opt.apply(l)
		}
	}
	return l
}

// Data is everything loaded for one game version.
type Data struct {
	Edition Edition
	Name    string

	// Version is the decoded, validated version record.
	Version VersionData

	// Protocol is the compiled protocol type table, or nil when the
	// version declares no protocol section.
	Protocol *protocol.Registry

	// Sections holds the remaining sections raw, keyed by section name
	// ("blocks", "items", ...). The flat per-section records are bounded
	// field tables; their validation lives with their consumers.
	Sections map[string]json.RawMessage
}

// DataPaths loads the manifest.
func (l *Loader) DataPaths() (*DataPaths, error) {
	raw, err := fs.ReadFile(l.fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("minebase: read manifest: %w", err)
	}
	var dp DataPaths
	if err := decodeStrict(raw, &dp); err != nil {
		return nil, fmt.Errorf("minebase: decode manifest: %w", err)
	}
	return &dp, nil
}

// CommonData loads the edition-wide files from <edition>/common.
func (l *Loader) CommonData(ed Edition) (*CommonData, error) {
	if !ed.Valid() {
		return nil, fmt.Errorf("minebase: unknown edition %q", ed)
	}
	dir := path.Join(string(ed), "common")
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("minebase: read common data for %s: %w", ed, err)
	}

	common := &CommonData{Files: make(map[string]json.RawMessage, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			return nil, fmt.Errorf("minebase: unexpected entry in %s: %s", dir, entry.Name())
		}
		raw, err := fs.ReadFile(l.fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("minebase: read common data for %s: %w", ed, err)
		}
		stem := strings.TrimSuffix(entry.Name(), ".json")
		common.Files[stem] = raw

		if stem == "versions" {
			if err := json.Unmarshal(raw, &common.Versions); err != nil {
				return nil, fmt.Errorf("minebase: decode common versions for %s: %w", ed, err)
			}
		}
	}
	return common, nil
}

// SupportedVersions returns the loadable versions of an edition in release
// order, verifying each one has a manifest entry.
func (l *Loader) SupportedVersions(ed Edition) ([]string, error) {
	common, err := l.CommonData(ed)
	if err != nil {
		return nil, err
	}
	dp, err := l.DataPaths()
	if err != nil {
		return nil, err
	}
	manifest, err := dp.edition(ed)
	if err != nil {
		return nil, err
	}
	for _, version := range common.Versions {
		if _, ok := manifest[version]; !ok {
			return nil, fmt.Errorf("minebase: data integrity error: version %q is in common data but has no manifest entry", version)
		}
	}
	return common.Versions, nil
}

// LoadVersion assembles one version from its manifest sections. The load
// is all-or-nothing: the first missing or invalid section fails it.
func (l *Loader) LoadVersion(ed Edition, version string) (*Data, error) {
	dp, err := l.DataPaths()
	if err != nil {
		return nil, err
	}
	sections, err := dp.Version(ed, version)
	if err != nil {
		return nil, err
	}
	if _, ok := sections["version"]; !ok {
		return nil, fmt.Errorf("minebase: version %s/%s has no version section", ed, version)
	}

	data := &Data{
		Edition:  ed,
		Name:     version,
		Sections: make(map[string]json.RawMessage, len(sections)),
	}
	for _, section := range slices.Sorted(maps.Keys(sections)) {
		if _, yaml := yamlSections[section]; yaml {
			l.log.Debug().Str("section", section).Msg("skipping yaml section")
			continue
		}

		file := path.Join(sections[section], section+".json")
		raw, err := fs.ReadFile(l.fsys, file)
		if err != nil {
			return nil, fmt.Errorf("minebase: load %q for %s/%s: %w", section, ed, version, err)
		}

		switch section {
		case "version":
			if err := decodeStrict(raw, &data.Version); err != nil {
				return nil, fmt.Errorf("minebase: decode version record for %s/%s: %w", ed, version, err)
			}
			if err := data.Version.Validate(); err != nil {
				return nil, fmt.Errorf("minebase: %s/%s: %w", ed, version, err)
			}
		case "protocol":
			reg, err := l.compileProtocol(raw)
			if err != nil {
				return nil, fmt.Errorf("minebase: %s/%s: %w", ed, version, err)
			}
			data.Protocol = reg
		default:
			data.Sections[section] = raw
		}
		l.log.Debug().Str("section", section).Str("file", file).Msg("loaded section")
	}

	event := l.log.Info().
		Stringer("edition", ed).
		Str("version", version).
		Int("sections", len(data.Sections))
	if data.Protocol != nil {
		event = event.Int("protocol_types", data.Protocol.Len())
	}
	event.Msg("loaded version")

	return data, nil
}

// compileProtocol compiles the "types" table of a protocol.json document.
func (l *Loader) compileProtocol(raw []byte) (*protocol.Registry, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode protocol document: %w", err)
	}
	types, ok := doc["types"]
	if !ok {
		return nil, fmt.Errorf("protocol document has no types table")
	}
	return protocol.CompileJSON(types, l.compileOpts...)
}

// decodeStrict decodes JSON while rejecting fields the target does not
// declare, matching the strictness of the flat record models upstream.
func decodeStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
