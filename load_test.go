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

package minebase_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-mine/minebase"
	"github.com/py-mine/minebase/protocol"
)

// fixture is a minimal minecraft-data tree with one pc version.
func fixture() fstest.MapFS {
	return fstest.MapFS{
		"dataPaths.json": &fstest.MapFile{Data: []byte(`{
			"pc": {
				"1.20.4": {
					"version": "pc/1.20.4",
					"protocol": "pc/1.20.4",
					"blocks": "pc/1.20.4",
					"proto": "pc/1.20.4"
				}
			},
			"bedrock": {}
		}`)},
		"pc/1.20.4/version.json": &fstest.MapFile{Data: []byte(`{
			"version": 765,
			"minecraftVersion": "1.20.4",
			"majorVersion": "1.20",
			"releaseType": "release"
		}`)},
		"pc/1.20.4/protocol.json": &fstest.MapFile{Data: []byte(`{
			"types": {
				"varint": "native",
				"string": ["pstring", {"countType": "varint"}]
			},
			"play": {}
		}`)},
		"pc/1.20.4/blocks.json": &fstest.MapFile{Data: []byte(`[]`)},
		"pc/common/versions.json": &fstest.MapFile{Data: []byte(`["1.20.4"]`)},
	}
}

func TestLoadVersion(t *testing.T) {
	t.Parallel()

	loader := minebase.NewLoader(fixture())
	data, err := loader.LoadVersion(minebase.EditionPC, "1.20.4")
	require.NoError(t, err)

	assert.Equal(t, minebase.EditionPC, data.Edition)
	assert.Equal(t, "1.20.4", data.Name)
	assert.Equal(t, 765, data.Version.Version)
	assert.Equal(t, "1.20.4", data.Version.MinecraftVersion)

	require.NotNil(t, data.Protocol)
	assert.Equal(t, 2, data.Protocol.Len())
	n, ok := data.Protocol.Get("string")
	require.True(t, ok)
	assert.Equal(t, protocol.KindPstring, n.Kind())

	// blocks stays raw; the yaml-encoded proto section is skipped.
	assert.Contains(t, data.Sections, "blocks")
	assert.NotContains(t, data.Sections, "proto")
	assert.NotContains(t, data.Sections, "version")
}

func TestLoadVersionUnknown(t *testing.T) {
	t.Parallel()

	loader := minebase.NewLoader(fixture())

	_, err := loader.LoadVersion(minebase.EditionPC, "0.0.0")
	require.ErrorContains(t, err, `version "0.0.0" doesn't exist`)

	_, err = loader.LoadVersion(minebase.Edition("pocket"), "1.20.4")
	require.ErrorContains(t, err, "unknown edition")
}

func TestLoadVersionMissingFile(t *testing.T) {
	t.Parallel()

	fsys := fixture()
	delete(fsys, "pc/1.20.4/blocks.json")

	loader := minebase.NewLoader(fsys)
	_, err := loader.LoadVersion(minebase.EditionPC, "1.20.4")
	require.ErrorContains(t, err, `load "blocks"`)
}

func TestLoadVersionBadVersionRecord(t *testing.T) {
	t.Parallel()

	fsys := fixture()
	fsys["pc/1.20.4/version.json"] = &fstest.MapFile{Data: []byte(`{
		"version": 765,
		"minecraftVersion": "not-a-version",
		"majorVersion": "1.20"
	}`)}

	loader := minebase.NewLoader(fsys)
	_, err := loader.LoadVersion(minebase.EditionPC, "1.20.4")
	require.ErrorContains(t, err, "does not match the version naming scheme")
}

func TestLoadVersionReferenceCheck(t *testing.T) {
	t.Parallel()

	fsys := fixture()
	fsys["pc/1.20.4/protocol.json"] = &fstest.MapFile{Data: []byte(`{
		"types": {"string": ["pstring", {"countType": "varint"}]}
	}`)}

	// Without the check the dangling varint reference goes unnoticed,
	// matching the upstream behavior.
	loader := minebase.NewLoader(fsys)
	_, err := loader.LoadVersion(minebase.EditionPC, "1.20.4")
	require.NoError(t, err)

	loader = minebase.NewLoader(fsys, minebase.WithCompileOptions(protocol.WithReferenceCheck()))
	_, err = loader.LoadVersion(minebase.EditionPC, "1.20.4")
	require.ErrorIs(t, err, protocol.ErrUnresolvedTarget)
}

func TestLoadVersionLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	loader := minebase.NewLoader(fixture(), minebase.WithLogger(log))
	_, err := loader.LoadVersion(minebase.EditionPC, "1.20.4")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"message":"loaded version"`)
	assert.Contains(t, buf.String(), `"protocol_types":2`)
}

func TestSupportedVersions(t *testing.T) {
	t.Parallel()

	loader := minebase.NewLoader(fixture())
	versions, err := loader.SupportedVersions(minebase.EditionPC)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.20.4"}, versions)
}

func TestSupportedVersionsIntegrity(t *testing.T) {
	t.Parallel()

	fsys := fixture()
	fsys["pc/common/versions.json"] = &fstest.MapFile{Data: []byte(`["1.20.4", "1.21"]`)}

	loader := minebase.NewLoader(fsys)
	_, err := loader.SupportedVersions(minebase.EditionPC)
	require.ErrorContains(t, err, "data integrity error")
}

func TestCommonDataRejectsStrayEntries(t *testing.T) {
	t.Parallel()

	fsys := fixture()
	fsys["pc/common/notes.txt"] = &fstest.MapFile{Data: []byte(`hi`)}

	loader := minebase.NewLoader(fsys)
	_, err := loader.CommonData(minebase.EditionPC)
	require.ErrorContains(t, err, "unexpected entry")
}

func TestDataPaths(t *testing.T) {
	t.Parallel()

	loader := minebase.NewLoader(fixture())
	dp, err := loader.DataPaths()
	require.NoError(t, err)

	sections, err := dp.Version(minebase.EditionPC, "1.20.4")
	require.NoError(t, err)
	assert.Equal(t, "pc/1.20.4", sections["protocol"])

	versions, err := dp.Versions(minebase.EditionPC)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.20.4"}, versions)

	versions, err = dp.Versions(minebase.EditionBedrock)
	require.NoError(t, err)
	assert.Empty(t, versions)
}
