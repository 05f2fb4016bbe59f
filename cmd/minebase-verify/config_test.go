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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-mine/minebase"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "verify.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
data_dir = "/srv/minecraft-data/data"
edition = "bedrock"
versions = ["1.20.71", "1.21.0"]
check_references = true
log_level = "debug"
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/minecraft-data/data", cfg.DataDir)
	assert.Equal(t, minebase.EditionBedrock, cfg.Edition)
	assert.Equal(t, []string{"1.20.71", "1.21.0"}, cfg.Versions)
	assert.True(t, cfg.CheckReferences)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	// Keys absent from the file keep their defaults.
	cfg, err := loadConfig(writeConfig(t, `edition = "pc"`))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig().DataDir, cfg.DataDir)
	assert.Equal(t, minebase.EditionPC, cfg.Edition)
	assert.Empty(t, cfg.Versions)
	assert.False(t, cfg.CheckReferences)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"bad edition", `edition = "java"`},
		{"bad level", `log_level = "chatty"`},
		{"bad toml", `versions = [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := loadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}
