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
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/py-mine/minebase"
)

// minebase-verify config.toml key mapping.
type fileConfig struct {
	DataDir         string   `toml:"data_dir"`
	Edition         string   `toml:"edition"`
	Versions        []string `toml:"versions"`
	CheckReferences bool     `toml:"check_references"`
	LogLevel        string   `toml:"log_level"`
}

type verifyConfig struct {
	DataDir         string
	Edition         minebase.Edition
	Versions        []string // empty means every supported version
	CheckReferences bool
	LogLevel        zerolog.Level
}

func defaultConfig() verifyConfig {
	return verifyConfig{
		DataDir:  "data",
		Edition:  minebase.EditionPC,
		LogLevel: zerolog.InfoLevel,
	}
}

// loadConfig reads a TOML config with default overlay: only keys present
// in the file override the defaults.
func loadConfig(path string) (verifyConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return verifyConfig{}, fmt.Errorf("load verify config: %w", err)
	}

	if meta.IsDefined("data_dir") {
		cfg.DataDir = strings.TrimSpace(raw.DataDir)
	}
	if meta.IsDefined("edition") {
		ed, err := minebase.ParseEdition(strings.TrimSpace(raw.Edition))
		if err != nil {
			return verifyConfig{}, fmt.Errorf("load verify config: %w", err)
		}
		cfg.Edition = ed
	}
	if meta.IsDefined("versions") {
		cfg.Versions = raw.Versions
	}
	if meta.IsDefined("check_references") {
		cfg.CheckReferences = raw.CheckReferences
	}
	if meta.IsDefined("log_level") {
		lvl, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return verifyConfig{}, fmt.Errorf("load verify config: %w", err)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}
