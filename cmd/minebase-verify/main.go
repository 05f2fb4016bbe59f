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

// minebase-verify loads minecraft-data snapshots from disk and compiles
// every protocol type table, reporting versions that fail to validate.
//
// Usage:
//
//	minebase-verify [flags] [version ...]
//
// With no version arguments it verifies every version listed in the
// config file, or every supported version of the chosen edition when the
// config names none.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/py-mine/minebase"
	"github.com/py-mine/minebase/protocol"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		dataDir    = flag.String("data", "", "minecraft-data directory (overrides config)")
		edition    = flag.String("edition", "", "edition to verify, pc or bedrock (overrides config)")
		checkRefs  = flag.Bool("refs", false, "also fail on unresolved or cyclic type references")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "minebase-verify:", err)
			os.Exit(2)
		}
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *edition != "" {
		ed, err := minebase.ParseEdition(*edition)
		if err != nil {
			fmt.Fprintln(os.Stderr, "minebase-verify:", err)
			os.Exit(2)
		}
		cfg.Edition = ed
	}
	if *checkRefs {
		cfg.CheckReferences = true
	}
	if *verbose {
		cfg.LogLevel = zerolog.DebugLevel
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Versions = args
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()

	if err := run(log, cfg); err != nil {
		log.Error().Err(err).Msg("verification failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, cfg verifyConfig) error {
	var opts []minebase.LoadOption
	opts = append(opts, minebase.WithLogger(log))
	if cfg.CheckReferences {
		opts = append(opts, minebase.WithCompileOptions(protocol.WithReferenceCheck()))
	}
	loader := minebase.NewLoader(os.DirFS(cfg.DataDir), opts...)

	versions := cfg.Versions
	if len(versions) == 0 {
		var err error
		versions, err = loader.SupportedVersions(cfg.Edition)
		if err != nil {
			return err
		}
	}
	if len(versions) == 0 {
		return fmt.Errorf("no versions to verify for edition %q", cfg.Edition)
	}

	failed := 0
	for _, version := range versions {
		data, err := loader.LoadVersion(cfg.Edition, version)
		if err != nil {
			failed++
			log.Error().
				Str("edition", string(cfg.Edition)).
				Str("version", version).
				Err(err).
				Msg("version failed")
			continue
		}
		ev := log.Info().
			Str("edition", string(cfg.Edition)).
			Str("version", version).
			Int("sections", len(data.Sections))
		if data.Protocol != nil {
			ev = ev.Int("protocol_types", data.Protocol.Len())
		}
		ev.Msg("version ok")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d versions failed", failed, len(versions))
	}
	log.Info().Int("versions", len(versions)).Msg("all versions ok")
	return nil
}
