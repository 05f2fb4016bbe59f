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

// Package minebase loads and validates versioned minecraft-data files.
//
// A [Loader] wraps a filesystem rooted at the minecraft-data "data"
// directory. The dataPaths.json manifest maps each game version of an
// [Edition] to the directories holding its per-section JSON files;
// [Loader.LoadVersion] assembles those sections for one version, validating
// the version record and compiling the protocol type table into a
// [protocol.Registry]. Everything else stays raw for the caller.
//
// Load errors are never recovered from silently: a version either loads
// completely or not at all.
package minebase
