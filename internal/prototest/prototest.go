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

// Package prototest carries the shared corpus of raw protocol type
// declarations used by the protocol package tests, with their expected
// outcomes.
package prototest

import (
	_ "embed"
	"testing"

	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var corpus []byte

// Harness is a generalization of [testing.TB] that also includes the Run
// method. It must be generic because the signature of Run varies across
// [testing.T] and [testing.B].
type Harness[T any] interface {
	testing.TB
	Run(string, func(T)) bool
}

// Case is one raw declaration from the corpus. Exactly one of Kind (the
// expected variant of a successful compile) or Err (a substring of the
// expected error) is set.
type Case struct {
	Name string `yaml:"name"`
	Raw  any    `yaml:"raw"`
	Kind string `yaml:"kind,omitempty"`
	Err  string `yaml:"err,omitempty"`
}

// Cases decodes the embedded corpus.
func Cases(tb testing.TB) []Case {
	tb.Helper()
	var cases []Case
	if err := yaml.Unmarshal(corpus, &cases); err != nil {
		tb.Fatalf("decode corpus: %v", err)
	}
	return cases
}

// RunAll runs body as a subtest per corpus case.
func RunAll[T any](h Harness[T], body func(T, *Case)) {
	h.Helper()
	for _, tc := range Cases(h) {
		h.Run(tc.Name, func(t T) {
			body(t, &tc)
		})
	}
}
