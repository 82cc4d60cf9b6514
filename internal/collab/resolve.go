// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package collab drives the external per-file "collaborator" parser
// binary: it resolves the binary's path, invokes it in per-file or batch
// mode, and decodes its JSON output. It never parses C itself — that's
// package scan's job — and it does not reconcile the collaborator's names
// with the scanner's; that happens in packages merge and collector.
package collab

import (
	"os"
	"os/exec"
	"path/filepath"
)

const parserEnvVar = "PARSERCFC_PARSER"

// ResolveBinary finds the collaborator parser binary, in order:
// PARSERCFC_PARSER override, then build/cfc_parser relative to toolRoot,
// then a "cfc_parser" file directly inside toolRoot, then PATH. The override
// is returned as an absolute path without checking that it exists; the two
// toolRoot candidates must be existing non-directory files. Returns
// ErrMissingParser if no candidate is found.
func ResolveBinary(toolRoot string) (string, error) {
	if override := os.Getenv(parserEnvVar); override != "" {
		expanded, err := filepath.Abs(override)
		if err != nil {
			return "", err
		}
		return expanded, nil
	}

	if candidate := filepath.Join(toolRoot, "build", "cfc_parser"); fileExists(candidate) {
		return candidate, nil
	}

	if sibling := filepath.Join(toolRoot, "cfc_parser"); fileExists(sibling) {
		return sibling, nil
	}

	if found, err := exec.LookPath("cfc_parser"); err == nil {
		return found, nil
	}

	return "", errMissingParser
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
