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

// Package cliutil holds the small pieces of flag/environment handling used
// by the parsercfc binary: worker-count defaults, batch-size resolution,
// verbose-flag default, and locating the running executable's directory.
package cliutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

const batchSizeEnvVar = "PARSERCFC_BATCH_SIZE"
const verboseEnvVar = "CFC_VERBOSE"

// DefaultWorkers returns max(cpu-1, 1), the default worker count.
func DefaultWorkers() int {
	if n := runtime.NumCPU() - 1; n > 0 {
		return n
	}
	return 1
}

// ResolveBatchSize picks how many files go to the collaborator per
// invocation: PARSERCFC_BATCH_SIZE overrides when set to a positive
// integer; otherwise max(1, min(100, total/(4*workers))).
func ResolveBatchSize(totalFiles, workers int) int {
	if raw := os.Getenv(batchSizeEnvVar); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	if workers < 1 {
		workers = 1
	}
	auto := totalFiles / (4 * workers)
	if auto < 1 {
		auto = 1
	}
	if auto > 100 {
		auto = 100
	}
	return auto
}

// VerboseDefault returns the default value for the -v flag: true if
// CFC_VERBOSE is set to a recognized truthy value (per strconv.ParseBool),
// false otherwise (including when unset or unparseable).
func VerboseDefault() bool {
	v, err := strconv.ParseBool(os.Getenv(verboseEnvVar))
	return err == nil && v
}

// ToolRoot returns the directory containing the running executable, used
// as the base for locating the collaborator parser binary.
func ToolRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		resolved = exe
	}
	return filepath.Dir(resolved), nil
}
