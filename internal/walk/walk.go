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

// Package walk discovers C translation units under a directory tree using a
// recursive doublestar glob, returning absolute, sorted paths to every
// regular `*.c` file found.
package walk

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FindCFiles returns the absolute, resolved paths of every regular `*.c`
// file under root, sorted lexicographically.
func FindCFiles(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(absRoot), "**/*.c")
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(matches))
	for _, rel := range matches {
		full := filepath.Join(absRoot, rel)
		info, err := os.Lstat(full)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		resolved, err := filepath.EvalSymlinks(full)
		if err != nil {
			resolved = full
		}
		files = append(files, resolved)
	}

	sort.Strings(files)
	return files, nil
}
