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

// Package collector is the functional core entry point: given one
// translation unit's text, it builds the macro table, runs the definition
// scanner, optionally reconciles the result with a collaborator parser's
// name list, and returns the per-file result. It holds no state across
// files — every call is independent, which is what lets the driver
// parallelize across files freely.
package collector

import (
	"github.com/cfcscan/parsercfc/cfc/macro"
	"github.com/cfcscan/parsercfc/cfc/merge"
	"github.com/cfcscan/parsercfc/cfc/scan"
)

// FileResult is the outcome of collecting one translation unit. It carries
// no error: per-file error text is preserved only for logging by the
// driver, never persisted alongside the JSON-bound fc list.
type FileResult struct {
	Path string
	FC   []string
}

// IsEmpty reports whether the file defines no functions.
func (r FileResult) IsEmpty() bool { return len(r.FC) == 0 }

// Collect runs the macro model and definition scanner over source and
// returns the ordered function-name list for path.
//
// When parserNames is non-nil, the scanner's output is reconciled against
// it via package merge (the "cooperative" mode). Otherwise the scanner's
// own ordered definitions are returned unchanged (the "standalone" mode): a
// pure scan never has anything to reconcile against. See DESIGN.md for why
// the two modes are keyed off parserNames' nilness.
func Collect(path string, source string, parserNames []string) FileResult {
	macros := macro.ExtractMacros(source)
	result := scan.Scan(source, macros)

	var fc []string
	if parserNames != nil {
		fc = merge.Merge(result.Names(), parserNames, result.UsedMacros, result.ExpansionNames, result.TemplateNames)
	} else {
		fc = result.Names()
	}
	if fc == nil {
		fc = []string{}
	}
	return FileResult{Path: path, FC: fc}
}
