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

// Package merge reconciles the definition scanner's output with an
// optional externally-supplied name list (from the collaborator parser
// binary), preserving source order where possible while never silently
// dropping a name the external parser discovered.
package merge

import "github.com/cfcscan/parsercfc/internal/collections"

// Merge reconciles the scanner's ordered definitions against an externally
// reported name list:
//
//  1. parserNames is the external list (possibly empty).
//  2. Names equal to a macro recorded as used (usedMacros) are dropped from
//     parserNames, since they're artefacts of the external parser seeing
//     the unexpanded macro call.
//  3. A multiset is built from the filtered parser names, expansionNames
//     and templateNames: each name's count is the max of its internal
//     multiplicity (expansionNames+templateNames occurrences) and its
//     filtered external count.
//  4. orderedDefs (the scanner's full definition order) is walked; each
//     name present in the multiset with remaining multiplicity > 0 is
//     appended and its count decremented.
//  5. Any names with remaining positive count are appended in the order
//     they were first seen while building the multiset.
func Merge(orderedDefs []string, parserNames []string, usedMacros map[string]bool, expansionNames, templateNames []string) []string {
	filtered := collections.FilterSlice(parserNames, func(name string) bool {
		return !usedMacros[name]
	})

	internal := make(map[string]int)
	for _, n := range expansionNames {
		internal[n]++
	}
	for _, n := range templateNames {
		internal[n]++
	}
	external := make(map[string]int)
	for _, n := range filtered {
		external[n]++
	}

	counts := make(map[string]int)
	var enumOrder []string
	seen := collections.Set[string]{}
	record := func(names []string) {
		for _, n := range names {
			if !seen.Contains(n) {
				seen.Add(n)
				enumOrder = append(enumOrder, n)
			}
		}
	}
	record(expansionNames)
	record(templateNames)
	record(filtered)

	for name := range seen {
		c := internal[name]
		if external[name] > c {
			c = external[name]
		}
		counts[name] = c
	}

	merged := make([]string, 0, len(orderedDefs))
	for _, name := range orderedDefs {
		if counts[name] > 0 {
			merged = append(merged, name)
			counts[name]--
		}
	}
	for _, name := range enumOrder {
		for counts[name] > 0 {
			merged = append(merged, name)
			counts[name]--
		}
	}
	return merged
}
