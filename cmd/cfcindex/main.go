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

// Command cfcindex is a small diagnostic companion to parsercfc: it reads
// an existing fc.json and prints a summary (file count, total function
// count, top files by function count). It never writes fc.json or
// null_fc.json itself.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/cfcscan/parsercfc/internal/report"
)

func main() {
	top := flag.Int("top", 10, "number of files to show in the top-by-function-count table")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: cfcindex <fc.json>")
	}

	entries, err := report.Read(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to read %s: %v", flag.Arg(0), err)
	}

	type row struct {
		path  string
		count int
	}
	rows := make([]row, 0, len(entries))
	total := 0
	empty := 0
	for path, entry := range entries {
		rows = append(rows, row{path: path, count: len(entry.FC)})
		total += len(entry.FC)
		if len(entry.FC) == 0 {
			empty++
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].path < rows[j].path
	})

	fmt.Printf("Files: %d\n", len(entries))
	fmt.Printf("Functions: %d\n", total)
	fmt.Printf("Files with no functions: %d\n", empty)

	limit := *top
	if limit > len(rows) {
		limit = len(rows)
	}
	if limit > 0 {
		fmt.Printf("\nTop %d files by function count:\n", limit)
		for _, r := range rows[:limit] {
			fmt.Printf("%6d  %s\n", r.count, r.path)
		}
	}
}
