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

// Package report builds and persists the two JSON artifacts produced by a
// scan run: fc.json (function names per file) and null_fc.json (files with
// no functions). It builds an in-memory, sorted snapshot and marshals it
// once, rather than streaming incremental writes.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cfcscan/parsercfc/cfc/collector"
)

// Entry is the JSON shape of one fc.json value.
type Entry struct {
	FC []string `json:"fc"`
}

// Report is the accumulated, order-independent result of scanning a
// directory tree; it is built once all files have been processed.
type Report struct {
	FC     map[string]Entry
	NullFC []string
}

// New aggregates raw per-file results into a Report. Key order in the
// returned map doesn't matter; ordering happens at marshal time.
func New(results []collector.FileResult) Report {
	r := Report{FC: make(map[string]Entry, len(results))}
	for _, res := range results {
		r.FC[res.Path] = Entry{FC: res.FC}
		if res.IsEmpty() {
			r.NullFC = append(r.NullFC, res.Path)
		}
	}
	sort.Strings(r.NullFC)
	return r
}

// WriteFC marshals fc.json to path: an object keyed by absolute source
// path (lexicographically sorted), two-space indented, with non-ASCII
// bytes \u-escaped the way Python's json.dump(ensure_ascii=True) renders
// them (the format the original script produced).
func (r Report) WriteFC(path string) error {
	keys := make([]string, 0, len(r.FC))
	for k := range r.FC {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	if len(keys) == 0 {
		b.WriteString("{}")
	} else {
		b.WriteString("{\n")
		for i, k := range keys {
			b.WriteString("  ")
			b.WriteString(jsonString(k))
			b.WriteString(": {\n    \"fc\": ")
			b.WriteString(jsonStringArray(r.FC[k].FC, "    "))
			b.WriteString("\n  }")
			if i < len(keys)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString("}")
	}
	return writeFile(path, []byte(b.String()))
}

// WriteNullFC marshals null_fc.json: a sorted array of absolute paths.
func (r Report) WriteNullFC(path string) error {
	return writeFile(path, []byte(jsonStringArray(r.NullFC, "")))
}

// Read loads a previously written fc.json, for the cfcindex companion tool.
func Read(path string) (map[string]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out map[string]Entry
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// jsonStringArray renders a JSON array of strings, one per line, each
// indented two spaces past indent; an empty slice renders compactly as
// "[]" to match Python's json.dump behavior for empty lists.
func jsonStringArray(values []string, indent string) string {
	if len(values) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	inner := indent + "  "
	for i, v := range values {
		b.WriteString(inner)
		b.WriteString(jsonString(v))
		if i < len(values)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(indent)
	b.WriteString("]")
	return b.String()
}

// jsonString renders s as an ASCII-only JSON string literal: control
// characters, the quote and backslash are escaped per the JSON spec, and
// every rune above U+007F is emitted as a \uXXXX escape (surrogate pairs
// for runes above U+FFFF), matching ensure_ascii=True.
func jsonString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20:
			b.WriteString(lowUnicodeEscape(r))
		case r < 0x80:
			b.WriteRune(r)
		case r <= 0xFFFF:
			b.WriteString(lowUnicodeEscape(r))
		default:
			r -= 0x10000
			hi := 0xD800 + (r >> 10)
			lo := 0xDC00 + (r & 0x3FF)
			b.WriteString(lowUnicodeEscape(hi))
			b.WriteString(lowUnicodeEscape(lo))
		}
	}
	b.WriteByte('"')
	return b.String()
}

const hexDigits = "0123456789abcdef"

func lowUnicodeEscape(r rune) string {
	buf := [6]byte{'\\', 'u', 0, 0, 0, 0}
	buf[2] = hexDigits[(r>>12)&0xF]
	buf[3] = hexDigits[(r>>8)&0xF]
	buf[4] = hexDigits[(r>>4)&0xF]
	buf[5] = hexDigits[r&0xF]
	return string(buf[:])
}

func ensureParent(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func writeFile(path string, data []byte) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
