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

// Package macro implements the macro model: it recognizes function-like
// `#define` directives in a C translation unit and classifies each one as a
// name-template macro (its body contains a function header whose name is
// built from the macro's parameters), an identifier-expansion macro (its
// body is a single pasted-identifier chain), both, or neither.
//
// No preprocessor evaluation happens here: conditional compilation
// (`#if`/`#ifdef`), recursive macro expansion and object-like macros (no
// parameter list) are out of scope, matching the tool's discovery-oriented,
// single-file, single-pass design.
package macro

import (
	"regexp"
	"strings"
)

// PartKind distinguishes a parameter reference from a literal piece inside a
// name-template or expansion template.
type PartKind int

const (
	// Param is a reference to one of the macro's formal parameters.
	Param PartKind = iota
	// Lit is a literal identifier fragment glued in verbatim.
	Lit
)

// TemplatePart is one piece of a name-template or expansion-template: either
// a reference to a parameter (Kind == Param, Value == param name) or a
// literal identifier fragment (Kind == Lit, Value == the text itself).
type TemplatePart struct {
	Kind  PartKind
	Value string
}

// MacroDef is a single function-like `#define NAME(params) body` directive,
// classified into its name-template and/or expansion-template shape.
type MacroDef struct {
	Name   string
	Params []string

	// NameParts is present when the macro's body contains a function header
	// `... NAME(params) { ...` whose NAME is built from Params/literals.
	NameParts []TemplatePart
	// ExpansionParts is present when the macro's body is exactly a single
	// identifier chain pasted together from Params/literals.
	ExpansionParts []TemplatePart
}

// IsNameTemplate reports whether the macro defines a function-header name
// template, i.e. can synthesize a function *definition* at its call site.
func (m MacroDef) IsNameTemplate() bool { return m.NameParts != nil }

// IsIdentifierExpansion reports whether the macro's body expands to a bare
// identifier that can stand in for a function name.
func (m MacroDef) IsIdentifierExpansion() bool { return m.ExpansionParts != nil }

// paramSet returns the set of parameter names for quick membership tests.
func paramSet(params []string) map[string]bool {
	set := make(map[string]bool, len(params))
	for _, p := range params {
		set[p] = true
	}
	return set
}

// Table maps macro name to its MacroDef. Built per translation unit,
// discarded at file end.
type Table map[string]MacroDef

var reDefine = regexp.MustCompile(`^[ \t]*#[ \t]*define[ \t]+([A-Za-z_][A-Za-z0-9_]*)\(([^)]*)\)(.*)$`)

// ExtractMacros scans source text line by line (joining `\`-continued lines
// first) and builds a Table of every function-like `#define` found. Object-like
// macros (no parameter list) are ignored. A repeated definition of the same
// name overwrites the earlier one.
func ExtractMacros(source string) Table {
	table := make(Table)
	for _, line := range joinContinuations(source) {
		m := reDefine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		params := splitParams(m[2])
		body := m[3]

		def := MacroDef{Name: name, Params: params}
		toks := tokenizeBody(body)
		params2 := paramSet(params)
		def.NameParts = classifyNameTemplate(toks, params2)
		def.ExpansionParts = classifyExpansion(toks, params2)
		table[name] = def
	}
	return table
}

// splitParams parses a comma-separated formal parameter list into an
// ordered slice of trimmed, non-empty identifiers.
func splitParams(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// joinContinuations splits source into logical lines, concatenating any
// physical line ending in `\` with the line that follows it (continuation
// backslashes themselves are stripped).
func joinContinuations(source string) []string {
	physical := strings.Split(source, "\n")
	var logical []string
	var cur strings.Builder
	building := false
	for _, line := range physical {
		trimmed := strings.TrimRight(line, "\r")
		if strings.HasSuffix(trimmed, `\`) {
			cur.WriteString(strings.TrimSuffix(trimmed, `\`))
			building = true
			continue
		}
		if building {
			cur.WriteString(trimmed)
			logical = append(logical, cur.String())
			cur.Reset()
			building = false
		} else {
			logical = append(logical, trimmed)
		}
	}
	if building {
		logical = append(logical, cur.String())
	}
	return logical
}
