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

// Package invoke finds and renders invocations of a known function-like
// macro: given a macro name, its expected parameter count and a position in
// raw source text, it matches a call starting at that position and substitutes the call's arguments into a
// name-template or expansion-template to produce a concrete identifier.
package invoke

import (
	"strings"

	"github.com/cfcscan/parsercfc/cfc/keyword"
	"github.com/cfcscan/parsercfc/cfc/macro"
	"github.com/cfcscan/parsercfc/cfc/textscan"
)

// Call is one occurrence of macroName(args...) found in source text.
type Call struct {
	// Start is the index of the first character of macroName.
	Start int
	// End is the index just past the closing ')' of the argument list.
	End int
	// Args holds the normalized (whitespace-stripped) argument text.
	Args []string
}

// MatchAt attempts to parse an invocation of macroName beginning exactly at
// position i in text (text[i:] starts with macroName). It returns the Call
// and true if a following "(...)" argument list with paramCount arguments
// is found immediately (after optional whitespace); otherwise false.
func MatchAt(text string, i int, macroName string, paramCount int) (Call, bool) {
	j := i + len(macroName)
	for j < len(text) && isHorizontalOrNewlineSpace(text[j]) {
		j++
	}
	if j >= len(text) || text[j] != '(' {
		return Call{}, false
	}
	args, next, ok := textscan.ParseArgs(text, j)
	if !ok || len(args) != paramCount {
		return Call{}, false
	}
	return Call{Start: i, End: next, Args: normalizeArgs(args)}, true
}

// normalizeArgs strips every whitespace byte (not just leading/trailing)
// from each argument before it's substituted into a macro's name template.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		var b strings.Builder
		b.Grow(len(a))
		for k := 0; k < len(a); k++ {
			c := a[k]
			if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' {
				continue
			}
			b.WriteByte(c)
		}
		out[i] = b.String()
	}
	return out
}

// ArgMap builds the formal-parameter -> normalized-argument substitution
// map for a macro invocation. Parameters with no corresponding argument
// (arity handled elsewhere) substitute to "".
func ArgMap(params []string, args []string) map[string]string {
	m := make(map[string]string, len(params))
	for i, p := range params {
		if i < len(args) {
			m[p] = args[i]
		} else {
			m[p] = ""
		}
	}
	return m
}

// Render concatenates a template's literal and substituted-parameter parts
// and accepts the result only if it is a well-formed, non-reserved C
// identifier.
func Render(parts []macro.TemplatePart, argMap map[string]string) (string, bool) {
	var b strings.Builder
	for _, p := range parts {
		switch p.Kind {
		case macro.Param:
			b.WriteString(argMap[p.Value])
		case macro.Lit:
			b.WriteString(p.Value)
		}
	}
	name := b.String()
	if !keyword.Accept(name) {
		return "", false
	}
	return name, true
}

func isHorizontalOrNewlineSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}
