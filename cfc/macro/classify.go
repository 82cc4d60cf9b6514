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

package macro

import "github.com/cfcscan/parsercfc/cfc/token"

// classifyNameTemplate walks the tokenized macro body looking for a function
// header shape `... NAME(params) {` where NAME is built from the macro's own
// formal parameters and/or pasted literals. Returns nil if the body never
// reaches a top-level `{` with a promoted candidate pending.
func classifyNameTemplate(toks []token.Token, params map[string]bool) []TemplatePart {
	var (
		lastParts      []TemplatePart
		parenCandidate []TemplatePart
		pendingParts   []TemplatePart
		pendingPaste   bool
		parenDepth     int
		bracketDepth   int
		haveCandidate  bool
		havePending    bool
	)

	for _, t := range toks {
		switch {
		case t.Kind == token.Ident:
			var parts []TemplatePart
			if params[t.Value] {
				parts = []TemplatePart{{Kind: Param, Value: t.Value}}
			} else {
				parts = []TemplatePart{{Kind: Lit, Value: t.Value}}
			}
			if pendingPaste && lastParts != nil {
				lastParts = append(append([]TemplatePart{}, lastParts...), parts...)
			} else {
				lastParts = parts
			}
			pendingPaste = false

		case t.Kind == token.Paste:
			if lastParts != nil {
				pendingPaste = true
			}

		case t.Kind == token.Punct && t.Value == "(":
			if parenDepth == 0 && !havePending {
				parenCandidate = lastParts
				haveCandidate = lastParts != nil
			}
			parenDepth++

		case t.Kind == token.Punct && t.Value == ")":
			if parenDepth > 0 {
				parenDepth--
			}
			if parenDepth == 0 && !havePending && haveCandidate {
				pendingParts = parenCandidate
				havePending = true
			}

		case t.Kind == token.Punct && t.Value == "[":
			bracketDepth++

		case t.Kind == token.Punct && t.Value == "]":
			if bracketDepth > 0 {
				bracketDepth--
			}

		case t.Kind == token.Punct && t.Value == "{":
			if parenDepth == 0 && bracketDepth == 0 && havePending {
				return pendingParts
			}

		case t.Kind == token.Punct && (t.Value == "," || t.Value == ";" || t.Value == "="):
			if parenDepth == 0 && bracketDepth == 0 {
				lastParts = nil
				parenCandidate = nil
				haveCandidate = false
				pendingParts = nil
				havePending = false
			}
		}
	}
	return nil
}

// classifyExpansion reports the macro's identifier-expansion template: the
// body must be exactly a chain of idents glued by "##" with nothing else
// present. Any other token shape yields nil.
func classifyExpansion(toks []token.Token, params map[string]bool) []TemplatePart {
	if len(toks) == 0 {
		return nil
	}
	var parts []TemplatePart
	expectIdent := true
	for _, t := range toks {
		if expectIdent {
			if t.Kind != token.Ident {
				return nil
			}
			kind := Lit
			if params[t.Value] {
				kind = Param
			}
			parts = append(parts, TemplatePart{Kind: kind, Value: t.Value})
			expectIdent = false
		} else {
			if t.Kind != token.Paste {
				return nil
			}
			expectIdent = true
		}
	}
	if expectIdent {
		// Body ended with a trailing "##" — malformed chain.
		return nil
	}
	return parts
}
