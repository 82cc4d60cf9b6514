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

// Package scan implements the definition scanner: the single left-to-right
// pass over a translation unit that emits the ordered list of function
// definitions it finds, without preprocessing, compiling, or resolving
// includes.
//
// The scanner exploits one robust local signature of a C function
// definition: a top-level `{` directly after a balanced `(...)` directly
// after an identifier. Any `;`, `,` or `=` seen at top level between a
// candidate identifier and its `{` invalidates the candidate, which
// sidesteps typedef ambiguity entirely instead of trying to resolve it.
package scan

import (
	"github.com/cfcscan/parsercfc/cfc/invoke"
	"github.com/cfcscan/parsercfc/cfc/keyword"
	"github.com/cfcscan/parsercfc/cfc/macro"
	"github.com/cfcscan/parsercfc/cfc/textscan"
)

// Origin records how a Definition's name was discovered.
type Origin int

const (
	// FromSource is a name read verbatim from the source text.
	FromSource Origin = iota
	// FromTemplate is a name synthesized by a name-template macro and
	// emitted immediately at its call site.
	FromTemplate
	// FromExpansion is a name synthesized by an identifier-expansion macro
	// and promoted to a definition via the normal paren/brace machinery.
	FromExpansion
)

// Definition is one function name emitted by the scanner, in source order.
type Definition struct {
	Name   string
	Origin Origin
}

// Result is the full output of one scan pass.
type Result struct {
	// Definitions is the complete ordered list of emitted function names,
	// interleaving source-level, template-level and expansion-level
	// emissions in scan order: template-level names at their macro call
	// site, the others at their defining `{`.
	Definitions []Definition
	// TemplateNames is the subsequence of Definitions emitted via a
	// name-template macro.
	TemplateNames []string
	// ExpansionNames is the subsequence of Definitions emitted via an
	// identifier-expansion macro.
	ExpansionNames []string
	// UsedMacros is the set of macro names that synthesized at least one
	// definition.
	UsedMacros map[string]bool
}

// Names returns the ordered list of all emitted function names, discarding
// origin information.
func (r Result) Names() []string {
	out := make([]string, len(r.Definitions))
	for i, d := range r.Definitions {
		out[i] = d.Name
	}
	return out
}

// candidate snapshots an identifier that might become a function name, and
// the macro (if any) that produced it.
type candidate struct {
	name    string
	macro   string
	hasName bool
}

// Scan walks source applying the macro table's known name-template and
// identifier-expansion macros, and returns the ordered definitions found.
func Scan(source string, macros macro.Table) Result {
	s := &scanner{text: source, macros: macros, used: map[string]bool{}}
	s.run()
	return Result{
		Definitions:    s.defs,
		TemplateNames:  s.templateNames,
		ExpansionNames: s.expansionNames,
		UsedMacros:     s.used,
	}
}

type scanner struct {
	text   string
	macros macro.Table

	braceDepth   int
	parenDepth   int
	bracketDepth int
	atLineStart  bool

	last    candidate
	paren   candidate
	havePar bool
	pending candidate
	havePnd bool

	defs           []Definition
	templateNames  []string
	expansionNames []string
	used           map[string]bool
}

func (s *scanner) markUsed(name string) {
	if name != "" {
		s.used[name] = true
	}
}

func (s *scanner) clearAll() {
	s.last = candidate{}
	s.paren = candidate{}
	s.havePar = false
	s.pending = candidate{}
	s.havePnd = false
}

func (s *scanner) atTopLevel() bool {
	return s.parenDepth == 0 && s.bracketDepth == 0 && s.braceDepth == 0
}

func (s *scanner) run() {
	text := s.text
	n := len(text)
	s.atLineStart = true
	i := 0

	for i < n {
		if s.atLineStart {
			k := i
			for k < n && (text[k] == ' ' || text[k] == '\t') {
				k++
			}
			if k < n && text[k] == '#' {
				i = textscan.SkipPreprocessorLine(text, k)
				s.atLineStart = true
				continue
			}
		}

		c := text[i]
		if c == '\n' {
			s.atLineStart = true
			i++
			continue
		}
		s.atLineStart = false

		switch {
		case c == '/' && i+1 < n && text[i+1] == '/':
			i = textscan.SkipLineComment(text, i)

		case c == '/' && i+1 < n && text[i+1] == '*':
			i = textscan.SkipBlockComment(text, i)

		case c == '"' || c == '\'':
			i = textscan.SkipQuoted(text, i)

		case textscan.IsIdentStart(c):
			i = s.handleIdent(text, i)

		case c == '(':
			if s.parenDepth == 0 && !s.havePnd {
				s.paren = s.last
				s.havePar = s.last.hasName
			}
			s.parenDepth++
			i++

		case c == ')':
			if s.parenDepth > 0 {
				s.parenDepth--
			}
			if s.parenDepth == 0 && !s.havePnd && s.havePar {
				s.pending = s.paren
				s.havePnd = true
			}
			i++

		case c == '[':
			s.bracketDepth++
			i++

		case c == ']':
			if s.bracketDepth > 0 {
				s.bracketDepth--
			}
			i++

		case c == '{':
			if s.atTopLevel() && s.havePnd {
				s.emit(s.pending)
				s.clearAll()
			}
			s.braceDepth++
			i++

		case c == '}':
			if s.braceDepth > 0 {
				s.braceDepth--
			}
			i++

		case c == ';' || c == ',' || c == '=':
			if s.atTopLevel() {
				s.clearAll()
			}
			i++

		default:
			i++
		}
	}
}

// emit appends the promoted candidate as a Definition. If the candidate came
// from an identifier-expansion macro, it's also recorded as an
// expansion-macro definition and that macro is marked used.
func (s *scanner) emit(c candidate) {
	origin := FromSource
	if c.macro != "" {
		origin = FromExpansion
		s.expansionNames = append(s.expansionNames, c.name)
		s.markUsed(c.macro)
	}
	s.defs = append(s.defs, Definition{Name: c.name, Origin: origin})
}

// handleIdent consumes one identifier starting at i and updates scanner
// state per its role (control keyword, declaration keyword, macro
// invocation, or plain candidate). Returns the index to resume scanning at.
func (s *scanner) handleIdent(text string, i int) int {
	end := textscan.ConsumeIdent(text, i)
	ident := text[i:end]

	switch {
	case keyword.IsControl(ident):
		s.last = candidate{}
		return end

	case keyword.IsDeclaration(ident):
		if s.atTopLevel() {
			s.paren = candidate{}
			s.havePar = false
			s.pending = candidate{}
			s.havePnd = false
		}
		return end
	}

	if def, ok := s.macros[ident]; ok {
		if def.IsNameTemplate() && s.braceDepth == 0 {
			if next, handled := s.tryTemplate(text, i, def); handled {
				return next
			}
		} else if def.IsIdentifierExpansion() {
			if next, handled := s.tryExpansion(text, i, def); handled {
				return next
			}
		}
	}

	s.last = candidate{name: ident, hasName: true}
	return end
}

// tryTemplate attempts to match a name-template macro invocation starting
// at identStart (the position of the macro name itself). On an arity match
// it always consumes the argument list; it additionally emits the rendered
// name immediately when rendering succeeds.
func (s *scanner) tryTemplate(text string, identStart int, def macro.MacroDef) (next int, handled bool) {
	call, ok := invoke.MatchAt(text, identStart, def.Name, len(def.Params))
	if !ok {
		return 0, false
	}
	argMap := invoke.ArgMap(def.Params, call.Args)
	if name, accepted := invoke.Render(def.NameParts, argMap); accepted {
		s.templateNames = append(s.templateNames, name)
		s.markUsed(def.Name)
		s.defs = append(s.defs, Definition{Name: name, Origin: FromTemplate})
	}
	return call.End, true
}

// tryExpansion attempts to match an identifier-expansion macro invocation.
// On an arity match it always consumes the argument list; on successful
// rendering the expanded identifier becomes the scanner's last candidate
// (tagged with the macro name) so the usual paren/brace promotion can later
// turn it into a definition. A matched-but-rejected rendering clears the
// last-identifier candidate, so nothing downstream can be promoted from it
// (it produces no definition at all).
func (s *scanner) tryExpansion(text string, identStart int, def macro.MacroDef) (next int, handled bool) {
	macroName := def.Name
	call, ok := invoke.MatchAt(text, identStart, macroName, len(def.Params))
	if !ok {
		return 0, false
	}
	argMap := invoke.ArgMap(def.Params, call.Args)
	if name, accepted := invoke.Render(def.ExpansionParts, argMap); accepted {
		s.last = candidate{name: name, macro: macroName, hasName: true}
	} else {
		s.last = candidate{}
	}
	return call.End, true
}
