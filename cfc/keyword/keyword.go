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

// Package keyword holds the reserved-identifier tables shared by the
// definition scanner and the macro-invocation name renderer: the C keyword
// set used to reject a rendered/scanned name, the broader declaration-keyword
// set used to suppress false function-definition candidates, and the
// control-keyword set that can never start a definition.
package keyword

import "regexp"

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsIdentifier reports whether s is a well-formed C identifier.
func IsIdentifier(s string) bool {
	return identPattern.MatchString(s)
}

// reserved is the C keyword set rejected when rendering a macro-synthesized
// name.
var reserved = toSet([]string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while",
	"_Alignas", "_Alignof", "_Atomic", "_Bool", "_Complex", "_Generic",
	"_Imaginary", "_Noreturn", "_Static_assert", "_Thread_local",
})

// IsReserved reports whether name is one of the reserved C keywords. A
// rendered or scanned identifier matching one of these is never accepted as
// a function name.
func IsReserved(name string) bool { return reserved[name] }

// Accept reports whether name is usable as a function name: a well-formed
// identifier that isn't reserved.
func Accept(name string) bool {
	return name != "" && IsIdentifier(name) && !IsReserved(name)
}

// control is the set of keywords that can never be the start of a function
// definition candidate; seeing one clears the scanner's last-identifier
// state.
var control = toSet([]string{
	"if", "else", "for", "while", "do", "switch", "case", "default",
	"break", "continue", "return", "goto", "sizeof",
})

// IsControl reports whether ident is a control-flow keyword.
func IsControl(ident string) bool { return control[ident] }

// declaration is reserved minus the control keywords, plus compiler-extension
// keywords, that suppress (rather than become) a function-name candidate: type,
// storage, qualifier and attribute keywords.
var declaration = func() map[string]bool {
	set := toSet([]string{
		"__attribute__", "__declspec", "__asm", "asm", "_Thread_local",
		"__thread", "typeof", "__typeof__", "__const", "__volatile__",
		"__restrict", "__restrict__", "__inline", "__inline__",
		"__alignas", "__alignas__",
	})
	for k := range reserved {
		set[k] = true
	}
	// Control keywords are handled separately by the scanner but are never
	// declaration starters themselves; keep the sets disjoint by removing
	// them here so callers can check IsControl first without ambiguity.
	for k := range control {
		delete(set, k)
	}
	return set
}()

// IsDeclaration reports whether ident is a type/storage/qualifier keyword or
// a recognized compiler-extension attribute keyword.
func IsDeclaration(ident string) bool { return declaration[ident] }

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
