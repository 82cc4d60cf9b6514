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

// Package token defines the small token alphabet produced when lexing the
// body of a `#define` directive. It deliberately carries far less detail
// than a full C/C++ lexer: whitespace, comments and string/char literals are
// consumed and discarded rather than emitted, since the macro classifier in
// package macro never needs to look at them.
package token

// Kind identifies the category of a macro-body Token.
type Kind int

const (
	// Ident is an identifier matching [A-Za-z_][A-Za-z0-9_]*.
	Ident Kind = iota
	// Paste is the token-pasting operator `##`.
	Paste
	// Punct is one of the single-character punctuation marks in
	// "(){}[];,=".
	Punct
)

// Token is one lexical unit extracted from a macro body.
type Token struct {
	Kind  Kind
	Value string
}

// Punctuation characters recognized as standalone Punct tokens. Any other
// byte that isn't whitespace, part of a comment, or part of a string/char
// literal is silently skipped.
const Punctuation = "(){}[];,="
