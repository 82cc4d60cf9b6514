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

// Package textscan holds the cursor-advancing primitives shared by every
// scanner that walks raw C source text: comment skipping, string/char
// literal skipping, preprocessor line skipping and balanced parenthesized
// group handling. None of these evaluate the preprocessor — they only
// recognize enough local structure to step over it safely.
package textscan

// SkipLineComment advances past a "//" comment starting at i (text[i] ==
// '/' and text[i+1] == '/'). Returns the index of the terminating '\n', or
// len(text) if the comment runs to end of input.
func SkipLineComment(text string, i int) int {
	for j := i; j < len(text); j++ {
		if text[j] == '\n' {
			return j
		}
	}
	return len(text)
}

// SkipBlockComment advances past a "/* ... */" comment starting at i
// (text[i:i+2] == "/*"). Returns the index just past the closing "*/", or
// len(text) if unterminated.
func SkipBlockComment(text string, i int) int {
	for j := i + 2; j+1 < len(text); j++ {
		if text[j] == '*' && text[j+1] == '/' {
			return j + 2
		}
	}
	return len(text)
}

// SkipQuoted advances past a string or character literal starting at i
// (text[i] is the opening quote). A backslash escapes the following byte.
// Returns the index just past the closing quote, or len(text) if
// unterminated.
func SkipQuoted(text string, i int) int {
	quote := text[i]
	j := i + 1
	for j < len(text) {
		switch text[j] {
		case '\\':
			j += 2
		case quote:
			return j + 1
		default:
			j++
		}
	}
	return len(text)
}

// SkipPreprocessorLine advances past a preprocessor directive starting at
// the '#' column, to the next '\n' that is not itself escaped by a
// preceding '\' (an escaped newline continues the directive onto the next
// physical line). Returns the index just past that newline, or len(text) if
// the directive runs to end of input.
func SkipPreprocessorLine(text string, i int) int {
	j := i
	for j < len(text) {
		switch text[j] {
		case '\\':
			j += 2
		case '\n':
			return j + 1
		default:
			j++
		}
	}
	return len(text)
}

// SkipBalancedParens advances past a parenthesized group starting at i
// (text[i] == '('), honoring nested parens, comments and string/char
// literals. Returns the index just past the matching ')' and true, or
// (len(text), false) if unbalanced.
func SkipBalancedParens(text string, i int) (int, bool) {
	depth := 0
	j := i
	for j < len(text) {
		switch {
		case text[j] == '/' && j+1 < len(text) && text[j+1] == '/':
			j = SkipLineComment(text, j)
		case text[j] == '/' && j+1 < len(text) && text[j+1] == '*':
			j = SkipBlockComment(text, j)
		case text[j] == '"' || text[j] == '\'':
			j = SkipQuoted(text, j)
		case text[j] == '(':
			depth++
			j++
		case text[j] == ')':
			depth--
			j++
			if depth == 0 {
				return j, true
			}
		default:
			j++
		}
	}
	return len(text), false
}

// ParseArgs parses the argument list of a call starting at i (text[i] ==
// '('). It returns the ordered list of trimmed argument strings and the
// index immediately after the matching ')'; ok is false if the list is
// unbalanced. Commas only separate arguments at paren depth 1; comments and
// string/char literals inside an argument are treated as inert text. An
// empty "()" yields an empty (non-nil-length-zero) slice; "(x)" yields
// ["x"]; an argument is only appended on ')' if there is accumulated text or
// at least one argument has already been pushed, so "( , )" yields
// ["", ""].
func ParseArgs(text string, i int) (args []string, next int, ok bool) {
	args = []string{}
	depth := 0
	j := i
	start := i + 1
	var pushed bool

	push := func(from, to int) {
		args = append(args, trimSpace(text[from:to]))
		pushed = true
	}

	for j < len(text) {
		switch {
		case text[j] == '/' && j+1 < len(text) && text[j+1] == '/':
			j = SkipLineComment(text, j)
		case text[j] == '/' && j+1 < len(text) && text[j+1] == '*':
			j = SkipBlockComment(text, j)
		case text[j] == '"' || text[j] == '\'':
			j = SkipQuoted(text, j)
		case text[j] == '(':
			depth++
			j++
		case text[j] == ')':
			depth--
			j++
			if depth == 0 {
				if trimSpace(text[start:j-1]) != "" || pushed {
					push(start, j-1)
				}
				return args, j, true
			}
		case text[j] == ',' && depth == 1:
			push(start, j)
			j++
			start = j
		default:
			j++
		}
	}
	return nil, len(text), false
}

func trimSpace(s string) string {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// IsIdentStart reports whether c can begin a C identifier.
func IsIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsIdentPart reports whether c can continue a C identifier.
func IsIdentPart(c byte) bool {
	return IsIdentStart(c) || (c >= '0' && c <= '9')
}

// ConsumeIdent returns the index just past the identifier starting at i
// (text[i] must satisfy IsIdentStart).
func ConsumeIdent(text string, i int) int {
	j := i + 1
	for j < len(text) && IsIdentPart(text[j]) {
		j++
	}
	return j
}
