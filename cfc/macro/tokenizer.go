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

import (
	"strings"

	"github.com/cfcscan/parsercfc/cfc/textscan"
	"github.com/cfcscan/parsercfc/cfc/token"
)

// tokenizeBody converts the body text of a `#define` (continuation
// backslashes already stripped) into a token stream, following the priority
// order: whitespace, line comments, block comments, string/char literals,
// "##", identifiers, single-char punctuation, anything else skipped.
//
// An unterminated block comment ends tokenization early, matching the
// tokenizer's behavior for the rest of the body.
func tokenizeBody(body string) []token.Token {
	var out []token.Token
	i := 0
	n := len(body)
	for i < n {
		c := body[i]
		switch {
		case c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r' || c == '\n':
			i++

		case strings.HasPrefix(body[i:], "//"):
			end := strings.IndexByte(body[i:], '\n')
			if end < 0 {
				i = n
			} else {
				i += end
			}

		case strings.HasPrefix(body[i:], "/*"):
			end := strings.Index(body[i:], "*/")
			if end < 0 {
				return out
			}
			i += end + 2

		case c == '"' || c == '\'':
			i = skipQuoted(body, i, c)

		case strings.HasPrefix(body[i:], "##"):
			out = append(out, token.Token{Kind: token.Paste, Value: "##"})
			i += 2

		case textscan.IsIdentStart(c):
			j := textscan.ConsumeIdent(body, i)
			out = append(out, token.Token{Kind: token.Ident, Value: body[i:j]})
			i = j

		case strings.IndexByte(token.Punctuation, c) >= 0:
			out = append(out, token.Token{Kind: token.Punct, Value: string(c)})
			i++

		default:
			i++
		}
	}
	return out
}

// skipQuoted advances past a string or character literal starting at i
// (body[i] == quote), honoring backslash escapes. Returns the index just
// past the literal, or len(body) if it's unterminated.
func skipQuoted(body string, i int, quote byte) int {
	n := len(body)
	j := i + 1
	for j < n {
		switch body[j] {
		case '\\':
			j += 2
		case quote:
			return j + 1
		default:
			j++
		}
	}
	return n
}
