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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cfcscan/parsercfc/cfc/token"
)

func TestTokenizeBody(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected []token.Token
	}{
		{
			name: "ident and paste",
			body: "int T##_##N(T x)",
			expected: []token.Token{
				{Kind: token.Ident, Value: "int"},
				{Kind: token.Ident, Value: "T"},
				{Kind: token.Paste, Value: "##"},
				{Kind: token.Ident, Value: "_"},
				{Kind: token.Paste, Value: "##"},
				{Kind: token.Ident, Value: "N"},
				{Kind: token.Punct, Value: "("},
				{Kind: token.Ident, Value: "T"},
				{Kind: token.Ident, Value: "x"},
				{Kind: token.Punct, Value: ")"},
			},
		},
		{
			name:     "line comment consumes rest of body",
			body:     "foo // bar ## baz",
			expected: []token.Token{{Kind: token.Ident, Value: "foo"}},
		},
		{
			name: "block comment skipped",
			body: "foo /* bar */ baz",
			expected: []token.Token{
				{Kind: token.Ident, Value: "foo"},
				{Kind: token.Ident, Value: "baz"},
			},
		},
		{
			name:     "unterminated block comment ends tokenization",
			body:     "foo /* bar",
			expected: []token.Token{{Kind: token.Ident, Value: "foo"}},
		},
		{
			name:     "string and char literals skipped whole",
			body:     `foo "a ## b" 'c'`,
			expected: []token.Token{{Kind: token.Ident, Value: "foo"}},
		},
		{
			name:     "escaped quote inside string",
			body:     `"a\"b" foo`,
			expected: []token.Token{{Kind: token.Ident, Value: "foo"}},
		},
		{
			name:     "stray punctuation outside alphabet skipped",
			body:     "foo @ bar",
			expected: []token.Token{
				{Kind: token.Ident, Value: "foo"},
				{Kind: token.Ident, Value: "bar"},
			},
		},
		{
			name:     "empty body",
			body:     "",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tokenizeBody(tc.body))
		})
	}
}
