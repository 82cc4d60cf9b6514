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
)

func TestClassifyNameTemplate(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		params   []string
		expected []TemplatePart
	}{
		{
			name:   "simple pasted header",
			body:   "int T##_##N(T x) { return x; }",
			params: []string{"T", "N"},
			expected: []TemplatePart{
				{Kind: Param, Value: "T"},
				{Kind: Lit, Value: "_"},
				{Kind: Param, Value: "N"},
			},
		},
		{
			name:     "no brace reached",
			body:     "int T##_##N(T x)",
			params:   []string{"T", "N"},
			expected: nil,
		},
		{
			name:   "comma at top level clears earlier declarator",
			body:   "int x, T##_##N(T a) { }",
			params: []string{"T", "N"},
			expected: []TemplatePart{
				{Kind: Param, Value: "T"},
				{Kind: Lit, Value: "_"},
				{Kind: Param, Value: "N"},
			},
		},
		{
			name:   "bracket depth does not break paren tracking",
			body:   "int arr[SIZE] T##_##N(T x) { }",
			params: []string{"T", "N"},
			expected: []TemplatePart{
				{Kind: Param, Value: "T"},
				{Kind: Lit, Value: "_"},
				{Kind: Param, Value: "N"},
			},
		},
		{
			name:     "empty body",
			body:     "",
			params:   nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toks := tokenizeBody(tc.body)
			assert.Equal(t, tc.expected, classifyNameTemplate(toks, paramSet(tc.params)))
		})
	}
}

func TestClassifyExpansion(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		params   []string
		expected []TemplatePart
	}{
		{
			name:   "pasted identifier chain",
			body:   "my_##n",
			params: []string{"n"},
			expected: []TemplatePart{
				{Kind: Lit, Value: "my_"},
				{Kind: Param, Value: "n"},
			},
		},
		{
			name:     "function header body is not an expansion",
			body:     "int T##_##N(T x) { return x; }",
			params:   []string{"T", "N"},
			expected: nil,
		},
		{
			name:     "single identifier",
			body:     "n",
			params:   []string{"n"},
			expected: []TemplatePart{{Kind: Param, Value: "n"}},
		},
		{
			name:     "trailing paste is malformed",
			body:     "my_##",
			params:   nil,
			expected: nil,
		},
		{
			name:     "empty body",
			body:     "",
			params:   nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toks := tokenizeBody(tc.body)
			assert.Equal(t, tc.expected, classifyExpansion(toks, paramSet(tc.params)))
		})
	}
}
