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

func TestExtractMacrosNameTemplate(t *testing.T) {
	source := "#define DEF(T, N) int T##_##N(T x)\nDEF(int, add) { return x; }\n"
	table := ExtractMacros(source)
	def := table["DEF"]
	assert.True(t, def.IsNameTemplate())
	assert.False(t, def.IsIdentifierExpansion())
	assert.Equal(t, []string{"T", "N"}, def.Params)
	assert.Equal(t, []TemplatePart{
		{Kind: Param, Value: "T"},
		{Kind: Lit, Value: "_"},
		{Kind: Param, Value: "N"},
	}, def.NameParts)
}

func TestExtractMacrosExpansion(t *testing.T) {
	source := "#define PFX(n) my_##n\n"
	def := ExtractMacros(source)["PFX"]
	assert.False(t, def.IsNameTemplate())
	assert.True(t, def.IsIdentifierExpansion())
	assert.Equal(t, []TemplatePart{
		{Kind: Lit, Value: "my_"},
		{Kind: Param, Value: "n"},
	}, def.ExpansionParts)
}

func TestExtractMacrosIgnoresObjectLike(t *testing.T) {
	source := "#define VERSION 3\n#define FOO(x) x\n"
	table := ExtractMacros(source)
	_, hasVersion := table["VERSION"]
	assert.False(t, hasVersion)
	_, hasFoo := table["FOO"]
	assert.True(t, hasFoo)
}

func TestExtractMacrosLaterDefinitionWins(t *testing.T) {
	source := "#define FOO(x) x\n#define FOO(x, y) x##y\n"
	def := ExtractMacros(source)["FOO"]
	assert.Equal(t, []string{"x", "y"}, def.Params)
}

func TestExtractMacrosLineContinuation(t *testing.T) {
	source := "#define DEF(T, N) \\\n  int T##_##N(T x)\n"
	def := ExtractMacros(source)["DEF"]
	assert.True(t, def.IsNameTemplate())
}

func TestSplitParams(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: nil},
		{name: "whitespace only", raw: "   ", expected: nil},
		{name: "single", raw: "x", expected: []string{"x"}},
		{name: "multiple with spacing", raw: " x , y ,z", expected: []string{"x", "y", "z"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, splitParams(tc.raw))
		})
	}
}

func TestJoinContinuations(t *testing.T) {
	source := "a\\\nb\nc\\\nd\\\ne\nf"
	assert.Equal(t, []string{"ab", "cde", "f"}, joinContinuations(source))
}
