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

package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectStandaloneMode(t *testing.T) {
	source := "int foo(void) { return 0; } static void bar(int x) { }"
	result := Collect("foo.c", source, nil)
	assert.Equal(t, "foo.c", result.Path)
	assert.Equal(t, []string{"foo", "bar"}, result.FC)
	assert.False(t, result.IsEmpty())
}

func TestCollectCooperativeModeFiltersMacroArtifact(t *testing.T) {
	source := "#define PFX(n) my_##n\nvoid PFX(init)(void) { }\n"
	result := Collect("foo.c", source, []string{"PFX"})
	assert.Equal(t, []string{"my_init"}, result.FC)
}

func TestCollectEmptyFileYieldsEmptyNotNilFC(t *testing.T) {
	result := Collect("empty.c", "", nil)
	assert.True(t, result.IsEmpty())
	assert.NotNil(t, result.FC)
	assert.Empty(t, result.FC)
}

func TestCollectCooperativeModeDropsUnconfirmedPlainName(t *testing.T) {
	// A plain (non-macro) definition the external parser never echoes is
	// dropped under cooperative-mode's literal multiset reconciliation
	// (see DESIGN.md); this is why standalone mode (nil parserNames)
	// exists as a distinct path.
	source := "int foo(void) { }"
	result := Collect("foo.c", source, []string{})
	assert.Empty(t, result.FC)
}

func TestCollectCooperativeModeConfirmsPlainNameReportedByParser(t *testing.T) {
	source := "int foo(void) { }"
	result := Collect("foo.c", source, []string{"foo"})
	assert.Equal(t, []string{"foo"}, result.FC)
}
