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

package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("foo_bar123"))
	assert.True(t, IsIdentifier("_leading"))
	assert.False(t, IsIdentifier("123leading"))
	assert.False(t, IsIdentifier("has space"))
	assert.False(t, IsIdentifier(""))
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("int"))
	assert.True(t, IsReserved("_Bool"))
	assert.False(t, IsReserved("myfunc"))
}

func TestAccept(t *testing.T) {
	assert.True(t, Accept("foo"))
	assert.False(t, Accept("int"))
	assert.False(t, Accept(""))
	assert.False(t, Accept("1foo"))
}

func TestIsControl(t *testing.T) {
	for _, k := range []string{"if", "else", "for", "while", "do", "switch", "case", "default", "break", "continue", "return", "goto", "sizeof"} {
		assert.True(t, IsControl(k), k)
	}
	assert.False(t, IsControl("int"))
}

func TestIsDeclarationExcludesControl(t *testing.T) {
	assert.True(t, IsDeclaration("int"))
	assert.True(t, IsDeclaration("static"))
	assert.True(t, IsDeclaration("__attribute__"))
	assert.False(t, IsDeclaration("if"))
	assert.False(t, IsDeclaration("sizeof"))
}
