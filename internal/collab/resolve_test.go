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

package collab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBinaryEnvOverride(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "custom_parser")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv(parserEnvVar, bin)

	resolved, err := ResolveBinary(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, bin, resolved)
}

func TestResolveBinaryBuildSubdir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0o755))
	bin := filepath.Join(root, "build", "cfc_parser")
	require.NoError(t, os.WriteFile(bin, []byte("x"), 0o755))

	resolved, err := ResolveBinary(root)
	require.NoError(t, err)
	assert.Equal(t, bin, resolved)
}

func TestResolveBinarySibling(t *testing.T) {
	root := t.TempDir()
	bin := filepath.Join(root, "cfc_parser")
	require.NoError(t, os.WriteFile(bin, []byte("x"), 0o755))

	resolved, err := ResolveBinary(root)
	require.NoError(t, err)
	assert.Equal(t, bin, resolved)
}

func TestResolveBinaryMissing(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PATH", root)

	_, err := ResolveBinary(root)
	assert.ErrorIs(t, err, ErrMissingParser())
}
