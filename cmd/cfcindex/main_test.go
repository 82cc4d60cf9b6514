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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cfcscan/parsercfc/internal/report"
)

func TestReadFCJSONRoundTrip(t *testing.T) {
	// cfcindex's main() reads its summary straight off report.Read; this
	// exercises the same path the binary uses without invoking flag.Parse
	// or os.Exit, which aren't test-friendly in a single binary.
	dir := t.TempDir()
	path := filepath.Join(dir, "fc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "/a.c": {"fc": ["foo", "bar"]},
  "/b.c": {"fc": []}
}`), 0o644))

	entries, err := report.Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, []string{"foo", "bar"}, entries["/a.c"].FC)
	require.Empty(t, entries["/b.c"].FC)
}
