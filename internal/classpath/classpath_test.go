// Copyright 2026 The jvmhost Authors
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

package classpath

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagingtools/jvmhost/internal/jdk"
)

type fakeLocator struct {
	home string
	err  error
}

func (f fakeLocator) Find() (string, error) {
	return f.home, f.err
}

func envWith(value string, present bool) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if key == EnvVar && present {
			return value, true
		}
		return "", false
	}
}

func writeArchives(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("pk"), 0600))
	}
	return dir
}

func TestAssemble_EnvEntriesLeadInOrder(t *testing.T) {
	raw := strings.Join([]string{"/a/one.jar", "/b/two.jar", "/c/three.jar"}, string(os.PathListSeparator))

	entries, err := NewAssembler("", []string{"/bridge/rt.jar"}).
		WithEnvLookup(envWith(raw, true)).
		WithGOOS("linux").
		Assemble()
	require.NoError(t, err)

	require.Len(t, entries, 4)
	assert.Equal(t, []string{"/a/one.jar", "/b/two.jar", "/c/three.jar"}, entries[:3])
	assert.Equal(t, "/bridge/rt.jar", entries[3])
}

func TestAssemble_MissingEnvVarSkipped(t *testing.T) {
	entries, err := NewAssembler("", nil).
		WithEnvLookup(envWith("", false)).
		WithGOOS("linux").
		Assemble()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAssemble_BundledArchivesBeforeRequired(t *testing.T) {
	dir := writeArchives(t, "alpha.jar", "beta.JAR", "notes.txt")

	entries, err := NewAssembler(dir, []string{"/bridge/rt.jar", "/bridge/cpython.jar"}).
		WithEnvLookup(envWith("", false)).
		WithGOOS("linux").
		Assemble()
	require.NoError(t, err)

	// Directory scan is sorted by os.ReadDir; case-insensitive extension match.
	assert.Equal(t, []string{
		filepath.Join(dir, "alpha.jar"),
		filepath.Join(dir, "beta.JAR"),
		"/bridge/rt.jar",
		"/bridge/cpython.jar",
	}, entries)
}

func TestAssemble_ToolsJarAppendedLastOnWindows(t *testing.T) {
	dir := writeArchives(t, "alpha.jar")

	entries, err := NewAssembler(dir, []string{"/bridge/rt.jar"}).
		WithEnvLookup(envWith("/env/extra.jar", true)).
		WithGOOS("windows").
		WithJDKLocator(fakeLocator{home: "/jdk"}).
		Assemble()
	require.NoError(t, err)

	require.NotEmpty(t, entries)
	assert.Equal(t, filepath.Join("/jdk", "lib", "tools.jar"), entries[len(entries)-1])
	assert.Equal(t, "/env/extra.jar", entries[0])
}

func TestAssemble_ToolsJarLookupFailureNonFatal(t *testing.T) {
	entries, err := NewAssembler("", []string{"/bridge/rt.jar"}).
		WithEnvLookup(envWith("", false)).
		WithGOOS("windows").
		WithJDKLocator(fakeLocator{err: jdk.ErrNotFound}).
		Assemble()
	require.NoError(t, err)
	assert.Equal(t, []string{"/bridge/rt.jar"}, entries)
}

func TestAssemble_FrozenBundleSkipsToolsJar(t *testing.T) {
	entries, err := NewAssembler("", nil).
		WithEnvLookup(envWith("", false)).
		WithGOOS("windows").
		WithFrozenBundle(true).
		WithJDKLocator(fakeLocator{home: "/jdk"}).
		Assemble()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAssemble_NonWindowsSkipsToolsJar(t *testing.T) {
	entries, err := NewAssembler("", nil).
		WithEnvLookup(envWith("", false)).
		WithGOOS("darwin").
		WithJDKLocator(fakeLocator{home: "/jdk"}).
		Assemble()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAssemble_DuplicatesPreserved(t *testing.T) {
	dir := writeArchives(t, "rt.jar")
	dup := filepath.Join(dir, "rt.jar")

	entries, err := NewAssembler(dir, []string{dup}).
		WithEnvLookup(envWith(dup, true)).
		WithGOOS("linux").
		Assemble()
	require.NoError(t, err)

	// Overlapping sources keep their entries; no deduplication.
	assert.Equal(t, []string{dup, dup, dup}, entries)
}

func TestAssemble_ArchiveDirUnreadable(t *testing.T) {
	_, err := NewAssembler(filepath.Join(t.TempDir(), "missing"), nil).
		WithEnvLookup(envWith("", false)).
		WithGOOS("linux").
		Assemble()
	assert.Error(t, err)
}

func TestAssemble_CustomPatterns(t *testing.T) {
	dir := writeArchives(t, "core.jar", "core.zip", "core.war")

	entries, err := NewAssembler(dir, nil).
		WithEnvLookup(envWith("", false)).
		WithGOOS("linux").
		WithPatterns([]string{"*.jar", "*.zip"}).
		Assemble()
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "core.jar"),
		filepath.Join(dir, "core.zip"),
	}, entries)
}
