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

package jdk

import (
	"errors"
	"os"
	"testing"
)

func TestSystemLocator_JavaHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JAVA_HOME", dir)
	t.Setenv("JDK_HOME", "")
	os.Unsetenv("JDK_HOME")

	home, err := SystemLocator{}.Find()
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if home != dir {
		t.Errorf("Find() = %q, want %q", home, dir)
	}
}

func TestSystemLocator_JDKHomeFallback(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JAVA_HOME", "")
	os.Unsetenv("JAVA_HOME")
	t.Setenv("JDK_HOME", dir)

	home, err := SystemLocator{}.Find()
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if home != dir {
		t.Errorf("Find() = %q, want %q", home, dir)
	}
}

func TestSystemLocator_NonexistentJavaHomeIgnored(t *testing.T) {
	t.Setenv("JAVA_HOME", "/definitely/not/a/real/jdk")
	t.Setenv("JDK_HOME", "")
	os.Unsetenv("JDK_HOME")

	// With JAVA_HOME pointing nowhere the locator falls through to the
	// platform probe, which fails on machines without an installed JDK.
	// Either outcome must be ErrNotFound or a real installation root.
	home, err := SystemLocator{}.Find()
	if err != nil && !errors.Is(err, ErrNotFound) {
		t.Errorf("Find() error = %v, want ErrNotFound", err)
	}
	if err == nil && home == "/definitely/not/a/real/jdk" {
		t.Errorf("Find() returned the nonexistent JAVA_HOME path")
	}
}
