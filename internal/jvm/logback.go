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

package jvm

import (
	"fmt"
	"os"
	"path/filepath"
)

// LogbackFileName is the Java logging configuration file searched for at
// startup.
const LogbackFileName = "logback.xml"

// FindLogbackConfig searches the standard candidate directories for a
// logback.xml file and returns the first match. Absence is not an error:
// it returns "", nil and the JVM falls back to its built-in logging
// defaults.
//
// Candidates, in order: the current working directory, the directory
// containing the running executable, and the java/src/main/resources tree
// three levels above the executable (source-checkout layout).
func FindLogbackConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}

	return findLogbackIn(logbackCandidates(cwd, filepath.Dir(exe))), nil
}

// logbackCandidates returns the ordered search directories for the given
// working directory and installation base.
func logbackCandidates(cwd, base string) []string {
	return []string{
		cwd,
		base,
		filepath.Join(base, "..", "..", "..", "java", "src", "main", "resources"),
	}
}

// findLogbackIn returns the first directory in dirs containing the logback
// file, joined with its name, or "" if none does.
func findLogbackIn(dirs []string) string {
	for _, dir := range dirs {
		target := filepath.Join(dir, LogbackFileName)
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			return target
		}
	}
	return ""
}
