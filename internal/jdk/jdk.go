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

// Package jdk locates a JDK installation on the local machine.
//
// The probe is only meaningful on Windows, where legacy JDK-based setups
// need the installation root to locate lib/tools.jar. Other platforms
// report ErrNotFound unconditionally.
package jdk

import (
	"errors"
	"os"
)

// ErrNotFound is returned when no JDK installation can be located.
var ErrNotFound = errors.New("jdk installation not found")

// Locator finds the root directory of a JDK installation.
type Locator interface {
	// Find returns the JDK installation root, or ErrNotFound.
	Find() (string, error)
}

// SystemLocator probes the environment and (on Windows) the registry.
type SystemLocator struct{}

// Find returns the JDK installation root directory.
// JAVA_HOME and JDK_HOME are honored on every platform before any
// platform-specific probing.
func (SystemLocator) Find() (string, error) {
	for _, key := range []string{"JAVA_HOME", "JDK_HOME"} {
		if home := os.Getenv(key); home != "" {
			if info, err := os.Stat(home); err == nil && info.IsDir() {
				return home, nil
			}
		}
	}
	return findPlatform()
}
