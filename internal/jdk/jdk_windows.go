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

//go:build windows

package jdk

import (
	"os"

	"golang.org/x/sys/windows/registry"
)

// Registry keys published by JDK installers, newest layout first.
var registryKeys = []string{
	`SOFTWARE\JavaSoft\JDK`,
	`SOFTWARE\JavaSoft\Java Development Kit`,
}

// findPlatform probes the Windows registry for a JDK installation.
// Installers record the current version under the vendor key and the
// installation root under a per-version subkey's JavaHome value.
func findPlatform() (string, error) {
	for _, keyPath := range registryKeys {
		home, err := javaHomeFromKey(keyPath)
		if err == nil {
			return home, nil
		}
	}
	return "", ErrNotFound
}

func javaHomeFromKey(keyPath string) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.READ)
	if err != nil {
		return "", ErrNotFound
	}
	defer key.Close()

	version, _, err := key.GetStringValue("CurrentVersion")
	if err != nil {
		return "", ErrNotFound
	}

	versionKey, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath+`\`+version, registry.READ)
	if err != nil {
		return "", ErrNotFound
	}
	defer versionKey.Close()

	home, _, err := versionKey.GetStringValue("JavaHome")
	if err != nil {
		return "", ErrNotFound
	}

	if info, statErr := os.Stat(home); statErr != nil || !info.IsDir() {
		return "", ErrNotFound
	}
	return home, nil
}
