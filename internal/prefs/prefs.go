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

// Package prefs stores host-application preferences consulted at JVM startup.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preferences exposes the preference reads the JVM startup path consumes.
type Preferences interface {
	// AWTHeadless reports whether the embedded JVM should disable its
	// graphical subsystem.
	AWTHeadless() bool
}

// Values is the on-disk preference document.
type Values struct {
	AWTHeadless bool `yaml:"awt_headless"`
}

// Store is a YAML file-backed preference store.
type Store struct {
	path   string
	values Values
}

// DefaultPath returns the preference file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, "jvmhost", "preferences.yaml"), nil
}

// Load reads the preference file at path. A missing file is not an error;
// it yields default values. If path is empty, DefaultPath is used.
func Load(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	return s, nil
}

// Save writes the preference file, creating the parent directory if needed.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := yaml.Marshal(&s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

// AWTHeadless reports the headless-AWT preference.
func (s *Store) AWTHeadless() bool {
	return s.values.AWTHeadless
}

// SetAWTHeadless updates the headless-AWT preference in memory.
// Call Save to persist it.
func (s *Store) SetAWTHeadless(headless bool) {
	s.values.AWTHeadless = headless
}

// Fixed returns a Preferences implementation with a constant headless value.
// Useful for hosts that decide headless mode programmatically and in tests.
func Fixed(headless bool) Preferences {
	return fixed(headless)
}

type fixed bool

func (f fixed) AWTHeadless() bool { return bool(f) }
