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

// Package classpath assembles the ordered archive list handed to the JVM
// bridge at cold start.
//
// Entry order is significant: classloaders resolve name collisions in favor
// of the first entry, so the assembler preserves source order exactly and
// performs no deduplication. Entries are not checked for existence; the
// bridge validates the classpath when the JVM boots.
package classpath

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/imagingtools/jvmhost/internal/jdk"
)

// EnvVar is the environment variable holding extra classpath entries,
// delimited by the platform path-list separator.
const EnvVar = "CLASSPATH"

// DefaultArchivePatterns matches the bundled bytecode archives.
var DefaultArchivePatterns = []string{"*.jar"}

// Assembler builds the ordered classpath from its configured sources.
type Assembler struct {
	archiveDir string
	patterns   []string
	required   []string
	locator    jdk.Locator
	frozen     bool
	goos       string
	lookupEnv  func(string) (string, bool)
	logger     *slog.Logger
}

// NewAssembler creates an assembler over the bundled-archive directory and
// the bridge's fixed required archive list.
func NewAssembler(archiveDir string, required []string) *Assembler {
	return &Assembler{
		archiveDir: archiveDir,
		patterns:   DefaultArchivePatterns,
		required:   required,
		locator:    jdk.SystemLocator{},
		goos:       runtime.GOOS,
		lookupEnv:  os.LookupEnv,
		logger:     slog.Default(),
	}
}

// WithPatterns overrides the archive filename glob patterns.
// Patterns are matched case-insensitively against base filenames.
func (a *Assembler) WithPatterns(patterns []string) *Assembler {
	a.patterns = patterns
	return a
}

// WithJDKLocator overrides the JDK installation probe.
func (a *Assembler) WithJDKLocator(locator jdk.Locator) *Assembler {
	a.locator = locator
	return a
}

// WithFrozenBundle marks the host as a self-contained bundle, which skips
// the tools.jar lookup.
func (a *Assembler) WithFrozenBundle(frozen bool) *Assembler {
	a.frozen = frozen
	return a
}

// WithGOOS overrides the platform used for the tools.jar decision.
func (a *Assembler) WithGOOS(goos string) *Assembler {
	a.goos = goos
	return a
}

// WithEnvLookup overrides environment variable lookup.
func (a *Assembler) WithEnvLookup(lookup func(string) (string, bool)) *Assembler {
	a.lookupEnv = lookup
	return a
}

// WithLogger sets the diagnostics logger.
func (a *Assembler) WithLogger(logger *slog.Logger) *Assembler {
	a.logger = logger
	return a
}

// Assemble returns the ordered classpath: CLASSPATH environment entries,
// then bundled archives in directory-listing order, then the bridge's
// required archives, then (Windows, non-frozen) the JDK tools archive.
func (a *Assembler) Assemble() ([]string, error) {
	var entries []string

	if raw, ok := a.lookupEnv(EnvVar); ok {
		a.logger.Debug("adding classpath entries from environment",
			slog.String("var", EnvVar),
			slog.String("value", raw))
		entries = append(entries, filepath.SplitList(raw)...)
	}

	bundled, err := a.scanArchives()
	if err != nil {
		return nil, err
	}
	entries = append(entries, bundled...)

	entries = append(entries, a.required...)

	if a.goos == "windows" && !a.frozen {
		if home, err := a.locator.Find(); err == nil {
			entries = append(entries, filepath.Join(home, "lib", "tools.jar"))
		} else {
			a.logger.Warn("failed to find tools.jar", slog.Any("error", err))
		}
	}

	return entries, nil
}

// scanArchives lists the bundled-archive directory and keeps files matching
// the configured patterns, in directory-listing order.
func (a *Assembler) scanArchives() ([]string, error) {
	if a.archiveDir == "" {
		return nil, nil
	}

	dirEntries, err := os.ReadDir(a.archiveDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive directory %s: %w", a.archiveDir, err)
	}

	var archives []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		if a.matchesArchive(entry.Name()) {
			archives = append(archives, filepath.Join(a.archiveDir, entry.Name()))
		}
	}
	return archives, nil
}

func (a *Assembler) matchesArchive(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range a.patterns {
		// Patterns are filename globs; a malformed pattern matches nothing.
		if ok, err := doublestar.Match(strings.ToLower(pattern), lower); err == nil && ok {
			return true
		}
	}
	return false
}
