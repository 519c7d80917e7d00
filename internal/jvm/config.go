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
	"runtime"
	"strings"

	"github.com/imagingtools/jvmhost/internal/prefs"
)

// Environment variables consulted when resolving startup configuration.
const (
	// JDWPPortEnvVar holds a TCP port; presence enables the JVM debug agent.
	JDWPPortEnvVar = "JVMHOST_JDWP_PORT"
	// FrozenEnvVar marks the host as a self-contained bundle.
	FrozenEnvVar = "JVMHOST_FROZEN"
	// ArchiveDirEnvVar overrides the bundled-archive directory.
	ArchiveDirEnvVar = "JVMHOST_ARCHIVE_DIR"
)

// Fixed JVM flags.
const (
	loaderFlag             = "-Dloci.bioformats.loaded=true"
	preferencesFactoryFlag = "-Djava.util.prefs.PreferencesFactory=" +
		"org.jvmhost.prefs.HeadlessPreferencesFactory"
	headlessFlag = "-Djava.awt.headless=true"
)

// StartupConfig is the immutable configuration a cold start is a function
// of. It is resolved once, before any bridge call.
type StartupConfig struct {
	// LogbackPath is the located logging configuration file, or empty.
	LogbackPath string
	// AWTHeadless disables the JVM's graphical subsystem.
	AWTHeadless bool
	// DebugPort enables a JDWP debug listener on the given port when set.
	DebugPort string
	// FrozenBundle marks the host as a self-contained executable.
	FrozenBundle bool
	// ArchiveDir is the bundled-archive directory.
	ArchiveDir string
	// GOOS is the platform the config was resolved for.
	GOOS string
}

// Resolver produces a StartupConfig from the environment, the preference
// store, and the logging-config locator.
type Resolver struct {
	preferences   prefs.Preferences
	lookupEnv     func(string) (string, bool)
	goos          string
	archiveDir    string
	locateLogback func() (string, error)
}

// NewResolver creates a resolver over the given preference store.
func NewResolver(preferences prefs.Preferences) *Resolver {
	return &Resolver{
		preferences:   preferences,
		lookupEnv:     os.LookupEnv,
		goos:          runtime.GOOS,
		locateLogback: FindLogbackConfig,
	}
}

// WithArchiveDir sets the default bundled-archive directory. The
// JVMHOST_ARCHIVE_DIR environment variable still takes precedence.
func (r *Resolver) WithArchiveDir(dir string) *Resolver {
	r.archiveDir = dir
	return r
}

// WithEnvLookup overrides environment variable lookup.
func (r *Resolver) WithEnvLookup(lookup func(string) (string, bool)) *Resolver {
	r.lookupEnv = lookup
	return r
}

// WithGOOS overrides the platform the config is resolved for.
func (r *Resolver) WithGOOS(goos string) *Resolver {
	r.goos = goos
	return r
}

// WithLogbackLocator overrides the logging-config search.
func (r *Resolver) WithLogbackLocator(locate func() (string, error)) *Resolver {
	r.locateLogback = locate
	return r
}

// Resolve gathers all startup inputs into an immutable StartupConfig.
func (r *Resolver) Resolve() (*StartupConfig, error) {
	cfg := &StartupConfig{
		GOOS:        r.goos,
		ArchiveDir:  r.archiveDir,
		AWTHeadless: r.preferences.AWTHeadless(),
	}

	if dir, ok := r.lookupEnv(ArchiveDirEnvVar); ok && dir != "" {
		cfg.ArchiveDir = dir
	}
	if frozen, ok := r.lookupEnv(FrozenEnvVar); ok {
		cfg.FrozenBundle = frozen == "1" || strings.EqualFold(frozen, "true")
	}
	if port, ok := r.lookupEnv(JDWPPortEnvVar); ok && port != "" {
		cfg.DebugPort = port
	}

	logbackPath, err := r.locateLogback()
	if err != nil {
		return nil, fmt.Errorf("failed to locate logback config: %w", err)
	}
	cfg.LogbackPath = logbackPath

	return cfg, nil
}

// BuildArgs produces the JVM argument vector for the given config.
// The loader and preferences-factory flags are always present; the
// remaining flags are conditional on the resolved config.
func BuildArgs(cfg *StartupConfig) []string {
	args := []string{loaderFlag, preferencesFactoryFlag}

	if cfg.LogbackPath != "" {
		path := cfg.LogbackPath
		if cfg.GOOS == "windows" && !cfg.FrozenBundle {
			path = rewriteWindowsPath(path)
		}
		args = append(args, "-Dlogback.configurationFile="+path)
	}

	if cfg.AWTHeadless {
		args = append(args, headlessFlag)
	}

	if cfg.DebugPort != "" {
		args = append(args, fmt.Sprintf(
			"-agentlib:jdwp=transport=dt_socket,address=127.0.0.1:%s,server=y,suspend=n",
			cfg.DebugPort))
	}

	return args
}

// rewriteWindowsPath converts a Windows path to the forward-slash form the
// JVM's logback loader accepts. Drive-letter prefixes become UNC-style
// administrative-share references: \\localhost\X$ names the same tree as X:.
func rewriteWindowsPath(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	if len(path) >= 2 && path[1] == ':' {
		path = "//localhost/" + string(path[0]) + "$" + path[2:]
	}
	return path
}
