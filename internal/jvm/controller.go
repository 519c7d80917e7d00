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
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/imagingtools/jvmhost/internal/classpath"
	"github.com/imagingtools/jvmhost/internal/log"
	"github.com/imagingtools/jvmhost/internal/prefs"
)

// Controller owns the process-wide JVM lifecycle state.
//
// All public methods are safe for concurrent use. One mutex guards the
// whole check-activity/cold-start sequence: two threads calling Start
// while the VM is down serialize, the first performs the cold start, the
// second observes the active VM and merely attaches.
type Controller struct {
	mu      sync.Mutex
	started bool

	bridge   Bridge
	resolver *Resolver
	logger   *slog.Logger
	tracer   trace.Tracer

	// classpathFn overrides classpath assembly; nil means the default
	// assembler over the resolved config and the bridge's archive list.
	classpathFn func(*StartupConfig) ([]string, error)
}

// NewController creates a lifecycle controller over the given bridge and
// preference store.
func NewController(bridge Bridge, preferences prefs.Preferences) *Controller {
	return &Controller{
		bridge:   bridge,
		resolver: NewResolver(preferences),
		logger:   slog.Default(),
		tracer:   otel.Tracer("jvmhost/jvm"),
	}
}

// WithLogger sets the controller's logger.
func (c *Controller) WithLogger(logger *slog.Logger) *Controller {
	c.logger = logger
	return c
}

// WithResolver overrides the startup configuration resolver.
func (c *Controller) WithResolver(resolver *Resolver) *Controller {
	c.resolver = resolver
	return c
}

// WithClasspathFunc overrides classpath assembly.
func (c *Controller) WithClasspathFunc(fn func(*StartupConfig) ([]string, error)) *Controller {
	c.classpathFn = fn
	return c
}

// Started reports whether a cold start has completed successfully and not
// been followed by a successful Stop.
func (c *Controller) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

// Start brings the JVM up, or attaches the calling thread if it is already
// running.
//
// If the bridge reports an active VM, the calling thread is attached and
// Start returns; this is the path for every thread after the first, and
// for restart-without-kill scenarios. Otherwise Start performs the full
// cold-start sequence and only then marks the controller started. Failures
// surface as *AttachError or *StartError; no partial-state cleanup is
// attempted on a failed start.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bridge.IsActive() {
		if err := c.bridge.AttachCurrentThread(); err != nil {
			failuresByStage.WithLabelValues("attach").Inc()
			return &AttachError{Err: err}
		}
		threadAttaches.Inc()
		return nil
	}

	return c.coldStart(ctx)
}

// coldStart boots the VM. Caller must hold c.mu.
func (c *Controller) coldStart(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "jvm.cold_start")
	defer span.End()

	logger := log.WithSession(c.logger, uuid.New().String())
	logger.Info("initializing java virtual machine")

	cfg, err := c.resolver.Resolve()
	if err != nil {
		failuresByStage.WithLabelValues(StageResolve).Inc()
		return &StartError{Stage: StageResolve, Err: err}
	}

	if cfg.AWTHeadless {
		logger.Debug("jvm will be started with awt in headless mode")
	}
	if cfg.LogbackPath != "" {
		logger.Debug("using logback configuration", slog.String("path", cfg.LogbackPath))
	}

	args := BuildArgs(cfg)

	entries, err := c.assembleClasspath(cfg, logger)
	if err != nil {
		failuresByStage.WithLabelValues(StageClasspath).Inc()
		return &StartError{Stage: StageClasspath, Err: err}
	}
	logger.Debug("assembled jvm classpath", slog.Int(log.ClasspathSizeKey, len(entries)))

	bootStart := time.Now()
	if err := c.bridge.Start(ctx, args, entries); err != nil {
		failuresByStage.WithLabelValues(StageBoot).Inc()
		return &StartError{Stage: StageBoot, Err: err}
	}

	if err := c.bridge.AttachCurrentThread(); err != nil {
		failuresByStage.WithLabelValues("attach").Inc()
		return &AttachError{Err: err}
	}
	threadAttaches.Inc()

	// The VM is not considered usable until directory-listing caching is
	// enabled on the bridge's Location service.
	if err := c.bridge.CacheDirectoryListings(true); err != nil {
		failuresByStage.WithLabelValues(StagePostStart).Inc()
		return &StartError{Stage: StagePostStart, Err: err}
	}
	logger.Debug("enabled directory listing caching")

	c.started = true
	coldStarts.Inc()
	coldStartDuration.Observe(time.Since(bootStart).Seconds())
	logger.Info("java virtual machine started",
		slog.Int64("duration_ms", time.Since(bootStart).Milliseconds()))
	return nil
}

func (c *Controller) assembleClasspath(cfg *StartupConfig, logger *slog.Logger) ([]string, error) {
	if c.classpathFn != nil {
		return c.classpathFn(cfg)
	}
	return classpath.NewAssembler(cfg.ArchiveDir, c.bridge.RequiredArchives()).
		WithFrozenBundle(cfg.FrozenBundle).
		WithGOOS(cfg.GOOS).
		WithLogger(logger).
		Assemble()
}

// Stop shuts the JVM down. The kill call is issued unconditionally,
// whatever the controller's current state; rejecting a stop when no VM is
// running is the bridge's responsibility. On success the started flag is
// reset, so a later Start performs a fresh cold start.
func (c *Controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, span := c.tracer.Start(ctx, "jvm.stop")
	defer span.End()

	c.logger.Info("shutting down java virtual machine")
	if err := c.bridge.Kill(); err != nil {
		failuresByStage.WithLabelValues("stop").Inc()
		return &StopError{Err: err}
	}

	c.started = false
	stops.Inc()
	return nil
}
