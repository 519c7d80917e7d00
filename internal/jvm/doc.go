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

/*
Package jvm manages the lifecycle of the embedded Java virtual machine.

The JVM is a process-wide singleton owned by the bridge: at most one
instance exists per host process, and every thread that calls into it must
attach itself first. The Controller serializes the check-activity/cold-start
sequence behind a mutex so that concurrent Start calls cannot race into a
double boot.

# Starting

	preferences, _ := prefs.Load("")
	controller := jvm.NewController(bridge, preferences) // bridge: the host's Bridge implementation
	if err := controller.Start(ctx); err != nil {
	    // Handle error
	}

Start is safe to call from any goroutine at any time. If the JVM is already
running it only attaches the calling thread; otherwise it resolves an
immutable StartupConfig, assembles the classpath, boots the JVM, attaches,
and enables directory-listing caching on the bridge's Location service.

# Stopping

	if err := controller.Stop(ctx); err != nil {
	    // Handle error
	}

Stop kills the JVM unconditionally. The underlying VM cannot be restarted
in-process by every bridge implementation; callers that stop and start again
get a fresh cold-start attempt and must be prepared for the bridge to
reject it.

# Errors

Failures surface as *StartError, *AttachError, and *StopError, all
unwrappable with errors.As. No local recovery or rollback is attempted: a
failed start leaves the JVM in an unusable state that requires process-level
remediation.
*/
package jvm
