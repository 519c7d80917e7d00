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

import "fmt"

// Start stages reported by StartError and the failure metrics.
const (
	StageResolve   = "resolve"
	StageClasspath = "classpath"
	StageBoot      = "boot"
	StagePostStart = "post_start"
)

// StartError indicates the JVM could not be brought into a usable state.
// Callers must not assume the VM is usable after receiving one; no rollback
// of partial VM state is attempted.
type StartError struct {
	// Stage identifies where the start sequence failed.
	Stage string
	Err   error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("jvm start failed (%s): %v", e.Stage, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// AttachError indicates the calling thread could not be attached to the
// running JVM. It is fatal to that thread only; the VM itself is unaffected.
type AttachError struct {
	Err error
}

func (e *AttachError) Error() string {
	return fmt.Sprintf("failed to attach thread to jvm: %v", e.Err)
}

func (e *AttachError) Unwrap() error { return e.Err }

// StopError indicates the bridge's kill call failed.
type StopError struct {
	Err error
}

func (e *StopError) Error() string {
	return fmt.Sprintf("jvm shutdown failed: %v", e.Err)
}

func (e *StopError) Unwrap() error { return e.Err }
