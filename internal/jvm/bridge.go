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

import "context"

// Bridge abstracts the interop layer that controls the embedded JVM.
//
// The bridge guarantees at most one VM per host process. Attachment is a
// per-thread capability: each calling thread must attach itself before
// using VM-dependent functionality.
type Bridge interface {
	// IsActive reports whether a VM is already running in this process.
	IsActive() bool

	// Start boots the VM with the given argument vector and classpath.
	// It blocks until the VM is up or the boot has failed.
	Start(ctx context.Context, args []string, classpath []string) error

	// AttachCurrentThread registers the calling thread with the running VM.
	AttachCurrentThread() error

	// Kill shuts the VM down. Behavior when no VM is running is up to the
	// bridge implementation.
	Kill() error

	// RequiredArchives returns the bridge's own archive list, in the fixed
	// order it must appear on the classpath.
	RequiredArchives() []string

	// CacheDirectoryListings toggles directory-listing caching on the VM's
	// loci.common.Location service. Only valid after a successful Start.
	CacheDirectoryListings(enabled bool) error
}
