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

// Command jvmhost provides read-only diagnostics for the embedded JVM
// subsystem. It never starts a VM: the lifecycle itself is only reachable
// programmatically through the host application.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/imagingtools/jvmhost/internal/log"
)

// Version information (injected via ldflags at build time)
var version = "dev"

func main() {
	logger := log.New(log.FromEnv())
	slog.SetDefault(logger)

	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jvmhost",
		Short:         "Diagnostics for the embedded JVM subsystem",
		Long:          "Inspect the classpath and startup arguments the host application would hand to the embedded JVM, without starting one.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newClasspathCommand())
	cmd.AddCommand(newArgsCommand())

	return cmd
}
