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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imagingtools/jvmhost/internal/jvm"
	"github.com/imagingtools/jvmhost/internal/prefs"
)

func newArgsCommand() *cobra.Command {
	var (
		prefsPath  string
		archiveDir string
	)

	cmd := &cobra.Command{
		Use:   "args",
		Short: "Print the startup arguments the JVM would receive",
		Long: `Resolves the startup configuration from the environment, the
preference store, and the logback search path, then prints the resulting
JVM argument vector, one flag per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			preferences, err := prefs.Load(prefsPath)
			if err != nil {
				return err
			}

			cfg, err := jvm.NewResolver(preferences).
				WithArchiveDir(archiveDir).
				Resolve()
			if err != nil {
				return err
			}

			for _, flag := range jvm.BuildArgs(cfg) {
				fmt.Fprintln(cmd.OutOrStdout(), flag)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefsPath, "prefs", "", "preference file path (default: user config directory)")
	cmd.Flags().StringVar(&archiveDir, "archive-dir", "", "bundled-archive directory")

	return cmd
}
