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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/imagingtools/jvmhost/internal/classpath"
)

func newClasspathCommand() *cobra.Command {
	var (
		archiveDir     string
		bridgeArchives []string
		frozen         bool
	)

	cmd := &cobra.Command{
		Use:   "classpath",
		Short: "Print the classpath the JVM would be started with",
		Long: `Assembles and prints the ordered classpath, one entry per line:
CLASSPATH environment entries, bundled archives, bridge archives, and
(Windows, non-frozen hosts) the JDK tools archive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := classpath.NewAssembler(archiveDir, bridgeArchives).
				WithFrozenBundle(frozen).
				WithLogger(slog.Default()).
				Assemble()
			if err != nil {
				return err
			}

			for _, entry := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), entry)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&archiveDir, "archive-dir", "", "bundled-archive directory to scan")
	cmd.Flags().StringSliceVar(&bridgeArchives, "bridge-archive", nil, "bridge-required archive (repeatable, fixed order)")
	cmd.Flags().BoolVar(&frozen, "frozen", false, "treat the host as a self-contained bundle")

	return cmd
}
