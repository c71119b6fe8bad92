// Copyright 2025 Supabase, Inc.
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

package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Canonical-LLC/psycopg/go/tools/typegen"
	"github.com/Canonical-LLC/psycopg/go/tools/viperutil"
)

// AddGenerateCommand adds the generate subcommand to root.
func AddGenerateCommand(root *cobra.Command, pc *PgTypeGenCommand) {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the built-in type table from a live server",
		Long: `Regenerate the built-in type table from a live server.

The lines between the "autogenerated: start" and "autogenerated: end" markers
of the output file are replaced with one row per type found in pg_type.

Examples:
  # Regenerate using PG* environment variables
  pgtypegen generate

  # Regenerate from a specific server
  pgtypegen generate --dsn "host=localhost port=5433 user=postgres sslmode=disable"`,
		Args: cobra.NoArgs,
		RunE: pc.runGenerate,
	}
	cmd.Flags().String("output", pc.output.Default(), "Go file holding the autogenerated markers")
	viperutil.BindFlags(cmd.Flags(), pc.output)
	root.AddCommand(cmd)
}

func (pc *PgTypeGenCommand) runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := pc.Config()
	if err != nil {
		return err
	}

	var n int
	err = pc.withSource(cmd.Context(), cfg, func(ctx context.Context, src Source) error {
		g := typegen.NewGenerator(src, pc.fs, pc.lg.GetLogger())
		n, err = g.Generate(ctx, cfg.Output)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d types to %s\n", n, cfg.Output)
	return nil
}
