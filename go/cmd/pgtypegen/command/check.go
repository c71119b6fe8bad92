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
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Canonical-LLC/psycopg/go/common/pgtypes"
	"github.com/Canonical-LLC/psycopg/go/tools/typegen"
)

// ErrTableOutdated is returned by check when the built-in table does not
// match the server catalog.
var ErrTableOutdated = errors.New("built-in type table does not match the server catalog")

// AddCheckCommand adds the check subcommand to root.
func AddCheckCommand(root *cobra.Command, pc *PgTypeGenCommand) {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare the built-in type table with a live server",
		Long: `Compare the built-in type table with the pg_type catalog of a live server.

The command exits with a non-zero status if any type is missing, changed, or
no longer present on the server.`,
		Args: cobra.NoArgs,
		RunE: pc.runCheck,
	}
	root.AddCommand(cmd)
}

func (pc *PgTypeGenCommand) runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := pc.Config()
	if err != nil {
		return err
	}

	var diff typegen.Diff
	err = pc.withSource(cmd.Context(), cfg, func(ctx context.Context, src Source) error {
		g := typegen.NewGenerator(src, pc.fs, pc.lg.GetLogger())
		diff, err = g.Check(ctx, pgtypes.Builtins)
		return err
	})
	if err != nil {
		return err
	}

	writeDiff(cmd.OutOrStdout(), diff)
	if !diff.Empty() {
		pc.lg.GetLogger().Warn("type table is outdated",
			"missing", len(diff.Missing), "changed", len(diff.Changed), "extra", len(diff.Extra))
		return ErrTableOutdated
	}
	fmt.Fprintln(cmd.OutOrStdout(), "built-in type table is up to date")
	return nil
}

func writeDiff(w io.Writer, d typegen.Diff) {
	for _, t := range d.Missing {
		fmt.Fprintf(w, "+ %s\n", typegen.FormatRow(t))
	}
	for _, t := range d.Changed {
		if old, ok := pgtypes.Builtins.ByName(t.Name); ok {
			fmt.Fprintf(w, "- %s\n", typegen.FormatRow(old))
		}
		fmt.Fprintf(w, "+ %s\n", typegen.FormatRow(t))
	}
	for _, t := range d.Extra {
		fmt.Fprintf(w, "- %s\n", typegen.FormatRow(t))
	}
}
