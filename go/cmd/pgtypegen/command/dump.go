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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Canonical-LLC/psycopg/go/common/pgtypes"
	"github.com/Canonical-LLC/psycopg/go/tools/typegen"
	"github.com/Canonical-LLC/psycopg/go/tools/viperutil"
)

// AddDumpCommand adds the dump subcommand to root.
func AddDumpCommand(root *cobra.Command, pc *PgTypeGenCommand) {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the built-in type table",
		Long: `Print the built-in type table without connecting to a server.

Extension types listed in a YAML file (same layout as --format yaml output)
can be merged in with --types-file. A type whose name, OID or array OID is
already known is skipped, so built-in types are never replaced.`,
		Args: cobra.NoArgs,
		RunE: pc.runDump,
	}
	cmd.Flags().String("format", pc.format.Default(), "Output format (yaml, go)")
	cmd.Flags().String("types-file", pc.typesFile.Default(), "YAML file with additional types")
	viperutil.BindFlags(cmd.Flags(), pc.format, pc.typesFile)
	root.AddCommand(cmd)
}

func (pc *PgTypeGenCommand) runDump(cmd *cobra.Command, args []string) error {
	cfg, err := pc.Config()
	if err != nil {
		return err
	}

	reg := pgtypes.Builtins
	if cfg.TypesFile != "" {
		reg, err = pc.loadTypesFile(cfg.TypesFile)
		if err != nil {
			return err
		}
	}

	return dump(cmd.OutOrStdout(), cfg.Format, reg)
}

func (pc *PgTypeGenCommand) loadTypesFile(path string) (*pgtypes.Registry, error) {
	f, err := pc.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open types file: %w", err)
	}
	defer f.Close()

	types, err := pgtypes.ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	reg := pgtypes.Builtins.Clone()
	for _, t := range types {
		if known, key, ok := shadowedBy(reg, t); ok {
			pc.lg.GetLogger().Warn("skipping type shadowing a known type",
				"type", t.Name, "key", key, "known", known.Name)
			continue
		}
		reg.Add(t)
	}
	pc.lg.GetLogger().Debug("loaded types file", "path", path, "types", len(types))
	return reg, nil
}

// shadowedBy returns the registered type that t would displace, and the key
// they share: its name, its OID or its array OID.
func shadowedBy(reg *pgtypes.Registry, t pgtypes.TypeInfo) (pgtypes.TypeInfo, string, bool) {
	if known, ok := reg.ByName(t.Name); ok {
		return known, "name", true
	}
	if known, ok := reg.ByOID(t.OID); ok {
		return known, "oid", true
	}
	if t.ArrayOID != pgtypes.InvalidOid {
		if known, ok := reg.ByOID(t.ArrayOID); ok {
			return known, "array_oid", true
		}
	}
	return pgtypes.TypeInfo{}, "", false
}

func dump(w io.Writer, format string, reg *pgtypes.Registry) error {
	switch format {
	case "yaml":
		return pgtypes.WriteYAML(w, reg.All())
	case "go":
		for t := range reg.All() {
			if _, err := fmt.Fprintln(w, typegen.FormatRow(t)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (options: go, yaml)", format)
	}
}
