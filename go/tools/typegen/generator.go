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

package typegen

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/Canonical-LLC/psycopg/go/common/pgtypes"
)

// Generator rewrites the built-in type table from a CatalogSource.
type Generator struct {
	source CatalogSource
	fs     afero.Fs
	logger *slog.Logger
}

// NewGenerator returns a Generator reading the catalog from source and
// files from fs. A nil logger means slog.Default().
func NewGenerator(source CatalogSource, fs afero.Fs, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{source: source, fs: fs, logger: logger}
}

// Generate replaces the table between the markers of the Go file at path and
// returns the number of rows written.
func (g *Generator) Generate(ctx context.Context, path string) (int, error) {
	info, err := g.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	src, err := afero.ReadFile(g.fs, path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	version, err := g.source.ServerVersion(ctx)
	if err != nil {
		return 0, err
	}
	types, err := g.source.Types(ctx)
	if err != nil {
		return 0, err
	}
	g.logger.Debug("read catalog", "server_version", version, "types", len(types))

	out, err := Splice(src, FormatTable(version, types))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if err := afero.WriteFile(g.fs, path, out, info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	g.logger.Info("regenerated type table", "path", path, "server_version", version, "types", len(types))
	return len(types), nil
}

// Diff lists the differences between a server catalog and a registry.
type Diff struct {
	// Missing are catalog types the registry does not know.
	Missing []pgtypes.TypeInfo
	// Changed are catalog types the registry knows with different metadata.
	Changed []pgtypes.TypeInfo
	// Extra are registry types absent from the catalog.
	Extra []pgtypes.TypeInfo
}

// Empty reports whether the registry matches the catalog.
func (d Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Changed) == 0 && len(d.Extra) == 0
}

// Check compares the catalog against reg by type name.
func (g *Generator) Check(ctx context.Context, reg *pgtypes.Registry) (Diff, error) {
	types, err := g.source.Types(ctx)
	if err != nil {
		return Diff{}, err
	}
	return Compare(types, reg), nil
}

// Compare reports how reg differs from the catalog rows in types.
func Compare(types []pgtypes.TypeInfo, reg *pgtypes.Registry) Diff {
	var d Diff
	names := make(map[string]struct{}, len(types))
	for _, t := range types {
		names[t.Name] = struct{}{}
		known, ok := reg.ByName(t.Name)
		switch {
		case !ok || known.Name != t.Name:
			d.Missing = append(d.Missing, t)
		case known != t:
			d.Changed = append(d.Changed, t)
		}
	}
	for t := range reg.All() {
		if _, ok := names[t.Name]; !ok {
			d.Extra = append(d.Extra, t)
		}
	}
	slices.SortFunc(d.Extra, func(a, b pgtypes.TypeInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return d
}
