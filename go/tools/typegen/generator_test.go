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
	"database/sql"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Canonical-LLC/psycopg/go/common/pgtypes"
)

func TestGeneratorGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/table.go", []byte(spliceInput), 0o640))

	source := &fakeSource{
		version: "16.4",
		types: []pgtypes.TypeInfo{
			{Name: "bool", OID: 16, ArrayOID: 1000, AltName: "boolean", Delimiter: ','},
			{Name: "box", OID: 603, ArrayOID: 1020, AltName: "box", Delimiter: ';'},
		},
	}
	g := NewGenerator(source, fs, nil)

	n, err := g.Generate(context.Background(), "/src/table.go")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out, err := afero.ReadFile(fs, "/src/table.go")
	require.NoError(t, err)
	assert.Contains(t, string(out), "// Generated from PostgreSQL 16.4")
	assert.Contains(t, string(out), `{"bool", 16, 1000, "boolean", ','},`)
	assert.Contains(t, string(out), `{"box", 603, 1020, "box", ';'},`)
	assert.NotContains(t, string(out), `"old"`)

	info, err := fs.Stat("/src/table.go")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	// Regenerating from the same catalog is a no-op.
	_, err = g.Generate(context.Background(), "/src/table.go")
	require.NoError(t, err)
	again, err := afero.ReadFile(fs, "/src/table.go")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGeneratorGenerateErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		source := &fakeSource{version: "16.4"}
		g := NewGenerator(source, afero.NewMemMapFs(), nil)
		_, err := g.Generate(context.Background(), "/nope.go")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to stat")
		assert.Zero(t, source.calls, "catalog is not queried when the file is missing")
	})

	t.Run("catalog error leaves file untouched", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/table.go", []byte(spliceInput), 0o644))
		g := NewGenerator(&fakeSource{err: errCatalog}, fs, nil)

		_, err := g.Generate(context.Background(), "/table.go")
		assert.ErrorIs(t, err, errCatalog)

		out, err := afero.ReadFile(fs, "/table.go")
		require.NoError(t, err)
		assert.Equal(t, spliceInput, string(out))
	})

	t.Run("no markers", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/table.go", []byte("package pgtypes\n"), 0o644))
		g := NewGenerator(&fakeSource{version: "16.4"}, fs, nil)

		_, err := g.Generate(context.Background(), "/table.go")
		assert.ErrorIs(t, err, ErrMarkersNotFound)
	})
}

func TestCompare(t *testing.T) {
	reg := pgtypes.NewRegistry()
	reg.AddAll([]pgtypes.TypeInfo{
		{Name: "bool", OID: 16, ArrayOID: 1000, AltName: "boolean", Delimiter: ','},
		{Name: "int4", OID: 23, ArrayOID: 1007, AltName: "integer", Delimiter: ','},
		{Name: "opaque", OID: 2282, AltName: "opaque", Delimiter: ','},
		{Name: "abstime", OID: 702, ArrayOID: 1023, AltName: "abstime", Delimiter: ','},
	})

	catalog := []pgtypes.TypeInfo{
		{Name: "bool", OID: 16, ArrayOID: 1000, AltName: "boolean", Delimiter: ','},
		{Name: "int4", OID: 23, ArrayOID: 1007, AltName: "int", Delimiter: ','},
		{Name: "xid8", OID: 5069, ArrayOID: 271, AltName: "xid8", Delimiter: ','},
		// Resolves through an alt name only; still missing.
		{Name: "integer", OID: 9999, AltName: "integer", Delimiter: ','},
	}

	d := Compare(catalog, reg)
	assert.False(t, d.Empty())
	assert.Equal(t, []string{"xid8", "integer"}, typeNames(d.Missing))
	assert.Equal(t, []string{"int4"}, typeNames(d.Changed))
	assert.Equal(t, []string{"abstime", "opaque"}, typeNames(d.Extra))
}

func TestCheckBuiltinsAgainstOwnTable(t *testing.T) {
	g := NewGenerator(&fakeSource{version: "12.2", types: pgtypes.BuiltinTypes()}, afero.NewMemMapFs(), nil)
	d, err := g.Check(context.Background(), pgtypes.Builtins)
	require.NoError(t, err)
	assert.True(t, d.Empty())
}

func TestCheckError(t *testing.T) {
	g := NewGenerator(&fakeSource{err: errCatalog}, afero.NewMemMapFs(), nil)
	_, err := g.Check(context.Background(), pgtypes.Builtins)
	assert.ErrorIs(t, err, errCatalog)
}

// TestSQLSource runs against a real server when PGTYPEGEN_TEST_DSN is set.
func TestSQLSource(t *testing.T) {
	dsn := os.Getenv("PGTYPEGEN_TEST_DSN")
	if dsn == "" {
		t.Skip("PGTYPEGEN_TEST_DSN not set")
	}

	ctx := context.Background()
	source, err := OpenSQLSource(ctx, dsn)
	require.NoError(t, err)
	defer source.Close()

	version, err := source.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^\d+\.\d+$`, version)

	types, err := source.Types(ctx)
	require.NoError(t, err)

	reg := pgtypes.NewRegistry()
	reg.AddAll(types)
	box, ok := reg.Get("box")
	require.True(t, ok)
	assert.Equal(t, byte(';'), box.Delimiter)
	int4, ok := reg.Get(1007)
	require.True(t, ok)
	assert.Equal(t, "int4", int4.Name)
}

func TestOpenSQLSourceUnreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := OpenSQLSource(ctx, "host=127.0.0.1 port=1 sslmode=disable connect_timeout=1")
	require.Error(t, err)
}

func TestNewSQLSource(t *testing.T) {
	db, err := sql.Open("postgres", "host=127.0.0.1 port=1 sslmode=disable")
	require.NoError(t, err)
	source := NewSQLSource(db)
	assert.NoError(t, source.Close())
}

func typeNames(types []pgtypes.TypeInfo) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name)
	}
	return names
}
