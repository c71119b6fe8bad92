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

// Package typegen regenerates the built-in type table of package pgtypes
// from the pg_type catalog of a live PostgreSQL server.
package typegen

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Register the "postgres" driver.
	_ "github.com/lib/pq"

	"github.com/Canonical-LLC/psycopg/go/common/pgtypes"
)

const (
	serverVersionQuery = `
select setting::int
    from pg_settings
    where name = 'server_version_num'`

	// The filter drops array types, catalog types, reg* types and the
	// *_handler pseudo-types.
	typesQuery = `
select typname, oid, typarray, oid::regtype::text, typdelim
    from pg_type
    where oid < 10000
    and typname !~ all('{^(_|pg_|reg),_handler$}')
    order by typname`
)

// CatalogSource provides the rows the built-in table is generated from.
type CatalogSource interface {
	// ServerVersion returns the server version as "major.minor".
	ServerVersion(ctx context.Context) (string, error)
	// Types returns the built-in types ordered by name.
	Types(ctx context.Context) ([]pgtypes.TypeInfo, error)
}

// SQLSource reads the catalog through database/sql.
type SQLSource struct {
	db *sql.DB
}

// NewSQLSource returns a source reading from db.
func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{db: db}
}

// OpenSQLSource opens a lib/pq connection pool for dsn. An empty dsn makes
// lib/pq use the PG* environment variables.
func OpenSQLSource(ctx context.Context, dsn string) (*SQLSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return &SQLSource{db: db}, nil
}

// Close closes the underlying pool.
func (s *SQLSource) Close() error {
	return s.db.Close()
}

// ServerVersion implements CatalogSource. It assumes PostgreSQL 10 or later.
func (s *SQLSource) ServerVersion(ctx context.Context) (string, error) {
	var num int
	if err := s.db.QueryRowContext(ctx, serverVersionQuery).Scan(&num); err != nil {
		return "", fmt.Errorf("failed to query server version: %w", err)
	}
	return FormatServerVersion(num), nil
}

// Types implements CatalogSource.
func (s *SQLSource) Types(ctx context.Context) ([]pgtypes.TypeInfo, error) {
	rows, err := s.db.QueryContext(ctx, typesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query pg_type: %w", err)
	}
	defer rows.Close()

	var types []pgtypes.TypeInfo
	for rows.Next() {
		var (
			t     pgtypes.TypeInfo
			delim string
		)
		if err := rows.Scan(&t.Name, &t.OID, &t.ArrayOID, &t.AltName, &delim); err != nil {
			return nil, fmt.Errorf("failed to scan pg_type row: %w", err)
		}
		if len(delim) != 1 {
			return nil, fmt.Errorf("type %s: unexpected delimiter %q", t.Name, delim)
		}
		t.Delimiter = delim[0]
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pg_type: %w", err)
	}
	if len(types) == 0 {
		return nil, errors.New("pg_type returned no rows")
	}
	return types, nil
}

// FormatServerVersion turns a server_version_num setting into "major.minor".
func FormatServerVersion(num int) string {
	return fmt.Sprintf("%d.%d", num/10000, num%100)
}
