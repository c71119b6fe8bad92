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

// Package pgtypes maps PostgreSQL built-in type names to their OIDs.
//
// A Registry resolves a type either by OID or by name. The OID of an array
// type resolves to the descriptor of its element type, so a column whose
// type OID is 1007 (int4[]) yields the int4 descriptor together with the
// delimiter used in its array literals.
//
// Builtins is populated once at package initialization from the literal
// table in builtins_table.go and must not be modified afterwards. Code that
// needs server-specific types (enums, composites, extension types) should
// extend a copy obtained with Builtins.Clone().
//
// The literal table is regenerated from a live server with:
//
//	go run ./go/cmd/pgtypegen generate --output go/common/pgtypes/builtins_table.go
//
// Connection parameters come from --dsn or the standard PG* environment
// variables.
package pgtypes
