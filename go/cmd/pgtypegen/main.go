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

// pgtypegen regenerates the PostgreSQL built-in type table from the catalog
// of a running server.
package main

import (
	"log/slog"
	"os"

	"github.com/Canonical-LLC/psycopg/go/cmd/pgtypegen/command"
)

func main() {
	root, pc := command.GetRootCommand()
	err := root.Execute()
	if cerr := pc.Close(); cerr != nil {
		slog.Error("Failed to close log output", "error", cerr)
	}
	if err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
