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

package pgtypes

import "slices"

// Builtins holds the types every PostgreSQL server provides. It is filled in
// during package initialization and is read-only afterwards.
var Builtins = NewRegistry()

func init() {
	Builtins.AddAll(builtinTypes)
}

// BuiltinTypes returns the built-in table in table order.
func BuiltinTypes() []TypeInfo {
	return slices.Clone(builtinTypes)
}
