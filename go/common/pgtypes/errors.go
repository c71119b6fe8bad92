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

import (
	"fmt"
)

// ErrorCode is the error code for registry lookup errors.
type ErrorCode int

const (
	// KeyNotFound means neither the OID nor the name table holds the key.
	KeyNotFound = ErrorCode(iota)
	// InvalidKeyType means the key is neither an integer nor a string.
	InvalidKeyType
)

// Sentinels for errors.Is.
var (
	ErrKeyNotFound    = &Error{Code: KeyNotFound}
	ErrInvalidKeyType = &Error{Code: InvalidKeyType}
)

// Error is returned by Registry.Lookup.
type Error struct {
	Code ErrorCode
	Key  any
}

// Error satisfies error.
func (e *Error) Error() string {
	switch e.Code {
	case KeyNotFound:
		return fmt.Sprintf("type not found: %#v", e.Key)
	case InvalidKeyType:
		return fmt.Sprintf("the key must be an oid or a name, got %T", e.Key)
	default:
		return fmt.Sprintf("unknown code %d: %#v", e.Code, e.Key)
	}
}

// Is implements error comparison for errors.Is.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}
