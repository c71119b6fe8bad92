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
	"iter"
	"maps"
	"math"
	"slices"
)

// Oid is a PostgreSQL object identifier.
type Oid uint32

// TypeInfo describes a PostgreSQL type.
type TypeInfo struct {
	// Name is the catalog name, e.g. "int4".
	Name string
	// OID is the OID of the type itself.
	OID Oid
	// ArrayOID is the OID of the array of this type, or InvalidOid.
	ArrayOID Oid
	// AltName is the SQL spelling, e.g. "integer". It can equal Name and can
	// contain spaces or quotes ("char", "any").
	AltName string
	// Delimiter separates elements in the text form of an array of this type.
	Delimiter byte
}

func (t TypeInfo) String() string {
	return fmt.Sprintf("%s(oid=%d, array_oid=%d)", t.Name, t.OID, t.ArrayOID)
}

// Registry holds TypeInfo records addressable by OID or by name.
//
// A Registry is not safe for concurrent use while it is being modified.
// Once populated it can be read from any number of goroutines.
type Registry struct {
	byOid  map[Oid]TypeInfo
	byName map[string]TypeInfo
	// oids keeps the keys of byOid in the order they were first set.
	oids []Oid
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byOid:  make(map[Oid]TypeInfo),
		byName: make(map[string]TypeInfo),
	}
}

// Add registers info under its OID, its array OID (if any), its name and,
// unless another type already claimed it, its alternate name.
func (r *Registry) Add(info TypeInfo) {
	r.setOid(info.OID, info)
	if info.ArrayOID != InvalidOid {
		r.setOid(info.ArrayOID, info)
	}
	r.byName[info.Name] = info
	if _, ok := r.byName[info.AltName]; !ok {
		r.byName[info.AltName] = info
	}
}

// AddAll adds types in order.
func (r *Registry) AddAll(types []TypeInfo) {
	for _, t := range types {
		r.Add(t)
	}
}

func (r *Registry) setOid(oid Oid, info TypeInfo) {
	if _, ok := r.byOid[oid]; !ok {
		r.oids = append(r.oids, oid)
	}
	r.byOid[oid] = info
}

// ByOID returns the type registered under oid. An array OID resolves to the
// element type.
func (r *Registry) ByOID(oid Oid) (TypeInfo, bool) {
	t, ok := r.byOid[oid]
	return t, ok
}

// ByName returns the type registered under name or alternate name.
func (r *Registry) ByName(name string) (TypeInfo, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Get looks key up by OID if it is an integer, by name if it is a string.
// It reports false if nothing matches or if key has any other type, so
// Get(3.14) and Get(true) look like a missing type. Callers that need to
// tell a wrong key type apart from a missing key should use Lookup.
func (r *Registry) Get(key any) (TypeInfo, bool) {
	t, err := r.Lookup(key)
	return t, err == nil
}

// Lookup is like Get but returns an error wrapping ErrKeyNotFound or
// ErrInvalidKeyType instead of a boolean.
func (r *Registry) Lookup(key any) (TypeInfo, error) {
	if name, ok := key.(string); ok {
		if t, ok := r.byName[name]; ok {
			return t, nil
		}
		return TypeInfo{}, &Error{Code: KeyNotFound, Key: key}
	}

	oid, isInt, inRange := toOid(key)
	if !isInt {
		return TypeInfo{}, &Error{Code: InvalidKeyType, Key: key}
	}
	if inRange {
		if t, ok := r.byOid[oid]; ok {
			return t, nil
		}
	}
	return TypeInfo{}, &Error{Code: KeyNotFound, Key: key}
}

// IsArray reports whether oid is registered as the array OID of a type.
func (r *Registry) IsArray(oid Oid) bool {
	t, ok := r.byOid[oid]
	return ok && oid != InvalidOid && t.ArrayOID == oid
}

// All yields every distinct registered type once, in the order its OID was
// first registered. Types reachable through an array OID are not repeated.
func (r *Registry) All() iter.Seq[TypeInfo] {
	return func(yield func(TypeInfo) bool) {
		seen := make(map[Oid]struct{}, len(r.oids))
		for _, oid := range r.oids {
			t := r.byOid[oid]
			if _, ok := seen[t.OID]; ok {
				continue
			}
			seen[t.OID] = struct{}{}
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of types yielded by All.
func (r *Registry) Len() int {
	n := 0
	for range r.All() {
		n++
	}
	return n
}

// Clone returns an independent copy of r. Adding to the copy leaves r
// untouched.
func (r *Registry) Clone() *Registry {
	return &Registry{
		byOid:  maps.Clone(r.byOid),
		byName: maps.Clone(r.byName),
		oids:   slices.Clone(r.oids),
	}
}

// toOid converts an integer key to an Oid. isInt is false when key is not an
// integer at all; inRange is false for integers no Oid can hold.
func toOid(key any) (oid Oid, isInt, inRange bool) {
	switch k := key.(type) {
	case Oid:
		return k, true, true
	case int:
		return fromInt64(int64(k))
	case int8:
		return fromInt64(int64(k))
	case int16:
		return fromInt64(int64(k))
	case int32:
		return fromInt64(int64(k))
	case int64:
		return fromInt64(k)
	case uint:
		return fromUint64(uint64(k))
	case uint8:
		return fromUint64(uint64(k))
	case uint16:
		return fromUint64(uint64(k))
	case uint32:
		return fromUint64(uint64(k))
	case uint64:
		return fromUint64(k)
	default:
		return 0, false, false
	}
}

func fromInt64(i int64) (Oid, bool, bool) {
	if i < 0 {
		return 0, true, false
	}
	return fromUint64(uint64(i))
}

func fromUint64(u uint64) (Oid, bool, bool) {
	if u > math.MaxUint32 {
		return 0, true, false
	}
	return Oid(u), true, true
}
