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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOidConstantsMatchTable(t *testing.T) {
	scalars := []struct {
		name string
		oid  Oid
	}{
		{"bool", BOOLOID}, {"char", CHAROID}, {"name", NAMEOID}, {"text", TEXTOID},
		{"bpchar", BPCHAROID}, {"varchar", VARCHAROID}, {"bytea", BYTEAOID},
		{"int2", INT2OID}, {"int4", INT4OID}, {"int8", INT8OID},
		{"float4", FLOAT4OID}, {"float8", FLOAT8OID}, {"numeric", NUMERICOID}, {"money", MONEYOID},
		{"date", DATEOID}, {"time", TIMEOID}, {"timestamp", TIMESTAMPOID},
		{"timestamptz", TIMESTAMPTZOID}, {"timetz", TIMETZOID}, {"interval", INTERVALOID},
		{"oid", OIDOID}, {"tid", TIDOID}, {"xid", XIDOID}, {"cid", CIDOID},
		{"int2vector", INT2VECTOROID}, {"oidvector", OIDVECTOROID},
		{"json", JSONOID}, {"jsonb", JSONBOID}, {"jsonpath", JSONPATHOID}, {"xml", XMLOID},
		{"point", POINTOID}, {"lseg", LSEGOID}, {"path", PATHOID}, {"box", BOXOID},
		{"polygon", POLYGONOID}, {"line", LINEOID}, {"circle", CIRCLEOID},
		{"inet", INETOID}, {"cidr", CIDROID}, {"macaddr", MACADDROID}, {"macaddr8", MACADDR8OID},
		{"bit", BITOID}, {"varbit", VARBITOID}, {"uuid", UUIDOID},
		{"daterange", DATERANGEOID}, {"tsrange", TSRANGEOID}, {"tstzrange", TSTZRANGEOID},
		{"int4range", INT4RANGEOID}, {"int8range", INT8RANGEOID}, {"numrange", NUMRANGEOID},
		{"unknown", UNKNOWNOID}, {"record", RECORDOID}, {"void", VOIDOID},
	}
	for _, s := range scalars {
		got, ok := Builtins.ByName(s.name)
		require.True(t, ok, s.name)
		assert.Equal(t, s.oid, got.OID, s.name)
	}

	arrays := []struct {
		name string
		oid  Oid
	}{
		{"bool", BOOLARRAYOID}, {"bytea", BYTEAARRAYOID}, {"char", CHARARRAYOID},
		{"name", NAMEARRAYOID}, {"int2", INT2ARRAYOID}, {"int4", INT4ARRAYOID},
		{"int8", INT8ARRAYOID}, {"float4", FLOAT4ARRAYOID}, {"float8", FLOAT8ARRAYOID},
		{"text", TEXTARRAYOID}, {"varchar", VARCHARARRAYOID}, {"date", DATEARRAYOID},
		{"time", TIMEARRAYOID}, {"timestamp", TIMESTAMPARRAYOID},
		{"timestamptz", TIMESTAMPTZARRAYOID}, {"json", JSONARRAYOID},
		{"jsonb", JSONBARRAYOID}, {"uuid", UUIDARRAYOID},
	}
	for _, a := range arrays {
		got, ok := Builtins.ByOID(a.oid)
		require.True(t, ok, a.name)
		assert.Equal(t, a.name, got.Name)
		assert.True(t, Builtins.IsArray(a.oid), a.name)
	}
}
