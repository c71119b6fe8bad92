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

// Type OIDs of the types client code refers to most often, as named in
// postgres/src/include/catalog/pg_type_d.h. Every value is also present in
// the built-in table.

// InvalidOid is never assigned to a type. It also marks a type without an
// array counterpart.
const InvalidOid Oid = 0

// Boolean type
const (
	BOOLOID Oid = 16 // boolean
)

// Character types
const (
	CHAROID    Oid = 18   // "char" (single byte)
	NAMEOID    Oid = 19   // name
	TEXTOID    Oid = 25   // text
	BPCHAROID  Oid = 1042 // character
	VARCHAROID Oid = 1043 // character varying
)

// Binary types
const (
	BYTEAOID Oid = 17 // bytea
)

// Integer types
const (
	INT2OID Oid = 21 // smallint
	INT4OID Oid = 23 // integer
	INT8OID Oid = 20 // bigint
)

// Floating point and numeric types
const (
	FLOAT4OID  Oid = 700  // real
	FLOAT8OID  Oid = 701  // double precision
	NUMERICOID Oid = 1700 // numeric
	MONEYOID   Oid = 790  // money
)

// Date/time types
const (
	DATEOID        Oid = 1082 // date
	TIMEOID        Oid = 1083 // time without time zone
	TIMESTAMPOID   Oid = 1114 // timestamp without time zone
	TIMESTAMPTZOID Oid = 1184 // timestamp with time zone
	TIMETZOID      Oid = 1266 // time with time zone
	INTERVALOID    Oid = 1186 // interval
)

// System types
const (
	OIDOID        Oid = 26 // oid
	TIDOID        Oid = 27 // tid
	XIDOID        Oid = 28 // xid
	CIDOID        Oid = 29 // cid
	INT2VECTOROID Oid = 22 // int2vector
	OIDVECTOROID  Oid = 30 // oidvector
)

// JSON and XML types
const (
	JSONOID     Oid = 114  // json
	JSONBOID    Oid = 3802 // jsonb
	JSONPATHOID Oid = 4072 // jsonpath
	XMLOID      Oid = 142  // xml
)

// Geometric types
const (
	POINTOID   Oid = 600 // point
	LSEGOID    Oid = 601 // lseg
	PATHOID    Oid = 602 // path
	BOXOID     Oid = 603 // box
	POLYGONOID Oid = 604 // polygon
	LINEOID    Oid = 628 // line
	CIRCLEOID  Oid = 718 // circle
)

// Network types
const (
	INETOID     Oid = 869 // inet
	CIDROID     Oid = 650 // cidr
	MACADDROID  Oid = 829 // macaddr
	MACADDR8OID Oid = 774 // macaddr8
)

// Bit string types
const (
	BITOID    Oid = 1560 // bit
	VARBITOID Oid = 1562 // bit varying
)

// UUID type
const (
	UUIDOID Oid = 2950 // uuid
)

// Range types
const (
	DATERANGEOID Oid = 3912 // daterange
	TSRANGEOID   Oid = 3908 // tsrange
	TSTZRANGEOID Oid = 3910 // tstzrange
	INT4RANGEOID Oid = 3904 // int4range
	INT8RANGEOID Oid = 3926 // int8range
	NUMRANGEOID  Oid = 3906 // numrange
)

// Pseudo-types
const (
	UNKNOWNOID Oid = 705  // unknown
	RECORDOID  Oid = 2249 // record
	VOIDOID    Oid = 2278 // void
)

// Array types
const (
	BOOLARRAYOID        Oid = 1000 // boolean[]
	BYTEAARRAYOID       Oid = 1001 // bytea[]
	CHARARRAYOID        Oid = 1002 // "char"[]
	NAMEARRAYOID        Oid = 1003 // name[]
	INT2ARRAYOID        Oid = 1005 // smallint[]
	INT4ARRAYOID        Oid = 1007 // integer[]
	INT8ARRAYOID        Oid = 1016 // bigint[]
	FLOAT4ARRAYOID      Oid = 1021 // real[]
	FLOAT8ARRAYOID      Oid = 1022 // double precision[]
	TEXTARRAYOID        Oid = 1009 // text[]
	VARCHARARRAYOID     Oid = 1015 // varchar[]
	DATEARRAYOID        Oid = 1182 // date[]
	TIMEARRAYOID        Oid = 1183 // time[]
	TIMESTAMPARRAYOID   Oid = 1115 // timestamp[]
	TIMESTAMPTZARRAYOID Oid = 1185 // timestamptz[]
	JSONARRAYOID        Oid = 199  // json[]
	JSONBARRAYOID       Oid = 3807 // jsonb[]
	UUIDARRAYOID        Oid = 2951 // uuid[]
)
