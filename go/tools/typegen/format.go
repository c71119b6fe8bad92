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
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"regexp"
	"strconv"

	"github.com/Canonical-LLC/psycopg/go/common/pgtypes"
)

var (
	// ErrMarkersNotFound is returned when the source lacks the start or end
	// marker line.
	ErrMarkersNotFound = errors.New("autogenerated markers not found")
	// ErrMarkersOutOfOrder is returned when the markers are repeated or the
	// end marker precedes the start marker.
	ErrMarkersOutOfOrder = errors.New("autogenerated markers out of order")
)

var markerRe = regexp.MustCompile(`^\s*//\s*autogenerated:\s+(start|end)`)

// FormatTable renders the body placed between the markers: a header naming
// the server version, then one composite literal per type.
func FormatTable(version string, types []pgtypes.TypeInfo) []string {
	lines := make([]string, 0, len(types)+3)
	lines = append(lines, "", "// Generated from PostgreSQL "+version, "")
	for _, t := range types {
		lines = append(lines, FormatRow(t))
	}
	return lines
}

// FormatRow renders a single table row.
func FormatRow(t pgtypes.TypeInfo) string {
	return fmt.Sprintf("{%s, %d, %d, %s, %s},",
		strconv.Quote(t.Name), t.OID, t.ArrayOID,
		strconv.Quote(t.AltName), strconv.QuoteRuneToASCII(rune(t.Delimiter)))
}

// Splice replaces the lines between the start and end markers of src with
// body, indented by one tab, and returns the gofmt-ed result.
func Splice(src []byte, body []string) ([]byte, error) {
	lines := bytes.Split(src, []byte("\n"))

	start, end := -1, -1
	for i, l := range lines {
		m := markerRe.FindSubmatch(l)
		if m == nil {
			continue
		}
		switch string(m[1]) {
		case "start":
			if start != -1 || end != -1 {
				return nil, fmt.Errorf("%w: unexpected start marker at line %d", ErrMarkersOutOfOrder, i+1)
			}
			start = i
		case "end":
			if start == -1 || end != -1 {
				return nil, fmt.Errorf("%w: unexpected end marker at line %d", ErrMarkersOutOfOrder, i+1)
			}
			end = i
		}
	}
	if start == -1 || end == -1 {
		return nil, ErrMarkersNotFound
	}

	out := make([][]byte, 0, len(lines)-(end-start-1)+len(body))
	out = append(out, lines[:start+1]...)
	for _, l := range body {
		if l == "" {
			out = append(out, nil)
			continue
		}
		out = append(out, []byte("\t"+l))
	}
	out = append(out, lines[end:]...)

	formatted, err := format.Source(bytes.Join(out, []byte("\n")))
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return formatted, nil
}
