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
	"errors"
	"fmt"
	"io"
	"iter"

	"gopkg.in/yaml.v3"
)

// yamlType is the on-disk form of a TypeInfo.
type yamlType struct {
	Name      string `yaml:"name"`
	OID       Oid    `yaml:"oid"`
	ArrayOID  Oid    `yaml:"array_oid,omitempty"`
	AltName   string `yaml:"alt_name,omitempty"`
	Delimiter string `yaml:"delimiter,omitempty"`
}

type yamlDoc struct {
	Types []yamlType `yaml:"types"`
}

// WriteYAML writes types as a YAML document with a single "types" list.
func WriteYAML(w io.Writer, types iter.Seq[TypeInfo]) error {
	var doc yamlDoc
	for t := range types {
		doc.Types = append(doc.Types, yamlType{
			Name:      t.Name,
			OID:       t.OID,
			ArrayOID:  t.ArrayOID,
			AltName:   t.AltName,
			Delimiter: string(t.Delimiter),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode types: %w", err)
	}
	return enc.Close()
}

// ReadYAML parses a document written by WriteYAML. A missing alt_name
// defaults to the name and a missing delimiter to a comma.
func ReadYAML(r io.Reader) ([]TypeInfo, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode types: %w", err)
	}

	types := make([]TypeInfo, 0, len(doc.Types))
	for i, yt := range doc.Types {
		if yt.Name == "" {
			return nil, fmt.Errorf("type #%d: name is required", i)
		}
		if yt.OID == InvalidOid {
			return nil, fmt.Errorf("type %q: oid is required", yt.Name)
		}
		if len(yt.Delimiter) > 1 {
			return nil, fmt.Errorf("type %q: delimiter must be a single character, got %q", yt.Name, yt.Delimiter)
		}

		t := TypeInfo{
			Name:      yt.Name,
			OID:       yt.OID,
			ArrayOID:  yt.ArrayOID,
			AltName:   yt.AltName,
			Delimiter: ',',
		}
		if t.AltName == "" {
			t.AltName = t.Name
		}
		if yt.Delimiter != "" {
			t.Delimiter = yt.Delimiter[0]
		}
		types = append(types, t)
	}
	return types, nil
}
