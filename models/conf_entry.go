// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// ConfEntry is a single configuration key together with its stored value.
type ConfEntry struct {
	// Name is the key name as the caller supplied it, without the store prefix.
	Name string

	// Value is the stored JSON document. A nil Value means the key is absent,
	// which is distinct from a stored JSON null.
	Value json.RawMessage
}

// Absent reports whether no value is stored under the entry's name.
func (e ConfEntry) Absent() bool {
	return e.Value == nil
}

// ConfEntries is the result of a bulk read, kept in request order.
//
// It serializes to a JSON object whose members follow that order. A name
// requested more than once appears once, at its first position. Absent
// entries serialize as null.
type ConfEntries []ConfEntry

// MarshalJSON implements json.Marshaler.
func (c ConfEntries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	seen := make(map[string]struct{}, len(c))

	buf.WriteByte('{')
	for _, entry := range c {
		if _, ok := seen[entry.Name]; ok {
			continue
		}
		seen[entry.Name] = struct{}{}

		if len(seen) > 1 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		if entry.Absent() {
			buf.WriteString("null")
			continue
		}
		if err := json.Compact(&buf, entry.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
