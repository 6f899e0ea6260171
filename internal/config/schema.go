// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package config

import "strings"

// Range is an inclusive numeric constraint applied after coercion to int or
// float fields.
type Range struct {
	Min float64
	Max float64
}

// Field declares a single configuration key: its dotted path, expected type,
// optional default, and optional constraint. A field without a default is
// required: resolution fails when no source supplies it.
type Field struct {
	Key     string
	Kind    Kind
	Default Value // zero Value means no default, i.e. required

	// Constraints, checked after coercion.
	OneOf    []string // string enum membership
	Range    *Range   // numeric range for int/float fields
	NonEmpty bool     // non-empty string rule
}

// Schema is an ordered collection of field declarations. Validation walks it
// in declaration order, so error aggregation is deterministic.
type Schema []Field

// Lookup finds the declaration for a normalized dotted key.
func (s Schema) Lookup(key string) (Field, bool) {
	for _, f := range s {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults materializes the built-in defaults as a nested raw mapping, the
// lowest-precedence source of the merge.
func (s Schema) Defaults() map[string]any {
	out := make(map[string]any)
	for _, f := range s {
		if f.Default.IsZero() {
			continue
		}
		putDotted(out, f.Key, f.Default.Interface())
	}
	return out
}

// putDotted inserts a value into a nested mapping at a dotted path, creating
// intermediate maps as needed.
func putDotted(m map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}
