// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package config

import (
	"sort"
	"strings"
)

// Resolved is the immutable, validated configuration view. It is built once
// by the loader and never mutated afterwards; repeated lookups of the same
// key return identical values for the lifetime of the instance.
type Resolved struct {
	values map[string]Value
}

// Lookup returns the typed value stored for a dotted key. Looking up a key
// absent from the schema fails with a FieldError carrying ErrUnknownKey.
func (r *Resolved) Lookup(key string) (Value, error) {
	v, ok := r.values[strings.ToLower(key)]
	if !ok {
		return Value{}, FieldError{
			Key:     key,
			Code:    CodeUnknownKey,
			Message: "key is not declared in the schema",
		}
	}
	return v, nil
}

// String returns the value for key as a string, failing with a
// *TypeMismatchError if the stored kind disagrees.
func (r *Resolved) String(key string) (string, error) {
	v, err := r.Lookup(key)
	if err != nil {
		return "", err
	}
	s, ok := v.AsString()
	if !ok {
		return "", &TypeMismatchError{Key: key, Want: KindString, Got: v.Kind()}
	}
	return s, nil
}

// Int returns the value for key as an int64.
func (r *Resolved) Int(key string) (int64, error) {
	v, err := r.Lookup(key)
	if err != nil {
		return 0, err
	}
	i, ok := v.AsInt()
	if !ok {
		return 0, &TypeMismatchError{Key: key, Want: KindInt, Got: v.Kind()}
	}
	return i, nil
}

// Float returns the value for key as a float64.
func (r *Resolved) Float(key string) (float64, error) {
	v, err := r.Lookup(key)
	if err != nil {
		return 0, err
	}
	f, ok := v.AsFloat()
	if !ok {
		return 0, &TypeMismatchError{Key: key, Want: KindFloat, Got: v.Kind()}
	}
	return f, nil
}

// Bool returns the value for key as a bool.
func (r *Resolved) Bool(key string) (bool, error) {
	v, err := r.Lookup(key)
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, &TypeMismatchError{Key: key, Want: KindBool, Got: v.Kind()}
	}
	return b, nil
}

// Strings returns the value for key as a string slice.
func (r *Resolved) Strings(key string) ([]string, error) {
	v, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}
	s, ok := v.AsStrings()
	if !ok {
		return nil, &TypeMismatchError{Key: key, Want: KindStrings, Got: v.Kind()}
	}
	return s, nil
}

// Section returns all values under a dotted prefix as a mapping keyed by the
// remainder of the path. An empty result means the section does not exist.
func (r *Resolved) Section(prefix string) map[string]Value {
	prefix = strings.ToLower(prefix) + "."
	out := make(map[string]Value)
	for key, v := range r.values {
		if strings.HasPrefix(key, prefix) {
			out[strings.TrimPrefix(key, prefix)] = v
		}
	}
	return out
}

// Keys returns every resolved key in sorted order.
func (r *Resolved) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for key := range r.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two resolved configurations hold value-equal
// mappings.
func (r *Resolved) Equal(other *Resolved) bool {
	if len(r.values) != len(other.values) {
		return false
	}
	for key, v := range r.values {
		o, ok := other.values[key]
		if !ok || !v.Equal(o) {
			return false
		}
	}
	return true
}
