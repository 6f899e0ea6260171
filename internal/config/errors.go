// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for matching with errors.Is. Field-level failures carry
// one of these through [FieldError.Unwrap].
var (
	// ErrMissingKey indicates a required key absent from every source.
	ErrMissingKey = errors.New("config: required key missing")
	// ErrBadType indicates a raw value that cannot be coerced to the
	// schema-declared type.
	ErrBadType = errors.New("config: cannot coerce value")
	// ErrConstraint indicates a coerced value violating a declared
	// constraint (enum membership, numeric range, non-empty string).
	ErrConstraint = errors.New("config: constraint violated")
	// ErrUnknownKey indicates a key present in a source but absent from
	// the schema.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Error codes attached to each [FieldError].
const (
	CodeMissingKey = "missing_key"
	CodeBadType    = "bad_type"
	CodeConstraint = "constraint"
	CodeUnknownKey = "unknown_key"
)

// ParseError reports a config file that exists but cannot be parsed.
// A missing file is not an error and yields an empty source instead.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FieldError is a single validation failure for one configuration key.
type FieldError struct {
	Key     string // dotted path, e.g. "lmstudio.timeout"
	Code    string // one of the Code* constants
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("config: %s: %s (%s)", e.Key, e.Message, e.Code)
}

// Unwrap maps the error code back to its sentinel so callers can use
// errors.Is without inspecting codes.
func (e FieldError) Unwrap() error {
	switch e.Code {
	case CodeMissingKey:
		return ErrMissingKey
	case CodeBadType:
		return ErrBadType
	case CodeConstraint:
		return ErrConstraint
	case CodeUnknownKey:
		return ErrUnknownKey
	default:
		return nil
	}
}

// ValidationError aggregates every field-level failure found in one
// validation pass. Resolution is all-or-nothing: when this error is returned
// no partial configuration has been produced.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "config: validation failed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "config: validation failed: %d error", len(e.Fields))
	if len(e.Fields) > 1 {
		b.WriteString("s")
	}
	for _, fe := range e.Fields {
		fmt.Fprintf(&b, "\n  - %s: %s (%s)", fe.Key, fe.Message, fe.Code)
	}
	return b.String()
}

// Is reports a match when any aggregated field error matches target,
// so errors.Is(err, ErrMissingKey) works on the aggregate.
func (e *ValidationError) Is(target error) bool {
	for _, fe := range e.Fields {
		if errors.Is(fe, target) {
			return true
		}
	}
	return false
}

// Field returns the first aggregated error for key, if any.
func (e *ValidationError) Field(key string) (FieldError, bool) {
	for _, fe := range e.Fields {
		if fe.Key == key {
			return fe, true
		}
	}
	return FieldError{}, false
}

// TypeMismatchError reports a typed accessor called with a type that
// disagrees with the stored value. It is local to the accessor call and does
// not invalidate the resolved configuration.
type TypeMismatchError struct {
	Key  string
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("config: %s: requested %s, stored value is %s", e.Key, e.Want, e.Got)
}
