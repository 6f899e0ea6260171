// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// boolTokens is the fixed set of case-insensitive textual bool spellings
// accepted during coercion.
var boolTokens = map[string]bool{
	"true": true, "false": false,
	"1": true, "0": false,
	"yes": true, "no": false,
}

// validate walks the combined raw mapping against the schema in declaration
// order, coercing each present value to its declared type and checking
// declared constraints, then rejects keys absent from the schema. Every
// violation is collected so one failing pass reports all problems at once.
// On any failure no values are returned.
func validate(combined map[string]any, schema Schema) (map[string]Value, *ValidationError) {
	leaves := make(map[string]any)
	flatten("", combined, leaves)

	values := make(map[string]Value, len(schema))
	var fails []FieldError

	for _, field := range schema {
		raw, present := leaves[field.Key]
		if !present {
			if !field.Default.IsZero() {
				values[field.Key] = field.Default
				continue
			}
			fails = append(fails, FieldError{
				Key:     field.Key,
				Code:    CodeMissingKey,
				Message: "required key is not set in any source",
			})
			continue
		}
		delete(leaves, field.Key)

		value, err := coerce(raw, field.Kind)
		if err != nil {
			fails = append(fails, FieldError{
				Key:     field.Key,
				Code:    CodeBadType,
				Message: fmt.Sprintf("expected %s, got %v: %v", field.Kind, rawString(raw), err),
			})
			continue
		}

		if ferr := checkConstraint(field, value); ferr != nil {
			fails = append(fails, *ferr)
			continue
		}

		values[field.Key] = value
	}

	// Fail closed on leftovers: a typo in an env var or file key must not be
	// silently ignored.
	unknown := make([]string, 0, len(leaves))
	for key := range leaves {
		unknown = append(unknown, key)
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		fails = append(fails, FieldError{
			Key:     key,
			Code:    CodeUnknownKey,
			Message: "key is not declared in the schema",
		})
	}

	if len(fails) > 0 {
		return nil, &ValidationError{Fields: fails}
	}
	return values, nil
}

// coerce converts a raw untyped value into a typed Value of the declared
// kind. Strings are parsed with the standard textual rules; numbers arriving
// as floats (JSON) are accepted as ints only when integral.
func coerce(raw any, kind Kind) (Value, error) {
	switch kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return Value{}, fmt.Errorf("not a string")
		}
		return StringValue(s), nil

	case KindInt:
		switch n := raw.(type) {
		case int:
			return IntValue(int64(n)), nil
		case int64:
			return IntValue(n), nil
		case uint64:
			return IntValue(int64(n)), nil
		case float64:
			if n != math.Trunc(n) {
				return Value{}, fmt.Errorf("not an integer")
			}
			return IntValue(int64(n)), nil
		case string:
			i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
			if err != nil {
				return Value{}, fmt.Errorf("not an integer")
			}
			return IntValue(i), nil
		default:
			return Value{}, fmt.Errorf("not an integer")
		}

	case KindFloat:
		switch n := raw.(type) {
		case float64:
			return FloatValue(n), nil
		case int:
			return FloatValue(float64(n)), nil
		case int64:
			return FloatValue(float64(n)), nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err != nil {
				return Value{}, fmt.Errorf("not a number")
			}
			return FloatValue(f), nil
		default:
			return Value{}, fmt.Errorf("not a number")
		}

	case KindBool:
		switch b := raw.(type) {
		case bool:
			return BoolValue(b), nil
		case string:
			v, ok := boolTokens[strings.ToLower(strings.TrimSpace(b))]
			if !ok {
				return Value{}, fmt.Errorf("not a boolean (accepted: true/false/1/0/yes/no)")
			}
			return BoolValue(v), nil
		default:
			return Value{}, fmt.Errorf("not a boolean")
		}

	case KindStrings:
		switch s := raw.(type) {
		case []string:
			return StringsValue(s), nil
		case []any:
			items := make([]string, 0, len(s))
			for _, item := range s {
				str, ok := item.(string)
				if !ok {
					return Value{}, fmt.Errorf("element %v is not a string", rawString(item))
				}
				items = append(items, str)
			}
			return StringsValue(items), nil
		case string:
			// Env vars carry lists as comma-separated text.
			if strings.TrimSpace(s) == "" {
				return StringsValue(nil), nil
			}
			parts := strings.Split(s, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return StringsValue(parts), nil
		default:
			return Value{}, fmt.Errorf("not a string list")
		}

	default:
		return Value{}, fmt.Errorf("unsupported schema kind %s", kind)
	}
}

// checkConstraint applies the declared constraint to an already-coerced
// value.
func checkConstraint(field Field, value Value) *FieldError {
	if field.NonEmpty {
		if s, ok := value.AsString(); ok && s == "" {
			return &FieldError{
				Key:     field.Key,
				Code:    CodeConstraint,
				Message: "value must not be empty",
			}
		}
	}

	if len(field.OneOf) > 0 {
		s, _ := value.AsString()
		found := false
		for _, allowed := range field.OneOf {
			if s == allowed {
				found = true
				break
			}
		}
		if !found {
			return &FieldError{
				Key:     field.Key,
				Code:    CodeConstraint,
				Message: fmt.Sprintf("value %q is not one of [%s]", s, strings.Join(field.OneOf, ", ")),
			}
		}
	}

	if field.Range != nil {
		var n float64
		switch value.Kind() {
		case KindInt:
			i, _ := value.AsInt()
			n = float64(i)
		case KindFloat:
			n, _ = value.AsFloat()
		default:
			return nil
		}
		if n < field.Range.Min || n > field.Range.Max {
			return &FieldError{
				Key:     field.Key,
				Code:    CodeConstraint,
				Message: fmt.Sprintf("value %v is outside range [%v, %v]", n, field.Range.Min, field.Range.Max),
			}
		}
	}

	return nil
}

func rawString(raw any) string {
	if s, ok := raw.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", raw)
}
