// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package config

import "strconv"

// Kind identifies the type stored in a [Value].
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindStrings
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStrings:
		return "string list"
	case KindMap:
		return "mapping"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the types a configuration field may hold.
// The zero Value has KindInvalid and reports false from every accessor.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	boo  bool
	list []string
	obj  map[string]Value
}

func StringValue(s string) Value  { return Value{kind: KindString, str: s} }
func IntValue(i int64) Value      { return Value{kind: KindInt, num: i} }
func FloatValue(f float64) Value  { return Value{kind: KindFloat, flt: f} }
func BoolValue(b bool) Value      { return Value{kind: KindBool, boo: b} }
func StringsValue(s []string) Value {
	cp := make([]string, len(s))
	copy(cp, s)
	return Value{kind: KindStrings, list: cp}
}

func MapValue(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: KindMap, obj: cp}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether the value is the invalid zero Value.
func (v Value) IsZero() bool { return v.kind == KindInvalid }

func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }
func (v Value) AsInt() (int64, bool)     { return v.num, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool) { return v.flt, v.kind == KindFloat }
func (v Value) AsBool() (bool, bool)     { return v.boo, v.kind == KindBool }

func (v Value) AsStrings() ([]string, bool) {
	if v.kind != KindStrings {
		return nil, false
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp, true
}

func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	cp := make(map[string]Value, len(v.obj))
	for k, e := range v.obj {
		cp[k] = e
	}
	return cp, true
}

// Equal reports deep value equality.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.num == other.num
	case KindFloat:
		return v.flt == other.flt
	case KindBool:
		return v.boo == other.boo
	case KindStrings:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != other.list[i] {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, e := range v.obj {
			o, ok := other.obj[k]
			if !ok || !e.Equal(o) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Interface returns the wrapped value as a plain Go value, for logging and
// diagnostics dumps.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.boo
	case KindStrings:
		cp, _ := v.AsStrings()
		return cp
	case KindMap:
		out := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			out[k] = e.Interface()
		}
		return out
	default:
		return nil
	}
}

// GoString renders the value for error messages and debug output.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.boo)
	default:
		return v.kind.String()
	}
}
