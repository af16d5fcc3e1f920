// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the scalar type of a settings value.
type Kind int

const (
	// KindString is a string value.
	KindString Kind = iota
	// KindInt is an integer value. Fractional JSON numbers are
	// rejected at load time.
	KindInt
	// KindBool is a boolean value.
	KindBool
)

// Value is a single profile configuration setting. It is a closed
// scalar variant: exactly one of string, integer, or boolean. The zero
// Value is the empty string.
type Value struct {
	kind    Kind
	str     string
	integer int64
	boolean bool
}

// StringValue returns a Value holding s.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue returns a Value holding i.
func IntValue(i int64) Value {
	return Value{kind: KindInt, integer: i}
}

// BoolValue returns a Value holding b.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Kind returns the scalar kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// String renders the value the way the AWS CLI configuration writer
// expects: the raw string, a decimal integer, or "true"/"false".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.integer, 10)
	case KindBool:
		return strconv.FormatBool(v.boolean)
	default:
		return v.str
	}
}

// MarshalJSON encodes the value as the corresponding JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return json.Marshal(v.integer)
	case KindBool:
		return json.Marshal(v.boolean)
	default:
		return json.Marshal(v.str)
	}
}

// UnmarshalJSON decodes a JSON scalar into the value. JSON null maps
// to the empty string, matching how absent settings render. Arrays,
// objects, and non-integer numbers are errors.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case bool:
		*v = BoolValue(value)
	case string:
		*v = StringValue(value)
	case json.Number:
		integer, err := strconv.ParseInt(value.String(), 10, 64)
		if err != nil {
			return fmt.Errorf("setting value %s: only integer numbers are supported", value)
		}
		*v = IntValue(integer)
	case nil:
		*v = StringValue("")
	default:
		return fmt.Errorf("setting values of array or object type are not supported")
	}
	return nil
}

// Settings maps setting keys (case-sensitive) to scalar values. There
// is no nesting: a settings block is always flat.
type Settings map[string]Value

// Clone returns a copy of the settings map. A nil receiver yields an
// empty, non-nil map so callers can overlay onto the result.
func (s Settings) Clone() Settings {
	result := make(Settings, len(s))
	for key, value := range s {
		result[key] = value
	}
	return result
}
