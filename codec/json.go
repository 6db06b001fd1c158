// Copyright 2026 Blink Labs Software
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

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ParseJSON parses a single JSON document into a value tree. Numbers are kept as
// json.Number so that integers of any size survive
func ParseJSON(jsonData []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()
	var ret any
	if err := dec.Decode(&ret); err != nil {
		return nil, &JSONError{Msg: "invalid JSON", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &JSONError{Msg: "invalid JSON: trailing data after value"}
	}
	return ret, nil
}

// MarshalJSON serializes a value tree
func MarshalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// UnmarshalJSON parses JSON data and passes the value tree to a FromJSON method
func UnmarshalJSON(jsonData []byte, fromJSON func(any) error) error {
	v, err := ParseJSON(jsonData)
	if err != nil {
		return err
	}
	return fromJSON(v)
}

// Constructor builds the JSON value of a sum type variant: {"Name": [fields...]}
func Constructor(name string, fields ...any) any {
	if fields == nil {
		fields = []any{}
	}
	return map[string]any{name: fields}
}

// CaseConstructor splits the JSON value of a sum type variant into its constructor
// name and payload
func CaseConstructor(typeName string, v any) (string, []any, error) {
	obj, ok := v.(map[string]any)
	if !ok || len(obj) != 1 {
		return "", nil, NewJSONError(
			typeName,
			"expected an object with a single constructor key",
			v,
		)
	}
	for name, payload := range obj {
		fields, ok := payload.([]any)
		if !ok {
			return "", nil, NewJSONError(
				typeName,
				fmt.Sprintf("expected an array payload for constructor %s", name),
				v,
			)
		}
		return name, fields, nil
	}
	// Unreachable, the object has exactly one key
	return "", nil, NewJSONError(typeName, "empty object", v)
}

// CheckJSONArity checks the payload length of a sum type variant
func CheckJSONArity(typeName string, name string, fields []any, arity int) error {
	if len(fields) != arity {
		return NewJSONError(
			typeName,
			fmt.Sprintf(
				"expected %d fields for constructor %s, found %d",
				arity,
				name,
				len(fields),
			),
			fields,
		)
	}
	return nil
}

// UnknownJSONConstructor is returned by sum type decoders for an unknown name
func UnknownJSONConstructor(typeName string, name string, v any) error {
	return NewJSONError(
		typeName,
		"unknown constructor "+name,
		v,
	)
}

// Object checks that the value is a JSON object
func Object(typeName string, v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, NewJSONError(typeName, "expected an object", v)
	}
	return obj, nil
}

// Array checks that the value is a JSON array
func Array(typeName string, v any) ([]any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, NewJSONError(typeName, "expected an array", v)
	}
	return arr, nil
}

// Field looks up a required key of a JSON object
func Field(typeName string, obj map[string]any, key string) (any, error) {
	v, ok := obj[key]
	if !ok {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, &JSONError{
			Type:  typeName,
			Field: key,
			Msg:   "missing field",
			Value: keys,
		}
	}
	return v, nil
}

// DecodeJSONField decodes a required key of a JSON object, adding the field location
// to any error
func DecodeJSONField[T any](
	typeName string,
	obj map[string]any,
	key string,
	c Codec[T],
) (T, error) {
	var ret T
	v, err := Field(typeName, obj, key)
	if err != nil {
		return ret, err
	}
	ret, err = c.FromJSON(v)
	if err != nil {
		return ret, FieldJSONError(typeName, key, err)
	}
	return ret, nil
}

// DecodeJSONValue decodes a positional JSON value, such as a constructor payload
// field, adding the field location to any error
func DecodeJSONValue[T any](
	typeName string,
	field string,
	v any,
	c Codec[T],
) (T, error) {
	ret, err := c.FromJSON(v)
	if err != nil {
		return ret, FieldJSONError(typeName, field, err)
	}
	return ret, nil
}
