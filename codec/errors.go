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
	"encoding/json"
	"errors"
	"strings"

	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// ErrJSON matches every JSONError via errors.Is
var ErrJSON = errors.New("plutus json decode error")

// JSONError is returned when a JSON value does not have the shape a decoder expects.
// It carries the offending raw value for diagnostics
type JSONError struct {
	Type  string
	Field string
	Msg   string
	Value any
	Err   error
}

func (e *JSONError) Error() string {
	var sb strings.Builder
	if e.Type != "" {
		sb.WriteString(e.Type)
		if e.Field != "" {
			sb.WriteString(".")
			sb.WriteString(e.Field)
		}
		sb.WriteString(": ")
	}
	sb.WriteString(e.Msg)
	if e.Value != nil {
		sb.WriteString(" (got ")
		sb.WriteString(summarizeJSON(e.Value))
		sb.WriteString(")")
	}
	if e.Err != nil {
		if e.Msg != "" {
			sb.WriteString(": ")
		}
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *JSONError) Unwrap() error {
	return e.Err
}

func (e *JSONError) Is(target error) bool {
	return target == ErrJSON
}

// NewJSONError builds a JSONError for the named type
func NewJSONError(typeName string, msg string, v any) *JSONError {
	return &JSONError{
		Type:  typeName,
		Msg:   msg,
		Value: v,
	}
}

// FieldDecodeError adds the location of a failed field to a data decoding error
func FieldDecodeError(typeName string, field string, err error) error {
	return &plutusdata.DecodeError{
		Type:  typeName,
		Field: field,
		Err:   err,
	}
}

// FieldJSONError adds the location of a failed field to a JSON decoding error
func FieldJSONError(typeName string, field string, err error) error {
	return &JSONError{
		Type:  typeName,
		Field: field,
		Err:   err,
	}
}

func summarizeJSON(v any) string {
	const maxLen = 120
	tmp, err := json.Marshal(v)
	if err != nil {
		return "<invalid>"
	}
	if len(tmp) > maxLen {
		return string(tmp[:maxLen]) + "..."
	}
	return string(tmp)
}
