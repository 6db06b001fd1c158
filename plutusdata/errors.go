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

package plutusdata

import (
	"errors"
	"strings"
)

// ErrDecode matches every DecodeError via errors.Is
var ErrDecode = errors.New("plutus data decode error")

// ErrNilData is returned when encoding a value that is, or contains, a nil Data
var ErrNilData = errors.New("nil plutus data")

// DecodeError is returned when a value does not have the shape a decoder expects. It
// carries the type and field being decoded, and the offending value when one is known
type DecodeError struct {
	Type  string
	Field string
	Msg   string
	Data  Data
	Err   error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	if e.Type != "" {
		sb.WriteString(e.Type)
		if e.Field != "" {
			sb.WriteString(".")
			sb.WriteString(e.Field)
		}
		sb.WriteString(": ")
	}
	if e.Msg != "" {
		sb.WriteString(e.Msg)
	}
	if e.Data != nil {
		sb.WriteString(" (got ")
		sb.WriteString(summarize(e.Data))
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

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewDecodeError builds a DecodeError for the named type
func NewDecodeError(typeName string, msg string, d Data) *DecodeError {
	return &DecodeError{
		Type: typeName,
		Msg:  msg,
		Data: d,
	}
}
