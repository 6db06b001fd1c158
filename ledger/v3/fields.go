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

package v3

import (
	"strconv"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// dataFieldDecoder returns a function decoding the constructor field at a position.
// The fields must already have been checked against the constructor arity
func dataFieldDecoder[T any](
	typeName string,
	variant string,
	fields []plutusdata.Data,
	c codec.Codec[T],
) func(int) (T, error) {
	return func(i int) (T, error) {
		return codec.DecodeField(
			typeName,
			fieldName(variant, len(fields), i),
			fields[i],
			c,
		)
	}
}

func jsonFieldDecoder[T any](
	typeName string,
	variant string,
	fields []any,
	c codec.Codec[T],
) func(int) (T, error) {
	return func(i int) (T, error) {
		return codec.DecodeJSONValue(
			typeName,
			fieldName(variant, len(fields), i),
			fields[i],
			c,
		)
	}
}

// fieldName names a constructor field in error messages: the bare variant name for a
// single field, otherwise the variant name with the field position
func fieldName(variant string, arity int, i int) string {
	if arity == 1 {
		return variant
	}
	return variant + "[" + strconv.Itoa(i) + "]"
}
