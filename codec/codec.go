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

	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// Codec bundles the conversions and comparisons of a type. Generic containers are
// instantiated by passing the codecs of their element types
type Codec[T any] struct {
	Name     string
	ToData   func(T) plutusdata.Data
	FromData func(plutusdata.Data) (T, error)
	ToJSON   func(T) any
	FromJSON func(any) (T, error)
	Equal    func(T, T) bool
	NotEqual func(T, T) bool
}

// Value is implemented by record types
type Value[T any] interface {
	ToPlutusData() plutusdata.Data
	ToJSON() any
	Equal(T) bool
	NotEqual(T) bool
}

// Decodable is implemented by pointers to record types
type Decodable[T any] interface {
	*T
	FromPlutusData(plutusdata.Data) error
	FromJSON(any) error
}

// Record builds a Codec from the methods of a record type
func Record[T Value[T], PT Decodable[T]](name string) Codec[T] {
	return Codec[T]{
		Name: name,
		ToData: func(v T) plutusdata.Data {
			return v.ToPlutusData()
		},
		FromData: Decode[T, PT],
		ToJSON: func(v T) any {
			return v.ToJSON()
		},
		FromJSON: DecodeJSON[T, PT],
		Equal: func(a T, b T) bool {
			return a.Equal(b)
		},
		NotEqual: func(a T, b T) bool {
			return a.NotEqual(b)
		},
	}
}

// Decode decodes a record type from its data representation
func Decode[T any, PT interface {
	*T
	FromPlutusData(plutusdata.Data) error
}](d plutusdata.Data) (T, error) {
	var ret T
	if err := PT(&ret).FromPlutusData(d); err != nil {
		return ret, err
	}
	return ret, nil
}

// DecodeJSON decodes a record type from its JSON value
func DecodeJSON[T any, PT interface {
	*T
	FromJSON(any) error
}](v any) (T, error) {
	var ret T
	if err := PT(&ret).FromJSON(v); err != nil {
		return ret, err
	}
	return ret, nil
}

// EncodeCbor returns the canonical CBOR encoding of the value
func (c Codec[T]) EncodeCbor(v T) ([]byte, error) {
	return plutusdata.Encode(c.ToData(v))
}

// DecodeCbor parses CBOR data and decodes it as the codec's type
func (c Codec[T]) DecodeCbor(
	cborData []byte,
	opts ...plutusdata.DecodeOption,
) (T, error) {
	d, err := plutusdata.Decode(cborData, opts...)
	if err != nil {
		var ret T
		return ret, err
	}
	return c.FromData(d)
}

// EncodeJSON returns the JSON encoding of the value
func (c Codec[T]) EncodeJSON(v T) ([]byte, error) {
	return json.Marshal(c.ToJSON(v))
}

// DecodeJSON parses JSON data and decodes it as the codec's type
func (c Codec[T]) DecodeJSON(jsonData []byte) (T, error) {
	v, err := ParseJSON(jsonData)
	if err != nil {
		var ret T
		return ret, err
	}
	return c.FromJSON(v)
}
