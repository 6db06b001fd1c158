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

package plutusdata_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	test "github.com/blinklabs-io/plutus-ledger-api/internal/test"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigFromString(s string) *big.Int {
	ret, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid integer: " + s)
	}
	return ret
}

func TestEncodeDecode(t *testing.T) {
	bytes64 := bytes.Repeat([]byte{0xaa}, 64)
	bytes65 := bytes.Repeat([]byte{0xbb}, 65)
	testDefs := []struct {
		name    string
		data    plutusdata.Data
		cborHex string
	}{
		{
			name:    "constr 0 empty",
			data:    plutusdata.NewConstr(0),
			cborHex: "d87980",
		},
		{
			name: "constr 1 with fields",
			data: plutusdata.NewConstr(
				1,
				plutusdata.NewIntegerFromInt64(1),
				plutusdata.NewIntegerFromInt64(2),
				plutusdata.NewIntegerFromInt64(3),
			),
			cborHex: "d87a9f010203ff",
		},
		{
			name:    "constr 7",
			data:    plutusdata.NewConstr(7),
			cborHex: "d9050080",
		},
		{
			name:    "constr 127",
			data:    plutusdata.NewConstr(127),
			cborHex: "d9057880",
		},
		{
			name:    "constr 128 general form",
			data:    plutusdata.NewConstr(128, plutusdata.NewBytes(nil)),
			cborHex: "d8668218809f40ff",
		},
		{
			name: "map keeps order and duplicates",
			data: plutusdata.NewMap(
				plutusdata.NewPair(
					plutusdata.NewIntegerFromInt64(2),
					plutusdata.NewBytes([]byte{0x01}),
				),
				plutusdata.NewPair(
					plutusdata.NewIntegerFromInt64(1),
					plutusdata.NewList(),
				),
				plutusdata.NewPair(
					plutusdata.NewIntegerFromInt64(2),
					plutusdata.NewMap(),
				),
			),
			cborHex: "a3024101018002a0",
		},
		{
			name:    "empty list",
			data:    plutusdata.NewList(),
			cborHex: "80",
		},
		{
			name:    "list",
			data:    plutusdata.NewList(plutusdata.NewIntegerFromInt64(-1)),
			cborHex: "9f20ff",
		},
		{
			name:    "bytes 64",
			data:    plutusdata.NewBytes(bytes64),
			cborHex: "5840" + hex.EncodeToString(bytes64),
		},
		{
			name: "bytes 65 chunked",
			data: plutusdata.NewBytes(bytes65),
			cborHex: "5f5840" + hex.EncodeToString(bytes65[:64]) +
				"41bbff",
		},
		{
			name:    "max uint64",
			data:    plutusdata.NewInteger(bigFromString("18446744073709551615")),
			cborHex: "1bffffffffffffffff",
		},
		{
			name:    "2^64",
			data:    plutusdata.NewInteger(bigFromString("18446744073709551616")),
			cborHex: "c249010000000000000000",
		},
		{
			name:    "-2^64",
			data:    plutusdata.NewInteger(bigFromString("-18446744073709551616")),
			cborHex: "3bffffffffffffffff",
		},
		{
			name:    "-2^64 - 1",
			data:    plutusdata.NewInteger(bigFromString("-18446744073709551617")),
			cborHex: "c349010000000000000000",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			expected := testDef.cborHex
			cborData, err := plutusdata.Encode(testDef.data)
			require.NoError(t, err)
			assert.Equal(t, expected, hex.EncodeToString(cborData))
			decoded, err := plutusdata.Decode(cborData)
			require.NoError(t, err)
			assert.True(
				t,
				plutusdata.Equal(testDef.data, decoded),
				"decoded %s, expected %s",
				decoded,
				testDef.data,
			)
		})
	}
}

func TestDecodeNonCanonical(t *testing.T) {
	testDefs := []struct {
		name    string
		cborHex string
		data    plutusdata.Data
		strict  bool
	}{
		{
			name:    "definite constr fields",
			cborHex: "d87a83010203",
			data: plutusdata.NewConstr(
				1,
				plutusdata.NewIntegerFromInt64(1),
				plutusdata.NewIntegerFromInt64(2),
				plutusdata.NewIntegerFromInt64(3),
			),
			strict: true,
		},
		{
			name:    "indefinite map",
			cborHex: "bf0102ff",
			data: plutusdata.NewMap(
				plutusdata.NewPair(
					plutusdata.NewIntegerFromInt64(1),
					plutusdata.NewIntegerFromInt64(2),
				),
			),
			strict: true,
		},
		{
			name:    "single chunk bytes",
			cborHex: "5f4201024103ff",
			data:    plutusdata.NewBytes([]byte{1, 2, 3}),
			strict:  true,
		},
		{
			name:    "general form for small index",
			cborHex: "d866820280",
			data:    plutusdata.NewConstr(2),
		},
		{
			name:    "bignum for small value",
			cborHex: "c24101",
			data:    plutusdata.NewIntegerFromInt64(1),
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			cborData := test.DecodeHexString(testDef.cborHex)
			decoded, err := plutusdata.Decode(cborData)
			require.NoError(t, err)
			assert.True(t, plutusdata.Equal(testDef.data, decoded))
			_, err = plutusdata.Decode(cborData, plutusdata.WithStrict(true))
			if testDef.strict {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, plutusdata.ErrDecode)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	testDefs := []struct {
		name    string
		cborHex string
		msg     string
	}{
		{name: "text string", cborHex: "6161", msg: "unsupported CBOR major type 0x60"},
		{name: "float", cborHex: "f93c00", msg: "unsupported CBOR major type 0xe0"},
		{name: "unknown tag", cborHex: "d81801", msg: "unsupported CBOR tag 24"},
		{name: "trailing data", cborHex: "0000", msg: "trailing bytes"},
		{name: "truncated", cborHex: "9f01", msg: "invalid CBOR"},
		{name: "constr without array", cborHex: "d87901", msg: "constructor fields must be an array"},
		{name: "general form items", cborHex: "d86683008001", msg: "must have 2 items"},
		{name: "general form index", cborHex: "d866822080", msg: "unsigned integer"},
		{name: "nested invalid", cborHex: "9f01d8180aff", msg: "unsupported CBOR tag 24"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := plutusdata.Decode(test.DecodeHexString(testDef.cborHex))
			require.Error(t, err)
			assert.ErrorIs(t, err, plutusdata.ErrDecode)
			var decodeErr *plutusdata.DecodeError
			assert.True(t, errors.As(err, &decodeErr))
			assert.Contains(t, err.Error(), testDef.msg)
		})
	}
}

func TestDecodeMaxDepth(t *testing.T) {
	var d plutusdata.Data = plutusdata.NewIntegerFromInt64(0)
	for range 5 {
		d = plutusdata.NewList(d)
	}
	cborData, err := plutusdata.Encode(d)
	require.NoError(t, err)
	_, err = plutusdata.Decode(cborData, plutusdata.WithMaxDepth(3))
	require.ErrorIs(t, err, plutusdata.ErrDecode)
	assert.Contains(t, err.Error(), "maximum nesting depth 3 exceeded")
	decoded, err := plutusdata.Decode(cborData, plutusdata.WithMaxDepth(5))
	require.NoError(t, err)
	assert.True(t, plutusdata.Equal(d, decoded))
}

func TestEncodeNil(t *testing.T) {
	one := plutusdata.NewIntegerFromInt64(1)
	testDefs := []struct {
		name string
		data plutusdata.Data
	}{
		{name: "TopLevel", data: nil},
		{name: "ListItem", data: plutusdata.NewList(one, nil)},
		{name: "ConstrField", data: plutusdata.NewConstr(3, nil)},
		{name: "GeneralConstrField", data: plutusdata.NewConstr(200, one, nil)},
		{name: "MapKey", data: plutusdata.NewMap(plutusdata.NewPair(nil, one))},
		{name: "MapValue", data: plutusdata.NewMap(plutusdata.NewPair(one, nil))},
		{
			name: "Nested",
			data: plutusdata.NewConstr(
				0,
				plutusdata.NewList(plutusdata.NewMap(plutusdata.NewPair(one, nil))),
			),
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := plutusdata.Encode(testDef.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, plutusdata.ErrNilData)
			_, err = plutusdata.Hash(testDef.data)
			assert.ErrorIs(t, err, plutusdata.ErrNilData)
		})
	}
}
