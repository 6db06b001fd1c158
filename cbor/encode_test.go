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

package cbor_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeTestDefinition struct {
	CborHex string
	Object  any
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{1, 2, 3},
	},
	{
		CborHex: "9f010203ff",
		Object:  cbor.IndefLengthList{1, 2, 3},
	},
	{
		CborHex: "9fff",
		Object:  cbor.IndefLengthList{},
	},
	{
		CborHex: "5f4201024103ff",
		Object:  cbor.IndefLengthByteString{[]byte{1, 2}, []byte{3}},
	},
	// Pair order and duplicates are kept
	{
		CborHex: "a3020101020201",
		Object: cbor.OrderedMap{
			{Key: 2, Value: 1},
			{Key: 1, Value: 2},
			{Key: 2, Value: 1},
		},
	},
	// Raw items are passed through
	{
		CborHex: "d87980",
		Object:  cbor.RawMessage{0xd8, 0x79, 0x80},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		require.NoError(t, err)
		assert.Equal(t, test.CborHex, hex.EncodeToString(cborData))
	}
}

func TestEncodeHead(t *testing.T) {
	testDefs := []struct {
		major uint8
		arg   uint64
		hex   string
	}{
		{cbor.CborTypeUint, 0, "00"},
		{cbor.CborTypeUint, 23, "17"},
		{cbor.CborTypeUint, 24, "1818"},
		{cbor.CborTypeMap, 2, "a2"},
		{cbor.CborTypeArray, 256, "990100"},
		{cbor.CborTypeByteString, 70000, "5a00011170"},
		{cbor.CborTypeTag, 1 << 32, "db0000000100000000"},
	}
	for _, testDef := range testDefs {
		assert.Equal(
			t,
			testDef.hex,
			hex.EncodeToString(cbor.EncodeHead(testDef.major, testDef.arg)),
		)
	}
}

func TestNewChunkedByteString(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 130)
	chunks := cbor.NewChunkedByteString(data, 64)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 64)
	assert.Len(t, chunks[1], 64)
	assert.Len(t, chunks[2], 2)
	cborData, err := cbor.Encode(chunks)
	require.NoError(t, err)
	assert.Equal(t, byte(0x5f), cborData[0])
	assert.Equal(t, byte(0xff), cborData[len(cborData)-1])
	// The chunks decode back to the original bytestring
	var decoded []byte
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}
