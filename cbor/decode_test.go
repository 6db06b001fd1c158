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
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/cbor"
	test "github.com/blinklabs-io/plutus-ledger-api/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExactTrailingBytes(t *testing.T) {
	var tmp uint64
	require.NoError(t, cbor.DecodeExact(test.DecodeHexString("05"), &tmp))
	assert.Equal(t, uint64(5), tmp)
	err := cbor.DecodeExact(test.DecodeHexString("0506"), &tmp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 trailing bytes")
}

func TestStreamDecoderMapPairs(t *testing.T) {
	testDefs := []struct {
		name    string
		cborHex string
		pairs   [][2]string
	}{
		{
			name:    "definite",
			cborHex: "a2020101d87980",
			pairs:   [][2]string{{"02", "01"}, {"01", "d87980"}},
		},
		{
			name:    "indefinite",
			cborHex: "bf020141009fffff",
			pairs:   [][2]string{{"02", "01"}, {"4100", "9fff"}},
		},
		{
			name:    "duplicates",
			cborHex: "a201010102",
			pairs:   [][2]string{{"01", "01"}, {"01", "02"}},
		},
		{
			name:    "empty",
			cborHex: "a0",
			pairs:   [][2]string{},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data := test.DecodeHexString(testDef.cborHex)
			dec, err := cbor.NewStreamDecoder(data)
			require.NoError(t, err)
			pairs, err := dec.DecodeMapPairs()
			require.NoError(t, err)
			require.Len(t, pairs, len(testDef.pairs))
			for i, pair := range pairs {
				assert.Equal(t, test.DecodeHexString(testDef.pairs[i][0]), []byte(pair[0]))
				assert.Equal(t, test.DecodeHexString(testDef.pairs[i][1]), []byte(pair[1]))
			}
			assert.True(t, dec.EOF())
			assert.Equal(t, len(data), dec.Position())
		})
	}
}

func TestStreamDecoderHeaders(t *testing.T) {
	data := test.DecodeHexString("9f01ff83010203")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)
	length, offset, headerLen, err := dec.DecodeArrayHeader()
	require.NoError(t, err)
	assert.Equal(t, -1, length)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 1, headerLen)
	var item uint64
	_, _, err = dec.Decode(&item)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), item)
	assert.True(t, dec.NextIsBreak())
	require.NoError(t, dec.DecodeBreak())
	length, offset, headerLen, err = dec.DecodeArrayHeader()
	require.NoError(t, err)
	assert.Equal(t, 3, length)
	assert.Equal(t, 3, offset)
	assert.Equal(t, 1, headerLen)
	_, _, _, err = dec.DecodeMapHeader()
	require.Error(t, err)
}

func TestStreamDecoderDecodeRaw(t *testing.T) {
	data := test.DecodeHexString("d87a9f01ff05")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)
	var tag cbor.RawTag
	offset, raw, err := dec.DecodeRaw(&tag)
	require.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, uint64(122), tag.Number)
	assert.Equal(t, data[:5], raw)
	b, err := dec.PeekByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x05), b)
	require.Error(t, dec.DecodeBreak())
}
