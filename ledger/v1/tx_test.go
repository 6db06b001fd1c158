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

package v1_test

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v1 "github.com/blinklabs-io/plutus-ledger-api/ledger/v1"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxIdIsTagged(t *testing.T) {
	id := v1.TxId(bytes.Repeat([]byte{0x01}, 32))
	d := v1.TxIdCodec.ToData(id)
	assert.Equal(
		t,
		"Constr 0 [B #"+hex.EncodeToString(id)+"]",
		d.String(),
	)
	cborData, err := v1.TxIdCodec.EncodeCbor(id)
	require.NoError(t, err)
	assert.Equal(
		t,
		"d8799f5820"+hex.EncodeToString(id)+"ff",
		hex.EncodeToString(cborData),
	)
	decoded, err := v1.TxIdCodec.DecodeCbor(cborData)
	require.NoError(t, err)
	assert.True(t, v1.TxIdCodec.Equal(id, decoded))
	// The JSON form carries no tag
	jsonData, err := v1.TxIdCodec.EncodeJSON(id)
	require.NoError(t, err)
	assert.Equal(t, `"`+hex.EncodeToString(id)+`"`, string(jsonData))
}

func TestTxIdDecodeErrors(t *testing.T) {
	testDefs := []struct {
		name     string
		data     plutusdata.Data
		errorMsg string
	}{
		{
			name:     "Untagged",
			data:     plutusdata.NewBytes(bytes.Repeat([]byte{0x01}, 32)),
			errorMsg: "TxId: expected Constr",
		},
		{
			name:     "WrongIndex",
			data:     plutusdata.NewConstr(1, plutusdata.NewBytes(bytes.Repeat([]byte{0x01}, 32))),
			errorMsg: "TxId: expected Constr 0",
		},
		{
			name:     "ShortHash",
			data:     plutusdata.NewConstr(0, plutusdata.NewBytes(bytes.Repeat([]byte{0x01}, 31))),
			errorMsg: "TxId: TxId should be 32 bytes, found 31 bytes",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := v1.TxIdCodec.FromData(testDef.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, plutusdata.ErrDecode)
			assert.Contains(t, err.Error(), testDef.errorMsg)
		})
	}
}

func TestTxOutRef(t *testing.T) {
	ref := v1.TxOutRef{
		Id:    v1.TxId(bytes.Repeat([]byte{0x01}, 32)),
		Index: big.NewInt(3),
	}
	cborData, err := v1.TxOutRefCodec.EncodeCbor(ref)
	require.NoError(t, err)
	assert.Equal(
		t,
		"d8799fd8799f5820"+hex.EncodeToString(ref.Id)+"ff03ff",
		hex.EncodeToString(cborData),
	)
	assert.Equal(t, hex.EncodeToString(ref.Id)+"#3", ref.String())
	jsonData, err := ref.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{"transaction_id": "`+hex.EncodeToString(ref.Id)+`", "index": 3}`,
		string(jsonData),
	)
	var decoded v1.TxOutRef
	require.NoError(t, decoded.UnmarshalJSON(jsonData))
	assert.True(t, ref.Equal(decoded))
	assert.False(t, ref.NotEqual(decoded))
	other := ref
	other.Index = big.NewInt(4)
	assert.False(t, ref.Equal(other))
	assert.True(t, ref.NotEqual(other))
}

func TestTxOutRefFieldError(t *testing.T) {
	d := plutusdata.NewConstr(
		0,
		plutusdata.NewConstr(0, plutusdata.NewBytes([]byte{0x01})),
		plutusdata.NewIntegerFromInt64(0),
	)
	_, err := v1.TxOutRefCodec.FromData(d)
	require.Error(t, err)
	assert.ErrorIs(t, err, plutusdata.ErrDecode)
	assert.Contains(
		t,
		err.Error(),
		"TxOutRef.transaction_id: TxId: TxId should be 32 bytes, found 1 bytes",
	)
	_, err = v1.TxOutRefCodec.DecodeJSON([]byte(`{"transaction_id": "01"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrJSON)
	assert.Contains(t, err.Error(), "TxOutRef.transaction_id")
	_, err = v1.TxOutRefCodec.DecodeJSON(
		[]byte(`{"transaction_id": "` + hex.EncodeToString(make([]byte, 32)) + `"}`),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TxOutRef.index: missing field")
}

func TestTxOutDatumHash(t *testing.T) {
	pkh, ok := common.PubKeyHashFromBytes(bytes.Repeat([]byte{0xaa}, 28))
	require.True(t, ok)
	out := v1.TxOut{
		Address: common.Address{Credential: common.PubKeyCredential{Hash: pkh}},
		Value:   common.Lovelace(big.NewInt(2_000_000)),
	}
	d := out.ToPlutusData()
	c, ok := d.(plutusdata.Constr)
	require.True(t, ok)
	require.Len(t, c.Fields, 3)
	// Nothing
	assert.Equal(t, "Constr 1 []", c.Fields[2].String())
	out.DatumHash = codec.Just(common.DatumHash(bytes.Repeat([]byte{0xbb}, 32)))
	c = out.ToPlutusData().(plutusdata.Constr)
	assert.Equal(
		t,
		"Constr 0 [B #"+hex.EncodeToString(bytes.Repeat([]byte{0xbb}, 32))+"]",
		c.Fields[2].String(),
	)
	decoded, err := v1.TxOutCodec.FromData(c)
	require.NoError(t, err)
	assert.True(t, out.Equal(decoded))
	hash, ok := decoded.DatumHash.Get()
	require.True(t, ok)
	assert.Equal(t, bytes.Repeat([]byte{0xbb}, 32), []byte(hash))
}
