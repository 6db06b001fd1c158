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

package v2_test

import (
	"bytes"
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/assocmap"
	"github.com/blinklabs-io/plutus-ledger-api/internal/test/fakeledger"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v1 "github.com/blinklabs-io/plutus-ledger-api/ledger/v1"
	v2 "github.com/blinklabs-io/plutus-ledger-api/ledger/v2"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputDatumConstructors(t *testing.T) {
	hash := common.DatumHash(bytes.Repeat([]byte{0x0f}, 32))
	testDefs := []struct {
		datum    v2.OutputDatum
		index    uint64
		jsonName string
	}{
		{datum: v2.NoOutputDatum{}, index: 0, jsonName: "NoOutputDatum"},
		{datum: v2.OutputDatumHash{Hash: hash}, index: 1, jsonName: "OutputDatumHash"},
		{datum: v2.OutputDatumInline{Datum: plutusdata.NewIntegerFromInt64(7)}, index: 2, jsonName: "OutputDatum"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.jsonName, func(t *testing.T) {
			c, ok := testDef.datum.ToPlutusData().(plutusdata.Constr)
			require.True(t, ok)
			assert.Equal(t, testDef.index, c.Index)
			decoded, err := v2.OutputDatumFromData(c)
			require.NoError(t, err)
			assert.True(t, v2.OutputDatumEqual(testDef.datum, decoded))
			assert.False(t, v2.OutputDatumNotEqual(testDef.datum, decoded))
			jsonValue, ok := testDef.datum.ToJSON().(map[string]any)
			require.True(t, ok)
			assert.Contains(t, jsonValue, testDef.jsonName)
			fromJSON, err := v2.OutputDatumFromJSON(jsonValue)
			require.NoError(t, err)
			assert.True(t, v2.OutputDatumEqual(testDef.datum, fromJSON))
		})
	}
	assert.False(t, v2.OutputDatumEqual(testDefs[0].datum, testDefs[1].datum))
	assert.True(t, v2.OutputDatumNotEqual(testDefs[1].datum, testDefs[2].datum))
}

func TestOutputDatumDecodeErrors(t *testing.T) {
	testDefs := []struct {
		name     string
		data     plutusdata.Data
		errorMsg string
	}{
		{
			name:     "UnknownConstructor",
			data:     plutusdata.NewConstr(3),
			errorMsg: "OutputDatum: unknown constructor 3",
		},
		{
			name:     "MissingDatum",
			data:     plutusdata.NewConstr(2),
			errorMsg: "OutputDatum: expected 1 fields for Constr 2, found 0",
		},
		{
			name:     "ShortHash",
			data:     plutusdata.NewConstr(1, plutusdata.NewBytes([]byte{0x01})),
			errorMsg: "OutputDatum.OutputDatumHash: DatumHash: DatumHash should be 32 bytes, found 1 bytes",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := v2.OutputDatumFromData(testDef.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, plutusdata.ErrDecode)
			assert.Contains(t, err.Error(), testDef.errorMsg)
		})
	}
}

func TestTxOutNilDatum(t *testing.T) {
	g := fakeledger.New(2)
	out := v2.TxOut{
		Address: g.Address(),
		Value:   common.Lovelace(nil),
	}
	c, ok := out.ToPlutusData().(plutusdata.Constr)
	require.True(t, ok)
	require.Len(t, c.Fields, 4)
	assert.Equal(t, "Constr 0 []", c.Fields[2].String())
	assert.Equal(t, "Constr 1 []", c.Fields[3].String())
	decoded, err := v2.TxOutCodec.FromData(c)
	require.NoError(t, err)
	assert.Equal(t, v2.NoOutputDatum{}, decoded.Datum)
	assert.True(t, out.Equal(decoded))
	assert.False(t, out.NotEqual(decoded))
}

func TestTxOutJSONKeys(t *testing.T) {
	g := fakeledger.New(4)
	out := g.V2TxOut()
	obj, ok := out.ToJSON().(map[string]any)
	require.True(t, ok)
	assert.Len(t, obj, 4)
	for _, key := range []string{"address", "value", "datum", "reference_script"} {
		assert.Contains(t, obj, key)
	}
}

func TestScriptContextEqualityNeedsBothFields(t *testing.T) {
	g := fakeledger.New(6)
	info := g.V2TxInfo()
	mint := v1.Minting{CurrencySymbol: common.CurrencySymbol(bytes.Repeat([]byte{0x01}, 28))}
	spend := v1.Spending{OutRef: g.V1TxOutRef()}
	a := v2.ScriptContext{TxInfo: info, Purpose: mint}
	b := v2.ScriptContext{TxInfo: info, Purpose: spend}
	assert.False(t, a.Equal(b))
	assert.True(t, a.NotEqual(b))
	other := info
	other.Id = g.TxId()
	c := v2.ScriptContext{TxInfo: other, Purpose: mint}
	assert.False(t, a.Equal(c))
	assert.True(t, a.NotEqual(c))
	assert.True(t, a.Equal(v2.ScriptContext{TxInfo: info, Purpose: mint}))
	assert.False(t, a.NotEqual(v2.ScriptContext{TxInfo: info, Purpose: mint}))
}

func TestTxInfoMaps(t *testing.T) {
	g := fakeledger.New(8)
	hash := g.DatumHash()
	purpose := v1.Spending{OutRef: g.V1TxOutRef()}
	info := v2.TxInfo{
		Redeemers: assocmap.FromList([]assocmap.Pair[v1.ScriptPurpose, common.Redeemer]{
			{Key: purpose, Value: plutusdata.NewIntegerFromInt64(1)},
		}),
		Data: assocmap.FromList([]assocmap.Pair[common.DatumHash, common.Datum]{
			{Key: hash, Value: plutusdata.NewBytes([]byte{0xca, 0xfe})},
		}),
		Id: g.TxId(),
	}
	c := info.ToPlutusData().(plutusdata.Constr)
	require.Len(t, c.Fields, 12)
	redeemers, ok := c.Fields[9].(plutusdata.Map)
	require.True(t, ok)
	require.Len(t, redeemers.Pairs, 1)
	wdrl, ok := c.Fields[6].(plutusdata.Map)
	require.True(t, ok)
	assert.Empty(t, wdrl.Pairs)

	redeemer, ok := info.FindRedeemer(purpose)
	require.True(t, ok)
	assert.Equal(t, "I 1", redeemer.String())
	_, ok = info.FindRedeemer(v1.Certifying{DCert: v1.DCertMir{}})
	assert.False(t, ok)

	datum, ok := info.ResolveDatum(v2.TxOut{Datum: v2.OutputDatumHash{Hash: hash}})
	require.True(t, ok)
	assert.Equal(t, "B #cafe", datum.String())
	datum, ok = info.ResolveDatum(v2.TxOut{Datum: v2.OutputDatumInline{Datum: plutusdata.NewList()}})
	require.True(t, ok)
	assert.Equal(t, "List []", datum.String())
	_, ok = info.ResolveDatum(v2.TxOut{Datum: v2.NoOutputDatum{}})
	assert.False(t, ok)
	_, ok = info.ResolveDatum(v2.TxOut{Datum: v2.OutputDatumHash{Hash: g.DatumHash()}})
	assert.False(t, ok)
}

func TestTxInfoJSONKeys(t *testing.T) {
	g := fakeledger.New(10)
	obj, ok := g.V2TxInfo().ToJSON().(map[string]any)
	require.True(t, ok)
	assert.Len(t, obj, 12)
	for _, key := range []string{
		"inputs",
		"reference_inputs",
		"outputs",
		"fee",
		"mint",
		"d_cert",
		"wdrl",
		"valid_range",
		"signatories",
		"redeemers",
		"datums",
		"id",
	} {
		assert.Contains(t, obj, key)
	}
}

func TestGeneratedScriptContext(t *testing.T) {
	g := fakeledger.New(12)
	for range 50 {
		ctx := g.V2ScriptContext()
		cborData, err := v2.ScriptContextCodec.EncodeCbor(ctx)
		require.NoError(t, err)
		decoded, err := v2.ScriptContextCodec.DecodeCbor(cborData, plutusdata.WithStrict(true))
		require.NoError(t, err)
		require.True(t, ctx.Equal(decoded))
		require.False(t, ctx.NotEqual(decoded))
		jsonData, err := v2.ScriptContextCodec.EncodeJSON(ctx)
		require.NoError(t, err)
		fromJSON, err := v2.ScriptContextCodec.DecodeJSON(jsonData)
		require.NoError(t, err)
		require.True(t, ctx.Equal(fromJSON))
		other := g.V2ScriptContext()
		assert.Equal(t, ctx.Equal(other), !ctx.NotEqual(other))
	}
}

func TestGeneratedTxOut(t *testing.T) {
	g := fakeledger.New(13)
	for range 100 {
		out := g.V2TxOut()
		decoded, err := v2.TxOutCodec.FromData(out.ToPlutusData())
		require.NoError(t, err)
		require.True(t, out.Equal(decoded))
		hash, isJust := out.ReferenceScript.Get()
		decodedHash, decodedJust := decoded.ReferenceScript.Get()
		assert.Equal(t, isJust, decodedJust)
		assert.True(t, bytes.Equal(hash, decodedHash))
	}
}
