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
	"encoding/json"
	"math/big"
	"sort"
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/internal/test/fakeledger"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v1 "github.com/blinklabs-io/plutus-ledger-api/ledger/v1"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDCertConstructors(t *testing.T) {
	pkh := common.PubKeyHash(bytes.Repeat([]byte{0x01}, 28))
	cred := common.StakingHash{Credential: common.PubKeyCredential{Hash: pkh}}
	testDefs := []struct {
		cert     v1.DCert
		index    uint64
		jsonName string
		arity    int
	}{
		{cert: v1.DCertDelegRegKey{StakingCredential: cred}, index: 0, jsonName: "DCertDelegRegKey", arity: 1},
		{cert: v1.DCertDelegDeRegKey{StakingCredential: cred}, index: 1, jsonName: "DCertDelegDeRegKey", arity: 1},
		{cert: v1.DCertDelegDelegate{Delegator: cred, Delegatee: pkh}, index: 2, jsonName: "DCertDelegDelegate", arity: 2},
		{cert: v1.DCertPoolRegister{PoolId: pkh, PoolVrf: pkh}, index: 3, jsonName: "DCertPoolRegister", arity: 2},
		{cert: v1.DCertPoolRetire{PoolId: pkh, Epoch: big.NewInt(300)}, index: 4, jsonName: "DCertPoolRetire", arity: 2},
		{cert: v1.DCertGenesis{}, index: 5, jsonName: "DCertGenesis", arity: 0},
		{cert: v1.DCertMir{}, index: 6, jsonName: "DCertMir", arity: 0},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.jsonName, func(t *testing.T) {
			c, ok := testDef.cert.ToPlutusData().(plutusdata.Constr)
			require.True(t, ok)
			assert.Equal(t, testDef.index, c.Index)
			assert.Len(t, c.Fields, testDef.arity)
			decoded, err := v1.DCertFromData(c)
			require.NoError(t, err)
			assert.True(t, v1.DCertEqual(testDef.cert, decoded))
			jsonValue, ok := testDef.cert.ToJSON().(map[string]any)
			require.True(t, ok)
			require.Contains(t, jsonValue, testDef.jsonName)
			assert.Len(t, jsonValue[testDef.jsonName], testDef.arity)
			jsonData, err := v1.DCertCodec.EncodeJSON(testDef.cert)
			require.NoError(t, err)
			fromJSON, err := v1.DCertCodec.DecodeJSON(jsonData)
			require.NoError(t, err)
			assert.True(t, v1.DCertEqual(testDef.cert, fromJSON))
		})
	}
	// Distinct variants never compare equal
	for i, a := range testDefs {
		for j, b := range testDefs {
			if i == j {
				continue
			}
			assert.False(t, v1.DCertEqual(a.cert, b.cert))
			assert.True(t, v1.DCertNotEqual(a.cert, b.cert))
		}
	}
}

func TestDCertDecodeErrors(t *testing.T) {
	testDefs := []struct {
		name     string
		data     plutusdata.Data
		errorMsg string
	}{
		{
			name:     "UnknownConstructor",
			data:     plutusdata.NewConstr(7),
			errorMsg: "DCert: unknown constructor 7",
		},
		{
			name:     "ExtraField",
			data:     plutusdata.NewConstr(5, plutusdata.NewIntegerFromInt64(1)),
			errorMsg: "DCert: expected 0 fields for Constr 5, found 1",
		},
		{
			name: "BadEpoch",
			data: plutusdata.NewConstr(
				4,
				plutusdata.NewBytes(bytes.Repeat([]byte{0x01}, 28)),
				plutusdata.NewBytes(nil),
			),
			errorMsg: "DCert.DCertPoolRetire[1]: Integer: expected Integer",
		},
		{
			name:     "NotConstr",
			data:     plutusdata.NewList(),
			errorMsg: "DCert: expected Constr",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := v1.DCertFromData(testDef.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, plutusdata.ErrDecode)
			assert.Contains(t, err.Error(), testDef.errorMsg)
		})
	}
}

func TestScriptPurposeConstructors(t *testing.T) {
	g := fakeledger.New(3)
	testDefs := []struct {
		purpose  v1.ScriptPurpose
		index    uint64
		jsonName string
	}{
		{purpose: v1.Minting{CurrencySymbol: g.CurrencySymbol()}, index: 0, jsonName: "Minting"},
		{purpose: v1.Spending{OutRef: g.V1TxOutRef()}, index: 1, jsonName: "Spending"},
		{purpose: v1.Rewarding{StakingCredential: g.StakingCredential()}, index: 2, jsonName: "Rewarding"},
		{purpose: v1.Certifying{DCert: v1.DCertMir{}}, index: 3, jsonName: "Certifying"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.jsonName, func(t *testing.T) {
			c, ok := testDef.purpose.ToPlutusData().(plutusdata.Constr)
			require.True(t, ok)
			assert.Equal(t, testDef.index, c.Index)
			jsonValue, ok := testDef.purpose.ToJSON().(map[string]any)
			require.True(t, ok)
			assert.Contains(t, jsonValue, testDef.jsonName)
		})
	}
}

func TestTxInfoJSONKeys(t *testing.T) {
	g := fakeledger.New(5)
	jsonData, err := g.V1TxInfo().MarshalJSON()
	require.NoError(t, err)
	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(jsonData, &obj))
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(
		t,
		[]string{
			"d_cert",
			"datums",
			"fee",
			"id",
			"inputs",
			"mint",
			"outputs",
			"signatories",
			"valid_range",
			"wdrl",
		},
		keys,
	)
}

func TestTxInfoTaggedPairs(t *testing.T) {
	cred := common.StakingHash{
		Credential: common.ScriptCredential{Hash: common.ScriptHash(bytes.Repeat([]byte{0x02}, 28))},
	}
	info := v1.TxInfo{
		Wdrl: []v1.Withdrawal{codec.NewPair[common.StakingCredential](cred, big.NewInt(10))},
		Id:   v1.TxId(bytes.Repeat([]byte{0x03}, 32)),
	}
	c := info.ToPlutusData().(plutusdata.Constr)
	require.Len(t, c.Fields, 10)
	wdrl, ok := c.Fields[5].(plutusdata.List)
	require.True(t, ok)
	require.Len(t, wdrl.Items, 1)
	pair, ok := wdrl.Items[0].(plutusdata.Constr)
	require.True(t, ok)
	assert.Equal(t, uint64(0), pair.Index)
	assert.Len(t, pair.Fields, 2)
	// Empty collections still encode as empty lists
	assert.Equal(t, "List []", c.Fields[0].String())
	decoded, err := v1.TxInfoCodec.FromData(c)
	require.NoError(t, err)
	assert.True(t, info.Equal(decoded))
}

func TestTxInfoLookups(t *testing.T) {
	g := fakeledger.New(9)
	input := g.V1TxInInfo()
	datumHash := g.DatumHash()
	signer := g.PubKeyHash()
	info := v1.TxInfo{
		Inputs: []v1.TxInInfo{g.V1TxInInfo(), input},
		Data: []v1.DatumEntry{
			codec.NewPair[common.DatumHash, common.Datum](datumHash, plutusdata.NewIntegerFromInt64(42)),
		},
		Signatories: []common.PubKeyHash{signer},
	}
	found, ok := info.FindOwnInput(v1.Spending{OutRef: input.OutRef})
	require.True(t, ok)
	assert.True(t, found.Equal(input))
	_, ok = info.FindOwnInput(v1.Minting{CurrencySymbol: common.AdaSymbol})
	assert.False(t, ok)
	datum, ok := info.FindDatum(datumHash)
	require.True(t, ok)
	assert.Equal(t, "I 42", datum.String())
	_, ok = info.FindDatum(g.DatumHash())
	assert.False(t, ok)
	assert.True(t, info.SignedBy(signer))
	assert.False(t, info.SignedBy(g.PubKeyHash()))
}

func TestGeneratedScriptContext(t *testing.T) {
	g := fakeledger.New(1)
	for range 50 {
		ctx := g.V1ScriptContext()
		cborData, err := v1.ScriptContextCodec.EncodeCbor(ctx)
		require.NoError(t, err)
		decoded, err := v1.ScriptContextCodec.DecodeCbor(cborData, plutusdata.WithStrict(true))
		require.NoError(t, err)
		require.True(t, ctx.Equal(decoded))
		require.False(t, ctx.NotEqual(decoded))
		jsonData, err := ctx.MarshalJSON()
		require.NoError(t, err)
		var fromJSON v1.ScriptContext
		require.NoError(t, fromJSON.UnmarshalJSON(jsonData))
		require.True(t, ctx.Equal(fromJSON))
		other := g.V1ScriptContext()
		assert.Equal(t, ctx.Equal(other), !ctx.NotEqual(other))
	}
}
