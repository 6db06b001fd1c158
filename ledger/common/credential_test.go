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

package common_test

import (
	"bytes"
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefinedBytesConstructors(t *testing.T) {
	testDefs := []struct {
		name     string
		fromFunc func([]byte) bool
		valid    []int
		invalid  []int
	}{
		{
			name: "PubKeyHash",
			fromFunc: func(b []byte) bool {
				_, ok := common.PubKeyHashFromBytes(b)
				return ok
			},
			valid:   []int{28},
			invalid: []int{0, 27, 29, 32},
		},
		{
			name: "ScriptHash",
			fromFunc: func(b []byte) bool {
				_, ok := common.ScriptHashFromBytes(b)
				return ok
			},
			valid:   []int{28},
			invalid: []int{27, 29},
		},
		{
			name: "DatumHash",
			fromFunc: func(b []byte) bool {
				_, ok := common.DatumHashFromBytes(b)
				return ok
			},
			valid:   []int{32},
			invalid: []int{28, 31, 33},
		},
		{
			name: "RedeemerHash",
			fromFunc: func(b []byte) bool {
				_, ok := common.RedeemerHashFromBytes(b)
				return ok
			},
			valid:   []int{32},
			invalid: []int{0, 31, 33},
		},
		{
			name: "TxId",
			fromFunc: func(b []byte) bool {
				_, ok := common.TxIdFromBytes(b)
				return ok
			},
			valid:   []int{32},
			invalid: []int{0, 28, 33},
		},
		{
			name: "CurrencySymbol",
			fromFunc: func(b []byte) bool {
				_, ok := common.CurrencySymbolFromBytes(b)
				return ok
			},
			valid:   []int{0, 28},
			invalid: []int{1, 27, 29, 32},
		},
		{
			name: "TokenName",
			fromFunc: func(b []byte) bool {
				_, ok := common.TokenNameFromBytes(b)
				return ok
			},
			valid:   []int{0, 1, 31, 32},
			invalid: []int{33, 64},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			for _, size := range testDef.valid {
				assert.True(t, testDef.fromFunc(make([]byte, size)), "size %d", size)
			}
			for _, size := range testDef.invalid {
				assert.False(t, testDef.fromFunc(make([]byte, size)), "size %d", size)
			}
		})
	}
}

func TestRefinedBytesCopiesInput(t *testing.T) {
	input := bytes.Repeat([]byte{0xab}, 28)
	pkh, ok := common.PubKeyHashFromBytes(input)
	require.True(t, ok)
	input[0] = 0x00
	assert.Equal(t, byte(0xab), pkh[0])
}

func TestRefinedBytesCodecLength(t *testing.T) {
	short := plutusdata.NewBytes(make([]byte, 27))
	_, err := common.PubKeyHashCodec.FromData(short)
	assert.ErrorIs(t, err, plutusdata.ErrDecode)
	assert.ErrorContains(t, err, "PubKeyHash should be 28 bytes, found 27 bytes")
	_, err = common.PubKeyHashCodec.FromData(plutusdata.NewIntegerFromInt64(1))
	assert.ErrorContains(t, err, "expected Bytes")
	_, err = common.TokenNameCodec.FromJSON(string(bytes.Repeat([]byte("ab"), 33)))
	assert.ErrorIs(t, err, codec.ErrJSON)
	assert.ErrorContains(t, err, "TokenName should be at most 32 bytes")
	_, err = common.DatumHashCodec.FromJSON("zz")
	assert.ErrorContains(t, err, "invalid hex")
	cs, err := common.CurrencySymbolCodec.FromJSON("")
	require.NoError(t, err)
	assert.Empty(t, cs)
	pkh, err := common.PubKeyHashCodec.FromJSON(
		"8F7E0B60191264EA993A75B66807F632A5DD304054F0A0BACF626A97",
	)
	require.NoError(t, err)
	assert.Equal(t, "8f7e0b60191264ea993a75b66807f632a5dd304054f0a0bacf626a97", pkh.String())
	assert.Equal(t, pkh.String(), common.PubKeyHashCodec.ToJSON(pkh))
}

func TestCredentialTags(t *testing.T) {
	hash := bytes.Repeat([]byte{0x01}, 28)
	testDefs := []struct {
		cred     common.Credential
		expected plutusdata.Data
		json     string
	}{
		{
			cred:     common.PubKeyCredential{Hash: hash},
			expected: plutusdata.NewConstr(0, plutusdata.NewBytes(hash)),
			json:     `{"PubKeyCredential": ["01010101010101010101010101010101010101010101010101010101"]}`,
		},
		{
			cred:     common.ScriptCredential{Hash: hash},
			expected: plutusdata.NewConstr(1, plutusdata.NewBytes(hash)),
			json:     `{"ScriptCredential": ["01010101010101010101010101010101010101010101010101010101"]}`,
		},
	}
	for _, testDef := range testDefs {
		d := common.CredentialCodec.ToData(testDef.cred)
		assert.True(t, plutusdata.Equal(testDef.expected, d), d.String())
		decoded, err := common.CredentialFromData(d)
		require.NoError(t, err)
		assert.True(t, common.CredentialEqual(testDef.cred, decoded))
		jsonData, err := common.CredentialCodec.EncodeJSON(testDef.cred)
		require.NoError(t, err)
		assert.JSONEq(t, testDef.json, string(jsonData))
		fromJSON, err := common.CredentialCodec.DecodeJSON([]byte(testDef.json))
		require.NoError(t, err)
		assert.False(t, common.CredentialNotEqual(testDef.cred, fromJSON))
	}
	pubKey := common.PubKeyCredential{Hash: hash}
	script := common.ScriptCredential{Hash: hash}
	assert.False(t, common.CredentialEqual(pubKey, script))
	assert.True(t, common.CredentialNotEqual(pubKey, script))
}

func TestCredentialDecodeErrors(t *testing.T) {
	hash := plutusdata.NewBytes(make([]byte, 28))
	testDefs := []struct {
		data     plutusdata.Data
		expected string
	}{
		{
			data:     plutusdata.NewConstr(7, hash),
			expected: "Credential: unknown constructor 7",
		},
		{
			data:     plutusdata.NewConstr(0),
			expected: "expected 1 fields for Constr 0, found 0",
		},
		{
			data:     plutusdata.NewConstr(0, hash, hash),
			expected: "expected 1 fields for Constr 0, found 2",
		},
		{
			data:     plutusdata.NewConstr(1, plutusdata.NewBytes(make([]byte, 32))),
			expected: "Credential.ScriptCredential: ScriptHash: ScriptHash should be 28 bytes",
		},
		{
			data:     plutusdata.NewList(),
			expected: "expected Constr",
		},
	}
	for _, testDef := range testDefs {
		_, err := common.CredentialFromData(testDef.data)
		assert.ErrorIs(t, err, plutusdata.ErrDecode)
		assert.ErrorContains(t, err, testDef.expected)
	}
	for _, bad := range []string{
		`{"PubKeyCredential": []}`,
		`{"KeyCredential": ["00"]}`,
		`{"PubKeyCredential": ["00"], "ScriptCredential": ["00"]}`,
		`["PubKeyCredential"]`,
	} {
		_, err := common.CredentialCodec.DecodeJSON([]byte(bad))
		assert.ErrorIs(t, err, codec.ErrJSON, bad)
	}
}

func TestStakingCredential(t *testing.T) {
	ptr := common.StakingPtr{
		SlotNumber:       bigInt(2498243),
		TransactionIndex: bigInt(27),
		CertificateIndex: bigInt(3),
	}
	jsonData, err := common.StakingCredentialCodec.EncodeJSON(ptr)
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{"StakingPtr": [{"slot_number": 2498243, "transaction_index": 27, "certificate_index": 3}]}`,
		string(jsonData),
	)
	fromJSON, err := common.StakingCredentialCodec.DecodeJSON(jsonData)
	require.NoError(t, err)
	assert.True(t, common.StakingCredentialEqual(ptr, fromJSON))
	d := ptr.ToPlutusData()
	assert.True(
		t,
		plutusdata.Equal(
			plutusdata.NewConstr(
				1,
				plutusdata.NewIntegerFromInt64(2498243),
				plutusdata.NewIntegerFromInt64(27),
				plutusdata.NewIntegerFromInt64(3),
			),
			d,
		),
	)
	stakingHash := common.StakingHash{
		Credential: common.ScriptCredential{Hash: make([]byte, 28)},
	}
	assert.True(
		t,
		plutusdata.Equal(
			plutusdata.NewConstr(0, plutusdata.NewConstr(1, plutusdata.NewBytes(make([]byte, 28)))),
			stakingHash.ToPlutusData(),
		),
	)
	assert.True(t, common.StakingCredentialNotEqual(ptr, stakingHash))
	_, err = common.StakingCredentialCodec.DecodeJSON(
		[]byte(`{"StakingPtr": [{"slot_number": 1, "transaction_index": 2}]}`),
	)
	assert.ErrorContains(t, err, "StakingCredential.certificate_index: missing field")
}
