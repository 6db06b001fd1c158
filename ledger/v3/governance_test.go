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

package v3_test

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/internal/test/fakeledger"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v3 "github.com/blinklabs-io/plutus-ledger-api/ledger/v3"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxOutRefUntaggedTxId(t *testing.T) {
	id := bytes.Repeat([]byte{0xab}, 32)
	ref := v3.TxOutRef{Id: v3.TxId(id), Index: big.NewInt(3)}
	cborData, err := v3.TxOutRefCodec.EncodeCbor(ref)
	require.NoError(t, err)
	assert.Equal(
		t,
		"d8799f5820"+strings.Repeat("ab", 32)+"03ff",
		hex.EncodeToString(cborData),
	)
	decoded, err := v3.TxOutRefCodec.DecodeCbor(cborData)
	require.NoError(t, err)
	assert.True(t, ref.Equal(decoded))
	assert.Equal(t, strings.Repeat("ab", 32)+"#3", decoded.String())
}

func TestTxOutRefRejectsTaggedTxId(t *testing.T) {
	tagged := plutusdata.NewConstr(
		0,
		plutusdata.NewConstr(0, plutusdata.NewBytes(bytes.Repeat([]byte{0x01}, 32))),
		plutusdata.NewIntegerFromInt64(0),
	)
	_, err := v3.TxOutRefCodec.FromData(tagged)
	require.Error(t, err)
	assert.ErrorIs(t, err, plutusdata.ErrDecode)
	assert.Contains(t, err.Error(), "TxOutRef.transaction_id: TxId: expected Bytes")
}

func TestTxOutRefJSON(t *testing.T) {
	jsonData := []byte(`{"transaction_id": "` + strings.Repeat("cd", 32) + `", "index": 12}`)
	var ref v3.TxOutRef
	require.NoError(t, ref.UnmarshalJSON(jsonData))
	assert.Equal(t, int64(12), ref.Index.Int64())
	out, err := ref.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(jsonData), string(out))
}

func TestTxInInfoRoundTrip(t *testing.T) {
	g := fakeledger.New(11)
	for range 20 {
		info := g.V3TxInInfo()
		cborData, err := v3.TxInInfoCodec.EncodeCbor(info)
		require.NoError(t, err)
		decoded, err := v3.TxInInfoCodec.DecodeCbor(cborData)
		require.NoError(t, err)
		assert.True(t, info.Equal(decoded))
		assert.False(t, info.NotEqual(decoded))
	}
}

func TestGovernanceActionIdJSONKeys(t *testing.T) {
	gaid := v3.GovernanceActionId{
		TxId:        common.TxId(bytes.Repeat([]byte{0x02}, 32)),
		GovActionIx: big.NewInt(1),
	}
	obj, ok := gaid.ToJSON().(map[string]any)
	require.True(t, ok)
	assert.Len(t, obj, 2)
	assert.Contains(t, obj, "gaidTxId")
	assert.Contains(t, obj, "gaidGovActionIx")
	decoded, err := v3.GovernanceActionIdCodec.FromJSON(obj)
	require.NoError(t, err)
	assert.True(t, gaid.Equal(decoded))
}

func TestVote(t *testing.T) {
	testDefs := []struct {
		vote v3.Vote
		name string
	}{
		{vote: v3.VoteNo, name: "VoteNo"},
		{vote: v3.VoteYes, name: "VoteYes"},
		{vote: v3.Abstain, name: "Abstain"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			assert.Equal(t, testDef.name, testDef.vote.String())
			c, ok := testDef.vote.ToPlutusData().(plutusdata.Constr)
			require.True(t, ok)
			assert.Equal(t, uint64(testDef.vote), c.Index)
			assert.Empty(t, c.Fields)
			decoded, err := v3.VoteFromData(c)
			require.NoError(t, err)
			assert.Equal(t, testDef.vote, decoded)
			fromJSON, err := v3.VoteFromJSON(testDef.vote.ToJSON())
			require.NoError(t, err)
			assert.Equal(t, testDef.vote, fromJSON)
		})
	}
	_, err := v3.VoteFromData(plutusdata.NewConstr(3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Vote: unknown constructor 3")
	_, err = v3.VoteFromData(plutusdata.NewConstr(1, plutusdata.NewIntegerFromInt64(1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Vote: expected 0 fields for Constr 1, found 1")
	_, err = v3.VoteFromJSON(codec.Constructor("Yes"))
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrJSON)
	assert.Equal(t, "Vote(7)", v3.Vote(7).String())
}

func TestGovernanceTypesRoundTrip(t *testing.T) {
	g := fakeledger.New(12)
	for range 20 {
		drep := g.V3DRep()
		decodedDRep, err := v3.DRepCodec.FromData(drep.ToPlutusData())
		require.NoError(t, err)
		assert.True(t, v3.DRepEqual(drep, decodedDRep))

		delegatee := g.V3Delegatee()
		decodedDelegatee, err := v3.DelegateeCodec.FromJSON(delegatee.ToJSON())
		require.NoError(t, err)
		assert.True(t, v3.DelegateeEqual(delegatee, decodedDelegatee))

		voter := g.V3Voter()
		decodedVoter, err := v3.VoterCodec.FromData(voter.ToPlutusData())
		require.NoError(t, err)
		assert.True(t, v3.VoterEqual(voter, decodedVoter))
		assert.False(t, v3.VoterNotEqual(voter, decodedVoter))

		committee := g.V3Committee()
		cborData, err := v3.CommitteeCodec.EncodeCbor(committee)
		require.NoError(t, err)
		decodedCommittee, err := v3.CommitteeCodec.DecodeCbor(cborData)
		require.NoError(t, err)
		assert.True(t, committee.Equal(decodedCommittee))

		constitution := g.V3Constitution()
		jsonData, err := constitution.MarshalJSON()
		require.NoError(t, err)
		var decodedConstitution v3.Constitution
		require.NoError(t, decodedConstitution.UnmarshalJSON(jsonData))
		assert.True(t, constitution.Equal(decodedConstitution))
	}
}

func TestDRepConstructors(t *testing.T) {
	cred := common.PubKeyCredential{Hash: common.PubKeyHash(bytes.Repeat([]byte{0x03}, 28))}
	testDefs := []struct {
		drep     v3.DRep
		index    uint64
		jsonName string
	}{
		{drep: v3.DRepCredential{Credential: cred}, index: 0, jsonName: "DRep"},
		{drep: v3.DRepAlwaysAbstain{}, index: 1, jsonName: "AlwaysAbstain"},
		{drep: v3.DRepAlwaysNoConfidence{}, index: 2, jsonName: "AlwaysNoConfidence"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.jsonName, func(t *testing.T) {
			c, ok := testDef.drep.ToPlutusData().(plutusdata.Constr)
			require.True(t, ok)
			assert.Equal(t, testDef.index, c.Index)
			jsonValue, ok := testDef.drep.ToJSON().(map[string]any)
			require.True(t, ok)
			assert.Contains(t, jsonValue, testDef.jsonName)
		})
	}
	assert.True(t, v3.DRepNotEqual(testDefs[1].drep, testDefs[2].drep))
}

func TestProtocolVersionString(t *testing.T) {
	pv := v3.ProtocolVersion{Major: big.NewInt(10), Minor: big.NewInt(2)}
	assert.Equal(t, "10.2", pv.String())
}
