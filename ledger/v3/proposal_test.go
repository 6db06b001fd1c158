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
	"math/big"
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/assocmap"
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/internal/test/fakeledger"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v3 "github.com/blinklabs-io/plutus-ledger-api/ledger/v3"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGovernanceActionConstructors(t *testing.T) {
	cred := common.PubKeyCredential{Hash: common.PubKeyHash(bytes.Repeat([]byte{0x07}, 28))}
	gaid := codec.Just(v3.GovernanceActionId{
		TxId:        common.TxId(bytes.Repeat([]byte{0x08}, 32)),
		GovActionIx: big.NewInt(0),
	})
	noGaid := codec.Nothing[v3.GovernanceActionId]()
	members := assocmap.FromList([]assocmap.Pair[common.Credential, *big.Int]{
		{Key: cred, Value: big.NewInt(300)},
	})
	testDefs := []struct {
		action   v3.GovernanceAction
		index    uint64
		jsonName string
	}{
		{
			action: v3.ParameterChange{
				PrevActionId:    gaid,
				Parameters:      plutusdata.NewMap(),
				GuardrailScript: codec.Nothing[common.ScriptHash](),
			},
			index:    0,
			jsonName: "ParameterChange",
		},
		{
			action: v3.HardForkInitiation{
				PrevActionId:    noGaid,
				ProtocolVersion: v3.ProtocolVersion{Major: big.NewInt(10), Minor: big.NewInt(0)},
			},
			index:    1,
			jsonName: "HardForkInitiation",
		},
		{
			action: v3.TreasuryWithdrawal{
				Withdrawals:     members,
				GuardrailScript: codec.Just(common.ScriptHash(bytes.Repeat([]byte{0x09}, 28))),
			},
			index:    2,
			jsonName: "TreasuryWithdrawal",
		},
		{
			action:   v3.NoConfidence{PrevActionId: gaid},
			index:    3,
			jsonName: "NoConfidence",
		},
		{
			action: v3.UpdateCommittee{
				PrevActionId: noGaid,
				Removed:      []common.Credential{cred},
				Added:        members,
				Quorum:       common.Rational{Numerator: big.NewInt(2), Denominator: big.NewInt(3)},
			},
			index:    4,
			jsonName: "UpdateCommittee",
		},
		{
			action:   v3.NewConstitution{PrevActionId: gaid, Constitution: v3.Constitution{}},
			index:    5,
			jsonName: "NewConstitution",
		},
		{
			action:   v3.InfoAction{},
			index:    6,
			jsonName: "InfoAction",
		},
	}
	for i, testDef := range testDefs {
		t.Run(testDef.jsonName, func(t *testing.T) {
			c, ok := testDef.action.ToPlutusData().(plutusdata.Constr)
			require.True(t, ok)
			assert.Equal(t, testDef.index, c.Index)
			decoded, err := v3.GovernanceActionFromData(c)
			require.NoError(t, err)
			assert.True(t, v3.GovernanceActionEqual(testDef.action, decoded))
			assert.False(t, v3.GovernanceActionNotEqual(testDef.action, decoded))
			jsonValue, ok := testDef.action.ToJSON().(map[string]any)
			require.True(t, ok)
			require.Contains(t, jsonValue, testDef.jsonName)
			fromJSON, err := v3.GovernanceActionFromJSON(jsonValue)
			require.NoError(t, err)
			assert.True(t, v3.GovernanceActionEqual(testDef.action, fromJSON))
			other := testDefs[(i+1)%len(testDefs)].action
			assert.False(t, v3.GovernanceActionEqual(testDef.action, other))
			assert.True(t, v3.GovernanceActionNotEqual(testDef.action, other))
		})
	}
}

func TestGovernanceActionDecodeErrors(t *testing.T) {
	testDefs := []struct {
		name     string
		data     plutusdata.Data
		errorMsg string
	}{
		{
			name:     "UnknownConstructor",
			data:     plutusdata.NewConstr(7),
			errorMsg: "GovernanceAction: unknown constructor 7",
		},
		{
			name:     "InfoActionWithFields",
			data:     plutusdata.NewConstr(6, plutusdata.NewIntegerFromInt64(0)),
			errorMsg: "GovernanceAction: expected 0 fields for Constr 6, found 1",
		},
		{
			name:     "NoConfidenceBadPrevious",
			data:     plutusdata.NewConstr(3, plutusdata.NewConstr(2)),
			errorMsg: "GovernanceAction.NoConfidence: ",
		},
		{
			name: "HardForkBadVersion",
			data: plutusdata.NewConstr(
				1,
				plutusdata.NewConstr(1),
				plutusdata.NewConstr(0, plutusdata.NewIntegerFromInt64(10)),
			),
			errorMsg: "GovernanceAction.HardForkInitiation[1]: ProtocolVersion: expected 2 fields for Constr 0, found 1",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := v3.GovernanceActionFromData(testDef.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, plutusdata.ErrDecode)
			assert.Contains(t, err.Error(), testDef.errorMsg)
		})
	}
}

func TestProposalProcedureRoundTrip(t *testing.T) {
	g := fakeledger.New(14)
	for range 30 {
		proposal := g.V3ProposalProcedure()
		cborData, err := v3.ProposalProcedureCodec.EncodeCbor(proposal)
		require.NoError(t, err)
		decoded, err := v3.ProposalProcedureCodec.DecodeCbor(cborData)
		require.NoError(t, err)
		assert.True(t, proposal.Equal(decoded))
		assert.False(t, proposal.NotEqual(decoded))
		jsonData, err := proposal.MarshalJSON()
		require.NoError(t, err)
		var fromJSON v3.ProposalProcedure
		require.NoError(t, fromJSON.UnmarshalJSON(jsonData))
		assert.True(t, proposal.Equal(fromJSON))
	}
}

func TestProposalProcedureJSONKeys(t *testing.T) {
	g := fakeledger.New(15)
	obj, ok := g.V3ProposalProcedure().ToJSON().(map[string]any)
	require.True(t, ok)
	assert.Len(t, obj, 3)
	for _, key := range []string{"deposit", "return_addr", "governance_action"} {
		assert.Contains(t, obj, key)
	}
}
