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

package fakeledger

import (
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v1 "github.com/blinklabs-io/plutus-ledger-api/ledger/v1"
	v2 "github.com/blinklabs-io/plutus-ledger-api/ledger/v2"
)

func (g *Generator) V2OutputDatum() v2.OutputDatum {
	switch g.f.IntRange(0, 2) {
	case 0:
		return v2.NoOutputDatum{}
	case 1:
		return v2.OutputDatumHash{Hash: g.DatumHash()}
	default:
		return v2.OutputDatumInline{Datum: g.Data()}
	}
}

func (g *Generator) V2TxOut() v2.TxOut {
	ret := v2.TxOut{
		Address: g.Address(),
		Value:   g.Value(),
		Datum:   g.V2OutputDatum(),
	}
	if g.Bool() {
		ret.ReferenceScript = codec.Just(g.ScriptHash())
	}
	return ret
}

func (g *Generator) V2TxInInfo() v2.TxInInfo {
	return v2.TxInInfo{
		OutRef:   g.V1TxOutRef(),
		Resolved: g.V2TxOut(),
	}
}

func (g *Generator) V2TxInfo() v2.TxInfo {
	return v2.TxInfo{
		Inputs:          listOf(g, g.V2TxInInfo),
		ReferenceInputs: listOf(g, g.V2TxInInfo),
		Outputs:         listOf(g, g.V2TxOut),
		Fee:             g.Value(),
		Mint:            g.Value(),
		DCert:           listOf(g, g.V1DCert),
		Wdrl:            mapOf(g, g.StakingCredential, g.Natural),
		ValidRange:      g.POSIXTimeRange(),
		Signatories:     listOf(g, g.PubKeyHash),
		Redeemers:       mapOf[v1.ScriptPurpose, common.Redeemer](g, g.V1ScriptPurpose, g.Data),
		Data:            mapOf[common.DatumHash, common.Datum](g, g.DatumHash, g.Data),
		Id:              g.TxId(),
	}
}

func (g *Generator) V2ScriptContext() v2.ScriptContext {
	return v2.ScriptContext{
		TxInfo:  g.V2TxInfo(),
		Purpose: g.V1ScriptPurpose(),
	}
}
