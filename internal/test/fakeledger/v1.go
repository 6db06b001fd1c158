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
)

func (g *Generator) V1TxOutRef() v1.TxOutRef {
	return v1.TxOutRef{
		Id:    g.TxId(),
		Index: g.Natural(),
	}
}

func (g *Generator) V1TxOut() v1.TxOut {
	ret := v1.TxOut{
		Address: g.Address(),
		Value:   g.Value(),
	}
	if g.Bool() {
		ret.DatumHash = codec.Just(g.DatumHash())
	}
	return ret
}

func (g *Generator) V1TxInInfo() v1.TxInInfo {
	return v1.TxInInfo{
		OutRef:   g.V1TxOutRef(),
		Resolved: g.V1TxOut(),
	}
}

func (g *Generator) V1DCert() v1.DCert {
	switch g.f.IntRange(0, 6) {
	case 0:
		return v1.DCertDelegRegKey{StakingCredential: g.StakingCredential()}
	case 1:
		return v1.DCertDelegDeRegKey{StakingCredential: g.StakingCredential()}
	case 2:
		return v1.DCertDelegDelegate{
			Delegator: g.StakingCredential(),
			Delegatee: g.PubKeyHash(),
		}
	case 3:
		return v1.DCertPoolRegister{
			PoolId:  g.PubKeyHash(),
			PoolVrf: g.PubKeyHash(),
		}
	case 4:
		return v1.DCertPoolRetire{
			PoolId: g.PubKeyHash(),
			Epoch:  g.Natural(),
		}
	case 5:
		return v1.DCertGenesis{}
	default:
		return v1.DCertMir{}
	}
}

func (g *Generator) V1TxInfo() v1.TxInfo {
	return v1.TxInfo{
		Inputs:  listOf(g, g.V1TxInInfo),
		Outputs: listOf(g, g.V1TxOut),
		Fee:     g.Value(),
		Mint:    g.Value(),
		DCert:   listOf(g, g.V1DCert),
		Wdrl: listOf(g, func() v1.Withdrawal {
			return codec.NewPair(g.StakingCredential(), g.Natural())
		}),
		ValidRange:  g.POSIXTimeRange(),
		Signatories: listOf(g, g.PubKeyHash),
		Data: listOf(g, func() v1.DatumEntry {
			return codec.NewPair[common.DatumHash, common.Datum](g.DatumHash(), g.Data())
		}),
		Id: g.TxId(),
	}
}

func (g *Generator) V1ScriptPurpose() v1.ScriptPurpose {
	switch g.f.IntRange(0, 3) {
	case 0:
		return v1.Minting{CurrencySymbol: g.CurrencySymbol()}
	case 1:
		return v1.Spending{OutRef: g.V1TxOutRef()}
	case 2:
		return v1.Rewarding{StakingCredential: g.StakingCredential()}
	default:
		return v1.Certifying{DCert: g.V1DCert()}
	}
}

func (g *Generator) V1ScriptContext() v1.ScriptContext {
	return v1.ScriptContext{
		TxInfo:  g.V1TxInfo(),
		Purpose: g.V1ScriptPurpose(),
	}
}
