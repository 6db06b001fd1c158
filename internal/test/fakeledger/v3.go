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
	"github.com/blinklabs-io/plutus-ledger-api/assocmap"
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v3 "github.com/blinklabs-io/plutus-ledger-api/ledger/v3"
)

func (g *Generator) V3TxOutRef() v3.TxOutRef {
	return v3.TxOutRef{
		Id:    g.TxId(),
		Index: g.Natural(),
	}
}

func (g *Generator) V3TxInInfo() v3.TxInInfo {
	return v3.TxInInfo{
		OutRef:   g.V3TxOutRef(),
		Resolved: g.V2TxOut(),
	}
}

func (g *Generator) V3DRep() v3.DRep {
	switch g.f.IntRange(0, 2) {
	case 0:
		return v3.DRepCredential{Credential: g.Credential()}
	case 1:
		return v3.DRepAlwaysAbstain{}
	default:
		return v3.DRepAlwaysNoConfidence{}
	}
}

func (g *Generator) V3Delegatee() v3.Delegatee {
	switch g.f.IntRange(0, 2) {
	case 0:
		return v3.DelegStake{PoolId: g.PubKeyHash()}
	case 1:
		return v3.DelegVote{DRep: g.V3DRep()}
	default:
		return v3.DelegStakeVote{PoolId: g.PubKeyHash(), DRep: g.V3DRep()}
	}
}

func (g *Generator) V3TxCert() v3.TxCert {
	switch g.f.IntRange(0, 10) {
	case v3.TxCertTypeRegStaking:
		return v3.TxCertRegStaking{Credential: g.Credential(), Deposit: g.MaybeInteger()}
	case v3.TxCertTypeUnRegStaking:
		return v3.TxCertUnRegStaking{Credential: g.Credential(), Refund: g.MaybeInteger()}
	case v3.TxCertTypeDelegStaking:
		return v3.TxCertDelegStaking{Credential: g.Credential(), Delegatee: g.V3Delegatee()}
	case v3.TxCertTypeRegDeleg:
		return v3.TxCertRegDeleg{
			Credential: g.Credential(),
			Delegatee:  g.V3Delegatee(),
			Deposit:    g.Natural(),
		}
	case v3.TxCertTypeRegDRep:
		return v3.TxCertRegDRep{Credential: g.Credential(), Deposit: g.Natural()}
	case v3.TxCertTypeUpdateDRep:
		return v3.TxCertUpdateDRep{Credential: g.Credential()}
	case v3.TxCertTypeUnRegDRep:
		return v3.TxCertUnRegDRep{Credential: g.Credential(), Refund: g.Natural()}
	case v3.TxCertTypePoolRegister:
		return v3.TxCertPoolRegister{PoolId: g.PubKeyHash(), PoolVrf: g.PubKeyHash()}
	case v3.TxCertTypePoolRetire:
		return v3.TxCertPoolRetire{PoolId: g.PubKeyHash(), Epoch: g.Natural()}
	case v3.TxCertTypeAuthHotCommittee:
		return v3.TxCertAuthHotCommittee{Cold: g.Credential(), Hot: g.Credential()}
	default:
		return v3.TxCertResignColdCommittee{Cold: g.Credential()}
	}
}

func (g *Generator) V3Voter() v3.Voter {
	switch g.f.IntRange(0, 2) {
	case 0:
		return v3.CommitteeVoter{Credential: g.Credential()}
	case 1:
		return v3.DRepVoter{Credential: g.Credential()}
	default:
		return v3.StakePoolVoter{PoolId: g.PubKeyHash()}
	}
}

func (g *Generator) V3Vote() v3.Vote {
	return v3.Vote(g.f.IntRange(0, 2))
}

func (g *Generator) V3GovernanceActionId() v3.GovernanceActionId {
	return v3.GovernanceActionId{
		TxId:        g.TxId(),
		GovActionIx: g.Natural(),
	}
}

func (g *Generator) V3Committee() v3.Committee {
	return v3.Committee{
		Members: mapOf(g, g.Credential, g.Natural),
		Quorum:  g.Natural(),
	}
}

func (g *Generator) V3Constitution() v3.Constitution {
	return v3.Constitution{Script: g.maybeScriptHash()}
}

func (g *Generator) V3ProtocolVersion() v3.ProtocolVersion {
	return v3.ProtocolVersion{
		Major: g.Natural(),
		Minor: g.Natural(),
	}
}

func (g *Generator) V3GovernanceAction() v3.GovernanceAction {
	switch g.f.IntRange(0, 6) {
	case v3.GovActionTypeParameterChange:
		return v3.ParameterChange{
			PrevActionId:    g.maybeGovActionId(),
			Parameters:      g.Data(),
			GuardrailScript: g.maybeScriptHash(),
		}
	case v3.GovActionTypeHardForkInitiation:
		return v3.HardForkInitiation{
			PrevActionId:    g.maybeGovActionId(),
			ProtocolVersion: g.V3ProtocolVersion(),
		}
	case v3.GovActionTypeTreasuryWithdrawal:
		return v3.TreasuryWithdrawal{
			Withdrawals:     mapOf(g, g.Credential, g.Natural),
			GuardrailScript: g.maybeScriptHash(),
		}
	case v3.GovActionTypeNoConfidence:
		return v3.NoConfidence{PrevActionId: g.maybeGovActionId()}
	case v3.GovActionTypeUpdateCommittee:
		return v3.UpdateCommittee{
			PrevActionId: g.maybeGovActionId(),
			Removed:      listOf(g, g.Credential),
			Added:        mapOf(g, g.Credential, g.Natural),
			Quorum:       g.Rational(),
		}
	case v3.GovActionTypeNewConstitution:
		return v3.NewConstitution{
			PrevActionId: g.maybeGovActionId(),
			Constitution: g.V3Constitution(),
		}
	default:
		return v3.InfoAction{}
	}
}

func (g *Generator) V3ProposalProcedure() v3.ProposalProcedure {
	return v3.ProposalProcedure{
		Deposit:          g.Natural(),
		ReturnAddr:       g.Credential(),
		GovernanceAction: g.V3GovernanceAction(),
	}
}

func (g *Generator) V3ScriptPurpose() v3.ScriptPurpose {
	switch g.f.IntRange(0, 5) {
	case v3.ScriptPurposeTypeMinting:
		return v3.Minting{CurrencySymbol: g.CurrencySymbol()}
	case v3.ScriptPurposeTypeSpending:
		return v3.Spending{OutRef: g.V3TxOutRef()}
	case v3.ScriptPurposeTypeRewarding:
		return v3.Rewarding{Credential: g.Credential()}
	case v3.ScriptPurposeTypeCertifying:
		return v3.Certifying{Index: g.Natural(), Cert: g.V3TxCert()}
	case v3.ScriptPurposeTypeVoting:
		return v3.Voting{Voter: g.V3Voter()}
	default:
		return v3.Proposing{Index: g.Natural(), Proposal: g.V3ProposalProcedure()}
	}
}

func (g *Generator) V3ScriptInfo() v3.ScriptInfo {
	switch p := g.V3ScriptPurpose().(type) {
	case v3.Minting:
		return v3.MintingScript(p)
	case v3.Spending:
		ret := v3.SpendingScript{OutRef: p.OutRef}
		if g.Bool() {
			ret.Datum = codec.Just(g.Data())
		}
		return ret
	case v3.Rewarding:
		return v3.RewardingScript(p)
	case v3.Certifying:
		return v3.CertifyingScript(p)
	case v3.Voting:
		return v3.VotingScript(p)
	default:
		return v3.ProposingScript(p.(v3.Proposing))
	}
}

func (g *Generator) V3TxInfo() v3.TxInfo {
	return v3.TxInfo{
		Inputs:          listOf(g, g.V3TxInInfo),
		ReferenceInputs: listOf(g, g.V3TxInInfo),
		Outputs:         listOf(g, g.V2TxOut),
		Fee:             g.Natural(),
		Mint:            g.Value(),
		TxCerts:         listOf(g, g.V3TxCert),
		Wdrl:            mapOf(g, g.Credential, g.Natural),
		ValidRange:      g.POSIXTimeRange(),
		Signatories:     listOf(g, g.PubKeyHash),
		Redeemers:       mapOf[v3.ScriptPurpose, common.Redeemer](g, g.V3ScriptPurpose, g.Data),
		Data:            mapOf[common.DatumHash, common.Datum](g, g.DatumHash, g.Data),
		Id:              g.TxId(),
		Votes: mapOf(g, g.V3Voter, func() assocmap.Map[v3.GovernanceActionId, v3.Vote] {
			return mapOf(g, g.V3GovernanceActionId, g.V3Vote)
		}),
		ProposalProcedures:    listOf(g, g.V3ProposalProcedure),
		CurrentTreasuryAmount: g.MaybeInteger(),
		TreasuryDonation:      g.MaybeInteger(),
	}
}

func (g *Generator) V3ScriptContext() v3.ScriptContext {
	return v3.ScriptContext{
		TxInfo:     g.V3TxInfo(),
		Redeemer:   g.Data(),
		ScriptInfo: g.V3ScriptInfo(),
	}
}

func (g *Generator) maybeScriptHash() codec.Maybe[common.ScriptHash] {
	if g.Bool() {
		return codec.Just(g.ScriptHash())
	}
	return codec.Nothing[common.ScriptHash]()
}

func (g *Generator) maybeGovActionId() codec.Maybe[v3.GovernanceActionId] {
	if g.Bool() {
		return codec.Just(g.V3GovernanceActionId())
	}
	return codec.Nothing[v3.GovernanceActionId]()
}
