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

package v3

import (
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/assocmap"
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v2 "github.com/blinklabs-io/plutus-ledger-api/ledger/v2"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

type (
	Redeemers = assocmap.Map[ScriptPurpose, common.Redeemer]
	Datums    = v2.Datums
	// Votes maps each voter to the votes it casts, by governance action
	Votes = assocmap.Map[Voter, assocmap.Map[GovernanceActionId, Vote]]
)

var (
	RedeemersCodec = assocmap.NewCodec(ScriptPurposeCodec, common.RedeemerCodec)
	DatumsCodec    = v2.DatumsCodec
	VotesCodec     = assocmap.NewCodec(
		VoterCodec,
		assocmap.NewCodec(GovernanceActionIdCodec, VoteCodec),
	)
)

var (
	txInInfoListCodec  = codec.ListOf(TxInInfoCodec)
	txOutListCodec     = codec.ListOf(v2.TxOutCodec)
	txCertListCodec    = codec.ListOf(TxCertCodec)
	signatoryListCodec = codec.ListOf(common.PubKeyHashCodec)
	proposalListCodec  = codec.ListOf(ProposalProcedureCodec)
)

// TxInfo is the view of a pending transaction given to a script
type TxInfo struct {
	Inputs                []TxInInfo
	ReferenceInputs       []TxInInfo
	Outputs               []v2.TxOut
	Fee                   *big.Int
	Mint                  common.Value
	TxCerts               []TxCert
	Wdrl                  Withdrawals
	ValidRange            common.POSIXTimeRange
	Signatories           []common.PubKeyHash
	Redeemers             Redeemers
	Data                  Datums
	Id                    TxId
	Votes                 Votes
	ProposalProcedures    []ProposalProcedure
	CurrentTreasuryAmount codec.Maybe[*big.Int]
	TreasuryDonation      codec.Maybe[*big.Int]
}

func (t TxInfo) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		txInInfoListCodec.ToData(t.Inputs),
		txInInfoListCodec.ToData(t.ReferenceInputs),
		txOutListCodec.ToData(t.Outputs),
		codec.Integer.ToData(t.Fee),
		common.ValueCodec.ToData(t.Mint),
		txCertListCodec.ToData(t.TxCerts),
		WithdrawalsCodec.ToData(t.Wdrl),
		common.POSIXTimeRangeCodec.ToData(t.ValidRange),
		signatoryListCodec.ToData(t.Signatories),
		RedeemersCodec.ToData(t.Redeemers),
		DatumsCodec.ToData(t.Data),
		TxIdCodec.ToData(t.Id),
		VotesCodec.ToData(t.Votes),
		proposalListCodec.ToData(t.ProposalProcedures),
		maybeIntegerCodec.ToData(t.CurrentTreasuryAmount),
		maybeIntegerCodec.ToData(t.TreasuryDonation),
	)
}

func (t *TxInfo) FromPlutusData(d plutusdata.Data) error {
	const name = "TxInfo"
	fields, err := codec.ConstrFields(name, d, 0, 16)
	if err != nil {
		return err
	}
	var tmp TxInfo
	if tmp.Inputs, err = codec.DecodeField(name, "inputs", fields[0], txInInfoListCodec); err != nil {
		return err
	}
	if tmp.ReferenceInputs, err = codec.DecodeField(name, "reference_inputs", fields[1], txInInfoListCodec); err != nil {
		return err
	}
	if tmp.Outputs, err = codec.DecodeField(name, "outputs", fields[2], txOutListCodec); err != nil {
		return err
	}
	if tmp.Fee, err = codec.DecodeField(name, "fee", fields[3], codec.Integer); err != nil {
		return err
	}
	if tmp.Mint, err = codec.DecodeField(name, "mint", fields[4], common.ValueCodec); err != nil {
		return err
	}
	if tmp.TxCerts, err = codec.DecodeField(name, "tx_certs", fields[5], txCertListCodec); err != nil {
		return err
	}
	if tmp.Wdrl, err = codec.DecodeField(name, "wdrl", fields[6], WithdrawalsCodec); err != nil {
		return err
	}
	if tmp.ValidRange, err = codec.DecodeField(name, "valid_range", fields[7], common.POSIXTimeRangeCodec); err != nil {
		return err
	}
	if tmp.Signatories, err = codec.DecodeField(name, "signatories", fields[8], signatoryListCodec); err != nil {
		return err
	}
	if tmp.Redeemers, err = codec.DecodeField(name, "redeemers", fields[9], RedeemersCodec); err != nil {
		return err
	}
	if tmp.Data, err = codec.DecodeField(name, "datums", fields[10], DatumsCodec); err != nil {
		return err
	}
	if tmp.Id, err = codec.DecodeField(name, "id", fields[11], TxIdCodec); err != nil {
		return err
	}
	if tmp.Votes, err = codec.DecodeField(name, "votes", fields[12], VotesCodec); err != nil {
		return err
	}
	if tmp.ProposalProcedures, err = codec.DecodeField(name, "proposal_procedures", fields[13], proposalListCodec); err != nil {
		return err
	}
	if tmp.CurrentTreasuryAmount, err = codec.DecodeField(name, "current_treasury_amount", fields[14], maybeIntegerCodec); err != nil {
		return err
	}
	if tmp.TreasuryDonation, err = codec.DecodeField(name, "treasury_donation", fields[15], maybeIntegerCodec); err != nil {
		return err
	}
	*t = tmp
	return nil
}

func (t TxInfo) ToJSON() any {
	return map[string]any{
		"inputs":                  txInInfoListCodec.ToJSON(t.Inputs),
		"reference_inputs":        txInInfoListCodec.ToJSON(t.ReferenceInputs),
		"outputs":                 txOutListCodec.ToJSON(t.Outputs),
		"fee":                     codec.Integer.ToJSON(t.Fee),
		"mint":                    common.ValueCodec.ToJSON(t.Mint),
		"tx_certs":                txCertListCodec.ToJSON(t.TxCerts),
		"wdrl":                    WithdrawalsCodec.ToJSON(t.Wdrl),
		"valid_range":             common.POSIXTimeRangeCodec.ToJSON(t.ValidRange),
		"signatories":             signatoryListCodec.ToJSON(t.Signatories),
		"redeemers":               RedeemersCodec.ToJSON(t.Redeemers),
		"datums":                  DatumsCodec.ToJSON(t.Data),
		"id":                      TxIdCodec.ToJSON(t.Id),
		"votes":                   VotesCodec.ToJSON(t.Votes),
		"proposal_procedures":     proposalListCodec.ToJSON(t.ProposalProcedures),
		"current_treasury_amount": maybeIntegerCodec.ToJSON(t.CurrentTreasuryAmount),
		"treasury_donation":       maybeIntegerCodec.ToJSON(t.TreasuryDonation),
	}
}

func (t *TxInfo) FromJSON(v any) error {
	const name = "TxInfo"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	var tmp TxInfo
	if tmp.Inputs, err = codec.DecodeJSONField(name, obj, "inputs", txInInfoListCodec); err != nil {
		return err
	}
	if tmp.ReferenceInputs, err = codec.DecodeJSONField(name, obj, "reference_inputs", txInInfoListCodec); err != nil {
		return err
	}
	if tmp.Outputs, err = codec.DecodeJSONField(name, obj, "outputs", txOutListCodec); err != nil {
		return err
	}
	if tmp.Fee, err = codec.DecodeJSONField(name, obj, "fee", codec.Integer); err != nil {
		return err
	}
	if tmp.Mint, err = codec.DecodeJSONField(name, obj, "mint", common.ValueCodec); err != nil {
		return err
	}
	if tmp.TxCerts, err = codec.DecodeJSONField(name, obj, "tx_certs", txCertListCodec); err != nil {
		return err
	}
	if tmp.Wdrl, err = codec.DecodeJSONField(name, obj, "wdrl", WithdrawalsCodec); err != nil {
		return err
	}
	if tmp.ValidRange, err = codec.DecodeJSONField(name, obj, "valid_range", common.POSIXTimeRangeCodec); err != nil {
		return err
	}
	if tmp.Signatories, err = codec.DecodeJSONField(name, obj, "signatories", signatoryListCodec); err != nil {
		return err
	}
	if tmp.Redeemers, err = codec.DecodeJSONField(name, obj, "redeemers", RedeemersCodec); err != nil {
		return err
	}
	if tmp.Data, err = codec.DecodeJSONField(name, obj, "datums", DatumsCodec); err != nil {
		return err
	}
	if tmp.Id, err = codec.DecodeJSONField(name, obj, "id", TxIdCodec); err != nil {
		return err
	}
	if tmp.Votes, err = codec.DecodeJSONField(name, obj, "votes", VotesCodec); err != nil {
		return err
	}
	if tmp.ProposalProcedures, err = codec.DecodeJSONField(name, obj, "proposal_procedures", proposalListCodec); err != nil {
		return err
	}
	if tmp.CurrentTreasuryAmount, err = codec.DecodeJSONField(name, obj, "current_treasury_amount", maybeIntegerCodec); err != nil {
		return err
	}
	if tmp.TreasuryDonation, err = codec.DecodeJSONField(name, obj, "treasury_donation", maybeIntegerCodec); err != nil {
		return err
	}
	*t = tmp
	return nil
}

func (t TxInfo) Equal(o TxInfo) bool {
	return txInInfoListCodec.Equal(t.Inputs, o.Inputs) &&
		txInInfoListCodec.Equal(t.ReferenceInputs, o.ReferenceInputs) &&
		txOutListCodec.Equal(t.Outputs, o.Outputs) &&
		codec.Integer.Equal(t.Fee, o.Fee) &&
		common.ValueCodec.Equal(t.Mint, o.Mint) &&
		txCertListCodec.Equal(t.TxCerts, o.TxCerts) &&
		WithdrawalsCodec.Equal(t.Wdrl, o.Wdrl) &&
		common.POSIXTimeRangeCodec.Equal(t.ValidRange, o.ValidRange) &&
		signatoryListCodec.Equal(t.Signatories, o.Signatories) &&
		RedeemersCodec.Equal(t.Redeemers, o.Redeemers) &&
		DatumsCodec.Equal(t.Data, o.Data) &&
		TxIdCodec.Equal(t.Id, o.Id) &&
		VotesCodec.Equal(t.Votes, o.Votes) &&
		proposalListCodec.Equal(t.ProposalProcedures, o.ProposalProcedures) &&
		maybeIntegerCodec.Equal(t.CurrentTreasuryAmount, o.CurrentTreasuryAmount) &&
		maybeIntegerCodec.Equal(t.TreasuryDonation, o.TreasuryDonation)
}

func (t TxInfo) NotEqual(o TxInfo) bool {
	return txInInfoListCodec.NotEqual(t.Inputs, o.Inputs) ||
		txInInfoListCodec.NotEqual(t.ReferenceInputs, o.ReferenceInputs) ||
		txOutListCodec.NotEqual(t.Outputs, o.Outputs) ||
		codec.Integer.NotEqual(t.Fee, o.Fee) ||
		common.ValueCodec.NotEqual(t.Mint, o.Mint) ||
		txCertListCodec.NotEqual(t.TxCerts, o.TxCerts) ||
		WithdrawalsCodec.NotEqual(t.Wdrl, o.Wdrl) ||
		common.POSIXTimeRangeCodec.NotEqual(t.ValidRange, o.ValidRange) ||
		signatoryListCodec.NotEqual(t.Signatories, o.Signatories) ||
		RedeemersCodec.NotEqual(t.Redeemers, o.Redeemers) ||
		DatumsCodec.NotEqual(t.Data, o.Data) ||
		TxIdCodec.NotEqual(t.Id, o.Id) ||
		VotesCodec.NotEqual(t.Votes, o.Votes) ||
		proposalListCodec.NotEqual(t.ProposalProcedures, o.ProposalProcedures) ||
		maybeIntegerCodec.NotEqual(t.CurrentTreasuryAmount, o.CurrentTreasuryAmount) ||
		maybeIntegerCodec.NotEqual(t.TreasuryDonation, o.TreasuryDonation)
}

func (t TxInfo) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(t.ToJSON())
}

func (t *TxInfo) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, t.FromJSON)
}

var TxInfoCodec = codec.Record[TxInfo]("TxInfo")

// FindOwnInput returns the input spent by the script being run, if it is a spending
// script
func (t TxInfo) FindOwnInput(info ScriptInfo) (TxInInfo, bool) {
	spending, ok := info.(SpendingScript)
	if !ok {
		return TxInInfo{}, false
	}
	for _, input := range t.Inputs {
		if input.OutRef.Equal(spending.OutRef) {
			return input, true
		}
	}
	return TxInInfo{}, false
}

// FindDatum looks up a datum witness by hash
func (t TxInfo) FindDatum(hash common.DatumHash) (common.Datum, bool) {
	return t.Data.Lookup(common.DatumHashCodec.Equal, hash)
}

// FindRedeemer returns the redeemer supplied for the script run with the given purpose
func (t TxInfo) FindRedeemer(purpose ScriptPurpose) (common.Redeemer, bool) {
	return t.Redeemers.Lookup(ScriptPurposeEqual, purpose)
}

// VotesOf returns the votes cast by a voter
func (t TxInfo) VotesOf(voter Voter) (assocmap.Map[GovernanceActionId, Vote], bool) {
	return t.Votes.Lookup(VoterEqual, voter)
}

// SignedBy reports whether the transaction carries a signature for the key hash
func (t TxInfo) SignedBy(pkh common.PubKeyHash) bool {
	for _, sig := range t.Signatories {
		if common.PubKeyHashCodec.Equal(sig, pkh) {
			return true
		}
	}
	return false
}

// ScriptContext is the single argument passed to a script. The redeemer and, for
// spending scripts, the datum are part of it
type ScriptContext struct {
	TxInfo     TxInfo
	Redeemer   common.Redeemer
	ScriptInfo ScriptInfo
}

func (s ScriptContext) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		s.TxInfo.ToPlutusData(),
		common.RedeemerCodec.ToData(s.Redeemer),
		s.ScriptInfo.ToPlutusData(),
	)
}

func (s *ScriptContext) FromPlutusData(d plutusdata.Data) error {
	const name = "ScriptContext"
	fields, err := codec.ConstrFields(name, d, 0, 3)
	if err != nil {
		return err
	}
	var tmp ScriptContext
	if tmp.TxInfo, err = codec.DecodeField(name, "tx_info", fields[0], TxInfoCodec); err != nil {
		return err
	}
	if tmp.Redeemer, err = codec.DecodeField(name, "redeemer", fields[1], common.RedeemerCodec); err != nil {
		return err
	}
	if tmp.ScriptInfo, err = codec.DecodeField(name, "script_info", fields[2], ScriptInfoCodec); err != nil {
		return err
	}
	*s = tmp
	return nil
}

func (s ScriptContext) ToJSON() any {
	return map[string]any{
		"tx_info":     s.TxInfo.ToJSON(),
		"redeemer":    common.RedeemerCodec.ToJSON(s.Redeemer),
		"script_info": s.ScriptInfo.ToJSON(),
	}
}

func (s *ScriptContext) FromJSON(v any) error {
	const name = "ScriptContext"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	var tmp ScriptContext
	if tmp.TxInfo, err = codec.DecodeJSONField(name, obj, "tx_info", TxInfoCodec); err != nil {
		return err
	}
	if tmp.Redeemer, err = codec.DecodeJSONField(name, obj, "redeemer", common.RedeemerCodec); err != nil {
		return err
	}
	if tmp.ScriptInfo, err = codec.DecodeJSONField(name, obj, "script_info", ScriptInfoCodec); err != nil {
		return err
	}
	*s = tmp
	return nil
}

func (s ScriptContext) Equal(o ScriptContext) bool {
	return s.TxInfo.Equal(o.TxInfo) &&
		common.RedeemerCodec.Equal(s.Redeemer, o.Redeemer) &&
		ScriptInfoEqual(s.ScriptInfo, o.ScriptInfo)
}

func (s ScriptContext) NotEqual(o ScriptContext) bool {
	return s.TxInfo.NotEqual(o.TxInfo) ||
		common.RedeemerCodec.NotEqual(s.Redeemer, o.Redeemer) ||
		ScriptInfoNotEqual(s.ScriptInfo, o.ScriptInfo)
}

func (s ScriptContext) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(s.ToJSON())
}

func (s *ScriptContext) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, s.FromJSON)
}

var ScriptContextCodec = codec.Record[ScriptContext]("ScriptContext")
