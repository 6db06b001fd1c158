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

package v2

import (
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/assocmap"
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v1 "github.com/blinklabs-io/plutus-ledger-api/ledger/v1"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

type (
	Withdrawals = assocmap.Map[common.StakingCredential, *big.Int]
	Redeemers   = assocmap.Map[v1.ScriptPurpose, common.Redeemer]
	Datums      = assocmap.Map[common.DatumHash, common.Datum]
)

var (
	WithdrawalsCodec = assocmap.NewCodec(common.StakingCredentialCodec, codec.Integer)
	RedeemersCodec   = assocmap.NewCodec(v1.ScriptPurposeCodec, common.RedeemerCodec)
	DatumsCodec      = assocmap.NewCodec(common.DatumHashCodec, common.DatumCodec)
)

var (
	txInInfoListCodec  = codec.ListOf(TxInInfoCodec)
	txOutListCodec     = codec.ListOf(TxOutCodec)
	dCertListCodec     = codec.ListOf(v1.DCertCodec)
	signatoryListCodec = codec.ListOf(common.PubKeyHashCodec)
)

// TxInfo is the view of a pending transaction given to a script
type TxInfo struct {
	Inputs          []TxInInfo
	ReferenceInputs []TxInInfo
	Outputs         []TxOut
	Fee             common.Value
	Mint            common.Value
	DCert           []v1.DCert
	Wdrl            Withdrawals
	ValidRange      common.POSIXTimeRange
	Signatories     []common.PubKeyHash
	Redeemers       Redeemers
	Data            Datums
	Id              v1.TxId
}

func (t TxInfo) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		txInInfoListCodec.ToData(t.Inputs),
		txInInfoListCodec.ToData(t.ReferenceInputs),
		txOutListCodec.ToData(t.Outputs),
		common.ValueCodec.ToData(t.Fee),
		common.ValueCodec.ToData(t.Mint),
		dCertListCodec.ToData(t.DCert),
		WithdrawalsCodec.ToData(t.Wdrl),
		common.POSIXTimeRangeCodec.ToData(t.ValidRange),
		signatoryListCodec.ToData(t.Signatories),
		RedeemersCodec.ToData(t.Redeemers),
		DatumsCodec.ToData(t.Data),
		v1.TxIdCodec.ToData(t.Id),
	)
}

func (t *TxInfo) FromPlutusData(d plutusdata.Data) error {
	const name = "TxInfo"
	fields, err := codec.ConstrFields(name, d, 0, 12)
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
	if tmp.Fee, err = codec.DecodeField(name, "fee", fields[3], common.ValueCodec); err != nil {
		return err
	}
	if tmp.Mint, err = codec.DecodeField(name, "mint", fields[4], common.ValueCodec); err != nil {
		return err
	}
	if tmp.DCert, err = codec.DecodeField(name, "d_cert", fields[5], dCertListCodec); err != nil {
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
	if tmp.Id, err = codec.DecodeField(name, "id", fields[11], v1.TxIdCodec); err != nil {
		return err
	}
	*t = tmp
	return nil
}

func (t TxInfo) ToJSON() any {
	return map[string]any{
		"inputs":           txInInfoListCodec.ToJSON(t.Inputs),
		"reference_inputs": txInInfoListCodec.ToJSON(t.ReferenceInputs),
		"outputs":          txOutListCodec.ToJSON(t.Outputs),
		"fee":              common.ValueCodec.ToJSON(t.Fee),
		"mint":             common.ValueCodec.ToJSON(t.Mint),
		"d_cert":           dCertListCodec.ToJSON(t.DCert),
		"wdrl":             WithdrawalsCodec.ToJSON(t.Wdrl),
		"valid_range":      common.POSIXTimeRangeCodec.ToJSON(t.ValidRange),
		"signatories":      signatoryListCodec.ToJSON(t.Signatories),
		"redeemers":        RedeemersCodec.ToJSON(t.Redeemers),
		"datums":           DatumsCodec.ToJSON(t.Data),
		"id":               v1.TxIdCodec.ToJSON(t.Id),
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
	if tmp.Fee, err = codec.DecodeJSONField(name, obj, "fee", common.ValueCodec); err != nil {
		return err
	}
	if tmp.Mint, err = codec.DecodeJSONField(name, obj, "mint", common.ValueCodec); err != nil {
		return err
	}
	if tmp.DCert, err = codec.DecodeJSONField(name, obj, "d_cert", dCertListCodec); err != nil {
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
	if tmp.Id, err = codec.DecodeJSONField(name, obj, "id", v1.TxIdCodec); err != nil {
		return err
	}
	*t = tmp
	return nil
}

func (t TxInfo) Equal(o TxInfo) bool {
	return txInInfoListCodec.Equal(t.Inputs, o.Inputs) &&
		txInInfoListCodec.Equal(t.ReferenceInputs, o.ReferenceInputs) &&
		txOutListCodec.Equal(t.Outputs, o.Outputs) &&
		common.ValueCodec.Equal(t.Fee, o.Fee) &&
		common.ValueCodec.Equal(t.Mint, o.Mint) &&
		dCertListCodec.Equal(t.DCert, o.DCert) &&
		WithdrawalsCodec.Equal(t.Wdrl, o.Wdrl) &&
		common.POSIXTimeRangeCodec.Equal(t.ValidRange, o.ValidRange) &&
		signatoryListCodec.Equal(t.Signatories, o.Signatories) &&
		RedeemersCodec.Equal(t.Redeemers, o.Redeemers) &&
		DatumsCodec.Equal(t.Data, o.Data) &&
		v1.TxIdCodec.Equal(t.Id, o.Id)
}

func (t TxInfo) NotEqual(o TxInfo) bool {
	return txInInfoListCodec.NotEqual(t.Inputs, o.Inputs) ||
		txInInfoListCodec.NotEqual(t.ReferenceInputs, o.ReferenceInputs) ||
		txOutListCodec.NotEqual(t.Outputs, o.Outputs) ||
		common.ValueCodec.NotEqual(t.Fee, o.Fee) ||
		common.ValueCodec.NotEqual(t.Mint, o.Mint) ||
		dCertListCodec.NotEqual(t.DCert, o.DCert) ||
		WithdrawalsCodec.NotEqual(t.Wdrl, o.Wdrl) ||
		common.POSIXTimeRangeCodec.NotEqual(t.ValidRange, o.ValidRange) ||
		signatoryListCodec.NotEqual(t.Signatories, o.Signatories) ||
		RedeemersCodec.NotEqual(t.Redeemers, o.Redeemers) ||
		DatumsCodec.NotEqual(t.Data, o.Data) ||
		v1.TxIdCodec.NotEqual(t.Id, o.Id)
}

func (t TxInfo) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(t.ToJSON())
}

func (t *TxInfo) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, t.FromJSON)
}

var TxInfoCodec = codec.Record[TxInfo]("TxInfo")

// FindOwnInput returns the input spent by the script being run, if the purpose is
// Spending
func (t TxInfo) FindOwnInput(purpose v1.ScriptPurpose) (TxInInfo, bool) {
	spending, ok := purpose.(v1.Spending)
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

// ResolveDatum returns the datum of an output, either inline or from the witnesses of
// the transaction
func (t TxInfo) ResolveDatum(out TxOut) (common.Datum, bool) {
	switch datum := out.Datum.(type) {
	case OutputDatumInline:
		return datum.Datum, true
	case OutputDatumHash:
		return t.FindDatum(datum.Hash)
	}
	return nil, false
}

// FindRedeemer returns the redeemer supplied for the script run with the given purpose
func (t TxInfo) FindRedeemer(purpose v1.ScriptPurpose) (common.Redeemer, bool) {
	return t.Redeemers.Lookup(v1.ScriptPurposeEqual, purpose)
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

// ScriptContext is the argument passed to a script alongside its datum and redeemer
type ScriptContext struct {
	TxInfo  TxInfo
	Purpose v1.ScriptPurpose
}

func (s ScriptContext) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(0, s.TxInfo.ToPlutusData(), s.Purpose.ToPlutusData())
}

func (s *ScriptContext) FromPlutusData(d plutusdata.Data) error {
	const name = "ScriptContext"
	fields, err := codec.ConstrFields(name, d, 0, 2)
	if err != nil {
		return err
	}
	txInfo, err := codec.DecodeField(name, "tx_info", fields[0], TxInfoCodec)
	if err != nil {
		return err
	}
	purpose, err := codec.DecodeField(name, "purpose", fields[1], v1.ScriptPurposeCodec)
	if err != nil {
		return err
	}
	s.TxInfo = txInfo
	s.Purpose = purpose
	return nil
}

func (s ScriptContext) ToJSON() any {
	return map[string]any{
		"tx_info": s.TxInfo.ToJSON(),
		"purpose": s.Purpose.ToJSON(),
	}
}

func (s *ScriptContext) FromJSON(v any) error {
	const name = "ScriptContext"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	txInfo, err := codec.DecodeJSONField(name, obj, "tx_info", TxInfoCodec)
	if err != nil {
		return err
	}
	purpose, err := codec.DecodeJSONField(name, obj, "purpose", v1.ScriptPurposeCodec)
	if err != nil {
		return err
	}
	s.TxInfo = txInfo
	s.Purpose = purpose
	return nil
}

// Equal requires both the transaction and the purpose to match
func (s ScriptContext) Equal(o ScriptContext) bool {
	return s.TxInfo.Equal(o.TxInfo) && v1.ScriptPurposeEqual(s.Purpose, o.Purpose)
}

func (s ScriptContext) NotEqual(o ScriptContext) bool {
	return s.TxInfo.NotEqual(o.TxInfo) || v1.ScriptPurposeNotEqual(s.Purpose, o.Purpose)
}

func (s ScriptContext) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(s.ToJSON())
}

func (s *ScriptContext) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, s.FromJSON)
}

var ScriptContextCodec = codec.Record[ScriptContext]("ScriptContext")
