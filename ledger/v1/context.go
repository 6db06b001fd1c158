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

package v1

import (
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// TxInInfo is a transaction input together with the output it spends
type TxInInfo struct {
	OutRef   TxOutRef
	Resolved TxOut
}

func (i TxInInfo) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(0, i.OutRef.ToPlutusData(), i.Resolved.ToPlutusData())
}

func (i *TxInInfo) FromPlutusData(d plutusdata.Data) error {
	const name = "TxInInfo"
	fields, err := codec.ConstrFields(name, d, 0, 2)
	if err != nil {
		return err
	}
	ref, err := codec.DecodeField(name, "reference", fields[0], TxOutRefCodec)
	if err != nil {
		return err
	}
	out, err := codec.DecodeField(name, "output", fields[1], TxOutCodec)
	if err != nil {
		return err
	}
	i.OutRef = ref
	i.Resolved = out
	return nil
}

func (i TxInInfo) ToJSON() any {
	return map[string]any{
		"reference": i.OutRef.ToJSON(),
		"output":    i.Resolved.ToJSON(),
	}
}

func (i *TxInInfo) FromJSON(v any) error {
	const name = "TxInInfo"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	ref, err := codec.DecodeJSONField(name, obj, "reference", TxOutRefCodec)
	if err != nil {
		return err
	}
	out, err := codec.DecodeJSONField(name, obj, "output", TxOutCodec)
	if err != nil {
		return err
	}
	i.OutRef = ref
	i.Resolved = out
	return nil
}

func (i TxInInfo) Equal(o TxInInfo) bool {
	return i.OutRef.Equal(o.OutRef) && i.Resolved.Equal(o.Resolved)
}

func (i TxInInfo) NotEqual(o TxInInfo) bool {
	return i.OutRef.NotEqual(o.OutRef) || i.Resolved.NotEqual(o.Resolved)
}

func (i TxInInfo) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(i.ToJSON())
}

func (i *TxInInfo) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, i.FromJSON)
}

var TxInInfoCodec = codec.Record[TxInInfo]("TxInInfo")

type (
	// Withdrawal is a reward withdrawal: a stake credential and an amount of lovelace
	Withdrawal = codec.Pair[common.StakingCredential, *big.Int]
	// DatumEntry associates a datum witness with its hash
	DatumEntry = codec.Pair[common.DatumHash, common.Datum]
)

var (
	txInInfoListCodec   = codec.ListOf(TxInInfoCodec)
	txOutListCodec      = codec.ListOf(TxOutCodec)
	dCertListCodec      = codec.ListOf(DCertCodec)
	withdrawalListCodec = codec.ListOf(codec.TaggedPairOf(common.StakingCredentialCodec, codec.Integer))
	signatoryListCodec  = codec.ListOf(common.PubKeyHashCodec)
	datumEntryListCodec = codec.ListOf(codec.TaggedPairOf(common.DatumHashCodec, common.DatumCodec))
)

// TxInfo is the view of a pending transaction given to a script
type TxInfo struct {
	Inputs      []TxInInfo
	Outputs     []TxOut
	Fee         common.Value
	Mint        common.Value
	DCert       []DCert
	Wdrl        []Withdrawal
	ValidRange  common.POSIXTimeRange
	Signatories []common.PubKeyHash
	Data        []DatumEntry
	Id          TxId
}

func (t TxInfo) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		txInInfoListCodec.ToData(t.Inputs),
		txOutListCodec.ToData(t.Outputs),
		common.ValueCodec.ToData(t.Fee),
		common.ValueCodec.ToData(t.Mint),
		dCertListCodec.ToData(t.DCert),
		withdrawalListCodec.ToData(t.Wdrl),
		common.POSIXTimeRangeCodec.ToData(t.ValidRange),
		signatoryListCodec.ToData(t.Signatories),
		datumEntryListCodec.ToData(t.Data),
		TxIdCodec.ToData(t.Id),
	)
}

func (t *TxInfo) FromPlutusData(d plutusdata.Data) error {
	const name = "TxInfo"
	fields, err := codec.ConstrFields(name, d, 0, 10)
	if err != nil {
		return err
	}
	var tmp TxInfo
	if tmp.Inputs, err = codec.DecodeField(name, "inputs", fields[0], txInInfoListCodec); err != nil {
		return err
	}
	if tmp.Outputs, err = codec.DecodeField(name, "outputs", fields[1], txOutListCodec); err != nil {
		return err
	}
	if tmp.Fee, err = codec.DecodeField(name, "fee", fields[2], common.ValueCodec); err != nil {
		return err
	}
	if tmp.Mint, err = codec.DecodeField(name, "mint", fields[3], common.ValueCodec); err != nil {
		return err
	}
	if tmp.DCert, err = codec.DecodeField(name, "d_cert", fields[4], dCertListCodec); err != nil {
		return err
	}
	if tmp.Wdrl, err = codec.DecodeField(name, "wdrl", fields[5], withdrawalListCodec); err != nil {
		return err
	}
	if tmp.ValidRange, err = codec.DecodeField(name, "valid_range", fields[6], common.POSIXTimeRangeCodec); err != nil {
		return err
	}
	if tmp.Signatories, err = codec.DecodeField(name, "signatories", fields[7], signatoryListCodec); err != nil {
		return err
	}
	if tmp.Data, err = codec.DecodeField(name, "datums", fields[8], datumEntryListCodec); err != nil {
		return err
	}
	if tmp.Id, err = codec.DecodeField(name, "id", fields[9], TxIdCodec); err != nil {
		return err
	}
	*t = tmp
	return nil
}

func (t TxInfo) ToJSON() any {
	return map[string]any{
		"inputs":      txInInfoListCodec.ToJSON(t.Inputs),
		"outputs":     txOutListCodec.ToJSON(t.Outputs),
		"fee":         common.ValueCodec.ToJSON(t.Fee),
		"mint":        common.ValueCodec.ToJSON(t.Mint),
		"d_cert":      dCertListCodec.ToJSON(t.DCert),
		"wdrl":        withdrawalListCodec.ToJSON(t.Wdrl),
		"valid_range": common.POSIXTimeRangeCodec.ToJSON(t.ValidRange),
		"signatories": signatoryListCodec.ToJSON(t.Signatories),
		"datums":      datumEntryListCodec.ToJSON(t.Data),
		"id":          TxIdCodec.ToJSON(t.Id),
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
	if tmp.Wdrl, err = codec.DecodeJSONField(name, obj, "wdrl", withdrawalListCodec); err != nil {
		return err
	}
	if tmp.ValidRange, err = codec.DecodeJSONField(name, obj, "valid_range", common.POSIXTimeRangeCodec); err != nil {
		return err
	}
	if tmp.Signatories, err = codec.DecodeJSONField(name, obj, "signatories", signatoryListCodec); err != nil {
		return err
	}
	if tmp.Data, err = codec.DecodeJSONField(name, obj, "datums", datumEntryListCodec); err != nil {
		return err
	}
	if tmp.Id, err = codec.DecodeJSONField(name, obj, "id", TxIdCodec); err != nil {
		return err
	}
	*t = tmp
	return nil
}

func (t TxInfo) Equal(o TxInfo) bool {
	return txInInfoListCodec.Equal(t.Inputs, o.Inputs) &&
		txOutListCodec.Equal(t.Outputs, o.Outputs) &&
		common.ValueCodec.Equal(t.Fee, o.Fee) &&
		common.ValueCodec.Equal(t.Mint, o.Mint) &&
		dCertListCodec.Equal(t.DCert, o.DCert) &&
		withdrawalListCodec.Equal(t.Wdrl, o.Wdrl) &&
		common.POSIXTimeRangeCodec.Equal(t.ValidRange, o.ValidRange) &&
		signatoryListCodec.Equal(t.Signatories, o.Signatories) &&
		datumEntryListCodec.Equal(t.Data, o.Data) &&
		TxIdCodec.Equal(t.Id, o.Id)
}

func (t TxInfo) NotEqual(o TxInfo) bool {
	return txInInfoListCodec.NotEqual(t.Inputs, o.Inputs) ||
		txOutListCodec.NotEqual(t.Outputs, o.Outputs) ||
		common.ValueCodec.NotEqual(t.Fee, o.Fee) ||
		common.ValueCodec.NotEqual(t.Mint, o.Mint) ||
		dCertListCodec.NotEqual(t.DCert, o.DCert) ||
		withdrawalListCodec.NotEqual(t.Wdrl, o.Wdrl) ||
		common.POSIXTimeRangeCodec.NotEqual(t.ValidRange, o.ValidRange) ||
		signatoryListCodec.NotEqual(t.Signatories, o.Signatories) ||
		datumEntryListCodec.NotEqual(t.Data, o.Data) ||
		TxIdCodec.NotEqual(t.Id, o.Id)
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
func (t TxInfo) FindOwnInput(purpose ScriptPurpose) (TxInInfo, bool) {
	spending, ok := purpose.(Spending)
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
	for _, entry := range t.Data {
		if common.DatumHashCodec.Equal(entry.First, hash) {
			return entry.Second, true
		}
	}
	return nil, false
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

const (
	ScriptPurposeTypeMinting    = 0
	ScriptPurposeTypeSpending   = 1
	ScriptPurposeTypeRewarding  = 2
	ScriptPurposeTypeCertifying = 3
)

// ScriptPurpose says why a script is being run
type ScriptPurpose interface {
	isScriptPurpose()
	ToPlutusData() plutusdata.Data
	ToJSON() any
}

type Minting struct {
	CurrencySymbol common.CurrencySymbol
}

type Spending struct {
	OutRef TxOutRef
}

type Rewarding struct {
	StakingCredential common.StakingCredential
}

type Certifying struct {
	DCert DCert
}

func (Minting) isScriptPurpose()    {}
func (Spending) isScriptPurpose()   {}
func (Rewarding) isScriptPurpose()  {}
func (Certifying) isScriptPurpose() {}

func (p Minting) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(ScriptPurposeTypeMinting, common.CurrencySymbolCodec.ToData(p.CurrencySymbol))
}

func (p Spending) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(ScriptPurposeTypeSpending, p.OutRef.ToPlutusData())
}

func (p Rewarding) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(ScriptPurposeTypeRewarding, p.StakingCredential.ToPlutusData())
}

func (p Certifying) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(ScriptPurposeTypeCertifying, p.DCert.ToPlutusData())
}

func (p Minting) ToJSON() any {
	return codec.Constructor("Minting", common.CurrencySymbolCodec.ToJSON(p.CurrencySymbol))
}

func (p Spending) ToJSON() any {
	return codec.Constructor("Spending", p.OutRef.ToJSON())
}

func (p Rewarding) ToJSON() any {
	return codec.Constructor("Rewarding", p.StakingCredential.ToJSON())
}

func (p Certifying) ToJSON() any {
	return codec.Constructor("Certifying", p.DCert.ToJSON())
}

func ScriptPurposeFromData(d plutusdata.Data) (ScriptPurpose, error) {
	const name = "ScriptPurpose"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	switch c.Index {
	case ScriptPurposeTypeMinting:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		cs, err := codec.DecodeField(name, "Minting", c.Fields[0], common.CurrencySymbolCodec)
		if err != nil {
			return nil, err
		}
		return Minting{CurrencySymbol: cs}, nil
	case ScriptPurposeTypeSpending:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		ref, err := codec.DecodeField(name, "Spending", c.Fields[0], TxOutRefCodec)
		if err != nil {
			return nil, err
		}
		return Spending{OutRef: ref}, nil
	case ScriptPurposeTypeRewarding:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		cred, err := codec.DecodeField(name, "Rewarding", c.Fields[0], common.StakingCredentialCodec)
		if err != nil {
			return nil, err
		}
		return Rewarding{StakingCredential: cred}, nil
	case ScriptPurposeTypeCertifying:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		cert, err := codec.DecodeField(name, "Certifying", c.Fields[0], DCertCodec)
		if err != nil {
			return nil, err
		}
		return Certifying{DCert: cert}, nil
	default:
		return nil, codec.UnknownConstr(name, c)
	}
}

func ScriptPurposeFromJSON(v any) (ScriptPurpose, error) {
	const name = "ScriptPurpose"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	switch ctor {
	case "Minting":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		cs, err := codec.DecodeJSONValue(name, ctor, fields[0], common.CurrencySymbolCodec)
		if err != nil {
			return nil, err
		}
		return Minting{CurrencySymbol: cs}, nil
	case "Spending":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		ref, err := codec.DecodeJSONValue(name, ctor, fields[0], TxOutRefCodec)
		if err != nil {
			return nil, err
		}
		return Spending{OutRef: ref}, nil
	case "Rewarding":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		cred, err := codec.DecodeJSONValue(name, ctor, fields[0], common.StakingCredentialCodec)
		if err != nil {
			return nil, err
		}
		return Rewarding{StakingCredential: cred}, nil
	case "Certifying":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		cert, err := codec.DecodeJSONValue(name, ctor, fields[0], DCertCodec)
		if err != nil {
			return nil, err
		}
		return Certifying{DCert: cert}, nil
	default:
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
}

func ScriptPurposeEqual(a ScriptPurpose, b ScriptPurpose) bool {
	switch tmpA := a.(type) {
	case Minting:
		tmpB, ok := b.(Minting)
		return ok && common.CurrencySymbolCodec.Equal(tmpA.CurrencySymbol, tmpB.CurrencySymbol)
	case Spending:
		tmpB, ok := b.(Spending)
		return ok && tmpA.OutRef.Equal(tmpB.OutRef)
	case Rewarding:
		tmpB, ok := b.(Rewarding)
		return ok && common.StakingCredentialEqual(tmpA.StakingCredential, tmpB.StakingCredential)
	case Certifying:
		tmpB, ok := b.(Certifying)
		return ok && DCertEqual(tmpA.DCert, tmpB.DCert)
	}
	return a == nil && b == nil
}

func ScriptPurposeNotEqual(a ScriptPurpose, b ScriptPurpose) bool {
	switch tmpA := a.(type) {
	case Minting:
		tmpB, ok := b.(Minting)
		return !ok || common.CurrencySymbolCodec.NotEqual(tmpA.CurrencySymbol, tmpB.CurrencySymbol)
	case Spending:
		tmpB, ok := b.(Spending)
		return !ok || tmpA.OutRef.NotEqual(tmpB.OutRef)
	case Rewarding:
		tmpB, ok := b.(Rewarding)
		return !ok || common.StakingCredentialNotEqual(tmpA.StakingCredential, tmpB.StakingCredential)
	case Certifying:
		tmpB, ok := b.(Certifying)
		return !ok || DCertNotEqual(tmpA.DCert, tmpB.DCert)
	}
	return a != nil || b != nil
}

var ScriptPurposeCodec = codec.Codec[ScriptPurpose]{
	Name:     "ScriptPurpose",
	ToData:   ScriptPurpose.ToPlutusData,
	FromData: ScriptPurposeFromData,
	ToJSON:   ScriptPurpose.ToJSON,
	FromJSON: ScriptPurposeFromJSON,
	Equal:    ScriptPurposeEqual,
	NotEqual: ScriptPurposeNotEqual,
}

// ScriptContext is the argument passed to a script alongside its datum and redeemer
type ScriptContext struct {
	TxInfo  TxInfo
	Purpose ScriptPurpose
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
	purpose, err := codec.DecodeField(name, "purpose", fields[1], ScriptPurposeCodec)
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
	purpose, err := codec.DecodeJSONField(name, obj, "purpose", ScriptPurposeCodec)
	if err != nil {
		return err
	}
	s.TxInfo = txInfo
	s.Purpose = purpose
	return nil
}

func (s ScriptContext) Equal(o ScriptContext) bool {
	return s.TxInfo.Equal(o.TxInfo) && ScriptPurposeEqual(s.Purpose, o.Purpose)
}

func (s ScriptContext) NotEqual(o ScriptContext) bool {
	return s.TxInfo.NotEqual(o.TxInfo) || ScriptPurposeNotEqual(s.Purpose, o.Purpose)
}

func (s ScriptContext) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(s.ToJSON())
}

func (s *ScriptContext) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, s.FromJSON)
}

var ScriptContextCodec = codec.Record[ScriptContext]("ScriptContext")
