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
	"slices"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

const (
	ScriptPurposeTypeMinting    = 0
	ScriptPurposeTypeSpending   = 1
	ScriptPurposeTypeRewarding  = 2
	ScriptPurposeTypeCertifying = 3
	ScriptPurposeTypeVoting     = 4
	ScriptPurposeTypeProposing  = 5
)

// ScriptPurpose and ScriptInfo share constructor names. Only the spending variant
// differs in arity
var (
	scriptPurposeNames = []string{
		"Minting",
		"Spending",
		"Rewarding",
		"Certifying",
		"Voting",
		"Proposing",
	}
	scriptPurposeArity = []int{1, 1, 1, 2, 1, 2}
	scriptInfoArity    = []int{1, 2, 1, 2, 1, 2}
)

var maybeDatumCodec = codec.MaybeOf(common.DatumCodec)

// ScriptPurpose identifies what a script is being run for. It keys the redeemers of a
// transaction
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
	Credential common.Credential
}

// Certifying carries the position of the certificate in the transaction
type Certifying struct {
	Index *big.Int
	Cert  TxCert
}

type Voting struct {
	Voter Voter
}

// Proposing carries the position of the proposal in the transaction
type Proposing struct {
	Index    *big.Int
	Proposal ProposalProcedure
}

func (Minting) isScriptPurpose()    {}
func (Spending) isScriptPurpose()   {}
func (Rewarding) isScriptPurpose()  {}
func (Certifying) isScriptPurpose() {}
func (Voting) isScriptPurpose()     {}
func (Proposing) isScriptPurpose()  {}

func (p Minting) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		ScriptPurposeTypeMinting,
		common.CurrencySymbolCodec.ToData(p.CurrencySymbol),
	)
}

func (p Spending) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(ScriptPurposeTypeSpending, p.OutRef.ToPlutusData())
}

func (p Rewarding) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(ScriptPurposeTypeRewarding, p.Credential.ToPlutusData())
}

func (p Certifying) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		ScriptPurposeTypeCertifying,
		codec.Integer.ToData(p.Index),
		p.Cert.ToPlutusData(),
	)
}

func (p Voting) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(ScriptPurposeTypeVoting, p.Voter.ToPlutusData())
}

func (p Proposing) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		ScriptPurposeTypeProposing,
		codec.Integer.ToData(p.Index),
		p.Proposal.ToPlutusData(),
	)
}

func (p Minting) ToJSON() any {
	return codec.Constructor("Minting", common.CurrencySymbolCodec.ToJSON(p.CurrencySymbol))
}

func (p Spending) ToJSON() any {
	return codec.Constructor("Spending", p.OutRef.ToJSON())
}

func (p Rewarding) ToJSON() any {
	return codec.Constructor("Rewarding", p.Credential.ToJSON())
}

func (p Certifying) ToJSON() any {
	return codec.Constructor("Certifying", codec.Integer.ToJSON(p.Index), p.Cert.ToJSON())
}

func (p Voting) ToJSON() any {
	return codec.Constructor("Voting", p.Voter.ToJSON())
}

func (p Proposing) ToJSON() any {
	return codec.Constructor("Proposing", codec.Integer.ToJSON(p.Index), p.Proposal.ToJSON())
}

// scriptFields decodes ScriptPurpose and ScriptInfo fields by position
type scriptFields struct {
	currencySymbol func(int) (common.CurrencySymbol, error)
	outRef         func(int) (TxOutRef, error)
	maybeDatum     func(int) (codec.Maybe[common.Datum], error)
	credential     func(int) (common.Credential, error)
	integer        func(int) (*big.Int, error)
	cert           func(int) (TxCert, error)
	voter          func(int) (Voter, error)
	proposal       func(int) (ProposalProcedure, error)
}

func dataScriptFields(typeName string, variant string, fields []plutusdata.Data) scriptFields {
	return scriptFields{
		currencySymbol: dataFieldDecoder(typeName, variant, fields, common.CurrencySymbolCodec),
		outRef:         dataFieldDecoder(typeName, variant, fields, TxOutRefCodec),
		maybeDatum:     dataFieldDecoder(typeName, variant, fields, maybeDatumCodec),
		credential:     dataFieldDecoder(typeName, variant, fields, common.CredentialCodec),
		integer:        dataFieldDecoder(typeName, variant, fields, codec.Integer),
		cert:           dataFieldDecoder(typeName, variant, fields, TxCertCodec),
		voter:          dataFieldDecoder(typeName, variant, fields, VoterCodec),
		proposal:       dataFieldDecoder(typeName, variant, fields, ProposalProcedureCodec),
	}
}

func jsonScriptFields(typeName string, variant string, fields []any) scriptFields {
	return scriptFields{
		currencySymbol: jsonFieldDecoder(typeName, variant, fields, common.CurrencySymbolCodec),
		outRef:         jsonFieldDecoder(typeName, variant, fields, TxOutRefCodec),
		maybeDatum:     jsonFieldDecoder(typeName, variant, fields, maybeDatumCodec),
		credential:     jsonFieldDecoder(typeName, variant, fields, common.CredentialCodec),
		integer:        jsonFieldDecoder(typeName, variant, fields, codec.Integer),
		cert:           jsonFieldDecoder(typeName, variant, fields, TxCertCodec),
		voter:          jsonFieldDecoder(typeName, variant, fields, VoterCodec),
		proposal:       jsonFieldDecoder(typeName, variant, fields, ProposalProcedureCodec),
	}
}

func (f scriptFields) purpose(index uint64) (ScriptPurpose, error) {
	var err error
	switch index {
	case ScriptPurposeTypeMinting:
		var ret Minting
		if ret.CurrencySymbol, err = f.currencySymbol(0); err != nil {
			return nil, err
		}
		return ret, nil
	case ScriptPurposeTypeSpending:
		var ret Spending
		if ret.OutRef, err = f.outRef(0); err != nil {
			return nil, err
		}
		return ret, nil
	case ScriptPurposeTypeRewarding:
		var ret Rewarding
		if ret.Credential, err = f.credential(0); err != nil {
			return nil, err
		}
		return ret, nil
	case ScriptPurposeTypeCertifying:
		var ret Certifying
		if ret.Index, err = f.integer(0); err != nil {
			return nil, err
		}
		if ret.Cert, err = f.cert(1); err != nil {
			return nil, err
		}
		return ret, nil
	case ScriptPurposeTypeVoting:
		var ret Voting
		if ret.Voter, err = f.voter(0); err != nil {
			return nil, err
		}
		return ret, nil
	default:
		var ret Proposing
		if ret.Index, err = f.integer(0); err != nil {
			return nil, err
		}
		if ret.Proposal, err = f.proposal(1); err != nil {
			return nil, err
		}
		return ret, nil
	}
}

func ScriptPurposeFromData(d plutusdata.Data) (ScriptPurpose, error) {
	const name = "ScriptPurpose"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	if c.Index >= uint64(len(scriptPurposeNames)) {
		return nil, codec.UnknownConstr(name, c)
	}
	if err := codec.CheckArity(name, c, scriptPurposeArity[c.Index]); err != nil {
		return nil, err
	}
	return dataScriptFields(name, scriptPurposeNames[c.Index], c.Fields).purpose(c.Index)
}

func ScriptPurposeFromJSON(v any) (ScriptPurpose, error) {
	const name = "ScriptPurpose"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	index := slices.Index(scriptPurposeNames, ctor)
	if index < 0 {
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
	if err := codec.CheckJSONArity(name, ctor, fields, scriptPurposeArity[index]); err != nil {
		return nil, err
	}
	return jsonScriptFields(name, ctor, fields).purpose(uint64(index))
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
		return ok && common.CredentialEqual(tmpA.Credential, tmpB.Credential)
	case Certifying:
		tmpB, ok := b.(Certifying)
		return ok &&
			codec.Integer.Equal(tmpA.Index, tmpB.Index) &&
			TxCertEqual(tmpA.Cert, tmpB.Cert)
	case Voting:
		tmpB, ok := b.(Voting)
		return ok && VoterEqual(tmpA.Voter, tmpB.Voter)
	case Proposing:
		tmpB, ok := b.(Proposing)
		return ok &&
			codec.Integer.Equal(tmpA.Index, tmpB.Index) &&
			tmpA.Proposal.Equal(tmpB.Proposal)
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
		return !ok || common.CredentialNotEqual(tmpA.Credential, tmpB.Credential)
	case Certifying:
		tmpB, ok := b.(Certifying)
		return !ok ||
			codec.Integer.NotEqual(tmpA.Index, tmpB.Index) ||
			TxCertNotEqual(tmpA.Cert, tmpB.Cert)
	case Voting:
		tmpB, ok := b.(Voting)
		return !ok || VoterNotEqual(tmpA.Voter, tmpB.Voter)
	case Proposing:
		tmpB, ok := b.(Proposing)
		return !ok ||
			codec.Integer.NotEqual(tmpA.Index, tmpB.Index) ||
			tmpA.Proposal.NotEqual(tmpB.Proposal)
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

// ScriptInfo describes the script being run. It is the ScriptPurpose of the script,
// plus the datum of the output being spent
type ScriptInfo interface {
	isScriptInfo()
	ToPlutusData() plutusdata.Data
	ToJSON() any
	// Purpose drops the spent datum
	Purpose() ScriptPurpose
}

type MintingScript struct {
	CurrencySymbol common.CurrencySymbol
}

// SpendingScript has no datum when the spent output only carries a datum hash with no
// matching witness
type SpendingScript struct {
	OutRef TxOutRef
	Datum  codec.Maybe[common.Datum]
}

type RewardingScript struct {
	Credential common.Credential
}

type CertifyingScript struct {
	Index *big.Int
	Cert  TxCert
}

type VotingScript struct {
	Voter Voter
}

type ProposingScript struct {
	Index    *big.Int
	Proposal ProposalProcedure
}

func (MintingScript) isScriptInfo()    {}
func (SpendingScript) isScriptInfo()   {}
func (RewardingScript) isScriptInfo()  {}
func (CertifyingScript) isScriptInfo() {}
func (VotingScript) isScriptInfo()     {}
func (ProposingScript) isScriptInfo()  {}

func (s MintingScript) Purpose() ScriptPurpose {
	return Minting{CurrencySymbol: s.CurrencySymbol}
}

func (s SpendingScript) Purpose() ScriptPurpose {
	return Spending{OutRef: s.OutRef}
}

func (s RewardingScript) Purpose() ScriptPurpose {
	return Rewarding{Credential: s.Credential}
}

func (s CertifyingScript) Purpose() ScriptPurpose {
	return Certifying{Index: s.Index, Cert: s.Cert}
}

func (s VotingScript) Purpose() ScriptPurpose {
	return Voting{Voter: s.Voter}
}

func (s ProposingScript) Purpose() ScriptPurpose {
	return Proposing{Index: s.Index, Proposal: s.Proposal}
}

// All variants except spending share the data form of their purpose
func (s MintingScript) ToPlutusData() plutusdata.Data    { return s.Purpose().ToPlutusData() }
func (s RewardingScript) ToPlutusData() plutusdata.Data  { return s.Purpose().ToPlutusData() }
func (s CertifyingScript) ToPlutusData() plutusdata.Data { return s.Purpose().ToPlutusData() }
func (s VotingScript) ToPlutusData() plutusdata.Data     { return s.Purpose().ToPlutusData() }
func (s ProposingScript) ToPlutusData() plutusdata.Data  { return s.Purpose().ToPlutusData() }

func (s SpendingScript) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		ScriptPurposeTypeSpending,
		s.OutRef.ToPlutusData(),
		maybeDatumCodec.ToData(s.Datum),
	)
}

func (s MintingScript) ToJSON() any    { return s.Purpose().ToJSON() }
func (s RewardingScript) ToJSON() any  { return s.Purpose().ToJSON() }
func (s CertifyingScript) ToJSON() any { return s.Purpose().ToJSON() }
func (s VotingScript) ToJSON() any     { return s.Purpose().ToJSON() }
func (s ProposingScript) ToJSON() any  { return s.Purpose().ToJSON() }

func (s SpendingScript) ToJSON() any {
	return codec.Constructor("Spending", s.OutRef.ToJSON(), maybeDatumCodec.ToJSON(s.Datum))
}

func (f scriptFields) info(index uint64) (ScriptInfo, error) {
	if index == ScriptPurposeTypeSpending {
		var ret SpendingScript
		var err error
		if ret.OutRef, err = f.outRef(0); err != nil {
			return nil, err
		}
		if ret.Datum, err = f.maybeDatum(1); err != nil {
			return nil, err
		}
		return ret, nil
	}
	purpose, err := f.purpose(index)
	if err != nil {
		return nil, err
	}
	switch p := purpose.(type) {
	case Minting:
		return MintingScript(p), nil
	case Rewarding:
		return RewardingScript(p), nil
	case Certifying:
		return CertifyingScript(p), nil
	case Voting:
		return VotingScript(p), nil
	default:
		return ProposingScript(p.(Proposing)), nil
	}
}

func ScriptInfoFromData(d plutusdata.Data) (ScriptInfo, error) {
	const name = "ScriptInfo"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	if c.Index >= uint64(len(scriptPurposeNames)) {
		return nil, codec.UnknownConstr(name, c)
	}
	if err := codec.CheckArity(name, c, scriptInfoArity[c.Index]); err != nil {
		return nil, err
	}
	return dataScriptFields(name, scriptPurposeNames[c.Index], c.Fields).info(c.Index)
}

func ScriptInfoFromJSON(v any) (ScriptInfo, error) {
	const name = "ScriptInfo"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	index := slices.Index(scriptPurposeNames, ctor)
	if index < 0 {
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
	if err := codec.CheckJSONArity(name, ctor, fields, scriptInfoArity[index]); err != nil {
		return nil, err
	}
	return jsonScriptFields(name, ctor, fields).info(uint64(index))
}

func ScriptInfoEqual(a ScriptInfo, b ScriptInfo) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if tmpA, ok := a.(SpendingScript); ok {
		tmpB, ok := b.(SpendingScript)
		return ok &&
			tmpA.OutRef.Equal(tmpB.OutRef) &&
			maybeDatumCodec.Equal(tmpA.Datum, tmpB.Datum)
	}
	if _, ok := b.(SpendingScript); ok {
		return false
	}
	return ScriptPurposeEqual(a.Purpose(), b.Purpose())
}

func ScriptInfoNotEqual(a ScriptInfo, b ScriptInfo) bool {
	if a == nil || b == nil {
		return a != nil || b != nil
	}
	if tmpA, ok := a.(SpendingScript); ok {
		tmpB, ok := b.(SpendingScript)
		return !ok ||
			tmpA.OutRef.NotEqual(tmpB.OutRef) ||
			maybeDatumCodec.NotEqual(tmpA.Datum, tmpB.Datum)
	}
	if _, ok := b.(SpendingScript); ok {
		return true
	}
	return ScriptPurposeNotEqual(a.Purpose(), b.Purpose())
}

var ScriptInfoCodec = codec.Codec[ScriptInfo]{
	Name:     "ScriptInfo",
	ToData:   ScriptInfo.ToPlutusData,
	FromData: ScriptInfoFromData,
	ToJSON:   ScriptInfo.ToJSON,
	FromJSON: ScriptInfoFromJSON,
	Equal:    ScriptInfoEqual,
	NotEqual: ScriptInfoNotEqual,
}
