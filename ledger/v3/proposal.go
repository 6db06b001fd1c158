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

	"github.com/blinklabs-io/plutus-ledger-api/assocmap"
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

type (
	// CommitteeMembers maps committee cold credentials to the epoch their term ends
	CommitteeMembers = assocmap.Map[common.Credential, *big.Int]
	// Withdrawals maps reward account credentials to lovelace amounts
	Withdrawals = assocmap.Map[common.Credential, *big.Int]
	// ChangedParameters is the data encoding of a set of protocol parameter updates
	ChangedParameters = plutusdata.Data
)

var (
	CommitteeMembersCodec = assocmap.NewCodec(common.CredentialCodec, codec.Integer)
	WithdrawalsCodec      = assocmap.NewCodec(common.CredentialCodec, codec.Integer)
)

var (
	maybeScriptHashCodec   = codec.MaybeOf(common.ScriptHashCodec)
	maybeGovActionIdCodec  = codec.MaybeOf(GovernanceActionIdCodec)
	credentialListCodec    = codec.ListOf(common.CredentialCodec)
	changedParametersCodec = func() codec.Codec[ChangedParameters] {
		ret := codec.Data
		ret.Name = "ChangedParameters"
		return ret
	}()
)

const (
	GovActionTypeParameterChange    = 0
	GovActionTypeHardForkInitiation = 1
	GovActionTypeTreasuryWithdrawal = 2
	GovActionTypeNoConfidence       = 3
	GovActionTypeUpdateCommittee    = 4
	GovActionTypeNewConstitution    = 5
	GovActionTypeInfoAction         = 6
)

// GovernanceAction is the content of a governance proposal
type GovernanceAction interface {
	isGovernanceAction()
	ToPlutusData() plutusdata.Data
	ToJSON() any
}

type ParameterChange struct {
	PrevActionId    codec.Maybe[GovernanceActionId]
	Parameters      ChangedParameters
	GuardrailScript codec.Maybe[common.ScriptHash]
}

type HardForkInitiation struct {
	PrevActionId    codec.Maybe[GovernanceActionId]
	ProtocolVersion ProtocolVersion
}

type TreasuryWithdrawal struct {
	Withdrawals     Withdrawals
	GuardrailScript codec.Maybe[common.ScriptHash]
}

type NoConfidence struct {
	PrevActionId codec.Maybe[GovernanceActionId]
}

type UpdateCommittee struct {
	PrevActionId codec.Maybe[GovernanceActionId]
	Removed      []common.Credential
	Added        CommitteeMembers
	Quorum       common.Rational
}

type NewConstitution struct {
	PrevActionId codec.Maybe[GovernanceActionId]
	Constitution Constitution
}

type InfoAction struct{}

func (ParameterChange) isGovernanceAction()    {}
func (HardForkInitiation) isGovernanceAction() {}
func (TreasuryWithdrawal) isGovernanceAction() {}
func (NoConfidence) isGovernanceAction()       {}
func (UpdateCommittee) isGovernanceAction()    {}
func (NewConstitution) isGovernanceAction()    {}
func (InfoAction) isGovernanceAction()         {}

func (a ParameterChange) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		GovActionTypeParameterChange,
		maybeGovActionIdCodec.ToData(a.PrevActionId),
		changedParametersCodec.ToData(a.Parameters),
		maybeScriptHashCodec.ToData(a.GuardrailScript),
	)
}

func (a HardForkInitiation) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		GovActionTypeHardForkInitiation,
		maybeGovActionIdCodec.ToData(a.PrevActionId),
		a.ProtocolVersion.ToPlutusData(),
	)
}

func (a TreasuryWithdrawal) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		GovActionTypeTreasuryWithdrawal,
		WithdrawalsCodec.ToData(a.Withdrawals),
		maybeScriptHashCodec.ToData(a.GuardrailScript),
	)
}

func (a NoConfidence) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		GovActionTypeNoConfidence,
		maybeGovActionIdCodec.ToData(a.PrevActionId),
	)
}

func (a UpdateCommittee) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		GovActionTypeUpdateCommittee,
		maybeGovActionIdCodec.ToData(a.PrevActionId),
		credentialListCodec.ToData(a.Removed),
		CommitteeMembersCodec.ToData(a.Added),
		a.Quorum.ToPlutusData(),
	)
}

func (a NewConstitution) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		GovActionTypeNewConstitution,
		maybeGovActionIdCodec.ToData(a.PrevActionId),
		a.Constitution.ToPlutusData(),
	)
}

func (InfoAction) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(GovActionTypeInfoAction)
}

func (a ParameterChange) ToJSON() any {
	return codec.Constructor(
		"ParameterChange",
		maybeGovActionIdCodec.ToJSON(a.PrevActionId),
		changedParametersCodec.ToJSON(a.Parameters),
		maybeScriptHashCodec.ToJSON(a.GuardrailScript),
	)
}

func (a HardForkInitiation) ToJSON() any {
	return codec.Constructor(
		"HardForkInitiation",
		maybeGovActionIdCodec.ToJSON(a.PrevActionId),
		a.ProtocolVersion.ToJSON(),
	)
}

func (a TreasuryWithdrawal) ToJSON() any {
	return codec.Constructor(
		"TreasuryWithdrawal",
		WithdrawalsCodec.ToJSON(a.Withdrawals),
		maybeScriptHashCodec.ToJSON(a.GuardrailScript),
	)
}

func (a NoConfidence) ToJSON() any {
	return codec.Constructor(
		"NoConfidence",
		maybeGovActionIdCodec.ToJSON(a.PrevActionId),
	)
}

func (a UpdateCommittee) ToJSON() any {
	return codec.Constructor(
		"UpdateCommittee",
		maybeGovActionIdCodec.ToJSON(a.PrevActionId),
		credentialListCodec.ToJSON(a.Removed),
		CommitteeMembersCodec.ToJSON(a.Added),
		a.Quorum.ToJSON(),
	)
}

func (a NewConstitution) ToJSON() any {
	return codec.Constructor(
		"NewConstitution",
		maybeGovActionIdCodec.ToJSON(a.PrevActionId),
		a.Constitution.ToJSON(),
	)
}

func (InfoAction) ToJSON() any {
	return codec.Constructor("InfoAction")
}

// Constructor names and field counts by constructor index
var (
	govActionNames = []string{
		"ParameterChange",
		"HardForkInitiation",
		"TreasuryWithdrawal",
		"NoConfidence",
		"UpdateCommittee",
		"NewConstitution",
		"InfoAction",
	}
	govActionArity = []int{3, 2, 2, 1, 4, 2, 0}
)

// govActionFields decodes the fields of a governance action, which are laid out the
// same way in both encodings. The decode functions report errors against the variant
// field names
type govActionFields struct {
	prevActionId func(int) (codec.Maybe[GovernanceActionId], error)
	scriptHash   func(int) (codec.Maybe[common.ScriptHash], error)
	parameters   func(int) (ChangedParameters, error)
	version      func(int) (ProtocolVersion, error)
	withdrawals  func(int) (Withdrawals, error)
	credentials  func(int) ([]common.Credential, error)
	members      func(int) (CommitteeMembers, error)
	rational     func(int) (common.Rational, error)
	constitution func(int) (Constitution, error)
}

func (f govActionFields) build(index uint64) (GovernanceAction, error) {
	switch index {
	case GovActionTypeParameterChange:
		var ret ParameterChange
		var err error
		if ret.PrevActionId, err = f.prevActionId(0); err != nil {
			return nil, err
		}
		if ret.Parameters, err = f.parameters(1); err != nil {
			return nil, err
		}
		if ret.GuardrailScript, err = f.scriptHash(2); err != nil {
			return nil, err
		}
		return ret, nil
	case GovActionTypeHardForkInitiation:
		var ret HardForkInitiation
		var err error
		if ret.PrevActionId, err = f.prevActionId(0); err != nil {
			return nil, err
		}
		if ret.ProtocolVersion, err = f.version(1); err != nil {
			return nil, err
		}
		return ret, nil
	case GovActionTypeTreasuryWithdrawal:
		var ret TreasuryWithdrawal
		var err error
		if ret.Withdrawals, err = f.withdrawals(0); err != nil {
			return nil, err
		}
		if ret.GuardrailScript, err = f.scriptHash(1); err != nil {
			return nil, err
		}
		return ret, nil
	case GovActionTypeNoConfidence:
		var ret NoConfidence
		var err error
		if ret.PrevActionId, err = f.prevActionId(0); err != nil {
			return nil, err
		}
		return ret, nil
	case GovActionTypeUpdateCommittee:
		var ret UpdateCommittee
		var err error
		if ret.PrevActionId, err = f.prevActionId(0); err != nil {
			return nil, err
		}
		if ret.Removed, err = f.credentials(1); err != nil {
			return nil, err
		}
		if ret.Added, err = f.members(2); err != nil {
			return nil, err
		}
		if ret.Quorum, err = f.rational(3); err != nil {
			return nil, err
		}
		return ret, nil
	case GovActionTypeNewConstitution:
		var ret NewConstitution
		var err error
		if ret.PrevActionId, err = f.prevActionId(0); err != nil {
			return nil, err
		}
		if ret.Constitution, err = f.constitution(1); err != nil {
			return nil, err
		}
		return ret, nil
	default:
		return InfoAction{}, nil
	}
}

func GovernanceActionFromData(d plutusdata.Data) (GovernanceAction, error) {
	const name = "GovernanceAction"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	if c.Index >= uint64(len(govActionNames)) {
		return nil, codec.UnknownConstr(name, c)
	}
	if err := codec.CheckArity(name, c, govActionArity[c.Index]); err != nil {
		return nil, err
	}
	variant := govActionNames[c.Index]
	f := govActionFields{
		prevActionId: dataFieldDecoder(name, variant, c.Fields, maybeGovActionIdCodec),
		scriptHash:   dataFieldDecoder(name, variant, c.Fields, maybeScriptHashCodec),
		parameters:   dataFieldDecoder(name, variant, c.Fields, changedParametersCodec),
		version:      dataFieldDecoder(name, variant, c.Fields, ProtocolVersionCodec),
		withdrawals:  dataFieldDecoder(name, variant, c.Fields, WithdrawalsCodec),
		credentials:  dataFieldDecoder(name, variant, c.Fields, credentialListCodec),
		members:      dataFieldDecoder(name, variant, c.Fields, CommitteeMembersCodec),
		rational:     dataFieldDecoder(name, variant, c.Fields, common.RationalCodec),
		constitution: dataFieldDecoder(name, variant, c.Fields, ConstitutionCodec),
	}
	return f.build(c.Index)
}

func GovernanceActionFromJSON(v any) (GovernanceAction, error) {
	const name = "GovernanceAction"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	index := slices.Index(govActionNames, ctor)
	if index < 0 {
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
	if err := codec.CheckJSONArity(name, ctor, fields, govActionArity[index]); err != nil {
		return nil, err
	}
	f := govActionFields{
		prevActionId: jsonFieldDecoder(name, ctor, fields, maybeGovActionIdCodec),
		scriptHash:   jsonFieldDecoder(name, ctor, fields, maybeScriptHashCodec),
		parameters:   jsonFieldDecoder(name, ctor, fields, changedParametersCodec),
		version:      jsonFieldDecoder(name, ctor, fields, ProtocolVersionCodec),
		withdrawals:  jsonFieldDecoder(name, ctor, fields, WithdrawalsCodec),
		credentials:  jsonFieldDecoder(name, ctor, fields, credentialListCodec),
		members:      jsonFieldDecoder(name, ctor, fields, CommitteeMembersCodec),
		rational:     jsonFieldDecoder(name, ctor, fields, common.RationalCodec),
		constitution: jsonFieldDecoder(name, ctor, fields, ConstitutionCodec),
	}
	return f.build(uint64(index))
}

func GovernanceActionEqual(a GovernanceAction, b GovernanceAction) bool {
	switch tmpA := a.(type) {
	case ParameterChange:
		tmpB, ok := b.(ParameterChange)
		return ok &&
			maybeGovActionIdCodec.Equal(tmpA.PrevActionId, tmpB.PrevActionId) &&
			changedParametersCodec.Equal(tmpA.Parameters, tmpB.Parameters) &&
			maybeScriptHashCodec.Equal(tmpA.GuardrailScript, tmpB.GuardrailScript)
	case HardForkInitiation:
		tmpB, ok := b.(HardForkInitiation)
		return ok &&
			maybeGovActionIdCodec.Equal(tmpA.PrevActionId, tmpB.PrevActionId) &&
			tmpA.ProtocolVersion.Equal(tmpB.ProtocolVersion)
	case TreasuryWithdrawal:
		tmpB, ok := b.(TreasuryWithdrawal)
		return ok &&
			WithdrawalsCodec.Equal(tmpA.Withdrawals, tmpB.Withdrawals) &&
			maybeScriptHashCodec.Equal(tmpA.GuardrailScript, tmpB.GuardrailScript)
	case NoConfidence:
		tmpB, ok := b.(NoConfidence)
		return ok && maybeGovActionIdCodec.Equal(tmpA.PrevActionId, tmpB.PrevActionId)
	case UpdateCommittee:
		tmpB, ok := b.(UpdateCommittee)
		return ok &&
			maybeGovActionIdCodec.Equal(tmpA.PrevActionId, tmpB.PrevActionId) &&
			credentialListCodec.Equal(tmpA.Removed, tmpB.Removed) &&
			CommitteeMembersCodec.Equal(tmpA.Added, tmpB.Added) &&
			tmpA.Quorum.Equal(tmpB.Quorum)
	case NewConstitution:
		tmpB, ok := b.(NewConstitution)
		return ok &&
			maybeGovActionIdCodec.Equal(tmpA.PrevActionId, tmpB.PrevActionId) &&
			tmpA.Constitution.Equal(tmpB.Constitution)
	case InfoAction:
		_, ok := b.(InfoAction)
		return ok
	}
	return a == nil && b == nil
}

func GovernanceActionNotEqual(a GovernanceAction, b GovernanceAction) bool {
	switch tmpA := a.(type) {
	case ParameterChange:
		tmpB, ok := b.(ParameterChange)
		return !ok ||
			maybeGovActionIdCodec.NotEqual(tmpA.PrevActionId, tmpB.PrevActionId) ||
			changedParametersCodec.NotEqual(tmpA.Parameters, tmpB.Parameters) ||
			maybeScriptHashCodec.NotEqual(tmpA.GuardrailScript, tmpB.GuardrailScript)
	case HardForkInitiation:
		tmpB, ok := b.(HardForkInitiation)
		return !ok ||
			maybeGovActionIdCodec.NotEqual(tmpA.PrevActionId, tmpB.PrevActionId) ||
			tmpA.ProtocolVersion.NotEqual(tmpB.ProtocolVersion)
	case TreasuryWithdrawal:
		tmpB, ok := b.(TreasuryWithdrawal)
		return !ok ||
			WithdrawalsCodec.NotEqual(tmpA.Withdrawals, tmpB.Withdrawals) ||
			maybeScriptHashCodec.NotEqual(tmpA.GuardrailScript, tmpB.GuardrailScript)
	case NoConfidence:
		tmpB, ok := b.(NoConfidence)
		return !ok || maybeGovActionIdCodec.NotEqual(tmpA.PrevActionId, tmpB.PrevActionId)
	case UpdateCommittee:
		tmpB, ok := b.(UpdateCommittee)
		return !ok ||
			maybeGovActionIdCodec.NotEqual(tmpA.PrevActionId, tmpB.PrevActionId) ||
			credentialListCodec.NotEqual(tmpA.Removed, tmpB.Removed) ||
			CommitteeMembersCodec.NotEqual(tmpA.Added, tmpB.Added) ||
			tmpA.Quorum.NotEqual(tmpB.Quorum)
	case NewConstitution:
		tmpB, ok := b.(NewConstitution)
		return !ok ||
			maybeGovActionIdCodec.NotEqual(tmpA.PrevActionId, tmpB.PrevActionId) ||
			tmpA.Constitution.NotEqual(tmpB.Constitution)
	case InfoAction:
		_, ok := b.(InfoAction)
		return !ok
	}
	return a != nil || b != nil
}

var GovernanceActionCodec = codec.Codec[GovernanceAction]{
	Name:     "GovernanceAction",
	ToData:   GovernanceAction.ToPlutusData,
	FromData: GovernanceActionFromData,
	ToJSON:   GovernanceAction.ToJSON,
	FromJSON: GovernanceActionFromJSON,
	Equal:    GovernanceActionEqual,
	NotEqual: GovernanceActionNotEqual,
}

// ProposalProcedure is a governance proposal with its deposit and the reward account
// the deposit is returned to
type ProposalProcedure struct {
	Deposit          *big.Int
	ReturnAddr       common.Credential
	GovernanceAction GovernanceAction
}

func (p ProposalProcedure) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		codec.Integer.ToData(p.Deposit),
		p.ReturnAddr.ToPlutusData(),
		p.GovernanceAction.ToPlutusData(),
	)
}

func (p *ProposalProcedure) FromPlutusData(d plutusdata.Data) error {
	const name = "ProposalProcedure"
	fields, err := codec.ConstrFields(name, d, 0, 3)
	if err != nil {
		return err
	}
	var tmp ProposalProcedure
	if tmp.Deposit, err = codec.DecodeField(name, "deposit", fields[0], codec.Integer); err != nil {
		return err
	}
	if tmp.ReturnAddr, err = codec.DecodeField(name, "return_addr", fields[1], common.CredentialCodec); err != nil {
		return err
	}
	if tmp.GovernanceAction, err = codec.DecodeField(name, "governance_action", fields[2], GovernanceActionCodec); err != nil {
		return err
	}
	*p = tmp
	return nil
}

func (p ProposalProcedure) ToJSON() any {
	return map[string]any{
		"deposit":           codec.Integer.ToJSON(p.Deposit),
		"return_addr":       p.ReturnAddr.ToJSON(),
		"governance_action": p.GovernanceAction.ToJSON(),
	}
}

func (p *ProposalProcedure) FromJSON(v any) error {
	const name = "ProposalProcedure"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	var tmp ProposalProcedure
	if tmp.Deposit, err = codec.DecodeJSONField(name, obj, "deposit", codec.Integer); err != nil {
		return err
	}
	if tmp.ReturnAddr, err = codec.DecodeJSONField(name, obj, "return_addr", common.CredentialCodec); err != nil {
		return err
	}
	if tmp.GovernanceAction, err = codec.DecodeJSONField(name, obj, "governance_action", GovernanceActionCodec); err != nil {
		return err
	}
	*p = tmp
	return nil
}

func (p ProposalProcedure) Equal(o ProposalProcedure) bool {
	return codec.Integer.Equal(p.Deposit, o.Deposit) &&
		common.CredentialEqual(p.ReturnAddr, o.ReturnAddr) &&
		GovernanceActionEqual(p.GovernanceAction, o.GovernanceAction)
}

func (p ProposalProcedure) NotEqual(o ProposalProcedure) bool {
	return codec.Integer.NotEqual(p.Deposit, o.Deposit) ||
		common.CredentialNotEqual(p.ReturnAddr, o.ReturnAddr) ||
		GovernanceActionNotEqual(p.GovernanceAction, o.GovernanceAction)
}

func (p ProposalProcedure) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(p.ToJSON())
}

func (p *ProposalProcedure) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, p.FromJSON)
}

var ProposalProcedureCodec = codec.Record[ProposalProcedure]("ProposalProcedure")
