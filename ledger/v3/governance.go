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
	"fmt"
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// DRep is the target of a vote delegation
type DRep interface {
	isDRep()
	ToPlutusData() plutusdata.Data
	ToJSON() any
}

// DRepCredential is a registered delegated representative
type DRepCredential struct {
	Credential common.Credential
}

type DRepAlwaysAbstain struct{}

type DRepAlwaysNoConfidence struct{}

func (DRepCredential) isDRep()         {}
func (DRepAlwaysAbstain) isDRep()      {}
func (DRepAlwaysNoConfidence) isDRep() {}

func (d DRepCredential) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(0, d.Credential.ToPlutusData())
}

func (DRepAlwaysAbstain) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(1)
}

func (DRepAlwaysNoConfidence) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(2)
}

func (d DRepCredential) ToJSON() any {
	return codec.Constructor("DRep", d.Credential.ToJSON())
}

func (DRepAlwaysAbstain) ToJSON() any {
	return codec.Constructor("AlwaysAbstain")
}

func (DRepAlwaysNoConfidence) ToJSON() any {
	return codec.Constructor("AlwaysNoConfidence")
}

func DRepFromData(d plutusdata.Data) (DRep, error) {
	const name = "DRep"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	switch c.Index {
	case 0:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		cred, err := codec.DecodeField(name, "DRep", c.Fields[0], common.CredentialCodec)
		if err != nil {
			return nil, err
		}
		return DRepCredential{Credential: cred}, nil
	case 1:
		if err := codec.CheckArity(name, c, 0); err != nil {
			return nil, err
		}
		return DRepAlwaysAbstain{}, nil
	case 2:
		if err := codec.CheckArity(name, c, 0); err != nil {
			return nil, err
		}
		return DRepAlwaysNoConfidence{}, nil
	default:
		return nil, codec.UnknownConstr(name, c)
	}
}

func DRepFromJSON(v any) (DRep, error) {
	const name = "DRep"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	switch ctor {
	case "DRep":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		cred, err := codec.DecodeJSONValue(name, ctor, fields[0], common.CredentialCodec)
		if err != nil {
			return nil, err
		}
		return DRepCredential{Credential: cred}, nil
	case "AlwaysAbstain":
		if err := codec.CheckJSONArity(name, ctor, fields, 0); err != nil {
			return nil, err
		}
		return DRepAlwaysAbstain{}, nil
	case "AlwaysNoConfidence":
		if err := codec.CheckJSONArity(name, ctor, fields, 0); err != nil {
			return nil, err
		}
		return DRepAlwaysNoConfidence{}, nil
	default:
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
}

func DRepEqual(a DRep, b DRep) bool {
	switch tmpA := a.(type) {
	case DRepCredential:
		tmpB, ok := b.(DRepCredential)
		return ok && common.CredentialEqual(tmpA.Credential, tmpB.Credential)
	case DRepAlwaysAbstain:
		_, ok := b.(DRepAlwaysAbstain)
		return ok
	case DRepAlwaysNoConfidence:
		_, ok := b.(DRepAlwaysNoConfidence)
		return ok
	}
	return a == nil && b == nil
}

func DRepNotEqual(a DRep, b DRep) bool {
	switch tmpA := a.(type) {
	case DRepCredential:
		tmpB, ok := b.(DRepCredential)
		return !ok || common.CredentialNotEqual(tmpA.Credential, tmpB.Credential)
	case DRepAlwaysAbstain:
		_, ok := b.(DRepAlwaysAbstain)
		return !ok
	case DRepAlwaysNoConfidence:
		_, ok := b.(DRepAlwaysNoConfidence)
		return !ok
	}
	return a != nil || b != nil
}

var DRepCodec = codec.Codec[DRep]{
	Name:     "DRep",
	ToData:   DRep.ToPlutusData,
	FromData: DRepFromData,
	ToJSON:   DRep.ToJSON,
	FromJSON: DRepFromJSON,
	Equal:    DRepEqual,
	NotEqual: DRepNotEqual,
}

// Delegatee is what a stake credential delegates to: a pool, a DRep, or both
type Delegatee interface {
	isDelegatee()
	ToPlutusData() plutusdata.Data
	ToJSON() any
}

type DelegStake struct {
	PoolId common.PubKeyHash
}

type DelegVote struct {
	DRep DRep
}

type DelegStakeVote struct {
	PoolId common.PubKeyHash
	DRep   DRep
}

func (DelegStake) isDelegatee()     {}
func (DelegVote) isDelegatee()      {}
func (DelegStakeVote) isDelegatee() {}

func (d DelegStake) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(0, common.PubKeyHashCodec.ToData(d.PoolId))
}

func (d DelegVote) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(1, d.DRep.ToPlutusData())
}

func (d DelegStakeVote) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		2,
		common.PubKeyHashCodec.ToData(d.PoolId),
		d.DRep.ToPlutusData(),
	)
}

func (d DelegStake) ToJSON() any {
	return codec.Constructor("Stake", common.PubKeyHashCodec.ToJSON(d.PoolId))
}

func (d DelegVote) ToJSON() any {
	return codec.Constructor("Vote", d.DRep.ToJSON())
}

func (d DelegStakeVote) ToJSON() any {
	return codec.Constructor(
		"StakeVote",
		common.PubKeyHashCodec.ToJSON(d.PoolId),
		d.DRep.ToJSON(),
	)
}

func DelegateeFromData(d plutusdata.Data) (Delegatee, error) {
	const name = "Delegatee"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	switch c.Index {
	case 0:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		pool, err := codec.DecodeField(name, "Stake", c.Fields[0], common.PubKeyHashCodec)
		if err != nil {
			return nil, err
		}
		return DelegStake{PoolId: pool}, nil
	case 1:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		drep, err := codec.DecodeField(name, "Vote", c.Fields[0], DRepCodec)
		if err != nil {
			return nil, err
		}
		return DelegVote{DRep: drep}, nil
	case 2:
		if err := codec.CheckArity(name, c, 2); err != nil {
			return nil, err
		}
		var ret DelegStakeVote
		if ret.PoolId, err = codec.DecodeField(name, "StakeVote[0]", c.Fields[0], common.PubKeyHashCodec); err != nil {
			return nil, err
		}
		if ret.DRep, err = codec.DecodeField(name, "StakeVote[1]", c.Fields[1], DRepCodec); err != nil {
			return nil, err
		}
		return ret, nil
	default:
		return nil, codec.UnknownConstr(name, c)
	}
}

func DelegateeFromJSON(v any) (Delegatee, error) {
	const name = "Delegatee"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	switch ctor {
	case "Stake":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		pool, err := codec.DecodeJSONValue(name, ctor, fields[0], common.PubKeyHashCodec)
		if err != nil {
			return nil, err
		}
		return DelegStake{PoolId: pool}, nil
	case "Vote":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		drep, err := codec.DecodeJSONValue(name, ctor, fields[0], DRepCodec)
		if err != nil {
			return nil, err
		}
		return DelegVote{DRep: drep}, nil
	case "StakeVote":
		if err := codec.CheckJSONArity(name, ctor, fields, 2); err != nil {
			return nil, err
		}
		var ret DelegStakeVote
		if ret.PoolId, err = codec.DecodeJSONValue(name, ctor+"[0]", fields[0], common.PubKeyHashCodec); err != nil {
			return nil, err
		}
		if ret.DRep, err = codec.DecodeJSONValue(name, ctor+"[1]", fields[1], DRepCodec); err != nil {
			return nil, err
		}
		return ret, nil
	default:
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
}

func DelegateeEqual(a Delegatee, b Delegatee) bool {
	switch tmpA := a.(type) {
	case DelegStake:
		tmpB, ok := b.(DelegStake)
		return ok && common.PubKeyHashCodec.Equal(tmpA.PoolId, tmpB.PoolId)
	case DelegVote:
		tmpB, ok := b.(DelegVote)
		return ok && DRepEqual(tmpA.DRep, tmpB.DRep)
	case DelegStakeVote:
		tmpB, ok := b.(DelegStakeVote)
		return ok &&
			common.PubKeyHashCodec.Equal(tmpA.PoolId, tmpB.PoolId) &&
			DRepEqual(tmpA.DRep, tmpB.DRep)
	}
	return a == nil && b == nil
}

func DelegateeNotEqual(a Delegatee, b Delegatee) bool {
	switch tmpA := a.(type) {
	case DelegStake:
		tmpB, ok := b.(DelegStake)
		return !ok || common.PubKeyHashCodec.NotEqual(tmpA.PoolId, tmpB.PoolId)
	case DelegVote:
		tmpB, ok := b.(DelegVote)
		return !ok || DRepNotEqual(tmpA.DRep, tmpB.DRep)
	case DelegStakeVote:
		tmpB, ok := b.(DelegStakeVote)
		return !ok ||
			common.PubKeyHashCodec.NotEqual(tmpA.PoolId, tmpB.PoolId) ||
			DRepNotEqual(tmpA.DRep, tmpB.DRep)
	}
	return a != nil || b != nil
}

var DelegateeCodec = codec.Codec[Delegatee]{
	Name:     "Delegatee",
	ToData:   Delegatee.ToPlutusData,
	FromData: DelegateeFromData,
	ToJSON:   Delegatee.ToJSON,
	FromJSON: DelegateeFromJSON,
	Equal:    DelegateeEqual,
	NotEqual: DelegateeNotEqual,
}

// Voter is the author of a governance vote
type Voter interface {
	isVoter()
	ToPlutusData() plutusdata.Data
	ToJSON() any
}

// CommitteeVoter votes with a constitutional committee hot credential
type CommitteeVoter struct {
	Credential common.Credential
}

type DRepVoter struct {
	Credential common.Credential
}

type StakePoolVoter struct {
	PoolId common.PubKeyHash
}

func (CommitteeVoter) isVoter() {}
func (DRepVoter) isVoter()      {}
func (StakePoolVoter) isVoter() {}

func (v CommitteeVoter) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(0, v.Credential.ToPlutusData())
}

func (v DRepVoter) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(1, v.Credential.ToPlutusData())
}

func (v StakePoolVoter) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(2, common.PubKeyHashCodec.ToData(v.PoolId))
}

func (v CommitteeVoter) ToJSON() any {
	return codec.Constructor("CommitteeVoter", v.Credential.ToJSON())
}

func (v DRepVoter) ToJSON() any {
	return codec.Constructor("DRepVoter", v.Credential.ToJSON())
}

func (v StakePoolVoter) ToJSON() any {
	return codec.Constructor("StakePoolVoter", common.PubKeyHashCodec.ToJSON(v.PoolId))
}

func VoterFromData(d plutusdata.Data) (Voter, error) {
	const name = "Voter"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	if c.Index > 2 {
		return nil, codec.UnknownConstr(name, c)
	}
	if err := codec.CheckArity(name, c, 1); err != nil {
		return nil, err
	}
	switch c.Index {
	case 0:
		cred, err := codec.DecodeField(name, "CommitteeVoter", c.Fields[0], common.CredentialCodec)
		if err != nil {
			return nil, err
		}
		return CommitteeVoter{Credential: cred}, nil
	case 1:
		cred, err := codec.DecodeField(name, "DRepVoter", c.Fields[0], common.CredentialCodec)
		if err != nil {
			return nil, err
		}
		return DRepVoter{Credential: cred}, nil
	default:
		pool, err := codec.DecodeField(name, "StakePoolVoter", c.Fields[0], common.PubKeyHashCodec)
		if err != nil {
			return nil, err
		}
		return StakePoolVoter{PoolId: pool}, nil
	}
}

func VoterFromJSON(v any) (Voter, error) {
	const name = "Voter"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	switch ctor {
	case "CommitteeVoter", "DRepVoter", "StakePoolVoter":
	default:
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
	if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
		return nil, err
	}
	switch ctor {
	case "CommitteeVoter":
		cred, err := codec.DecodeJSONValue(name, ctor, fields[0], common.CredentialCodec)
		if err != nil {
			return nil, err
		}
		return CommitteeVoter{Credential: cred}, nil
	case "DRepVoter":
		cred, err := codec.DecodeJSONValue(name, ctor, fields[0], common.CredentialCodec)
		if err != nil {
			return nil, err
		}
		return DRepVoter{Credential: cred}, nil
	default:
		pool, err := codec.DecodeJSONValue(name, ctor, fields[0], common.PubKeyHashCodec)
		if err != nil {
			return nil, err
		}
		return StakePoolVoter{PoolId: pool}, nil
	}
}

func VoterEqual(a Voter, b Voter) bool {
	switch tmpA := a.(type) {
	case CommitteeVoter:
		tmpB, ok := b.(CommitteeVoter)
		return ok && common.CredentialEqual(tmpA.Credential, tmpB.Credential)
	case DRepVoter:
		tmpB, ok := b.(DRepVoter)
		return ok && common.CredentialEqual(tmpA.Credential, tmpB.Credential)
	case StakePoolVoter:
		tmpB, ok := b.(StakePoolVoter)
		return ok && common.PubKeyHashCodec.Equal(tmpA.PoolId, tmpB.PoolId)
	}
	return a == nil && b == nil
}

func VoterNotEqual(a Voter, b Voter) bool {
	switch tmpA := a.(type) {
	case CommitteeVoter:
		tmpB, ok := b.(CommitteeVoter)
		return !ok || common.CredentialNotEqual(tmpA.Credential, tmpB.Credential)
	case DRepVoter:
		tmpB, ok := b.(DRepVoter)
		return !ok || common.CredentialNotEqual(tmpA.Credential, tmpB.Credential)
	case StakePoolVoter:
		tmpB, ok := b.(StakePoolVoter)
		return !ok || common.PubKeyHashCodec.NotEqual(tmpA.PoolId, tmpB.PoolId)
	}
	return a != nil || b != nil
}

var VoterCodec = codec.Codec[Voter]{
	Name:     "Voter",
	ToData:   Voter.ToPlutusData,
	FromData: VoterFromData,
	ToJSON:   Voter.ToJSON,
	FromJSON: VoterFromJSON,
	Equal:    VoterEqual,
	NotEqual: VoterNotEqual,
}

// Vote is a ballot on a governance action
type Vote uint8

const (
	VoteNo  Vote = 0
	VoteYes Vote = 1
	Abstain Vote = 2
)

var voteNames = []string{"VoteNo", "VoteYes", "Abstain"}

func (v Vote) String() string {
	if int(v) < len(voteNames) {
		return voteNames[v]
	}
	return fmt.Sprintf("Vote(%d)", uint8(v))
}

func (v Vote) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(uint64(v))
}

func (v Vote) ToJSON() any {
	return codec.Constructor(v.String())
}

func VoteFromData(d plutusdata.Data) (Vote, error) {
	const name = "Vote"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return 0, err
	}
	if c.Index >= uint64(len(voteNames)) {
		return 0, codec.UnknownConstr(name, c)
	}
	if err := codec.CheckArity(name, c, 0); err != nil {
		return 0, err
	}
	return Vote(c.Index), nil
}

func VoteFromJSON(v any) (Vote, error) {
	const name = "Vote"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return 0, err
	}
	for i, voteName := range voteNames {
		if voteName == ctor {
			if err := codec.CheckJSONArity(name, ctor, fields, 0); err != nil {
				return 0, err
			}
			return Vote(i), nil
		}
	}
	return 0, codec.UnknownJSONConstructor(name, ctor, v)
}

var VoteCodec = codec.Codec[Vote]{
	Name:     "Vote",
	ToData:   Vote.ToPlutusData,
	FromData: VoteFromData,
	ToJSON:   Vote.ToJSON,
	FromJSON: VoteFromJSON,
	Equal: func(a Vote, b Vote) bool {
		return a == b
	},
	NotEqual: func(a Vote, b Vote) bool {
		return a != b
	},
}

// GovernanceActionId identifies a proposal by the transaction that submitted it and
// its position within that transaction
type GovernanceActionId struct {
	TxId        TxId
	GovActionIx *big.Int
}

func (g GovernanceActionId) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		TxIdCodec.ToData(g.TxId),
		codec.Integer.ToData(g.GovActionIx),
	)
}

func (g *GovernanceActionId) FromPlutusData(d plutusdata.Data) error {
	const name = "GovernanceActionId"
	fields, err := codec.ConstrFields(name, d, 0, 2)
	if err != nil {
		return err
	}
	txId, err := codec.DecodeField(name, "gaidTxId", fields[0], TxIdCodec)
	if err != nil {
		return err
	}
	idx, err := codec.DecodeField(name, "gaidGovActionIx", fields[1], codec.Integer)
	if err != nil {
		return err
	}
	g.TxId = txId
	g.GovActionIx = idx
	return nil
}

func (g GovernanceActionId) ToJSON() any {
	return map[string]any{
		"gaidTxId":        TxIdCodec.ToJSON(g.TxId),
		"gaidGovActionIx": codec.Integer.ToJSON(g.GovActionIx),
	}
}

func (g *GovernanceActionId) FromJSON(v any) error {
	const name = "GovernanceActionId"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	txId, err := codec.DecodeJSONField(name, obj, "gaidTxId", TxIdCodec)
	if err != nil {
		return err
	}
	idx, err := codec.DecodeJSONField(name, obj, "gaidGovActionIx", codec.Integer)
	if err != nil {
		return err
	}
	g.TxId = txId
	g.GovActionIx = idx
	return nil
}

func (g GovernanceActionId) Equal(o GovernanceActionId) bool {
	return TxIdCodec.Equal(g.TxId, o.TxId) && codec.Integer.Equal(g.GovActionIx, o.GovActionIx)
}

func (g GovernanceActionId) NotEqual(o GovernanceActionId) bool {
	return TxIdCodec.NotEqual(g.TxId, o.TxId) || codec.Integer.NotEqual(g.GovActionIx, o.GovActionIx)
}

func (g GovernanceActionId) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(g.ToJSON())
}

func (g *GovernanceActionId) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, g.FromJSON)
}

var GovernanceActionIdCodec = codec.Record[GovernanceActionId]("GovernanceActionId")

// Committee is the constitutional committee: member cold credentials with the epoch
// their term ends, and the quorum
type Committee struct {
	Members CommitteeMembers
	Quorum  *big.Int
}

func (c Committee) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		CommitteeMembersCodec.ToData(c.Members),
		codec.Integer.ToData(c.Quorum),
	)
}

func (c *Committee) FromPlutusData(d plutusdata.Data) error {
	const name = "Committee"
	fields, err := codec.ConstrFields(name, d, 0, 2)
	if err != nil {
		return err
	}
	members, err := codec.DecodeField(name, "members", fields[0], CommitteeMembersCodec)
	if err != nil {
		return err
	}
	quorum, err := codec.DecodeField(name, "quorum", fields[1], codec.Integer)
	if err != nil {
		return err
	}
	c.Members = members
	c.Quorum = quorum
	return nil
}

func (c Committee) ToJSON() any {
	return map[string]any{
		"members": CommitteeMembersCodec.ToJSON(c.Members),
		"quorum":  codec.Integer.ToJSON(c.Quorum),
	}
}

func (c *Committee) FromJSON(v any) error {
	const name = "Committee"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	members, err := codec.DecodeJSONField(name, obj, "members", CommitteeMembersCodec)
	if err != nil {
		return err
	}
	quorum, err := codec.DecodeJSONField(name, obj, "quorum", codec.Integer)
	if err != nil {
		return err
	}
	c.Members = members
	c.Quorum = quorum
	return nil
}

func (c Committee) Equal(o Committee) bool {
	return CommitteeMembersCodec.Equal(c.Members, o.Members) && codec.Integer.Equal(c.Quorum, o.Quorum)
}

func (c Committee) NotEqual(o Committee) bool {
	return CommitteeMembersCodec.NotEqual(c.Members, o.Members) || codec.Integer.NotEqual(c.Quorum, o.Quorum)
}

func (c Committee) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(c.ToJSON())
}

func (c *Committee) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, c.FromJSON)
}

var CommitteeCodec = codec.Record[Committee]("Committee")

// Constitution references the guardrail script, if any
type Constitution struct {
	Script codec.Maybe[common.ScriptHash]
}

func (c Constitution) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(0, maybeScriptHashCodec.ToData(c.Script))
}

func (c *Constitution) FromPlutusData(d plutusdata.Data) error {
	const name = "Constitution"
	fields, err := codec.ConstrFields(name, d, 0, 1)
	if err != nil {
		return err
	}
	script, err := codec.DecodeField(name, "script", fields[0], maybeScriptHashCodec)
	if err != nil {
		return err
	}
	c.Script = script
	return nil
}

func (c Constitution) ToJSON() any {
	return map[string]any{
		"script": maybeScriptHashCodec.ToJSON(c.Script),
	}
}

func (c *Constitution) FromJSON(v any) error {
	const name = "Constitution"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	script, err := codec.DecodeJSONField(name, obj, "script", maybeScriptHashCodec)
	if err != nil {
		return err
	}
	c.Script = script
	return nil
}

func (c Constitution) Equal(o Constitution) bool {
	return maybeScriptHashCodec.Equal(c.Script, o.Script)
}

func (c Constitution) NotEqual(o Constitution) bool {
	return maybeScriptHashCodec.NotEqual(c.Script, o.Script)
}

func (c Constitution) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(c.ToJSON())
}

func (c *Constitution) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, c.FromJSON)
}

var ConstitutionCodec = codec.Record[Constitution]("Constitution")

type ProtocolVersion struct {
	Major *big.Int
	Minor *big.Int
}

func (p ProtocolVersion) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		codec.Integer.ToData(p.Major),
		codec.Integer.ToData(p.Minor),
	)
}

func (p *ProtocolVersion) FromPlutusData(d plutusdata.Data) error {
	const name = "ProtocolVersion"
	fields, err := codec.ConstrFields(name, d, 0, 2)
	if err != nil {
		return err
	}
	major, err := codec.DecodeField(name, "major", fields[0], codec.Integer)
	if err != nil {
		return err
	}
	minor, err := codec.DecodeField(name, "minor", fields[1], codec.Integer)
	if err != nil {
		return err
	}
	p.Major = major
	p.Minor = minor
	return nil
}

func (p ProtocolVersion) ToJSON() any {
	return map[string]any{
		"major": codec.Integer.ToJSON(p.Major),
		"minor": codec.Integer.ToJSON(p.Minor),
	}
}

func (p *ProtocolVersion) FromJSON(v any) error {
	const name = "ProtocolVersion"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	major, err := codec.DecodeJSONField(name, obj, "major", codec.Integer)
	if err != nil {
		return err
	}
	minor, err := codec.DecodeJSONField(name, obj, "minor", codec.Integer)
	if err != nil {
		return err
	}
	p.Major = major
	p.Minor = minor
	return nil
}

func (p ProtocolVersion) Equal(o ProtocolVersion) bool {
	return codec.Integer.Equal(p.Major, o.Major) && codec.Integer.Equal(p.Minor, o.Minor)
}

func (p ProtocolVersion) NotEqual(o ProtocolVersion) bool {
	return codec.Integer.NotEqual(p.Major, o.Major) || codec.Integer.NotEqual(p.Minor, o.Minor)
}

func (p ProtocolVersion) String() string {
	return fmt.Sprintf("%s.%s", p.Major, p.Minor)
}

func (p ProtocolVersion) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(p.ToJSON())
}

func (p *ProtocolVersion) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, p.FromJSON)
}

var ProtocolVersionCodec = codec.Record[ProtocolVersion]("ProtocolVersion")
