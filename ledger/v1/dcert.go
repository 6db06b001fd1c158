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

const (
	DCertTypeDelegRegKey   = 0
	DCertTypeDelegDeRegKey = 1
	DCertTypeDelegDelegate = 2
	DCertTypePoolRegister  = 3
	DCertTypePoolRetire    = 4
	DCertTypeGenesis       = 5
	DCertTypeMir           = 6
)

// DCert is a delegation certificate as seen by a script
type DCert interface {
	isDCert()
	ToPlutusData() plutusdata.Data
	ToJSON() any
}

type DCertDelegRegKey struct {
	StakingCredential common.StakingCredential
}

type DCertDelegDeRegKey struct {
	StakingCredential common.StakingCredential
}

type DCertDelegDelegate struct {
	Delegator common.StakingCredential
	Delegatee common.PubKeyHash
}

type DCertPoolRegister struct {
	PoolId  common.PubKeyHash
	PoolVrf common.PubKeyHash
}

type DCertPoolRetire struct {
	PoolId common.PubKeyHash
	Epoch  *big.Int
}

// DCertGenesis covers genesis key delegation certificates, which carry no data
type DCertGenesis struct{}

// DCertMir covers move instantaneous rewards certificates, which carry no data
type DCertMir struct{}

func (DCertDelegRegKey) isDCert()   {}
func (DCertDelegDeRegKey) isDCert() {}
func (DCertDelegDelegate) isDCert() {}
func (DCertPoolRegister) isDCert()  {}
func (DCertPoolRetire) isDCert()    {}
func (DCertGenesis) isDCert()       {}
func (DCertMir) isDCert()           {}

func (c DCertDelegRegKey) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(DCertTypeDelegRegKey, c.StakingCredential.ToPlutusData())
}

func (c DCertDelegDeRegKey) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(DCertTypeDelegDeRegKey, c.StakingCredential.ToPlutusData())
}

func (c DCertDelegDelegate) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		DCertTypeDelegDelegate,
		c.Delegator.ToPlutusData(),
		common.PubKeyHashCodec.ToData(c.Delegatee),
	)
}

func (c DCertPoolRegister) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		DCertTypePoolRegister,
		common.PubKeyHashCodec.ToData(c.PoolId),
		common.PubKeyHashCodec.ToData(c.PoolVrf),
	)
}

func (c DCertPoolRetire) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		DCertTypePoolRetire,
		common.PubKeyHashCodec.ToData(c.PoolId),
		codec.Integer.ToData(c.Epoch),
	)
}

func (DCertGenesis) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(DCertTypeGenesis)
}

func (DCertMir) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(DCertTypeMir)
}

func (c DCertDelegRegKey) ToJSON() any {
	return codec.Constructor("DCertDelegRegKey", c.StakingCredential.ToJSON())
}

func (c DCertDelegDeRegKey) ToJSON() any {
	return codec.Constructor("DCertDelegDeRegKey", c.StakingCredential.ToJSON())
}

func (c DCertDelegDelegate) ToJSON() any {
	return codec.Constructor(
		"DCertDelegDelegate",
		c.Delegator.ToJSON(),
		common.PubKeyHashCodec.ToJSON(c.Delegatee),
	)
}

func (c DCertPoolRegister) ToJSON() any {
	return codec.Constructor(
		"DCertPoolRegister",
		common.PubKeyHashCodec.ToJSON(c.PoolId),
		common.PubKeyHashCodec.ToJSON(c.PoolVrf),
	)
}

func (c DCertPoolRetire) ToJSON() any {
	return codec.Constructor(
		"DCertPoolRetire",
		common.PubKeyHashCodec.ToJSON(c.PoolId),
		codec.Integer.ToJSON(c.Epoch),
	)
}

func (DCertGenesis) ToJSON() any {
	return codec.Constructor("DCertGenesis")
}

func (DCertMir) ToJSON() any {
	return codec.Constructor("DCertMir")
}

func DCertFromData(d plutusdata.Data) (DCert, error) {
	const name = "DCert"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	switch c.Index {
	case DCertTypeDelegRegKey, DCertTypeDelegDeRegKey:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		if c.Index == DCertTypeDelegRegKey {
			cred, err := codec.DecodeField(name, "DCertDelegRegKey", c.Fields[0], common.StakingCredentialCodec)
			if err != nil {
				return nil, err
			}
			return DCertDelegRegKey{StakingCredential: cred}, nil
		}
		cred, err := codec.DecodeField(name, "DCertDelegDeRegKey", c.Fields[0], common.StakingCredentialCodec)
		if err != nil {
			return nil, err
		}
		return DCertDelegDeRegKey{StakingCredential: cred}, nil
	case DCertTypeDelegDelegate:
		if err := codec.CheckArity(name, c, 2); err != nil {
			return nil, err
		}
		var ret DCertDelegDelegate
		if ret.Delegator, err = codec.DecodeField(name, "DCertDelegDelegate[0]", c.Fields[0], common.StakingCredentialCodec); err != nil {
			return nil, err
		}
		if ret.Delegatee, err = codec.DecodeField(name, "DCertDelegDelegate[1]", c.Fields[1], common.PubKeyHashCodec); err != nil {
			return nil, err
		}
		return ret, nil
	case DCertTypePoolRegister:
		if err := codec.CheckArity(name, c, 2); err != nil {
			return nil, err
		}
		var ret DCertPoolRegister
		if ret.PoolId, err = codec.DecodeField(name, "DCertPoolRegister[0]", c.Fields[0], common.PubKeyHashCodec); err != nil {
			return nil, err
		}
		if ret.PoolVrf, err = codec.DecodeField(name, "DCertPoolRegister[1]", c.Fields[1], common.PubKeyHashCodec); err != nil {
			return nil, err
		}
		return ret, nil
	case DCertTypePoolRetire:
		if err := codec.CheckArity(name, c, 2); err != nil {
			return nil, err
		}
		var ret DCertPoolRetire
		if ret.PoolId, err = codec.DecodeField(name, "DCertPoolRetire[0]", c.Fields[0], common.PubKeyHashCodec); err != nil {
			return nil, err
		}
		if ret.Epoch, err = codec.DecodeField(name, "DCertPoolRetire[1]", c.Fields[1], codec.Integer); err != nil {
			return nil, err
		}
		return ret, nil
	case DCertTypeGenesis:
		if err := codec.CheckArity(name, c, 0); err != nil {
			return nil, err
		}
		return DCertGenesis{}, nil
	case DCertTypeMir:
		if err := codec.CheckArity(name, c, 0); err != nil {
			return nil, err
		}
		return DCertMir{}, nil
	default:
		return nil, codec.UnknownConstr(name, c)
	}
}

func DCertFromJSON(v any) (DCert, error) {
	const name = "DCert"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	switch ctor {
	case "DCertDelegRegKey":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		cred, err := codec.DecodeJSONValue(name, ctor, fields[0], common.StakingCredentialCodec)
		if err != nil {
			return nil, err
		}
		return DCertDelegRegKey{StakingCredential: cred}, nil
	case "DCertDelegDeRegKey":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		cred, err := codec.DecodeJSONValue(name, ctor, fields[0], common.StakingCredentialCodec)
		if err != nil {
			return nil, err
		}
		return DCertDelegDeRegKey{StakingCredential: cred}, nil
	case "DCertDelegDelegate":
		if err := codec.CheckJSONArity(name, ctor, fields, 2); err != nil {
			return nil, err
		}
		var ret DCertDelegDelegate
		if ret.Delegator, err = codec.DecodeJSONValue(name, ctor+"[0]", fields[0], common.StakingCredentialCodec); err != nil {
			return nil, err
		}
		if ret.Delegatee, err = codec.DecodeJSONValue(name, ctor+"[1]", fields[1], common.PubKeyHashCodec); err != nil {
			return nil, err
		}
		return ret, nil
	case "DCertPoolRegister":
		if err := codec.CheckJSONArity(name, ctor, fields, 2); err != nil {
			return nil, err
		}
		var ret DCertPoolRegister
		if ret.PoolId, err = codec.DecodeJSONValue(name, ctor+"[0]", fields[0], common.PubKeyHashCodec); err != nil {
			return nil, err
		}
		if ret.PoolVrf, err = codec.DecodeJSONValue(name, ctor+"[1]", fields[1], common.PubKeyHashCodec); err != nil {
			return nil, err
		}
		return ret, nil
	case "DCertPoolRetire":
		if err := codec.CheckJSONArity(name, ctor, fields, 2); err != nil {
			return nil, err
		}
		var ret DCertPoolRetire
		if ret.PoolId, err = codec.DecodeJSONValue(name, ctor+"[0]", fields[0], common.PubKeyHashCodec); err != nil {
			return nil, err
		}
		if ret.Epoch, err = codec.DecodeJSONValue(name, ctor+"[1]", fields[1], codec.Integer); err != nil {
			return nil, err
		}
		return ret, nil
	case "DCertGenesis":
		if err := codec.CheckJSONArity(name, ctor, fields, 0); err != nil {
			return nil, err
		}
		return DCertGenesis{}, nil
	case "DCertMir":
		if err := codec.CheckJSONArity(name, ctor, fields, 0); err != nil {
			return nil, err
		}
		return DCertMir{}, nil
	default:
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
}

func DCertEqual(a DCert, b DCert) bool {
	switch tmpA := a.(type) {
	case DCertDelegRegKey:
		tmpB, ok := b.(DCertDelegRegKey)
		return ok && common.StakingCredentialEqual(tmpA.StakingCredential, tmpB.StakingCredential)
	case DCertDelegDeRegKey:
		tmpB, ok := b.(DCertDelegDeRegKey)
		return ok && common.StakingCredentialEqual(tmpA.StakingCredential, tmpB.StakingCredential)
	case DCertDelegDelegate:
		tmpB, ok := b.(DCertDelegDelegate)
		return ok &&
			common.StakingCredentialEqual(tmpA.Delegator, tmpB.Delegator) &&
			common.PubKeyHashCodec.Equal(tmpA.Delegatee, tmpB.Delegatee)
	case DCertPoolRegister:
		tmpB, ok := b.(DCertPoolRegister)
		return ok &&
			common.PubKeyHashCodec.Equal(tmpA.PoolId, tmpB.PoolId) &&
			common.PubKeyHashCodec.Equal(tmpA.PoolVrf, tmpB.PoolVrf)
	case DCertPoolRetire:
		tmpB, ok := b.(DCertPoolRetire)
		return ok &&
			common.PubKeyHashCodec.Equal(tmpA.PoolId, tmpB.PoolId) &&
			codec.Integer.Equal(tmpA.Epoch, tmpB.Epoch)
	case DCertGenesis:
		_, ok := b.(DCertGenesis)
		return ok
	case DCertMir:
		_, ok := b.(DCertMir)
		return ok
	}
	return a == nil && b == nil
}

func DCertNotEqual(a DCert, b DCert) bool {
	switch tmpA := a.(type) {
	case DCertDelegRegKey:
		tmpB, ok := b.(DCertDelegRegKey)
		return !ok || common.StakingCredentialNotEqual(tmpA.StakingCredential, tmpB.StakingCredential)
	case DCertDelegDeRegKey:
		tmpB, ok := b.(DCertDelegDeRegKey)
		return !ok || common.StakingCredentialNotEqual(tmpA.StakingCredential, tmpB.StakingCredential)
	case DCertDelegDelegate:
		tmpB, ok := b.(DCertDelegDelegate)
		return !ok ||
			common.StakingCredentialNotEqual(tmpA.Delegator, tmpB.Delegator) ||
			common.PubKeyHashCodec.NotEqual(tmpA.Delegatee, tmpB.Delegatee)
	case DCertPoolRegister:
		tmpB, ok := b.(DCertPoolRegister)
		return !ok ||
			common.PubKeyHashCodec.NotEqual(tmpA.PoolId, tmpB.PoolId) ||
			common.PubKeyHashCodec.NotEqual(tmpA.PoolVrf, tmpB.PoolVrf)
	case DCertPoolRetire:
		tmpB, ok := b.(DCertPoolRetire)
		return !ok ||
			common.PubKeyHashCodec.NotEqual(tmpA.PoolId, tmpB.PoolId) ||
			codec.Integer.NotEqual(tmpA.Epoch, tmpB.Epoch)
	case DCertGenesis:
		_, ok := b.(DCertGenesis)
		return !ok
	case DCertMir:
		_, ok := b.(DCertMir)
		return !ok
	}
	return a != nil || b != nil
}

var DCertCodec = codec.Codec[DCert]{
	Name:     "DCert",
	ToData:   DCert.ToPlutusData,
	FromData: DCertFromData,
	ToJSON:   DCert.ToJSON,
	FromJSON: DCertFromJSON,
	Equal:    DCertEqual,
	NotEqual: DCertNotEqual,
}
