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
	TxCertTypeRegStaking          = 0
	TxCertTypeUnRegStaking        = 1
	TxCertTypeDelegStaking        = 2
	TxCertTypeRegDeleg            = 3
	TxCertTypeRegDRep             = 4
	TxCertTypeUpdateDRep          = 5
	TxCertTypeUnRegDRep           = 6
	TxCertTypePoolRegister        = 7
	TxCertTypePoolRetire          = 8
	TxCertTypeAuthHotCommittee    = 9
	TxCertTypeResignColdCommittee = 10
)

// Constructor names and field counts by constructor index
var (
	txCertNames = []string{
		"RegStaking",
		"UnRegStaking",
		"DelegStaking",
		"RegDeleg",
		"RegDRep",
		"UpdateDRep",
		"UnRegDRep",
		"PoolRegister",
		"PoolRetire",
		"AuthHotCommittee",
		"ResignColdCommittee",
	}
	txCertArity = []int{2, 2, 2, 3, 2, 1, 2, 2, 2, 2, 1}
)

var maybeIntegerCodec = codec.MaybeOf(codec.Integer)

// TxCert is a certificate as seen by a script
type TxCert interface {
	isTxCert()
	ToPlutusData() plutusdata.Data
	ToJSON() any
}

// TxCertRegStaking registers a stake credential. The deposit is only present in the
// newer form of the certificate
type TxCertRegStaking struct {
	Credential common.Credential
	Deposit    codec.Maybe[*big.Int]
}

type TxCertUnRegStaking struct {
	Credential common.Credential
	Refund     codec.Maybe[*big.Int]
}

type TxCertDelegStaking struct {
	Credential common.Credential
	Delegatee  Delegatee
}

// TxCertRegDeleg registers a stake credential and delegates it in one certificate
type TxCertRegDeleg struct {
	Credential common.Credential
	Delegatee  Delegatee
	Deposit    *big.Int
}

type TxCertRegDRep struct {
	Credential common.Credential
	Deposit    *big.Int
}

type TxCertUpdateDRep struct {
	Credential common.Credential
}

type TxCertUnRegDRep struct {
	Credential common.Credential
	Refund     *big.Int
}

type TxCertPoolRegister struct {
	PoolId  common.PubKeyHash
	PoolVrf common.PubKeyHash
}

type TxCertPoolRetire struct {
	PoolId common.PubKeyHash
	Epoch  *big.Int
}

type TxCertAuthHotCommittee struct {
	Cold common.Credential
	Hot  common.Credential
}

type TxCertResignColdCommittee struct {
	Cold common.Credential
}

func (TxCertRegStaking) isTxCert()          {}
func (TxCertUnRegStaking) isTxCert()        {}
func (TxCertDelegStaking) isTxCert()        {}
func (TxCertRegDeleg) isTxCert()            {}
func (TxCertRegDRep) isTxCert()             {}
func (TxCertUpdateDRep) isTxCert()          {}
func (TxCertUnRegDRep) isTxCert()           {}
func (TxCertPoolRegister) isTxCert()        {}
func (TxCertPoolRetire) isTxCert()          {}
func (TxCertAuthHotCommittee) isTxCert()    {}
func (TxCertResignColdCommittee) isTxCert() {}

func (c TxCertRegStaking) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		TxCertTypeRegStaking,
		c.Credential.ToPlutusData(),
		maybeIntegerCodec.ToData(c.Deposit),
	)
}

func (c TxCertUnRegStaking) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		TxCertTypeUnRegStaking,
		c.Credential.ToPlutusData(),
		maybeIntegerCodec.ToData(c.Refund),
	)
}

func (c TxCertDelegStaking) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		TxCertTypeDelegStaking,
		c.Credential.ToPlutusData(),
		c.Delegatee.ToPlutusData(),
	)
}

func (c TxCertRegDeleg) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		TxCertTypeRegDeleg,
		c.Credential.ToPlutusData(),
		c.Delegatee.ToPlutusData(),
		codec.Integer.ToData(c.Deposit),
	)
}

func (c TxCertRegDRep) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		TxCertTypeRegDRep,
		c.Credential.ToPlutusData(),
		codec.Integer.ToData(c.Deposit),
	)
}

func (c TxCertUpdateDRep) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(TxCertTypeUpdateDRep, c.Credential.ToPlutusData())
}

func (c TxCertUnRegDRep) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		TxCertTypeUnRegDRep,
		c.Credential.ToPlutusData(),
		codec.Integer.ToData(c.Refund),
	)
}

func (c TxCertPoolRegister) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		TxCertTypePoolRegister,
		common.PubKeyHashCodec.ToData(c.PoolId),
		common.PubKeyHashCodec.ToData(c.PoolVrf),
	)
}

func (c TxCertPoolRetire) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		TxCertTypePoolRetire,
		common.PubKeyHashCodec.ToData(c.PoolId),
		codec.Integer.ToData(c.Epoch),
	)
}

func (c TxCertAuthHotCommittee) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		TxCertTypeAuthHotCommittee,
		c.Cold.ToPlutusData(),
		c.Hot.ToPlutusData(),
	)
}

func (c TxCertResignColdCommittee) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(TxCertTypeResignColdCommittee, c.Cold.ToPlutusData())
}

func (c TxCertRegStaking) ToJSON() any {
	return codec.Constructor(
		"RegStaking",
		c.Credential.ToJSON(),
		maybeIntegerCodec.ToJSON(c.Deposit),
	)
}

func (c TxCertUnRegStaking) ToJSON() any {
	return codec.Constructor(
		"UnRegStaking",
		c.Credential.ToJSON(),
		maybeIntegerCodec.ToJSON(c.Refund),
	)
}

func (c TxCertDelegStaking) ToJSON() any {
	return codec.Constructor(
		"DelegStaking",
		c.Credential.ToJSON(),
		c.Delegatee.ToJSON(),
	)
}

func (c TxCertRegDeleg) ToJSON() any {
	return codec.Constructor(
		"RegDeleg",
		c.Credential.ToJSON(),
		c.Delegatee.ToJSON(),
		codec.Integer.ToJSON(c.Deposit),
	)
}

func (c TxCertRegDRep) ToJSON() any {
	return codec.Constructor(
		"RegDRep",
		c.Credential.ToJSON(),
		codec.Integer.ToJSON(c.Deposit),
	)
}

func (c TxCertUpdateDRep) ToJSON() any {
	return codec.Constructor("UpdateDRep", c.Credential.ToJSON())
}

func (c TxCertUnRegDRep) ToJSON() any {
	return codec.Constructor(
		"UnRegDRep",
		c.Credential.ToJSON(),
		codec.Integer.ToJSON(c.Refund),
	)
}

func (c TxCertPoolRegister) ToJSON() any {
	return codec.Constructor(
		"PoolRegister",
		common.PubKeyHashCodec.ToJSON(c.PoolId),
		common.PubKeyHashCodec.ToJSON(c.PoolVrf),
	)
}

func (c TxCertPoolRetire) ToJSON() any {
	return codec.Constructor(
		"PoolRetire",
		common.PubKeyHashCodec.ToJSON(c.PoolId),
		codec.Integer.ToJSON(c.Epoch),
	)
}

func (c TxCertAuthHotCommittee) ToJSON() any {
	return codec.Constructor(
		"AuthHotCommittee",
		c.Cold.ToJSON(),
		c.Hot.ToJSON(),
	)
}

func (c TxCertResignColdCommittee) ToJSON() any {
	return codec.Constructor("ResignColdCommittee", c.Cold.ToJSON())
}

// txCertFields decodes certificate fields by position, from either encoding
type txCertFields struct {
	credential   func(int) (common.Credential, error)
	maybeInteger func(int) (codec.Maybe[*big.Int], error)
	delegatee    func(int) (Delegatee, error)
	integer      func(int) (*big.Int, error)
	pubKeyHash   func(int) (common.PubKeyHash, error)
}

func (f txCertFields) build(index uint64) (TxCert, error) {
	var err error
	switch index {
	case TxCertTypeRegStaking:
		var ret TxCertRegStaking
		if ret.Credential, err = f.credential(0); err != nil {
			return nil, err
		}
		if ret.Deposit, err = f.maybeInteger(1); err != nil {
			return nil, err
		}
		return ret, nil
	case TxCertTypeUnRegStaking:
		var ret TxCertUnRegStaking
		if ret.Credential, err = f.credential(0); err != nil {
			return nil, err
		}
		if ret.Refund, err = f.maybeInteger(1); err != nil {
			return nil, err
		}
		return ret, nil
	case TxCertTypeDelegStaking:
		var ret TxCertDelegStaking
		if ret.Credential, err = f.credential(0); err != nil {
			return nil, err
		}
		if ret.Delegatee, err = f.delegatee(1); err != nil {
			return nil, err
		}
		return ret, nil
	case TxCertTypeRegDeleg:
		var ret TxCertRegDeleg
		if ret.Credential, err = f.credential(0); err != nil {
			return nil, err
		}
		if ret.Delegatee, err = f.delegatee(1); err != nil {
			return nil, err
		}
		if ret.Deposit, err = f.integer(2); err != nil {
			return nil, err
		}
		return ret, nil
	case TxCertTypeRegDRep:
		var ret TxCertRegDRep
		if ret.Credential, err = f.credential(0); err != nil {
			return nil, err
		}
		if ret.Deposit, err = f.integer(1); err != nil {
			return nil, err
		}
		return ret, nil
	case TxCertTypeUpdateDRep:
		var ret TxCertUpdateDRep
		if ret.Credential, err = f.credential(0); err != nil {
			return nil, err
		}
		return ret, nil
	case TxCertTypeUnRegDRep:
		var ret TxCertUnRegDRep
		if ret.Credential, err = f.credential(0); err != nil {
			return nil, err
		}
		if ret.Refund, err = f.integer(1); err != nil {
			return nil, err
		}
		return ret, nil
	case TxCertTypePoolRegister:
		var ret TxCertPoolRegister
		if ret.PoolId, err = f.pubKeyHash(0); err != nil {
			return nil, err
		}
		if ret.PoolVrf, err = f.pubKeyHash(1); err != nil {
			return nil, err
		}
		return ret, nil
	case TxCertTypePoolRetire:
		var ret TxCertPoolRetire
		if ret.PoolId, err = f.pubKeyHash(0); err != nil {
			return nil, err
		}
		if ret.Epoch, err = f.integer(1); err != nil {
			return nil, err
		}
		return ret, nil
	case TxCertTypeAuthHotCommittee:
		var ret TxCertAuthHotCommittee
		if ret.Cold, err = f.credential(0); err != nil {
			return nil, err
		}
		if ret.Hot, err = f.credential(1); err != nil {
			return nil, err
		}
		return ret, nil
	default:
		var ret TxCertResignColdCommittee
		if ret.Cold, err = f.credential(0); err != nil {
			return nil, err
		}
		return ret, nil
	}
}

func TxCertFromData(d plutusdata.Data) (TxCert, error) {
	const name = "TxCert"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	if c.Index >= uint64(len(txCertNames)) {
		return nil, codec.UnknownConstr(name, c)
	}
	if err := codec.CheckArity(name, c, txCertArity[c.Index]); err != nil {
		return nil, err
	}
	variant := txCertNames[c.Index]
	f := txCertFields{
		credential:   dataFieldDecoder(name, variant, c.Fields, common.CredentialCodec),
		maybeInteger: dataFieldDecoder(name, variant, c.Fields, maybeIntegerCodec),
		delegatee:    dataFieldDecoder(name, variant, c.Fields, DelegateeCodec),
		integer:      dataFieldDecoder(name, variant, c.Fields, codec.Integer),
		pubKeyHash:   dataFieldDecoder(name, variant, c.Fields, common.PubKeyHashCodec),
	}
	return f.build(c.Index)
}

func TxCertFromJSON(v any) (TxCert, error) {
	const name = "TxCert"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	index := slices.Index(txCertNames, ctor)
	if index < 0 {
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
	if err := codec.CheckJSONArity(name, ctor, fields, txCertArity[index]); err != nil {
		return nil, err
	}
	f := txCertFields{
		credential:   jsonFieldDecoder(name, ctor, fields, common.CredentialCodec),
		maybeInteger: jsonFieldDecoder(name, ctor, fields, maybeIntegerCodec),
		delegatee:    jsonFieldDecoder(name, ctor, fields, DelegateeCodec),
		integer:      jsonFieldDecoder(name, ctor, fields, codec.Integer),
		pubKeyHash:   jsonFieldDecoder(name, ctor, fields, common.PubKeyHashCodec),
	}
	return f.build(uint64(index))
}

func TxCertEqual(a TxCert, b TxCert) bool {
	switch tmpA := a.(type) {
	case TxCertRegStaking:
		tmpB, ok := b.(TxCertRegStaking)
		return ok &&
			common.CredentialEqual(tmpA.Credential, tmpB.Credential) &&
			maybeIntegerCodec.Equal(tmpA.Deposit, tmpB.Deposit)
	case TxCertUnRegStaking:
		tmpB, ok := b.(TxCertUnRegStaking)
		return ok &&
			common.CredentialEqual(tmpA.Credential, tmpB.Credential) &&
			maybeIntegerCodec.Equal(tmpA.Refund, tmpB.Refund)
	case TxCertDelegStaking:
		tmpB, ok := b.(TxCertDelegStaking)
		return ok &&
			common.CredentialEqual(tmpA.Credential, tmpB.Credential) &&
			DelegateeEqual(tmpA.Delegatee, tmpB.Delegatee)
	case TxCertRegDeleg:
		tmpB, ok := b.(TxCertRegDeleg)
		return ok &&
			common.CredentialEqual(tmpA.Credential, tmpB.Credential) &&
			DelegateeEqual(tmpA.Delegatee, tmpB.Delegatee) &&
			codec.Integer.Equal(tmpA.Deposit, tmpB.Deposit)
	case TxCertRegDRep:
		tmpB, ok := b.(TxCertRegDRep)
		return ok &&
			common.CredentialEqual(tmpA.Credential, tmpB.Credential) &&
			codec.Integer.Equal(tmpA.Deposit, tmpB.Deposit)
	case TxCertUpdateDRep:
		tmpB, ok := b.(TxCertUpdateDRep)
		return ok && common.CredentialEqual(tmpA.Credential, tmpB.Credential)
	case TxCertUnRegDRep:
		tmpB, ok := b.(TxCertUnRegDRep)
		return ok &&
			common.CredentialEqual(tmpA.Credential, tmpB.Credential) &&
			codec.Integer.Equal(tmpA.Refund, tmpB.Refund)
	case TxCertPoolRegister:
		tmpB, ok := b.(TxCertPoolRegister)
		return ok &&
			common.PubKeyHashCodec.Equal(tmpA.PoolId, tmpB.PoolId) &&
			common.PubKeyHashCodec.Equal(tmpA.PoolVrf, tmpB.PoolVrf)
	case TxCertPoolRetire:
		tmpB, ok := b.(TxCertPoolRetire)
		return ok &&
			common.PubKeyHashCodec.Equal(tmpA.PoolId, tmpB.PoolId) &&
			codec.Integer.Equal(tmpA.Epoch, tmpB.Epoch)
	case TxCertAuthHotCommittee:
		tmpB, ok := b.(TxCertAuthHotCommittee)
		return ok &&
			common.CredentialEqual(tmpA.Cold, tmpB.Cold) &&
			common.CredentialEqual(tmpA.Hot, tmpB.Hot)
	case TxCertResignColdCommittee:
		tmpB, ok := b.(TxCertResignColdCommittee)
		return ok && common.CredentialEqual(tmpA.Cold, tmpB.Cold)
	}
	return a == nil && b == nil
}

func TxCertNotEqual(a TxCert, b TxCert) bool {
	switch tmpA := a.(type) {
	case TxCertRegStaking:
		tmpB, ok := b.(TxCertRegStaking)
		return !ok ||
			common.CredentialNotEqual(tmpA.Credential, tmpB.Credential) ||
			maybeIntegerCodec.NotEqual(tmpA.Deposit, tmpB.Deposit)
	case TxCertUnRegStaking:
		tmpB, ok := b.(TxCertUnRegStaking)
		return !ok ||
			common.CredentialNotEqual(tmpA.Credential, tmpB.Credential) ||
			maybeIntegerCodec.NotEqual(tmpA.Refund, tmpB.Refund)
	case TxCertDelegStaking:
		tmpB, ok := b.(TxCertDelegStaking)
		return !ok ||
			common.CredentialNotEqual(tmpA.Credential, tmpB.Credential) ||
			DelegateeNotEqual(tmpA.Delegatee, tmpB.Delegatee)
	case TxCertRegDeleg:
		tmpB, ok := b.(TxCertRegDeleg)
		return !ok ||
			common.CredentialNotEqual(tmpA.Credential, tmpB.Credential) ||
			DelegateeNotEqual(tmpA.Delegatee, tmpB.Delegatee) ||
			codec.Integer.NotEqual(tmpA.Deposit, tmpB.Deposit)
	case TxCertRegDRep:
		tmpB, ok := b.(TxCertRegDRep)
		return !ok ||
			common.CredentialNotEqual(tmpA.Credential, tmpB.Credential) ||
			codec.Integer.NotEqual(tmpA.Deposit, tmpB.Deposit)
	case TxCertUpdateDRep:
		tmpB, ok := b.(TxCertUpdateDRep)
		return !ok || common.CredentialNotEqual(tmpA.Credential, tmpB.Credential)
	case TxCertUnRegDRep:
		tmpB, ok := b.(TxCertUnRegDRep)
		return !ok ||
			common.CredentialNotEqual(tmpA.Credential, tmpB.Credential) ||
			codec.Integer.NotEqual(tmpA.Refund, tmpB.Refund)
	case TxCertPoolRegister:
		tmpB, ok := b.(TxCertPoolRegister)
		return !ok ||
			common.PubKeyHashCodec.NotEqual(tmpA.PoolId, tmpB.PoolId) ||
			common.PubKeyHashCodec.NotEqual(tmpA.PoolVrf, tmpB.PoolVrf)
	case TxCertPoolRetire:
		tmpB, ok := b.(TxCertPoolRetire)
		return !ok ||
			common.PubKeyHashCodec.NotEqual(tmpA.PoolId, tmpB.PoolId) ||
			codec.Integer.NotEqual(tmpA.Epoch, tmpB.Epoch)
	case TxCertAuthHotCommittee:
		tmpB, ok := b.(TxCertAuthHotCommittee)
		return !ok ||
			common.CredentialNotEqual(tmpA.Cold, tmpB.Cold) ||
			common.CredentialNotEqual(tmpA.Hot, tmpB.Hot)
	case TxCertResignColdCommittee:
		tmpB, ok := b.(TxCertResignColdCommittee)
		return !ok || common.CredentialNotEqual(tmpA.Cold, tmpB.Cold)
	}
	return a != nil || b != nil
}

var TxCertCodec = codec.Codec[TxCert]{
	Name:     "TxCert",
	ToData:   TxCert.ToPlutusData,
	FromData: TxCertFromData,
	ToJSON:   TxCert.ToJSON,
	FromJSON: TxCertFromJSON,
	Equal:    TxCertEqual,
	NotEqual: TxCertNotEqual,
}
