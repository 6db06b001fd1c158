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

package common

import (
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

const (
	CredentialTypePubKey = 0
	CredentialTypeScript = 1
)

// Credential identifies who may spend an output or withdraw rewards: either a key or a
// script
type Credential interface {
	isCredential()
	ToPlutusData() plutusdata.Data
	ToJSON() any
}

type PubKeyCredential struct {
	Hash PubKeyHash
}

func (PubKeyCredential) isCredential() {}

func (c PubKeyCredential) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		CredentialTypePubKey,
		PubKeyHashCodec.ToData(c.Hash),
	)
}

func (c PubKeyCredential) ToJSON() any {
	return codec.Constructor("PubKeyCredential", PubKeyHashCodec.ToJSON(c.Hash))
}

type ScriptCredential struct {
	Hash ScriptHash
}

func (ScriptCredential) isCredential() {}

func (c ScriptCredential) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		CredentialTypeScript,
		ScriptHashCodec.ToData(c.Hash),
	)
}

func (c ScriptCredential) ToJSON() any {
	return codec.Constructor("ScriptCredential", ScriptHashCodec.ToJSON(c.Hash))
}

func CredentialFromData(d plutusdata.Data) (Credential, error) {
	const name = "Credential"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	switch c.Index {
	case CredentialTypePubKey:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		hash, err := codec.DecodeField(name, "PubKeyCredential", c.Fields[0], PubKeyHashCodec)
		if err != nil {
			return nil, err
		}
		return PubKeyCredential{Hash: hash}, nil
	case CredentialTypeScript:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		hash, err := codec.DecodeField(name, "ScriptCredential", c.Fields[0], ScriptHashCodec)
		if err != nil {
			return nil, err
		}
		return ScriptCredential{Hash: hash}, nil
	default:
		return nil, codec.UnknownConstr(name, c)
	}
}

func CredentialFromJSON(v any) (Credential, error) {
	const name = "Credential"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	switch ctor {
	case "PubKeyCredential":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		hash, err := codec.DecodeJSONValue(name, ctor, fields[0], PubKeyHashCodec)
		if err != nil {
			return nil, err
		}
		return PubKeyCredential{Hash: hash}, nil
	case "ScriptCredential":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		hash, err := codec.DecodeJSONValue(name, ctor, fields[0], ScriptHashCodec)
		if err != nil {
			return nil, err
		}
		return ScriptCredential{Hash: hash}, nil
	default:
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
}

func CredentialEqual(a Credential, b Credential) bool {
	switch tmpA := a.(type) {
	case PubKeyCredential:
		tmpB, ok := b.(PubKeyCredential)
		return ok && PubKeyHashCodec.Equal(tmpA.Hash, tmpB.Hash)
	case ScriptCredential:
		tmpB, ok := b.(ScriptCredential)
		return ok && ScriptHashCodec.Equal(tmpA.Hash, tmpB.Hash)
	}
	return a == nil && b == nil
}

func CredentialNotEqual(a Credential, b Credential) bool {
	switch tmpA := a.(type) {
	case PubKeyCredential:
		tmpB, ok := b.(PubKeyCredential)
		return !ok || PubKeyHashCodec.NotEqual(tmpA.Hash, tmpB.Hash)
	case ScriptCredential:
		tmpB, ok := b.(ScriptCredential)
		return !ok || ScriptHashCodec.NotEqual(tmpA.Hash, tmpB.Hash)
	}
	return a != nil || b != nil
}

var CredentialCodec = codec.Codec[Credential]{
	Name:     "Credential",
	ToData:   Credential.ToPlutusData,
	FromData: CredentialFromData,
	ToJSON:   Credential.ToJSON,
	FromJSON: CredentialFromJSON,
	Equal:    CredentialEqual,
	NotEqual: CredentialNotEqual,
}

// StakingCredential identifies a stake address, either by credential or by the
// location of its registration certificate on chain
type StakingCredential interface {
	isStakingCredential()
	ToPlutusData() plutusdata.Data
	ToJSON() any
}

type StakingHash struct {
	Credential Credential
}

func (StakingHash) isStakingCredential() {}

func (s StakingHash) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(0, s.Credential.ToPlutusData())
}

func (s StakingHash) ToJSON() any {
	return codec.Constructor("StakingHash", s.Credential.ToJSON())
}

// StakingPtr points at a stake registration certificate
type StakingPtr struct {
	SlotNumber       *big.Int
	TransactionIndex *big.Int
	CertificateIndex *big.Int
}

func (StakingPtr) isStakingCredential() {}

func (s StakingPtr) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		1,
		codec.Integer.ToData(s.SlotNumber),
		codec.Integer.ToData(s.TransactionIndex),
		codec.Integer.ToData(s.CertificateIndex),
	)
}

func (s StakingPtr) ToJSON() any {
	return codec.Constructor(
		"StakingPtr",
		map[string]any{
			"slot_number":       codec.Integer.ToJSON(s.SlotNumber),
			"transaction_index": codec.Integer.ToJSON(s.TransactionIndex),
			"certificate_index": codec.Integer.ToJSON(s.CertificateIndex),
		},
	)
}

func StakingCredentialFromData(d plutusdata.Data) (StakingCredential, error) {
	const name = "StakingCredential"
	c, err := codec.ConstrOf(name, d)
	if err != nil {
		return nil, err
	}
	switch c.Index {
	case 0:
		if err := codec.CheckArity(name, c, 1); err != nil {
			return nil, err
		}
		cred, err := codec.DecodeField(name, "StakingHash", c.Fields[0], CredentialCodec)
		if err != nil {
			return nil, err
		}
		return StakingHash{Credential: cred}, nil
	case 1:
		if err := codec.CheckArity(name, c, 3); err != nil {
			return nil, err
		}
		var ret StakingPtr
		if ret.SlotNumber, err = codec.DecodeField(name, "StakingPtr[0]", c.Fields[0], codec.Integer); err != nil {
			return nil, err
		}
		if ret.TransactionIndex, err = codec.DecodeField(name, "StakingPtr[1]", c.Fields[1], codec.Integer); err != nil {
			return nil, err
		}
		if ret.CertificateIndex, err = codec.DecodeField(name, "StakingPtr[2]", c.Fields[2], codec.Integer); err != nil {
			return nil, err
		}
		return ret, nil
	default:
		return nil, codec.UnknownConstr(name, c)
	}
}

func StakingCredentialFromJSON(v any) (StakingCredential, error) {
	const name = "StakingCredential"
	ctor, fields, err := codec.CaseConstructor(name, v)
	if err != nil {
		return nil, err
	}
	switch ctor {
	case "StakingHash":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		cred, err := codec.DecodeJSONValue(name, ctor, fields[0], CredentialCodec)
		if err != nil {
			return nil, err
		}
		return StakingHash{Credential: cred}, nil
	case "StakingPtr":
		if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
			return nil, err
		}
		obj, err := codec.Object(name, fields[0])
		if err != nil {
			return nil, err
		}
		var ret StakingPtr
		if ret.SlotNumber, err = codec.DecodeJSONField(name, obj, "slot_number", codec.Integer); err != nil {
			return nil, err
		}
		if ret.TransactionIndex, err = codec.DecodeJSONField(name, obj, "transaction_index", codec.Integer); err != nil {
			return nil, err
		}
		if ret.CertificateIndex, err = codec.DecodeJSONField(name, obj, "certificate_index", codec.Integer); err != nil {
			return nil, err
		}
		return ret, nil
	default:
		return nil, codec.UnknownJSONConstructor(name, ctor, v)
	}
}

func StakingCredentialEqual(a StakingCredential, b StakingCredential) bool {
	switch tmpA := a.(type) {
	case StakingHash:
		tmpB, ok := b.(StakingHash)
		return ok && CredentialEqual(tmpA.Credential, tmpB.Credential)
	case StakingPtr:
		tmpB, ok := b.(StakingPtr)
		return ok &&
			codec.Integer.Equal(tmpA.SlotNumber, tmpB.SlotNumber) &&
			codec.Integer.Equal(tmpA.TransactionIndex, tmpB.TransactionIndex) &&
			codec.Integer.Equal(tmpA.CertificateIndex, tmpB.CertificateIndex)
	}
	return a == nil && b == nil
}

func StakingCredentialNotEqual(a StakingCredential, b StakingCredential) bool {
	switch tmpA := a.(type) {
	case StakingHash:
		tmpB, ok := b.(StakingHash)
		return !ok || CredentialNotEqual(tmpA.Credential, tmpB.Credential)
	case StakingPtr:
		tmpB, ok := b.(StakingPtr)
		return !ok ||
			codec.Integer.NotEqual(tmpA.SlotNumber, tmpB.SlotNumber) ||
			codec.Integer.NotEqual(tmpA.TransactionIndex, tmpB.TransactionIndex) ||
			codec.Integer.NotEqual(tmpA.CertificateIndex, tmpB.CertificateIndex)
	}
	return a != nil || b != nil
}

var StakingCredentialCodec = codec.Codec[StakingCredential]{
	Name:     "StakingCredential",
	ToData:   StakingCredential.ToPlutusData,
	FromData: StakingCredentialFromData,
	ToJSON:   StakingCredential.ToJSON,
	FromJSON: StakingCredentialFromJSON,
	Equal:    StakingCredentialEqual,
	NotEqual: StakingCredentialNotEqual,
}
