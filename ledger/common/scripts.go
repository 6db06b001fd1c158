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
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"golang.org/x/crypto/blake2b"
)

// Datum is the data attached to a script-locked output
type Datum = plutusdata.Data

// Redeemer is the data passed to a script by the spending transaction
type Redeemer = plutusdata.Data

var (
	DatumCodec    = renamed(codec.Data, "Datum")
	RedeemerCodec = renamed(codec.Data, "Redeemer")
)

func renamed[T any](c codec.Codec[T], name string) codec.Codec[T] {
	c.Name = name
	return c
}

type ScriptLanguage uint8

// The language tag is prepended to the script bytes when hashing
const (
	ScriptLanguageNative   ScriptLanguage = 0
	ScriptLanguagePlutusV1 ScriptLanguage = 1
	ScriptLanguagePlutusV2 ScriptLanguage = 2
	ScriptLanguagePlutusV3 ScriptLanguage = 3
)

const VerificationKeySize = 32

// DatumHashOf returns the blake2b-256 hash of the canonical encoding of a datum
func DatumHashOf(d Datum) (DatumHash, error) {
	hash, err := plutusdata.Hash(d)
	if err != nil {
		return nil, err
	}
	return DatumHash(hash), nil
}

// RedeemerHashOf returns the blake2b-256 hash of the canonical encoding of a redeemer
func RedeemerHashOf(r Redeemer) (RedeemerHash, error) {
	hash, err := plutusdata.Hash(r)
	if err != nil {
		return nil, err
	}
	return RedeemerHash(hash), nil
}

// ScriptHashOf returns the hash of a serialized script of the given language
func ScriptHashOf(lang ScriptLanguage, script []byte) ScriptHash {
	return ScriptHash(blake2b224Hash([]byte{byte(lang)}, script))
}

// PubKeyHashFromVerificationKey returns the hash of an ed25519 verification key. The
// key must be a valid encoding of a curve point
func PubKeyHashFromVerificationKey(vkey []byte) (PubKeyHash, error) {
	if len(vkey) != VerificationKeySize {
		return nil, fmt.Errorf(
			"verification key should be %d bytes, found %d",
			VerificationKeySize,
			len(vkey),
		)
	}
	if _, err := new(edwards25519.Point).SetBytes(vkey); err != nil {
		return nil, errors.New("verification key is not a valid ed25519 point")
	}
	return PubKeyHash(blake2b224Hash(vkey)), nil
}

func blake2b224Hash(data ...[]byte) []byte {
	tmpHash, err := blake2b.New(PubKeyHashSize, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	for _, tmp := range data {
		tmpHash.Write(tmp)
	}
	return tmpHash.Sum(nil)
}
