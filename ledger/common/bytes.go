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
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

const (
	PubKeyHashSize     = 28
	ScriptHashSize     = 28
	DatumHashSize      = 32
	RedeemerHashSize   = 32
	TxIdSize           = 32
	CurrencySymbolSize = 28
	TokenNameMaxSize   = 32
)

// LedgerBytes is an unrestricted byte string
type LedgerBytes []byte

// PubKeyHash is the blake2b-224 hash of a verification key
type PubKeyHash []byte

// ScriptHash is the blake2b-224 hash of a script
type ScriptHash []byte

// DatumHash is the blake2b-256 hash of a datum
type DatumHash []byte

// RedeemerHash is the blake2b-256 hash of a redeemer
type RedeemerHash []byte

// TxId is the blake2b-256 hash of a transaction body
type TxId []byte

// CurrencySymbol is the minting policy hash of an asset, or empty for ada
type CurrencySymbol []byte

// TokenName is the name of an asset within its currency. It is at most 32 bytes
type TokenName []byte

func (b LedgerBytes) String() string    { return hex.EncodeToString(b) }
func (b PubKeyHash) String() string     { return hex.EncodeToString(b) }
func (b ScriptHash) String() string     { return hex.EncodeToString(b) }
func (b DatumHash) String() string      { return hex.EncodeToString(b) }
func (b RedeemerHash) String() string   { return hex.EncodeToString(b) }
func (b TxId) String() string           { return hex.EncodeToString(b) }
func (b CurrencySymbol) String() string { return hex.EncodeToString(b) }
func (b TokenName) String() string      { return hex.EncodeToString(b) }

// PubKeyHashFromBytes returns false unless the input is exactly 28 bytes
func PubKeyHashFromBytes(b []byte) (PubKeyHash, bool) {
	return refine[PubKeyHash](b, exactly(PubKeyHashSize))
}

// ScriptHashFromBytes returns false unless the input is exactly 28 bytes
func ScriptHashFromBytes(b []byte) (ScriptHash, bool) {
	return refine[ScriptHash](b, exactly(ScriptHashSize))
}

// DatumHashFromBytes returns false unless the input is exactly 32 bytes
func DatumHashFromBytes(b []byte) (DatumHash, bool) {
	return refine[DatumHash](b, exactly(DatumHashSize))
}

// RedeemerHashFromBytes returns false unless the input is exactly 32 bytes
func RedeemerHashFromBytes(b []byte) (RedeemerHash, bool) {
	return refine[RedeemerHash](b, exactly(RedeemerHashSize))
}

// TxIdFromBytes returns false unless the input is exactly 32 bytes
func TxIdFromBytes(b []byte) (TxId, bool) {
	return refine[TxId](b, exactly(TxIdSize))
}

// CurrencySymbolFromBytes returns false unless the input is empty or exactly 28 bytes
func CurrencySymbolFromBytes(b []byte) (CurrencySymbol, bool) {
	return refine[CurrencySymbol](b, validCurrencySymbol)
}

// TokenNameFromBytes returns false if the input is longer than 32 bytes
func TokenNameFromBytes(b []byte) (TokenName, bool) {
	return refine[TokenName](b, validTokenName)
}

type lengthCheck struct {
	valid func(int) bool
	desc  string
}

func exactly(size int) lengthCheck {
	return lengthCheck{
		valid: func(n int) bool { return n == size },
		desc:  fmt.Sprintf("%d bytes", size),
	}
}

var (
	anyLength = lengthCheck{
		valid: func(int) bool { return true },
		desc:  "any length",
	}
	validCurrencySymbol = lengthCheck{
		valid: func(n int) bool { return n == 0 || n == CurrencySymbolSize },
		desc:  fmt.Sprintf("%d bytes or 0 bytes", CurrencySymbolSize),
	}
	validTokenName = lengthCheck{
		valid: func(n int) bool { return n <= TokenNameMaxSize },
		desc:  fmt.Sprintf("at most %d bytes", TokenNameMaxSize),
	}
)

func refine[T ~[]byte](b []byte, check lengthCheck) (T, bool) {
	if !check.valid(len(b)) {
		return nil, false
	}
	return T(bytes.Clone(b)), true
}

// refinedCodec builds the codec of a byte string type. The length is checked when
// decoding from both Data and JSON
func refinedCodec[T ~[]byte](name string, check lengthCheck) codec.Codec[T] {
	return codec.Codec[T]{
		Name: name,
		ToData: func(v T) plutusdata.Data {
			return plutusdata.NewBytes(v)
		},
		FromData: func(d plutusdata.Data) (T, error) {
			tmp, ok := d.(plutusdata.Bytes)
			if !ok {
				return nil, plutusdata.NewDecodeError(name, "expected Bytes", d)
			}
			if !check.valid(len(tmp.Value)) {
				return nil, plutusdata.NewDecodeError(
					name,
					fmt.Sprintf(
						"%s should be %s, found %d bytes",
						name,
						check.desc,
						len(tmp.Value),
					),
					d,
				)
			}
			return T(tmp.Value), nil
		},
		ToJSON: func(v T) any {
			return hex.EncodeToString(v)
		},
		FromJSON: func(v any) (T, error) {
			b, err := codec.BytesFromJSON(v)
			if err != nil {
				return nil, err
			}
			if !check.valid(len(b)) {
				return nil, codec.NewJSONError(
					name,
					fmt.Sprintf("%s should be %s, found %d bytes", name, check.desc, len(b)),
					v,
				)
			}
			return T(b), nil
		},
		Equal: func(a T, b T) bool {
			return bytes.Equal(a, b)
		},
		NotEqual: func(a T, b T) bool {
			return !bytes.Equal(a, b)
		},
	}
}

var (
	LedgerBytesCodec    = refinedCodec[LedgerBytes]("LedgerBytes", anyLength)
	PubKeyHashCodec     = refinedCodec[PubKeyHash]("PubKeyHash", exactly(PubKeyHashSize))
	ScriptHashCodec     = refinedCodec[ScriptHash]("ScriptHash", exactly(ScriptHashSize))
	DatumHashCodec      = refinedCodec[DatumHash]("DatumHash", exactly(DatumHashSize))
	RedeemerHashCodec   = refinedCodec[RedeemerHash]("RedeemerHash", exactly(RedeemerHashSize))
	TxIdCodec           = refinedCodec[TxId]("TxId", exactly(TxIdSize))
	CurrencySymbolCodec = refinedCodec[CurrencySymbol]("CurrencySymbol", validCurrencySymbol)
	TokenNameCodec      = refinedCodec[TokenName]("TokenName", validTokenName)
)
