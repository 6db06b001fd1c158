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

// Package registry maps type names to type-erased codecs for every ledger type, for
// tooling that picks the type to decode at runtime.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	v1 "github.com/blinklabs-io/plutus-ledger-api/ledger/v1"
	v2 "github.com/blinklabs-io/plutus-ledger-api/ledger/v2"
	v3 "github.com/blinklabs-io/plutus-ledger-api/ledger/v3"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

var ErrWrongType = errors.New("value has the wrong type for schema")

// Schema is a codec with its value type erased
type Schema struct {
	Name     string
	FromData func(plutusdata.Data) (any, error)
	ToData   func(any) (plutusdata.Data, error)
	FromJSON func(any) (any, error)
	ToJSON   func(any) (any, error)
	Equal    func(any, any) bool
}

func erase[T any](name string, c codec.Codec[T]) Schema {
	cast := func(v any) (T, error) {
		ret, ok := v.(T)
		if !ok {
			return ret, fmt.Errorf("%w %s: %T", ErrWrongType, name, v)
		}
		return ret, nil
	}
	return Schema{
		Name: name,
		FromData: func(d plutusdata.Data) (any, error) {
			return c.FromData(d)
		},
		ToData: func(v any) (plutusdata.Data, error) {
			tmp, err := cast(v)
			if err != nil {
				return nil, err
			}
			return c.ToData(tmp), nil
		},
		FromJSON: func(v any) (any, error) {
			return c.FromJSON(v)
		},
		ToJSON: func(v any) (any, error) {
			tmp, err := cast(v)
			if err != nil {
				return nil, err
			}
			return c.ToJSON(tmp), nil
		},
		Equal: func(a any, b any) bool {
			tmpA, errA := cast(a)
			tmpB, errB := cast(b)
			if errA != nil || errB != nil {
				return false
			}
			return c.Equal(tmpA, tmpB)
		},
	}
}

// DecodeCbor decodes CBOR bytes into a value of the schema type
func (s Schema) DecodeCbor(data []byte, opts ...plutusdata.DecodeOption) (any, error) {
	d, err := plutusdata.Decode(data, opts...)
	if err != nil {
		return nil, err
	}
	return s.FromData(d)
}

// EncodeCbor returns the canonical CBOR encoding of a value of the schema type
func (s Schema) EncodeCbor(v any) ([]byte, error) {
	d, err := s.ToData(v)
	if err != nil {
		return nil, err
	}
	return plutusdata.Encode(d)
}

var schemas = map[string]Schema{}

func register[T any](name string, c codec.Codec[T]) {
	schemas[name] = erase(name, c)
}

func init() {
	register("PlutusData", codec.Data)

	register("common.LedgerBytes", common.LedgerBytesCodec)
	register("common.PubKeyHash", common.PubKeyHashCodec)
	register("common.ScriptHash", common.ScriptHashCodec)
	register("common.DatumHash", common.DatumHashCodec)
	register("common.RedeemerHash", common.RedeemerHashCodec)
	register("common.CurrencySymbol", common.CurrencySymbolCodec)
	register("common.TokenName", common.TokenNameCodec)
	register("common.Credential", common.CredentialCodec)
	register("common.StakingCredential", common.StakingCredentialCodec)
	register("common.Address", common.AddressCodec)
	register("common.AssetClass", common.AssetClassCodec)
	register("common.Value", common.ValueCodec)
	register("common.POSIXTimeRange", common.POSIXTimeRangeCodec)
	register("common.Rational", common.RationalCodec)
	register("common.Datum", common.DatumCodec)
	register("common.Redeemer", common.RedeemerCodec)

	register("v1.TxId", v1.TxIdCodec)
	register("v1.TxOutRef", v1.TxOutRefCodec)
	register("v1.TxOut", v1.TxOutCodec)
	register("v1.TxInInfo", v1.TxInInfoCodec)
	register("v1.DCert", v1.DCertCodec)
	register("v1.TxInfo", v1.TxInfoCodec)
	register("v1.ScriptPurpose", v1.ScriptPurposeCodec)
	register("v1.ScriptContext", v1.ScriptContextCodec)

	register("v2.OutputDatum", v2.OutputDatumCodec)
	register("v2.TxOut", v2.TxOutCodec)
	register("v2.TxInInfo", v2.TxInInfoCodec)
	register("v2.TxInfo", v2.TxInfoCodec)
	register("v2.ScriptContext", v2.ScriptContextCodec)

	register("v3.TxId", v3.TxIdCodec)
	register("v3.TxOutRef", v3.TxOutRefCodec)
	register("v3.TxInInfo", v3.TxInInfoCodec)
	register("v3.DRep", v3.DRepCodec)
	register("v3.Delegatee", v3.DelegateeCodec)
	register("v3.TxCert", v3.TxCertCodec)
	register("v3.Voter", v3.VoterCodec)
	register("v3.Vote", v3.VoteCodec)
	register("v3.GovernanceActionId", v3.GovernanceActionIdCodec)
	register("v3.Committee", v3.CommitteeCodec)
	register("v3.Constitution", v3.ConstitutionCodec)
	register("v3.ProtocolVersion", v3.ProtocolVersionCodec)
	register("v3.GovernanceAction", v3.GovernanceActionCodec)
	register("v3.ProposalProcedure", v3.ProposalProcedureCodec)
	register("v3.ScriptPurpose", v3.ScriptPurposeCodec)
	register("v3.ScriptInfo", v3.ScriptInfoCodec)
	register("v3.TxInfo", v3.TxInfoCodec)
	register("v3.ScriptContext", v3.ScriptContextCodec)
}

// Lookup returns the schema registered under a name
func Lookup(name string) (Schema, bool) {
	s, ok := schemas[name]
	return s, ok
}

// Names returns the registered names in sorted order
func Names() []string {
	return slices.Sorted(maps.Keys(schemas))
}
