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

package plutusdata

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

// ToUtxorpc converts the value into its UTxO RPC representation. Constructor tags use
// the CBOR tag numbering, with the general form carrying the alternative separately
func ToUtxorpc(d Data) (*utxorpc.PlutusData, error) {
	switch v := d.(type) {
	case Constr:
		tagNum, general := cbor.AlternativeToTag(v.Index)
		if tagNum > math.MaxUint32 {
			return nil, fmt.Errorf("constructor tag %d out of range", tagNum)
		}
		constr := &utxorpc.Constr{
			Tag: uint32(tagNum),
		}
		if general {
			constr.AnyConstructor = v.Index
		}
		for _, field := range v.Fields {
			tmp, err := ToUtxorpc(field)
			if err != nil {
				return nil, err
			}
			constr.Fields = append(constr.Fields, tmp)
		}
		return &utxorpc.PlutusData{
			PlutusData: &utxorpc.PlutusData_Constr{Constr: constr},
		}, nil
	case Map:
		ret := &utxorpc.PlutusDataMap{}
		for _, pair := range v.Pairs {
			key, err := ToUtxorpc(pair.Key)
			if err != nil {
				return nil, err
			}
			value, err := ToUtxorpc(pair.Value)
			if err != nil {
				return nil, err
			}
			ret.Pairs = append(
				ret.Pairs,
				&utxorpc.PlutusDataPair{Key: key, Value: value},
			)
		}
		return &utxorpc.PlutusData{
			PlutusData: &utxorpc.PlutusData_Map{Map: ret},
		}, nil
	case List:
		ret := &utxorpc.PlutusDataArray{}
		for _, item := range v.Items {
			tmp, err := ToUtxorpc(item)
			if err != nil {
				return nil, err
			}
			ret.Items = append(ret.Items, tmp)
		}
		return &utxorpc.PlutusData{
			PlutusData: &utxorpc.PlutusData_Array{Array: ret},
		}, nil
	case Bytes:
		return &utxorpc.PlutusData{
			PlutusData: &utxorpc.PlutusData_BoundedBytes{
				BoundedBytes: v.Value,
			},
		}, nil
	case Integer:
		return &utxorpc.PlutusData{
			PlutusData: &utxorpc.PlutusData_BigInt{
				BigInt: BigIntToUtxorpc(v.Int()),
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown plutus data type: %T", d)
	}
}

// FromUtxorpc converts a UTxO RPC value back into a Data value
func FromUtxorpc(pd *utxorpc.PlutusData) (Data, error) {
	if pd == nil {
		return nil, errors.New("nil UTxO RPC plutus data")
	}
	switch v := pd.GetPlutusData().(type) {
	case *utxorpc.PlutusData_Constr:
		index, ok := cbor.TagToAlternative(uint64(v.Constr.GetTag()))
		if !ok {
			if v.Constr.GetTag() != cbor.CborTagAlternative3 {
				return nil, fmt.Errorf(
					"unsupported constructor tag %d",
					v.Constr.GetTag(),
				)
			}
			index = v.Constr.GetAnyConstructor()
		}
		fields := make([]Data, 0, len(v.Constr.GetFields()))
		for _, field := range v.Constr.GetFields() {
			tmp, err := FromUtxorpc(field)
			if err != nil {
				return nil, err
			}
			fields = append(fields, tmp)
		}
		return Constr{Index: index, Fields: fields}, nil
	case *utxorpc.PlutusData_Map:
		pairs := make([]Pair, 0, len(v.Map.GetPairs()))
		for _, pair := range v.Map.GetPairs() {
			key, err := FromUtxorpc(pair.GetKey())
			if err != nil {
				return nil, err
			}
			value, err := FromUtxorpc(pair.GetValue())
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Key: key, Value: value})
		}
		return Map{Pairs: pairs}, nil
	case *utxorpc.PlutusData_Array:
		items := make([]Data, 0, len(v.Array.GetItems()))
		for _, item := range v.Array.GetItems() {
			tmp, err := FromUtxorpc(item)
			if err != nil {
				return nil, err
			}
			items = append(items, tmp)
		}
		return List{Items: items}, nil
	case *utxorpc.PlutusData_BoundedBytes:
		return NewBytes(v.BoundedBytes), nil
	case *utxorpc.PlutusData_BigInt:
		tmp, err := BigIntFromUtxorpc(v.BigInt)
		if err != nil {
			return nil, err
		}
		return Integer{Value: tmp}, nil
	default:
		return nil, fmt.Errorf("unsupported UTxO RPC plutus data type: %T", v)
	}
}

// BigIntToUtxorpc converts a *big.Int into a *utxorpc.BigInt pointer. Negative values
// outside the int64 range use the CBOR negative bignum convention of storing -1 - n
func BigIntToUtxorpc(v *big.Int) *utxorpc.BigInt {
	if v == nil {
		return &utxorpc.BigInt{
			BigInt: &utxorpc.BigInt_Int{Int: 0},
		}
	}
	// If it fits in int64, use the compact representation
	if v.IsInt64() {
		return &utxorpc.BigInt{
			BigInt: &utxorpc.BigInt_Int{Int: v.Int64()},
		}
	}
	if v.Sign() > 0 {
		return &utxorpc.BigInt{
			BigInt: &utxorpc.BigInt_BigUInt{
				BigUInt: v.Bytes(),
			},
		}
	}
	n := new(big.Int).Neg(v)
	n.Sub(n, big.NewInt(1))
	return &utxorpc.BigInt{
		BigInt: &utxorpc.BigInt_BigNInt{
			BigNInt: n.Bytes(),
		},
	}
}

// BigIntFromUtxorpc is the inverse of BigIntToUtxorpc
func BigIntFromUtxorpc(v *utxorpc.BigInt) (*big.Int, error) {
	if v == nil {
		return nil, errors.New("nil UTxO RPC big integer")
	}
	switch tmp := v.GetBigInt().(type) {
	case *utxorpc.BigInt_Int:
		return big.NewInt(tmp.Int), nil
	case *utxorpc.BigInt_BigUInt:
		return new(big.Int).SetBytes(tmp.BigUInt), nil
	case *utxorpc.BigInt_BigNInt:
		ret := new(big.Int).SetBytes(tmp.BigNInt)
		ret.Add(ret, big.NewInt(1))
		return ret.Neg(ret), nil
	default:
		return nil, fmt.Errorf("unsupported UTxO RPC big integer type: %T", tmp)
	}
}
