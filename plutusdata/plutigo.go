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

	"github.com/blinklabs-io/plutigo/data"
)

// ToPlutigo converts the value into the data type used by the plutigo script evaluator
func ToPlutigo(d Data) (data.PlutusData, error) {
	switch v := d.(type) {
	case Constr:
		if v.Index > math.MaxUint {
			return nil, fmt.Errorf("constructor index %d out of range", v.Index)
		}
		fields := make([]data.PlutusData, 0, len(v.Fields))
		for _, field := range v.Fields {
			tmp, err := ToPlutigo(field)
			if err != nil {
				return nil, err
			}
			fields = append(fields, tmp)
		}
		return data.NewConstr(uint(v.Index), fields...), nil
	case Map:
		pairs := make([][2]data.PlutusData, 0, len(v.Pairs))
		for _, pair := range v.Pairs {
			key, err := ToPlutigo(pair.Key)
			if err != nil {
				return nil, err
			}
			value, err := ToPlutigo(pair.Value)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, [2]data.PlutusData{key, value})
		}
		return data.NewMap(pairs), nil
	case List:
		items := make([]data.PlutusData, 0, len(v.Items))
		for _, item := range v.Items {
			tmp, err := ToPlutigo(item)
			if err != nil {
				return nil, err
			}
			items = append(items, tmp)
		}
		return data.NewList(items...), nil
	case Bytes:
		return data.NewByteString(v.Value), nil
	case Integer:
		return data.NewInteger(v.Int()), nil
	default:
		return nil, fmt.Errorf("unknown plutus data type: %T", d)
	}
}

// FromPlutigo converts a plutigo data value. Both pointer and value forms of the plutigo
// variants are accepted
func FromPlutigo(pd data.PlutusData) (Data, error) {
	switch v := pd.(type) {
	case *data.Constr:
		if v == nil {
			break
		}
		return FromPlutigo(*v)
	case data.Constr:
		fields := make([]Data, 0, len(v.Fields))
		for _, field := range v.Fields {
			tmp, err := FromPlutigo(field)
			if err != nil {
				return nil, err
			}
			fields = append(fields, tmp)
		}
		return Constr{Index: uint64(v.Tag), Fields: fields}, nil
	case *data.Map:
		if v == nil {
			break
		}
		return FromPlutigo(*v)
	case data.Map:
		pairs := make([]Pair, 0, len(v.Pairs))
		for _, pair := range v.Pairs {
			key, err := FromPlutigo(pair[0])
			if err != nil {
				return nil, err
			}
			value, err := FromPlutigo(pair[1])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Key: key, Value: value})
		}
		return Map{Pairs: pairs}, nil
	case *data.List:
		if v == nil {
			break
		}
		return FromPlutigo(*v)
	case data.List:
		items := make([]Data, 0, len(v.Items))
		for _, item := range v.Items {
			tmp, err := FromPlutigo(item)
			if err != nil {
				return nil, err
			}
			items = append(items, tmp)
		}
		return List{Items: items}, nil
	case *data.ByteString:
		if v == nil {
			break
		}
		return NewBytes(v.Inner), nil
	case data.ByteString:
		return NewBytes(v.Inner), nil
	case *data.Integer:
		if v == nil {
			break
		}
		return FromPlutigo(*v)
	case data.Integer:
		if v.Inner == nil {
			return nil, errors.New("plutigo integer has no value")
		}
		return NewInteger(new(big.Int).Set(v.Inner)), nil
	}
	return nil, fmt.Errorf("unsupported plutigo data type: %T", pd)
}
