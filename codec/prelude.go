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

package codec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math"
	"math/big"
	"strconv"

	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// Integer is the codec of arbitrary-precision integers. A nil value is treated as zero
var Integer = Codec[*big.Int]{
	Name: "Integer",
	ToData: func(v *big.Int) plutusdata.Data {
		return plutusdata.NewInteger(new(big.Int).Set(bigOrZero(v)))
	},
	FromData: IntegerFromData,
	ToJSON: func(v *big.Int) any {
		return json.Number(bigOrZero(v).String())
	},
	FromJSON: IntegerFromJSON,
	Equal: func(a *big.Int, b *big.Int) bool {
		return bigOrZero(a).Cmp(bigOrZero(b)) == 0
	},
	NotEqual: func(a *big.Int, b *big.Int) bool {
		return bigOrZero(a).Cmp(bigOrZero(b)) != 0
	},
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// IntegerFromData decodes an Integer value into a new *big.Int
func IntegerFromData(d plutusdata.Data) (*big.Int, error) {
	tmp, ok := d.(plutusdata.Integer)
	if !ok {
		return nil, plutusdata.NewDecodeError("Integer", "expected Integer", d)
	}
	return new(big.Int).Set(tmp.Int()), nil
}

// IntegerFromJSON decodes a JSON number with no fractional part or exponent
func IntegerFromJSON(v any) (*big.Int, error) {
	switch tmp := v.(type) {
	case json.Number:
		ret, ok := new(big.Int).SetString(string(tmp), 10)
		if !ok {
			return nil, NewJSONError("Integer", "expected an integer", v)
		}
		return ret, nil
	case float64:
		// Values parsed without UseNumber
		if tmp != math.Trunc(tmp) || math.Abs(tmp) > 1<<53 {
			return nil, NewJSONError("Integer", "expected an exact integer", v)
		}
		return big.NewInt(int64(tmp)), nil
	case int:
		return big.NewInt(int64(tmp)), nil
	case int64:
		return big.NewInt(tmp), nil
	default:
		return nil, NewJSONError("Integer", "expected a number", v)
	}
}

// Bool is encoded as Constr 0 [] for false and Constr 1 [] for true
var Bool = Codec[bool]{
	Name: "Bool",
	ToData: func(v bool) plutusdata.Data {
		if v {
			return plutusdata.NewConstr(1)
		}
		return plutusdata.NewConstr(0)
	},
	FromData: func(d plutusdata.Data) (bool, error) {
		c, err := ConstrOf("Bool", d)
		if err != nil {
			return false, err
		}
		if err := CheckArity("Bool", c, 0); err != nil {
			return false, err
		}
		switch c.Index {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return false, UnknownConstr("Bool", c)
		}
	},
	ToJSON: func(v bool) any {
		return v
	},
	FromJSON: func(v any) (bool, error) {
		tmp, ok := v.(bool)
		if !ok {
			return false, NewJSONError("Bool", "expected a boolean", v)
		}
		return tmp, nil
	},
	Equal: func(a bool, b bool) bool {
		return a == b
	},
	NotEqual: func(a bool, b bool) bool {
		return a != b
	},
}

// ByteString is encoded as Bytes, and as a lowercase hex string in JSON
var ByteString = Codec[[]byte]{
	Name: "ByteString",
	ToData: func(v []byte) plutusdata.Data {
		return plutusdata.NewBytes(bytes.Clone(v))
	},
	FromData: BytesFromData,
	ToJSON: func(v []byte) any {
		return hex.EncodeToString(v)
	},
	FromJSON: BytesFromJSON,
	Equal: func(a []byte, b []byte) bool {
		return bytes.Equal(a, b)
	},
	NotEqual: func(a []byte, b []byte) bool {
		return !bytes.Equal(a, b)
	},
}

// BytesFromData decodes a Bytes value into a new byte slice
func BytesFromData(d plutusdata.Data) ([]byte, error) {
	tmp, ok := d.(plutusdata.Bytes)
	if !ok {
		return nil, plutusdata.NewDecodeError("ByteString", "expected Bytes", d)
	}
	return bytes.Clone(tmp.Value), nil
}

// BytesFromJSON decodes a hex string
func BytesFromJSON(v any) ([]byte, error) {
	tmp, ok := v.(string)
	if !ok {
		return nil, NewJSONError("ByteString", "expected a hex string", v)
	}
	ret, err := hex.DecodeString(tmp)
	if err != nil {
		return nil, &JSONError{
			Type:  "ByteString",
			Msg:   "invalid hex",
			Value: v,
			Err:   err,
		}
	}
	return ret, nil
}

// Data is the identity codec of generic data values. In JSON each variant is a
// constructor: {"Constr": [{"index": n, "fields": [...]}]}, {"Map": [[[k, v], ...]]},
// {"List": [[...]]}, {"Bytes": ["hex"]} and {"Integer": [n]}
var Data = Codec[plutusdata.Data]{
	Name: "PlutusData",
	ToData: func(v plutusdata.Data) plutusdata.Data {
		return v
	},
	FromData: func(d plutusdata.Data) (plutusdata.Data, error) {
		if d == nil {
			return nil, plutusdata.NewDecodeError("PlutusData", "nil value", nil)
		}
		return d, nil
	},
	ToJSON:   DataToJSON,
	FromJSON: DataFromJSON,
	Equal:    plutusdata.Equal,
	NotEqual: plutusdata.NotEqual,
}

// DataToJSON converts a generic data value into its JSON value
func DataToJSON(d plutusdata.Data) any {
	switch v := d.(type) {
	case plutusdata.Constr:
		fields := make([]any, 0, len(v.Fields))
		for _, field := range v.Fields {
			fields = append(fields, DataToJSON(field))
		}
		return Constructor(
			"Constr",
			map[string]any{
				"index":  json.Number(strconv.FormatUint(v.Index, 10)),
				"fields": fields,
			},
		)
	case plutusdata.Map:
		pairs := make([]any, 0, len(v.Pairs))
		for _, pair := range v.Pairs {
			pairs = append(
				pairs,
				[]any{DataToJSON(pair.Key), DataToJSON(pair.Value)},
			)
		}
		return Constructor("Map", pairs)
	case plutusdata.List:
		items := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			items = append(items, DataToJSON(item))
		}
		return Constructor("List", items)
	case plutusdata.Bytes:
		return Constructor("Bytes", hex.EncodeToString(v.Value))
	case plutusdata.Integer:
		return Constructor("Integer", json.Number(v.Int().String()))
	default:
		return nil
	}
}

// DataFromJSON converts a JSON value produced by DataToJSON back into a data value
func DataFromJSON(v any) (plutusdata.Data, error) {
	const typeName = "PlutusData"
	name, fields, err := CaseConstructor(typeName, v)
	if err != nil {
		return nil, err
	}
	if err := CheckJSONArity(typeName, name, fields, 1); err != nil {
		return nil, err
	}
	switch name {
	case "Constr":
		obj, err := Object(typeName, fields[0])
		if err != nil {
			return nil, err
		}
		index, err := DecodeJSONField(typeName, obj, "index", Integer)
		if err != nil {
			return nil, err
		}
		if index.Sign() < 0 || !index.IsUint64() {
			return nil, NewJSONError(typeName, "constructor index out of range", obj)
		}
		rawFields, err := Field(typeName, obj, "fields")
		if err != nil {
			return nil, err
		}
		items, err := dataItemsFromJSON(rawFields)
		if err != nil {
			return nil, FieldJSONError(typeName, "fields", err)
		}
		return plutusdata.NewConstr(index.Uint64(), items...), nil
	case "Map":
		rawPairs, err := Array(typeName, fields[0])
		if err != nil {
			return nil, err
		}
		pairs := make([]plutusdata.Pair, 0, len(rawPairs))
		for _, rawPair := range rawPairs {
			items, err := dataItemsFromJSON(rawPair)
			if err != nil {
				return nil, err
			}
			if len(items) != 2 {
				return nil, NewJSONError(typeName, "expected a [key, value] pair", rawPair)
			}
			pairs = append(pairs, plutusdata.NewPair(items[0], items[1]))
		}
		return plutusdata.NewMap(pairs...), nil
	case "List":
		items, err := dataItemsFromJSON(fields[0])
		if err != nil {
			return nil, err
		}
		return plutusdata.NewList(items...), nil
	case "Bytes":
		tmp, err := BytesFromJSON(fields[0])
		if err != nil {
			return nil, err
		}
		return plutusdata.NewBytes(tmp), nil
	case "Integer":
		tmp, err := IntegerFromJSON(fields[0])
		if err != nil {
			return nil, err
		}
		return plutusdata.NewInteger(tmp), nil
	default:
		return nil, UnknownJSONConstructor(typeName, name, v)
	}
}

func dataItemsFromJSON(v any) ([]plutusdata.Data, error) {
	rawItems, err := Array("PlutusData", v)
	if err != nil {
		return nil, err
	}
	ret := make([]plutusdata.Data, 0, len(rawItems))
	for _, rawItem := range rawItems {
		item, err := DataFromJSON(rawItem)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, nil
}
