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
	"math/big"
)

// Data is a generic Plutus data value. It is a closed sum of Constr, Map, List, Bytes
// and Integer
type Data interface {
	isData()
	String() string
	MarshalCBOR() ([]byte, error)
}

// Constr is a tagged product: constructor number Index applied to Fields
type Constr struct {
	Index  uint64
	Fields []Data
}

// Map is an association list of pairs. Order and duplicate keys are significant
type Map struct {
	Pairs []Pair
}

// Pair is a single key/value entry of a Map
type Pair struct {
	Key   Data
	Value Data
}

// List is an ordered sequence of values
type List struct {
	Items []Data
}

// Bytes is a bytestring
type Bytes struct {
	Value []byte
}

// Integer is an arbitrary-precision signed integer. A nil Value is zero
type Integer struct {
	Value *big.Int
}

func (Constr) isData()  {}
func (Map) isData()     {}
func (List) isData()    {}
func (Bytes) isData()   {}
func (Integer) isData() {}

func NewConstr(index uint64, fields ...Data) Constr {
	if fields == nil {
		fields = []Data{}
	}
	return Constr{Index: index, Fields: fields}
}

func NewMap(pairs ...Pair) Map {
	if pairs == nil {
		pairs = []Pair{}
	}
	return Map{Pairs: pairs}
}

func NewPair(key Data, value Data) Pair {
	return Pair{Key: key, Value: value}
}

func NewList(items ...Data) List {
	if items == nil {
		items = []Data{}
	}
	return List{Items: items}
}

func NewBytes(value []byte) Bytes {
	if value == nil {
		value = []byte{}
	}
	return Bytes{Value: value}
}

// NewInteger wraps the provided value. The value is not copied
func NewInteger(value *big.Int) Integer {
	if value == nil {
		value = new(big.Int)
	}
	return Integer{Value: value}
}

func NewIntegerFromInt64(value int64) Integer {
	return Integer{Value: big.NewInt(value)}
}

// Int returns the integer value, treating nil as zero
func (i Integer) Int() *big.Int {
	if i.Value == nil {
		return new(big.Int)
	}
	return i.Value
}
