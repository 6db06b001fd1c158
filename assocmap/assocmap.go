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

// Package assocmap implements the association map used for every map-like ledger
// field: an ordered list of key/value pairs.
//
// Keys are matched with a caller supplied equality function, so lookups, inserts and
// removals are linear. Equality between maps is positional: two maps holding the same
// pairs in a different order are not equal.
//
// Insert and Remove modify the map in place and are not safe for concurrent use.
package assocmap

import (
	"slices"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// Map is an ordered list of key/value pairs
type Map[K any, V any] []Pair[K, V]

// Pair is a single entry of a Map
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Empty returns a map with no pairs
func Empty[K any, V any]() Map[K, V] {
	return Map[K, V]{}
}

// FromList uses the provided pairs as-is. Duplicate keys are neither detected nor
// removed
func FromList[K any, V any](pairs []Pair[K, V]) Map[K, V] {
	return Map[K, V](pairs)
}

// FromListSafe builds a map by inserting the pairs from last to first. Keys end up
// unique, in reverse order of their last occurrence, holding the value of their first
// occurrence
func FromListSafe[K any, V any](eq func(K, K) bool, pairs []Pair[K, V]) Map[K, V] {
	ret := Empty[K, V]()
	for i := len(pairs) - 1; i >= 0; i-- {
		ret.Insert(eq, pairs[i].Key, pairs[i].Value)
	}
	return ret
}

// Lookup returns the value of the first pair whose key matches
func (m Map[K, V]) Lookup(eq func(K, K) bool, key K) (V, bool) {
	for _, pair := range m {
		if eq(pair.Key, key) {
			return pair.Value, true
		}
	}
	var ret V
	return ret, false
}

// Member returns true if any key matches
func (m Map[K, V]) Member(eq func(K, K) bool, key K) bool {
	_, ok := m.Lookup(eq, key)
	return ok
}

// Insert replaces the first pair whose key matches, keeping its position, or appends a
// new pair
func (m *Map[K, V]) Insert(eq func(K, K) bool, key K, value V) {
	for i, pair := range *m {
		if eq(pair.Key, key) {
			(*m)[i] = Pair[K, V]{Key: key, Value: value}
			return
		}
	}
	*m = append(*m, Pair[K, V]{Key: key, Value: value})
}

// Remove deletes the first pair whose key matches. It does nothing when no key matches.
// The remaining pairs are moved to new storage
func (m *Map[K, V]) Remove(eq func(K, K) bool, key K) {
	for i, pair := range *m {
		if eq(pair.Key, key) {
			// Copies of the map keep their pairs
			*m = slices.Concat((*m)[:i:i], (*m)[i+1:])
			return
		}
	}
}

// Len returns the number of pairs
func (m Map[K, V]) Len() int {
	return len(m)
}

// Keys returns the keys in map order
func (m Map[K, V]) Keys() []K {
	ret := make([]K, 0, len(m))
	for _, pair := range m {
		ret = append(ret, pair.Key)
	}
	return ret
}

// Equal compares two maps pair by pair, in order
func Equal[K any, V any](
	a Map[K, V],
	b Map[K, V],
	eqKey func(K, K) bool,
	eqValue func(V, V) bool,
) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eqKey(a[i].Key, b[i].Key) || !eqValue(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal, computed from the inequality functions
func NotEqual[K any, V any](
	a Map[K, V],
	b Map[K, V],
	neqKey func(K, K) bool,
	neqValue func(V, V) bool,
) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if neqKey(a[i].Key, b[i].Key) || neqValue(a[i].Value, b[i].Value) {
			return true
		}
	}
	return false
}

// NewCodec returns the codec of a map. It is encoded as the generic Map variant and as
// a JSON array of [key, value] arrays, both in map order. Decoding keeps the pairs as
// found, without checking that keys are unique
func NewCodec[K any, V any](key codec.Codec[K], value codec.Codec[V]) codec.Codec[Map[K, V]] {
	name := "Map " + key.Name + " " + value.Name
	pair := codec.PairOf(key, value)
	return codec.Codec[Map[K, V]]{
		Name: name,
		ToData: func(m Map[K, V]) plutusdata.Data {
			pairs := make([]plutusdata.Pair, 0, len(m))
			for _, tmp := range m {
				pairs = append(
					pairs,
					plutusdata.NewPair(key.ToData(tmp.Key), value.ToData(tmp.Value)),
				)
			}
			return plutusdata.NewMap(pairs...)
		},
		FromData: func(d plutusdata.Data) (Map[K, V], error) {
			tmp, ok := d.(plutusdata.Map)
			if !ok {
				return nil, plutusdata.NewDecodeError(name, "expected Map", d)
			}
			pairs := make([]Pair[K, V], 0, len(tmp.Pairs))
			for _, tmpPair := range tmp.Pairs {
				k, err := codec.DecodeField(name, "key", tmpPair.Key, key)
				if err != nil {
					return nil, err
				}
				v, err := codec.DecodeField(name, "value", tmpPair.Value, value)
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
			}
			return FromList(pairs), nil
		},
		ToJSON: func(m Map[K, V]) any {
			ret := make([]any, 0, len(m))
			for _, tmp := range m {
				ret = append(
					ret,
					pair.ToJSON(codec.NewPair(tmp.Key, tmp.Value)),
				)
			}
			return ret
		},
		FromJSON: func(v any) (Map[K, V], error) {
			items, err := codec.Array(name, v)
			if err != nil {
				return nil, err
			}
			pairs := make([]Pair[K, V], 0, len(items))
			for _, item := range items {
				tmp, err := codec.DecodeJSONValue(name, "pair", item, pair)
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, Pair[K, V]{Key: tmp.First, Value: tmp.Second})
			}
			return FromList(pairs), nil
		},
		Equal: func(a Map[K, V], b Map[K, V]) bool {
			return Equal(a, b, key.Equal, value.Equal)
		},
		NotEqual: func(a Map[K, V], b Map[K, V]) bool {
			return NotEqual(a, b, key.NotEqual, value.NotEqual)
		},
	}
}
