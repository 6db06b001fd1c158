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

package assocmap_test

import (
	"math/big"
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/assocmap"
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqInt(a int, b int) bool {
	return a == b
}

func neqInt(a int, b int) bool {
	return a != b
}

func intPairs(vals ...int) []assocmap.Pair[int, int] {
	ret := make([]assocmap.Pair[int, int], 0, len(vals)/2)
	for i := 0; i+1 < len(vals); i += 2 {
		ret = append(ret, assocmap.Pair[int, int]{Key: vals[i], Value: vals[i+1]})
	}
	return ret
}

var intMapCodec = assocmap.NewCodec(codec.Integer, codec.Integer)

func bigMap(vals ...int64) assocmap.Map[*big.Int, *big.Int] {
	ret := assocmap.Empty[*big.Int, *big.Int]()
	for i := 0; i+1 < len(vals); i += 2 {
		ret = append(
			ret,
			assocmap.Pair[*big.Int, *big.Int]{
				Key:   big.NewInt(vals[i]),
				Value: big.NewInt(vals[i+1]),
			},
		)
	}
	return ret
}

func TestFromListSafe(t *testing.T) {
	testDefs := []struct {
		input    []int
		expected []int
	}{
		{
			input:    []int{},
			expected: []int{},
		},
		{
			input:    []int{1, 2, 69, 420},
			expected: []int{69, 420, 1, 2},
		},
		{
			input:    []int{1, 2, 69, 420, -69, -420},
			expected: []int{-69, -420, 69, 420, 1, 2},
		},
		{
			// The first occurrence of a key wins
			input:    []int{1, 2, 3, 4, 1, 5},
			expected: []int{1, 2, 3, 4},
		},
	}
	for _, testDef := range testDefs {
		m := assocmap.FromListSafe(eqInt, intPairs(testDef.input...))
		assert.Equal(
			t,
			assocmap.FromList(intPairs(testDef.expected...)),
			m,
			"input: %v",
			testDef.input,
		)
	}
}

func TestFromListKeepsDuplicates(t *testing.T) {
	m := assocmap.FromList(intPairs(1, 2, 1, 3))
	assert.Equal(t, 2, m.Len())
	v, ok := m.Lookup(eqInt, 1)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestInsertRemove(t *testing.T) {
	m := assocmap.Empty[int, int]()
	m.Insert(eqInt, 1, 10)
	m.Insert(eqInt, 2, 20)
	m.Insert(eqInt, 1, 11)
	assert.Equal(t, assocmap.FromList(intPairs(1, 11, 2, 20)), m)
	assert.True(t, m.Member(eqInt, 2))
	m.Remove(eqInt, 1)
	assert.Equal(t, assocmap.FromList(intPairs(2, 20)), m)
	assert.False(t, m.Member(eqInt, 1))
	m.Remove(eqInt, 5)
	assert.Equal(t, []int{2}, m.Keys())
	_, ok := m.Lookup(eqInt, 1)
	assert.False(t, ok)
}

func TestRemoveLeavesCopiesIntact(t *testing.T) {
	a := assocmap.FromList(intPairs(1, 10, 2, 20, 3, 30))
	b := a
	b.Remove(eqInt, 1)
	assert.Equal(t, assocmap.FromList(intPairs(2, 20, 3, 30)), b)
	assert.Equal(t, assocmap.FromList(intPairs(1, 10, 2, 20, 3, 30)), a)
	c := a
	c.Remove(eqInt, 3)
	assert.Equal(t, []int{1, 2}, c.Keys())
	assert.Equal(t, []int{1, 2, 3}, a.Keys())
}

// Random operations are checked against a Go map, which has the same membership
// semantics as an association map built with Insert and Remove
func TestModel(t *testing.T) {
	faker := gofakeit.New(1234)
	m := assocmap.Empty[int, int]()
	model := map[int]int{}
	for i := 0; i < 2000; i++ {
		key := faker.IntRange(0, 40)
		if faker.Bool() {
			value := int(faker.Int32())
			m.Insert(eqInt, key, value)
			model[key] = value
		} else {
			m.Remove(eqInt, key)
			delete(model, key)
		}
		for k := 0; k <= 40; k++ {
			value, ok := m.Lookup(eqInt, k)
			expected, expectedOk := model[k]
			require.Equal(t, expectedOk, ok, "key %d", k)
			require.Equal(t, expected, value, "key %d", k)
			require.Equal(t, expectedOk, m.Member(eqInt, k), "key %d", k)
		}
		require.Equal(t, len(model), m.Len())
	}
}

func TestEqualIsOrderSensitive(t *testing.T) {
	a := assocmap.FromList(intPairs(1, 2, 69, 420))
	b := assocmap.FromList(intPairs(69, 420, 1, 2))
	testDefs := []struct {
		a        assocmap.Map[int, int]
		b        assocmap.Map[int, int]
		expected bool
	}{
		{a: a, b: a, expected: true},
		{a: a, b: b, expected: false},
		{a: a, b: assocmap.FromList(intPairs(1, 2)), expected: false},
		{a: a, b: assocmap.FromList(intPairs(1, 2, 69, 421)), expected: false},
		{a: assocmap.Empty[int, int](), b: assocmap.Empty[int, int](), expected: true},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, assocmap.Equal(testDef.a, testDef.b, eqInt, eqInt))
		assert.Equal(
			t,
			!testDef.expected,
			assocmap.NotEqual(testDef.a, testDef.b, neqInt, neqInt),
		)
	}
}

func TestCodecData(t *testing.T) {
	m := bigMap(69, 420, 1, 2)
	d := intMapCodec.ToData(m)
	expected := plutusdata.NewMap(
		plutusdata.NewPair(plutusdata.NewIntegerFromInt64(69), plutusdata.NewIntegerFromInt64(420)),
		plutusdata.NewPair(plutusdata.NewIntegerFromInt64(1), plutusdata.NewIntegerFromInt64(2)),
	)
	assert.True(t, plutusdata.Equal(expected, d))
	decoded, err := intMapCodec.FromData(d)
	require.NoError(t, err)
	assert.True(t, intMapCodec.Equal(m, decoded))
	assert.False(t, intMapCodec.NotEqual(m, decoded))
	assert.True(t, intMapCodec.NotEqual(m, bigMap(1, 2, 69, 420)))
	cborData, err := intMapCodec.EncodeCbor(m)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xa2, 0x18, 0x45, 0x19, 0x01, 0xa4, 0x01, 0x02}, cborData)
}

func TestCodecDataErrors(t *testing.T) {
	_, err := intMapCodec.FromData(plutusdata.NewList())
	assert.ErrorContains(t, err, "expected Map")
	_, err = intMapCodec.FromData(
		plutusdata.NewMap(
			plutusdata.NewPair(plutusdata.NewIntegerFromInt64(1), plutusdata.NewBytes(nil)),
		),
	)
	assert.ErrorIs(t, err, plutusdata.ErrDecode)
	assert.ErrorContains(t, err, "Map Integer Integer.value")
}

func TestCodecJSON(t *testing.T) {
	m := bigMap(69, 420, 1, 2)
	jsonData, err := intMapCodec.EncodeJSON(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[[69, 420], [1, 2]]`, string(jsonData))
	decoded, err := intMapCodec.DecodeJSON(jsonData)
	require.NoError(t, err)
	assert.True(t, intMapCodec.Equal(m, decoded))
	empty, err := intMapCodec.EncodeJSON(assocmap.Empty[*big.Int, *big.Int]())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
	for _, bad := range []string{`{}`, `[[1]]`, `[[1, "a"]]`, `[5]`} {
		_, err := intMapCodec.DecodeJSON([]byte(bad))
		assert.ErrorIs(t, err, codec.ErrJSON, bad)
	}
}
