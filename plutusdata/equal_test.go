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

package plutusdata_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/plutus-ledger-api/internal/test/fakeledger"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualNotEqual(t *testing.T) {
	one := plutusdata.NewIntegerFromInt64(1)
	two := plutusdata.NewIntegerFromInt64(2)
	testDefs := []struct {
		name  string
		a     plutusdata.Data
		b     plutusdata.Data
		equal bool
	}{
		{name: "integers", a: one, b: plutusdata.NewIntegerFromInt64(1), equal: true},
		{name: "nil integer is zero", a: plutusdata.Integer{}, b: plutusdata.NewIntegerFromInt64(0), equal: true},
		{name: "different integers", a: one, b: two},
		{name: "bytes", a: plutusdata.NewBytes([]byte{1}), b: plutusdata.NewBytes([]byte{1}), equal: true},
		{name: "nil bytes", a: plutusdata.Bytes{}, b: plutusdata.NewBytes(nil), equal: true},
		{name: "variant mismatch", a: plutusdata.NewList(), b: plutusdata.NewMap()},
		{name: "constr index", a: plutusdata.NewConstr(0, one), b: plutusdata.NewConstr(1, one)},
		{name: "constr arity", a: plutusdata.NewConstr(0, one), b: plutusdata.NewConstr(0, one, one)},
		{name: "constr fields", a: plutusdata.NewConstr(0, one, two), b: plutusdata.NewConstr(0, one, two), equal: true},
		{
			name:  "map order",
			a:     plutusdata.NewMap(plutusdata.NewPair(one, two), plutusdata.NewPair(two, one)),
			b:     plutusdata.NewMap(plutusdata.NewPair(two, one), plutusdata.NewPair(one, two)),
			equal: false,
		},
		{
			name:  "map",
			a:     plutusdata.NewMap(plutusdata.NewPair(one, two)),
			b:     plutusdata.NewMap(plutusdata.NewPair(one, two)),
			equal: true,
		},
		{name: "list", a: plutusdata.NewList(one, two), b: plutusdata.NewList(one, two), equal: true},
		{name: "list order", a: plutusdata.NewList(one, two), b: plutusdata.NewList(two, one)},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			assert.Equal(t, testDef.equal, plutusdata.Equal(testDef.a, testDef.b))
			assert.Equal(t, !testDef.equal, plutusdata.NotEqual(testDef.a, testDef.b))
			assert.Equal(t, testDef.equal, plutusdata.Equal(testDef.b, testDef.a))
		})
	}
}

func TestGeneratedRoundTrip(t *testing.T) {
	g := fakeledger.New(42)
	for range 200 {
		a := g.Data()
		b := g.Data()
		assert.Equal(t, plutusdata.Equal(a, b), !plutusdata.NotEqual(a, b))
		assert.True(t, plutusdata.Equal(a, a))
		assert.False(t, plutusdata.NotEqual(a, a))
		cborData, err := plutusdata.Encode(a)
		require.NoError(t, err)
		decoded, err := plutusdata.Decode(cborData, plutusdata.WithStrict(true))
		require.NoError(t, err)
		require.True(t, plutusdata.Equal(a, decoded), "%s != %s", a, decoded)
		reencoded, err := plutusdata.Encode(decoded)
		require.NoError(t, err)
		assert.Equal(t, cborData, reencoded)
	}
}

func TestString(t *testing.T) {
	d := plutusdata.NewConstr(
		1,
		plutusdata.NewIntegerFromInt64(5),
		plutusdata.NewBytes([]byte{0x0a, 0x0b}),
		plutusdata.NewList(),
		plutusdata.NewMap(
			plutusdata.NewPair(
				plutusdata.NewIntegerFromInt64(1),
				plutusdata.NewIntegerFromInt64(-2),
			),
		),
	)
	assert.Equal(
		t,
		"Constr 1 [I 5, B #0a0b, List [], Map [(I 1, I -2)]]",
		d.String(),
	)
}

func TestHash(t *testing.T) {
	// Hash of the unit datum
	tmpHash, err := plutusdata.Hash(plutusdata.NewConstr(0))
	require.NoError(t, err)
	assert.Equal(
		t,
		"923918e403bf43c34b4ef6b48eb2ee04babed17320d8d1b9ff9ad086e86f44ec",
		hex.EncodeToString(tmpHash),
	)
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &plutusdata.DecodeError{
		Type:  "TxOut",
		Field: "address",
		Err: plutusdata.NewDecodeError(
			"Address",
			"expected Constr 0",
			plutusdata.NewIntegerFromInt64(5),
		),
	}
	assert.Equal(
		t,
		"TxOut.address: Address: expected Constr 0 (got I 5)",
		err.Error(),
	)
	assert.ErrorIs(t, err, plutusdata.ErrDecode)
}
