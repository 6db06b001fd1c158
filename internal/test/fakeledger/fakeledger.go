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

// Package fakeledger generates random ledger values for property style tests. A
// generator is seeded, so a failing case can be reproduced from the seed alone.
package fakeledger

import (
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/assocmap"
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/ledger/common"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/brianvoe/gofakeit/v6"
)

const (
	maxDataDepth = 4
	maxItems     = 4
)

type Generator struct {
	f *gofakeit.Faker
}

func New(seed int64) *Generator {
	return &Generator{
		f: gofakeit.New(seed),
	}
}

func (g *Generator) Bool() bool {
	return g.f.Bool()
}

// Count returns a small collection size
func (g *Generator) Count() int {
	return g.f.IntRange(0, maxItems)
}

func (g *Generator) Bytes(size int) []byte {
	ret := make([]byte, size)
	for i := range ret {
		ret[i] = g.f.Uint8()
	}
	return ret
}

// BigInt returns an integer that is small, fits in 64 bits, or needs a bignum tag, in
// roughly equal measure
func (g *Generator) BigInt() *big.Int {
	switch g.f.IntRange(0, 3) {
	case 0:
		return big.NewInt(int64(g.f.IntRange(-24, 24)))
	case 1:
		return big.NewInt(g.f.Int64())
	case 2:
		return new(big.Int).SetUint64(g.f.Uint64())
	default:
		ret := new(big.Int).SetBytes(g.Bytes(g.f.IntRange(9, 24)))
		if g.f.Bool() {
			ret.Neg(ret)
		}
		return ret
	}
}

// Natural returns a non-negative integer
func (g *Generator) Natural() *big.Int {
	return new(big.Int).Abs(g.BigInt())
}

func (g *Generator) Data() plutusdata.Data {
	return g.data(0)
}

func (g *Generator) data(depth int) plutusdata.Data {
	kind := g.f.IntRange(0, 4)
	if depth >= maxDataDepth {
		kind = g.f.IntRange(3, 4)
	}
	switch kind {
	case 0:
		return plutusdata.NewConstr(g.constrIndex(), g.dataItems(depth)...)
	case 1:
		count := g.f.IntRange(0, 3)
		pairs := make([]plutusdata.Pair, 0, count)
		for range count {
			pairs = append(pairs, plutusdata.NewPair(g.data(depth+1), g.data(depth+1)))
		}
		return plutusdata.NewMap(pairs...)
	case 2:
		return plutusdata.NewList(g.dataItems(depth)...)
	case 3:
		// Long enough to need chunking some of the time
		return plutusdata.NewBytes(g.Bytes(g.f.IntRange(0, 100)))
	default:
		return plutusdata.NewInteger(g.BigInt())
	}
}

func (g *Generator) dataItems(depth int) []plutusdata.Data {
	count := g.Count()
	ret := make([]plutusdata.Data, 0, count)
	for range count {
		ret = append(ret, g.data(depth+1))
	}
	return ret
}

// constrIndex covers all three tag encodings of a constructor index
func (g *Generator) constrIndex() uint64 {
	switch g.f.IntRange(0, 3) {
	case 0, 1:
		return uint64(g.f.IntRange(0, 6))
	case 2:
		return uint64(g.f.IntRange(7, 127))
	default:
		return uint64(g.f.IntRange(128, 1<<16))
	}
}

func (g *Generator) PubKeyHash() common.PubKeyHash {
	return common.PubKeyHash(g.Bytes(common.PubKeyHashSize))
}

func (g *Generator) ScriptHash() common.ScriptHash {
	return common.ScriptHash(g.Bytes(common.ScriptHashSize))
}

func (g *Generator) DatumHash() common.DatumHash {
	return common.DatumHash(g.Bytes(common.DatumHashSize))
}

func (g *Generator) TxId() common.TxId {
	return common.TxId(g.Bytes(common.TxIdSize))
}

func (g *Generator) CurrencySymbol() common.CurrencySymbol {
	if g.f.IntRange(0, 3) == 0 {
		return common.AdaSymbol
	}
	return common.CurrencySymbol(g.Bytes(common.CurrencySymbolSize))
}

func (g *Generator) TokenName() common.TokenName {
	return common.TokenName(g.Bytes(g.f.IntRange(0, common.TokenNameMaxSize)))
}

func (g *Generator) Credential() common.Credential {
	if g.f.Bool() {
		return common.PubKeyCredential{Hash: g.PubKeyHash()}
	}
	return common.ScriptCredential{Hash: g.ScriptHash()}
}

func (g *Generator) StakingCredential() common.StakingCredential {
	if g.f.Bool() {
		return common.StakingHash{Credential: g.Credential()}
	}
	return common.StakingPtr{
		SlotNumber:       g.Natural(),
		TransactionIndex: g.Natural(),
		CertificateIndex: g.Natural(),
	}
}

func (g *Generator) Address() common.Address {
	ret := common.Address{
		Credential: g.Credential(),
	}
	if g.f.Bool() {
		ret.StakingCredential = codec.Just(g.StakingCredential())
	}
	return ret
}

// Value returns a value with random currencies. Keys are not deduplicated
func (g *Generator) Value() common.Value {
	count := g.Count()
	pairs := make([]assocmap.Pair[common.CurrencySymbol, common.TokenMap], 0, count)
	for range count {
		tokenCount := g.f.IntRange(1, 3)
		tokens := make([]assocmap.Pair[common.TokenName, *big.Int], 0, tokenCount)
		for range tokenCount {
			tokens = append(
				tokens,
				assocmap.Pair[common.TokenName, *big.Int]{Key: g.TokenName(), Value: g.BigInt()},
			)
		}
		pairs = append(
			pairs,
			assocmap.Pair[common.CurrencySymbol, common.TokenMap]{
				Key:   g.CurrencySymbol(),
				Value: assocmap.FromList(tokens),
			},
		)
	}
	return assocmap.FromList(pairs)
}

func (g *Generator) POSIXTimeRange() common.POSIXTimeRange {
	return common.Interval[common.POSIXTime]{
		From: common.LowerBound[common.POSIXTime]{
			Bound:  g.extended(),
			Closed: g.f.Bool(),
		},
		To: common.UpperBound[common.POSIXTime]{
			Bound:  g.extended(),
			Closed: g.f.Bool(),
		},
	}
}

func (g *Generator) extended() common.Extended[common.POSIXTime] {
	switch g.f.IntRange(0, 2) {
	case 0:
		return common.NegInf[common.POSIXTime]()
	case 1:
		return common.Finite[common.POSIXTime](g.BigInt())
	default:
		return common.PosInf[common.POSIXTime]()
	}
}

func (g *Generator) Rational() common.Rational {
	return common.Rational{
		Numerator:   g.BigInt(),
		Denominator: new(big.Int).Add(g.Natural(), big.NewInt(1)),
	}
}

// MaybeInteger returns Nothing a third of the time
func (g *Generator) MaybeInteger() codec.Maybe[*big.Int] {
	if g.f.IntRange(0, 2) == 0 {
		return codec.Nothing[*big.Int]()
	}
	return codec.Just(g.BigInt())
}

// listOf calls gen a small random number of times
func listOf[T any](g *Generator, gen func() T) []T {
	count := g.Count()
	ret := make([]T, 0, count)
	for range count {
		ret = append(ret, gen())
	}
	return ret
}

// mapOf builds an association map from random pairs
func mapOf[K any, V any](g *Generator, key func() K, value func() V) assocmap.Map[K, V] {
	count := g.Count()
	pairs := make([]assocmap.Pair[K, V], 0, count)
	for range count {
		pairs = append(pairs, assocmap.Pair[K, V]{Key: key(), Value: value()})
	}
	return assocmap.FromList(pairs)
}
