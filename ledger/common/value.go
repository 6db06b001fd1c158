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
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/assocmap"
	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// TokenMap holds the amounts of the tokens of a single currency
type TokenMap = assocmap.Map[TokenName, *big.Int]

// Value is a multi-asset amount, keyed by currency symbol and then token name. Ada uses
// the empty currency symbol and the empty token name, with amounts in lovelace
type Value = assocmap.Map[CurrencySymbol, TokenMap]

var (
	AdaSymbol = CurrencySymbol{}
	AdaToken  = TokenName{}
)

var TokenMapCodec = assocmap.NewCodec(TokenNameCodec, codec.Integer)

var ValueCodec = func() codec.Codec[Value] {
	ret := assocmap.NewCodec(CurrencySymbolCodec, TokenMapCodec)
	ret.Name = "Value"
	return ret
}()

func eqCurrencySymbol(a CurrencySymbol, b CurrencySymbol) bool {
	return bytes.Equal(a, b)
}

func eqTokenName(a TokenName, b TokenName) bool {
	return bytes.Equal(a, b)
}

// Lovelace returns a value holding only the given amount of ada
func Lovelace(amount *big.Int) Value {
	return SingletonValue(AdaSymbol, AdaToken, amount)
}

// SingletonValue returns a value holding a single asset
func SingletonValue(cs CurrencySymbol, tn TokenName, amount *big.Int) Value {
	return Value{
		{
			Key: cs,
			Value: TokenMap{
				{Key: tn, Value: new(big.Int).Set(bigOrZero(amount))},
			},
		},
	}
}

// ValueOf returns the amount of an asset in a value, which is zero when absent
func ValueOf(v Value, cs CurrencySymbol, tn TokenName) *big.Int {
	tokens, ok := v.Lookup(eqCurrencySymbol, cs)
	if !ok {
		return new(big.Int)
	}
	amount, ok := tokens.Lookup(eqTokenName, tn)
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(bigOrZero(amount))
}

// AddValues returns the union of two values with the amounts of shared assets summed.
// Currencies and tokens keep the order in which they are first seen, a before b
func AddValues(a Value, b Value) Value {
	ret := assocmap.Empty[CurrencySymbol, TokenMap]()
	for _, v := range []Value{a, b} {
		for _, currency := range v {
			tokens, _ := ret.Lookup(eqCurrencySymbol, currency.Key)
			tokens = addTokens(tokens, currency.Value)
			ret.Insert(eqCurrencySymbol, currency.Key, tokens)
		}
	}
	return ret
}

func addTokens(a TokenMap, b TokenMap) TokenMap {
	ret := make(TokenMap, 0, len(a)+len(b))
	for _, token := range a {
		ret = append(ret, assocmap.Pair[TokenName, *big.Int]{Key: token.Key, Value: token.Value})
	}
	for _, token := range b {
		amount, _ := ret.Lookup(eqTokenName, token.Key)
		ret.Insert(
			eqTokenName,
			token.Key,
			new(big.Int).Add(bigOrZero(amount), bigOrZero(token.Value)),
		)
	}
	return ret
}

// NormalizeValue returns a copy of the value without zero amounts and without
// currencies that hold no tokens
func NormalizeValue(v Value) Value {
	ret := assocmap.Empty[CurrencySymbol, TokenMap]()
	for _, currency := range v {
		tokens := assocmap.Empty[TokenName, *big.Int]()
		for _, token := range currency.Value {
			if bigOrZero(token.Value).Sign() != 0 {
				tokens = append(tokens, token)
			}
		}
		if len(tokens) > 0 {
			ret = append(ret, assocmap.Pair[CurrencySymbol, TokenMap]{Key: currency.Key, Value: tokens})
		}
	}
	return ret
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// AssetClass identifies a single asset
type AssetClass struct {
	CurrencySymbol CurrencySymbol
	TokenName      TokenName
}

func (a AssetClass) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		CurrencySymbolCodec.ToData(a.CurrencySymbol),
		TokenNameCodec.ToData(a.TokenName),
	)
}

func (a *AssetClass) FromPlutusData(d plutusdata.Data) error {
	const name = "AssetClass"
	fields, err := codec.ConstrFields(name, d, 0, 2)
	if err != nil {
		return err
	}
	cs, err := codec.DecodeField(name, "currency_symbol", fields[0], CurrencySymbolCodec)
	if err != nil {
		return err
	}
	tn, err := codec.DecodeField(name, "token_name", fields[1], TokenNameCodec)
	if err != nil {
		return err
	}
	a.CurrencySymbol = cs
	a.TokenName = tn
	return nil
}

func (a AssetClass) ToJSON() any {
	return map[string]any{
		"currency_symbol": CurrencySymbolCodec.ToJSON(a.CurrencySymbol),
		"token_name":      TokenNameCodec.ToJSON(a.TokenName),
	}
}

func (a *AssetClass) FromJSON(v any) error {
	const name = "AssetClass"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	cs, err := codec.DecodeJSONField(name, obj, "currency_symbol", CurrencySymbolCodec)
	if err != nil {
		return err
	}
	tn, err := codec.DecodeJSONField(name, obj, "token_name", TokenNameCodec)
	if err != nil {
		return err
	}
	a.CurrencySymbol = cs
	a.TokenName = tn
	return nil
}

func (a AssetClass) Equal(b AssetClass) bool {
	return CurrencySymbolCodec.Equal(a.CurrencySymbol, b.CurrencySymbol) &&
		TokenNameCodec.Equal(a.TokenName, b.TokenName)
}

func (a AssetClass) NotEqual(b AssetClass) bool {
	return CurrencySymbolCodec.NotEqual(a.CurrencySymbol, b.CurrencySymbol) ||
		TokenNameCodec.NotEqual(a.TokenName, b.TokenName)
}

func (a AssetClass) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(a.ToJSON())
}

func (a *AssetClass) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, a.FromJSON)
}

var AssetClassCodec = codec.Record[AssetClass]("AssetClass")

// AssetClassValueOf returns the amount of an asset class in a value
func AssetClassValueOf(v Value, a AssetClass) *big.Int {
	return ValueOf(v, a.CurrencySymbol, a.TokenName)
}
