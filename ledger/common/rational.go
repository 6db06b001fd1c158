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
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// Rational is a ratio of two integers. It is kept exactly as given: it is not reduced
// and the denominator may be zero
type Rational struct {
	Numerator   *big.Int
	Denominator *big.Int
}

func NewRational(numerator int64, denominator int64) Rational {
	return Rational{
		Numerator:   big.NewInt(numerator),
		Denominator: big.NewInt(denominator),
	}
}

// Rat returns the value as a big.Rat. It returns false when the denominator is zero
func (r Rational) Rat() (*big.Rat, bool) {
	denominator := bigOrZero(r.Denominator)
	if denominator.Sign() == 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(bigOrZero(r.Numerator), denominator), true
}

func (r Rational) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		codec.Integer.ToData(r.Numerator),
		codec.Integer.ToData(r.Denominator),
	)
}

func (r *Rational) FromPlutusData(d plutusdata.Data) error {
	const name = "Rational"
	fields, err := codec.ConstrFields(name, d, 0, 2)
	if err != nil {
		return err
	}
	numerator, err := codec.DecodeField(name, "numerator", fields[0], codec.Integer)
	if err != nil {
		return err
	}
	denominator, err := codec.DecodeField(name, "denominator", fields[1], codec.Integer)
	if err != nil {
		return err
	}
	r.Numerator = numerator
	r.Denominator = denominator
	return nil
}

func (r Rational) ToJSON() any {
	return map[string]any{
		"numerator":   codec.Integer.ToJSON(r.Numerator),
		"denominator": codec.Integer.ToJSON(r.Denominator),
	}
}

func (r *Rational) FromJSON(v any) error {
	const name = "Rational"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	numerator, err := codec.DecodeJSONField(name, obj, "numerator", codec.Integer)
	if err != nil {
		return err
	}
	denominator, err := codec.DecodeJSONField(name, obj, "denominator", codec.Integer)
	if err != nil {
		return err
	}
	r.Numerator = numerator
	r.Denominator = denominator
	return nil
}

func (r Rational) Equal(o Rational) bool {
	return codec.Integer.Equal(r.Numerator, o.Numerator) &&
		codec.Integer.Equal(r.Denominator, o.Denominator)
}

func (r Rational) NotEqual(o Rational) bool {
	return codec.Integer.NotEqual(r.Numerator, o.Numerator) ||
		codec.Integer.NotEqual(r.Denominator, o.Denominator)
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(r.ToJSON())
}

func (r *Rational) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, r.FromJSON)
}

var RationalCodec = codec.Record[Rational]("Rational")
