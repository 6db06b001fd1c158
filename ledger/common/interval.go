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
	"fmt"
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

type ExtendedKind uint8

const (
	ExtendedNegInf ExtendedKind = 0
	ExtendedFinite ExtendedKind = 1
	ExtendedPosInf ExtendedKind = 2
)

func (k ExtendedKind) String() string {
	switch k {
	case ExtendedNegInf:
		return "NegInf"
	case ExtendedFinite:
		return "Finite"
	case ExtendedPosInf:
		return "PosInf"
	}
	return fmt.Sprintf("ExtendedKind(%d)", uint8(k))
}

// Extended is a value extended with positive and negative infinity. Value is only
// meaningful for the Finite kind
type Extended[T any] struct {
	Kind  ExtendedKind
	Value T
}

func NegInf[T any]() Extended[T] {
	return Extended[T]{Kind: ExtendedNegInf}
}

func Finite[T any](v T) Extended[T] {
	return Extended[T]{Kind: ExtendedFinite, Value: v}
}

func PosInf[T any]() Extended[T] {
	return Extended[T]{Kind: ExtendedPosInf}
}

// LowerBound is the start of an interval
type LowerBound[T any] struct {
	Bound  Extended[T]
	Closed bool
}

// UpperBound is the end of an interval
type UpperBound[T any] struct {
	Bound  Extended[T]
	Closed bool
}

// Interval is the range between two bounds
type Interval[T any] struct {
	From LowerBound[T]
	To   UpperBound[T]
}

// POSIXTime counts milliseconds since the Unix epoch
type POSIXTime = *big.Int

type POSIXTimeRange = Interval[POSIXTime]

// Always is the interval containing every value
func Always[T any]() Interval[T] {
	return Interval[T]{
		From: LowerBound[T]{Bound: NegInf[T](), Closed: true},
		To:   UpperBound[T]{Bound: PosInf[T](), Closed: true},
	}
}

// Never is the interval containing no value
func Never[T any]() Interval[T] {
	return Interval[T]{
		From: LowerBound[T]{Bound: PosInf[T](), Closed: true},
		To:   UpperBound[T]{Bound: NegInf[T](), Closed: true},
	}
}

// From is the interval of the values greater than or equal to a
func From[T any](a T) Interval[T] {
	return Interval[T]{
		From: LowerBound[T]{Bound: Finite(a), Closed: true},
		To:   UpperBound[T]{Bound: PosInf[T](), Closed: true},
	}
}

// To is the interval of the values less than or equal to b
func To[T any](b T) Interval[T] {
	return Interval[T]{
		From: LowerBound[T]{Bound: NegInf[T](), Closed: true},
		To:   UpperBound[T]{Bound: Finite(b), Closed: true},
	}
}

// Between is the closed interval from a to b
func Between[T any](a T, b T) Interval[T] {
	return Interval[T]{
		From: LowerBound[T]{Bound: Finite(a), Closed: true},
		To:   UpperBound[T]{Bound: Finite(b), Closed: true},
	}
}

// Contains reports whether v lies within the interval, using cmp to order values
func (i Interval[T]) Contains(cmp func(T, T) int, v T) bool {
	switch i.From.Bound.Kind {
	case ExtendedPosInf:
		return false
	case ExtendedFinite:
		c := cmp(i.From.Bound.Value, v)
		if c > 0 || (c == 0 && !i.From.Closed) {
			return false
		}
	}
	switch i.To.Bound.Kind {
	case ExtendedNegInf:
		return false
	case ExtendedFinite:
		c := cmp(v, i.To.Bound.Value)
		if c > 0 || (c == 0 && !i.To.Closed) {
			return false
		}
	}
	return true
}

func ExtendedCodec[T any](c codec.Codec[T]) codec.Codec[Extended[T]] {
	name := "Extended " + c.Name
	return codec.Codec[Extended[T]]{
		Name: name,
		ToData: func(v Extended[T]) plutusdata.Data {
			if v.Kind == ExtendedFinite {
				return plutusdata.NewConstr(uint64(v.Kind), c.ToData(v.Value))
			}
			return plutusdata.NewConstr(uint64(v.Kind))
		},
		FromData: func(d plutusdata.Data) (Extended[T], error) {
			var ret Extended[T]
			tmp, err := codec.ConstrOf(name, d)
			if err != nil {
				return ret, err
			}
			switch tmp.Index {
			case uint64(ExtendedNegInf), uint64(ExtendedPosInf):
				if err := codec.CheckArity(name, tmp, 0); err != nil {
					return ret, err
				}
				ret.Kind = ExtendedKind(tmp.Index)
				return ret, nil
			case uint64(ExtendedFinite):
				if err := codec.CheckArity(name, tmp, 1); err != nil {
					return ret, err
				}
				v, err := codec.DecodeField(name, "Finite", tmp.Fields[0], c)
				if err != nil {
					return ret, err
				}
				return Finite(v), nil
			}
			return ret, codec.UnknownConstr(name, tmp)
		},
		ToJSON: func(v Extended[T]) any {
			if v.Kind == ExtendedFinite {
				return codec.Constructor(v.Kind.String(), c.ToJSON(v.Value))
			}
			return codec.Constructor(v.Kind.String())
		},
		FromJSON: func(v any) (Extended[T], error) {
			var ret Extended[T]
			ctor, fields, err := codec.CaseConstructor(name, v)
			if err != nil {
				return ret, err
			}
			switch ctor {
			case "NegInf", "PosInf":
				if err := codec.CheckJSONArity(name, ctor, fields, 0); err != nil {
					return ret, err
				}
				if ctor == "NegInf" {
					return NegInf[T](), nil
				}
				return PosInf[T](), nil
			case "Finite":
				if err := codec.CheckJSONArity(name, ctor, fields, 1); err != nil {
					return ret, err
				}
				tmp, err := codec.DecodeJSONValue(name, ctor, fields[0], c)
				if err != nil {
					return ret, err
				}
				return Finite(tmp), nil
			default:
				return ret, codec.UnknownJSONConstructor(name, ctor, v)
			}
		},
		Equal: func(a Extended[T], b Extended[T]) bool {
			if a.Kind != b.Kind {
				return false
			}
			return a.Kind != ExtendedFinite || c.Equal(a.Value, b.Value)
		},
		NotEqual: func(a Extended[T], b Extended[T]) bool {
			if a.Kind != b.Kind {
				return true
			}
			return a.Kind == ExtendedFinite && c.NotEqual(a.Value, b.Value)
		},
	}
}

// bound is the shared representation of LowerBound and UpperBound
type bound[T any] struct {
	Bound  Extended[T]
	Closed bool
}

func LowerBoundCodec[T any](c codec.Codec[T]) codec.Codec[LowerBound[T]] {
	return boundCodec[T, LowerBound[T]]("LowerBound "+c.Name, c)
}

func UpperBoundCodec[T any](c codec.Codec[T]) codec.Codec[UpperBound[T]] {
	return boundCodec[T, UpperBound[T]]("UpperBound "+c.Name, c)
}

// boundCodec encodes both bound types as Constr 0 [bound, closed] and as a
// {"bound", "closed"} JSON object
func boundCodec[T any, B LowerBound[T] | UpperBound[T]](
	name string,
	c codec.Codec[T],
) codec.Codec[B] {
	extended := ExtendedCodec(c)
	return codec.Codec[B]{
		Name: name,
		ToData: func(v B) plutusdata.Data {
			tmp := bound[T](v)
			return plutusdata.NewConstr(
				0,
				extended.ToData(tmp.Bound),
				codec.Bool.ToData(tmp.Closed),
			)
		},
		FromData: func(d plutusdata.Data) (B, error) {
			var ret bound[T]
			fields, err := codec.ConstrFields(name, d, 0, 2)
			if err != nil {
				return B(ret), err
			}
			if ret.Bound, err = codec.DecodeField(name, "bound", fields[0], extended); err != nil {
				return B(ret), err
			}
			if ret.Closed, err = codec.DecodeField(name, "closed", fields[1], codec.Bool); err != nil {
				return B(ret), err
			}
			return B(ret), nil
		},
		ToJSON: func(v B) any {
			tmp := bound[T](v)
			return map[string]any{
				"bound":  extended.ToJSON(tmp.Bound),
				"closed": codec.Bool.ToJSON(tmp.Closed),
			}
		},
		FromJSON: func(v any) (B, error) {
			var ret bound[T]
			obj, err := codec.Object(name, v)
			if err != nil {
				return B(ret), err
			}
			if ret.Bound, err = codec.DecodeJSONField(name, obj, "bound", extended); err != nil {
				return B(ret), err
			}
			if ret.Closed, err = codec.DecodeJSONField(name, obj, "closed", codec.Bool); err != nil {
				return B(ret), err
			}
			return B(ret), nil
		},
		Equal: func(a B, b B) bool {
			tmpA, tmpB := bound[T](a), bound[T](b)
			return extended.Equal(tmpA.Bound, tmpB.Bound) && tmpA.Closed == tmpB.Closed
		},
		NotEqual: func(a B, b B) bool {
			tmpA, tmpB := bound[T](a), bound[T](b)
			return extended.NotEqual(tmpA.Bound, tmpB.Bound) || tmpA.Closed != tmpB.Closed
		},
	}
}

func IntervalCodec[T any](c codec.Codec[T]) codec.Codec[Interval[T]] {
	name := "Interval " + c.Name
	lower := LowerBoundCodec(c)
	upper := UpperBoundCodec(c)
	return codec.Codec[Interval[T]]{
		Name: name,
		ToData: func(v Interval[T]) plutusdata.Data {
			return plutusdata.NewConstr(0, lower.ToData(v.From), upper.ToData(v.To))
		},
		FromData: func(d plutusdata.Data) (Interval[T], error) {
			var ret Interval[T]
			fields, err := codec.ConstrFields(name, d, 0, 2)
			if err != nil {
				return ret, err
			}
			if ret.From, err = codec.DecodeField(name, "from", fields[0], lower); err != nil {
				return ret, err
			}
			if ret.To, err = codec.DecodeField(name, "to", fields[1], upper); err != nil {
				return ret, err
			}
			return ret, nil
		},
		ToJSON: func(v Interval[T]) any {
			return map[string]any{
				"from": lower.ToJSON(v.From),
				"to":   upper.ToJSON(v.To),
			}
		},
		FromJSON: func(v any) (Interval[T], error) {
			var ret Interval[T]
			obj, err := codec.Object(name, v)
			if err != nil {
				return ret, err
			}
			if ret.From, err = codec.DecodeJSONField(name, obj, "from", lower); err != nil {
				return ret, err
			}
			if ret.To, err = codec.DecodeJSONField(name, obj, "to", upper); err != nil {
				return ret, err
			}
			return ret, nil
		},
		Equal: func(a Interval[T], b Interval[T]) bool {
			return lower.Equal(a.From, b.From) && upper.Equal(a.To, b.To)
		},
		NotEqual: func(a Interval[T], b Interval[T]) bool {
			return lower.NotEqual(a.From, b.From) || upper.NotEqual(a.To, b.To)
		},
	}
}

var POSIXTimeRangeCodec = func() codec.Codec[POSIXTimeRange] {
	ret := IntervalCodec(codec.Integer)
	ret.Name = "POSIXTimeRange"
	return ret
}()
