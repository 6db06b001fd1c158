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
	"fmt"

	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// ListOf returns the codec of a slice of elements, encoded as List and as a JSON array
func ListOf[T any](c Codec[T]) Codec[[]T] {
	name := "List " + c.Name
	return Codec[[]T]{
		Name: name,
		ToData: func(v []T) plutusdata.Data {
			items := make([]plutusdata.Data, 0, len(v))
			for _, item := range v {
				items = append(items, c.ToData(item))
			}
			return plutusdata.NewList(items...)
		},
		FromData: func(d plutusdata.Data) ([]T, error) {
			tmp, ok := d.(plutusdata.List)
			if !ok {
				return nil, plutusdata.NewDecodeError(name, "expected List", d)
			}
			ret := make([]T, 0, len(tmp.Items))
			for i, item := range tmp.Items {
				v, err := DecodeField(name, fmt.Sprintf("[%d]", i), item, c)
				if err != nil {
					return nil, err
				}
				ret = append(ret, v)
			}
			return ret, nil
		},
		ToJSON: func(v []T) any {
			ret := make([]any, 0, len(v))
			for _, item := range v {
				ret = append(ret, c.ToJSON(item))
			}
			return ret
		},
		FromJSON: func(v any) ([]T, error) {
			items, err := Array(name, v)
			if err != nil {
				return nil, err
			}
			ret := make([]T, 0, len(items))
			for i, item := range items {
				tmp, err := DecodeJSONValue(name, fmt.Sprintf("[%d]", i), item, c)
				if err != nil {
					return nil, err
				}
				ret = append(ret, tmp)
			}
			return ret, nil
		},
		Equal: func(a []T, b []T) bool {
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if !c.Equal(a[i], b[i]) {
					return false
				}
			}
			return true
		},
		NotEqual: func(a []T, b []T) bool {
			if len(a) != len(b) {
				return true
			}
			for i := range a {
				if c.NotEqual(a[i], b[i]) {
					return true
				}
			}
			return false
		},
	}
}

// Maybe is an optional value. The zero value is Nothing
type Maybe[T any] struct {
	value T
	just  bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, just: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the value and whether it is present
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

func (m Maybe[T]) IsJust() bool {
	return m.just
}

func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// MaybeOf returns the codec of an optional value. Just x is Constr 0 [x] and Nothing is
// Constr 1 []. In JSON they are {"Just": [x]} and {"Nothing": []}
func MaybeOf[T any](c Codec[T]) Codec[Maybe[T]] {
	name := "Maybe " + c.Name
	return Codec[Maybe[T]]{
		Name: name,
		ToData: func(v Maybe[T]) plutusdata.Data {
			if tmp, ok := v.Get(); ok {
				return plutusdata.NewConstr(0, c.ToData(tmp))
			}
			return plutusdata.NewConstr(1)
		},
		FromData: func(d plutusdata.Data) (Maybe[T], error) {
			tmp, err := ConstrOf(name, d)
			if err != nil {
				return Nothing[T](), err
			}
			switch tmp.Index {
			case 0:
				if err := CheckArity(name, tmp, 1); err != nil {
					return Nothing[T](), err
				}
				v, err := DecodeField(name, "Just", tmp.Fields[0], c)
				if err != nil {
					return Nothing[T](), err
				}
				return Just(v), nil
			case 1:
				if err := CheckArity(name, tmp, 0); err != nil {
					return Nothing[T](), err
				}
				return Nothing[T](), nil
			default:
				return Nothing[T](), UnknownConstr(name, tmp)
			}
		},
		ToJSON: func(v Maybe[T]) any {
			if tmp, ok := v.Get(); ok {
				return Constructor("Just", c.ToJSON(tmp))
			}
			return Constructor("Nothing")
		},
		FromJSON: func(v any) (Maybe[T], error) {
			ctor, fields, err := CaseConstructor(name, v)
			if err != nil {
				return Nothing[T](), err
			}
			switch ctor {
			case "Just":
				if err := CheckJSONArity(name, ctor, fields, 1); err != nil {
					return Nothing[T](), err
				}
				tmp, err := DecodeJSONValue(name, ctor, fields[0], c)
				if err != nil {
					return Nothing[T](), err
				}
				return Just(tmp), nil
			case "Nothing":
				if err := CheckJSONArity(name, ctor, fields, 0); err != nil {
					return Nothing[T](), err
				}
				return Nothing[T](), nil
			default:
				return Nothing[T](), UnknownJSONConstructor(name, ctor, v)
			}
		},
		Equal: func(a Maybe[T], b Maybe[T]) bool {
			va, okA := a.Get()
			vb, okB := b.Get()
			if okA != okB {
				return false
			}
			return !okA || c.Equal(va, vb)
		},
		NotEqual: func(a Maybe[T], b Maybe[T]) bool {
			va, okA := a.Get()
			vb, okB := b.Get()
			if okA != okB {
				return true
			}
			return okA && c.NotEqual(va, vb)
		},
	}
}

// Either holds one of two values
type Either[A any, B any] struct {
	left    A
	right   B
	isRight bool
}

func Left[A any, B any](v A) Either[A, B] {
	return Either[A, B]{left: v}
}

func Right[A any, B any](v B) Either[A, B] {
	return Either[A, B]{right: v, isRight: true}
}

// Left returns the left value and whether it is present
func (e Either[A, B]) Left() (A, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether it is present
func (e Either[A, B]) Right() (B, bool) {
	return e.right, e.isRight
}

func (e Either[A, B]) IsRight() bool {
	return e.isRight
}

// EitherOf returns the codec of Either. Left x is Constr 0 [x] and Right y is
// Constr 1 [y]. In JSON they are {"Left": [x]} and {"Right": [y]}
func EitherOf[A any, B any](left Codec[A], right Codec[B]) Codec[Either[A, B]] {
	name := "Either " + left.Name + " " + right.Name
	return Codec[Either[A, B]]{
		Name: name,
		ToData: func(v Either[A, B]) plutusdata.Data {
			if tmp, ok := v.Right(); ok {
				return plutusdata.NewConstr(1, right.ToData(tmp))
			}
			tmp, _ := v.Left()
			return plutusdata.NewConstr(0, left.ToData(tmp))
		},
		FromData: func(d plutusdata.Data) (Either[A, B], error) {
			var ret Either[A, B]
			tmp, err := ConstrOf(name, d)
			if err != nil {
				return ret, err
			}
			if tmp.Index > 1 {
				return ret, UnknownConstr(name, tmp)
			}
			if err := CheckArity(name, tmp, 1); err != nil {
				return ret, err
			}
			if tmp.Index == 0 {
				v, err := DecodeField(name, "Left", tmp.Fields[0], left)
				if err != nil {
					return ret, err
				}
				return Left[A, B](v), nil
			}
			v, err := DecodeField(name, "Right", tmp.Fields[0], right)
			if err != nil {
				return ret, err
			}
			return Right[A](v), nil
		},
		ToJSON: func(v Either[A, B]) any {
			if tmp, ok := v.Right(); ok {
				return Constructor("Right", right.ToJSON(tmp))
			}
			tmp, _ := v.Left()
			return Constructor("Left", left.ToJSON(tmp))
		},
		FromJSON: func(v any) (Either[A, B], error) {
			var ret Either[A, B]
			ctor, fields, err := CaseConstructor(name, v)
			if err != nil {
				return ret, err
			}
			if ctor != "Left" && ctor != "Right" {
				return ret, UnknownJSONConstructor(name, ctor, v)
			}
			if err := CheckJSONArity(name, ctor, fields, 1); err != nil {
				return ret, err
			}
			if ctor == "Left" {
				tmp, err := DecodeJSONValue(name, ctor, fields[0], left)
				if err != nil {
					return ret, err
				}
				return Left[A, B](tmp), nil
			}
			tmp, err := DecodeJSONValue(name, ctor, fields[0], right)
			if err != nil {
				return ret, err
			}
			return Right[A](tmp), nil
		},
		Equal: func(a Either[A, B], b Either[A, B]) bool {
			if a.isRight != b.isRight {
				return false
			}
			if a.isRight {
				return right.Equal(a.right, b.right)
			}
			return left.Equal(a.left, b.left)
		},
		NotEqual: func(a Either[A, B], b Either[A, B]) bool {
			if a.isRight != b.isRight {
				return true
			}
			if a.isRight {
				return right.NotEqual(a.right, b.right)
			}
			return left.NotEqual(a.left, b.left)
		},
	}
}

// Pair is a two element product
type Pair[A any, B any] struct {
	First  A
	Second B
}

func NewPair[A any, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// PairOf returns the codec of a pair encoded without a constructor tag, as List [a, b]
func PairOf[A any, B any](first Codec[A], second Codec[B]) Codec[Pair[A, B]] {
	name := "Pair " + first.Name + " " + second.Name
	return pairCodec(
		name,
		first,
		second,
		func(a plutusdata.Data, b plutusdata.Data) plutusdata.Data {
			return plutusdata.NewList(a, b)
		},
		func(d plutusdata.Data) ([]plutusdata.Data, error) {
			tmp, ok := d.(plutusdata.List)
			if !ok || len(tmp.Items) != 2 {
				return nil, plutusdata.NewDecodeError(
					name,
					"expected List with 2 items",
					d,
				)
			}
			return tmp.Items, nil
		},
	)
}

// TaggedPairOf returns the codec of a pair encoded as Constr 0 [a, b]
func TaggedPairOf[A any, B any](first Codec[A], second Codec[B]) Codec[Pair[A, B]] {
	name := "TaggedPair " + first.Name + " " + second.Name
	return pairCodec(
		name,
		first,
		second,
		func(a plutusdata.Data, b plutusdata.Data) plutusdata.Data {
			return plutusdata.NewConstr(0, a, b)
		},
		func(d plutusdata.Data) ([]plutusdata.Data, error) {
			return ConstrFields(name, d, 0, 2)
		},
	)
}

func pairCodec[A any, B any](
	name string,
	first Codec[A],
	second Codec[B],
	wrap func(plutusdata.Data, plutusdata.Data) plutusdata.Data,
	unwrap func(plutusdata.Data) ([]plutusdata.Data, error),
) Codec[Pair[A, B]] {
	return Codec[Pair[A, B]]{
		Name: name,
		ToData: func(v Pair[A, B]) plutusdata.Data {
			return wrap(first.ToData(v.First), second.ToData(v.Second))
		},
		FromData: func(d plutusdata.Data) (Pair[A, B], error) {
			var ret Pair[A, B]
			items, err := unwrap(d)
			if err != nil {
				return ret, err
			}
			if ret.First, err = DecodeField(name, "First", items[0], first); err != nil {
				return ret, err
			}
			if ret.Second, err = DecodeField(name, "Second", items[1], second); err != nil {
				return ret, err
			}
			return ret, nil
		},
		ToJSON: func(v Pair[A, B]) any {
			return []any{first.ToJSON(v.First), second.ToJSON(v.Second)}
		},
		FromJSON: func(v any) (Pair[A, B], error) {
			var ret Pair[A, B]
			items, err := Array(name, v)
			if err != nil {
				return ret, err
			}
			if len(items) != 2 {
				return ret, NewJSONError(name, "expected a 2 element array", v)
			}
			if ret.First, err = DecodeJSONValue(name, "First", items[0], first); err != nil {
				return ret, err
			}
			if ret.Second, err = DecodeJSONValue(name, "Second", items[1], second); err != nil {
				return ret, err
			}
			return ret, nil
		},
		Equal: func(a Pair[A, B], b Pair[A, B]) bool {
			return first.Equal(a.First, b.First) && second.Equal(a.Second, b.Second)
		},
		NotEqual: func(a Pair[A, B], b Pair[A, B]) bool {
			return first.NotEqual(a.First, b.First) || second.NotEqual(a.Second, b.Second)
		},
	}
}
