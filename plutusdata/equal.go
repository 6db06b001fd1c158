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
	"bytes"
)

// Equal compares two values structurally. Map pairs are compared positionally
func Equal(a Data, b Data) bool {
	switch va := a.(type) {
	case Constr:
		vb, ok := b.(Constr)
		if !ok || va.Index != vb.Index || len(va.Fields) != len(vb.Fields) {
			return false
		}
		for i := range va.Fields {
			if !Equal(va.Fields[i], vb.Fields[i]) {
				return false
			}
		}
		return true
	case Map:
		vb, ok := b.(Map)
		if !ok || len(va.Pairs) != len(vb.Pairs) {
			return false
		}
		for i := range va.Pairs {
			if !Equal(va.Pairs[i].Key, vb.Pairs[i].Key) ||
				!Equal(va.Pairs[i].Value, vb.Pairs[i].Value) {
				return false
			}
		}
		return true
	case List:
		vb, ok := b.(List)
		if !ok || len(va.Items) != len(vb.Items) {
			return false
		}
		for i := range va.Items {
			if !Equal(va.Items[i], vb.Items[i]) {
				return false
			}
		}
		return true
	case Bytes:
		vb, ok := b.(Bytes)
		return ok && bytes.Equal(va.Value, vb.Value)
	case Integer:
		vb, ok := b.(Integer)
		return ok && va.Int().Cmp(vb.Int()) == 0
	default:
		return false
	}
}

// NotEqual is the negation of Equal, computed without calling it
func NotEqual(a Data, b Data) bool {
	switch va := a.(type) {
	case Constr:
		vb, ok := b.(Constr)
		if !ok || va.Index != vb.Index || len(va.Fields) != len(vb.Fields) {
			return true
		}
		for i := range va.Fields {
			if NotEqual(va.Fields[i], vb.Fields[i]) {
				return true
			}
		}
		return false
	case Map:
		vb, ok := b.(Map)
		if !ok || len(va.Pairs) != len(vb.Pairs) {
			return true
		}
		for i := range va.Pairs {
			if NotEqual(va.Pairs[i].Key, vb.Pairs[i].Key) ||
				NotEqual(va.Pairs[i].Value, vb.Pairs[i].Value) {
				return true
			}
		}
		return false
	case List:
		vb, ok := b.(List)
		if !ok || len(va.Items) != len(vb.Items) {
			return true
		}
		for i := range va.Items {
			if NotEqual(va.Items[i], vb.Items[i]) {
				return true
			}
		}
		return false
	case Bytes:
		vb, ok := b.(Bytes)
		return !ok || !bytes.Equal(va.Value, vb.Value)
	case Integer:
		vb, ok := b.(Integer)
		return !ok || va.Int().Cmp(vb.Int()) != 0
	default:
		return true
	}
}
