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

// Package codec defines how typed values move to and from generic Plutus data and
// JSON.
//
// Every type carries a Codec: a pair of data conversions, a pair of JSON conversions,
// and independently defined equality and inequality. Record types implement the
// conversions as methods and obtain a Codec with Record. Sum types provide package
// functions and assemble a Codec literal. Generic containers are built from the codecs
// of their elements:
//
//	ListOf(c)            List [x, ...]        JSON [x, ...]
//	MaybeOf(c)           Constr 0 [x] / 1 []  JSON {"Just": [x]} / {"Nothing": []}
//	EitherOf(a, b)       Constr 0 [x] / 1 [y] JSON {"Left": [x]} / {"Right": [y]}
//	PairOf(a, b)         List [x, y]          JSON [x, y]
//	TaggedPairOf(a, b)   Constr 0 [x, y]      JSON [x, y]
//
// Sum type variants are written in JSON as {"ConstructorName": [fields...]}, using
// Constructor and CaseConstructor.
//
// Decoding failures are plutusdata.DecodeError for data and JSONError for JSON values.
// Both record the type and field that failed.
package codec
