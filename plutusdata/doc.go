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

// Package plutusdata implements the generic Plutus data value that every ledger type
// is serialized through.
//
// # Key Types
//
// Data is a closed sum with five variants:
//   - Constr: constructor index applied to an ordered list of fields
//   - Map: association list of Pair values, order and duplicates preserved
//   - List: ordered sequence of values
//   - Bytes: bytestring
//   - Integer: arbitrary-precision signed integer
//
// # Wire Format
//
// Encode produces the canonical CBOR form accepted by on-chain script evaluation:
// non-empty lists and constructor fields are indefinite-length, maps are definite,
// bytestrings longer than 64 bytes are chunked, and integers outside the 64-bit range
// use the bignum tags. Decode accepts any well-formed encoding of the same value.
//
// # Interop
//
// ToPlutigo/FromPlutigo and ToUtxorpc/FromUtxorpc convert to and from the data types of
// the plutigo evaluator and UTxO RPC.
package plutusdata
