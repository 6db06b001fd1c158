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

// Package common provides the ledger types shared by every Plutus ledger API version.
//
// Key files:
//   - bytes.go: length-refined byte strings (PubKeyHash, ScriptHash, DatumHash, ...)
//   - credential.go: Credential and StakingCredential
//   - address.go: Address, plus its binary and bech32 forms
//   - value.go: Value, AssetClass and value arithmetic helpers
//   - interval.go: Extended, LowerBound, UpperBound, Interval and POSIXTimeRange
//   - rational.go: Rational
//   - scripts.go: Datum, Redeemer and hashing helpers
//
// Every type has a codec.Codec value (CredentialCodec, ValueCodec, ...) which is used
// to build the codecs of the types containing it.
package common
