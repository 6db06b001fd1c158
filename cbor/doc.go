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

// Package cbor provides CBOR encoding/decoding utilities for Plutus data.
//
// This package wraps github.com/fxamacker/cbor/v2 with the patterns needed by the
// canonical Plutus encoding.
//
// # Key Types
//
// Encoding helpers:
//   - IndefLengthList: Encodes as an indefinite-length array (0x9f ... 0xff)
//   - IndefLengthByteString: Encodes as an indefinite-length bytestring (0x5f ... 0xff)
//   - OrderedMap: Definite-length map that keeps pair order and duplicate keys
//   - EncodeHead: Shortest-form major type/argument header
//
// Decoding helpers:
//   - StreamDecoder: Sequential decoding with position tracking, header-only
//     array/map decoding and indefinite-length break handling
//   - RawMessage, RawTag: Deferred decoding of nested items
//
// # Constructor Tags
//
// Constructor alternatives use three tag forms:
//
//	alternative 0-6     -> tag 121-127, content is the field array
//	alternative 7-127   -> tag 1280-1400, content is the field array
//	alternative 128+    -> tag 102, content is [alternative, fields]
//
// AlternativeToTag and TagToAlternative convert between the two.
//
// # Encoding Gotchas
//
//  1. Map key ordering: OrderedMap must be used where pair order is significant,
//     since Encode sorts Go map keys
//  2. Indefinite vs definite length: non-empty lists are indefinite, empty lists
//     and maps are definite
//  3. Bytestrings longer than 64 bytes must be split into 64 byte chunks
package cbor
