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
	"golang.org/x/crypto/blake2b"
)

// Hash returns the blake2b-256 hash of the canonical CBOR encoding of the value, which
// is how datums and redeemers are identified on chain
func Hash(d Data) ([]byte, error) {
	cborData, err := Encode(d)
	if err != nil {
		return nil, err
	}
	tmpHash := blake2b.Sum256(cborData)
	return tmpHash[:], nil
}
