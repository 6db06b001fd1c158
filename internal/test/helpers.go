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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
)

// DecodeHexString decodes a hex fixture and panics on bad input, which makes it usable
// inline. Whitespace anywhere in the string is ignored so long fixtures can be split
// over several lines
func DecodeHexString(hexData string) []byte {
	hexData = strings.Join(strings.Fields(hexData), "")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeData decodes a CBOR hex fixture into a data value
func DecodeData(hexData string) plutusdata.Data {
	d, err := plutusdata.Decode(DecodeHexString(hexData))
	if err != nil {
		panic(fmt.Sprintf("error decoding plutus data: %s", err))
	}
	return d
}
