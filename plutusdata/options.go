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
	"github.com/blinklabs-io/plutus-ledger-api/cbor"
)

type decoder struct {
	maxDepth int
	strict   bool
}

// DecodeOption configures Decode
type DecodeOption func(*decoder)

// WithMaxDepth limits how deeply values may nest. Values above the CBOR layer's own
// limit have no effect
func WithMaxDepth(depth int) DecodeOption {
	return func(d *decoder) {
		d.maxDepth = depth
	}
}

// WithStrict rejects encodings that are valid but never produced by the canonical
// encoder: the general constructor tag for alternatives below 128, and bignum tags
// for integers that fit in 64 bits
func WithStrict(strict bool) DecodeOption {
	return func(d *decoder) {
		d.strict = strict
	}
}

func newDecoder(opts ...DecodeOption) *decoder {
	d := &decoder{
		maxDepth: cbor.DefaultMaxNestedLevels,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
