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

package cbor

// AlternativeToTag converts a constructor/alternative number to its CBOR tag number.
// The returned bool is true when the tag is the general form and the content must be
// wrapped as [alternative, fields].
func AlternativeToTag(alt uint64) (uint64, bool) {
	switch {
	case alt <= CborAlternative1Max:
		return alt + CborTagAlternative1Min, false
	case alt <= CborAlternative2Max:
		return alt - (CborAlternative1Max + 1) + CborTagAlternative2Min, false
	default:
		return CborTagAlternative3, true
	}
}

// TagToAlternative converts a compact alternative tag (121-127 or 1280-1400) back to its
// alternative number. The general form tag is not handled here since its alternative
// lives in the tag content.
func TagToAlternative(tagNum uint64) (uint64, bool) {
	switch {
	case tagNum >= CborTagAlternative1Min && tagNum <= CborTagAlternative1Max:
		return tagNum - CborTagAlternative1Min, true
	case tagNum >= CborTagAlternative2Min && tagNum <= CborTagAlternative2Max:
		return tagNum - CborTagAlternative2Min + CborAlternative1Max + 1, true
	default:
		return 0, false
	}
}

// IsAlternativeTag returns true if the given CBOR tag number represents
// a constructor/alternative (tags 121-127, 1280-1400, or 102).
func IsAlternativeTag(tagNum uint64) bool {
	if _, ok := TagToAlternative(tagNum); ok {
		return true
	}
	return tagNum == CborTagAlternative3
}
