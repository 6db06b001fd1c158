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
	"encoding/hex"
	"strconv"
	"strings"
)

// String renders the value in the diagnostic notation used by the Plutus tooling, for
// example: Constr 1 [I 5, B #0a0b, List [], Map [(I 1, I 2)]]
func (c Constr) String() string {
	var sb strings.Builder
	sb.WriteString("Constr ")
	sb.WriteString(strconv.FormatUint(c.Index, 10))
	sb.WriteString(" ")
	writeItems(&sb, c.Fields)
	return sb.String()
}

func (m Map) String() string {
	var sb strings.Builder
	sb.WriteString("Map [")
	for i, pair := range m.Pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		sb.WriteString(pair.Key.String())
		sb.WriteString(", ")
		sb.WriteString(pair.Value.String())
		sb.WriteString(")")
	}
	sb.WriteString("]")
	return sb.String()
}

func (l List) String() string {
	var sb strings.Builder
	sb.WriteString("List ")
	writeItems(&sb, l.Items)
	return sb.String()
}

func (b Bytes) String() string {
	return "B #" + hex.EncodeToString(b.Value)
}

func (i Integer) String() string {
	return "I " + i.Int().String()
}

func writeItems(sb *strings.Builder, items []Data) {
	sb.WriteString("[")
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteString("]")
}

// summarize renders a value for use in error messages, truncating long output
func summarize(d Data) string {
	const maxLen = 120
	if d == nil {
		return "<nil>"
	}
	s := d.String()
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
