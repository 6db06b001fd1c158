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
	"fmt"
	"math/big"

	"github.com/blinklabs-io/plutus-ledger-api/cbor"
)

// Bytestrings and bignum payloads longer than this are split into chunks
const bytesChunkSize = 64

// Encode produces the canonical CBOR encoding of the provided value
func Encode(d Data) ([]byte, error) {
	if d == nil {
		return nil, ErrNilData
	}
	return d.MarshalCBOR()
}

// Decode parses a single CBOR encoded value. Definite and indefinite length items are
// both accepted, as are all constructor tag forms
func Decode(data []byte, opts ...DecodeOption) (Data, error) {
	var raw cbor.RawMessage
	if err := cbor.DecodeExact(data, &raw); err != nil {
		return nil, &DecodeError{Msg: "invalid CBOR", Err: err}
	}
	return newDecoder(opts...).decode(raw, 0)
}

func (c Constr) MarshalCBOR() ([]byte, error) {
	tagNum, general := cbor.AlternativeToTag(c.Index)
	content, err := listContent(c.Fields)
	if err != nil {
		return nil, fmt.Errorf("constructor %d: %w", c.Index, err)
	}
	if general {
		content = []any{c.Index, content}
	}
	return cbor.Encode(&cbor.Tag{Number: tagNum, Content: content})
}

func (m Map) MarshalCBOR() ([]byte, error) {
	tmp := make(cbor.OrderedMap, 0, len(m.Pairs))
	for i, pair := range m.Pairs {
		if pair.Key == nil || pair.Value == nil {
			return nil, fmt.Errorf("map pair %d: %w", i, ErrNilData)
		}
		tmp = append(tmp, cbor.MapPair{Key: pair.Key, Value: pair.Value})
	}
	return tmp.MarshalCBOR()
}

func (l List) MarshalCBOR() ([]byte, error) {
	content, err := listContent(l.Items)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return cbor.Encode(content)
}

func (b Bytes) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(bytesContent(b.Value))
}

func (i Integer) MarshalCBOR() ([]byte, error) {
	v := i.Int()
	if v.Sign() >= 0 {
		if v.IsUint64() {
			return cbor.EncodeHead(cbor.CborTypeUint, v.Uint64()), nil
		}
		return cbor.Encode(
			&cbor.Tag{
				Number:  cbor.CborTagPosBignum,
				Content: bytesContent(v.Bytes()),
			},
		)
	}
	// Negative integers are encoded as -1 - n
	n := new(big.Int).Neg(v)
	n.Sub(n, big.NewInt(1))
	if n.IsUint64() {
		return cbor.EncodeHead(cbor.CborTypeNegInt, n.Uint64()), nil
	}
	return cbor.Encode(
		&cbor.Tag{
			Number:  cbor.CborTagNegBignum,
			Content: bytesContent(n.Bytes()),
		},
	)
}

// listContent returns an encodable value for a list of items. Empty lists are definite,
// everything else is indefinite
func listContent(items []Data) (any, error) {
	if len(items) == 0 {
		return []any{}, nil
	}
	ret := make(cbor.IndefLengthList, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("item %d: %w", i, ErrNilData)
		}
		ret = append(ret, item)
	}
	return ret, nil
}

func bytesContent(value []byte) any {
	if len(value) <= bytesChunkSize {
		return append([]byte{}, value...)
	}
	return cbor.NewChunkedByteString(value, bytesChunkSize)
}

func (d *decoder) decode(raw cbor.RawMessage, depth int) (Data, error) {
	if depth > d.maxDepth {
		return nil, &DecodeError{
			Msg: fmt.Sprintf("maximum nesting depth %d exceeded", d.maxDepth),
		}
	}
	majorType, ok := cbor.MajorType(raw)
	if !ok {
		return nil, &DecodeError{Msg: "unexpected end of data"}
	}
	switch majorType {
	case cbor.CborTypeUint, cbor.CborTypeNegInt:
		v := new(big.Int)
		if err := cbor.DecodeExact(raw, v); err != nil {
			return nil, &DecodeError{Msg: "invalid integer", Err: err}
		}
		return Integer{Value: v}, nil
	case cbor.CborTypeByteString:
		var v []byte
		if err := cbor.DecodeExact(raw, &v); err != nil {
			return nil, &DecodeError{Msg: "invalid bytestring", Err: err}
		}
		return NewBytes(v), nil
	case cbor.CborTypeArray:
		items, err := d.decodeItems(raw, depth)
		if err != nil {
			return nil, err
		}
		return List{Items: items}, nil
	case cbor.CborTypeMap:
		return d.decodeMap(raw, depth)
	case cbor.CborTypeTag:
		return d.decodeTag(raw, depth)
	default:
		return nil, &DecodeError{
			Msg: fmt.Sprintf("unsupported CBOR major type 0x%x", majorType),
		}
	}
}

func (d *decoder) decodeItems(raw cbor.RawMessage, depth int) ([]Data, error) {
	dec, err := cbor.NewStreamDecoder(raw)
	if err != nil {
		return nil, &DecodeError{Msg: "invalid array", Err: err}
	}
	length, _, _, err := dec.DecodeArrayHeader()
	if err != nil {
		return nil, &DecodeError{Msg: "invalid array", Err: err}
	}
	ret := make([]Data, 0)
	for i := 0; length < 0 || i < length; i++ {
		if length < 0 && dec.NextIsBreak() {
			if err := dec.DecodeBreak(); err != nil {
				return nil, &DecodeError{Msg: "invalid array", Err: err}
			}
			break
		}
		pos := dec.Position()
		var tmp cbor.RawMessage
		_, rawItem, err := dec.DecodeRaw(&tmp)
		if err != nil {
			return nil, &DecodeError{
				Msg: fmt.Sprintf("invalid array item %d at offset %d", i, pos),
				Err: err,
			}
		}
		item, err := d.decode(rawItem, depth+1)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	if !dec.EOF() {
		return nil, &DecodeError{Msg: "invalid array: trailing data"}
	}
	return ret, nil
}

func (d *decoder) decodeMap(raw cbor.RawMessage, depth int) (Data, error) {
	dec, err := cbor.NewStreamDecoder(raw)
	if err != nil {
		return nil, &DecodeError{Msg: "invalid map", Err: err}
	}
	rawPairs, err := dec.DecodeMapPairs()
	if err != nil {
		return nil, &DecodeError{Msg: "invalid map", Err: err}
	}
	if !dec.EOF() {
		return nil, &DecodeError{Msg: "invalid map: trailing data"}
	}
	pairs := make([]Pair, 0, len(rawPairs))
	for _, rawPair := range rawPairs {
		key, err := d.decode(rawPair[0], depth+1)
		if err != nil {
			return nil, err
		}
		value, err := d.decode(rawPair[1], depth+1)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return Map{Pairs: pairs}, nil
}

func (d *decoder) decodeTag(raw cbor.RawMessage, depth int) (Data, error) {
	var tag cbor.RawTag
	if err := cbor.DecodeExact(raw, &tag); err != nil {
		return nil, &DecodeError{Msg: "invalid tag", Err: err}
	}
	switch {
	case tag.Number == cbor.CborTagPosBignum || tag.Number == cbor.CborTagNegBignum:
		v := new(big.Int)
		if err := cbor.DecodeExact(raw, v); err != nil {
			return nil, &DecodeError{Msg: "invalid bignum", Err: err}
		}
		if d.strict && (v.IsUint64() || isNegUint64(v)) {
			return nil, &DecodeError{
				Msg: "non-canonical bignum for 64-bit integer " + v.String(),
			}
		}
		return Integer{Value: v}, nil
	case !cbor.IsAlternativeTag(tag.Number):
		return nil, &DecodeError{
			Msg: fmt.Sprintf("unsupported CBOR tag %d", tag.Number),
		}
	case tag.Number == cbor.CborTagAlternative3:
		var parts []cbor.RawMessage
		if err := cbor.DecodeExact(tag.Content, &parts); err != nil {
			return nil, &DecodeError{Msg: "invalid constructor", Err: err}
		}
		if len(parts) != 2 {
			return nil, &DecodeError{
				Msg: fmt.Sprintf(
					"general constructor form must have 2 items, found %d",
					len(parts),
				),
			}
		}
		if majorType, _ := cbor.MajorType(parts[0]); majorType != cbor.CborTypeUint {
			return nil, &DecodeError{Msg: "constructor index must be an unsigned integer"}
		}
		var index uint64
		if err := cbor.DecodeExact(parts[0], &index); err != nil {
			return nil, &DecodeError{Msg: "invalid constructor index", Err: err}
		}
		if d.strict && index <= cbor.CborAlternative2Max {
			return nil, &DecodeError{
				Msg: fmt.Sprintf(
					"non-canonical general form for constructor %d",
					index,
				),
			}
		}
		fields, err := d.decodeFields(parts[1], depth)
		if err != nil {
			return nil, err
		}
		return Constr{Index: index, Fields: fields}, nil
	default:
		index, _ := cbor.TagToAlternative(tag.Number)
		fields, err := d.decodeFields(tag.Content, depth)
		if err != nil {
			return nil, err
		}
		return Constr{Index: index, Fields: fields}, nil
	}
}

func (d *decoder) decodeFields(raw cbor.RawMessage, depth int) ([]Data, error) {
	if majorType, _ := cbor.MajorType(raw); majorType != cbor.CborTypeArray {
		return nil, &DecodeError{Msg: "constructor fields must be an array"}
	}
	return d.decodeItems(raw, depth)
}

// isNegUint64 returns true for negative values encodable as a CBOR negative integer
func isNegUint64(v *big.Int) bool {
	if v.Sign() >= 0 {
		return false
	}
	n := new(big.Int).Neg(v)
	n.Sub(n, big.NewInt(1))
	return n.IsUint64()
}
