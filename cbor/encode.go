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

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

// getEncMode returns a cached EncMode, initializing it on first use.
func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		opts := _cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: _cbor.SortCoreDeterministic,
			// Integers that fit in 64 bits never use the bignum tags
			BigIntConvert: _cbor.BigIntConvertShortest,
		}
		cachedEncMode, cachedEncModeErr = opts.EncMode()
	})
	return cachedEncMode, cachedEncModeErr
}

func Encode(data any) ([]byte, error) {
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	if em == nil {
		return nil, errors.New("CBOR encoder mode not initialized")
	}
	buf := bytes.NewBuffer(nil)
	enc := em.NewEncoder(buf)
	err = enc.Encode(data)
	return buf.Bytes(), err
}

// EncodeHead builds the initial byte(s) of a data item with the given major type and
// argument, using the shortest form
func EncodeHead(majorType uint8, arg uint64) []byte {
	majorType &= CborTypeMask
	switch {
	case arg <= uint64(CborMaxUintSimple):
		return []byte{majorType | uint8(arg)}
	case arg <= 0xff:
		return []byte{majorType | 24, uint8(arg)}
	case arg <= 0xffff:
		ret := []byte{majorType | 25, 0, 0}
		binary.BigEndian.PutUint16(ret[1:], uint16(arg))
		return ret
	case arg <= 0xffffffff:
		ret := []byte{majorType | 26, 0, 0, 0, 0}
		binary.BigEndian.PutUint32(ret[1:], uint32(arg))
		return ret
	default:
		ret := make([]byte, 9)
		ret[0] = majorType | 27
		binary.BigEndian.PutUint64(ret[1:], arg)
		return ret
	}
}

type IndefLengthList []any

func (i IndefLengthList) MarshalCBOR() ([]byte, error) {
	ret := []byte{
		// Start indefinite-length list
		CborTypeArray | CborIndefLength,
	}
	for _, item := range []any(i) {
		data, err := Encode(&item)
		if err != nil {
			return nil, err
		}
		ret = append(ret, data...)
	}
	ret = append(
		ret,
		// End indefinite length array
		CborBreak,
	)
	return ret, nil
}

type IndefLengthByteString []any

func (i IndefLengthByteString) MarshalCBOR() ([]byte, error) {
	ret := []byte{
		// Start indefinite-length bytestring
		CborTypeByteString | CborIndefLength,
	}
	for _, item := range []any(i) {
		data, err := Encode(&item)
		if err != nil {
			return nil, err
		}
		ret = append(ret, data...)
	}
	ret = append(
		ret,
		// End indefinite length bytestring
		CborBreak,
	)
	return ret, nil
}

// NewChunkedByteString splits a bytestring into chunks of at most chunkSize bytes,
// producing an indefinite-length bytestring
func NewChunkedByteString(data []byte, chunkSize int) IndefLengthByteString {
	ret := IndefLengthByteString{}
	for start := 0; start < len(data); start += chunkSize {
		end := min(start+chunkSize, len(data))
		ret = append(ret, data[start:end])
	}
	return ret
}

// MapPair is a single key/value entry in an OrderedMap
type MapPair struct {
	Key   any
	Value any
}

// OrderedMap encodes as a definite-length map with its pairs in slice order. Duplicate
// keys are preserved
type OrderedMap []MapPair

func (m OrderedMap) MarshalCBOR() ([]byte, error) {
	ret := EncodeHead(CborTypeMap, uint64(len(m)))
	for _, pair := range m {
		keyData, err := Encode(&pair.Key)
		if err != nil {
			return nil, err
		}
		valueData, err := Encode(&pair.Value)
		if err != nil {
			return nil, err
		}
		ret = append(ret, keyData...)
		ret = append(ret, valueData...)
	}
	return ret, nil
}
