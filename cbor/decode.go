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
	"errors"
	"fmt"
	"math"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

// DefaultMaxNestedLevels is the nesting limit applied by the decoder
const DefaultMaxNestedLevels = 256

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Uses sync.Once for thread-safe lazy initialization.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			// This defaults to 32, but script contexts nest deeper than that
			MaxNestedLevels: DefaultMaxNestedLevels,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

func Decode(dataBytes []byte, dest any) (int, error) {
	data := bytes.NewReader(dataBytes)
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(data)
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// DecodeExact decodes a single CBOR item that must span all of the provided data
func DecodeExact(dataBytes []byte, dest any) error {
	n, err := Decode(dataBytes, dest)
	if err != nil {
		return err
	}
	if n != len(dataBytes) {
		return fmt.Errorf(
			"found %d trailing bytes after CBOR item",
			len(dataBytes)-n,
		)
	}
	return nil
}

// StreamDecoder provides sequential CBOR decoding with position tracking.
// It wraps the underlying decoder to track byte offsets of each decoded item.
type StreamDecoder struct {
	dec      *_cbor.Decoder
	decMode  _cbor.DecMode // cached decode mode for reuse in Advance()
	data     []byte
	consumed int // bytes consumed by Advance() calls
}

// NewStreamDecoder creates a decoder for sequential CBOR item extraction with position tracking.
func NewStreamDecoder(data []byte) (*StreamDecoder, error) {
	decMode, err := getDecMode()
	if err != nil {
		return nil, err
	}
	if decMode == nil {
		return nil, errors.New("CBOR decoder mode not initialized")
	}
	return &StreamDecoder{
		dec:     decMode.NewDecoder(bytes.NewReader(data)),
		decMode: decMode,
		data:    data,
	}, nil
}

// Position returns the current byte position in the stream.
func (d *StreamDecoder) Position() int {
	return d.consumed + d.dec.NumBytesRead()
}

// Decode decodes the next CBOR item into dest and returns its byte range.
// Returns (startOffset, length, error).
func (d *StreamDecoder) Decode(dest any) (int, int, error) {
	start := d.Position()
	if err := d.dec.Decode(dest); err != nil {
		return 0, 0, err
	}
	end := d.Position()
	return start, end - start, nil
}

// DecodeRaw decodes the next CBOR item and returns both its value and raw bytes.
// Returns (startOffset, rawBytes, error).
func (d *StreamDecoder) DecodeRaw(dest any) (int, []byte, error) {
	absStart := d.Position()
	relStart := d.dec.NumBytesRead()
	if err := d.dec.Decode(dest); err != nil {
		return 0, nil, err
	}
	relEnd := d.dec.NumBytesRead()
	return absStart, d.data[d.consumed+relStart : d.consumed+relEnd], nil
}

// Data returns the underlying byte slice.
func (d *StreamDecoder) Data() []byte {
	return d.data
}

// EOF returns true if the decoder has reached the end of the data.
func (d *StreamDecoder) EOF() bool {
	return d.Position() >= len(d.data)
}

// PeekByte returns the next byte in the stream without consuming it
func (d *StreamDecoder) PeekByte() (byte, error) {
	pos := d.Position()
	if pos >= len(d.data) {
		return 0, errors.New("unexpected end of data")
	}
	return d.data[pos], nil
}

// Advance moves the decoder position forward by n bytes without decoding.
// This is useful for skipping past headers that were parsed manually.
// Returns an error if n would advance past the end of data.
func (d *StreamDecoder) Advance(n int) error {
	if n < 0 {
		return errors.New("cannot advance by negative amount")
	}
	newPos := d.Position() + n
	if newPos > len(d.data) {
		return errors.New("advance would exceed data bounds")
	}
	d.consumed = newPos
	// Reinitialize decoder with remaining data, reusing cached DecMode
	d.dec = d.decMode.NewDecoder(bytes.NewReader(d.data[d.consumed:]))
	return nil
}

// NextIsBreak returns true if the next byte is the terminator of an indefinite-length item
func (d *StreamDecoder) NextIsBreak() bool {
	b, err := d.PeekByte()
	return err == nil && b == CborBreak
}

// DecodeBreak consumes the terminator of an indefinite-length item
func (d *StreamDecoder) DecodeBreak() error {
	if !d.NextIsBreak() {
		return errors.New("expected break byte")
	}
	return d.Advance(1)
}

// DecodeArrayHeader decodes a CBOR array header and returns the number of elements.
// This advances the position past the header only, not the array contents.
// The length is -1 for indefinite-length arrays, whose items run until NextIsBreak.
// Returns (arrayLength, headerOffset, headerLength, error).
func (d *StreamDecoder) DecodeArrayHeader() (int, int, int, error) {
	return d.decodeHeader(CborTypeArray, "array")
}

// DecodeMapHeader decodes a CBOR map header and returns the number of key-value pairs.
// This advances the position past the header only, not the map contents.
// The length is -1 for indefinite-length maps, whose pairs run until NextIsBreak.
// Returns (mapLength, headerOffset, headerLength, error).
func (d *StreamDecoder) DecodeMapHeader() (int, int, int, error) {
	return d.decodeHeader(CborTypeMap, "map")
}

func (d *StreamDecoder) decodeHeader(
	expectedType uint8,
	name string,
) (int, int, int, error) {
	absStart := d.Position()
	if absStart >= len(d.data) {
		return 0, 0, 0, errors.New("unexpected end of data")
	}
	firstByte := d.data[absStart]
	majorType := firstByte & CborTypeMask
	if majorType != expectedType {
		return 0, 0, 0, fmt.Errorf(
			"expected %s (0x%x), got 0x%x",
			name,
			expectedType,
			majorType,
		)
	}
	additionalInfo := firstByte & 0x1f
	var length uint64
	var headerLen int
	switch {
	case additionalInfo <= CborMaxUintSimple:
		length = uint64(additionalInfo)
		headerLen = 1
	case additionalInfo >= 24 && additionalInfo <= 27:
		// 1, 2, 4 or 8 byte length follows (big-endian)
		size := 1 << (additionalInfo - 24)
		if absStart+1+size > len(d.data) {
			return 0, 0, 0, fmt.Errorf(
				"unexpected end of data reading %s length",
				name,
			)
		}
		for _, b := range d.data[absStart+1 : absStart+1+size] {
			length = length<<8 | uint64(b)
		}
		headerLen = 1 + size
	case additionalInfo == CborIndefLength:
		if err := d.Advance(1); err != nil {
			return 0, 0, 0, err
		}
		return -1, absStart, 1, nil
	default:
		return 0, 0, 0, fmt.Errorf(
			"invalid %s additional info: %d",
			name,
			additionalInfo,
		)
	}
	// Use MaxInt32 to prevent overflow in later offset calculations
	if length > uint64(math.MaxInt32) {
		return 0, 0, 0, fmt.Errorf(
			"%s length exceeds maximum int32 value",
			name,
		)
	}
	// Advance the decoder position past the header
	if err := d.Advance(headerLen); err != nil {
		return 0, 0, 0, err
	}
	return int(length), absStart, headerLen, nil
}

// DecodeMapPairs decodes a definite or indefinite-length map into its raw key/value
// pairs, preserving wire order and duplicate keys
func (d *StreamDecoder) DecodeMapPairs() ([][2]RawMessage, error) {
	length, _, _, err := d.DecodeMapHeader()
	if err != nil {
		return nil, err
	}
	ret := [][2]RawMessage{}
	for i := 0; length < 0 || i < length; i++ {
		if length < 0 && d.NextIsBreak() {
			if err := d.DecodeBreak(); err != nil {
				return nil, err
			}
			break
		}
		var pair [2]RawMessage
		if _, _, err := d.Decode(&pair[0]); err != nil {
			return nil, fmt.Errorf("decode map key %d: %w", i, err)
		}
		if _, _, err := d.Decode(&pair[1]); err != nil {
			return nil, fmt.Errorf("decode map value %d: %w", i, err)
		}
		ret = append(ret, pair)
	}
	return ret, nil
}
