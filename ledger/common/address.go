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

package common

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/blinklabs-io/plutus-ledger-api/codec"
	"github.com/blinklabs-io/plutus-ledger-api/plutusdata"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	AddressHeaderTypeMask    = 0xF0
	AddressHeaderNetworkMask = 0x0F

	AddressNetworkTestnet = 0
	AddressNetworkMainnet = 1

	AddressTypeKeyKey        = 0b0000
	AddressTypeScriptKey     = 0b0001
	AddressTypeKeyScript     = 0b0010
	AddressTypeScriptScript  = 0b0011
	AddressTypeKeyPointer    = 0b0100
	AddressTypeScriptPointer = 0b0101
	AddressTypeKeyNone       = 0b0110
	AddressTypeScriptNone    = 0b0111

	AddressHrpMainnet = "addr"
	AddressHrpTestnet = "addr_test"
)

var maybeStakingCredentialCodec = codec.MaybeOf(StakingCredentialCodec)

// Address is a payment credential with an optional staking credential. Network
// information only exists in the binary and bech32 forms
type Address struct {
	Credential        Credential
	StakingCredential codec.Maybe[StakingCredential]
}

func (a Address) ToPlutusData() plutusdata.Data {
	return plutusdata.NewConstr(
		0,
		CredentialCodec.ToData(a.Credential),
		maybeStakingCredentialCodec.ToData(a.StakingCredential),
	)
}

func (a *Address) FromPlutusData(d plutusdata.Data) error {
	const name = "Address"
	fields, err := codec.ConstrFields(name, d, 0, 2)
	if err != nil {
		return err
	}
	cred, err := codec.DecodeField(name, "credential", fields[0], CredentialCodec)
	if err != nil {
		return err
	}
	stakingCred, err := codec.DecodeField(
		name,
		"staking_credential",
		fields[1],
		maybeStakingCredentialCodec,
	)
	if err != nil {
		return err
	}
	a.Credential = cred
	a.StakingCredential = stakingCred
	return nil
}

func (a Address) ToJSON() any {
	return map[string]any{
		"credential":         CredentialCodec.ToJSON(a.Credential),
		"staking_credential": maybeStakingCredentialCodec.ToJSON(a.StakingCredential),
	}
}

func (a *Address) FromJSON(v any) error {
	const name = "Address"
	obj, err := codec.Object(name, v)
	if err != nil {
		return err
	}
	cred, err := codec.DecodeJSONField(name, obj, "credential", CredentialCodec)
	if err != nil {
		return err
	}
	stakingCred, err := codec.DecodeJSONField(
		name,
		obj,
		"staking_credential",
		maybeStakingCredentialCodec,
	)
	if err != nil {
		return err
	}
	a.Credential = cred
	a.StakingCredential = stakingCred
	return nil
}

func (a Address) Equal(b Address) bool {
	return CredentialEqual(a.Credential, b.Credential) &&
		maybeStakingCredentialCodec.Equal(a.StakingCredential, b.StakingCredential)
}

func (a Address) NotEqual(b Address) bool {
	return CredentialNotEqual(a.Credential, b.Credential) ||
		maybeStakingCredentialCodec.NotEqual(a.StakingCredential, b.StakingCredential)
}

func (a Address) MarshalJSON() ([]byte, error) {
	return codec.MarshalJSON(a.ToJSON())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	return codec.UnmarshalJSON(data, a.FromJSON)
}

var AddressCodec = codec.Record[Address]("Address")

// Type returns the address type from the header nibble of the binary form
func (a Address) Type() (uint8, error) {
	var ret uint8
	switch a.Credential.(type) {
	case PubKeyCredential:
	case ScriptCredential:
		ret = 1
	default:
		return 0, errors.New("address has no payment credential")
	}
	stakingCred, ok := a.StakingCredential.Get()
	if !ok {
		return ret | AddressTypeKeyNone, nil
	}
	switch s := stakingCred.(type) {
	case StakingHash:
		switch s.Credential.(type) {
		case PubKeyCredential:
			return ret | AddressTypeKeyKey, nil
		case ScriptCredential:
			return ret | AddressTypeKeyScript, nil
		}
	case StakingPtr:
		return ret | AddressTypeKeyPointer, nil
	}
	return 0, errors.New("unsupported staking credential")
}

// Bytes returns the binary form of the address for the given network
func (a Address) Bytes(networkId uint8) ([]byte, error) {
	if networkId != AddressNetworkTestnet && networkId != AddressNetworkMainnet {
		return nil, errors.New("invalid network ID")
	}
	addrType, err := a.Type()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	header := (addrType << 4) | (networkId & AddressHeaderNetworkMask)
	if err := buf.WriteByte(header); err != nil {
		return nil, err
	}
	payment, err := credentialHash(a.Credential)
	if err != nil {
		return nil, fmt.Errorf("invalid payment credential: %w", err)
	}
	if _, err := buf.Write(payment); err != nil {
		return nil, err
	}
	if stakingCred, ok := a.StakingCredential.Get(); ok {
		var stakingPayload []byte
		switch s := stakingCred.(type) {
		case StakingHash:
			stakingPayload, err = credentialHash(s.Credential)
		case StakingPtr:
			stakingPayload, err = encodePointer(s)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid staking credential: %w", err)
		}
		if _, err := buf.Write(stakingPayload); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Bech32 returns the bech32 encoding of the address for the given network
func (a Address) Bech32(networkId uint8) (string, error) {
	addrBytes, err := a.Bytes(networkId)
	if err != nil {
		return "", err
	}
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(addrBytes, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert address to base32: %w", err)
	}
	hrp := AddressHrpTestnet
	if networkId == AddressNetworkMainnet {
		hrp = AddressHrpMainnet
	}
	return bech32.Encode(hrp, convData)
}

// AddressFromBech32 decodes a bech32 Shelley payment address and returns it with its
// network ID
func AddressFromBech32(addr string) (Address, uint8, error) {
	hrp, data, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return Address{}, 0, err
	}
	if hrp != AddressHrpMainnet && hrp != AddressHrpTestnet {
		return Address{}, 0, fmt.Errorf("unsupported address prefix %q", hrp)
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, 0, err
	}
	return AddressFromBytes(decoded)
}

// AddressFromBytes decodes the binary form of a Shelley payment address and returns it
// with its network ID
func AddressFromBytes(data []byte) (Address, uint8, error) {
	var ret Address
	if len(data) == 0 {
		return ret, 0, errors.New("empty address")
	}
	// Extract header info
	header := data[0]
	addrType := (header & AddressHeaderTypeMask) >> 4
	networkId := header & AddressHeaderNetworkMask
	if addrType > AddressTypeScriptNone {
		return ret, 0, fmt.Errorf("unsupported address type %d", addrType)
	}
	payload := data[1:]
	// Payment payload
	if len(payload) < PubKeyHashSize {
		return ret, 0, errors.New("invalid payment payload: hash too small")
	}
	if addrType&1 == 0 {
		ret.Credential = PubKeyCredential{Hash: PubKeyHash(bytes.Clone(payload[:PubKeyHashSize]))}
	} else {
		ret.Credential = ScriptCredential{Hash: ScriptHash(bytes.Clone(payload[:ScriptHashSize]))}
	}
	payload = payload[PubKeyHashSize:]
	// Staking payload
	switch addrType &^ 1 {
	case AddressTypeKeyKey, AddressTypeKeyScript:
		if len(payload) < PubKeyHashSize {
			return ret, 0, errors.New("invalid staking payload: hash too small")
		}
		hash := bytes.Clone(payload[:PubKeyHashSize])
		var cred Credential = PubKeyCredential{Hash: PubKeyHash(hash)}
		if addrType&^1 == AddressTypeKeyScript {
			cred = ScriptCredential{Hash: ScriptHash(hash)}
		}
		ret.StakingCredential = codec.Just[StakingCredential](StakingHash{Credential: cred})
		payload = payload[PubKeyHashSize:]
	case AddressTypeKeyPointer:
		ptr, n, err := decodePointer(payload)
		if err != nil {
			return ret, 0, err
		}
		ret.StakingCredential = codec.Just[StakingCredential](ptr)
		payload = payload[n:]
	default:
		ret.StakingCredential = codec.Nothing[StakingCredential]()
	}
	if len(payload) > 0 {
		return ret, 0, fmt.Errorf("found %d trailing bytes after address", len(payload))
	}
	return ret, networkId, nil
}

func credentialHash(c Credential) ([]byte, error) {
	var hash []byte
	switch tmp := c.(type) {
	case PubKeyCredential:
		hash = tmp.Hash
	case ScriptCredential:
		hash = tmp.Hash
	default:
		return nil, errors.New("missing credential")
	}
	if len(hash) != PubKeyHashSize {
		return nil, fmt.Errorf("credential hash should be %d bytes, found %d", PubKeyHashSize, len(hash))
	}
	return hash, nil
}

// Pointer values are variable length big-endian base-128 integers, with the high bit
// set on every byte but the last
func encodePointer(p StakingPtr) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	for _, tmp := range []*big.Int{p.SlotNumber, p.TransactionIndex, p.CertificateIndex} {
		if tmp == nil {
			tmp = new(big.Int)
		}
		if tmp.Sign() < 0 || !tmp.IsUint64() {
			return nil, fmt.Errorf("pointer value %s out of range", tmp.String())
		}
		val := tmp.Uint64()
		data := []byte{
			byte(val & 0x7F),
		}
		val /= 128
		for val > 0 {
			data = append(
				data,
				byte((val&0x7F)|0x80),
			)
			val /= 128
		}
		slices.Reverse(data)
		if _, err := buf.Write(data); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decodePointer(data []byte) (StakingPtr, int, error) {
	pos := 0
	readVarUint := func() (uint64, error) {
		var ret uint64
		for {
			if pos >= len(data) {
				return 0, errors.New("invalid staking pointer: unexpected end of data")
			}
			byt := data[pos]
			pos++
			if ret > math.MaxUint64>>7 {
				return 0, errors.New("invalid staking pointer: value overflows uint64")
			}
			ret = (ret << 7) | uint64(byt&0x7F)
			if (byt & 0x80) == 0 {
				return ret, nil
			}
		}
	}
	var vals [3]uint64
	for i := range vals {
		val, err := readVarUint()
		if err != nil {
			return StakingPtr{}, 0, err
		}
		vals[i] = val
	}
	ret := StakingPtr{
		SlotNumber:       new(big.Int).SetUint64(vals[0]),
		TransactionIndex: new(big.Int).SetUint64(vals[1]),
		CertificateIndex: new(big.Int).SetUint64(vals[2]),
	}
	return ret, pos, nil
}
