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

	"github.com/blinklabs-io/plutigo/data"
)

// maxVarUintLength bounds the size of a pointer address varint (ceil(64/7))
const maxVarUintLength = 10

// ShelleyAddress is a Shelley-era payment address (base, pointer or enterprise)
type ShelleyAddress struct {
	addressType    uint8
	networkId      uint8
	paymentPayload AddressPayload
	stakingPayload AddressPayload
	extraData      []byte
}

func (ShelleyAddress) isAddress() {}

// NewShelleyAddressFromBytes decodes a Shelley address from its binary serialization
func NewShelleyAddressFromBytes(addrBytes []byte) (ShelleyAddress, error) {
	var a ShelleyAddress
	if err := a.populateFromBytes(addrBytes); err != nil {
		return ShelleyAddress{}, AddressDecodeError{Kind: "shelley", Err: err}
	}
	return a, nil
}

// NewShelleyAddressFromParts returns a Shelley address based on the individual parts of the address that are provided
func NewShelleyAddressFromParts(
	addrType uint8,
	networkId uint8,
	paymentAddr []byte,
	stakingAddr []byte,
) (ShelleyAddress, error) {
	// Validate network ID
	if networkId != AddressNetworkTestnet &&
		networkId != AddressNetworkMainnet {
		return ShelleyAddress{}, errors.New("invalid network ID")
	}
	// Build address bytes
	buf := bytes.NewBuffer(nil)
	header := (addrType << 4) | (networkId & AddressHeaderNetworkMask)
	if err := buf.WriteByte(header); err != nil {
		return ShelleyAddress{}, err
	}
	if _, err := buf.Write(paymentAddr); err != nil {
		return ShelleyAddress{}, err
	}
	if _, err := buf.Write(stakingAddr); err != nil {
		return ShelleyAddress{}, err
	}
	return NewShelleyAddressFromBytes(buf.Bytes())
}

func (a *ShelleyAddress) populateFromBytes(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty address data")
	}
	// Extract header info
	header := data[0]
	a.addressType = (header & AddressHeaderTypeMask) >> 4
	a.networkId = header & AddressHeaderNetworkMask
	if a.addressType > AddressTypeScriptNone {
		return fmt.Errorf("unsupported address type: %d", a.addressType)
	}
	// Payment payload
	payload := data[1:]
	switch a.addressType {
	case AddressTypeKeyKey, AddressTypeKeyScript, AddressTypeKeyPointer, AddressTypeKeyNone:
		if len(payload) < AddressHashSize {
			return errors.New("invalid payment payload: key hash too small")
		}
		a.paymentPayload = AddressPayloadKeyHash{
			Hash: AddrKeyHash(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	case AddressTypeScriptKey, AddressTypeScriptScript, AddressTypeScriptPointer, AddressTypeScriptNone:
		if len(payload) < AddressHashSize {
			return errors.New("invalid payment payload: script hash too small")
		}
		a.paymentPayload = AddressPayloadScriptHash{
			Hash: ScriptHash(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	}
	// Staking payload
	switch a.addressType {
	case AddressTypeKeyKey, AddressTypeScriptKey:
		if len(payload) < AddressHashSize {
			return errors.New("invalid staking payload: key hash too small")
		}
		a.stakingPayload = AddressPayloadKeyHash{
			Hash: AddrKeyHash(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	case AddressTypeKeyScript, AddressTypeScriptScript:
		if len(payload) < AddressHashSize {
			return errors.New("invalid staking payload: script hash too small")
		}
		a.stakingPayload = AddressPayloadScriptHash{
			Hash: ScriptHash(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	case AddressTypeKeyPointer, AddressTypeScriptPointer:
		var tmpPointer AddressPayloadPointer
		n, err := tmpPointer.decode(payload)
		if err != nil {
			return err
		}
		a.stakingPayload = tmpPointer
		payload = payload[n:]
	}
	// Store any extra address data
	// This is needed to handle the case describe in:
	// https://github.com/IntersectMBO/cardano-ledger/issues/2729
	if len(payload) > 0 {
		a.extraData = slices.Clone(payload)
	}
	return nil
}

func (a ShelleyAddress) Type() uint8 {
	return a.addressType
}

func (a ShelleyAddress) NetworkId() uint {
	return uint(a.networkId)
}

// PaymentPayload returns the payment payload
func (a ShelleyAddress) PaymentPayload() AddressPayload {
	return a.paymentPayload
}

// StakingPayload returns the staking payload
func (a ShelleyAddress) StakingPayload() AddressPayload {
	return a.stakingPayload
}

// StakeAddress returns the reward account for the staking credential. This will return nil if the address
// does not have a key or script hash staking credential
func (a ShelleyAddress) StakeAddress() *RewardAccount {
	switch a.stakingPayload.(type) {
	case AddressPayloadKeyHash, AddressPayloadScriptHash:
	default:
		return nil
	}
	return &RewardAccount{
		networkId:      a.networkId,
		stakingPayload: a.stakingPayload,
	}
}

// Bytes returns the underlying bytes for the address
func (a ShelleyAddress) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	header := (a.addressType << 4) | (a.networkId & AddressHeaderNetworkMask)
	if err := buf.WriteByte(header); err != nil {
		return nil, err
	}
	if a.paymentPayload != nil {
		if _, err := buf.Write(payloadHashBytes(a.paymentPayload)); err != nil {
			return nil, err
		}
	}
	if a.stakingPayload != nil {
		var stakingPayload []byte
		switch p := a.stakingPayload.(type) {
		case AddressPayloadPointer:
			var err error
			stakingPayload, err = p.encode()
			if err != nil {
				return nil, err
			}
		default:
			stakingPayload = payloadHashBytes(p)
		}
		if _, err := buf.Write(stakingPayload); err != nil {
			return nil, err
		}
	}
	if _, err := buf.Write(a.extraData); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the bech32-encoded version of the address
func (a ShelleyAddress) String() string {
	addrBytes, err := a.Bytes()
	if err != nil {
		panic(fmt.Sprintf("failed to get address bytes: %v", err))
	}
	return encodeBech32(addressHRP("addr", a.networkId), addrBytes)
}

func (a ShelleyAddress) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a ShelleyAddress) ToPlutusData() data.PlutusData {
	// Build payment part
	paymentPd := credentialPlutusData(a.paymentPayload)
	if paymentPd == nil {
		return nil
	}
	// Build stake part
	var stakePd data.PlutusData
	switch p := a.stakingPayload.(type) {
	case nil:
		stakePd = data.NewConstr(1)
	case AddressPayloadKeyHash, AddressPayloadScriptHash:
		stakePd = data.NewConstr(
			0,
			data.NewConstr(
				0,
				credentialPlutusData(p),
			),
		)
	case AddressPayloadPointer:
		stakePd = data.NewConstr(
			0,
			data.NewConstr(
				1,
				data.NewInteger(
					new(big.Int).SetUint64(p.Slot),
				),
				data.NewInteger(
					new(big.Int).SetUint64(p.TxIndex),
				),
				data.NewInteger(
					new(big.Int).SetUint64(p.CertIndex),
				),
			),
		)
	default:
		return nil
	}
	return data.NewConstr(
		0,
		paymentPd,
		stakePd,
	)
}

type AddressPayload interface {
	isAddressPayload()
}

type AddressPayloadKeyHash struct {
	Hash AddrKeyHash
}

func (AddressPayloadKeyHash) isAddressPayload() {}

type AddressPayloadScriptHash struct {
	Hash ScriptHash
}

func (AddressPayloadScriptHash) isAddressPayload() {}

type AddressPayloadPointer struct {
	Slot      uint64
	TxIndex   uint64
	CertIndex uint64
}

func (AddressPayloadPointer) isAddressPayload() {}

// decode reads the three pointer varints and returns the number of bytes consumed
func (a *AddressPayloadPointer) decode(data []byte) (int, error) {
	readVarUint := func(buf *bytes.Reader) (uint64, error) {
		var ret uint64
		for i := range maxVarUintLength {
			byt, err := buf.ReadByte()
			if err != nil {
				return 0, errors.New("invalid pointer payload: truncated varint")
			}
			// A leading zero group would re-encode to fewer bytes
			if i == 0 && byt == 0x80 {
				return 0, errors.New("invalid pointer payload: non-minimal varint")
			}
			if ret > math.MaxUint64>>7 {
				return 0, errors.New("invalid pointer payload: varint overflows uint64")
			}
			ret = (ret << 7) | uint64(byt&0x7F)
			if (byt & 0x80) == 0 {
				return ret, nil
			}
		}
		return 0, errors.New("invalid pointer payload: varint too long")
	}
	buf := bytes.NewReader(data)
	var err error
	a.Slot, err = readVarUint(buf)
	if err != nil {
		return 0, err
	}
	a.TxIndex, err = readVarUint(buf)
	if err != nil {
		return 0, err
	}
	a.CertIndex, err = readVarUint(buf)
	if err != nil {
		return 0, err
	}
	return len(data) - buf.Len(), nil
}

func (a *AddressPayloadPointer) encode() ([]byte, error) {
	writeVarUint := func(buf *bytes.Buffer, val uint64) error {
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
			return err
		}
		return nil
	}
	buf := bytes.NewBuffer(nil)
	if err := writeVarUint(buf, a.Slot); err != nil {
		return nil, err
	}
	if err := writeVarUint(buf, a.TxIndex); err != nil {
		return nil, err
	}
	if err := writeVarUint(buf, a.CertIndex); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// payloadHashBytes returns the hash bytes of a key or script hash payload
func payloadHashBytes(payload AddressPayload) []byte {
	switch p := payload.(type) {
	case AddressPayloadKeyHash:
		return p.Hash.Bytes()
	case AddressPayloadScriptHash:
		return p.Hash.Bytes()
	}
	return nil
}
