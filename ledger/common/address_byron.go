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
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/jehzlau/cardano-node/cbor"
	"golang.org/x/crypto/sha3"
)

// ByronAddress is a legacy (bootstrap) address
type ByronAddress struct {
	root     AddrKeyHash
	attr     ByronAddressAttributes
	addrType uint64
}

func (ByronAddress) isAddress() {}

// NewByronAddressFromBytes decodes a Byron address from its CBOR serialization
func NewByronAddressFromBytes(addrBytes []byte) (ByronAddress, error) {
	var a ByronAddress
	if err := a.populateFromBytes(addrBytes); err != nil {
		return ByronAddress{}, AddressDecodeError{Kind: "byron", Err: err}
	}
	return a, nil
}

func NewByronAddressFromParts(
	byronAddrType uint64,
	paymentAddr []byte,
	attr ByronAddressAttributes,
) (ByronAddress, error) {
	if len(paymentAddr) != AddressHashSize {
		return ByronAddress{}, fmt.Errorf(
			"invalid payment address hash length: %d",
			len(paymentAddr),
		)
	}
	return ByronAddress{
		root:     AddrKeyHash(paymentAddr),
		attr:     attr,
		addrType: byronAddrType,
	}, nil
}

func NewByronAddressRedeem(
	pubkey []byte,
	attr ByronAddressAttributes,
) (ByronAddress, error) {
	if len(pubkey) != 32 {
		return ByronAddress{}, fmt.Errorf(
			"invalid redeem pubkey length: %d",
			len(pubkey),
		)
	}
	addrRoot := []any{
		ByronAddressTypeRedeem,
		[]any{
			ByronAddressTypeRedeem,
			pubkey,
		},
		&attr,
	}
	addrRootBytes, err := cbor.Encode(addrRoot)
	if err != nil {
		return ByronAddress{}, err
	}
	sha3Sum := sha3.Sum256(addrRootBytes)
	return ByronAddress{
		root:     Blake2b224Hash(sha3Sum[:]),
		attr:     attr,
		addrType: ByronAddressTypeRedeem,
	}, nil
}

func (a *ByronAddress) populateFromBytes(data []byte) error {
	var rawAddr byronAddress
	if err := cbor.DecodeExact(data, &rawAddr); err != nil {
		return err
	}
	payloadBytes, ok := rawAddr.Payload.Content.([]byte)
	if !ok || rawAddr.Payload.Number != cbor.CborTagCbor {
		return errors.New(
			"invalid Byron address data: unexpected payload content",
		)
	}
	payloadChecksum := crc32.ChecksumIEEE(payloadBytes)
	if rawAddr.Checksum != payloadChecksum {
		return errors.New(
			"invalid Byron address data: checksum does not match",
		)
	}
	var byronAddr byronAddressPayload
	if err := cbor.DecodeExact(payloadBytes, &byronAddr); err != nil {
		return err
	}
	if len(byronAddr.Hash) != AddressHashSize {
		return errors.New(
			"invalid Byron address data: hash is not expected length",
		)
	}
	a.root = AddrKeyHash(byronAddr.Hash)
	a.attr = byronAddr.Attr
	a.addrType = byronAddr.AddrType
	return nil
}

func (a ByronAddress) NetworkId() uint {
	// Use Shelley network ID convention
	if a.attr.Network == nil {
		// Return mainnet if no network ID is present in address
		return AddressNetworkMainnet
	}
	// Return testnet, since the convention says we only include network ID on testnets
	return AddressNetworkTestnet
}

func (a ByronAddress) ByronType() uint64 {
	return a.addrType
}

// Root returns the hash of the address root
func (a ByronAddress) Root() AddrKeyHash {
	return a.root
}

func (a ByronAddress) Attributes() ByronAddressAttributes {
	return a.attr
}

// Bytes returns the underlying bytes for the address
func (a ByronAddress) Bytes() ([]byte, error) {
	tmpPayload := []any{
		a.root.Bytes(),
		&a.attr,
		a.addrType,
	}
	rawPayload, err := cbor.Encode(tmpPayload)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to encode Byron address payload: %w",
			err,
		)
	}
	tmpData := []any{
		cbor.Tag{
			Number:  cbor.CborTagCbor,
			Content: rawPayload,
		},
		crc32.ChecksumIEEE(rawPayload),
	}
	ret, err := cbor.Encode(tmpData)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to encode Byron address data: %w",
			err,
		)
	}
	return ret, nil
}

// String returns the base58-encoded version of the address
func (a ByronAddress) String() string {
	addrBytes, err := a.Bytes()
	if err != nil {
		panic(fmt.Sprintf("failed to get address bytes: %v", err))
	}
	return base58.Encode(addrBytes)
}

func (a ByronAddress) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a ByronAddress) ToPlutusData() data.PlutusData {
	// There is no PlutusData representation for Byron addresses
	return nil
}

type byronAddress struct {
	cbor.StructAsArray
	Payload  cbor.Tag
	Checksum uint32
}

type byronAddressPayload struct {
	cbor.StructAsArray
	Hash     []byte
	Attr     ByronAddressAttributes
	AddrType uint64
}

type ByronAddressAttributes struct {
	Payload []byte
	Network *uint32
}

func (a *ByronAddressAttributes) UnmarshalCBOR(data []byte) error {
	var tmpData struct {
		Payload    []byte `cbor:"1,keyasint,omitempty"`
		NetworkRaw []byte `cbor:"2,keyasint,omitempty"`
	}
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	a.Payload = tmpData.Payload
	if len(tmpData.NetworkRaw) > 0 {
		var tmpNetwork uint32
		if _, err := cbor.Decode(tmpData.NetworkRaw, &tmpNetwork); err != nil {
			return err
		}
		a.Network = &tmpNetwork
	}
	return nil
}

func (a *ByronAddressAttributes) MarshalCBOR() ([]byte, error) {
	tmpData := make(map[int]any)
	if len(a.Payload) > 0 {
		tmpData[1] = a.Payload
	}
	if a.Network != nil {
		networkRaw, err := cbor.Encode(a.Network)
		if err != nil {
			return nil, err
		}
		tmpData[2] = networkRaw
	}
	return cbor.Encode(tmpData)
}
