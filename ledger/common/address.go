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
	"strings"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	AddressHeaderTypeMask    = 0xF0
	AddressHeaderNetworkMask = 0x0F
	AddressHashSize          = 28

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
	AddressTypeByron         = 0b1000
	AddressTypeNoneKey       = 0b1110
	AddressTypeNoneScript    = 0b1111

	ByronAddressTypePubkey = 0
	ByronAddressTypeScript = 1
	ByronAddressTypeRedeem = 2
)

// Address is one of ByronAddress, ShelleyAddress or RewardAccount
type Address interface {
	// Bytes returns the binary serialization of the address
	Bytes() ([]byte, error)
	// String returns the human readable (bech32 or base58) form of the address
	String() string
	NetworkId() uint
	ToPlutusData() data.PlutusData
	isAddress()
}

// AddressDecoder interprets raw bytes as one specific kind of address
type AddressDecoder struct {
	Name   string
	Decode func([]byte) (Address, error)
}

var (
	ShelleyAddressDecoder = AddressDecoder{
		Name: "shelley",
		Decode: func(data []byte) (Address, error) {
			return asAddress(NewShelleyAddressFromBytes(data))
		},
	}
	ByronAddressDecoder = AddressDecoder{
		Name: "byron",
		Decode: func(data []byte) (Address, error) {
			return asAddress(NewByronAddressFromBytes(data))
		},
	}
	RewardAccountDecoder = AddressDecoder{
		Name: "reward account",
		Decode: func(data []byte) (Address, error) {
			return asAddress(NewRewardAccountFromBytes(data))
		},
	}
)

// PaymentAddressDecoders returns the decoders tried for payment address bytes, in priority order.
// There is no tag byte that tells the two binary formats apart, so the first decoder that
// accepts the bytes determines the result
func PaymentAddressDecoders() []AddressDecoder {
	return []AddressDecoder{
		ShelleyAddressDecoder,
		ByronAddressDecoder,
	}
}

// DecodeAddressWith returns the address produced by the first decoder that accepts the bytes,
// along with that decoder's name
func DecodeAddressWith(
	addrBytes []byte,
	decoders []AddressDecoder,
) (Address, string, error) {
	var errs []error
	for _, decoder := range decoders {
		addr, err := decoder.Decode(addrBytes)
		if err == nil {
			return addr, decoder.Name, nil
		}
		errs = append(errs, err)
	}
	return nil, "", NoMatchingAddressDecoderError{Errors: errs}
}

// NewAddressFromBytes returns a Shelley or Byron address based on the raw bytes provided
func NewAddressFromBytes(addrBytes []byte) (Address, error) {
	addr, _, err := DecodeAddressWith(addrBytes, PaymentAddressDecoders())
	return addr, err
}

// NewAddress returns an Address based on the provided bech32/base58 address string
// It detects if the string has mixed case assumes it is a base58 encoded address
// otherwise, it assumes it is bech32 encoded
func NewAddress(addr string) (Address, error) {
	if strings.ToLower(addr) != addr {
		// Mixed case detected: Assume Base58 encoding (e.g., Byron addresses)
		decoded := base58.Decode(addr)
		if len(decoded) == 0 {
			return nil, AddressDecodeError{
				Kind: "byron",
				Err:  errors.New("invalid base58 encoding"),
			}
		}
		return asAddress(NewByronAddressFromBytes(decoded))
	}
	hrp, data, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return nil, err
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(hrp, "stake") {
		return asAddress(NewRewardAccountFromBytes(decoded))
	}
	return asAddress(NewShelleyAddressFromBytes(decoded))
}

// asAddress returns a nil Address on error instead of a zero-valued concrete address
func asAddress[T Address](addr T, err error) (Address, error) {
	if err != nil {
		return nil, err
	}
	return addr, nil
}

// addressHRP builds the bech32 human readable part for an address
func addressHRP(prefix string, networkId uint8) string {
	// Add test_ suffix if not mainnet
	if networkId != AddressNetworkMainnet {
		return prefix + "_test"
	}
	return prefix
}

// credentialPlutusData returns the Plutus representation of a payment/staking credential
func credentialPlutusData(payload AddressPayload) data.PlutusData {
	switch p := payload.(type) {
	case AddressPayloadKeyHash:
		return data.NewConstr(
			0,
			data.NewByteString(p.Hash[:]),
		)
	case AddressPayloadScriptHash:
		return data.NewConstr(
			1,
			data.NewByteString(p.Hash[:]),
		)
	default:
		return nil
	}
}
