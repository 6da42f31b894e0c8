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

package convert

import (
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/jehzlau/cardano-node/ledger/common"
)

// KeyEra identifies the ledger era a key is typed for
type KeyEra uint8

const (
	KeyEraShelley KeyEra = 1
)

func (e KeyEra) String() string {
	switch e {
	case KeyEraShelley:
		return "Shelley"
	default:
		return fmt.Sprintf("KeyEra(%d)", uint8(e))
	}
}

const (
	ExtendedSigningKeySize = 64
	ChainCodeSize          = 32

	stakeVerificationKeyType        = "StakeVerificationKeyShelley_ed25519"
	stakeSigningKeyType             = "StakeSigningKeyShelley_ed25519"
	stakeExtendedSigningKeyType     = "StakeExtendedSigningKeyShelley_ed25519_bip32"
	stakeVerificationKeyDescription = "Stake Verification Key"
	stakeSigningKeyDescription      = "Stake Signing Key"

	stakeVerificationKeyHRP    = "stake_vk"
	stakeSigningKeyHRP         = "stake_sk"
	stakeExtendedSigningKeyHRP = "stake_xsk"
)

// StakingVerificationKey is an Ed25519 stake verification key
type StakingVerificationKey struct {
	era KeyEra
	key [ed25519.PublicKeySize]byte
}

// NewStakingVerificationKey returns a Shelley stake verification key from its raw bytes
func NewStakingVerificationKey(raw []byte) (StakingVerificationKey, error) {
	var ret StakingVerificationKey
	if len(raw) != ed25519.PublicKeySize {
		return ret, VerificationKeyDeserializationError{Raw: raw}
	}
	ret.era = KeyEraShelley
	copy(ret.key[:], raw)
	return ret, nil
}

func (k StakingVerificationKey) Era() KeyEra {
	return k.era
}

func (k StakingVerificationKey) Bytes() []byte {
	return k.key[:]
}

// Hash returns the stake key hash used as a staking credential
func (k StakingVerificationKey) Hash() common.Blake2b224 {
	return common.Blake2b224Hash(k.key[:])
}

func (k StakingVerificationKey) Bech32() (string, error) {
	return encodeKeyBech32(stakeVerificationKeyHRP, k.key[:])
}

func (StakingVerificationKey) EnvelopeType() string {
	return stakeVerificationKeyType
}

func (StakingVerificationKey) Description() string {
	return stakeVerificationKeyDescription
}

// SigningKey is a Shelley stake signing key stored as its 32-byte Ed25519 seed
type SigningKey struct {
	era  KeyEra
	seed [ed25519.SeedSize]byte
}

// NewSigningKey returns a Shelley stake signing key from a raw Ed25519 seed
func NewSigningKey(raw []byte) (SigningKey, error) {
	var ret SigningKey
	if len(raw) != ed25519.SeedSize {
		return ret, SigningKeyDeserializationError{Raw: raw}
	}
	ret.era = KeyEraShelley
	copy(ret.seed[:], raw)
	return ret, nil
}

func (k SigningKey) Era() KeyEra {
	return k.era
}

func (k SigningKey) Bytes() []byte {
	return k.seed[:]
}

// VerificationKey derives the matching stake verification key
func (k SigningKey) VerificationKey() StakingVerificationKey {
	pub := ed25519.NewKeyFromSeed(k.seed[:]).Public().(ed25519.PublicKey)
	ret := StakingVerificationKey{era: k.era}
	copy(ret.key[:], pub)
	return ret
}

func (k SigningKey) Bech32() (string, error) {
	return encodeKeyBech32(stakeSigningKeyHRP, k.seed[:])
}

func (SigningKey) EnvelopeType() string {
	return stakeSigningKeyType
}

func (SigningKey) Description() string {
	return stakeSigningKeyDescription
}

// ExtendedSigningKey is a Shelley stake signing key in the BIP32-Ed25519 extended form.
// Keys imported from the Incentivized Testnet have no chain code, so it is all zeroes
type ExtendedSigningKey struct {
	era       KeyEra
	key       [ExtendedSigningKeySize]byte
	chainCode [ChainCodeSize]byte
}

// NewExtendedSigningKey returns a Shelley extended stake signing key from the 64 byte
// extended secret key and a zero chain code
func NewExtendedSigningKey(raw []byte) (ExtendedSigningKey, error) {
	var ret ExtendedSigningKey
	if len(raw) != ExtendedSigningKeySize {
		return ret, SigningKeyDeserializationError{Raw: raw}
	}
	ret.era = KeyEraShelley
	copy(ret.key[:], raw)
	return ret, nil
}

func (k ExtendedSigningKey) Era() KeyEra {
	return k.era
}

// Bytes returns the extended secret key followed by the chain code
func (k ExtendedSigningKey) Bytes() []byte {
	ret := make([]byte, 0, ExtendedSigningKeySize+ChainCodeSize)
	ret = append(ret, k.key[:]...)
	ret = append(ret, k.chainCode[:]...)
	return ret
}

func (k ExtendedSigningKey) ChainCode() []byte {
	return k.chainCode[:]
}

// VerificationKey derives the public key as the base point multiplied by the clamped
// left half of the extended secret key
func (k ExtendedSigningKey) VerificationKey() StakingVerificationKey {
	ret := StakingVerificationKey{era: k.era}
	s, err := edwards25519.NewScalar().SetBytesWithClamping(k.key[:32])
	if err != nil {
		// Length is fixed by the array type
		return ret
	}
	pub := new(edwards25519.Point).ScalarBaseMult(s)
	copy(ret.key[:], pub.Bytes())
	return ret
}

func (k ExtendedSigningKey) Bech32() (string, error) {
	return encodeKeyBech32(stakeExtendedSigningKeyHRP, k.Bytes())
}

func (ExtendedSigningKey) EnvelopeType() string {
	return stakeExtendedSigningKeyType
}

func (ExtendedSigningKey) Description() string {
	return stakeSigningKeyDescription
}

// StakeKey is implemented by the Shelley stake key types
type StakeKey interface {
	Era() KeyEra
	Bytes() []byte
	Bech32() (string, error)
	EnvelopeType() string
	Description() string
}

// NewStakeKey rebuilds a stake key from a key file envelope type and the raw key bytes it holds
func NewStakeKey(envelopeType string, raw []byte) (StakeKey, error) {
	switch envelopeType {
	case stakeVerificationKeyType:
		vkey, err := NewStakingVerificationKey(raw)
		if err != nil {
			return nil, err
		}
		return vkey, nil
	case stakeSigningKeyType:
		skey, err := NewSigningKey(raw)
		if err != nil {
			return nil, err
		}
		return skey, nil
	case stakeExtendedSigningKeyType:
		if len(raw) != ExtendedSigningKeySize+ChainCodeSize {
			return nil, SigningKeyDeserializationError{Raw: raw}
		}
		ret, err := NewExtendedSigningKey(raw[:ExtendedSigningKeySize])
		if err != nil {
			return nil, err
		}
		copy(ret.chainCode[:], raw[ExtendedSigningKeySize:])
		return ret, nil
	default:
		return nil, fmt.Errorf("unsupported stake key type: %s", envelopeType)
	}
}

func encodeKeyBech32(hrp string, payload []byte) (string, error) {
	convData, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	encoded, err := bech32.Encode(hrp, convData)
	if err != nil {
		return "", fmt.Errorf("encode %s key: %w", hrp, err)
	}
	return encoded, nil
}
