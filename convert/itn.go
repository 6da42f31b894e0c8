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
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const msgITNDataPart = "convertITNKey: failed to extract byte data from the Bech32 data part"

// DecodeBech32 returns the raw bytes held in the data part of an Incentivized Testnet
// Bech32 key. The human readable part is not checked
func DecodeBech32(text string) ([]byte, error) {
	_, dataPart, err := bech32.DecodeNoLimit(text)
	if err != nil {
		return nil, ITNError{Message: err.Error()}
	}
	raw, err := bech32.ConvertBits(dataPart, 5, 8, false)
	if err != nil {
		return nil, ITNError{Message: msgITNDataPart}
	}
	return raw, nil
}

// ImportVerificationKey converts an ITN Bech32 Ed25519 public key into a Shelley stake
// verification key
func ImportVerificationKey(text string) (StakingVerificationKey, error) {
	raw, err := DecodeBech32(text)
	if err != nil {
		return StakingVerificationKey{}, err
	}
	return NewStakingVerificationKey(raw)
}

// ImportSigningKey converts an ITN Bech32 Ed25519 secret key into a Shelley stake signing key
func ImportSigningKey(text string) (SigningKey, error) {
	raw, err := DecodeBech32(text)
	if err != nil {
		return SigningKey{}, err
	}
	return NewSigningKey(raw)
}

// ImportExtendedSigningKey converts an ITN Bech32 extended Ed25519 secret key into a
// Shelley extended stake signing key
func ImportExtendedSigningKey(text string) (ExtendedSigningKey, error) {
	raw, err := DecodeBech32(text)
	if err != nil {
		return ExtendedSigningKey{}, err
	}
	return NewExtendedSigningKey(raw)
}

// ImportVerificationKeyFile reads and converts an ITN verification key file
func ImportVerificationKeyFile(path string) (StakingVerificationKey, error) {
	text, err := readKeyFile(path)
	if err != nil {
		return StakingVerificationKey{}, err
	}
	key, err := ImportVerificationKey(text)
	return key, wrapBech32Error(path, err)
}

// ImportSigningKeyFile reads and converts an ITN signing key file
func ImportSigningKeyFile(path string) (SigningKey, error) {
	text, err := readKeyFile(path)
	if err != nil {
		return SigningKey{}, err
	}
	key, err := ImportSigningKey(text)
	return key, wrapBech32Error(path, err)
}

// ImportExtendedSigningKeyFile reads and converts an ITN extended signing key file
func ImportExtendedSigningKeyFile(path string) (ExtendedSigningKey, error) {
	text, err := readKeyFile(path)
	if err != nil {
		return ExtendedSigningKey{}, err
	}
	key, err := ImportExtendedSigningKey(text)
	return key, wrapBech32Error(path, err)
}

func readKeyFile(path string) (string, error) {
	text, err := ReadTextFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// wrapBech32Error attaches the file path to Bech32 decoding failures. Key
// deserialization errors pass through unchanged
func wrapBech32Error(path string, err error) error {
	var itnErr ITNError
	if errors.As(err, &itnErr) {
		return Bech32DecodingError{Path: path, Err: itnErr}
	}
	return err
}
