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
	"bytes"
	"crypto/ed25519"
	"crypto/sha512"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeITNKey builds a Bech32 key string the way the Incentivized Testnet tooling does
func encodeITNKey(t *testing.T, hrp string, raw []byte) string {
	t.Helper()
	convData, err := bech32.ConvertBits(raw, 8, 5, true)
	require.NoError(t, err)
	ret, err := bech32.Encode(hrp, convData)
	require.NoError(t, err)
	return ret
}

func TestDecodeBech32(t *testing.T) {
	raw := bytes.Repeat([]byte{0xa5}, 32)
	decoded, err := DecodeBech32(encodeITNKey(t, "ed25519_pk", raw))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestDecodeBech32DecoderError(t *testing.T) {
	testDefs := []string{
		"notbech32",
		"ed25519_pk1qqqqqqqq",
		strings.ToUpper(encodeITNKey(t, "ed25519_pk", []byte{1, 2, 3}))[:10] +
			"abc",
	}
	for _, testDef := range testDefs {
		_, _, expectedErr := bech32.DecodeNoLimit(testDef)
		require.Error(t, expectedErr)
		_, err := DecodeBech32(testDef)
		var itnErr ITNError
		require.True(t, errors.As(err, &itnErr), "input %q gave %v", testDef, err)
		assert.Equal(t, expectedErr.Error(), itnErr.Message)
		assert.ErrorIs(t, err, ErrConversion)
	}
}

func TestDecodeBech32DataPartError(t *testing.T) {
	// A single 5-bit group with non-zero bits can't be packed into whole bytes
	text, err := bech32.Encode("ed25519_pk", []byte{0x1f})
	require.NoError(t, err)
	_, err = DecodeBech32(text)
	assert.Equal(t, ITNError{Message: msgITNDataPart}, err)
	assert.Equal(
		t,
		"convertITNKey: failed to extract byte data from the Bech32 data part",
		RenderConversionError(ITNError{Message: msgITNDataPart}),
	)
}

func TestImportVerificationKey(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, ed25519.SeedSize)
	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	vkey, err := ImportVerificationKey(encodeITNKey(t, "ed25519_pk", pub))
	require.NoError(t, err)
	assert.Equal(t, KeyEraShelley, vkey.Era())
	assert.Equal(t, []byte(pub), vkey.Bytes())
	assert.Equal(t, stakeVerificationKeyType, vkey.EnvelopeType())
	bech, err := vkey.Bech32()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(bech, "stake_vk1"), "got %s", bech)
}

func TestImportVerificationKeyWrongLength(t *testing.T) {
	for _, raw := range [][]byte{
		{},
		{0x01, 0x02, 0x03},
		bytes.Repeat([]byte{0x07}, 31),
		bytes.Repeat([]byte{0x07}, 64),
	} {
		_, err := ImportVerificationKey(encodeITNKey(t, "ed25519_pk", raw))
		var vkErr VerificationKeyDeserializationError
		require.True(t, errors.As(err, &vkErr), "unexpected error: %v", err)
		// The error carries exactly the bytes from the data part
		assert.True(t, bytes.Equal(raw, vkErr.Raw), "got %x, wanted %x", vkErr.Raw, raw)
	}
}

func TestImportSigningKey(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, ed25519.SeedSize)
	skey, err := ImportSigningKey(encodeITNKey(t, "ed25519_sk", seed))
	require.NoError(t, err)
	assert.Equal(t, KeyEraShelley, skey.Era())
	assert.Equal(t, seed, skey.Bytes())
	expectedPub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	assert.Equal(t, []byte(expectedPub), skey.VerificationKey().Bytes())
	assert.Equal(t, KeyEraShelley, skey.VerificationKey().Era())
}

func TestImportSigningKeyWrongLength(t *testing.T) {
	raw := bytes.Repeat([]byte{0x09}, 64)
	_, err := ImportSigningKey(encodeITNKey(t, "ed25519_sk", raw))
	assert.Equal(t, SigningKeyDeserializationError{Raw: raw}, err)
}

func TestImportExtendedSigningKey(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5a}, ed25519.SeedSize)
	// An Ed25519 key expanded from a seed is a valid extended secret key
	expanded := sha512.Sum512(seed)
	xskey, err := ImportExtendedSigningKey(
		encodeITNKey(t, "ed25519e_sk", expanded[:]),
	)
	require.NoError(t, err)
	assert.Equal(t, KeyEraShelley, xskey.Era())
	assert.Equal(t, make([]byte, ChainCodeSize), xskey.ChainCode())
	assert.Len(t, xskey.Bytes(), ExtendedSigningKeySize+ChainCodeSize)
	assert.Equal(t, expanded[:], xskey.Bytes()[:ExtendedSigningKeySize])
	expectedPub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	assert.Equal(t, []byte(expectedPub), xskey.VerificationKey().Bytes())
	assert.Equal(t, stakeExtendedSigningKeyType, xskey.EnvelopeType())
}

func TestImportExtendedSigningKeyWrongLength(t *testing.T) {
	raw := bytes.Repeat([]byte{0x09}, 32)
	_, err := ImportExtendedSigningKey(encodeITNKey(t, "ed25519e_sk", raw))
	assert.Equal(t, SigningKeyDeserializationError{Raw: raw}, err)
}

func writeKeyFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.itn")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestImportKeyFiles(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, ed25519.SeedSize)
	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	expanded := sha512.Sum512(seed)

	vkey, err := ImportVerificationKeyFile(
		writeKeyFile(t, encodeITNKey(t, "ed25519_pk", pub)+"\n"),
	)
	require.NoError(t, err)
	assert.Equal(t, []byte(pub), vkey.Bytes())

	skey, err := ImportSigningKeyFile(
		writeKeyFile(t, "  "+encodeITNKey(t, "ed25519_sk", seed)+"\n"),
	)
	require.NoError(t, err)
	assert.Equal(t, vkey, skey.VerificationKey())

	xskey, err := ImportExtendedSigningKeyFile(
		writeKeyFile(t, encodeITNKey(t, "ed25519e_sk", expanded[:])),
	)
	require.NoError(t, err)
	assert.Equal(t, vkey, xskey.VerificationKey())
}

func TestImportKeyFileBech32Error(t *testing.T) {
	path := writeKeyFile(t, "notbech32\n")
	_, _, decodeErr := bech32.DecodeNoLimit("notbech32")
	require.Error(t, decodeErr)
	_, err := ImportVerificationKeyFile(path)
	var bechErr Bech32DecodingError
	require.True(t, errors.As(err, &bechErr), "unexpected error: %v", err)
	assert.Equal(t, path, bechErr.Path)
	assert.Equal(
		t,
		"Error decoding Bech32 key at "+path+" Error: "+decodeErr.Error(),
		err.Error(),
	)
	// The underlying ITN error stays reachable
	var itnErr ITNError
	assert.True(t, errors.As(err, &itnErr))
}

func TestImportKeyFileDeserializationError(t *testing.T) {
	raw := []byte{0x01, 0x02}
	path := writeKeyFile(t, encodeITNKey(t, "ed25519_sk", raw))
	_, err := ImportSigningKeyFile(path)
	assert.Equal(t, SigningKeyDeserializationError{Raw: raw}, err)
}

func TestImportKeyFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.itn")
	_, err := ImportExtendedSigningKeyFile(path)
	var fileErr *FileError
	require.True(t, errors.As(err, &fileErr), "unexpected error: %v", err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
