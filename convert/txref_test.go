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
	"testing"

	"github.com/jehzlau/cardano-node/internal/test"
	"github.com/jehzlau/cardano-node/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testZeroTxId = strings.Repeat("0", 64)

const testTxId = "9e8b4f1f6a1c63e0d1a42d2b7cfa6c1b2d7c2d3e4f5a6b7c8d9e0f1a2b3c4d5e"

func TestParseTxInZero(t *testing.T) {
	txIn, err := ParseTxIn(testZeroTxId + "#0")
	require.NoError(t, err)
	assert.Equal(t, common.Blake2b256{}, txIn.Id())
	assert.Equal(t, uint32(0), txIn.Index())
}

func TestParseTxInRoundTrip(t *testing.T) {
	testDefs := []string{
		testZeroTxId + "#0",
		testTxId + "#1",
		testTxId + "#4294967295",
	}
	for _, testDef := range testDefs {
		txIn, err := ParseTxIn(testDef)
		require.NoError(t, err, "input %s", testDef)
		assert.Equal(t, testDef, RenderTxIn(txIn))
		reparsed, err := ParseTxIn(RenderTxIn(txIn))
		require.NoError(t, err)
		assert.Equal(t, txIn, reparsed)
	}
	// Uppercase hex is accepted and rendered as lowercase
	txIn, err := ParseTxIn(strings.ToUpper(testTxId) + "#7")
	require.NoError(t, err)
	assert.Equal(t, testTxId+"#7", RenderTxIn(txIn))
}

func TestParseTxInErrors(t *testing.T) {
	testDefs := []struct {
		name            string
		input           string
		expectedColumn  int
		expectedMessage string
	}{
		{
			name:            "empty",
			input:           "",
			expectedColumn:  1,
			expectedMessage: "expecting transaction id",
		},
		{
			name:            "missing hash",
			input:           "#0",
			expectedColumn:  1,
			expectedMessage: "expecting transaction id",
		},
		{
			name:            "shelley address",
			input:           testShelleyAddrHex + "#0",
			expectedColumn:  1,
			expectedMessage: msgTxIdIsAddress,
		},
		{
			name:            "byron address",
			input:           testByronAddrHex + "#0",
			expectedColumn:  1,
			expectedMessage: msgTxIdIsAddress,
		},
		{
			name:            "short hash",
			input:           "abc#0",
			expectedColumn:  1,
			expectedMessage: msgTxIdMalformed,
		},
		{
			name:            "not hex",
			input:           "transaction#0",
			expectedColumn:  1,
			expectedMessage: msgTxIdMalformed,
		},
		{
			name:            "long hash",
			input:           testZeroTxId + "00#0",
			expectedColumn:  1,
			expectedMessage: msgTxIdMalformed,
		},
		{
			name:            "missing separator",
			input:           testZeroTxId,
			expectedColumn:  65,
			expectedMessage: "expecting '#'",
		},
		{
			name:            "wrong separator",
			input:           testZeroTxId + " #0",
			expectedColumn:  65,
			expectedMessage: "expecting '#'",
		},
		{
			name:            "missing index",
			input:           testZeroTxId + "#",
			expectedColumn:  66,
			expectedMessage: "expecting output index",
		},
		{
			name:            "negative index",
			input:           testZeroTxId + "#-1",
			expectedColumn:  66,
			expectedMessage: "expecting output index",
		},
		{
			name:            "trailing input",
			input:           testZeroTxId + "#1x",
			expectedColumn:  67,
			expectedMessage: "unexpected trailing input",
		},
		{
			name:            "index overflow",
			input:           testZeroTxId + "#4294967296",
			expectedColumn:  66,
			expectedMessage: "output index out of range",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := ParseTxIn(testDef.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, testDef.input, parseErr.Input)
			assert.Equal(t, testDef.expectedColumn, parseErr.Column)
			assert.Equal(t, testDef.expectedMessage, parseErr.Message)
		})
	}
}

func TestParseTxInAddressSizedHash(t *testing.T) {
	// A Shelley address with trailing data that happens to be 32 bytes long is still a valid tx id
	addrHex := testShelleyAddrHex + "000000"
	_, ok := AddressFromHex(addrHex)
	require.True(t, ok)
	txIn, err := ParseTxIn(addrHex + "#3")
	require.NoError(t, err)
	assert.Equal(t, addrHex, txIn.Id().String())
	assert.Equal(t, uint32(3), txIn.Index())
}

func TestParseTxInHexMode(t *testing.T) {
	// The default codec ignores everything after the first invalid hex pair
	txIn, err := ParseTxIn(testTxId + "zz#2")
	require.NoError(t, err)
	assert.Equal(t, testTxId, txIn.Id().String())

	strict := NewParser(NewAddressCodec(WithStrictHex(true)))
	_, err = strict.ParseTxIn(testTxId + "zz#2")
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, msgTxIdMalformed, parseErr.Message)
	txIn, err = strict.ParseTxIn(testTxId + "#2")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), txIn.Index())
}

func TestParseTxOut(t *testing.T) {
	testDefs := []struct {
		input          string
		expectedAddr   string
		expectedAmount uint64
	}{
		{
			input:          testShelleyAddrHex + "+0",
			expectedAddr:   testShelleyAddr,
			expectedAmount: 0,
		},
		{
			input:          testShelleyAddrHex + "+1000000",
			expectedAddr:   testShelleyAddr,
			expectedAmount: 1000000,
		},
		{
			input:          testByronAddrHex + "+18446744073709551615",
			expectedAddr:   testByronAddr,
			expectedAmount: 18446744073709551615,
		},
	}
	for _, testDef := range testDefs {
		txOut, err := ParseTxOut(testDef.input)
		require.NoError(t, err, "input %s", testDef.input)
		assert.Equal(t, testDef.expectedAddr, txOut.Address().String())
		assert.Equal(t, testDef.expectedAmount, txOut.Amount())
		rendered, err := RenderTxOut(txOut)
		require.NoError(t, err)
		assert.Equal(t, testDef.input, rendered)
		reparsed, err := ParseTxOut(rendered)
		require.NoError(t, err)
		assert.Equal(t, txOut.Address().String(), reparsed.Address().String())
		assert.Equal(t, txOut.Amount(), reparsed.Amount())
	}
}

func TestParseTxOutErrors(t *testing.T) {
	addrLen := len(testShelleyAddrHex)
	testDefs := []struct {
		name            string
		input           string
		expectedColumn  int
		expectedMessage string
	}{
		{
			name:            "empty",
			input:           "",
			expectedColumn:  1,
			expectedMessage: "expecting address",
		},
		{
			name:            "not an address",
			input:           "xy+1",
			expectedColumn:  1,
			expectedMessage: msgAddrMalformed,
		},
		{
			name:            "tx id",
			input:           testZeroTxId + "+1",
			expectedColumn:  1,
			expectedMessage: msgAddrMalformed,
		},
		{
			name:            "non-minimal pointer",
			input:           "41cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b80010203+1",
			expectedColumn:  1,
			expectedMessage: msgAddrMalformed,
		},
		{
			name:            "missing separator",
			input:           testShelleyAddrHex + "#1",
			expectedColumn:  addrLen + 1,
			expectedMessage: "expecting '+'",
		},
		{
			name:            "missing amount",
			input:           testShelleyAddrHex + "+",
			expectedColumn:  addrLen + 2,
			expectedMessage: "expecting lovelace amount",
		},
		{
			name:            "trailing input",
			input:           testShelleyAddrHex + "+10 ",
			expectedColumn:  addrLen + 4,
			expectedMessage: "unexpected trailing input",
		},
		{
			name:            "amount overflow",
			input:           testShelleyAddrHex + "+18446744073709551616",
			expectedColumn:  addrLen + 2,
			expectedMessage: "lovelace amount out of range",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := ParseTxOut(testDef.input)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "unexpected error: %v", err)
			assert.Equal(t, testDef.expectedColumn, parseErr.Column)
			assert.Equal(t, testDef.expectedMessage, parseErr.Message)
		})
	}
}

func TestRenderTxOutInvalid(t *testing.T) {
	_, err := RenderTxOut(common.NewTransactionOutput(nil, 1))
	assert.ErrorIs(t, err, common.ErrInvalidAddress)
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{Input: "x", Column: 3, Message: "expecting '#'"}
	assert.Equal(t, "parse error at column 3: expecting '#'", err.Error())
}

func TestParserTxOutRewardAddressBytes(t *testing.T) {
	// Reward accounts are only ever rendered, never parsed
	_, err := ParseTxOut(testRewardHex + "+1")
	require.ErrorIs(t, err, ErrParse)
	rewardAddr, err := common.NewRewardAccountFromBytes(
		test.DecodeHexString(testRewardHex),
	)
	require.NoError(t, err)
	rendered, err := RenderTxOut(common.NewTransactionOutput(rewardAddr, 5))
	require.NoError(t, err)
	assert.Equal(t, testRewardHex+"+5", rendered)
}
