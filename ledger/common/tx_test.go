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
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/jehzlau/cardano-node/cbor"
	"github.com/jehzlau/cardano-node/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEnterpriseAddrHex = "61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b"

func TestTransactionInputString(t *testing.T) {
	txId := NewBlake2b256(
		test.DecodeHexString(
			"e5f3fcd8af3c5a6a0c53ea61d0e5fc1d2cc152b36b30d8d1d1e1bb36b9a8f4f5",
		),
	)
	input := NewTransactionInput(txId, 3)
	assert.Equal(
		t,
		"e5f3fcd8af3c5a6a0c53ea61d0e5fc1d2cc152b36b30d8d1d1e1bb36b9a8f4f5#3",
		input.String(),
	)
	jsonData, err := input.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"`+input.String()+`"`, string(jsonData))
	rpcInput := input.Utxorpc()
	assert.Equal(t, txId.Bytes(), rpcInput.TxHash)
	assert.Equal(t, uint32(3), rpcInput.OutputIndex)
}

func TestTransactionInputCbor(t *testing.T) {
	input := NewTransactionInput(Blake2b256{}, 1)
	cborData, err := cbor.Encode(&input)
	require.NoError(t, err)
	assert.Equal(
		t,
		"825820"+hex.EncodeToString(make([]byte, 32))+"01",
		hex.EncodeToString(cborData),
	)
	var decoded TransactionInput
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestTransactionInputToPlutusData(t *testing.T) {
	input := NewTransactionInput(Blake2b256{}, 0)
	expected := data.NewConstr(
		0,
		data.NewByteString(make([]byte, Blake2b256Size)),
		data.NewInteger(new(big.Int).SetUint64(0)),
	)
	assert.Equal(t, expected, input.ToPlutusData())
}

func TestTransactionOutputCbor(t *testing.T) {
	addr, err := NewAddressFromBytes(test.DecodeHexString(testEnterpriseAddrHex))
	require.NoError(t, err)
	output := NewTransactionOutput(addr, 1000000)
	cborData, err := cbor.Encode(&output)
	require.NoError(t, err)
	assert.Equal(
		t,
		"82581d"+testEnterpriseAddrHex+"1a000f4240",
		hex.EncodeToString(cborData),
	)
	var decoded TransactionOutput
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	assert.Equal(t, addr, decoded.Address())
	assert.Equal(t, uint64(1000000), decoded.Amount())
	assert.Equal(t, cborData, decoded.Cbor())
	rpcOutput, err := decoded.Utxorpc()
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString(testEnterpriseAddrHex), rpcOutput.Address)
	assert.Equal(t, uint64(1000000), rpcOutput.Coin)
}

func TestTransactionOutputCborInvalidAddress(t *testing.T) {
	// [h'00', 1]
	var decoded TransactionOutput
	_, err := cbor.Decode(test.DecodeHexString("82410001"), &decoded)
	assert.ErrorIs(t, err, ErrInvalidAddress)
	_, err = TransactionOutput{}.MarshalCBOR()
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
