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
	"fmt"
	"math/big"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/jehzlau/cardano-node/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

// TransactionInput references an output of a previous transaction
type TransactionInput struct {
	cbor.StructAsArray
	TxId        Blake2b256
	OutputIndex uint32
}

func NewTransactionInput(txId Blake2b256, idx uint32) TransactionInput {
	return TransactionInput{
		TxId:        txId,
		OutputIndex: idx,
	}
}

func (i TransactionInput) Id() Blake2b256 {
	return i.TxId
}

func (i TransactionInput) Index() uint32 {
	return i.OutputIndex
}

func (i TransactionInput) Utxorpc() *utxorpc.TxInput {
	return &utxorpc.TxInput{
		TxHash:      i.TxId.Bytes(),
		OutputIndex: i.OutputIndex,
	}
}

// ToPlutusData returns the input as a TxOutRef
func (i TransactionInput) ToPlutusData() data.PlutusData {
	return data.NewConstr(
		0,
		i.TxId.ToPlutusData(),
		data.NewInteger(new(big.Int).SetUint64(uint64(i.OutputIndex))),
	)
}

func (i TransactionInput) String() string {
	return fmt.Sprintf("%s#%d", i.TxId, i.OutputIndex)
}

func (i TransactionInput) MarshalJSON() ([]byte, error) {
	return []byte("\"" + i.String() + "\""), nil
}

// TransactionOutput is an address paired with an amount of lovelace
type TransactionOutput struct {
	cbor.DecodeStoreCbor
	OutputAddress Address `json:"address"`
	OutputAmount  uint64  `json:"amount"`
}

func NewTransactionOutput(addr Address, amount uint64) TransactionOutput {
	return TransactionOutput{
		OutputAddress: addr,
		OutputAmount:  amount,
	}
}

// transactionOutputCbor is the legacy (array) wire format for a transaction output
type transactionOutputCbor struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Address []byte
	Amount  uint64
}

func (o *transactionOutputCbor) UnmarshalCBOR(cborData []byte) error {
	return o.UnmarshalCborGeneric(cborData, o)
}

func (o *TransactionOutput) UnmarshalCBOR(cborData []byte) error {
	var tmpOutput transactionOutputCbor
	if _, err := cbor.Decode(cborData, &tmpOutput); err != nil {
		return err
	}
	addr, err := NewAddressFromBytes(tmpOutput.Address)
	if err != nil {
		return fmt.Errorf("failed to decode output address: %w", err)
	}
	o.OutputAddress = addr
	o.OutputAmount = tmpOutput.Amount
	o.SetCbor(tmpOutput.Cbor())
	return nil
}

func (o TransactionOutput) MarshalCBOR() ([]byte, error) {
	if o.OutputAddress == nil {
		return nil, ErrInvalidAddress
	}
	addrBytes, err := o.OutputAddress.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get address bytes: %w", err)
	}
	tmpOutput := transactionOutputCbor{
		Address: addrBytes,
		Amount:  o.OutputAmount,
	}
	return cbor.Encode(&tmpOutput)
}

func (o TransactionOutput) Address() Address {
	return o.OutputAddress
}

func (o TransactionOutput) Amount() uint64 {
	return o.OutputAmount
}

func (o TransactionOutput) Utxorpc() (*utxorpc.TxOutput, error) {
	if o.OutputAddress == nil {
		return nil, ErrInvalidAddress
	}
	addrBytes, err := o.OutputAddress.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get address bytes: %w", err)
	}
	return &utxorpc.TxOutput{
		Address: addrBytes,
		Coin:    o.OutputAmount,
	}, nil
}
