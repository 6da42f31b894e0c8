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
	"strconv"

	"github.com/jehzlau/cardano-node/ledger/common"
)

const (
	txInSeparator  = '#'
	txOutSeparator = '+'

	msgTxIdIsAddress = "Incorrect transaction id format: you entered an address, please enter a transaction input"
	msgTxIdMalformed = "Incorrect transaction id format: the data is malformed or not hex encoded"
	msgAddrMalformed = "Incorrect address format: the data is malformed or not a hex encoded address"
)

// Parser parses and renders the text forms of transaction inputs and outputs
//
//	TxIn  ::= HASH '#' DIGITS
//	TxOut ::= ADDRHEX '+' DIGITS
//
// HASH and ADDRHEX are runs of ASCII letters and digits, and the whole input must be consumed
type Parser struct {
	codec *AddressCodec
}

// NewParser returns a Parser that decodes addresses and hashes with the provided codec.
// A nil codec selects the default codec
func NewParser(codec *AddressCodec) *Parser {
	if codec == nil {
		codec = defaultCodec
	}
	return &Parser{codec: codec}
}

var defaultParser = NewParser(nil)

// ParseTxIn parses text of the form <hex tx id>#<index> using the default codec
func ParseTxIn(text string) (common.TransactionInput, error) {
	return defaultParser.ParseTxIn(text)
}

// ParseTxOut parses text of the form <hex address>+<lovelace> using the default codec
func ParseTxOut(text string) (common.TransactionOutput, error) {
	return defaultParser.ParseTxOut(text)
}

// RenderTxIn returns the text form of a transaction input
func RenderTxIn(in common.TransactionInput) string {
	return defaultParser.RenderTxIn(in)
}

// RenderTxOut returns the text form of a transaction output using the default codec
func RenderTxOut(out common.TransactionOutput) (string, error) {
	return defaultParser.RenderTxOut(out)
}

// ParseTxIn parses text of the form <hex tx id>#<index>
func (p *Parser) ParseTxIn(text string) (common.TransactionInput, error) {
	var ret common.TransactionInput
	end := scanAlphanumeric(text, 0)
	if end == 0 {
		return ret, newParseError(text, 0, "expecting transaction id")
	}
	txId, err := p.parseTxId(text, text[:end])
	if err != nil {
		return ret, err
	}
	idx, err := parseNumber(text, end, txInSeparator, 32, "output index")
	if err != nil {
		return ret, err
	}
	return common.NewTransactionInput(txId, uint32(idx)), nil
}

// parseTxId interprets the hash token as a transaction id. When that fails, the token is
// decoded again as an address only to pick the more helpful message
func (p *Parser) parseTxId(
	text string,
	token string,
) (common.Blake2b256, error) {
	var ret common.Blake2b256
	hashBytes, err := p.codec.decodeHex(token)
	if err == nil && len(hashBytes) == common.Blake2b256Size {
		return common.NewBlake2b256(hashBytes), nil
	}
	if _, ok := p.codec.AddressFromHex(token); ok {
		return ret, newParseError(text, 0, msgTxIdIsAddress)
	}
	return ret, newParseError(text, 0, msgTxIdMalformed)
}

// ParseTxOut parses text of the form <hex address>+<lovelace>
func (p *Parser) ParseTxOut(text string) (common.TransactionOutput, error) {
	var ret common.TransactionOutput
	end := scanAlphanumeric(text, 0)
	if end == 0 {
		return ret, newParseError(text, 0, "expecting address")
	}
	addr, ok := p.codec.AddressFromHex(text[:end])
	if !ok {
		return ret, newParseError(text, 0, msgAddrMalformed)
	}
	amount, err := parseNumber(text, end, txOutSeparator, 64, "lovelace amount")
	if err != nil {
		return ret, err
	}
	return common.NewTransactionOutput(addr, amount), nil
}

// RenderTxIn returns <hex tx id>#<index>
func (p *Parser) RenderTxIn(in common.TransactionInput) string {
	return in.Id().String() + string(txInSeparator) + strconv.FormatUint(
		uint64(in.Index()),
		10,
	)
}

// RenderTxOut returns <hex address>+<lovelace>
func (p *Parser) RenderTxOut(out common.TransactionOutput) (string, error) {
	addrHex, err := p.codec.AddressToHex(out.Address())
	if err != nil {
		return "", err
	}
	return addrHex + string(txOutSeparator) + strconv.FormatUint(
		out.Amount(),
		10,
	), nil
}

// parseNumber expects the separator at pos followed by decimal digits running to the end of text
func parseNumber(
	text string,
	pos int,
	separator byte,
	bitSize int,
	name string,
) (uint64, error) {
	if pos >= len(text) || text[pos] != separator {
		return 0, newParseError(
			text,
			pos,
			"expecting '"+string(separator)+"'",
		)
	}
	start := pos + 1
	end := scanDigits(text, start)
	if end == start {
		return 0, newParseError(text, start, "expecting "+name)
	}
	if end < len(text) {
		return 0, newParseError(text, end, "unexpected trailing input")
	}
	ret, err := strconv.ParseUint(text[start:end], 10, bitSize)
	if err != nil {
		return 0, newParseError(text, start, name+" out of range")
	}
	return ret, nil
}

func scanAlphanumeric(text string, pos int) int {
	for pos < len(text) {
		c := text[pos]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') &&
			(c < 'A' || c > 'Z') {
			break
		}
		pos++
	}
	return pos
}

func scanDigits(text string, pos int) int {
	for pos < len(text) && text[pos] >= '0' && text[pos] <= '9' {
		pos++
	}
	return pos
}
