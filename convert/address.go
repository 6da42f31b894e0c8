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
	"encoding/hex"
	"errors"
	"io"
	"log/slog"

	"github.com/jehzlau/cardano-node/ledger/common"
)

// AddressCodec converts between hex text and addresses
//
// Payment address bytes carry no tag that identifies their binary format, so decoding
// tries each configured decoder in order and the first one that accepts the bytes wins.
// The default order is Shelley, then Byron. A codec is never modified after construction
// and is safe for concurrent use
type AddressCodec struct {
	logger    *slog.Logger
	decoders  []common.AddressDecoder
	strictHex bool
}

// AddressCodecOptionFunc represents a function used to modify an AddressCodec
type AddressCodecOptionFunc func(*AddressCodec)

// NewAddressCodec returns a new AddressCodec with the provided options
func NewAddressCodec(options ...AddressCodecOptionFunc) *AddressCodec {
	c := &AddressCodec{
		decoders: common.PaymentAddressDecoders(),
	}
	// Apply provided options functions
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return c
}

// WithStrictHex rejects hex text containing any invalid character or an odd trailing nibble.
// By default the codec decodes up to the first invalid hex pair and ignores the rest
func WithStrictHex(strict bool) AddressCodecOptionFunc {
	return func(c *AddressCodec) {
		c.strictHex = strict
	}
}

// WithAddressDecoders replaces the ordered list of decoders tried on address bytes
func WithAddressDecoders(
	decoders ...common.AddressDecoder,
) AddressCodecOptionFunc {
	return func(c *AddressCodec) {
		c.decoders = decoders
	}
}

// WithLogger specifies the logger used for debug output
func WithLogger(logger *slog.Logger) AddressCodecOptionFunc {
	return func(c *AddressCodec) {
		c.logger = logger
	}
}

var defaultCodec = NewAddressCodec()

// AddressFromHex decodes hex text into an address using the default codec
func AddressFromHex(text string) (common.Address, bool) {
	return defaultCodec.AddressFromHex(text)
}

// AddressToHex returns the hex form of an address using the default codec
func AddressToHex(addr common.Address) (string, error) {
	return defaultCodec.AddressToHex(addr)
}

// AddressFromHex decodes hex text into an address. It returns false when no decoder
// accepts the bytes
func (c *AddressCodec) AddressFromHex(text string) (common.Address, bool) {
	addrBytes, err := c.decodeHex(text)
	if err != nil {
		c.logger.Debug(
			"invalid address hex",
			"component", "convert",
			"error", err,
		)
		return nil, false
	}
	addr, decoder, err := common.DecodeAddressWith(addrBytes, c.decoders)
	if err != nil {
		c.logger.Debug(
			"no decoder accepted address bytes",
			"component", "convert",
			"error", err,
		)
		return nil, false
	}
	c.logger.Debug(
		"decoded address",
		"component", "convert",
		"decoder", decoder,
	)
	return addr, true
}

// AddressToHex returns the lowercase hex form of the address's binary serialization
func (c *AddressCodec) AddressToHex(addr common.Address) (string, error) {
	if addr == nil {
		return "", common.ErrInvalidAddress
	}
	addrBytes, err := addr.Bytes()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(addrBytes), nil
}

// decodeHex decodes hex text according to the codec's hex mode
func (c *AddressCodec) decodeHex(text string) ([]byte, error) {
	if c.strictHex {
		return hex.DecodeString(text)
	}
	ret, n := decodeHexLenient(text)
	if n < len(text) {
		c.logger.Debug(
			"ignoring trailing input after invalid hex",
			"component", "convert",
			"consumed", n,
			"length", len(text),
		)
	}
	if len(ret) == 0 && len(text) > 0 {
		return nil, errors.New("no valid hex pairs")
	}
	return ret, nil
}

// decodeHexLenient decodes hex pairs up to the first invalid pair or odd trailing nibble.
// It returns the decoded bytes and the number of input characters consumed
func decodeHexLenient(text string) ([]byte, int) {
	src := []byte(text)
	dst := make([]byte, hex.DecodedLen(len(src)))
	n, _ := hex.Decode(dst, src)
	return dst[:n], n * 2
}
