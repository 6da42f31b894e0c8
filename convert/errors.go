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
	"fmt"
)

var (
	// ErrParse matches any *ParseError with errors.Is
	ErrParse = errors.New("parse error")
	// ErrConversion matches any ConversionError with errors.Is
	ErrConversion = errors.New("conversion error")
)

// ParseError describes text that does not match the TxIn or TxOut grammar
type ParseError struct {
	Input string
	// Column is the 1-based position of the offending character
	Column  int
	Message string
}

func newParseError(input string, pos int, message string) *ParseError {
	return &ParseError{
		Input:   input,
		Column:  pos + 1,
		Message: message,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at column %d: %s", e.Column, e.Message)
}

func (*ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConversionError is one of Bech32DecodingError, ITNError, SigningKeyDeserializationError
// or VerificationKeyDeserializationError
type ConversionError interface {
	error
	isConversionError()
}

// Bech32DecodingError indicates that the Bech32 key in a file could not be decoded
type Bech32DecodingError struct {
	Path string
	Err  error
}

// ITNError indicates that text is not a usable Incentivized Testnet Bech32 key
type ITNError struct {
	Message string
}

// SigningKeyDeserializationError carries the raw bytes that are not a valid signing key
type SigningKeyDeserializationError struct {
	Raw []byte
}

// VerificationKeyDeserializationError carries the raw bytes that are not a valid verification key
type VerificationKeyDeserializationError struct {
	Raw []byte
}

func (Bech32DecodingError) isConversionError()                 {}
func (ITNError) isConversionError()                            {}
func (SigningKeyDeserializationError) isConversionError()      {}
func (VerificationKeyDeserializationError) isConversionError() {}

func (e Bech32DecodingError) Error() string { return RenderConversionError(e) }

func (e Bech32DecodingError) Unwrap() error { return e.Err }

func (Bech32DecodingError) Is(target error) bool { return target == ErrConversion }

func (e ITNError) Error() string { return RenderConversionError(e) }

func (ITNError) Is(target error) bool { return target == ErrConversion }

func (e SigningKeyDeserializationError) Error() string {
	return RenderConversionError(e)
}

func (SigningKeyDeserializationError) Is(target error) bool {
	return target == ErrConversion
}

func (e VerificationKeyDeserializationError) Error() string {
	return RenderConversionError(e)
}

func (VerificationKeyDeserializationError) Is(target error) bool {
	return target == ErrConversion
}

// RenderConversionError returns the user facing message for a conversion error.
// Raw key bytes are shown as a quoted byte string rather than hex
func RenderConversionError(err ConversionError) string {
	switch e := err.(type) {
	case Bech32DecodingError:
		errText := "<nil>"
		if e.Err != nil {
			errText = e.Err.Error()
		}
		return fmt.Sprintf(
			"Error decoding Bech32 key at %s Error: %s",
			e.Path,
			errText,
		)
	case ITNError:
		return e.Message
	case SigningKeyDeserializationError:
		return fmt.Sprintf("Error deserialising signing key: %q", e.Raw)
	case VerificationKeyDeserializationError:
		return fmt.Sprintf("Error deserialising verification key: %q", e.Raw)
	case nil:
		return ""
	default:
		return fmt.Sprintf("unknown conversion error: %T", err)
	}
}
