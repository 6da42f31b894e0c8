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
	"fmt"
)

// Sentinel error for address decoding failures so callers can use errors.Is
var ErrInvalidAddress = errors.New("invalid address")

// AddressDecodeError indicates that raw bytes could not be interpreted as a particular kind of address
type AddressDecodeError struct {
	Kind string
	Err  error
}

func (e AddressDecodeError) Error() string {
	return fmt.Sprintf("invalid %s address: %v", e.Kind, e.Err)
}

func (e AddressDecodeError) Unwrap() error { return e.Err }

func (AddressDecodeError) Is(target error) bool {
	return target == ErrInvalidAddress
}

// NoMatchingAddressDecoderError indicates that none of the tried decoders accepted the address bytes
type NoMatchingAddressDecoderError struct {
	Errors []error
}

func (e NoMatchingAddressDecoderError) Error() string {
	if len(e.Errors) == 0 {
		return "no address decoders configured"
	}
	return errors.Join(e.Errors...).Error()
}

func (e NoMatchingAddressDecoderError) Unwrap() []error { return e.Errors }

func (NoMatchingAddressDecoderError) Is(target error) bool {
	return target == ErrInvalidAddress
}
