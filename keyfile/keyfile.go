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

package keyfile

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jehzlau/cardano-node/cbor"
)

// Limit reads to 1 MiB. Valid key files are well under this size
const maxKeyFileSize = 1 << 20

var (
	ErrInsecureFileMode = errors.New("insecure file permissions")
	ErrUnexpectedType   = errors.New("unexpected key file type")
)

// Key is a typed key that can be stored in a text envelope
type Key interface {
	EnvelopeType() string
	Description() string
	Bytes() []byte
}

// TextEnvelope is the JSON structure of a cardano-cli key file
type TextEnvelope struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	CborHex     string `json:"cborHex"`
}

// NewTextEnvelope wraps the raw key bytes as a CBOR byte string
func NewTextEnvelope(key Key) (*TextEnvelope, error) {
	cborData, err := cbor.Encode(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not encode key: %w", err)
	}
	return &TextEnvelope{
		Type:        key.EnvelopeType(),
		Description: key.Description(),
		CborHex:     hex.EncodeToString(cborData),
	}, nil
}

// ParseTextEnvelope parses the contents of a cardano-cli key file
func ParseTextEnvelope(fileBytes []byte) (*TextEnvelope, error) {
	var env TextEnvelope
	if err := json.Unmarshal(fileBytes, &env); err != nil {
		return nil, fmt.Errorf("could not parse key file envelope: %w", err)
	}
	if env.Type == "" {
		return nil, errors.New("key file envelope has no type")
	}
	return &env, nil
}

// RawKey returns the key bytes held in the envelope's CBOR byte string
func (e *TextEnvelope) RawKey() ([]byte, error) {
	cborData, err := hex.DecodeString(e.CborHex)
	if err != nil {
		return nil, fmt.Errorf("could not decode key from hex: %w", err)
	}
	var ret []byte
	if err := cbor.DecodeExact(cborData, &ret); err != nil {
		return nil, fmt.Errorf("could not decode key CBOR: %w", err)
	}
	return ret, nil
}

// RawKeyOfType returns the key bytes after checking the envelope type
func (e *TextEnvelope) RawKeyOfType(envelopeType string) ([]byte, error) {
	if e.Type != envelopeType {
		return nil, fmt.Errorf(
			"%w: expected %s, got %s",
			ErrUnexpectedType,
			envelopeType,
			e.Type,
		)
	}
	return e.RawKey()
}

// Marshal returns the envelope as indented JSON with a trailing newline
func (e *TextEnvelope) Marshal() ([]byte, error) {
	ret, err := json.MarshalIndent(e, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(ret, '\n'), nil
}

// isSecret reports whether the envelope holds signing key material
func (e *TextEnvelope) isSecret() bool {
	return strings.Contains(e.Type, "SigningKey")
}

// ReadFile loads a text envelope from a file path.
// Returns ErrInsecureFileMode if a signing key file has group or other access
func ReadFile(path string) (*TextEnvelope, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file %q: %w", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxKeyFileSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %q: %w", path, err)
	}
	env, err := ParseTextEnvelope(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key file %q: %w", path, err)
	}
	if env.isSecret() {
		if err := checkOpenFilePermissions(f); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// WriteFile stores the key as a text envelope readable only by the owner
func WriteFile(path string, key Key) error {
	env, err := NewTextEnvelope(key)
	if err != nil {
		return err
	}
	data, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("could not encode key file envelope: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create key file %q: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write key file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write key file %q: %w", path, err)
	}
	return nil
}
